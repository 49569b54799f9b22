package openai

import (
	"testing"
)

func TestCache(t *testing.T) {
	dir := t.TempDir()

	c := NewCache(dir)
	if _, ok := c.Lookup("FRAGE: Was ist das Kano-Modell?"); ok {
		t.Error("Lookup() on empty cache should miss")
	}

	c.Add("FRAGE: Was ist das Kano-Modell?", "Lass uns mal über das Kano-Modell sprechen.")

	got, ok := c.Lookup("FRAGE: Was ist das Kano-Modell?")
	if !ok {
		t.Fatal("Lookup() after Add should hit")
	}
	if got != "Lass uns mal über das Kano-Modell sprechen." {
		t.Errorf("Lookup() = %q", got)
	}

	// a fresh cache instance picks up entries persisted by a previous run
	c2 := NewCache(dir)
	if _, ok := c2.Lookup("FRAGE: Was ist das Kano-Modell?"); !ok {
		t.Error("Lookup() on reloaded cache should hit")
	}
}
