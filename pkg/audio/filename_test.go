package audio

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxRunes int
		want     string
	}{
		{
			name:     "punctuation stripped, spaces and hyphens collapsed",
			text:     "Was ist das Kano-Modell?",
			maxRunes: 50,
			want:     "was_ist_das_kano_modell",
		},
		{
			name:     "umlauts kept",
			text:     "Größe und Gewicht",
			maxRunes: 50,
			want:     "größe_und_gewicht",
		},
		{
			name:     "truncated before sanitizing",
			text:     "abcde fghij",
			maxRunes: 5,
			want:     "abcde",
		},
		{
			name:     "leading and trailing separators trimmed",
			text:     " - Hallo Welt - ",
			maxRunes: 50,
			want:     "hallo_welt",
		},
		{
			name:     "separator runs collapse to one underscore",
			text:     "a -  - b",
			maxRunes: 50,
			want:     "a_b",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slug(tt.text, tt.maxRunes); got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	got := Filename("karte", 7, "Was ist das Kano-Modell?")
	want := "karte_007_was_ist_das_kano_modell.mp3"
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}
