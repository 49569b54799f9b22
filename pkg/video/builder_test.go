package video

import (
	"context"
	"errors"
	"testing"

	"github.com/fbngrm/anki-video/pkg/transcript"
)

type fakeRecognizer struct {
	words []transcript.Word
	err   error
	calls int
}

func (f *fakeRecognizer) Transcribe(ctx context.Context, path string) ([]transcript.Word, error) {
	f.calls++
	return f.words, f.err
}

func staticProbe(seconds float64) func(string) (float64, error) {
	return func(string) (float64, error) {
		return seconds, nil
	}
}

func TestBuild(t *testing.T) {
	recognizer := &fakeRecognizer{
		words: []transcript.Word{
			{Word: "zuerst", Start: 0.4, End: 0.8},
			{Word: "Bremsen", Start: 1.0, End: 1.5},
			{Word: "Sicherheitsgurt", Start: 3.0, End: 3.9},
		},
	}
	b := &Builder{
		Recognizer:    recognizer,
		Probe:         staticProbe(10.5),
		PaddingFrames: CompilationPaddingFrames,
	}

	got, err := b.Build(context.Background(), "Frage", "Basismerkmale\n1. Bremsen\n2. Sicherheitsgurt", "a.mp3", "a.mp3")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got.DurationInFrames != 315+CompilationPaddingFrames {
		t.Errorf("DurationInFrames = %d, want %d", got.DurationInFrames, 315+CompilationPaddingFrames)
	}
	if got.AudioURL != "a.mp3" {
		t.Errorf("AudioURL = %q, want %q", got.AudioURL, "a.mp3")
	}
	if got.Content.Intro != "Basismerkmale\n" {
		t.Errorf("Intro = %q, want %q", got.Content.Intro, "Basismerkmale\n")
	}
	if len(got.Content.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(got.Content.Items))
	}
	if got.Content.Items[0].StartFrame != 30 || !got.Content.Items[0].Found {
		t.Errorf("first item = %+v, want frame 30 and Found", got.Content.Items[0])
	}
	if got.Content.Items[1].StartFrame != 90 || !got.Content.Items[1].Found {
		t.Errorf("second item = %+v, want frame 90 and Found", got.Content.Items[1])
	}
	if len(got.Subtitles) != 3 {
		t.Errorf("got %d subtitle words, want 3", len(got.Subtitles))
	}
}

// a transcription failure degrades to fallback placement instead of failing
// the card
func TestBuildDegradesOnTranscriptionFailure(t *testing.T) {
	b := &Builder{
		Recognizer:    &fakeRecognizer{err: errors.New("unreachable")},
		Probe:         staticProbe(10),
		PaddingFrames: DefaultPaddingFrames,
	}

	got, err := b.Build(context.Background(), "Frage", "1. Bremsen\n2. Gurt", "a.mp3", "a.mp3")
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got.Subtitles == nil || len(got.Subtitles) != 0 {
		t.Errorf("Subtitles = %v, want empty non-nil", got.Subtitles)
	}
	wantFrames := []int{60, 120}
	for i, item := range got.Content.Items {
		if item.Found {
			t.Errorf("item %d: Found = true, want false", i)
		}
		if item.StartFrame != wantFrames[i] {
			t.Errorf("item %d: StartFrame = %d, want %d", i, item.StartFrame, wantFrames[i])
		}
	}
	if got.DurationInFrames != 300+DefaultPaddingFrames {
		t.Errorf("DurationInFrames = %d, want %d", got.DurationInFrames, 300+DefaultPaddingFrames)
	}
}

func TestBuildProbeFailureIsFatal(t *testing.T) {
	b := &Builder{
		Recognizer: &fakeRecognizer{},
		Probe: func(string) (float64, error) {
			return 0, errors.New("no such file")
		},
		PaddingFrames: DefaultPaddingFrames,
	}
	if _, err := b.Build(context.Background(), "Frage", "Antwort", "a.mp3", "a.mp3"); err == nil {
		t.Error("Build() should fail when the duration probe fails")
	}
}
