package video

import (
	"context"
	"fmt"

	"github.com/fbngrm/anki-video/pkg/align"
	"github.com/fbngrm/anki-video/pkg/content"
	"github.com/fbngrm/anki-video/pkg/transcript"
	"golang.org/x/exp/slog"
)

// Recognizer produces word-level timestamps for an audio file.
type Recognizer interface {
	Transcribe(ctx context.Context, path string) ([]transcript.Word, error)
}

// Builder assembles the render record for a single card from its audio file:
// it probes the duration, transcribes the narration, structures the answer
// into visual items and aligns them to the transcript.
type Builder struct {
	Recognizer    Recognizer
	Probe         func(path string) (float64, error)
	PaddingFrames int
}

// Build creates the record for one flashcard. audioURL is the reference the
// renderer resolves, audioPath the local file. A transcription failure is
// not fatal; the card is built against an empty transcript and every item
// falls back to fixed spacing.
func (b *Builder) Build(ctx context.Context, question, answer, audioPath, audioURL string) (Card, error) {
	seconds, err := b.Probe(audioPath)
	if err != nil {
		return Card{}, fmt.Errorf("could not read audio duration: %w", err)
	}

	words, err := b.Recognizer.Transcribe(ctx, audioPath)
	if err != nil {
		slog.Warn("transcription failed, items fall back to fixed spacing", "path", audioPath, "err", err)
		words = nil
	}
	if words == nil {
		words = []transcript.Word{}
	}

	parsed := content.Parse(question, answer)
	items := align.Align(parsed.Items, words, FramesPerSecond)

	return Card{
		AudioURL:  audioURL,
		Subtitles: words,
		Content: Content{
			Question: parsed.Question,
			Intro:    parsed.Intro,
			Items:    items,
		},
		DurationInFrames: int(seconds*FramesPerSecond) + b.PaddingFrames,
	}, nil
}
