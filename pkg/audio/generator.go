package audio

import (
	"context"
	"fmt"

	"github.com/fbngrm/anki-video/pkg/openai"
	"golang.org/x/exp/slog"
)

// Synthesizer turns text into a spoken mp3 file at path.
type Synthesizer interface {
	Fetch(ctx context.Context, text, path string) error
}

// Generator turns a flashcard into a narrated mp3. The question/answer pair
// is rewritten into a flowing spoken explanation first, then synthesized.
type Generator struct {
	Explainer *openai.Client
	TTS       Synthesizer
}

func (g *Generator) ProcessCard(ctx context.Context, question, answer, path string) error {
	text := g.Explainer.Explain(question, answer)
	if err := g.TTS.Fetch(ctx, text, path); err != nil {
		return fmt.Errorf("could not generate audio for %q: %w", question, err)
	}
	slog.Debug("generated card audio", "path", path)
	return nil
}
