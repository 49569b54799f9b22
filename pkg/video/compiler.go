package video

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fbngrm/anki-video/pkg/audio"
	"github.com/fbngrm/anki-video/pkg/card"
	"golang.org/x/exp/slog"
)

// question prefix length used for slugs of standalone cards
const singleSlugRunes = 30

// CardSynthesizer materializes the narration mp3 for a flashcard.
type CardSynthesizer interface {
	ProcessCard(ctx context.Context, question, answer, path string) error
}

// Pipeline runs the full card-to-video-data flow: audio synthesis with a
// skip-if-exists file cache, transcription, alignment and serialization of
// the render data. It processes cards strictly one after the other;
// concurrent runs against the same directories are not safe.
type Pipeline struct {
	Synthesizer CardSynthesizer
	Builder     *Builder

	// compilation only
	AudioDir  string
	PublicDir string
	Prefix    string
}

// GenerateCard runs the pipeline for a single flashcard and writes a
// render-ready json file next to the mp3 in outDir. Unlike in a
// compilation, a synthesis failure here is fatal. Returns the json path.
func (p *Pipeline) GenerateCard(ctx context.Context, question, answer, outDir string) (string, error) {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return "", err
	}
	slug := audio.Slug(question, singleSlugRunes)
	audioFile := slug + ".mp3"
	audioPath := filepath.Join(outDir, audioFile)

	fmt.Printf("processing: %s\n", question)
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		if err := p.Synthesizer.ProcessCard(ctx, question, answer, audioPath); err != nil {
			return "", err
		}
	} else {
		fmt.Printf("audio file exists: %s\n", audioPath)
	}

	record, err := p.Builder.Build(ctx, question, answer, audioPath, audioFile)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", err
	}
	jsonPath := filepath.Join(outDir, slug+".json")
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return "", fmt.Errorf("could not write card data: %w", err)
	}
	slog.Info("card data saved", "path", jsonPath)
	return jsonPath, nil
}

// Compile builds the render data for a whole deck into a single json file
// at outPath. Audio files already present in the audio dir are reused, all
// others are synthesized under the deterministic naming convention. A card
// whose synthesis or build fails is skipped with a warning and leaves a gap
// in the ids; only a failure to write the final file is fatal.
func (p *Pipeline) Compile(ctx context.Context, cards []card.Card, outPath string) error {
	existing, err := audioIndex(p.AudioDir, p.Prefix)
	if err != nil {
		return err
	}
	publisher := &audio.Publisher{SrcDir: p.AudioDir, DstDir: p.PublicDir}

	fmt.Printf("processing %d cards for compilation\n", len(cards))

	comp := Compilation{
		Type:  "compilation",
		Cards: []Card{},
	}
	var skipped []int
	for _, fc := range cards {
		filename, ok := existing[fc.Index]
		if !ok {
			filename = audio.Filename(p.Prefix, fc.Index, fc.Question)
		}
		path := filepath.Join(p.AudioDir, filename)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			slog.Info("no audio for card, generating", "id", fc.Index, "file", filename)
			if err := p.Synthesizer.ProcessCard(ctx, fc.Question, fc.Answer, path); err != nil {
				slog.Error("could not generate audio, skipping card", "id", fc.Index, "err", err)
				skipped = append(skipped, fc.Index)
				continue
			}
		}
		publisher.Publish(filename)

		fmt.Printf("[%d/%d] processing: %.30s\n", fc.Index, len(cards), fc.Question)

		record, err := p.Builder.Build(ctx, fc.Question, fc.Answer, path, filename)
		if err != nil {
			slog.Error("could not build card record, skipping card", "id", fc.Index, "err", err)
			skipped = append(skipped, fc.Index)
			continue
		}
		record.ID = fc.Index
		comp.Cards = append(comp.Cards, record)
	}

	if len(skipped) > 0 {
		slog.Warn("cards skipped", "count", len(skipped), "ids", skipped)
	}

	data, err := json.MarshalIndent(comp, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(outPath), os.ModePerm); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("could not write compilation data: %w", err)
	}
	fmt.Printf("compilation data saved to %s with %d cards\n", outPath, len(comp.Cards))
	return nil
}

// audioIndex maps card indexes to the audio files already present in dir,
// following the <prefix>_<index>_<slug>.mp3 naming convention. Files whose
// index segment does not parse are ignored.
func audioIndex(dir, prefix string) (map[int]string, error) {
	files := make(map[int]string)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return files, nil
		}
		return nil, fmt.Errorf("could not read audio dir: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, prefix+"_") || !strings.HasSuffix(name, ".mp3") {
			continue
		}
		numPart, _, _ := strings.Cut(strings.TrimPrefix(name, prefix+"_"), "_")
		index, err := strconv.Atoi(numPart)
		if err != nil {
			continue
		}
		files[index] = name
	}
	return files, nil
}
