package transcript

import (
	"context"
	"fmt"
	"os"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"golang.org/x/exp/slog"
)

type GCPClient struct {
	LanguageCode string
	SampleRate   int32
}

// Transcribe sends an audio file to the google speech-to-text api and
// returns the recognized words with their time offsets. The narration can
// exceed one minute so we go through the long-running endpoint.
func (g *GCPClient) Transcribe(ctx context.Context, path string) ([]Word, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read audio file: %w", err)
	}

	client, err := speech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not create speech client: %w", err)
	}
	defer client.Close()

	lang := g.LanguageCode
	if lang == "" {
		lang = "de-DE"
	}
	rate := g.SampleRate
	if rate == 0 {
		rate = 24000 // sample rate of the synthesized mp3s
	}

	req := &speechpb.LongRunningRecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:              speechpb.RecognitionConfig_MP3,
			SampleRateHertz:       rate,
			LanguageCode:          lang,
			EnableWordTimeOffsets: true,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	}
	op, err := client.LongRunningRecognize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("recognize %s: %w", path, err)
	}
	resp, err := op.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("recognize %s: %w", path, err)
	}

	var words []Word
	for _, result := range resp.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		for _, w := range result.Alternatives[0].Words {
			words = append(words, Word{
				Word:  w.Word,
				Start: w.StartTime.AsDuration().Seconds(),
				End:   w.EndTime.AsDuration().Seconds(),
			})
		}
	}
	slog.Debug("transcribed audio", "path", path, "words", len(words))
	return words, nil
}
