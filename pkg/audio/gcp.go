package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"golang.org/x/exp/slog"
)

// slightly above neutral for a comfortable learning pace
const speakingRate = 1.2

type GCPClient struct {
	Voice string
}

// german wavenet voices we support
var gcpVoices = map[string]*texttospeechpb.VoiceSelectionParams{
	"wavenet-a": {
		LanguageCode: "de-DE",
		Name:         "de-DE-Wavenet-A",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
	},
	"wavenet-b": {
		LanguageCode: "de-DE",
		Name:         "de-DE-Wavenet-B",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_MALE,
	},
	"wavenet-c": {
		LanguageCode: "de-DE",
		Name:         "de-DE-Wavenet-C",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
	},
	"wavenet-d": {
		LanguageCode: "de-DE",
		Name:         "de-DE-Wavenet-D",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_MALE,
	},
}

// Fetch downloads synthesized speech for text from the google
// text-to-speech api and writes it to path as mp3.
func (g *GCPClient) Fetch(ctx context.Context, text, path string) error {
	voice, ok := gcpVoices[g.Voice]
	if !ok {
		voice = gcpVoices["wavenet-c"]
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	time.Sleep(100 * time.Millisecond)
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	req := texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: voice,
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  speakingRate,
		},
	}
	resp, err := client.SynthesizeSpeech(ctx, &req)
	if err != nil {
		return fmt.Errorf("could not synthesize speech: %w", err)
	}

	// the resp's AudioContent is binary.
	if err := os.WriteFile(path, resp.AudioContent, os.ModePerm); err != nil {
		return err
	}
	slog.Debug("download GCP audio", "path", path)
	return nil
}
