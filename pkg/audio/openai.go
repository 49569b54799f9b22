package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"
)

// tts voices supported by the openai speech api
var Voices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

type OpenAIClient struct {
	endpoint string
	apiKey   string
	Voice    string
}

func NewOpenAIClient(apiKey, voice string) *OpenAIClient {
	return &OpenAIClient{
		endpoint: "https://api.openai.com/v1/audio/speech",
		apiKey:   apiKey,
		Voice:    voice,
	}
}

type speechRequest struct {
	Model string  `json:"model"`
	Voice string  `json:"voice"`
	Input string  `json:"input"`
	Speed float64 `json:"speed"`
}

// Fetch downloads synthesized speech for text from the openai speech api
// and writes it to path as mp3.
func (c *OpenAIClient) Fetch(ctx context.Context, text, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	resp, err := c.fetch(ctx, text, 3)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return err
	}
	slog.Debug("download openai audio", "path", path)
	return nil
}

// implements a very simple retry. the speech api occasionally returns a
// transient error, sub-sequent requests might succeed so we naively just try
// `retryCount` times.
func (c *OpenAIClient) fetch(ctx context.Context, text string, retryCount int) (*http.Response, error) {
	if retryCount == -1 {
		return nil, fmt.Errorf("exceeded retries for text: %.30s", text)
	}

	payload, err := json.Marshal(speechRequest{
		Model: "tts-1-hd",
		Voice: c.Voice,
		Input: text,
		Speed: speakingRate,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("error sending request to openai speech api: %v\n", err)
		fmt.Println("retry...")
		return c.fetch(ctx, text, retryCount-1)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		fmt.Printf("openai speech api returned status %d\n", resp.StatusCode)
		fmt.Println("retry...")
		return c.fetch(ctx, text, retryCount-1)
	}
	return resp, nil
}
