package openai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/exp/slog"
)

const explainMessage = `Du bist ein freundlicher und kompetenter Tutor, der Studierenden komplexe BWL-Konzepte erklärt. Deine Aufgabe ist es, eine Karteikarte in eine natürliche Audio-Erklärung zu verwandeln.

STIL-ANWEISUNGEN:
1. Beginne mit einer lockeren Einleitung wie "Lass uns mal über X sprechen..." oder "Heute schauen wir uns an..."
2. Erkläre das Konzept Schritt für Schritt in einfacher, verständlicher Sprache
3. Füge konkrete, alltagsnahe Beispiele hinzu
4. Schließe mit einer kurzen, einprägsamen Zusammenfassung ab

WICHTIGE REGELN:
- Der Text wird VORGELESEN, also KEINE Aufzählungszeichen, Nummerierungen oder Formatierung, schreibe alles als fließenden Text
- Halte den Text zwischen 150-300 Wörtern
- Sprich den Zuhörer direkt an ("du", "dir")

OUTPUT: Nur der fertige Erklärungstext, nichts anderes.`

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type Response struct {
	Choices []struct {
		FinishReason string `json:"finish_reason"`
		Index        int    `json:"index"`
		Message      struct {
			Content string `json:"content"`
			Role    string `json:"role"`
		} `json:"message"`
	} `json:"choices"`
	Created float64 `json:"created"`
	ID      string  `json:"id"`
	Model   string  `json:"model"`
	Object  string  `json:"object"`
	Usage   struct {
		CompletionTokens int `json:"completion_tokens"`
		PromptTokens     int `json:"prompt_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type Client struct {
	endpoint string
	apiKey   string
	model    string
	cache    *Cache
}

func NewClient(apiKey string, cache *Cache) (*Client, error) {
	if cache == nil {
		return nil, errors.New("cache must not be nil")
	}
	return &Client{
		endpoint: "https://api.openai.com/v1/chat/completions",
		apiKey:   apiKey,
		model:    "gpt-4o-mini",
		cache:    cache,
	}, nil
}

// Explain rewrites a flashcard into a flowing explanation meant to be read
// aloud. It never fails; when the api does not deliver a usable result the
// raw question and answer are returned so synthesis can still proceed.
func (c *Client) Explain(question, answer string) string {
	answer = strings.ReplaceAll(answer, "<br>", "\n")
	answer = strings.ReplaceAll(answer, "<br/>", "\n")
	query := fmt.Sprintf("Verwandle diese Karteikarte in eine angenehme Audio-Erklärung:\n\nFRAGE: %s\n\nANTWORT:\n%s\n\nErstelle daraus einen natürlich klingenden Erklärungstext.", question, answer)

	content := c.fetch(query, explainMessage, 2)
	if content == "" {
		slog.Warn("falling back to raw card text", "question", question)
		return question + "\n\n" + answer
	}
	return content
}

// implements a very simple retry. the openai api sometimes fails to deliver
// a result, sub-sequent requests might succeed so we naively just try
// `retryCount` times. returns the empty string when retries are exhausted.
func (c *Client) fetch(query, message string, retryCount int) string {
	if retryCount == -1 {
		slog.Error("exceeded retries", "query", query)
		return ""
	}

	if content, ok := c.cache.Lookup(query); ok {
		slog.Debug("found in cache", "query", query)
		return content
	}

	payload := Request{
		Model: c.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: message,
			},
			{
				Role:    "user",
				Content: query,
			},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("error marshalling JSON payload: %v", err)
		fmt.Println("retry...")
		return c.fetch(query, message, retryCount-1)
	}

	req, err := http.NewRequest("POST", c.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		fmt.Printf("error creating request: %v", err)
		fmt.Println("retry...")
		return c.fetch(query, message, retryCount-1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("error sending request: %v", err)
		fmt.Println("retry...")
		return c.fetch(query, message, retryCount-1)
	}
	defer resp.Body.Close()

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		fmt.Printf("error decoding JSON response: %v\n", err)
		fmt.Println("retry...")
		return c.fetch(query, message, retryCount-1)
	}
	if len(result.Choices) == 0 {
		fmt.Println("no result, retry...")
		return c.fetch(query, message, retryCount-1)
	}

	content := strings.TrimSpace(result.Choices[0].Message.Content)
	c.cache.Add(query, content)
	return content
}
