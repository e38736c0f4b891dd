package generator

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const defaultCohereModel = "command-r"

// CohereLLM implements LLMClient using the Cohere Chat API.
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereLLM struct {
	client      *cohereclient.Client
	model       string
	maxTokens   int
	temperature float64
}

// NewCohereLLM builds a Cohere client. The HTTP client forces HTTP/1.1
// to avoid HTTP/2 protocol errors seen with the Cohere endpoint.
func NewCohereLLM(settings LLMSettings) *CohereLLM {
	httpClient := &http.Client{
		Timeout: 120 * time.Second,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}

	model := settings.Model
	if model == "" {
		model = defaultCohereModel
	}
	settings = settings.withDefaults()

	client := cohereclient.NewClient(
		cohereclient.WithToken(settings.APIKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereLLM{
		client:      client,
		model:       model,
		maxTokens:   settings.MaxTokens,
		temperature: settings.Temperature,
	}
}

func (c *CohereLLM) ModelName() string { return c.model }

func (c *CohereLLM) Complete(ctx context.Context, system, user string) (string, error) {
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message:     user,
		Model:       &c.model,
		Preamble:    &system,
		MaxTokens:   &c.maxTokens,
		Temperature: &c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat failed: %w", err)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("cohere returned an empty completion")
	}
	return resp.Text, nil
}
