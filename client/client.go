package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/foxhands/generationTextSerega/types"
)

// ErrMalformedTopics is returned when the topics endpoint answers with a
// body whose topics field is not an array.
var ErrMalformedTopics = errors.New("malformed topics response")

// Client is a thin HTTP client for the article generator API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates an API client. An empty baseURL falls back to the local
// server default.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// Categories fetches the category names available for a language.
func (c *Client) Categories(ctx context.Context, language string) ([]string, error) {
	q := url.Values{}
	q.Set("language", language)

	var body struct {
		Categories []string `json:"categories"`
	}
	if err := c.getJSON(ctx, "/api/categories?"+q.Encode(), &body); err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return body.Categories, nil
}

// Topics fetches the suggested topics for a category. A response whose
// topics field is not an array yields ErrMalformedTopics.
func (c *Client) Topics(ctx context.Context, category, language string) ([]string, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("language", language)

	var body struct {
		Topics json.RawMessage `json:"topics"`
	}
	if err := c.getJSON(ctx, "/api/topics?"+q.Encode(), &body); err != nil {
		return nil, fmt.Errorf("failed to load topics: %w", err)
	}

	var topics []string
	if err := json.Unmarshal(body.Topics, &topics); err != nil {
		return nil, ErrMalformedTopics
	}
	return topics, nil
}

// Generate submits a generation request and returns the result. On a
// non-200 the server's error message is surfaced when present.
func (c *Client) Generate(ctx context.Context, req types.GenerationRequest) (*types.GenerationResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to generate article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.serverError(resp)
	}

	var result types.GenerationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.serverError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// serverError prefers the server's {"error": ...} message over a raw
// status line.
func (c *Client) serverError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
}
