package generator

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// LLMClient abstracts a chat-completion model so providers can be
// swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
	ModelName() string
}

// LLMSettings carries the provider-independent model configuration.
type LLMSettings struct {
	Model       string
	APIKey      string
	BaseURL     string
	MaxTokens   int
	Temperature float64
}

// Generation defaults, matching the local-model setup the service was
// originally tuned for.
const (
	defaultMaxTokens   = 2500
	defaultTemperature = 0.7
)

func (s LLMSettings) withDefaults() LLMSettings {
	if s.MaxTokens <= 0 {
		s.MaxTokens = defaultMaxTokens
	}
	if s.Temperature <= 0 {
		s.Temperature = defaultTemperature
	}
	return s
}

// NewLLMClientFromEnv picks a provider from the environment: Cohere when
// COHERE_API_KEY is set, otherwise an OpenAI-compatible endpoint when
// OPENAI_API_KEY or LM_BASE_URL is set (the latter covers local
// LM Studio style servers that accept any key).
func NewLLMClientFromEnv() (LLMClient, error) {
	settings := LLMSettings{
		Model:       os.Getenv("LM_MODEL"),
		BaseURL:     os.Getenv("LM_BASE_URL"),
		MaxTokens:   envInt("LM_MAX_TOKENS", defaultMaxTokens),
		Temperature: envFloat("LM_TEMPERATURE", defaultTemperature),
	}

	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		settings.APIKey = key
		return NewCohereLLM(settings), nil
	}

	key := os.Getenv("OPENAI_API_KEY")
	if key == "" && settings.BaseURL == "" {
		return nil, fmt.Errorf("no LLM provider configured: set COHERE_API_KEY, OPENAI_API_KEY or LM_BASE_URL")
	}
	if key == "" {
		// Local OpenAI-compatible servers ignore the key but the SDK
		// requires one.
		key = "local"
	}
	settings.APIKey = key
	return NewOpenAILLM(settings), nil
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
