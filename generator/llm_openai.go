package generator

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const defaultOpenAIModel = "gemma-3-4b-it-qat"

// OpenAILLM implements LLMClient with the official openai-go SDK. With a
// BaseURL override it also talks to OpenAI-compatible local servers such
// as LM Studio.
type OpenAILLM struct {
	model    string
	settings LLMSettings
	opts     []option.RequestOption
}

// NewOpenAILLM builds the client from settings.
func NewOpenAILLM(settings LLMSettings) *OpenAILLM {
	model := settings.Model
	if model == "" {
		model = defaultOpenAIModel
	}
	settings = settings.withDefaults()

	opts := []option.RequestOption{option.WithAPIKey(settings.APIKey)}
	if settings.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(settings.BaseURL))
	}
	return &OpenAILLM{model: model, settings: settings, opts: opts}
}

func (o *OpenAILLM) ModelName() string { return o.model }

func (o *OpenAILLM) Complete(ctx context.Context, system, user string) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		MaxTokens:   openai.Int(int64(o.settings.MaxTokens)),
		Temperature: openai.Float(o.settings.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	if resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion returned an empty message")
	}
	return resp.Choices[0].Message.Content, nil
}
