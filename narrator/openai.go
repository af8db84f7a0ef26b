package narrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

// ============================================================================
// OPENAI — Chat completions via the official SDK
// ============================================================================

const openAISystemPrompt = "You are a concise real estate market analyst. " +
	"Answer only from the figures you are given."

// OpenAI implements engine.TextGenerator using chat completions.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI generator. A non-empty Endpoint overrides the
// SDK base URL.
func NewOpenAI(cfg Config) *OpenAI {
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultHTTPTimeout
	}
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithRequestTimeout(cfg.Timeout),
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	cl := openai.NewClient(opts...)
	return &OpenAI{client: &cl, model: cfg.Model}
}

// Name implements engine.TextGenerator.
func (o *OpenAI) Name() string { return "openai" }

// Generate returns the first choice's message content.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	chat, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(openAISystemPrompt),
			openai.UserMessage(prompt),
		},
		Model: openai.ChatModel(o.model),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(chat.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return chat.Choices[0].Message.Content, nil
}
