package repository

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/TechMaverickHub/100x-LLM-week2-pdf-chatbot/internal/domain"
)

// GroqClient implements domain.ChatCompleter against Groq's
// OpenAI-compatible chat completion endpoint.
type GroqClient struct {
	config domain.Config
	logger domain.Logger
}

// NewGroqClient creates a new Groq chat completion client
func NewGroqClient(config domain.Config, logger domain.Logger) *GroqClient {
	return &GroqClient{
		config: config,
		logger: logger,
	}
}

// Complete sends one system+user exchange with deterministic sampling and
// returns the raw completion text. The API client is rebuilt per call so the
// credential is read from the current environment.
func (c *GroqClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	client := openai.NewClient(
		option.WithAPIKey(c.config.GetGroqAPIKey()),
		option.WithBaseURL(c.config.GetGroqBaseURL()),
	)

	response, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.config.GetGroqModel(),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Temperature:         openai.Float(0),
		TopP:                openai.Float(1),
		MaxCompletionTokens: openai.Int(int64(c.config.GetMaxContextTokens())),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	if usage := response.Usage; usage.TotalTokens > 0 {
		c.logger.Debug("chat completion usage",
			"prompt_tokens", usage.PromptTokens,
			"completion_tokens", usage.CompletionTokens,
			"total_tokens", usage.TotalTokens)
	}

	return response.Choices[0].Message.Content, nil
}
