package agents

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/mkrsna/nse-advisor/internal/config"
	"github.com/mkrsna/nse-advisor/internal/logger"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// GroqClient talks to Groq's OpenAI-compatible chat endpoint.
type GroqClient struct {
	client *openai.Client
	model  string
	cfg    *config.Config
	logger *logger.Logger
}

func NewGroqClient(cfg *config.Config, log *logger.Logger) *GroqClient {
	ocfg := openai.DefaultConfig(cfg.Groq.APIKey)
	ocfg.BaseURL = groqBaseURL

	return &GroqClient{
		client: openai.NewClientWithConfig(ocfg),
		model:  cfg.Groq.Model,
		cfg:    cfg,
		logger: log,
	}
}

func (g *GroqClient) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.GroqTimeout())
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq API call: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}

	content := resp.Choices[0].Message.Content
	g.logger.Debug("groq response", "length", len(content))
	return content, nil
}
