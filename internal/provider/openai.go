package provider

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

// openaiProvider forwards completion requests to an OpenAI-compatible
// endpoint. It performs a single attempt per request; retry policy is the
// caller's decision.
type openaiProvider struct {
	client *openai.Client
	logger *slog.Logger
}

func newOpenAI(cfg *Config, logger *slog.Logger) System {
	clientCfg := openai.DefaultConfig(cfg.APIKey())
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &openaiProvider{
		client: openai.NewClientWithConfig(clientCfg),
		logger: logger.With("system", "provider", "variant", "openai"),
	}
}

func (p *openaiProvider) Mock() bool {
	return false
}

func (p *openaiProvider) Models() []Model {
	return Catalog()
}

func (p *openaiProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		if mapped := mapContextErr(ctx.Err()); mapped != nil {
			return nil, mapped
		}
		p.logger.Error("completion failed", "model", req.Model, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", ErrUnavailable)
	}

	return &Response{
		Output:           resp.Choices[0].Message.Content,
		Model:            resp.Model,
		CompletionTokens: resp.Usage.CompletionTokens,
	}, nil
}
