package llm

import (
	"context"
	"log/slog"

	openaigo "github.com/sashabaranov/go-openai"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

type openAIClient struct {
	client *openaigo.Client
	model  string
}

func newOpenAIClient(cfg *Config) *openAIClient {
	openaiConfig := openaigo.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		openaiConfig.BaseURL = cfg.BaseURL
	}
	openaiConfig.HTTPClient = cfg.httpClient()

	model := cfg.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	return &openAIClient{
		client: openaigo.NewClientWithConfig(openaiConfig),
		model:  model,
	}
}

func (c *openAIClient) Provider() Provider { return ProviderOpenAI }

func (c *openAIClient) Model() string { return c.model }

func (c *openAIClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	if err := requireRequest(req); err != nil {
		return nil, err
	}

	resp, err := c.client.CreateChatCompletion(ctx, openaigo.ChatCompletionRequest{
		Model: c.model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleUser, Content: req.Prompt},
		},
		Temperature: float32(req.Temperature),
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, errors.FromContext(err, "openai request failed").
			WithMeta("model", c.model)
	}

	out := &Response{Model: c.model}
	if len(resp.Choices) > 0 {
		out.Text = resp.Choices[0].Message.Content
	}
	out.PromptTokens = resp.Usage.PromptTokens
	out.CompletionTokens = resp.Usage.CompletionTokens
	out.TotalTokens = resp.Usage.TotalTokens
	fillEstimatedUsage(out, req.Prompt)

	slog.Debug("OpenAI completion received",
		"model", c.model,
		"chars", len(out.Text),
		"total_tokens", out.TotalTokens,
	)

	return out, nil
}
