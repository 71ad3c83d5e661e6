package llm

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

type ollamaClient struct {
	client *api.Client
	model  string
}

func newOllamaClient(cfg *Config) (*ollamaClient, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultOllamaURL
	}
	// the native API lives at the root, not under the OpenAI-compatible /v1
	base = strings.TrimSuffix(strings.TrimSuffix(base, "/"), "/v1")

	parsed, err := url.Parse(base)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid ollama base URL")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultOllamaModel
	}

	return &ollamaClient{
		client: api.NewClient(parsed, cfg.httpClient()),
		model:  model,
	}, nil
}

func (c *ollamaClient) Provider() Provider { return ProviderOllama }

func (c *ollamaClient) Model() string { return c.model }

func (c *ollamaClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	if err := requireRequest(req); err != nil {
		return nil, err
	}

	stream := false
	chatReq := &api.ChatRequest{
		Model:    c.model,
		Messages: []api.Message{{Role: "user", Content: req.Prompt}},
		Stream:   &stream,
		Options: map[string]interface{}{
			"temperature": req.Temperature,
			"num_predict": req.MaxTokens,
		},
	}

	var resp api.ChatResponse
	err := c.client.Chat(ctx, chatReq, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	if err != nil {
		return nil, errors.FromContext(err, "ollama request failed").
			WithMeta("model", c.model)
	}

	out := &Response{
		Text:             resp.Message.Content,
		Model:            c.model,
		PromptTokens:     resp.PromptEvalCount,
		CompletionTokens: resp.EvalCount,
		TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
	}
	fillEstimatedUsage(out, req.Prompt)

	slog.Debug("Ollama chat received",
		"model", c.model,
		"chars", len(out.Text),
		"total_tokens", out.TotalTokens,
	)

	return out, nil
}
