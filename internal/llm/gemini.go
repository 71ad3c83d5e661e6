package llm

import (
	"context"
	"log/slog"

	"google.golang.org/genai"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

type geminiClient struct {
	client *genai.Client
	model  string
}

func newGeminiClient(ctx context.Context, cfg *Config) (*geminiClient, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.httpClient(),
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create gemini client")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return &geminiClient{client: client, model: model}, nil
}

func (c *geminiClient) Provider() Provider { return ProviderGemini }

func (c *geminiClient) Model() string { return c.model }

func (c *geminiClient) Generate(ctx context.Context, req *Request) (*Response, error) {
	if err := requireRequest(req); err != nil {
		return nil, err
	}

	temperature := float32(req.Temperature)
	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)},
		&genai.GenerateContentConfig{
			Temperature:     &temperature,
			MaxOutputTokens: int32(req.MaxTokens),
		},
	)
	if err != nil {
		return nil, errors.FromContext(err, "gemini request failed").
			WithMeta("model", c.model)
	}

	out := &Response{Text: resp.Text(), Model: c.model}
	if u := resp.UsageMetadata; u != nil {
		out.PromptTokens = int(u.PromptTokenCount)
		out.CompletionTokens = int(u.CandidatesTokenCount)
		out.TotalTokens = int(u.TotalTokenCount)
	}
	fillEstimatedUsage(out, req.Prompt)

	slog.Debug("Gemini content received",
		"model", c.model,
		"chars", len(out.Text),
		"total_tokens", out.TotalTokens,
	)

	return out, nil
}
