// Package llm provides text-generation clients for the hosted and local
// model backends the suggestion pipeline can talk to.
package llm

//go:generate mockgen -destination=mock/mock_client.go -package=llmmock github.com/KirkDiggler/interfacing/internal/llm Client

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

// Provider names a generation backend
type Provider string

// Providers
const (
	ProviderNone   Provider = "none"
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
	ProviderGemini Provider = "gemini"
)

// Default models per provider
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultOllamaModel = "llama3.1"
	DefaultGeminiModel = "gemini-2.0-flash"

	DefaultOllamaURL = "http://localhost:11434"
	DefaultTimeout   = 60 * time.Second
)

// Request is a single-turn generation request
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Response is the generated text with token usage
type Response struct {
	Text             string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	// UsageEstimated is set when the backend reported no usage and the
	// counts come from a local tokenizer
	UsageEstimated bool
}

// Client generates text from a prompt
type Client interface {
	Generate(ctx context.Context, req *Request) (*Response, error)
	Provider() Provider
	Model() string
}

// Config selects and configures a backend
type Config struct {
	Provider   Provider
	Model      string
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Metrics    *Metrics
}

// Validate checks the provider specific requirements
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("Provider", string(c.Provider), []string{
		string(ProviderOpenAI), string(ProviderOllama), string(ProviderGemini),
	}, vb)
	switch c.Provider {
	case ProviderOpenAI, ProviderGemini:
		errors.ValidateRequired("APIKey", c.APIKey, vb)
	}

	return vb.Build()
}

func (c *Config) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// New creates the client named by cfg.Provider, wrapped with metrics
func New(ctx context.Context, cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	cfg.Provider = Provider(strings.ToLower(string(cfg.Provider)))
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	var (
		client Client
		err    error
	)
	switch cfg.Provider {
	case ProviderOpenAI:
		client = newOpenAIClient(cfg)
	case ProviderOllama:
		client, err = newOllamaClient(cfg)
	case ProviderGemini:
		client, err = newGeminiClient(ctx, cfg)
	}
	if err != nil {
		return nil, err
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}

	slog.Info("Generation client created",
		"provider", client.Provider(),
		"model", client.Model(),
		"base_url", cfg.BaseURL,
	)

	return &instrumented{next: client, metrics: metrics}, nil
}

// instrumented records request metrics around another client
type instrumented struct {
	next    Client
	metrics *Metrics
}

func (c *instrumented) Provider() Provider { return c.next.Provider() }

func (c *instrumented) Model() string { return c.next.Model() }

func (c *instrumented) Generate(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := c.next.Generate(ctx, req)
	c.metrics.observe(c.next.Provider(), c.next.Model(), time.Since(start), resp, err)
	return resp, err
}

func requireRequest(req *Request) error {
	if req == nil || strings.TrimSpace(req.Prompt) == "" {
		return errors.InvalidArgument("prompt is required")
	}
	return nil
}
