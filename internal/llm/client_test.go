package llm

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/interfacing/internal/errors"
)

type stubClient struct {
	resp *Response
	err  error
}

func (s *stubClient) Generate(context.Context, *Request) (*Response, error) { return s.resp, s.err }
func (s *stubClient) Provider() Provider                                    { return ProviderOllama }
func (s *stubClient) Model() string                                         { return "stub" }

func TestNew_Validation(t *testing.T) {
	testCases := []struct {
		name string
		cfg  *Config
	}{
		{name: "nil config", cfg: nil},
		{name: "unknown provider", cfg: &Config{Provider: "carrier-pigeon"}},
		{name: "none provider", cfg: &Config{Provider: ProviderNone}},
		{name: "openai without key", cfg: &Config{Provider: ProviderOpenAI}},
		{name: "gemini without key", cfg: &Config{Provider: ProviderGemini}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(context.Background(), tc.cfg)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestNew_ProviderIsCaseInsensitive(t *testing.T) {
	client, err := New(context.Background(), &Config{Provider: "OLLAMA"})
	require.NoError(t, err)
	assert.Equal(t, ProviderOllama, client.Provider())
}

func TestInstrumented_RecordsOutcome(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	ok := &instrumented{next: &stubClient{resp: &Response{Text: "hi", PromptTokens: 3, CompletionTokens: 1, TotalTokens: 4}}, metrics: m}
	_, err := ok.Generate(context.Background(), &Request{Prompt: "p"})
	require.NoError(t, err)

	empty := &instrumented{next: &stubClient{resp: &Response{}}, metrics: m}
	_, err = empty.Generate(context.Background(), &Request{Prompt: "p"})
	require.NoError(t, err)

	failing := &instrumented{next: &stubClient{err: errors.DeadlineExceeded("slow")}, metrics: m}
	_, err = failing.Generate(context.Background(), &Request{Prompt: "p"})
	require.Error(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("ollama", "stub", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("ollama", "stub", "empty")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("ollama", "stub", "timeout")), 0)
}

func TestMetrics_ErrorStatus(t *testing.T) {
	m := NewMetrics(nil)
	m.observe(ProviderOpenAI, "gpt", time.Millisecond, nil, stderrors.New("nope"))
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("openai", "gpt", "error")), 0)
}

func TestEstimateTokens_Fallback(t *testing.T) {
	offlineTokenizer(t)

	assert.Equal(t, 0, EstimateTokens("gpt-4o-mini", ""))
	assert.Equal(t, 1, EstimateTokens("gpt-4o-mini", "abc"))
	assert.Equal(t, 4, EstimateTokens("llama3.1", "Harry Du Bois"))
}

func TestFillEstimatedUsage_KeepsReportedUsage(t *testing.T) {
	resp := &Response{Text: "x", PromptTokens: 5, TotalTokens: 6}
	fillEstimatedUsage(resp, "prompt")
	assert.False(t, resp.UsageEstimated)
	assert.Equal(t, 6, resp.TotalTokens)
}
