package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/host"
	"github.com/KirkDiggler/interfacing/internal/orchestrators/suggestion"
)

const testScene = `session_id: chat-test
messages:
  - name: Merchant
    content: "The merchant eyes you suspiciously."
health: {current: 3, max: 4}
morale: {current: 3, max: 5}
skill_levels:
  volition: 3
  logic: 2
`

const testSuggestions = `Here you go:
[
  {"skill": "volition", "dc": 10, "difficulty": "Medium", "shortText": "Hold steady",
   "voiceText": "Breathe. He is only a merchant.", "tags": ["calm"]},
  {"skill": "logic", "dc": 12, "difficulty": "Challenging", "shortText": "Check the ledger",
   "voiceText": "His numbers do not add up.", "tags": []}
]`

type CLITestSuite struct {
	suite.Suite
	dir       string
	scene     string
	mr        *miniredis.Miniredis
	llm       *httptest.Server
	llmCalls  atomic.Int32
	narration string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.scene = filepath.Join(s.dir, "scene.yaml")
	s.Require().NoError(os.WriteFile(s.scene, []byte(testScene), 0o600))

	s.mr = miniredis.RunT(s.T())
	s.llmCalls.Store(0)
	s.narration = "Your voice stays level. The merchant relaxes."

	s.llm = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.llmCalls.Add(1)
		var req struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &req)

		text := testSuggestions
		if len(req.Messages) > 0 && strings.Contains(req.Messages[0].Content, "ROLL:") {
			text = s.narration
		}
		resp, _ := json.Marshal(map[string]any{
			"model":             "llama3.1",
			"created_at":        "2026-03-01T00:00:00Z",
			"message":           map[string]string{"role": "assistant", "content": text},
			"done":              true,
			"prompt_eval_count": 10,
			"eval_count":        5,
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(resp)
	}))
	s.T().Cleanup(s.llm.Close)

	s.T().Setenv("INTERFACING_REDIS_URL", "redis://"+s.mr.Addr())
	s.T().Setenv("INTERFACING_LLM_PROVIDER", "ollama")
	s.T().Setenv("INTERFACING_LLM_BASE_URL", s.llm.URL)
	s.T().Setenv("INTERFACING_LOG_LEVEL", "error")
	s.T().Setenv("INTERFACING_SUGGESTION_COUNT", "3")
}

func (s *CLITestSuite) run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--scene", s.scene}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLITestSuite) snapshot() *suggestion.Snapshot {
	out, err := s.run("show")
	s.Require().NoError(err)

	var snap suggestion.Snapshot
	s.Require().NoError(json.Unmarshal([]byte(out), &snap))
	return &snap
}

func (s *CLITestSuite) TestSuggestExecuteFlow() {
	out, err := s.run("suggest")
	s.Require().NoError(err)
	s.Contains(out, "Volition (Medium, DC 10): Hold steady")
	s.Contains(out, "Logic (Challenging, DC 12): Check the ledger")
	s.Equal(int32(1), s.llmCalls.Load())

	out, err = s.run("suggest")
	s.Require().NoError(err)
	s.Contains(out, "(cached)")
	s.Equal(int32(1), s.llmCalls.Load())

	snap := s.snapshot()
	s.Equal("chat-test", snap.SessionID)
	s.Equal(suggestion.StateReady, snap.State)
	s.Require().Len(snap.Suggestions, 2)

	out, err = s.run("execute", snap.Suggestions[0].ID)
	s.Require().NoError(err)
	s.Contains(out, "Volition: rolled")
	s.Contains(out, "vs DC 10")
	s.Contains(out, s.narration)
	s.Equal(int32(2), s.llmCalls.Load())

	snap = s.snapshot()
	s.Require().NotNil(snap.LastResult)
	s.Equal("volition", snap.LastResult.Suggestion.Skill)
	s.True(s.mr.Exists("dice_session:chat-test:skill_checks"))
}

func (s *CLITestSuite) TestExecuteUnknownSuggestion() {
	_, err := s.run("execute", "sug_missing")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal(3, errors.GetCode(err).ExitCode())
}

func (s *CLITestSuite) TestSuggestWithoutProvider() {
	s.T().Setenv("INTERFACING_LLM_PROVIDER", "none")

	_, err := s.run("suggest")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "generation API not configured")
	s.Equal(4, errors.GetCode(err).ExitCode())

	snap := s.snapshot()
	s.Equal(suggestion.StateError, snap.State)
	s.Equal("generation API not configured", snap.Error)
}

func (s *CLITestSuite) TestClear() {
	_, err := s.run("suggest")
	s.Require().NoError(err)

	out, err := s.run("clear")
	s.Require().NoError(err)
	s.Contains(out, "cleared")

	snap := s.snapshot()
	s.Empty(snap.Suggestions)
	s.Equal(suggestion.StateIdle, snap.State)
}

func (s *CLITestSuite) TestRoll() {
	out, err := s.run("roll", "volition", "10")
	s.Require().NoError(err)
	s.Contains(out, "Volition: ")
	s.Contains(out, "vs DC 10 (Medium)")

	_, err = s.run("roll", "volition", "ten")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestSayAppendsAndRegeneratesInAutoMode() {
	s.T().Setenv("INTERFACING_MODE", "auto")

	out, err := s.run("say", "I", "show", "my", "badge.")
	s.Require().NoError(err)
	s.Contains(out, "Hold steady")
	s.Equal(int32(1), s.llmCalls.Load())

	scene, err := host.LoadScene(s.scene)
	s.Require().NoError(err)
	msgs := scene.RecentMessages(10)
	s.Require().Len(msgs, 2)
	s.True(msgs[1].IsUser)
	s.Equal("I show my badge.", msgs[1].Content)
}

func (s *CLITestSuite) TestSayManualModeDoesNotGenerate() {
	out, err := s.run("say", "--as", "Merchant", "Well?")
	s.Require().NoError(err)
	s.Empty(out)
	s.Equal(int32(0), s.llmCalls.Load())
}

func (s *CLITestSuite) TestMissingScene() {
	s.scene = filepath.Join(s.dir, "nope.yaml")

	_, err := s.run("show")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *CLITestSuite) TestInvalidConfig() {
	s.T().Setenv("INTERFACING_LOG_LEVEL", "loud")

	_, err := s.run("show")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CLITestSuite) TestPrune() {
	s.Require().NoError(s.mr.Set("suggestion_session:broken", "{"))

	out, err := s.run("prune")
	s.Require().NoError(err)
	s.Contains(out, "checked 1 sessions, 1 corrupt")
	s.True(s.mr.Exists("suggestion_session:broken"))

	out, err = s.run("prune", "--yes")
	s.Require().NoError(err)
	s.Contains(out, "deleted 1")
	s.False(s.mr.Exists("suggestion_session:broken"))
}
