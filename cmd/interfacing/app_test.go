package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/interfacing/internal/entities"
	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/host"
	"github.com/KirkDiggler/interfacing/internal/orchestrators/suggestion"
	"github.com/KirkDiggler/interfacing/internal/redis"
	suggestionmock "github.com/KirkDiggler/interfacing/internal/orchestrators/suggestion/mock"
	suggestionsession "github.com/KirkDiggler/interfacing/internal/repositories/suggestion_session"
	suggestionsessionmock "github.com/KirkDiggler/interfacing/internal/repositories/suggestion_session/mock"
)

type AppTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	sessions *suggestionsessionmock.MockRepository
	service  *suggestionmock.MockService
	app      *app
	ctx      context.Context
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessions = suggestionsessionmock.NewMockRepository(s.ctrl)
	s.service = suggestionmock.NewMockService(s.ctrl)
	s.ctx = context.Background()
	s.app = &app{
		cfg:         &Config{},
		scene:       host.NewScene(host.SceneData{SessionID: "chat-1"}),
		sessions:    s.sessions,
		suggestions: s.service,
	}
}

func (s *AppTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AppTestSuite) TestLoad_NoStoredSession() {
	s.sessions.EXPECT().
		Get(s.ctx, suggestionsession.GetInput{SessionID: "chat-1"}).
		Return(nil, errors.NotFound("suggestion session chat-1 not found"))

	s.NoError(s.app.load(s.ctx))
}

func (s *AppTestSuite) TestLoad_Restores() {
	rec := &suggestionsession.Session{
		SessionID:   "chat-1",
		State:       "ready",
		Suggestions: []entities.Suggestion{{ID: "sug_1_0", Skill: "logic"}},
		ContextHash: "2p",
	}
	s.sessions.EXPECT().
		Get(s.ctx, suggestionsession.GetInput{SessionID: "chat-1"}).
		Return(&suggestionsession.GetOutput{Session: rec}, nil)
	s.service.EXPECT().
		Restore(s.ctx, suggestion.SnapshotFromRecord(rec)).
		Return(nil)

	s.NoError(s.app.load(s.ctx))
}

func (s *AppTestSuite) TestLoad_StorageDown() {
	s.sessions.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("failed to get session from Redis"))

	err := s.app.load(s.ctx)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *AppTestSuite) TestSave() {
	snap := &suggestion.Snapshot{
		SessionID: "chat-1",
		State:     suggestion.StateIdle,
		UpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	s.service.EXPECT().Snapshot().Return(snap)
	s.sessions.EXPECT().
		Save(s.ctx, suggestionsession.SaveInput{Session: snap.ToRecord()}).
		Return(&suggestionsession.SaveOutput{Session: snap.ToRecord()}, nil)

	s.NoError(s.app.save(s.ctx))
}

func (s *AppTestSuite) TestSave_Error() {
	s.service.EXPECT().Snapshot().Return(&suggestion.Snapshot{SessionID: "chat-1"})
	s.sessions.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("failed to store session in Redis"))

	s.Error(s.app.save(s.ctx))
}

func (s *AppTestSuite) TestNewApp_ClosesRedisOnWiringError() {
	scenePath := filepath.Join(s.T().TempDir(), "scene.yaml")
	s.Require().NoError(host.NewScene(host.SceneData{SessionID: "chat-1"}).Save(scenePath))

	closed := 0
	defer func(orig func(string) (redis.Client, func(), error)) { openRedis = orig }(openRedis)
	openRedis = func(rawURL string) (redis.Client, func(), error) {
		client, closeFn, err := redis.Open(rawURL)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			closed++
			closeFn()
		}, nil
	}

	_, err := newApp(s.ctx, &Config{
		RedisURL:    redis.MemoryURL,
		ScenePath:   scenePath,
		SessionTTL:  time.Hour,
		LLMProvider: "openai",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal(1, closed)
}
