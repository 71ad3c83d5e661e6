package suggestionsession

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/interfacing/internal/errors"
	"github.com/KirkDiggler/interfacing/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/interfacing/internal/redis"
)

const (
	// Key pattern: suggestion_session:{session_id}
	sessionKeyPrefix = "suggestion_session:"

	// DefaultTTL is how long an untouched session survives
	DefaultTTL = 2 * time.Hour

	errSessionNil       = "session cannot be nil"
	errSessionIDEmpty   = "session ID cannot be empty"
	errNegativeDuration = "TTL cannot be negative"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client

	// Optional
	Clock      clock.Clock
	DefaultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.DefaultTTL < 0 {
		vb.Field("DefaultTTL", errNegativeDuration)
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a Redis backed suggestion session repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	r := &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    cfg.DefaultTTL,
	}
	if r.clock == nil {
		r.clock = clock.New()
	}
	if r.ttl == 0 {
		r.ttl = DefaultTTL
	}
	return r, nil
}

var _ Repository = (*redisRepository)(nil)

// Save writes the session, refreshing its expiry
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.TTL < 0 {
		return nil, errors.InvalidArgument(errNegativeDuration)
	}

	ttl := input.TTL
	if ttl == 0 {
		ttl = r.ttl
	}

	session := *input.Session
	now := r.clock.Now()
	session.SavedAt = now
	session.ExpiresAt = now.Add(ttl)

	raw, err := json.Marshal(&session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	if err := r.client.Set(ctx, r.buildKey(session.SessionID), raw, ttl).Err(); err != nil {
		return nil, errors.FromContext(err, "failed to store session in Redis").
			WithMeta("session_id", session.SessionID)
	}

	return &SaveOutput{Session: &session}, nil
}

// Get loads a session, treating expired entries as missing
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := r.buildKey(input.SessionID)
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NotFoundf("suggestion session %s not found", input.SessionID)
		}
		return nil, errors.FromContext(err, "failed to get session from Redis")
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	if !session.ExpiresAt.IsZero() && r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFoundf("suggestion session %s has expired", input.SessionID)
	}

	return &GetOutput{Session: &session}, nil
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	n, err := r.client.Del(ctx, r.buildKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.FromContext(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func (r *redisRepository) buildKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
