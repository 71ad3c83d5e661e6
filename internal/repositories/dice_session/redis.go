package dicesession

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

// Keys look like dice_session:{entity_id}:{context}
const (
	keyPrefix  = "dice_session:"
	defaultTTL = 2 * time.Hour
)

// Config holds the Redis repository dependencies
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

var _ Repository = (*redisRepository)(nil)

// NewRedisRepository creates a Redis backed dice session repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client, clock: cfg.Clock}, nil
}

// sessionKey validates the owner and context and builds the key
func sessionKey(entityID, rollContext string) (string, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("EntityID", entityID, vb)
	errors.ValidateRequired("Context", rollContext, vb)
	if err := vb.Build(); err != nil {
		return "", err
	}
	return keyPrefix + entityID + ":" + rollContext, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	key, err := sessionKey(input.EntityID, input.Context)
	if err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := r.clock.Now()
	session := &DiceSession{
		EntityID:  input.EntityID,
		Context:   input.Context,
		Rolls:     input.Rolls,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := r.write(ctx, key, session, ttl); err != nil {
		return nil, err
	}
	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	key, err := sessionKey(input.EntityID, input.Context)
	if err != nil {
		return nil, err
	}

	raw, err := r.client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, errors.NotFoundf("dice session %s not found", key)
	}
	if err != nil {
		return nil, errors.FromContext(err, "failed to read dice session").WithMeta("key", key)
	}

	session, err := decode(raw)
	if err != nil {
		return nil, err
	}

	// the stored deadline wins if Redis has not evicted the key yet
	if r.clock.Now().After(session.ExpiresAt) {
		r.client.Del(ctx, key)
		return nil, errors.NotFoundf("dice session %s has expired", key)
	}
	return &GetOutput{Session: session}, nil
}

// Delete removes the session and reports how many rolls it held
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	key, err := sessionKey(input.EntityID, input.Context)
	if err != nil {
		return nil, err
	}

	raw, err := r.client.GetDel(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return &DeleteOutput{}, nil
	}
	if err != nil {
		return nil, errors.FromContext(err, "failed to delete dice session").WithMeta("key", key)
	}

	out := &DeleteOutput{}
	if session, err := decode(raw); err == nil {
		out.RollsDeleted = len(session.Rolls)
	}
	return out, nil
}

// Update rewrites the session with whatever TTL it has left
func (r *redisRepository) Update(ctx context.Context, session *DiceSession) error {
	if session == nil {
		return errors.InvalidArgument("session is required")
	}
	key, err := sessionKey(session.EntityID, session.Context)
	if err != nil {
		return err
	}

	remaining := session.ExpiresAt.Sub(r.clock.Now())
	if remaining <= 0 {
		return errors.InvalidArgumentf("dice session %s has already expired", key)
	}
	return r.write(ctx, key, session, remaining)
}

func (r *redisRepository) write(ctx context.Context, key string, session *DiceSession, ttl time.Duration) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode dice session")
	}
	if err := r.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return errors.FromContext(err, "failed to store dice session").WithMeta("key", key)
	}
	return nil
}

func decode(raw []byte) (*DiceSession, error) {
	var session DiceSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode dice session")
	}
	return &session, nil
}
