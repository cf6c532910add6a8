package convo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RecordTTL bounds how long an idle user's conversation state is kept
// when the Redis backend is in use.
const RecordTTL = 7 * 24 * time.Hour

// RedisStore is the opt-in durable backend. It holds each user's record
// as a JSON value so conversations survive restarts; the in-memory store
// stays the default.
type RedisStore struct {
	client         *redis.Client
	prefix         string
	defaultPersona string
	maxTurns       int
}

func NewRedisStore(url, prefix, defaultPersona string, maxPairs int) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client:         client,
		prefix:         prefix,
		defaultPersona: defaultPersona,
		maxTurns:       maxPairs * 2,
	}, nil
}

func (s *RedisStore) key(userID string) string {
	if s.prefix == "" {
		return "record:" + userID
	}
	return s.prefix + ":record:" + userID
}

func (s *RedisStore) load(ctx context.Context, userID string) (Record, error) {
	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{
			PersonaKey:       s.defaultPersona,
			History:          []Turn{},
			ActiveEngagement: true,
		}, nil
	}
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	if rec.History == nil {
		rec.History = []Turn{}
	}
	return rec, nil
}

func (s *RedisStore) save(ctx context.Context, userID string, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	return s.client.Set(ctx, s.key(userID), data, RecordTTL).Err()
}

func (s *RedisStore) Get(userID string) (Record, error) {
	ctx := context.Background()
	rec, err := s.load(ctx, userID)
	if err != nil {
		return Record{}, err
	}
	// First access inserts the default record
	if err := s.save(ctx, userID, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *RedisStore) SetPersona(userID, key string) error {
	ctx := context.Background()
	rec, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	rec.PersonaKey = key
	rec.History = []Turn{}
	return s.save(ctx, userID, rec)
}

func (s *RedisStore) ResetHistory(userID string) error {
	ctx := context.Background()
	rec, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	rec.History = []Turn{}
	return s.save(ctx, userID, rec)
}

func (s *RedisStore) ToggleEngagement(userID string) (bool, error) {
	ctx := context.Background()
	rec, err := s.load(ctx, userID)
	if err != nil {
		return false, err
	}
	rec.ActiveEngagement = !rec.ActiveEngagement
	if err := s.save(ctx, userID, rec); err != nil {
		return false, err
	}
	return rec.ActiveEngagement, nil
}

func (s *RedisStore) AppendExchange(userID string, userTurn, assistantTurn Turn) error {
	ctx := context.Background()
	rec, err := s.load(ctx, userID)
	if err != nil {
		return err
	}
	rec.History = append(rec.History, userTurn, assistantTurn)
	if len(rec.History) > s.maxTurns {
		rec.History = rec.History[len(rec.History)-s.maxTurns:]
	}
	return s.save(ctx, userID, rec)
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
