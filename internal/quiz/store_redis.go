package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each session as a JSON blob under quiz:session:<id>.
// Sessions expire after the configured TTL, which doubles as cleanup for
// abandoned attempts.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
	ttl    time.Duration
}

func NewRedisStore(addr, password string, db int, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{client: client, ctx: ctx, ttl: ttl}, nil
}

func sessionKey(id string) string { return "quiz:session:" + id }

func (r *RedisStore) PutSession(s *Session) error {
	body, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, sessionKey(s.ID), body, r.ttl).Err()
}

func (r *RedisStore) GetSession(id string) (*Session, error) {
	body, err := r.client.Get(r.ctx, sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	var s Session
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RedisStore) Current(id string) (QuestionView, error) {
	s, err := r.GetSession(id)
	if err != nil {
		return QuestionView{}, err
	}
	return s.Current(), nil
}

func (r *RedisStore) RecordAnswer(id, value string) (QuestionView, error) {
	s, err := r.GetSession(id)
	if err != nil {
		return QuestionView{}, err
	}
	s.Record(s.Pos, value)
	if err := r.PutSession(s); err != nil {
		return QuestionView{}, err
	}
	return s.Current(), nil
}

func (r *RedisStore) Navigate(id string, delta int, value *string) (QuestionView, error) {
	s, err := r.GetSession(id)
	if err != nil {
		return QuestionView{}, err
	}
	s.RecordCurrent(value)
	if delta > 0 {
		s.Next()
	} else if delta < 0 {
		s.Prev()
	}
	if err := r.PutSession(s); err != nil {
		return QuestionView{}, err
	}
	return s.Current(), nil
}

func (r *RedisStore) Submit(id string, value *string) (ResultSummary, error) {
	s, err := r.GetSession(id)
	if err != nil {
		return ResultSummary{}, err
	}
	s.RecordCurrent(value)
	sum := Score(s)
	s.Status = StatusSubmitted
	s.Summary = &sum
	if err := r.PutSession(s); err != nil {
		return ResultSummary{}, err
	}
	return sum, nil
}

func (r *RedisStore) Result(id string) (ResultSummary, error) {
	s, err := r.GetSession(id)
	if err != nil {
		return ResultSummary{}, err
	}
	if s.Summary == nil {
		return ResultSummary{}, errors.New("session not submitted")
	}
	return *s.Summary, nil
}

func (r *RedisStore) Delete(id string) error {
	n, err := r.client.Del(r.ctx, sessionKey(id)).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (r *RedisStore) Close() error { return r.client.Close() }
