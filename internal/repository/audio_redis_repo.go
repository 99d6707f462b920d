package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAudioStore keeps audio bytes under "audio:<filename>" with a TTL.
type RedisAudioStore struct {
	redis   *redis.Client
	ttl     time.Duration
	newName func() string
}

func NewRedisAudioStore(redisClient *redis.Client, ttl time.Duration) *RedisAudioStore {
	return &RedisAudioStore{redis: redisClient, ttl: ttl, newName: NewAudioFilename}
}

func audioKey(filename string) string {
	return "audio:" + filename
}

func (s *RedisAudioStore) Save(ctx context.Context, audio []byte) (string, error) {
	name := s.newName()
	ok, err := s.redis.SetNX(ctx, audioKey(name), audio, s.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to store audio: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("audio key collision for %s", name)
	}
	return name, nil
}

func (s *RedisAudioStore) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if !ValidAudioFilename(filename) {
		return nil, ErrAudioNotFound
	}

	data, err := s.redis.Get(ctx, audioKey(filename)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrAudioNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load audio: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
