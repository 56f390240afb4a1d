package sequence

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const redisKey = "audit:sequence"

type redisSequence struct {
	client *redis.Client
}

// NewRedis returns a sequence backed by a shared Redis counter, for
// deployments running more than one server process. The key is seeded once
// with SETNX so every process agrees on the starting point.
func NewRedis(client *redis.Client) (Sequence, error) {
	if err := client.SetNX(context.Background(), redisKey, Seed, 0).Err(); err != nil {
		return nil, err
	}
	return &redisSequence{client: client}, nil
}

func (s *redisSequence) Next(ctx context.Context) (int64, error) {
	return s.client.Incr(ctx, redisKey).Result()
}
