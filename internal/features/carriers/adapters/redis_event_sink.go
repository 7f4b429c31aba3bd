package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"carrier-hub/internal/features/carriers/domain"

	"github.com/redis/go-redis/v9"
)

const eventKeyPrefix = "fallback_events:"

// RedisEventSink implements ports.FallbackEventSink on a capped Redis list per
// route, newest events first.
type RedisEventSink struct {
	client  *redis.Client
	maxSize int64
}

// NewRedisEventSink creates a sink that retains at most maxSize events per route.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewRedisEventSink(redisURL string, maxSize int) (*RedisEventSink, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	if maxSize <= 0 {
		maxSize = 500
	}

	return &RedisEventSink{
		client:  redis.NewClient(opts),
		maxSize: int64(maxSize),
	}, nil
}

// Append records one fallback event and trims the route's log to the cap.
func (s *RedisEventSink) Append(ctx context.Context, event domain.FallbackEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal fallback event: %w", err)
	}

	key := eventKeyPrefix + event.Route

	pipe := s.client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, s.maxSize-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append fallback event for route %s: %w", event.Route, err)
	}

	return nil
}

// Recent returns up to limit events for a route, newest first.
func (s *RedisEventSink) Recent(ctx context.Context, route string, limit int) ([]domain.FallbackEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	raw, err := s.client.LRange(ctx, eventKeyPrefix+route, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read fallback events for route %s: %w", route, err)
	}

	events := make([]domain.FallbackEvent, 0, len(raw))
	for _, item := range raw {
		var event domain.FallbackEvent
		if err := json.Unmarshal([]byte(item), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fallback event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

// Close closes the Redis connection.
func (s *RedisEventSink) Close() error {
	return s.client.Close()
}
