// Package cache implements an optional Redis read cache for education
// lists. A nil *Cache is valid and means caching is disabled: reads
// miss and writes are no-ops, so callers never branch on configuration.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"edudesk/internal/education"
)

// ErrMiss is returned when the requested key is not cached.
var ErrMiss = errors.New("cache: miss")

// TTL is short: the cache only absorbs repeated list reads between
// mutations, which invalidate it anyway.
const TTL = 5 * time.Minute

// Cache is a Redis-backed read cache for a student's education list.
type Cache struct {
	client *redis.Client
}

// New connects to Redis at addr and verifies the connection.
func New(addr string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: connect %s: %w", addr, err)
	}
	return &Cache{client: client}, nil
}

// Close closes the Redis connection. Safe on a nil receiver.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func educationKey(studentID string) string {
	return "education:student:" + studentID
}

// GetEducation returns the cached list for a student, or ErrMiss.
func (c *Cache) GetEducation(ctx context.Context, studentID string) ([]education.Record, error) {
	if c == nil {
		return nil, ErrMiss
	}
	data, err := c.client.Get(ctx, educationKey(studentID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, err
	}
	var records []education.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("cache: decode education list: %w", err)
	}
	return records, nil
}

// SetEducation stores a student's list.
func (c *Cache) SetEducation(ctx context.Context, studentID string, records []education.Record) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("cache: encode education list: %w", err)
	}
	return c.client.Set(ctx, educationKey(studentID), data, TTL).Err()
}

// InvalidateEducation drops a student's cached list. Called on every
// mutation of that student's records.
func (c *Cache) InvalidateEducation(ctx context.Context, studentID string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, educationKey(studentID)).Err()
}
