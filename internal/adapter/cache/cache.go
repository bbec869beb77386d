// Package cache stores nutrition lookup results in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/scanplate-backend/internal/config"
	"github.com/heartmarshall/scanplate-backend/internal/domain"
)

const keyPrefix = "scanplate:lookup:"

// Cache is a Redis-backed lookup cache. Entries expire after ttl.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

// New connects to Redis and verifies the connection with a ping.
func New(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("cache: connect to redis: %w", err)
	}

	return &Cache{client: client, ttl: cfg.TTL, log: logger.With("adapter", "redis_cache")}, nil
}

// Close releases the Redis connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}

// Ping reports whether Redis is reachable.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// GetBarcode returns the cached candidate for code. A miss returns nil, nil.
func (c *Cache) GetBarcode(ctx context.Context, code string) (*domain.FoodCandidate, error) {
	var cand domain.FoodCandidate
	found, err := c.get(ctx, barcodeKey(code), &cand)
	if err != nil || !found {
		return nil, err
	}
	return &cand, nil
}

// SetBarcode caches the candidate for code.
func (c *Cache) SetBarcode(ctx context.Context, code string, cand *domain.FoodCandidate) error {
	return c.set(ctx, barcodeKey(code), cand)
}

// GetSearch returns cached search results. A miss returns nil, nil.
func (c *Cache) GetSearch(ctx context.Context, query string, limit int) ([]domain.FoodCandidate, error) {
	var cands []domain.FoodCandidate
	found, err := c.get(ctx, searchKey(query, limit), &cands)
	if err != nil || !found {
		return nil, err
	}
	return cands, nil
}

// SetSearch caches search results for query and limit.
func (c *Cache) SetSearch(ctx context.Context, query string, limit int, cands []domain.FoodCandidate) error {
	return c.set(ctx, searchKey(query, limit), cands)
}

func (c *Cache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// A stale or foreign value is treated as a miss and dropped.
		c.log.WarnContext(ctx, "cache: undecodable value", slog.String("key", key), slog.String("error", err.Error()))
		c.client.Del(ctx, key)
		return false, nil
	}
	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

func barcodeKey(code string) string {
	return keyPrefix + "barcode:" + strings.TrimSpace(code)
}

func searchKey(query string, limit int) string {
	return keyPrefix + "search:" + strconv.Itoa(limit) + ":" + strings.ToLower(strings.TrimSpace(query))
}
