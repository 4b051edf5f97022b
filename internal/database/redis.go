package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/config"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
)

const (
	jobListKey        = "jobs:list"
	jobListVersionKey = "jobs:list:version"
)

var errStaleJobList = errors.New("job list invalidated since read")

// RedisClient wraps the redis client with helper methods for the job list cache
type RedisClient struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(cfg *config.Config, logger *slog.Logger) (*RedisClient, error) {
	logger.Info("🔌 [Redis] Connecting to Redis...",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
		"db", cfg.RedisDB,
	)

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [Redis] Redis connection established")

	return NewRedisClientForTesting(client, cfg, logger), nil
}

// NewRedisClientForTesting creates a Redis client with a provided redis.Client (for testing)
func NewRedisClientForTesting(client *redis.Client, cfg *config.Config, logger *slog.Logger) *RedisClient {
	return &RedisClient{
		client: client,
		logger: logger,
		ttl:    time.Duration(cfg.JobCacheTTL) * time.Second,
	}
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

func (r *RedisClient) GetJobList(ctx context.Context) ([]models.Job, bool, error) {
	data, err := r.client.Get(ctx, jobListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		r.logger.Error("❌ [Redis] Failed to get job list", "error", err)
		return nil, false, err
	}

	var jobs []models.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		r.logger.Warn("⚠️ [Redis] Corrupt job list entry, treating as miss", "error", err)
		return nil, false, nil
	}

	r.logger.Debug("📖 [Redis] Job list cache hit", "job_count", len(jobs))
	return jobs, true, nil
}

// JobListVersion returns the invalidation counter, 0 if it was never bumped
func (r *RedisClient) JobListVersion(ctx context.Context) (int64, error) {
	version, err := getVersion(ctx, r.client)
	if err != nil {
		r.logger.Error("❌ [Redis] Failed to read job list version", "error", err)
		return 0, err
	}
	return version, nil
}

// SetJobList stores the job listing with the configured TTL, unless the
// version moved on since the caller read it
func (r *RedisClient) SetJobList(ctx context.Context, version int64, jobs []models.Job) error {
	data, err := json.Marshal(jobs)
	if err != nil {
		return err
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := getVersion(ctx, tx)
		if err != nil {
			return err
		}
		if current != version {
			return errStaleJobList
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, jobListKey, data, r.ttl)
			return nil
		})
		return err
	}, jobListVersionKey)

	switch {
	case errors.Is(err, errStaleJobList), errors.Is(err, redis.TxFailedErr):
		r.logger.Debug("⏭️ [Redis] Skipped stale job list fill", "version", version)
		return nil
	case err != nil:
		r.logger.Error("❌ [Redis] Failed to set job list", "error", err)
		return err
	}

	r.logger.Debug("💾 [Redis] Stored job list",
		"job_count", len(jobs),
		"version", version,
		"ttl", r.ttl,
	)
	return nil
}

func (r *RedisClient) InvalidateJobList(ctx context.Context) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, jobListVersionKey)
		pipe.Del(ctx, jobListKey)
		return nil
	})
	if err != nil {
		r.logger.Error("❌ [Redis] Failed to invalidate job list", "error", err)
		return err
	}

	r.logger.Debug("🗑️ [Redis] Invalidated job list")
	return nil
}

func getVersion(ctx context.Context, c redis.Cmdable) (int64, error) {
	version, err := c.Get(ctx, jobListVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// NoOpJobListCache always misses. Used when Redis is not available
type NoOpJobListCache struct{}

// NewNoOpJobListCache creates a cache that never stores anything
func NewNoOpJobListCache(logger *slog.Logger) JobListCache {
	logger.Warn("⚠️ [Redis] Using no-op job list cache - caching is disabled")
	return NoOpJobListCache{}
}

func (NoOpJobListCache) GetJobList(ctx context.Context) ([]models.Job, bool, error) {
	return nil, false, nil
}

func (NoOpJobListCache) JobListVersion(ctx context.Context) (int64, error) {
	return 0, nil
}

func (NoOpJobListCache) SetJobList(ctx context.Context, version int64, jobs []models.Job) error {
	return nil
}

func (NoOpJobListCache) InvalidateJobList(ctx context.Context) error {
	return nil
}

func (NoOpJobListCache) Close() error {
	return nil
}
