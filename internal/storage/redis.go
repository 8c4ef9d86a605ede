package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jwebster45206/mythic-editor/pkg/draft"
	"github.com/jwebster45206/mythic-editor/pkg/storage"
)

const (
	draftKeyPrefix = "draft:"
	draftIndexKey  = "drafts"
)

// RedisStorage implements storage.Storage with drafts kept as JSON strings
// under draft:<id>, each with a TTL, and their ids indexed in a set.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisStorage implements Storage interface
var _ storage.Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance. redisURL may be a
// redis:// URL or a bare host:port. A ttl of zero keeps drafts forever.
func NewRedisStorage(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opts := &redis.Options{Addr: redisURL}
	if strings.Contains(redisURL, "://") {
		var err error
		if opts, err = redis.ParseURL(redisURL); err != nil {
			return nil, fmt.Errorf("failed to parse redis URL: %w", err)
		}
	}

	return &RedisStorage{
		client: redis.NewClient(opts),
		logger: logger,
		ttl:    ttl,
	}, nil
}

// Health and lifecycle methods

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context, attempts int, delay time.Duration) error {
	for i := range attempts {
		err := r.Ping(ctx)
		if err == nil {
			r.logger.Info("Redis connection established")
			return nil
		}
		r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
		case <-time.After(delay):
		}
	}
	return fmt.Errorf("redis did not become available after %d attempts", attempts)
}

// Draft operations

func draftKey(id uuid.UUID) string {
	return draftKeyPrefix + id.String()
}

func (r *RedisStorage) SaveDraft(ctx context.Context, d *draft.Draft) error {
	if d == nil {
		return errors.New("draft cannot be nil")
	}
	d.Touch(time.Now())

	data, err := json.Marshal(d)
	if err != nil {
		r.logger.Error("Failed to marshal draft", "draft_id", d.ID, "error", err)
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, draftKey(d.ID), data, r.ttl)
		pipe.SAdd(ctx, draftIndexKey, d.ID.String())
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to save draft", "draft_id", d.ID, "error", err)
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (r *RedisStorage) LoadDraft(ctx context.Context, id uuid.UUID) (*draft.Draft, error) {
	data, err := r.client.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.logger.Debug("Draft not found", "draft_id", id)
			return nil, nil
		}
		r.logger.Error("Failed to load draft", "draft_id", id, "error", err)
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	d, err := draft.Decode(data)
	if err != nil {
		r.logger.Error("Failed to unmarshal draft", "draft_id", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return d, nil
}

func (r *RedisStorage) DeleteDraft(ctx context.Context, id uuid.UUID) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, draftKey(id))
		pipe.SRem(ctx, draftIndexKey, id.String())
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to delete draft", "draft_id", id, "error", err)
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

// ListDrafts reads every indexed draft. Ids whose draft expired are
// dropped from the index as they are found.
func (r *RedisStorage) ListDrafts(ctx context.Context) ([]draft.Summary, error) {
	ids, err := r.client.SMembers(ctx, draftIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	if len(ids) == 0 {
		return []draft.Summary{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = draftKeyPrefix + id
	}
	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read drafts: %w", err)
	}

	out := make([]draft.Summary, 0, len(vals))
	var stale []any
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			stale = append(stale, ids[i])
			continue
		}
		d, err := draft.Decode([]byte(s))
		if err != nil {
			r.logger.Warn("Skipping unreadable draft", "draft_id", ids[i], "error", err)
			continue
		}
		out = append(out, d.Summary())
	}

	if len(stale) > 0 {
		if err := r.client.SRem(ctx, draftIndexKey, stale...).Err(); err != nil {
			r.logger.Warn("Failed to prune expired drafts", "count", len(stale), "error", err)
		} else {
			r.logger.Debug("Pruned expired drafts", "count", len(stale))
		}
	}

	storage.SortSummaries(out)
	return out, nil
}
