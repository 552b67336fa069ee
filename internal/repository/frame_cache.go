package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"frame-inbox/internal/apperrors"
	"frame-inbox/internal/model"
)

const frameCacheKeyPrefix = "frames:inbox:"

// FrameCacheRepository хранит готовые списки кадров по requestCode.
// Список лежит под ключом поколения, писатели только увеличивают поколение,
// поэтому список, прочитанный до записи, никогда не становится текущим.
type FrameCacheRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFrameCacheRepository(client *redis.Client, ttl time.Duration) *FrameCacheRepository {
	return &FrameCacheRepository{
		client: client,
		ttl:    ttl,
	}
}

func FrameCacheKey(requestCode, generation int64) string {
	return frameCacheKeyPrefix + strconv.FormatInt(requestCode, 10) + ":" + strconv.FormatInt(generation, 10)
}

// FrameGenerationKey has no TTL: a counter that restarts could land on a
// generation whose list is still cached.
func FrameGenerationKey(requestCode int64) string {
	return frameCacheKeyPrefix + strconv.FormatInt(requestCode, 10) + ":gen"
}

// Generation returns 0 for a request code that was never written.
func (r *FrameCacheRepository) Generation(ctx context.Context, requestCode int64) (int64, error) {
	gen, err := r.client.Get(ctx, FrameGenerationKey(requestCode)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, err
	}

	return gen, nil
}

// Get returns apperrors.ErrCacheMiss when nothing is cached for the generation.
func (r *FrameCacheRepository) Get(ctx context.Context, requestCode, generation int64) ([]model.InboxEntry, error) {
	data, err := r.client.Get(ctx, FrameCacheKey(requestCode, generation)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrCacheMiss
		}

		return nil, err
	}

	entries := make([]model.InboxEntry, 0)
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode cached frames: %w", err)
	}

	return entries, nil
}

func (r *FrameCacheRepository) Set(ctx context.Context, requestCode, generation int64, entries []model.InboxEntry) error {
	if entries == nil {
		entries = []model.InboxEntry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode frames: %w", err)
	}

	return r.client.Set(ctx, FrameCacheKey(requestCode, generation), data, r.ttl).Err()
}

// Invalidate moves requestCode to a new generation. Lists cached under older
// generations are never read again and expire by TTL.
func (r *FrameCacheRepository) Invalidate(ctx context.Context, requestCode int64) error {
	return r.client.Incr(ctx, FrameGenerationKey(requestCode)).Err()
}
