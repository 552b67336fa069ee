package service

//go:generate mockgen -source=frame.go -destination=mocks/frame_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"frame-inbox/internal/apperrors"
	"frame-inbox/internal/model"
	"frame-inbox/internal/repository"
)

type InboxRepository interface {
	InsertBatch(ctx context.Context, ext repository.RepoExtension, entries []model.InboxEntry) error
	SelectByRequestCode(ctx context.Context, ext repository.RepoExtension, requestCode int64) ([]model.InboxEntry, error)
	DeleteByRequestCode(ctx context.Context, ext repository.RepoExtension, requestCode int64) (int64, error)
}

type OutboxRepository interface {
	InsertMessage(ctx context.Context, ext repository.RepoExtension, message model.OutboxMessage) error
}

type Transactor interface {
	WithTx(ctx context.Context, fn func(ext repository.RepoExtension) error) error
}

type FrameStorage interface {
	WriteBatch(at time.Time, names []string, streams []io.Reader) error
	Remove(at time.Time, name string) error
}

// FrameCache keys lists by generation. Invalidate must move requestCode to a
// new generation so a list filled from an older read is never served.
type FrameCache interface {
	Generation(ctx context.Context, requestCode int64) (int64, error)
	Get(ctx context.Context, requestCode, generation int64) ([]model.InboxEntry, error)
	Set(ctx context.Context, requestCode, generation int64, entries []model.InboxEntry) error
	Invalidate(ctx context.Context, requestCode int64) error
}

const (
	invalidateAttempts = 3
	invalidateBackoff  = 50 * time.Millisecond
)

type FrameConfig struct {
	EventsEnabled bool
	UploadedTopic string
	DeletedTopic  string
}

type FrameService struct {
	log        *zap.Logger
	cfg        FrameConfig
	inboxRepo  InboxRepository
	outboxRepo OutboxRepository
	tx         Transactor
	storage    FrameStorage
	cache      FrameCache
}

// NewFrameService - cache может быть nil, тогда список всегда читается из БД.
func NewFrameService(
	log *zap.Logger,
	cfg FrameConfig,
	inboxRepo InboxRepository,
	outboxRepo OutboxRepository,
	tx Transactor,
	storage FrameStorage,
	cache FrameCache,
) *FrameService {
	return &FrameService{
		log:        log,
		cfg:        cfg,
		inboxRepo:  inboxRepo,
		outboxRepo: outboxRepo,
		tx:         tx,
		storage:    storage,
		cache:      cache,
	}
}

// Upload stores every image under one timestamp and registers the batch.
// Files written before a failure stay on disk.
func (s *FrameService) Upload(ctx context.Context, requestCode int64, images []io.Reader) ([]model.InboxEntry, error) {
	registeredAt := time.Now().UTC().Truncate(time.Microsecond)

	entries := make([]model.InboxEntry, 0, len(images))
	names := make([]string, 0, len(images))

	for range images {
		name := uuid.NewString() + model.ImageExt

		names = append(names, name)
		entries = append(entries, model.InboxEntry{
			RequestCode:  requestCode,
			Filename:     name,
			RegisteredAt: registeredAt,
		})
	}

	if err := s.storage.WriteBatch(registeredAt, names, images); err != nil {
		return nil, fmt.Errorf("failed to write frames: %w", err)
	}

	err := s.tx.WithTx(ctx, func(ext repository.RepoExtension) error {
		if err := s.inboxRepo.InsertBatch(ctx, ext, entries); err != nil {
			return fmt.Errorf("failed to insert frames: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		return s.enqueueEvent(ctx, ext, model.FrameEventUploaded, s.cfg.UploadedTopic, requestCode, entries, registeredAt)
	})
	if err != nil {
		s.log.Error("frames written but not registered",
			zap.Int64("request_code", requestCode),
			zap.Strings("orphans", names),
			zap.Error(err),
		)

		return nil, err
	}

	if err := s.invalidate(ctx, requestCode); err != nil {
		return nil, err
	}

	s.log.Info("frames uploaded",
		zap.Int64("request_code", requestCode),
		zap.Int("count", len(entries)),
	)

	return entries, nil
}

// List reads the generation before the database so a fill that races with
// Upload or Delete lands under a generation nobody reads any more.
func (s *FrameService) List(ctx context.Context, requestCode int64) ([]model.InboxEntry, error) {
	gen, cached := s.generation(ctx, requestCode)

	if cached {
		entries, err := s.cache.Get(ctx, requestCode, gen)
		if err == nil {
			return entries, nil
		}

		if !errors.Is(err, apperrors.ErrCacheMiss) {
			s.log.Warn("failed to read frames from cache", zap.Int64("request_code", requestCode), zap.Error(err))
		}
	}

	entries, err := s.inboxRepo.SelectByRequestCode(ctx, nil, requestCode)
	if err != nil {
		return nil, fmt.Errorf("failed to select frames: %w", err)
	}

	if cached {
		if err := s.cache.Set(ctx, requestCode, gen, entries); err != nil {
			s.log.Warn("failed to cache frames", zap.Int64("request_code", requestCode), zap.Error(err))
		}
	}

	return entries, nil
}

func (s *FrameService) generation(ctx context.Context, requestCode int64) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}

	gen, err := s.cache.Generation(ctx, requestCode)
	if err != nil {
		s.log.Warn("failed to read frames cache generation", zap.Int64("request_code", requestCode), zap.Error(err))

		return 0, false
	}

	return gen, true
}

// Delete removes files first and rows second. The first failed removal
// aborts the request, leaving the rows in place.
func (s *FrameService) Delete(ctx context.Context, requestCode int64) ([]model.InboxEntry, error) {
	entries, err := s.inboxRepo.SelectByRequestCode(ctx, nil, requestCode)
	if err != nil {
		return nil, fmt.Errorf("failed to select frames: %w", err)
	}

	for i, e := range entries {
		if err := s.storage.Remove(e.RegisteredAt, e.Filename); err != nil {
			s.log.Error("frame removal aborted",
				zap.Int64("request_code", requestCode),
				zap.String("filename", e.Filename),
				zap.Int("removed", i),
				zap.Error(err),
			)

			return nil, fmt.Errorf("failed to remove frame %s: %w", e.Filename, err)
		}
	}

	err = s.tx.WithTx(ctx, func(ext repository.RepoExtension) error {
		if _, err := s.inboxRepo.DeleteByRequestCode(ctx, ext, requestCode); err != nil {
			return fmt.Errorf("failed to delete frames: %w", err)
		}

		if len(entries) == 0 {
			return nil
		}

		return s.enqueueEvent(ctx, ext, model.FrameEventDeleted, s.cfg.DeletedTopic, requestCode, entries, time.Now().UTC())
	})
	if err != nil {
		return nil, err
	}

	if err := s.invalidate(ctx, requestCode); err != nil {
		return nil, err
	}

	s.log.Info("frames deleted",
		zap.Int64("request_code", requestCode),
		zap.Int("count", len(entries)),
	)

	return entries, nil
}

func (s *FrameService) enqueueEvent(
	ctx context.Context,
	ext repository.RepoExtension,
	eventType, topic string,
	requestCode int64,
	entries []model.InboxEntry,
	at time.Time,
) error {
	if !s.cfg.EventsEnabled {
		return nil
	}

	msg, err := model.NewFrameEvent(eventType, requestCode, entries, at).OutboxMessage(topic)
	if err != nil {
		return err
	}

	if err := s.outboxRepo.InsertMessage(ctx, ext, msg); err != nil {
		return fmt.Errorf("failed to insert outbox message: %w", err)
	}

	return nil
}

// invalidate runs after commit. When every attempt fails the cached list
// would outlive the write, so the error goes back to the caller.
func (s *FrameService) invalidate(ctx context.Context, requestCode int64) error {
	if s.cache == nil {
		return nil
	}

	var err error

	for attempt := 1; attempt <= invalidateAttempts; attempt++ {
		if err = s.cache.Invalidate(ctx, requestCode); err == nil {
			return nil
		}

		s.log.Warn("failed to invalidate frames cache",
			zap.Int64("request_code", requestCode),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)

		if attempt == invalidateAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", apperrors.ErrCacheInvalidation, ctx.Err())
		case <-time.After(invalidateBackoff * time.Duration(attempt)):
		}
	}

	return fmt.Errorf("%w: %w", apperrors.ErrCacheInvalidation, err)
}
