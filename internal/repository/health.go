package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"frame-inbox/internal/apperrors"
)

type HealthRepository struct {
	db *pgxpool.Pool
}

func NewHealthRepository(db *pgxpool.Pool) *HealthRepository {
	return &HealthRepository{
		db: db,
	}
}

func (r *HealthRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrDatabaseUnavailable, err)
	}

	return nil
}

// CountEntries - сколько всего кадров зарегистрировано, для /health.
func (r *HealthRepository) CountEntries(ctx context.Context, ext RepoExtension) (int64, error) {
	if ext == nil {
		ext = r.db
	}

	const query = `
		SELECT count(*) FROM frames.inbox;
	`

	var count int64
	if err := ext.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
