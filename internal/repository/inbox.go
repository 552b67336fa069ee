package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"frame-inbox/internal/model"
)

type InboxRepository struct {
	db *pgxpool.Pool
}

func NewInboxRepository(db *pgxpool.Pool) *InboxRepository {
	return &InboxRepository{db: db}
}

// InsertBatch inserts all entries in one statement, so the batch lands atomically
// even without an outer transaction.
func (r *InboxRepository) InsertBatch(ctx context.Context, ext RepoExtension, entries []model.InboxEntry) error {
	if len(entries) == 0 {
		return nil
	}

	if ext == nil {
		ext = r.db
	}

	filenames := make([]string, 0, len(entries))
	codes := make([]int64, 0, len(entries))
	registeredAt := make([]time.Time, 0, len(entries))

	for _, e := range entries {
		filenames = append(filenames, e.Filename)
		codes = append(codes, e.RequestCode)
		registeredAt = append(registeredAt, e.RegisteredAt)
	}

	const query = `
		INSERT INTO frames.inbox (filename, request_code, registered_at)
		SELECT * FROM unnest($1::text[], $2::bigint[], $3::timestamptz[]);
	`

	_, err := ext.Exec(ctx, query, filenames, codes, registeredAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *InboxRepository) SelectByRequestCode(ctx context.Context, ext RepoExtension, requestCode int64) ([]model.InboxEntry, error) {
	if ext == nil {
		ext = r.db
	}

	entries := make([]model.InboxEntry, 0)

	const query = `
		SELECT request_code, filename, registered_at
		FROM frames.inbox
		WHERE request_code = $1
		ORDER BY filename;
	`

	rows, err := ext.Query(ctx, query, requestCode)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	for rows.Next() {
		var entry model.InboxEntry
		if err := rows.Scan(
			&entry.RequestCode,
			&entry.Filename,
			&entry.RegisteredAt,
		); err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *InboxRepository) DeleteByRequestCode(ctx context.Context, ext RepoExtension, requestCode int64) (int64, error) {
	if ext == nil {
		ext = r.db
	}

	const query = `
		DELETE FROM frames.inbox
		WHERE request_code = $1;
	`

	tag, err := ext.Exec(ctx, query, requestCode)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
