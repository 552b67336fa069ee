package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"frame-inbox/internal/model"
)

type OutboxRepository struct {
	db *pgxpool.Pool
}

func NewOutboxRepository(db *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{
		db: db,
	}
}

func (r *OutboxRepository) InsertMessage(ctx context.Context, ext RepoExtension, message model.OutboxMessage) error {
	if ext == nil {
		ext = r.db
	}

	const query = `
		INSERT INTO frames.outbox_messages (id, message_key, topic, payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING;
	`

	_, err := ext.Exec(ctx, query, message.ID, message.Key, message.Topic, message.Payload)

	return err
}

// LockUnsentBatch locks up to batchSize unsent messages, oldest first. Rows
// locked by another publisher are skipped, so ext should be a transaction
// that stays open until MarkSent.
func (r *OutboxRepository) LockUnsentBatch(ctx context.Context, ext RepoExtension, batchSize int) ([]model.OutboxMessage, error) {
	if ext == nil {
		ext = r.db
	}

	const query = `
		SELECT id, message_key, topic, payload, created_at, sent, sent_at
		FROM frames.outbox_messages
		WHERE sent = false
		ORDER BY created_at, id
		LIMIT $1
		FOR UPDATE SKIP LOCKED;
	`

	rows, err := ext.Query(ctx, query, batchSize)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	messages := make([]model.OutboxMessage, 0, batchSize)

	for rows.Next() {
		var message model.OutboxMessage
		if err := rows.Scan(
			&message.ID,
			&message.Key,
			&message.Topic,
			&message.Payload,
			&message.CreatedAt,
			&message.Sent,
			&message.SentAt,
		); err != nil {
			return nil, err
		}

		messages = append(messages, message)
	}

	return messages, rows.Err()
}

// MarkSent flags all ids in one statement and reports how many rows changed.
func (r *OutboxRepository) MarkSent(ctx context.Context, ext RepoExtension, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	if ext == nil {
		ext = r.db
	}

	const query = `
		UPDATE frames.outbox_messages
		SET sent = true, sent_at = NOW()
		WHERE id = ANY($1::uuid[]) AND sent = false;
	`

	tag, err := ext.Exec(ctx, query, ids)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
