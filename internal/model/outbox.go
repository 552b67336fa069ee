package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	FrameEventUploaded = "frames.uploaded"
	FrameEventDeleted  = "frames.deleted"
)

// OutboxMessage - Key уходит в kafka ключом сообщения, все события одного
// requestCode попадают в одну партицию.
type OutboxMessage struct {
	ID        uuid.UUID  `db:"id"`
	Key       string     `db:"message_key"`
	Topic     string     `db:"topic"`
	Payload   []byte     `db:"payload"`
	CreatedAt time.Time  `db:"created_at"`
	Sent      bool       `db:"sent"`
	SentAt    *time.Time `db:"sent_at"`
}

// FrameEvent - событие о загрузке или удалении пачки кадров, уходит в kafka через outbox.
type FrameEvent struct {
	Type        string    `json:"type"`
	RequestCode int64     `json:"requestCode"`
	Filenames   []string  `json:"filenames"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func NewFrameEvent(eventType string, requestCode int64, entries []InboxEntry, occurredAt time.Time) FrameEvent {
	ev := FrameEvent{
		Type:        eventType,
		RequestCode: requestCode,
		Filenames:   make([]string, 0, len(entries)),
		OccurredAt:  occurredAt,
	}

	for _, e := range entries {
		ev.Filenames = append(ev.Filenames, e.Filename)
	}

	return ev
}

func (e FrameEvent) OutboxMessage(topic string) (OutboxMessage, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("failed to marshal frame event: %w", err)
	}

	return OutboxMessage{
		ID:      uuid.New(),
		Key:     strconv.FormatInt(e.RequestCode, 10),
		Topic:   topic,
		Payload: payload,
	}, nil
}
