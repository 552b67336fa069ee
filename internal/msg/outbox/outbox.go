package outbox

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"frame-inbox/internal/model"
	"frame-inbox/internal/repository"
	"frame-inbox/pkg/kafka"
)

type Repository interface {
	LockUnsentBatch(ctx context.Context, ext repository.RepoExtension, batchSize int) ([]model.OutboxMessage, error)
	MarkSent(ctx context.Context, ext repository.RepoExtension, ids []uuid.UUID) (int64, error)
}

type Transactor interface {
	WithTx(ctx context.Context, fn func(ext repository.RepoExtension) error) error
}

type Config struct {
	Name         string
	WorkerCount  int
	PollInterval time.Duration
	BatchSize    int
}

// Publisher переносит события о кадрах из frames.outbox_messages в kafka.
// Пачка блокируется в транзакции до отметки об отправке, поэтому несколько
// реплик не отправляют одно сообщение параллельно. Сообщения с одним ключом
// обрабатывает один воркер в порядке created_at.
type Publisher struct {
	l          *zap.Logger
	cfg        Config
	producer   kafka.Producer
	outboxRepo Repository
	tx         Transactor
}

func NewPublisher(l *zap.Logger, cfg Config, producer kafka.Producer, outboxRepo Repository, tx Transactor) *Publisher {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 1
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}

	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}

	return &Publisher{
		l:          l.With(zap.String("publisher", cfg.Name)),
		cfg:        cfg,
		producer:   producer,
		outboxRepo: outboxRepo,
		tx:         tx,
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.l.Info("Outbox publisher started", zap.Int("workers", p.cfg.WorkerCount))

	ticker := time.NewTicker(p.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.l.Info("Outbox publisher stopped")

			return
		case <-ticker.C:
			if _, err := p.PublishBatch(ctx); err != nil {
				p.l.Error("Failed to publish outbox batch", zap.Error(err))
			}
		}
	}
}

// PublishBatch sends one locked batch and reports how many messages were marked as sent.
// Pushed messages whose mark is rolled back are sent again on a later batch.
func (p *Publisher) PublishBatch(ctx context.Context) (int, error) {
	var sent int

	err := p.tx.WithTx(ctx, func(ext repository.RepoExtension) error {
		messages, err := p.outboxRepo.LockUnsentBatch(ctx, ext, p.cfg.BatchSize)
		if err != nil {
			return fmt.Errorf("failed to lock unsent messages: %w", err)
		}

		if len(messages) == 0 {
			return nil
		}

		ids := p.dispatch(ctx, messages)

		marked, err := p.outboxRepo.MarkSent(ctx, ext, ids)
		if err != nil {
			return fmt.Errorf("failed to mark messages as sent: %w", err)
		}

		sent = int(marked)

		return nil
	})
	if err != nil {
		return 0, err
	}

	return sent, nil
}

// dispatch routes every key to a single worker so per-key order survives the fan-out.
func (p *Publisher) dispatch(ctx context.Context, messages []model.OutboxMessage) []uuid.UUID {
	workers := min(p.cfg.WorkerCount, len(messages))

	pipes := make([]chan model.OutboxMessage, workers)
	for i := range pipes {
		pipes[i] = make(chan model.OutboxMessage, len(messages))
	}

	for _, msg := range messages {
		pipes[workerFor(msg.Key, workers)] <- msg
	}

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make([]uuid.UUID, 0, len(messages))
	)

	for i, pipe := range pipes {
		close(pipe)

		wg.Add(1)

		go func(id int, pipe <-chan model.OutboxMessage) {
			defer wg.Done()

			sent := p.worker(ctx, id, pipe)

			mu.Lock()
			ids = append(ids, sent...)
			mu.Unlock()
		}(i, pipe)
	}

	wg.Wait()

	return ids
}

func workerFor(key string, workers int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))

	return int(h.Sum32() % uint32(workers))
}

// worker stops sending a key after its first failure, later events for that
// key wait for the next batch instead of overtaking it.
func (p *Publisher) worker(ctx context.Context, id int, messagePipe <-chan model.OutboxMessage) []uuid.UUID {
	var (
		sent   []uuid.UUID
		failed = make(map[string]struct{})
	)

	for msg := range messagePipe {
		if ctx.Err() != nil {
			return sent
		}

		if _, ok := failed[msg.Key]; ok {
			continue
		}

		partition, offset, err := p.send(ctx, msg)
		if err != nil {
			failed[msg.Key] = struct{}{}

			p.l.Error("Failed to send message",
				zap.Int("worker", id),
				zap.String("message_id", msg.ID.String()),
				zap.String("key", msg.Key),
				zap.Error(err),
			)

			continue
		}

		sent = append(sent, msg.ID)

		p.l.Debug("Message sent",
			zap.Int("worker", id),
			zap.String("message_id", msg.ID.String()),
			zap.String("key", msg.Key),
			zap.String("topic", msg.Topic),
			zap.Int32("partition", partition),
			zap.Int64("offset", offset),
		)
	}

	return sent
}

// send keys by message Key, rows written before the key column existed fall back to the id.
func (p *Publisher) send(ctx context.Context, message model.OutboxMessage) (partition int32, offset int64, err error) {
	key := []byte(message.Key)

	if message.Key == "" {
		key, err = message.ID.MarshalBinary()
		if err != nil {
			return 0, 0, fmt.Errorf("failed to marshal message id: %w", err)
		}
	}

	partition, offset, err = p.producer.PushMessage(ctx, key, message.Payload, message.Topic)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to push message: %w", err)
	}

	return partition, offset, nil
}
