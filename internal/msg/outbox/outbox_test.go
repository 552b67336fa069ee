package outbox_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"frame-inbox/internal/model"
	"frame-inbox/internal/msg/outbox"
	"frame-inbox/internal/repository"
)

type pushed struct {
	key   string
	topic string
	id    string
}

type fakeProducer struct {
	mu      sync.Mutex
	pushed  []pushed
	failKey map[string]int
}

func (p *fakeProducer) PushMessage(_ context.Context, key, value []byte, topic string) (int32, int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failKey[string(key)] > 0 {
		p.failKey[string(key)]--

		return 0, 0, errors.New("broker unavailable")
	}

	p.pushed = append(p.pushed, pushed{key: string(key), topic: topic, id: string(value)})

	return 0, int64(len(p.pushed)), nil
}

func (p *fakeProducer) Close() error {
	return nil
}

// byKey returns payloads in push order, grouped by key.
func (p *fakeProducer) byKey() map[string][]string {
	p.mu.Lock()
	defer p.mu.Unlock()

	res := make(map[string][]string)
	for _, m := range p.pushed {
		res[m.key] = append(res[m.key], m.id)
	}

	return res
}

type fakeRepo struct {
	mu       sync.Mutex
	messages []model.OutboxMessage
	sent     map[uuid.UUID]bool
	markErr  error
}

func (r *fakeRepo) LockUnsentBatch(_ context.Context, _ repository.RepoExtension, batchSize int) ([]model.OutboxMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []model.OutboxMessage

	for _, m := range r.messages {
		if r.sent[m.ID] {
			continue
		}

		res = append(res, m)
		if len(res) == batchSize {
			break
		}
	}

	return res, nil
}

func (r *fakeRepo) MarkSent(_ context.Context, _ repository.RepoExtension, ids []uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.markErr != nil {
		return 0, r.markErr
	}

	for _, id := range ids {
		r.sent[id] = true
	}

	return int64(len(ids)), nil
}

func (r *fakeRepo) isSent(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.sent[id]
}

type fakeTx struct {
	calls int
}

func (tx *fakeTx) WithTx(_ context.Context, fn func(ext repository.RepoExtension) error) error {
	tx.calls++

	return fn(nil)
}

// newMessages builds one message per key, the payload holds its position.
func newMessages(keys ...string) []model.OutboxMessage {
	res := make([]model.OutboxMessage, 0, len(keys))
	for i, key := range keys {
		res = append(res, model.OutboxMessage{
			ID:      uuid.New(),
			Key:     key,
			Topic:   "frames.uploaded",
			Payload: []byte(strconv.Itoa(i)),
		})
	}

	return res
}

func newRepo(messages []model.OutboxMessage) *fakeRepo {
	return &fakeRepo{messages: messages, sent: map[uuid.UUID]bool{}}
}

func TestPublisher_PublishBatch(t *testing.T) {
	repo := newRepo(newMessages("42", "7", "42"))
	producer := &fakeProducer{}
	tx := &fakeTx{}

	p := outbox.NewPublisher(zap.NewNop(), outbox.Config{Name: "test", WorkerCount: 2, BatchSize: 10}, producer, repo, tx)

	sent, err := p.PublishBatch(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if sent != 3 {
		t.Fatalf("expected 3 sent, got %d", sent)
	}

	sent, err = p.PublishBatch(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if sent != 0 {
		t.Fatalf("expected nothing left to send, got %d", sent)
	}

	if tx.calls != 2 {
		t.Fatalf("expected one transaction per batch, got %d", tx.calls)
	}
}

func TestPublisher_KeyIsRequestCode(t *testing.T) {
	ev := model.NewFrameEvent(model.FrameEventDeleted, 42, nil, time.Now())

	msg, err := ev.OutboxMessage("frames.deleted")
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	repo := newRepo([]model.OutboxMessage{msg})
	producer := &fakeProducer{}

	p := outbox.NewPublisher(zap.NewNop(), outbox.Config{}, producer, repo, &fakeTx{})

	if _, err := p.PublishBatch(context.Background()); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if len(producer.pushed) != 1 || producer.pushed[0].key != "42" {
		t.Fatalf("expected one message keyed 42, got %+v", producer.pushed)
	}
}

func TestPublisher_PreservesOrderPerKey(t *testing.T) {
	keys := []string{"1", "2", "1", "3", "2", "1", "3", "1"}
	repo := newRepo(newMessages(keys...))
	producer := &fakeProducer{}

	p := outbox.NewPublisher(zap.NewNop(), outbox.Config{WorkerCount: 3, BatchSize: 100}, producer, repo, &fakeTx{})

	if _, err := p.PublishBatch(context.Background()); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	want := map[string][]string{}
	for i, key := range keys {
		want[key] = append(want[key], strconv.Itoa(i))
	}

	got := producer.byKey()

	for key, order := range want {
		if len(got[key]) != len(order) {
			t.Fatalf("key %s: expected %v, got %v", key, order, got[key])
		}

		for i := range order {
			if got[key][i] != order[i] {
				t.Fatalf("key %s: expected %v, got %v", key, order, got[key])
			}
		}
	}
}

func TestPublisher_FailedKeyHoldsLaterMessages(t *testing.T) {
	messages := newMessages("42", "7", "42")
	repo := newRepo(messages)
	producer := &fakeProducer{failKey: map[string]int{"42": 1}}

	p := outbox.NewPublisher(zap.NewNop(), outbox.Config{WorkerCount: 1, BatchSize: 10}, producer, repo, &fakeTx{})

	sent, err := p.PublishBatch(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if sent != 1 {
		t.Fatalf("expected 1 sent, got %d", sent)
	}

	if repo.isSent(messages[0].ID) || repo.isSent(messages[2].ID) {
		t.Fatalf("expected both messages for the failed key to stay unsent")
	}

	if !repo.isSent(messages[1].ID) {
		t.Fatalf("expected message for another key to be sent")
	}

	sent, err = p.PublishBatch(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	if sent != 2 {
		t.Fatalf("expected the held messages on retry, got %d", sent)
	}

	if got := producer.byKey()["42"]; len(got) != 2 || got[0] != "0" || got[1] != "2" {
		t.Fatalf("expected key 42 in order [0 2], got %v", got)
	}
}

func TestPublisher_MarkFailureReturnsError(t *testing.T) {
	repo := newRepo(newMessages("42"))
	repo.markErr = errors.New("db down")

	p := outbox.NewPublisher(zap.NewNop(), outbox.Config{}, &fakeProducer{}, repo, &fakeTx{})

	sent, err := p.PublishBatch(context.Background())
	if err == nil {
		t.Fatalf("expected err, got nil")
	}

	if sent != 0 {
		t.Fatalf("expected 0 sent, got %d", sent)
	}

	if repo.isSent(repo.messages[0].ID) {
		t.Fatalf("expected message to stay unsent")
	}
}

func TestPublisher_EmptyKeyFallsBackToID(t *testing.T) {
	msg := model.OutboxMessage{ID: uuid.New(), Topic: "frames.uploaded", Payload: []byte(`{}`)}
	repo := newRepo([]model.OutboxMessage{msg})
	producer := &fakeProducer{}

	p := outbox.NewPublisher(zap.NewNop(), outbox.Config{}, producer, repo, &fakeTx{})

	if _, err := p.PublishBatch(context.Background()); err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}

	want, _ := msg.ID.MarshalBinary()

	if len(producer.pushed) != 1 || producer.pushed[0].key != string(want) {
		t.Fatalf("expected message keyed by its id, got %+v", producer.pushed)
	}
}

func TestPublisher_RunStopsOnCancel(t *testing.T) {
	repo := newRepo(newMessages("1"))
	p := outbox.NewPublisher(zap.NewNop(), outbox.Config{PollInterval: 10 * time.Millisecond}, &fakeProducer{}, repo, &fakeTx{})

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)

	for !repo.isSent(repo.messages[0].ID) {
		select {
		case <-deadline:
			t.Fatalf("expected message to be published")
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected Run to return after cancel")
	}
}
