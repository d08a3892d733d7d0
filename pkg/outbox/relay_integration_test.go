//go:build integration

package outbox

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type stubDispatcher struct {
	failTopic string
	calls     []DispatchedMessage
}

func (d *stubDispatcher) Dispatch(ctx context.Context, msg DispatchedMessage) error {
	_ = ctx
	d.calls = append(d.calls, msg)
	if msg.Meta.Topic == d.failTopic {
		return errors.New("poison")
	}
	return nil
}

func TestRelay_Integration_NoHeadOfLineBlocking_AndDead(t *testing.T) {
	dsn := os.Getenv("OUTBOX_TEST_DSN")
	if dsn == "" {
		t.Skip("OUTBOX_TEST_DSN is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("pgxpool.New: %v", err)
	}
	defer pool.Close()

	tableName := fmt.Sprintf("outbox_it_%d", time.Now().UnixNano())
	createSQL := fmt.Sprintf(`
CREATE TABLE %s (
  id           UUID        NOT NULL DEFAULT gen_random_uuid() PRIMARY KEY,
  topic        TEXT        NOT NULL,
  payload      JSONB       NOT NULL,
  event_id     UUID        NOT NULL UNIQUE,
  actor_id     TEXT        NOT NULL DEFAULT '',
  sequence     BIGINT      GENERATED ALWAYS AS IDENTITY,
  attempts     INT         NOT NULL DEFAULT 0,
  available_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  locked_at    TIMESTAMPTZ,
  published_at TIMESTAMPTZ,
  last_error   TEXT,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`, tableName)
	if _, err := pool.Exec(ctx, createSQL); err != nil {
		t.Fatalf("create table: %v", err)
	}
	defer func() {
		_, _ = pool.Exec(context.Background(), fmt.Sprintf(`DROP TABLE IF EXISTS %s`, tableName))
	}()

	table, err := ParseIdentifier(tableName)
	if err != nil {
		t.Fatalf("ParseIdentifier: %v", err)
	}

	failTopic := "it.fail"
	okTopic := "it.ok"

	p := NewPublisher()

	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	eventFail := uuid.New()
	eventOK := uuid.New()
	if _, err := p.Enqueue(ctx, tx, table, Message{Topic: failTopic, EventID: eventFail, ActorID: "u1", Payload: []byte(`{"x":1}`)}); err != nil {
		t.Fatalf("enqueue fail-topic: %v", err)
	}
	if _, err := p.Enqueue(ctx, tx, table, Message{Topic: okTopic, EventID: eventOK, ActorID: "u1", Payload: []byte(`{"y":2}`)}); err != nil {
		t.Fatalf("enqueue ok-topic: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("commit: %v", err)
	}

	// Idempotent enqueue: the same event id keeps its original sequence.
	{
		tx, err := pool.Begin(ctx)
		if err != nil {
			t.Fatalf("begin: %v", err)
		}
		evt := uuid.New()
		seq1, err := p.Enqueue(ctx, tx, table, Message{Topic: okTopic, EventID: evt, Payload: []byte(`{"z":3}`)})
		if err != nil {
			t.Fatalf("enqueue: %v", err)
		}
		seq2, err := p.Enqueue(ctx, tx, table, Message{Topic: okTopic, EventID: evt, Payload: []byte(`{"z":3}`)})
		if err != nil {
			t.Fatalf("re-enqueue: %v", err)
		}
		if seq1 != seq2 {
			t.Fatalf("expected idempotent enqueue to keep sequence, got %d and %d", seq1, seq2)
		}
		if err := tx.Rollback(ctx); err != nil {
			t.Fatalf("rollback: %v", err)
		}
	}

	dispatcher := &stubDispatcher{failTopic: failTopic}
	relay, err := NewRelay(pool, table, dispatcher, RelayOptions{
		PollInterval: 50 * time.Millisecond,
		MaxAttempts:  2,
		MaxBackoff:   time.Millisecond,
		JitterMax:    time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}

	relayCtx, relayCancel := context.WithTimeout(ctx, 10*time.Second)
	defer relayCancel()
	go func() { _ = relay.Run(relayCtx) }()

	deadline := time.Now().Add(8 * time.Second)
	for time.Now().Before(deadline) {
		var published bool
		if err := pool.QueryRow(ctx,
			fmt.Sprintf(`SELECT published_at IS NOT NULL FROM %s WHERE event_id = $1`, tableName),
			eventOK,
		).Scan(&published); err == nil && published {
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	var okPublished bool
	if err := pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT published_at IS NOT NULL FROM %s WHERE event_id = $1`, tableName),
		eventOK,
	).Scan(&okPublished); err != nil {
		t.Fatalf("check ok published: %v", err)
	}
	if !okPublished {
		t.Fatalf("healthy message should have been published despite poison message ahead of it")
	}

	var failAttempts int
	var failPublished bool
	if err := pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT attempts, published_at IS NOT NULL FROM %s WHERE event_id = $1`, tableName),
		eventFail,
	).Scan(&failAttempts, &failPublished); err != nil {
		t.Fatalf("check fail row: %v", err)
	}
	if failPublished {
		t.Fatalf("poison message must not be published")
	}
	if failAttempts < 2 {
		t.Fatalf("poison message should have exhausted attempts, got %d", failAttempts)
	}
}
