package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/outbox"
)

// OutboxTable is where domain events wait for the relay.
var OutboxTable = pgx.Identifier{"ats", "outbox"}

// EventRecorder persists a domain event alongside the mutation that caused
// it. Recording happens inside the mutation's transaction, so an event
// exists iff its write committed.
type EventRecorder interface {
	Record(ctx context.Context, topic, actorID string, payload any) error
}

type outboxRecorder struct {
	publisher outbox.Publisher
}

func NewEventRecorder(publisher outbox.Publisher) EventRecorder {
	return &outboxRecorder{publisher: publisher}
}

func (r *outboxRecorder) Record(ctx context.Context, topic, actorID string, payload any) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = r.publisher.Enqueue(ctx, tx, OutboxTable, outbox.Message{
		Topic:   topic,
		EventID: uuid.New(),
		ActorID: actorID,
		Payload: body,
	})
	return err
}
