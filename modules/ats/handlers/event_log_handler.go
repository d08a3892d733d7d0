// Package handlers holds in-process consumers of relayed domain events.
package handlers

import (
	"encoding/json"

	"github.com/talentgrid-io/talentgrid/pkg/configuration"
	"github.com/talentgrid-io/talentgrid/pkg/eventbus"
	"github.com/talentgrid-io/talentgrid/pkg/outbox"
)

// RegisterDomainEventLogger subscribes a logging consumer for every relayed
// domain event. It also guarantees the relay always has at least one
// subscriber, so dispatch never fails on an otherwise idle deployment.
func RegisterDomainEventLogger(bus eventbus.EventBus) {
	log := configuration.Use().Logger()

	bus.Subscribe(func(meta *outbox.Meta, topic string, payload json.RawMessage) {
		log.WithFields(map[string]any{
			"topic":    topic,
			"event_id": meta.EventID,
			"actor_id": meta.ActorID,
			"sequence": meta.Sequence,
		}).Info("domain event")
	})
}
