package services

import (
	"context"

	"github.com/google/uuid"
)

type stubMemberships struct {
	orgs map[string][]uuid.UUID
	err  error
}

func (s *stubMemberships) OrganizationIDs(_ context.Context, userID string) ([]uuid.UUID, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.orgs[userID], nil
}

type recordedEvent struct {
	Topic   string
	ActorID string
	Payload any
}

type stubRecorder struct {
	events []recordedEvent
	err    error
}

func (s *stubRecorder) Record(_ context.Context, topic, actorID string, payload any) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, recordedEvent{Topic: topic, ActorID: actorID, Payload: payload})
	return nil
}
