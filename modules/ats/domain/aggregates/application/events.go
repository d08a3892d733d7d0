package application

import "github.com/google/uuid"

const (
	EventCreated = "application.created"
	EventUpdated = "application.updated"
	EventDeleted = "application.deleted"
)

type CreatedEvent struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`
}

type UpdatedEvent struct {
	ID     uuid.UUID `json:"id"`
	Fields []string  `json:"fields"`
}

type DeletedEvent struct {
	ID uuid.UUID `json:"id"`
}
