package placement

import "github.com/google/uuid"

const (
	EventCreated = "placement.created"
	EventUpdated = "placement.updated"
	EventDeleted = "placement.deleted"
)

type CreatedEvent struct {
	ID            uuid.UUID `json:"id"`
	CandidateID   uuid.UUID `json:"candidate_id"`
	JobID         uuid.UUID `json:"job_id"`
	ApplicationID uuid.UUID `json:"application_id"`
}

type UpdatedEvent struct {
	ID     uuid.UUID `json:"id"`
	Fields []string  `json:"fields"`
}

type DeletedEvent struct {
	ID uuid.UUID `json:"id"`
}
