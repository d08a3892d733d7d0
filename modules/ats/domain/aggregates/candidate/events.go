package candidate

import "github.com/google/uuid"

const (
	EventCreated = "candidate.created"
	EventUpdated = "candidate.updated"
	EventDeleted = "candidate.deleted"
)

type CreatedEvent struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type UpdatedEvent struct {
	ID     uuid.UUID `json:"id"`
	Fields []string  `json:"fields"`
}

type DeletedEvent struct {
	ID uuid.UUID `json:"id"`
}
