package job

import "github.com/google/uuid"

const (
	EventCreated = "job.created"
	EventUpdated = "job.updated"
	EventDeleted = "job.deleted"
)

type CreatedEvent struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Title     string    `json:"title"`
}

type UpdatedEvent struct {
	ID     uuid.UUID `json:"id"`
	Fields []string  `json:"fields"`
}

type DeletedEvent struct {
	ID uuid.UUID `json:"id"`
}
