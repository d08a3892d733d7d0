package company

import "github.com/google/uuid"

const (
	EventCreated = "company.created"
	EventUpdated = "company.updated"
	EventDeleted = "company.deleted"
)

type CreatedEvent struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	IdentityOrganizationID uuid.UUID `json:"identity_organization_id"`
}

type UpdatedEvent struct {
	ID     uuid.UUID `json:"id"`
	Fields []string  `json:"fields"`
}

type DeletedEvent struct {
	ID uuid.UUID `json:"id"`
}
