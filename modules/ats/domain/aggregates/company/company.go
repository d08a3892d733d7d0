package company

import (
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var ErrNotFound = gerrors.New("company not found")

// Company is owned by exactly one identity organization; that ownership is
// the root of every visibility chain in the module.
type Company struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	Description            string    `json:"description,omitempty"`
	Website                string    `json:"website,omitempty"`
	Status                 Status    `json:"status"`
	IdentityOrganizationID uuid.UUID `json:"identity_organization_id"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}
