// Package identity exposes the read-only membership relation owned by the
// external identity provider. It establishes which organizations a caller
// belongs to and is never written from this module.
package identity

import (
	"context"

	"github.com/google/uuid"
)

type Membership struct {
	UserID         string    `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
}

type MembershipRepository interface {
	// OrganizationIDs returns the organizations the user is a member of.
	// An empty result is valid and means the caller carries no
	// organization restriction.
	OrganizationIDs(ctx context.Context, userID string) ([]uuid.UUID, error)
}
