package services

import (
	"context"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/identity"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
)

// resolveScope maps a caller to the visibility applied to every query.
// Callers without memberships operate platform-wide, so they get the
// unrestricted scope rather than an empty one.
func resolveScope(ctx context.Context, memberships identity.MembershipRepository, callerID string) (visibility.Scope, error) {
	orgIDs, err := memberships.OrganizationIDs(ctx, callerID)
	if err != nil {
		return visibility.Scope{}, err
	}
	if len(orgIDs) == 0 {
		return visibility.All(), nil
	}
	return visibility.Organizations(orgIDs), nil
}
