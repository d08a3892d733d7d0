package persistence

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/identity"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
)

type PgMembershipRepository struct{}

func NewMembershipRepository() identity.MembershipRepository {
	return &PgMembershipRepository{}
}

func (r *PgMembershipRepository) OrganizationIDs(ctx context.Context, userID string) ([]uuid.UUID, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT organization_id
FROM identity.memberships
WHERE user_id = $1
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
