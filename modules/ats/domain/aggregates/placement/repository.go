package placement

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
)

type FindParams struct {
	Search      string
	Status      Status
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Asc         bool
	Limit       int
	Offset      int
	Scope       visibility.Scope
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Placement, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Placement, error)
	Create(ctx context.Context, entity Placement) (Placement, error)
	Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *UpdateDTO) (Placement, error)
	Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Placement, error)
}
