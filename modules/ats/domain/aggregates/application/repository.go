package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
)

type FindParams struct {
	Search      string
	Status      Status
	Stage       string
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Asc         bool
	Limit       int
	Offset      int
	Scope       visibility.Scope
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Application, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Application, error)
	Create(ctx context.Context, entity Application) (Application, error)
	Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *UpdateDTO) (Application, error)
	Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Application, error)
}
