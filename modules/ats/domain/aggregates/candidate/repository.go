package candidate

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
)

type SortBy string

const (
	SortByCreatedAt SortBy = "created_at"
	SortByLastName  SortBy = "last_name"
)

type FindParams struct {
	Search   string
	Status   Status
	Location string
	SortBy   SortBy
	Asc      bool
	Limit    int
	Offset   int
	Scope    visibility.Scope
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Candidate, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Candidate, error)
	Create(ctx context.Context, entity Candidate) (Candidate, error)
	Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *UpdateDTO) (Candidate, error)
	Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Candidate, error)
}
