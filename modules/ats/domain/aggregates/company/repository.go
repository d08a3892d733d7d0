package company

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
)

type SortBy string

const (
	SortByCreatedAt SortBy = "created_at"
	SortByName      SortBy = "name"
)

type FindParams struct {
	Search string
	Status Status
	SortBy SortBy
	Asc    bool
	Limit  int
	Offset int
	Scope  visibility.Scope
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Company, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Company, error)
	Create(ctx context.Context, entity Company) (Company, error)
	Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *UpdateDTO) (Company, error)
	Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Company, error)
}
