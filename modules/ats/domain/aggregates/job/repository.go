package job

import (
	"context"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
)

type SortBy string

const (
	SortByCreatedAt SortBy = "created_at"
	SortByTitle     SortBy = "title"
)

type FindParams struct {
	Search         string
	Status         Status
	EmploymentType EmploymentType
	Location       string
	CompanyID      uuid.UUID
	SortBy         SortBy
	Asc            bool
	Limit          int
	Offset         int
	Scope          visibility.Scope
}

type Repository interface {
	GetPaginated(ctx context.Context, params *FindParams) ([]Job, int64, error)
	GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Job, error)
	Create(ctx context.Context, entity Job) (Job, error)
	Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *UpdateDTO) (Job, error)
	Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (Job, error)
}
