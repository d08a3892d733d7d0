package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/company"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/identity"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/shared"
)

type CompanyService struct {
	repo        company.Repository
	memberships identity.MembershipRepository
	recorder    EventRecorder
}

func NewCompanyService(repo company.Repository, memberships identity.MembershipRepository, recorder EventRecorder) *CompanyService {
	return &CompanyService{repo: repo, memberships: memberships, recorder: recorder}
}

func (s *CompanyService) GetMany(ctx context.Context, callerID string, params *company.FindParams, page, limit int) ([]company.Company, shared.PaginationMeta, error) {
	p := shared.NormalizePagination(page, limit)

	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return nil, shared.PaginationMeta{}, mapPgError(err)
	}
	params.Scope = scope
	params.Limit = p.Limit
	params.Offset = p.Offset()

	items, total, err := s.repo.GetPaginated(ctx, params)
	if err != nil {
		return nil, shared.PaginationMeta{}, mapPgError(err)
	}
	return items, shared.NewPaginationMeta(total, p.Page, p.Limit), nil
}

func (s *CompanyService) GetByID(ctx context.Context, callerID string, id uuid.UUID) (company.Company, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return company.Company{}, mapPgError(err)
	}

	c, err := s.repo.GetByID(ctx, id, scope)
	if errors.Is(err, company.ErrNotFound) {
		return company.Company{}, newNotFoundError("company", err)
	}
	if err != nil {
		return company.Company{}, mapPgError(err)
	}
	return c, nil
}

func (s *CompanyService) Create(ctx context.Context, callerID string, dto *company.CreateDTO) (company.Company, error) {
	if fields, ok := dto.Ok(); !ok {
		return company.Company{}, newValidationError(fields)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (company.Company, error) {
		created, err := s.repo.Create(txCtx, dto.ToEntity())
		if err != nil {
			return company.Company{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, company.EventCreated, callerID, company.CreatedEvent{
			ID:                     created.ID,
			Name:                   created.Name,
			IdentityOrganizationID: created.IdentityOrganizationID,
		}); err != nil {
			return company.Company{}, err
		}
		return created, nil
	})
}

func (s *CompanyService) Update(ctx context.Context, callerID string, id uuid.UUID, patch *company.UpdateDTO) (company.Company, error) {
	if fields, ok := patch.Ok(); !ok {
		return company.Company{}, newValidationError(fields)
	}

	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return company.Company{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (company.Company, error) {
		updated, err := s.repo.Update(txCtx, id, scope, patch)
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, newNotFoundError("company", err)
		}
		if err != nil {
			return company.Company{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, company.EventUpdated, callerID, company.UpdatedEvent{
			ID:     updated.ID,
			Fields: patch.Fields(),
		}); err != nil {
			return company.Company{}, err
		}
		return updated, nil
	})
}

func (s *CompanyService) Delete(ctx context.Context, callerID string, id uuid.UUID) (company.Company, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return company.Company{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (company.Company, error) {
		deleted, err := s.repo.Delete(txCtx, id, scope)
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, newNotFoundError("company", err)
		}
		if err != nil {
			return company.Company{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, company.EventDeleted, callerID, company.DeletedEvent{ID: deleted.ID}); err != nil {
			return company.Company{}, err
		}
		return deleted, nil
	})
}
