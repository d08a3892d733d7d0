package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/application"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/identity"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/shared"
)

type ApplicationService struct {
	repo        application.Repository
	memberships identity.MembershipRepository
	recorder    EventRecorder
}

func NewApplicationService(repo application.Repository, memberships identity.MembershipRepository, recorder EventRecorder) *ApplicationService {
	return &ApplicationService{repo: repo, memberships: memberships, recorder: recorder}
}

func (s *ApplicationService) GetMany(ctx context.Context, callerID string, params *application.FindParams, page, limit int) ([]application.Application, shared.PaginationMeta, error) {
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

func (s *ApplicationService) GetByID(ctx context.Context, callerID string, id uuid.UUID) (application.Application, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return application.Application{}, mapPgError(err)
	}

	a, err := s.repo.GetByID(ctx, id, scope)
	if errors.Is(err, application.ErrNotFound) {
		return application.Application{}, newNotFoundError("application", err)
	}
	if err != nil {
		return application.Application{}, mapPgError(err)
	}
	return a, nil
}

func (s *ApplicationService) Create(ctx context.Context, callerID string, dto *application.CreateDTO) (application.Application, error) {
	if fields, ok := dto.Ok(); !ok {
		return application.Application{}, newValidationError(fields)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (application.Application, error) {
		created, err := s.repo.Create(txCtx, dto.ToEntity())
		if err != nil {
			return application.Application{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, application.EventCreated, callerID, application.CreatedEvent{
			ID:          created.ID,
			CandidateID: created.CandidateID,
			JobID:       created.JobID,
		}); err != nil {
			return application.Application{}, err
		}
		return created, nil
	})
}

func (s *ApplicationService) Update(ctx context.Context, callerID string, id uuid.UUID, patch *application.UpdateDTO) (application.Application, error) {
	if fields, ok := patch.Ok(); !ok {
		return application.Application{}, newValidationError(fields)
	}

	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return application.Application{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (application.Application, error) {
		updated, err := s.repo.Update(txCtx, id, scope, patch)
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, newNotFoundError("application", err)
		}
		if err != nil {
			return application.Application{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, application.EventUpdated, callerID, application.UpdatedEvent{
			ID:     updated.ID,
			Fields: patch.Fields(),
		}); err != nil {
			return application.Application{}, err
		}
		return updated, nil
	})
}

func (s *ApplicationService) Delete(ctx context.Context, callerID string, id uuid.UUID) (application.Application, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return application.Application{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (application.Application, error) {
		deleted, err := s.repo.Delete(txCtx, id, scope)
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, newNotFoundError("application", err)
		}
		if err != nil {
			return application.Application{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, application.EventDeleted, callerID, application.DeletedEvent{ID: deleted.ID}); err != nil {
			return application.Application{}, err
		}
		return deleted, nil
	})
}
