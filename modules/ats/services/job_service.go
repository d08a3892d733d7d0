package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/job"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/identity"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/shared"
)

type JobService struct {
	repo        job.Repository
	memberships identity.MembershipRepository
	recorder    EventRecorder
}

func NewJobService(repo job.Repository, memberships identity.MembershipRepository, recorder EventRecorder) *JobService {
	return &JobService{repo: repo, memberships: memberships, recorder: recorder}
}

func (s *JobService) GetMany(ctx context.Context, callerID string, params *job.FindParams, page, limit int) ([]job.Job, shared.PaginationMeta, error) {
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

func (s *JobService) GetByID(ctx context.Context, callerID string, id uuid.UUID) (job.Job, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return job.Job{}, mapPgError(err)
	}

	j, err := s.repo.GetByID(ctx, id, scope)
	if errors.Is(err, job.ErrNotFound) {
		return job.Job{}, newNotFoundError("job", err)
	}
	if err != nil {
		return job.Job{}, mapPgError(err)
	}
	return j, nil
}

func (s *JobService) Create(ctx context.Context, callerID string, dto *job.CreateDTO) (job.Job, error) {
	if fields, ok := dto.Ok(); !ok {
		return job.Job{}, newValidationError(fields)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (job.Job, error) {
		created, err := s.repo.Create(txCtx, dto.ToEntity())
		if err != nil {
			return job.Job{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, job.EventCreated, callerID, job.CreatedEvent{
			ID:        created.ID,
			CompanyID: created.CompanyID,
			Title:     created.Title,
		}); err != nil {
			return job.Job{}, err
		}
		return created, nil
	})
}

func (s *JobService) Update(ctx context.Context, callerID string, id uuid.UUID, patch *job.UpdateDTO) (job.Job, error) {
	if fields, ok := patch.Ok(); !ok {
		return job.Job{}, newValidationError(fields)
	}

	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return job.Job{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (job.Job, error) {
		updated, err := s.repo.Update(txCtx, id, scope, patch)
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, newNotFoundError("job", err)
		}
		if err != nil {
			return job.Job{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, job.EventUpdated, callerID, job.UpdatedEvent{
			ID:     updated.ID,
			Fields: patch.Fields(),
		}); err != nil {
			return job.Job{}, err
		}
		return updated, nil
	})
}

func (s *JobService) Delete(ctx context.Context, callerID string, id uuid.UUID) (job.Job, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return job.Job{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (job.Job, error) {
		deleted, err := s.repo.Delete(txCtx, id, scope)
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, newNotFoundError("job", err)
		}
		if err != nil {
			return job.Job{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, job.EventDeleted, callerID, job.DeletedEvent{ID: deleted.ID}); err != nil {
			return job.Job{}, err
		}
		return deleted, nil
	})
}
