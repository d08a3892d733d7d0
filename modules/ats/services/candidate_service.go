package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/candidate"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/identity"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/shared"
)

type CandidateService struct {
	repo        candidate.Repository
	memberships identity.MembershipRepository
	recorder    EventRecorder
}

func NewCandidateService(repo candidate.Repository, memberships identity.MembershipRepository, recorder EventRecorder) *CandidateService {
	return &CandidateService{repo: repo, memberships: memberships, recorder: recorder}
}

func (s *CandidateService) GetMany(ctx context.Context, callerID string, params *candidate.FindParams, page, limit int) ([]candidate.Candidate, shared.PaginationMeta, error) {
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

func (s *CandidateService) GetByID(ctx context.Context, callerID string, id uuid.UUID) (candidate.Candidate, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return candidate.Candidate{}, mapPgError(err)
	}

	c, err := s.repo.GetByID(ctx, id, scope)
	if errors.Is(err, candidate.ErrNotFound) {
		return candidate.Candidate{}, newNotFoundError("candidate", err)
	}
	if err != nil {
		return candidate.Candidate{}, mapPgError(err)
	}
	return c, nil
}

func (s *CandidateService) Create(ctx context.Context, callerID string, dto *candidate.CreateDTO) (candidate.Candidate, error) {
	if fields, ok := dto.Ok(); !ok {
		return candidate.Candidate{}, newValidationError(fields)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (candidate.Candidate, error) {
		created, err := s.repo.Create(txCtx, dto.ToEntity())
		if err != nil {
			return candidate.Candidate{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, candidate.EventCreated, callerID, candidate.CreatedEvent{
			ID:    created.ID,
			Email: created.Email,
		}); err != nil {
			return candidate.Candidate{}, err
		}
		return created, nil
	})
}

func (s *CandidateService) Update(ctx context.Context, callerID string, id uuid.UUID, patch *candidate.UpdateDTO) (candidate.Candidate, error) {
	if fields, ok := patch.Ok(); !ok {
		return candidate.Candidate{}, newValidationError(fields)
	}

	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return candidate.Candidate{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (candidate.Candidate, error) {
		updated, err := s.repo.Update(txCtx, id, scope, patch)
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Candidate{}, newNotFoundError("candidate", err)
		}
		if err != nil {
			return candidate.Candidate{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, candidate.EventUpdated, callerID, candidate.UpdatedEvent{
			ID:     updated.ID,
			Fields: patch.Fields(),
		}); err != nil {
			return candidate.Candidate{}, err
		}
		return updated, nil
	})
}

func (s *CandidateService) Delete(ctx context.Context, callerID string, id uuid.UUID) (candidate.Candidate, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return candidate.Candidate{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (candidate.Candidate, error) {
		deleted, err := s.repo.Delete(txCtx, id, scope)
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Candidate{}, newNotFoundError("candidate", err)
		}
		if err != nil {
			return candidate.Candidate{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, candidate.EventDeleted, callerID, candidate.DeletedEvent{ID: deleted.ID}); err != nil {
			return candidate.Candidate{}, err
		}
		return deleted, nil
	})
}
