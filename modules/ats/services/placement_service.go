package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/placement"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/identity"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/shared"
)

type PlacementService struct {
	repo        placement.Repository
	memberships identity.MembershipRepository
	recorder    EventRecorder
}

func NewPlacementService(repo placement.Repository, memberships identity.MembershipRepository, recorder EventRecorder) *PlacementService {
	return &PlacementService{repo: repo, memberships: memberships, recorder: recorder}
}

func (s *PlacementService) GetMany(ctx context.Context, callerID string, params *placement.FindParams, page, limit int) ([]placement.Placement, shared.PaginationMeta, error) {
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

func (s *PlacementService) GetByID(ctx context.Context, callerID string, id uuid.UUID) (placement.Placement, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return placement.Placement{}, mapPgError(err)
	}

	p, err := s.repo.GetByID(ctx, id, scope)
	if errors.Is(err, placement.ErrNotFound) {
		return placement.Placement{}, newNotFoundError("placement", err)
	}
	if err != nil {
		return placement.Placement{}, mapPgError(err)
	}
	return p, nil
}

func (s *PlacementService) Create(ctx context.Context, callerID string, dto *placement.CreateDTO) (placement.Placement, error) {
	if fields, ok := dto.Ok(); !ok {
		return placement.Placement{}, newValidationError(fields)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (placement.Placement, error) {
		created, err := s.repo.Create(txCtx, dto.ToEntity())
		if err != nil {
			return placement.Placement{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, placement.EventCreated, callerID, placement.CreatedEvent{
			ID:            created.ID,
			CandidateID:   created.CandidateID,
			JobID:         created.JobID,
			ApplicationID: created.ApplicationID,
		}); err != nil {
			return placement.Placement{}, err
		}
		return created, nil
	})
}

func (s *PlacementService) Update(ctx context.Context, callerID string, id uuid.UUID, patch *placement.UpdateDTO) (placement.Placement, error) {
	if fields, ok := patch.Ok(); !ok {
		return placement.Placement{}, newValidationError(fields)
	}

	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return placement.Placement{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (placement.Placement, error) {
		updated, err := s.repo.Update(txCtx, id, scope, patch)
		if errors.Is(err, placement.ErrNotFound) {
			return placement.Placement{}, newNotFoundError("placement", err)
		}
		if err != nil {
			return placement.Placement{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, placement.EventUpdated, callerID, placement.UpdatedEvent{
			ID:     updated.ID,
			Fields: patch.Fields(),
		}); err != nil {
			return placement.Placement{}, err
		}
		return updated, nil
	})
}

func (s *PlacementService) Delete(ctx context.Context, callerID string, id uuid.UUID) (placement.Placement, error) {
	scope, err := resolveScope(ctx, s.memberships, callerID)
	if err != nil {
		return placement.Placement{}, mapPgError(err)
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) (placement.Placement, error) {
		deleted, err := s.repo.Delete(txCtx, id, scope)
		if errors.Is(err, placement.ErrNotFound) {
			return placement.Placement{}, newNotFoundError("placement", err)
		}
		if err != nil {
			return placement.Placement{}, mapPgError(err)
		}
		if err := s.recorder.Record(txCtx, placement.EventDeleted, callerID, placement.DeletedEvent{ID: deleted.ID}); err != nil {
			return placement.Placement{}, err
		}
		return deleted, nil
	})
}
