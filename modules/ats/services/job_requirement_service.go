package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/jobrequirement"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
)

type JobRequirementService struct {
	repo jobrequirement.Repository
}

func NewJobRequirementService(repo jobrequirement.Repository) *JobRequirementService {
	return &JobRequirementService{repo: repo}
}

func (s *JobRequirementService) GetByJobID(ctx context.Context, jobID uuid.UUID) ([]jobrequirement.JobRequirement, error) {
	if jobID == uuid.Nil {
		return nil, newValidationError(map[string]string{"job_id": "job_id is required"})
	}

	items, err := s.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, mapPgError(err)
	}
	return items, nil
}

func (s *JobRequirementService) GetByID(ctx context.Context, id uuid.UUID) (jobrequirement.JobRequirement, error) {
	jr, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, jobrequirement.ErrNotFound) {
		return jobrequirement.JobRequirement{}, newNotFoundError("job requirement", err)
	}
	if err != nil {
		return jobrequirement.JobRequirement{}, mapPgError(err)
	}
	return jr, nil
}

func (s *JobRequirementService) Create(ctx context.Context, dto *jobrequirement.CreateDTO) (jobrequirement.JobRequirement, error) {
	if fields, ok := dto.Ok(); !ok {
		return jobrequirement.JobRequirement{}, newValidationError(fields)
	}

	jr, err := s.repo.Create(ctx, dto)
	if err != nil {
		return jobrequirement.JobRequirement{}, mapPgError(err)
	}
	return jr, nil
}

func (s *JobRequirementService) Update(ctx context.Context, id uuid.UUID, patch *jobrequirement.UpdateDTO) (jobrequirement.JobRequirement, error) {
	if fields, ok := patch.Ok(); !ok {
		return jobrequirement.JobRequirement{}, newValidationError(fields)
	}

	jr, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, jobrequirement.ErrNotFound) {
		return jobrequirement.JobRequirement{}, newNotFoundError("job requirement", err)
	}
	if err != nil {
		return jobrequirement.JobRequirement{}, mapPgError(err)
	}
	return jr, nil
}

func (s *JobRequirementService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, jobrequirement.ErrNotFound) {
		return newNotFoundError("job requirement", err)
	}
	return mapPgError(err)
}

// BulkReplace swaps the full requirement set of one job. Validation covers
// every item before any storage access; the swap itself is a single
// database-side transaction, so concurrent readers never observe a
// half-replaced set.
func (s *JobRequirementService) BulkReplace(ctx context.Context, jobID uuid.UUID, items []jobrequirement.CreateDTO) ([]jobrequirement.JobRequirement, error) {
	if jobID == uuid.Nil {
		return nil, newValidationError(map[string]string{"job_id": "job_id is required"})
	}
	for i := range items {
		items[i].JobID = jobID
		if fields, ok := items[i].Ok(); !ok {
			prefixed := make(map[string]string, len(fields))
			for field, reason := range fields {
				prefixed[fmt.Sprintf("requirements[%d].%s", i, field)] = reason
			}
			return nil, newValidationError(prefixed)
		}
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) ([]jobrequirement.JobRequirement, error) {
		out, err := s.repo.ReplaceForJob(txCtx, jobID, items)
		if err != nil {
			return nil, mapPgError(err)
		}
		return out, nil
	})
}
