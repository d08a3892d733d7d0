package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/prescreenquestion"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
)

type PreScreenQuestionService struct {
	repo prescreenquestion.Repository
}

func NewPreScreenQuestionService(repo prescreenquestion.Repository) *PreScreenQuestionService {
	return &PreScreenQuestionService{repo: repo}
}

func (s *PreScreenQuestionService) GetByJobID(ctx context.Context, jobID uuid.UUID) ([]prescreenquestion.PreScreenQuestion, error) {
	if jobID == uuid.Nil {
		return nil, newValidationError(map[string]string{"job_id": "job_id is required"})
	}

	items, err := s.repo.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, mapPgError(err)
	}
	return items, nil
}

func (s *PreScreenQuestionService) GetByID(ctx context.Context, id uuid.UUID) (prescreenquestion.PreScreenQuestion, error) {
	q, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, prescreenquestion.ErrNotFound) {
		return prescreenquestion.PreScreenQuestion{}, newNotFoundError("pre-screen question", err)
	}
	if err != nil {
		return prescreenquestion.PreScreenQuestion{}, mapPgError(err)
	}
	return q, nil
}

func (s *PreScreenQuestionService) Create(ctx context.Context, dto *prescreenquestion.CreateDTO) (prescreenquestion.PreScreenQuestion, error) {
	if fields, ok := dto.Ok(); !ok {
		return prescreenquestion.PreScreenQuestion{}, newValidationError(fields)
	}

	q, err := s.repo.Create(ctx, dto)
	if err != nil {
		return prescreenquestion.PreScreenQuestion{}, mapPgError(err)
	}
	return q, nil
}

func (s *PreScreenQuestionService) Update(ctx context.Context, id uuid.UUID, patch *prescreenquestion.UpdateDTO) (prescreenquestion.PreScreenQuestion, error) {
	if fields, ok := patch.Ok(); !ok {
		return prescreenquestion.PreScreenQuestion{}, newValidationError(fields)
	}

	q, err := s.repo.Update(ctx, id, patch)
	if errors.Is(err, prescreenquestion.ErrNotFound) {
		return prescreenquestion.PreScreenQuestion{}, newNotFoundError("pre-screen question", err)
	}
	if err != nil {
		return prescreenquestion.PreScreenQuestion{}, mapPgError(err)
	}
	return q, nil
}

func (s *PreScreenQuestionService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, prescreenquestion.ErrNotFound) {
		return newNotFoundError("pre-screen question", err)
	}
	return mapPgError(err)
}

func (s *PreScreenQuestionService) BulkReplace(ctx context.Context, jobID uuid.UUID, items []prescreenquestion.CreateDTO) ([]prescreenquestion.PreScreenQuestion, error) {
	if jobID == uuid.Nil {
		return nil, newValidationError(map[string]string{"job_id": "job_id is required"})
	}
	for i := range items {
		items[i].JobID = jobID
		if fields, ok := items[i].Ok(); !ok {
			prefixed := make(map[string]string, len(fields))
			for field, reason := range fields {
				prefixed[fmt.Sprintf("questions[%d].%s", i, field)] = reason
			}
			return nil, newValidationError(prefixed)
		}
	}

	return composables.InTxResult(ctx, func(txCtx context.Context) ([]prescreenquestion.PreScreenQuestion, error) {
		out, err := s.repo.ReplaceForJob(txCtx, jobID, items)
		if err != nil {
			return nil, mapPgError(err)
		}
		return out, nil
	})
}
