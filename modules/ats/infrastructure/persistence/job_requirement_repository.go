package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/jobrequirement"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/repo"
)

const jobRequirementFields = `id, job_id, requirement_type, description, is_mandatory, sort_order, created_at, updated_at`

type PgJobRequirementRepository struct{}

func NewJobRequirementRepository() jobrequirement.Repository {
	return &PgJobRequirementRepository{}
}

func scanJobRequirement(row pgx.Row) (jobrequirement.JobRequirement, error) {
	var jr jobrequirement.JobRequirement
	err := row.Scan(
		&jr.ID,
		&jr.JobID,
		&jr.RequirementType,
		&jr.Description,
		&jr.IsMandatory,
		&jr.SortOrder,
		&jr.CreatedAt,
		&jr.UpdatedAt,
	)
	return jr, err
}

func (r *PgJobRequirementRepository) GetByJobID(ctx context.Context, jobID uuid.UUID) ([]jobrequirement.JobRequirement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+jobRequirementFields+`
FROM ats.job_requirements
WHERE job_id = $1
ORDER BY sort_order ASC
`, pgUUID(jobID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]jobrequirement.JobRequirement, 0)
	for rows.Next() {
		jr, err := scanJobRequirement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, jr)
	}
	return out, rows.Err()
}

func (r *PgJobRequirementRepository) GetByID(ctx context.Context, id uuid.UUID) (jobrequirement.JobRequirement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return jobrequirement.JobRequirement{}, err
	}

	jr, err := scanJobRequirement(tx.QueryRow(ctx, `
SELECT `+jobRequirementFields+`
FROM ats.job_requirements
WHERE id = $1
`, pgUUID(id)))
	if errors.Is(err, pgx.ErrNoRows) {
		return jobrequirement.JobRequirement{}, jobrequirement.ErrNotFound
	}
	return jr, err
}

func (r *PgJobRequirementRepository) Create(ctx context.Context, dto *jobrequirement.CreateDTO) (jobrequirement.JobRequirement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return jobrequirement.JobRequirement{}, err
	}

	sortOrder := 0
	if dto.SortOrder != nil {
		sortOrder = *dto.SortOrder
	}
	return scanJobRequirement(tx.QueryRow(ctx, `
INSERT INTO ats.job_requirements (job_id, requirement_type, description, is_mandatory, sort_order)
VALUES ($1, $2, $3, $4, $5)
RETURNING `+jobRequirementFields,
		pgUUID(dto.JobID),
		string(dto.RequirementType),
		dto.Description,
		dto.IsMandatory,
		sortOrder,
	))
}

func (r *PgJobRequirementRepository) Update(ctx context.Context, id uuid.UUID, patch *jobrequirement.UpdateDTO) (jobrequirement.JobRequirement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return jobrequirement.JobRequirement{}, err
	}

	var s setBuilder
	if patch.RequirementType != nil {
		s.set("requirement_type", string(*patch.RequirementType))
	}
	if patch.Description != nil {
		s.set("description", *patch.Description)
	}
	if patch.IsMandatory != nil {
		s.set("is_mandatory", *patch.IsMandatory)
	}
	if patch.SortOrder != nil {
		s.set("sort_order", *patch.SortOrder)
	}
	s.raw("updated_at = now()")

	f := filterBuilder{args: s.args}
	f.add("id = ?", pgUUID(id))

	query := repo.Join(
		"UPDATE ats.job_requirements SET "+s.clause(),
		repo.JoinWhere(f.conditions...),
		"RETURNING "+jobRequirementFields,
	)
	jr, err := scanJobRequirement(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return jobrequirement.JobRequirement{}, jobrequirement.ErrNotFound
	}
	return jr, err
}

func (r *PgJobRequirementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM ats.job_requirements WHERE id = $1`, pgUUID(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return jobrequirement.ErrNotFound
	}
	return nil
}

func (r *PgJobRequirementRepository) ReplaceForJob(ctx context.Context, jobID uuid.UUID, items []jobrequirement.CreateDTO) ([]jobrequirement.JobRequirement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
SELECT `+jobRequirementFields+`
FROM ats.replace_job_requirements($1, $2::jsonb)
`, pgUUID(jobID), string(payload))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]jobrequirement.JobRequirement, 0, len(items))
	for rows.Next() {
		jr, err := scanJobRequirement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, jr)
	}
	return out, rows.Err()
}
