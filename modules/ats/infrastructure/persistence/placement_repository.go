package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/placement"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/repo"
)

const placementFields = `id, candidate_id, job_id, application_id, status, start_date, salary, fee_percentage, notes, created_at, updated_at`

type PgPlacementRepository struct{}

func NewPlacementRepository() placement.Repository {
	return &PgPlacementRepository{}
}

func scanPlacement(row pgx.Row) (placement.Placement, error) {
	var p placement.Placement
	err := row.Scan(
		&p.ID,
		&p.CandidateID,
		&p.JobID,
		&p.ApplicationID,
		&p.Status,
		&p.StartDate,
		&p.Salary,
		&p.FeePercentage,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *PgPlacementRepository) GetPaginated(ctx context.Context, params *placement.FindParams) ([]placement.Placement, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	var f filterBuilder
	f.addScope(params.Scope, viaJobScopeCondition)
	if params.Status != "" {
		f.add("status = ?", string(params.Status))
	}
	if params.CandidateID != uuid.Nil {
		f.add("candidate_id = ?", pgUUID(params.CandidateID))
	}
	if params.JobID != uuid.Nil {
		f.add("job_id = ?", pgUUID(params.JobID))
	}
	f.searchOr(params.Search, "notes")

	where := repo.JoinWhere(f.conditions...)

	var total int64
	if err := tx.QueryRow(ctx, repo.Join("SELECT COUNT(*) FROM ats.placements", where), f.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := repo.Join(
		"SELECT "+placementFields,
		"FROM ats.placements",
		where,
		fmt.Sprintf("ORDER BY created_at %s", sortDirection(params.Asc)),
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)

	rows, err := tx.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]placement.Placement, 0, params.Limit)
	for rows.Next() {
		p, err := scanPlacement(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *PgPlacementRepository) GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (placement.Placement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return placement.Placement{}, err
	}

	var f filterBuilder
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, viaJobScopeCondition)

	query := repo.Join("SELECT "+placementFields, "FROM ats.placements", repo.JoinWhere(f.conditions...))
	p, err := scanPlacement(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return placement.Placement{}, placement.ErrNotFound
	}
	return p, err
}

func (r *PgPlacementRepository) Create(ctx context.Context, entity placement.Placement) (placement.Placement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return placement.Placement{}, err
	}

	return scanPlacement(tx.QueryRow(ctx, `
INSERT INTO ats.placements (candidate_id, job_id, application_id, status, start_date, salary, fee_percentage, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING `+placementFields,
		pgUUID(entity.CandidateID),
		pgUUID(entity.JobID),
		pgUUID(entity.ApplicationID),
		string(entity.Status),
		entity.StartDate,
		entity.Salary,
		entity.FeePercentage,
		entity.Notes,
		entity.CreatedAt,
		entity.UpdatedAt,
	))
}

func (r *PgPlacementRepository) Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *placement.UpdateDTO) (placement.Placement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return placement.Placement{}, err
	}

	var s setBuilder
	if patch.Status != nil {
		s.set("status", string(*patch.Status))
	}
	if patch.StartDate != nil {
		s.set("start_date", *patch.StartDate)
	}
	if patch.Salary != nil {
		s.set("salary", *patch.Salary)
	}
	if patch.FeePercentage != nil {
		s.set("fee_percentage", *patch.FeePercentage)
	}
	if patch.Notes != nil {
		s.set("notes", *patch.Notes)
	}
	s.raw("updated_at = now()")

	f := filterBuilder{args: s.args}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, viaJobScopeCondition)

	query := repo.Join(
		"UPDATE ats.placements SET "+s.clause(),
		repo.JoinWhere(f.conditions...),
		"RETURNING "+placementFields,
	)
	p, err := scanPlacement(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return placement.Placement{}, placement.ErrNotFound
	}
	return p, err
}

func (r *PgPlacementRepository) Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (placement.Placement, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return placement.Placement{}, err
	}

	f := filterBuilder{args: []any{string(placement.StatusCancelled)}}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, viaJobScopeCondition)

	query := repo.Join(
		"UPDATE ats.placements SET status = $1, updated_at = now()",
		repo.JoinWhere(f.conditions...),
		"RETURNING "+placementFields,
	)
	p, err := scanPlacement(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return placement.Placement{}, placement.ErrNotFound
	}
	return p, err
}
