package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/application"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/repo"
)

const applicationFields = `id, candidate_id, job_id, status, stage, notes, created_at, updated_at`

type PgApplicationRepository struct{}

func NewApplicationRepository() application.Repository {
	return &PgApplicationRepository{}
}

func scanApplication(row pgx.Row) (application.Application, error) {
	var a application.Application
	err := row.Scan(
		&a.ID,
		&a.CandidateID,
		&a.JobID,
		&a.Status,
		&a.Stage,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	return a, err
}

func (r *PgApplicationRepository) GetPaginated(ctx context.Context, params *application.FindParams) ([]application.Application, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	var f filterBuilder
	f.addScope(params.Scope, viaJobScopeCondition)
	if params.Status != "" {
		f.add("status = ?", string(params.Status))
	}
	if params.Stage != "" {
		f.add("stage = ?", params.Stage)
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
	if err := tx.QueryRow(ctx, repo.Join("SELECT COUNT(*) FROM ats.applications", where), f.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := repo.Join(
		"SELECT "+applicationFields,
		"FROM ats.applications",
		where,
		fmt.Sprintf("ORDER BY created_at %s", sortDirection(params.Asc)),
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)

	rows, err := tx.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]application.Application, 0, params.Limit)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r *PgApplicationRepository) GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (application.Application, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return application.Application{}, err
	}

	var f filterBuilder
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, viaJobScopeCondition)

	query := repo.Join("SELECT "+applicationFields, "FROM ats.applications", repo.JoinWhere(f.conditions...))
	a, err := scanApplication(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return application.Application{}, application.ErrNotFound
	}
	return a, err
}

func (r *PgApplicationRepository) Create(ctx context.Context, entity application.Application) (application.Application, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return application.Application{}, err
	}

	return scanApplication(tx.QueryRow(ctx, `
INSERT INTO ats.applications (candidate_id, job_id, status, stage, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+applicationFields,
		pgUUID(entity.CandidateID),
		pgUUID(entity.JobID),
		string(entity.Status),
		entity.Stage,
		entity.Notes,
		entity.CreatedAt,
		entity.UpdatedAt,
	))
}

func (r *PgApplicationRepository) Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *application.UpdateDTO) (application.Application, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return application.Application{}, err
	}

	var s setBuilder
	if patch.Status != nil {
		s.set("status", string(*patch.Status))
	}
	if patch.Stage != nil {
		s.set("stage", *patch.Stage)
	}
	if patch.Notes != nil {
		s.set("notes", *patch.Notes)
	}
	s.raw("updated_at = now()")

	f := filterBuilder{args: s.args}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, viaJobScopeCondition)

	query := repo.Join(
		"UPDATE ats.applications SET "+s.clause(),
		repo.JoinWhere(f.conditions...),
		"RETURNING "+applicationFields,
	)
	a, err := scanApplication(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return application.Application{}, application.ErrNotFound
	}
	return a, err
}

func (r *PgApplicationRepository) Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (application.Application, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return application.Application{}, err
	}

	f := filterBuilder{args: []any{string(application.StatusWithdrawn)}}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, viaJobScopeCondition)

	query := repo.Join(
		"UPDATE ats.applications SET status = $1, updated_at = now()",
		repo.JoinWhere(f.conditions...),
		"RETURNING "+applicationFields,
	)
	a, err := scanApplication(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return application.Application{}, application.ErrNotFound
	}
	return a, err
}
