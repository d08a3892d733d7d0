package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/job"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/repo"
)

const jobFields = `id, company_id, title, description, requirements, responsibilities, location, employment_type, salary_min, salary_max, salary_currency, status, closed_reason, created_at, updated_at`

type PgJobRepository struct{}

func NewJobRepository() job.Repository {
	return &PgJobRepository{}
}

func scanJob(row pgx.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID,
		&j.CompanyID,
		&j.Title,
		&j.Description,
		&j.Requirements,
		&j.Responsibilities,
		&j.Location,
		&j.EmploymentType,
		&j.SalaryMin,
		&j.SalaryMax,
		&j.SalaryCurrency,
		&j.Status,
		&j.ClosedReason,
		&j.CreatedAt,
		&j.UpdatedAt,
	)
	return j, err
}

func (r *PgJobRepository) GetPaginated(ctx context.Context, params *job.FindParams) ([]job.Job, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	var f filterBuilder
	f.addScope(params.Scope, jobScopeCondition)
	if params.Status != "" {
		f.add("status = ?", string(params.Status))
	}
	if params.EmploymentType != "" {
		f.add("employment_type = ?", string(params.EmploymentType))
	}
	if params.Location != "" {
		f.add("location ILIKE ?", "%"+params.Location+"%")
	}
	if params.CompanyID != uuid.Nil {
		f.add("company_id = ?", pgUUID(params.CompanyID))
	}
	f.searchOr(params.Search, "title", "description", "location")

	where := repo.JoinWhere(f.conditions...)

	var total int64
	if err := tx.QueryRow(ctx, repo.Join("SELECT COUNT(*) FROM ats.jobs", where), f.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	if params.SortBy == job.SortByTitle {
		sortBy = "title"
	}
	query := repo.Join(
		"SELECT "+jobFields,
		"FROM ats.jobs",
		where,
		fmt.Sprintf("ORDER BY %s %s", sortBy, sortDirection(params.Asc)),
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)

	rows, err := tx.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]job.Job, 0, params.Limit)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, j)
	}
	return out, total, rows.Err()
}

func (r *PgJobRepository) GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (job.Job, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return job.Job{}, err
	}

	var f filterBuilder
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, jobScopeCondition)

	query := repo.Join("SELECT "+jobFields, "FROM ats.jobs", repo.JoinWhere(f.conditions...))
	j, err := scanJob(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return job.Job{}, job.ErrNotFound
	}
	return j, err
}

func (r *PgJobRepository) Create(ctx context.Context, entity job.Job) (job.Job, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return job.Job{}, err
	}

	return scanJob(tx.QueryRow(ctx, `
INSERT INTO ats.jobs (company_id, title, description, requirements, responsibilities, location, employment_type, salary_min, salary_max, salary_currency, status, closed_reason, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING `+jobFields,
		pgUUID(entity.CompanyID),
		entity.Title,
		entity.Description,
		entity.Requirements,
		entity.Responsibilities,
		entity.Location,
		string(entity.EmploymentType),
		entity.SalaryMin,
		entity.SalaryMax,
		entity.SalaryCurrency,
		string(entity.Status),
		entity.ClosedReason,
		entity.CreatedAt,
		entity.UpdatedAt,
	))
}

func (r *PgJobRepository) Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *job.UpdateDTO) (job.Job, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return job.Job{}, err
	}

	var s setBuilder
	if patch.Title != nil {
		s.set("title", *patch.Title)
	}
	if patch.Description != nil {
		s.set("description", *patch.Description)
	}
	if patch.Requirements != nil {
		s.set("requirements", *patch.Requirements)
	}
	if patch.Responsibilities != nil {
		s.set("responsibilities", *patch.Responsibilities)
	}
	if patch.Location != nil {
		s.set("location", *patch.Location)
	}
	if patch.EmploymentType != nil {
		s.set("employment_type", string(*patch.EmploymentType))
	}
	if patch.SalaryMin != nil {
		s.set("salary_min", *patch.SalaryMin)
	}
	if patch.SalaryMax != nil {
		s.set("salary_max", *patch.SalaryMax)
	}
	if patch.SalaryCurrency != nil {
		s.set("salary_currency", *patch.SalaryCurrency)
	}
	if patch.Status != nil {
		s.set("status", string(*patch.Status))
	}
	if patch.ClosedReason != nil {
		s.set("closed_reason", *patch.ClosedReason)
	}
	s.raw("updated_at = now()")

	f := filterBuilder{args: s.args}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, jobScopeCondition)

	query := repo.Join(
		"UPDATE ats.jobs SET "+s.clause(),
		repo.JoinWhere(f.conditions...),
		"RETURNING "+jobFields,
	)
	j, err := scanJob(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return job.Job{}, job.ErrNotFound
	}
	return j, err
}

func (r *PgJobRepository) Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (job.Job, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return job.Job{}, err
	}

	f := filterBuilder{args: []any{string(job.StatusClosed)}}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, jobScopeCondition)

	query := repo.Join(
		"UPDATE ats.jobs SET status = $1, updated_at = now()",
		repo.JoinWhere(f.conditions...),
		"RETURNING "+jobFields,
	)
	j, err := scanJob(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return job.Job{}, job.ErrNotFound
	}
	return j, err
}
