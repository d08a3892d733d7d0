package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/company"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/repo"
)

const companyFields = `id, name, description, website, status, identity_organization_id, created_at, updated_at`

type PgCompanyRepository struct{}

func NewCompanyRepository() company.Repository {
	return &PgCompanyRepository{}
}

func scanCompany(row pgx.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Website,
		&c.Status,
		&c.IdentityOrganizationID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *PgCompanyRepository) GetPaginated(ctx context.Context, params *company.FindParams) ([]company.Company, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	var f filterBuilder
	f.addScope(params.Scope, companyScopeCondition)
	if params.Status != "" {
		f.add("status = ?", string(params.Status))
	}
	f.searchOr(params.Search, "name", "description")

	where := repo.JoinWhere(f.conditions...)

	var total int64
	if err := tx.QueryRow(ctx, repo.Join("SELECT COUNT(*) FROM ats.companies", where), f.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "name"
	if params.SortBy == company.SortByCreatedAt {
		sortBy = "created_at"
	}
	query := repo.Join(
		"SELECT "+companyFields,
		"FROM ats.companies",
		where,
		fmt.Sprintf("ORDER BY %s %s", sortBy, sortDirection(params.Asc)),
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)

	rows, err := tx.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]company.Company, 0, params.Limit)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *PgCompanyRepository) GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (company.Company, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return company.Company{}, err
	}

	var f filterBuilder
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, companyScopeCondition)

	query := repo.Join("SELECT "+companyFields, "FROM ats.companies", repo.JoinWhere(f.conditions...))
	c, err := scanCompany(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return company.Company{}, company.ErrNotFound
	}
	return c, err
}

func (r *PgCompanyRepository) Create(ctx context.Context, entity company.Company) (company.Company, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return company.Company{}, err
	}

	return scanCompany(tx.QueryRow(ctx, `
INSERT INTO ats.companies (name, description, website, status, identity_organization_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+companyFields,
		entity.Name,
		entity.Description,
		entity.Website,
		string(entity.Status),
		pgUUID(entity.IdentityOrganizationID),
		entity.CreatedAt,
		entity.UpdatedAt,
	))
}

func (r *PgCompanyRepository) Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *company.UpdateDTO) (company.Company, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return company.Company{}, err
	}

	var s setBuilder
	if patch.Name != nil {
		s.set("name", *patch.Name)
	}
	if patch.Description != nil {
		s.set("description", *patch.Description)
	}
	if patch.Website != nil {
		s.set("website", *patch.Website)
	}
	if patch.Status != nil {
		s.set("status", string(*patch.Status))
	}
	s.raw("updated_at = now()")

	f := filterBuilder{args: s.args}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, companyScopeCondition)

	query := repo.Join(
		"UPDATE ats.companies SET "+s.clause(),
		repo.JoinWhere(f.conditions...),
		"RETURNING "+companyFields,
	)
	c, err := scanCompany(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return company.Company{}, company.ErrNotFound
	}
	return c, err
}

func (r *PgCompanyRepository) Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (company.Company, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return company.Company{}, err
	}

	f := filterBuilder{args: []any{string(company.StatusInactive)}}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, companyScopeCondition)

	query := repo.Join(
		"UPDATE ats.companies SET status = $1, updated_at = now()",
		repo.JoinWhere(f.conditions...),
		"RETURNING "+companyFields,
	)
	c, err := scanCompany(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return company.Company{}, company.ErrNotFound
	}
	return c, err
}
