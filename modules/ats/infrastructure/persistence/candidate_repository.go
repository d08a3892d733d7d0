package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/candidate"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/repo"
)

const candidateFields = `id, first_name, last_name, email, phone, location, status, created_at, updated_at`

type PgCandidateRepository struct{}

func NewCandidateRepository() candidate.Repository {
	return &PgCandidateRepository{}
}

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := row.Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.Phone,
		&c.Location,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

func (r *PgCandidateRepository) GetPaginated(ctx context.Context, params *candidate.FindParams) ([]candidate.Candidate, int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	var f filterBuilder
	f.addScope(params.Scope, candidateScopeCondition)
	if params.Status != "" {
		f.add("status = ?", string(params.Status))
	}
	if params.Location != "" {
		f.add("location ILIKE ?", "%"+params.Location+"%")
	}
	f.searchOr(params.Search, "first_name", "last_name", "email")

	where := repo.JoinWhere(f.conditions...)

	var total int64
	if err := tx.QueryRow(ctx, repo.Join("SELECT COUNT(*) FROM ats.candidates", where), f.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	if params.SortBy == candidate.SortByLastName {
		sortBy = "last_name"
	}
	query := repo.Join(
		"SELECT "+candidateFields,
		"FROM ats.candidates",
		where,
		fmt.Sprintf("ORDER BY %s %s", sortBy, sortDirection(params.Asc)),
		repo.FormatLimitOffset(params.Limit, params.Offset),
	)

	rows, err := tx.Query(ctx, query, f.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]candidate.Candidate, 0, params.Limit)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r *PgCandidateRepository) GetByID(ctx context.Context, id uuid.UUID, scope visibility.Scope) (candidate.Candidate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return candidate.Candidate{}, err
	}

	var f filterBuilder
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, candidateScopeCondition)

	query := repo.Join("SELECT "+candidateFields, "FROM ats.candidates", repo.JoinWhere(f.conditions...))
	c, err := scanCandidate(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, err
}

func (r *PgCandidateRepository) Create(ctx context.Context, entity candidate.Candidate) (candidate.Candidate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return candidate.Candidate{}, err
	}

	return scanCandidate(tx.QueryRow(ctx, `
INSERT INTO ats.candidates (first_name, last_name, email, phone, location, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+candidateFields,
		entity.FirstName,
		entity.LastName,
		entity.Email,
		entity.Phone,
		entity.Location,
		string(entity.Status),
		entity.CreatedAt,
		entity.UpdatedAt,
	))
}

func (r *PgCandidateRepository) Update(ctx context.Context, id uuid.UUID, scope visibility.Scope, patch *candidate.UpdateDTO) (candidate.Candidate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return candidate.Candidate{}, err
	}

	var s setBuilder
	if patch.FirstName != nil {
		s.set("first_name", strings.TrimSpace(*patch.FirstName))
	}
	if patch.LastName != nil {
		s.set("last_name", strings.TrimSpace(*patch.LastName))
	}
	if patch.Email != nil {
		s.set("email", strings.ToLower(strings.TrimSpace(*patch.Email)))
	}
	if patch.Phone != nil {
		s.set("phone", *patch.Phone)
	}
	if patch.Location != nil {
		s.set("location", *patch.Location)
	}
	if patch.Status != nil {
		s.set("status", string(*patch.Status))
	}
	s.raw("updated_at = now()")

	f := filterBuilder{args: s.args}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, candidateScopeCondition)

	query := repo.Join(
		"UPDATE ats.candidates SET "+s.clause(),
		repo.JoinWhere(f.conditions...),
		"RETURNING "+candidateFields,
	)
	c, err := scanCandidate(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, err
}

func (r *PgCandidateRepository) Delete(ctx context.Context, id uuid.UUID, scope visibility.Scope) (candidate.Candidate, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return candidate.Candidate{}, err
	}

	f := filterBuilder{args: []any{string(candidate.StatusArchived)}}
	f.add("id = ?", pgUUID(id))
	f.addScope(scope, candidateScopeCondition)

	query := repo.Join(
		"UPDATE ats.candidates SET status = $1, updated_at = now()",
		repo.JoinWhere(f.conditions...),
		"RETURNING "+candidateFields,
	)
	c, err := scanCandidate(tx.QueryRow(ctx, query, f.args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, err
}
