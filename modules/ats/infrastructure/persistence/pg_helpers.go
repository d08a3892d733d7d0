package persistence

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
)

func pgUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func pgUUIDArray(ids []uuid.UUID) pgtype.FlatArray[uuid.UUID] {
	return pgtype.FlatArray[uuid.UUID](ids)
}

// Scope conditions per entity, each with a single ? placeholder for the
// caller's organization id array. Companies carry the owning organization
// directly; everything else reaches it through the ownership chain.
const (
	companyScopeCondition = "identity_organization_id = ANY(?)"
	jobScopeCondition     = "company_id IN (SELECT id FROM ats.companies WHERE identity_organization_id = ANY(?))"
	viaJobScopeCondition  = "job_id IN (SELECT j.id FROM ats.jobs j JOIN ats.companies c ON c.id = j.company_id WHERE c.identity_organization_id = ANY(?))"
	// Candidates have no owning column at all; visibility flows through
	// their applications. Pushed into SQL so the reported total always
	// matches the returned rows.
	candidateScopeCondition = "EXISTS (SELECT 1 FROM ats.applications a JOIN ats.jobs j ON j.id = a.job_id JOIN ats.companies c ON c.id = j.company_id WHERE a.candidate_id = ats.candidates.id AND c.identity_organization_id = ANY(?))"
)

// filterBuilder accumulates WHERE conditions with positional args.
type filterBuilder struct {
	conditions []string
	args       []any
}

func (f *filterBuilder) add(condition string, args ...any) {
	n := len(f.args)
	for i := range args {
		condition = strings.Replace(condition, "?", fmt.Sprintf("$%d", n+i+1), 1)
	}
	f.conditions = append(f.conditions, condition)
	f.args = append(f.args, args...)
}

// addScope appends the organization restriction. An all scope adds nothing.
func (f *filterBuilder) addScope(scope visibility.Scope, condition string) {
	if scope.IsAll() {
		return
	}
	f.add(condition, pgUUIDArray(scope.OrganizationIDs()))
}

// searchOr appends a free-text condition matching the term against each of
// the given columns with ILIKE.
func (f *filterBuilder) searchOr(term string, columns ...string) {
	if term == "" {
		return
	}
	pattern := "%" + term + "%"
	parts := make([]string, 0, len(columns))
	n := len(f.args) + 1
	for _, col := range columns {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, n))
	}
	f.conditions = append(f.conditions, "("+strings.Join(parts, " OR ")+")")
	f.args = append(f.args, pattern)
}

// setBuilder accumulates SET fragments for a partial UPDATE, continuing the
// arg numbering of an existing filterBuilder arg list.
type setBuilder struct {
	fragments []string
	args      []any
}

func (s *setBuilder) set(column string, value any) {
	s.args = append(s.args, value)
	s.fragments = append(s.fragments, fmt.Sprintf("%s = $%d", column, len(s.args)))
}

// raw appends a fragment that carries no argument, such as a call to now().
func (s *setBuilder) raw(fragment string) {
	s.fragments = append(s.fragments, fragment)
}

func (s *setBuilder) clause() string {
	return strings.Join(s.fragments, ", ")
}

func sortDirection(asc bool) string {
	if asc {
		return "ASC"
	}
	return "DESC"
}
