package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/candidate"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
	"github.com/talentgrid-io/talentgrid/pkg/itf"
	"github.com/talentgrid-io/talentgrid/pkg/shared"
)

type mockCandidateRepo struct {
	candidate.Repository

	createCalls int
	created     candidate.Candidate
	deleted     candidate.Candidate
	deleteErr   error
	paginated   []candidate.Candidate
	total       int64
	lastParams  *candidate.FindParams
	lastScope   visibility.Scope
}

func (m *mockCandidateRepo) GetPaginated(_ context.Context, params *candidate.FindParams) ([]candidate.Candidate, int64, error) {
	m.lastParams = params
	return m.paginated, m.total, nil
}

func (m *mockCandidateRepo) Create(_ context.Context, entity candidate.Candidate) (candidate.Candidate, error) {
	m.createCalls++
	entity.ID = uuid.New()
	m.created = entity
	return entity, nil
}

func (m *mockCandidateRepo) Delete(_ context.Context, id uuid.UUID, scope visibility.Scope) (candidate.Candidate, error) {
	m.lastScope = scope
	if m.deleteErr != nil {
		return candidate.Candidate{}, m.deleteErr
	}
	m.deleted.ID = id
	m.deleted.Status = candidate.StatusArchived
	return m.deleted, nil
}

func TestCandidateService_Create_InvalidEmail(t *testing.T) {
	repo := &mockCandidateRepo{}
	recorder := &stubRecorder{}
	svc := NewCandidateService(repo, &stubMemberships{}, recorder)

	_, err := svc.Create(itf.NewTxContext(context.Background()), "user_1", &candidate.CreateDTO{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "not-an-email",
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "email")
	require.Zero(t, repo.createCalls, "no storage write on validation failure")
	require.Empty(t, recorder.events, "no event on validation failure")
}

func TestCandidateService_Create_MissingFields(t *testing.T) {
	svc := NewCandidateService(&mockCandidateRepo{}, &stubMemberships{}, &stubRecorder{})

	_, err := svc.Create(itf.NewTxContext(context.Background()), "user_1", &candidate.CreateDTO{})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Contains(t, svcErr.Fields, "first_name")
	require.Contains(t, svcErr.Fields, "last_name")
	require.Contains(t, svcErr.Fields, "email")
}

func TestCandidateService_Create_RecordsEvent(t *testing.T) {
	repo := &mockCandidateRepo{}
	recorder := &stubRecorder{}
	svc := NewCandidateService(repo, &stubMemberships{}, recorder)

	created, err := svc.Create(itf.NewTxContext(context.Background()), "user_1", &candidate.CreateDTO{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ADA@Example.COM",
	})
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", created.Email, "email is lowercased")
	require.Equal(t, candidate.StatusActive, created.Status)

	require.Len(t, recorder.events, 1)
	require.Equal(t, candidate.EventCreated, recorder.events[0].Topic)
	require.Equal(t, "user_1", recorder.events[0].ActorID)
}

func TestCandidateService_Delete_SoftDeletes(t *testing.T) {
	repo := &mockCandidateRepo{}
	recorder := &stubRecorder{}
	svc := NewCandidateService(repo, &stubMemberships{}, recorder)

	id := uuid.New()
	deleted, err := svc.Delete(itf.NewTxContext(context.Background()), "user_1", id)
	require.NoError(t, err)
	require.Equal(t, id, deleted.ID)
	require.Equal(t, candidate.StatusArchived, deleted.Status)

	require.Len(t, recorder.events, 1)
	require.Equal(t, candidate.EventDeleted, recorder.events[0].Topic)
}

func TestCandidateService_Delete_NotFound(t *testing.T) {
	repo := &mockCandidateRepo{deleteErr: candidate.ErrNotFound}
	svc := NewCandidateService(repo, &stubMemberships{}, &stubRecorder{})

	_, err := svc.Delete(itf.NewTxContext(context.Background()), "user_1", uuid.New())

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 404, svcErr.Status)
}

func TestCandidateService_GetMany_ScopesToMemberships(t *testing.T) {
	orgID := uuid.New()
	repo := &mockCandidateRepo{total: 1}
	memberships := &stubMemberships{orgs: map[string][]uuid.UUID{"user_1": {orgID}}}
	svc := NewCandidateService(repo, memberships, &stubRecorder{})

	_, meta, err := svc.GetMany(context.Background(), "user_1", &candidate.FindParams{}, 0, 0)
	require.NoError(t, err)

	require.False(t, repo.lastParams.Scope.IsAll())
	require.Equal(t, []uuid.UUID{orgID}, repo.lastParams.Scope.OrganizationIDs())
	require.Equal(t, shared.PaginationMeta{Total: 1, Page: 1, Limit: 25, TotalPages: 1}, meta)
}

func TestCandidateService_GetMany_NoMembershipsMeansAll(t *testing.T) {
	repo := &mockCandidateRepo{}
	svc := NewCandidateService(repo, &stubMemberships{}, &stubRecorder{})

	_, _, err := svc.GetMany(context.Background(), "operator", &candidate.FindParams{}, 1, 10)
	require.NoError(t, err)
	require.True(t, repo.lastParams.Scope.IsAll())
}
