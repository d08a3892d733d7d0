package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/application"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
	"github.com/talentgrid-io/talentgrid/pkg/itf"
)

type mockApplicationRepo struct {
	application.Repository

	createCalls int
	created     application.Application
	updated     application.Application
	updateErr   error
	lastPatch   *application.UpdateDTO
	lastScope   visibility.Scope
}

func (m *mockApplicationRepo) Create(_ context.Context, entity application.Application) (application.Application, error) {
	m.createCalls++
	entity.ID = uuid.New()
	m.created = entity
	return entity, nil
}

func (m *mockApplicationRepo) Update(_ context.Context, id uuid.UUID, scope visibility.Scope, patch *application.UpdateDTO) (application.Application, error) {
	m.lastScope = scope
	m.lastPatch = patch
	if m.updateErr != nil {
		return application.Application{}, m.updateErr
	}
	m.updated.ID = id
	return m.updated, nil
}

func (m *mockApplicationRepo) Delete(_ context.Context, id uuid.UUID, scope visibility.Scope) (application.Application, error) {
	m.lastScope = scope
	return application.Application{ID: id, Status: application.StatusWithdrawn}, nil
}

func TestApplicationService_Create_MissingIDs(t *testing.T) {
	repo := &mockApplicationRepo{}
	recorder := &stubRecorder{}
	svc := NewApplicationService(repo, &stubMemberships{}, recorder)

	_, err := svc.Create(itf.NewTxContext(context.Background()), "user_1", &application.CreateDTO{})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "candidate_id")
	require.Contains(t, svcErr.Fields, "job_id")
	require.Zero(t, repo.createCalls)
	require.Empty(t, recorder.events)
}

func TestApplicationService_Create_DefaultsStatusApplied(t *testing.T) {
	repo := &mockApplicationRepo{}
	recorder := &stubRecorder{}
	svc := NewApplicationService(repo, &stubMemberships{}, recorder)

	created, err := svc.Create(itf.NewTxContext(context.Background()), "user_1", &application.CreateDTO{
		CandidateID: uuid.New(),
		JobID:       uuid.New(),
		Stage:       "  phone screen  ",
	})

	require.NoError(t, err)
	require.Equal(t, application.StatusApplied, created.Status)
	require.Equal(t, "phone screen", created.Stage)
	require.Len(t, recorder.events, 1)
	require.Equal(t, application.EventCreated, recorder.events[0].Topic)
}

func TestApplicationService_Update_UnknownStatus(t *testing.T) {
	repo := &mockApplicationRepo{}
	svc := NewApplicationService(repo, &stubMemberships{}, &stubRecorder{})

	bad := application.Status("paused")
	_, err := svc.Update(itf.NewTxContext(context.Background()), "user_1", uuid.New(), &application.UpdateDTO{
		Status: &bad,
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "status")
	require.Nil(t, repo.lastPatch)
}

func TestApplicationService_Update_NotFound(t *testing.T) {
	repo := &mockApplicationRepo{updateErr: application.ErrNotFound}
	svc := NewApplicationService(repo, &stubMemberships{}, &stubRecorder{})

	stage := "onsite"
	_, err := svc.Update(itf.NewTxContext(context.Background()), "user_1", uuid.New(), &application.UpdateDTO{
		Stage: &stage,
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 404, svcErr.Status)
}

func TestApplicationService_Delete_SoftDeletes(t *testing.T) {
	repo := &mockApplicationRepo{}
	recorder := &stubRecorder{}
	svc := NewApplicationService(repo, &stubMemberships{orgs: map[string][]uuid.UUID{
		"user_1": {uuid.New()},
	}}, recorder)

	deleted, err := svc.Delete(itf.NewTxContext(context.Background()), "user_1", uuid.New())

	require.NoError(t, err)
	require.Equal(t, application.StatusWithdrawn, deleted.Status)
	require.False(t, repo.lastScope.IsAll())
	require.Len(t, recorder.events, 1)
	require.Equal(t, application.EventDeleted, recorder.events[0].Topic)
}
