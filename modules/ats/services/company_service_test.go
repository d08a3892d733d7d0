package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/company"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/visibility"
	"github.com/talentgrid-io/talentgrid/pkg/itf"
)

type mockCompanyRepo struct {
	company.Repository

	createCalls int
	updateErr   error
	updated     company.Company
	lastPatch   *company.UpdateDTO
}

func (m *mockCompanyRepo) Create(_ context.Context, entity company.Company) (company.Company, error) {
	m.createCalls++
	entity.ID = uuid.New()
	return entity, nil
}

func (m *mockCompanyRepo) Update(_ context.Context, id uuid.UUID, _ visibility.Scope, patch *company.UpdateDTO) (company.Company, error) {
	if m.updateErr != nil {
		return company.Company{}, m.updateErr
	}
	m.lastPatch = patch
	m.updated.ID = id
	return m.updated, nil
}

func TestCompanyService_Create_MissingName(t *testing.T) {
	repo := &mockCompanyRepo{}
	svc := NewCompanyService(repo, &stubMemberships{}, &stubRecorder{})

	_, err := svc.Create(itf.NewTxContext(context.Background()), "user_1", &company.CreateDTO{
		IdentityOrganizationID: uuid.New(),
	})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "name")
	require.Zero(t, repo.createCalls)
}

func TestCompanyService_Create_DefaultsStatusActive(t *testing.T) {
	repo := &mockCompanyRepo{}
	recorder := &stubRecorder{}
	svc := NewCompanyService(repo, &stubMemberships{}, recorder)

	created, err := svc.Create(itf.NewTxContext(context.Background()), "user_1", &company.CreateDTO{
		Name:                   "  Acme Recruiting  ",
		IdentityOrganizationID: uuid.New(),
	})
	require.NoError(t, err)
	require.Equal(t, "Acme Recruiting", created.Name, "name is trimmed")
	require.Equal(t, company.StatusActive, created.Status)
	require.False(t, created.CreatedAt.IsZero())

	require.Len(t, recorder.events, 1)
	require.Equal(t, company.EventCreated, recorder.events[0].Topic)
}

func TestCompanyService_Update_EmptyName(t *testing.T) {
	svc := NewCompanyService(&mockCompanyRepo{}, &stubMemberships{}, &stubRecorder{})

	empty := "   "
	_, err := svc.Update(itf.NewTxContext(context.Background()), "user_1", uuid.New(), &company.UpdateDTO{Name: &empty})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 400, svcErr.Status)
	require.Contains(t, svcErr.Fields, "name")
}

func TestCompanyService_Update_NotFound(t *testing.T) {
	repo := &mockCompanyRepo{updateErr: company.ErrNotFound}
	svc := NewCompanyService(repo, &stubMemberships{}, &stubRecorder{})

	name := "New Name"
	_, err := svc.Update(itf.NewTxContext(context.Background()), "user_1", uuid.New(), &company.UpdateDTO{Name: &name})

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	require.Equal(t, 404, svcErr.Status)
}

func TestCompanyService_Update_RecordsChangedFields(t *testing.T) {
	repo := &mockCompanyRepo{}
	recorder := &stubRecorder{}
	svc := NewCompanyService(repo, &stubMemberships{}, recorder)

	name := "Rebrand Inc"
	website := "https://rebrand.example"
	_, err := svc.Update(itf.NewTxContext(context.Background()), "user_1", uuid.New(), &company.UpdateDTO{
		Name:    &name,
		Website: &website,
	})
	require.NoError(t, err)

	require.Len(t, recorder.events, 1)
	payload, ok := recorder.events[0].Payload.(company.UpdatedEvent)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"name", "website"}, payload.Fields)
}
