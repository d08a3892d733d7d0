package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/candidate"
	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/jobrequirement"
	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	"github.com/talentgrid-io/talentgrid/pkg/application"
	"github.com/talentgrid-io/talentgrid/pkg/eventbus"
	"github.com/talentgrid-io/talentgrid/pkg/itf"
	"github.com/talentgrid-io/talentgrid/pkg/logging"
	"github.com/talentgrid-io/talentgrid/pkg/middleware"
)

type fakeRequirementRepo struct {
	jobrequirement.Repository

	byJob map[uuid.UUID][]jobrequirement.JobRequirement
}

func (f *fakeRequirementRepo) GetByJobID(_ context.Context, jobID uuid.UUID) ([]jobrequirement.JobRequirement, error) {
	return f.byJob[jobID], nil
}

func (f *fakeRequirementRepo) Create(_ context.Context, dto *jobrequirement.CreateDTO) (jobrequirement.JobRequirement, error) {
	return jobrequirement.JobRequirement{
		ID:              uuid.New(),
		JobID:           dto.JobID,
		RequirementType: dto.RequirementType,
		Description:     dto.Description,
		IsMandatory:     dto.IsMandatory,
		SortOrder:       *dto.SortOrder,
	}, nil
}

type fakeCandidateRepo struct {
	candidate.Repository
}

func (f *fakeCandidateRepo) Create(_ context.Context, entity candidate.Candidate) (candidate.Candidate, error) {
	entity.ID = uuid.New()
	return entity, nil
}

type noopMemberships struct{}

func (noopMemberships) OrganizationIDs(context.Context, string) ([]uuid.UUID, error) {
	return nil, nil
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, string, string, any) error { return nil }

// txBridge seeds every request context with a no-op transaction so service
// transaction wrappers run without a database.
func txBridge(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(itf.NewTxContext(r.Context())))
	})
}

func newTestRouter(t *testing.T, register func(app application.Application) application.Controller) *mux.Router {
	t.Helper()

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel)),
	})
	app.RegisterServices(
		services.NewJobRequirementService(&fakeRequirementRepo{byJob: map[uuid.UUID][]jobrequirement.JobRequirement{}}),
		services.NewCandidateService(&fakeCandidateRepo{}, noopMemberships{}, noopRecorder{}),
	)

	r := mux.NewRouter()
	r.Use(txBridge, middleware.CallerIdentity())
	register(app).Register(r)
	return r
}

func TestJobRequirements_Create_WithCallerHeader(t *testing.T) {
	router := newTestRouter(t, NewJobRequirementsController)

	body, err := json.Marshal(map[string]any{
		"job_id":           uuid.New(),
		"requirement_type": "skill",
		"description":      "Production Go experience",
		"sort_order":       0,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v2/job-requirements", bytes.NewReader(body))
	req.Header.Set("X-Clerk-User-Id", "user_2abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data jobrequirement.JobRequirement `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEqual(t, uuid.Nil, created.Data.ID)
	require.Equal(t, "Production Go experience", created.Data.Description)
}

func TestJobRequirements_Create_MissingCallerHeader(t *testing.T) {
	router := newTestRouter(t, NewJobRequirementsController)

	req := httptest.NewRequest(http.MethodPost, "/api/v2/job-requirements", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "ATS_MISSING_CALLER", envelope.Error.Code)
	require.NotEmpty(t, envelope.Error.Message)
}

func TestJobRequirements_List_RequiresJobID(t *testing.T) {
	router := newTestRouter(t, NewJobRequirementsController)

	req := httptest.NewRequest(http.MethodGet, "/api/v2/job-requirements", nil)
	req.Header.Set("X-Clerk-User-Id", "user_2abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJobRequirements_List_MalformedJobID(t *testing.T) {
	router := newTestRouter(t, NewJobRequirementsController)

	req := httptest.NewRequest(http.MethodGet, "/api/v2/job-requirements?job_id=not-a-uuid", nil)
	req.Header.Set("X-Clerk-User-Id", "user_2abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, "ATS_INVALID_ID", envelope.Error.Code)
	require.Contains(t, envelope.Error.Message, "not a valid uuid")
}

func TestJobRequirements_List_EmptySetIsNotAnError(t *testing.T) {
	router := newTestRouter(t, NewJobRequirementsController)

	req := httptest.NewRequest(http.MethodGet, "/api/v2/job-requirements?job_id="+uuid.NewString(), nil)
	req.Header.Set("X-Clerk-User-Id", "user_2abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []jobrequirement.JobRequirement `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Empty(t, body.Data)
}

func TestCandidates_Create_InvalidEmail(t *testing.T) {
	router := newTestRouter(t, NewCandidatesController)

	body := []byte(`{"first_name":"Ada","last_name":"Lovelace","email":"not-an-email"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v2/candidates", bytes.NewReader(body))
	req.Header.Set("X-Clerk-User-Id", "user_2abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope struct {
		Error struct {
			Meta map[string]string `json:"meta"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Contains(t, envelope.Error.Meta, "email")
}

func TestCandidates_Create_Valid(t *testing.T) {
	router := newTestRouter(t, NewCandidatesController)

	body := []byte(`{"first_name":"Ada","last_name":"Lovelace","email":"ada@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v2/candidates", bytes.NewReader(body))
	req.Header.Set("X-Clerk-User-Id", "user_2abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Data candidate.Candidate `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, candidate.StatusActive, created.Data.Status)
}
