package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/job"
	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	"github.com/talentgrid-io/talentgrid/pkg/application"
	"github.com/talentgrid-io/talentgrid/pkg/httpapi"
)

type JobsController struct {
	jobs     *services.JobService
	basePath string
}

func NewJobsController(app application.Application) application.Controller {
	return &JobsController{
		jobs:     app.Service(services.JobService{}).(*services.JobService),
		basePath: APIPrefix + "/jobs",
	}
}

func (c *JobsController) Key() string {
	return c.basePath
}

func (c *JobsController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPatch)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *JobsController) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	companyID, ok := queryUUID(w, r, "company_id")
	if !ok {
		return
	}
	params := &job.FindParams{
		Search:         r.URL.Query().Get("search"),
		Status:         job.Status(r.URL.Query().Get("status")),
		EmploymentType: job.EmploymentType(r.URL.Query().Get("employment_type")),
		Location:       r.URL.Query().Get("location"),
		CompanyID:      companyID,
		SortBy:         job.SortBy(r.URL.Query().Get("sort_by")),
		Asc:            sortAsc(r, false),
	}
	page, limit := pagination(r)

	items, meta, err := c.jobs.GetMany(r.Context(), callerID, params, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, listResponse[job.Job]{Data: items, Pagination: meta})
}

func (c *JobsController) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := c.jobs.GetByID(r.Context(), callerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[job.Job]{Data: found})
}

func (c *JobsController) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var dto job.CreateDTO
	if !decodeJSON(w, r, &dto) {
		return
	}

	created, err := c.jobs.Create(r.Context(), callerID, &dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dataResponse[job.Job]{Data: created})
}

func (c *JobsController) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var patch job.UpdateDTO
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := c.jobs.Update(r.Context(), callerID, id, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[job.Job]{Data: updated})
}

func (c *JobsController) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if _, err := c.jobs.Delete(r.Context(), callerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
