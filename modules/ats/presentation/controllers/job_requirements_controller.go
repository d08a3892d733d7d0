package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/jobrequirement"
	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	"github.com/talentgrid-io/talentgrid/pkg/application"
	"github.com/talentgrid-io/talentgrid/pkg/httpapi"
)

type JobRequirementsController struct {
	requirements *services.JobRequirementService
	basePath     string
}

func NewJobRequirementsController(app application.Application) application.Controller {
	return &JobRequirementsController{
		requirements: app.Service(services.JobRequirementService{}).(*services.JobRequirementService),
		basePath:     APIPrefix + "/job-requirements",
	}
}

func (c *JobRequirementsController) Key() string {
	return c.basePath
}

func (c *JobRequirementsController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/job/{jobId}/bulk-replace", c.BulkReplace).Methods(http.MethodPut)
	api.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPatch)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *JobRequirementsController) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}

	jobID, ok := queryUUID(w, r, "job_id")
	if !ok {
		return
	}
	items, err := c.requirements.GetByJobID(r.Context(), jobID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string][]jobrequirement.JobRequirement{"data": items})
}

func (c *JobRequirementsController) GetByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := c.requirements.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[jobrequirement.JobRequirement]{Data: found})
}

func (c *JobRequirementsController) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}

	var dto jobrequirement.CreateDTO
	if !decodeJSON(w, r, &dto) {
		return
	}

	created, err := c.requirements.Create(r.Context(), &dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dataResponse[jobrequirement.JobRequirement]{Data: created})
}

func (c *JobRequirementsController) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var patch jobrequirement.UpdateDTO
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := c.requirements.Update(r.Context(), id, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[jobrequirement.JobRequirement]{Data: updated})
}

func (c *JobRequirementsController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.requirements.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *JobRequirementsController) BulkReplace(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "jobId")
	if !ok {
		return
	}

	var body struct {
		Requirements []jobrequirement.CreateDTO `json:"requirements"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	items, err := c.requirements.BulkReplace(r.Context(), jobID, body.Requirements)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string][]jobrequirement.JobRequirement{"data": items})
}
