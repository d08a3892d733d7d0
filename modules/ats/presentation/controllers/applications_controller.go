package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/application"
	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	pkgapp "github.com/talentgrid-io/talentgrid/pkg/application"
	"github.com/talentgrid-io/talentgrid/pkg/httpapi"
)

type ApplicationsController struct {
	applications *services.ApplicationService
	basePath     string
}

func NewApplicationsController(app pkgapp.Application) pkgapp.Controller {
	return &ApplicationsController{
		applications: app.Service(services.ApplicationService{}).(*services.ApplicationService),
		basePath:     APIPrefix + "/applications",
	}
}

func (c *ApplicationsController) Key() string {
	return c.basePath
}

func (c *ApplicationsController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPatch)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *ApplicationsController) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	candidateID, ok := queryUUID(w, r, "candidate_id")
	if !ok {
		return
	}
	jobID, ok := queryUUID(w, r, "job_id")
	if !ok {
		return
	}
	params := &application.FindParams{
		Search:      r.URL.Query().Get("search"),
		Status:      application.Status(r.URL.Query().Get("status")),
		Stage:       r.URL.Query().Get("stage"),
		CandidateID: candidateID,
		JobID:       jobID,
		Asc:         sortAsc(r, false),
	}
	page, limit := pagination(r)

	items, meta, err := c.applications.GetMany(r.Context(), callerID, params, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, listResponse[application.Application]{Data: items, Pagination: meta})
}

func (c *ApplicationsController) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := c.applications.GetByID(r.Context(), callerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[application.Application]{Data: found})
}

func (c *ApplicationsController) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var dto application.CreateDTO
	if !decodeJSON(w, r, &dto) {
		return
	}

	created, err := c.applications.Create(r.Context(), callerID, &dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dataResponse[application.Application]{Data: created})
}

func (c *ApplicationsController) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var patch application.UpdateDTO
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := c.applications.Update(r.Context(), callerID, id, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[application.Application]{Data: updated})
}

func (c *ApplicationsController) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if _, err := c.applications.Delete(r.Context(), callerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
