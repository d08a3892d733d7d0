package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/candidate"
	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	"github.com/talentgrid-io/talentgrid/pkg/application"
	"github.com/talentgrid-io/talentgrid/pkg/httpapi"
)

type CandidatesController struct {
	candidates *services.CandidateService
	basePath   string
}

func NewCandidatesController(app application.Application) application.Controller {
	return &CandidatesController{
		candidates: app.Service(services.CandidateService{}).(*services.CandidateService),
		basePath:   APIPrefix + "/candidates",
	}
}

func (c *CandidatesController) Key() string {
	return c.basePath
}

func (c *CandidatesController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPatch)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *CandidatesController) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	params := &candidate.FindParams{
		Search:   r.URL.Query().Get("search"),
		Status:   candidate.Status(r.URL.Query().Get("status")),
		Location: r.URL.Query().Get("location"),
		SortBy:   candidate.SortBy(r.URL.Query().Get("sort_by")),
		Asc:      sortAsc(r, false),
	}
	page, limit := pagination(r)

	items, meta, err := c.candidates.GetMany(r.Context(), callerID, params, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, listResponse[candidate.Candidate]{Data: items, Pagination: meta})
}

func (c *CandidatesController) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := c.candidates.GetByID(r.Context(), callerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[candidate.Candidate]{Data: found})
}

func (c *CandidatesController) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var dto candidate.CreateDTO
	if !decodeJSON(w, r, &dto) {
		return
	}

	created, err := c.candidates.Create(r.Context(), callerID, &dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dataResponse[candidate.Candidate]{Data: created})
}

func (c *CandidatesController) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var patch candidate.UpdateDTO
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := c.candidates.Update(r.Context(), callerID, id, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[candidate.Candidate]{Data: updated})
}

func (c *CandidatesController) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if _, err := c.candidates.Delete(r.Context(), callerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
