package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/placement"
	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	"github.com/talentgrid-io/talentgrid/pkg/application"
	"github.com/talentgrid-io/talentgrid/pkg/httpapi"
)

type PlacementsController struct {
	placements *services.PlacementService
	basePath   string
}

func NewPlacementsController(app application.Application) application.Controller {
	return &PlacementsController{
		placements: app.Service(services.PlacementService{}).(*services.PlacementService),
		basePath:   APIPrefix + "/placements",
	}
}

func (c *PlacementsController) Key() string {
	return c.basePath
}

func (c *PlacementsController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPatch)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *PlacementsController) List(w http.ResponseWriter, r *http.Request) {
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
	params := &placement.FindParams{
		Search:      r.URL.Query().Get("search"),
		Status:      placement.Status(r.URL.Query().Get("status")),
		CandidateID: candidateID,
		JobID:       jobID,
		Asc:         sortAsc(r, false),
	}
	page, limit := pagination(r)

	items, meta, err := c.placements.GetMany(r.Context(), callerID, params, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, listResponse[placement.Placement]{Data: items, Pagination: meta})
}

func (c *PlacementsController) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := c.placements.GetByID(r.Context(), callerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[placement.Placement]{Data: found})
}

func (c *PlacementsController) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var dto placement.CreateDTO
	if !decodeJSON(w, r, &dto) {
		return
	}

	created, err := c.placements.Create(r.Context(), callerID, &dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dataResponse[placement.Placement]{Data: created})
}

func (c *PlacementsController) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var patch placement.UpdateDTO
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := c.placements.Update(r.Context(), callerID, id, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[placement.Placement]{Data: updated})
}

func (c *PlacementsController) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if _, err := c.placements.Delete(r.Context(), callerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
