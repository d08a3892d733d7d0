package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/aggregates/company"
	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	"github.com/talentgrid-io/talentgrid/pkg/application"
	"github.com/talentgrid-io/talentgrid/pkg/httpapi"
)

type CompaniesController struct {
	companies *services.CompanyService
	basePath  string
}

func NewCompaniesController(app application.Application) application.Controller {
	return &CompaniesController{
		companies: app.Service(services.CompanyService{}).(*services.CompanyService),
		basePath:  APIPrefix + "/companies",
	}
}

func (c *CompaniesController) Key() string {
	return c.basePath
}

func (c *CompaniesController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPatch)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *CompaniesController) List(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	params := &company.FindParams{
		Search: r.URL.Query().Get("search"),
		Status: company.Status(r.URL.Query().Get("status")),
		SortBy: company.SortBy(r.URL.Query().Get("sort_by")),
		Asc:    sortAsc(r, true),
	}
	page, limit := pagination(r)

	items, meta, err := c.companies.GetMany(r.Context(), callerID, params, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, listResponse[company.Company]{Data: items, Pagination: meta})
}

func (c *CompaniesController) GetByID(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := c.companies.GetByID(r.Context(), callerID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[company.Company]{Data: found})
}

func (c *CompaniesController) Create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}

	var dto company.CreateDTO
	if !decodeJSON(w, r, &dto) {
		return
	}

	created, err := c.companies.Create(r.Context(), callerID, &dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dataResponse[company.Company]{Data: created})
}

func (c *CompaniesController) Update(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var patch company.UpdateDTO
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := c.companies.Update(r.Context(), callerID, id, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[company.Company]{Data: updated})
}

func (c *CompaniesController) Delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if _, err := c.companies.Delete(r.Context(), callerID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
