package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	"github.com/talentgrid-io/talentgrid/pkg/composables"
	"github.com/talentgrid-io/talentgrid/pkg/httpapi"
	"github.com/talentgrid-io/talentgrid/pkg/shared"
)

const APIPrefix = "/api/v2"

// listResponse is the envelope for every collection endpoint.
type listResponse[T any] struct {
	Data       []T                   `json:"data"`
	Pagination shared.PaginationMeta `json:"pagination"`
}

// dataResponse is the envelope for every single-resource endpoint.
type dataResponse[T any] struct {
	Data T `json:"data"`
}

// requireCaller extracts the caller identity placed in context by the
// identity middleware. A missing header is the sole authentication failure
// the API recognizes.
func requireCaller(w http.ResponseWriter, r *http.Request) (string, bool) {
	callerID, err := composables.UseCaller(r.Context())
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "ATS_MISSING_CALLER", "caller identity header is required", nil)
		return "", false
	}
	return callerID, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "ATS_INVALID_BODY", "request body is not valid JSON", nil)
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "ATS_INVALID_ID", name+" is not a valid uuid", nil)
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional uuid query parameter. Absence yields
// uuid.Nil; a malformed value is rejected so it cannot masquerade as an
// absent filter.
func queryUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return uuid.Nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "ATS_INVALID_ID", name+" is not a valid uuid", nil)
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page/limit query parameters. Out-of-range values are
// clamped downstream, never rejected.
func pagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	return page, limit
}

func sortAsc(r *http.Request, defaultAsc bool) bool {
	order := r.URL.Query().Get("sort_order")
	switch {
	case strings.EqualFold(order, "asc"):
		return true
	case strings.EqualFold(order, "desc"):
		return false
	}
	return defaultAsc
}

func writeServiceError(w http.ResponseWriter, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		_ = httpapi.WriteError(w, svcErr.Status, svcErr.Code, svcErr.Message, svcErr.Fields)
		return
	}
	_ = httpapi.WriteError(w, http.StatusInternalServerError, "ATS_INTERNAL", "internal error", nil)
}
