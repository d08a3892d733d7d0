package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/talentgrid-io/talentgrid/modules/ats/domain/entities/prescreenquestion"
	"github.com/talentgrid-io/talentgrid/modules/ats/services"
	"github.com/talentgrid-io/talentgrid/pkg/application"
	"github.com/talentgrid-io/talentgrid/pkg/httpapi"
)

type PreScreenQuestionsController struct {
	questions *services.PreScreenQuestionService
	basePath  string
}

func NewPreScreenQuestionsController(app application.Application) application.Controller {
	return &PreScreenQuestionsController{
		questions: app.Service(services.PreScreenQuestionService{}).(*services.PreScreenQuestionService),
		basePath:  APIPrefix + "/pre-screen-questions",
	}
}

func (c *PreScreenQuestionsController) Key() string {
	return c.basePath
}

func (c *PreScreenQuestionsController) Register(r *mux.Router) {
	api := r.PathPrefix(c.basePath).Subrouter()
	api.HandleFunc("", c.List).Methods(http.MethodGet)
	api.HandleFunc("", c.Create).Methods(http.MethodPost)
	api.HandleFunc("/job/{jobId}/bulk-replace", c.BulkReplace).Methods(http.MethodPut)
	api.HandleFunc("/{id}", c.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/{id}", c.Update).Methods(http.MethodPatch)
	api.HandleFunc("/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *PreScreenQuestionsController) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}

	jobID, ok := queryUUID(w, r, "job_id")
	if !ok {
		return
	}
	items, err := c.questions.GetByJobID(r.Context(), jobID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string][]prescreenquestion.PreScreenQuestion{"data": items})
}

func (c *PreScreenQuestionsController) GetByID(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	found, err := c.questions.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[prescreenquestion.PreScreenQuestion]{Data: found})
}

func (c *PreScreenQuestionsController) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}

	var dto prescreenquestion.CreateDTO
	if !decodeJSON(w, r, &dto) {
		return
	}

	created, err := c.questions.Create(r.Context(), &dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, dataResponse[prescreenquestion.PreScreenQuestion]{Data: created})
}

func (c *PreScreenQuestionsController) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var patch prescreenquestion.UpdateDTO
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := c.questions.Update(r.Context(), id, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, dataResponse[prescreenquestion.PreScreenQuestion]{Data: updated})
}

func (c *PreScreenQuestionsController) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := c.questions.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *PreScreenQuestionsController) BulkReplace(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireCaller(w, r); !ok {
		return
	}
	jobID, ok := pathUUID(w, r, "jobId")
	if !ok {
		return
	}

	var body struct {
		Questions []prescreenquestion.CreateDTO `json:"questions"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	items, err := c.questions.BulkReplace(r.Context(), jobID, body.Questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string][]prescreenquestion.PreScreenQuestion{"data": items})
}
