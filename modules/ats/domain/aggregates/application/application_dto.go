package application

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/pkg/constants"
)

type CreateDTO struct {
	CandidateID uuid.UUID `json:"candidate_id" validate:"required"`
	JobID       uuid.UUID `json:"job_id" validate:"required"`
	Stage       string    `json:"stage"`
	Notes       string    `json:"notes"`
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Stage = strings.TrimSpace(d.Stage)

	out := make(map[string]string)
	if errs := constants.Validate.Struct(d); errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			switch err.Field() {
			case "CandidateID":
				out["candidate_id"] = "candidate_id is required"
			case "JobID":
				out["job_id"] = "job_id is required"
			}
		}
	}
	return out, len(out) == 0
}

func (d *CreateDTO) ToEntity() Application {
	now := time.Now().UTC()
	return Application{
		CandidateID: d.CandidateID,
		JobID:       d.JobID,
		Status:      StatusApplied,
		Stage:       d.Stage,
		Notes:       d.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type UpdateDTO struct {
	Status *Status `json:"status"`
	Stage  *string `json:"stage"`
	Notes  *string `json:"notes"`
}

func (d *UpdateDTO) Ok() (map[string]string, bool) {
	out := make(map[string]string)
	if d.Status != nil && !ValidStatus(*d.Status) {
		out["status"] = "unknown status"
	}
	return out, len(out) == 0
}

func (d *UpdateDTO) Fields() []string {
	var fields []string
	if d.Status != nil {
		fields = append(fields, "status")
	}
	if d.Stage != nil {
		fields = append(fields, "stage")
	}
	if d.Notes != nil {
		fields = append(fields, "notes")
	}
	return fields
}
