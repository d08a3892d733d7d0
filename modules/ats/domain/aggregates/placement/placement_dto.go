package placement

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/pkg/constants"
)

type CreateDTO struct {
	CandidateID   uuid.UUID  `json:"candidate_id" validate:"required"`
	JobID         uuid.UUID  `json:"job_id" validate:"required"`
	ApplicationID uuid.UUID  `json:"application_id" validate:"required"`
	StartDate     *time.Time `json:"start_date"`
	Salary        *int64     `json:"salary"`
	FeePercentage *float64   `json:"fee_percentage"`
	Notes         string     `json:"notes"`
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	out := make(map[string]string)
	if errs := constants.Validate.Struct(d); errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			switch err.Field() {
			case "CandidateID":
				out["candidate_id"] = "candidate_id is required"
			case "JobID":
				out["job_id"] = "job_id is required"
			case "ApplicationID":
				out["application_id"] = "application_id is required"
			}
		}
	}
	if d.FeePercentage != nil && (*d.FeePercentage < 0 || *d.FeePercentage > 100) {
		out["fee_percentage"] = "fee_percentage must be between 0 and 100"
	}
	return out, len(out) == 0
}

func (d *CreateDTO) ToEntity() Placement {
	now := time.Now().UTC()
	return Placement{
		CandidateID:   d.CandidateID,
		JobID:         d.JobID,
		ApplicationID: d.ApplicationID,
		Status:        StatusPending,
		StartDate:     d.StartDate,
		Salary:        d.Salary,
		FeePercentage: d.FeePercentage,
		Notes:         d.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

type UpdateDTO struct {
	Status        *Status    `json:"status"`
	StartDate     *time.Time `json:"start_date"`
	Salary        *int64     `json:"salary"`
	FeePercentage *float64   `json:"fee_percentage"`
	Notes         *string    `json:"notes"`
}

func (d *UpdateDTO) Ok() (map[string]string, bool) {
	out := make(map[string]string)
	if d.Status != nil && !ValidStatus(*d.Status) {
		out["status"] = "unknown status"
	}
	if d.FeePercentage != nil && (*d.FeePercentage < 0 || *d.FeePercentage > 100) {
		out["fee_percentage"] = "fee_percentage must be between 0 and 100"
	}
	return out, len(out) == 0
}

func (d *UpdateDTO) Fields() []string {
	var fields []string
	if d.Status != nil {
		fields = append(fields, "status")
	}
	if d.StartDate != nil {
		fields = append(fields, "start_date")
	}
	if d.Salary != nil {
		fields = append(fields, "salary")
	}
	if d.FeePercentage != nil {
		fields = append(fields, "fee_percentage")
	}
	if d.Notes != nil {
		fields = append(fields, "notes")
	}
	return fields
}
