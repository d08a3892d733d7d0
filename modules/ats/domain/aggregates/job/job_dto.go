package job

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/pkg/constants"
)

type CreateDTO struct {
	CompanyID        uuid.UUID      `json:"company_id" validate:"required"`
	Title            string         `json:"title" validate:"required"`
	Description      string         `json:"description"`
	Requirements     string         `json:"requirements"`
	Responsibilities string         `json:"responsibilities"`
	Location         string         `json:"location"`
	EmploymentType   EmploymentType `json:"employment_type"`
	SalaryMin        *int64         `json:"salary_min"`
	SalaryMax        *int64         `json:"salary_max"`
	SalaryCurrency   string         `json:"salary_currency"`
}

func (d *CreateDTO) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Location = strings.TrimSpace(d.Location)
	d.SalaryCurrency = strings.ToUpper(strings.TrimSpace(d.SalaryCurrency))
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	out := make(map[string]string)
	if errs := constants.Validate.Struct(d); errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			switch err.Field() {
			case "CompanyID":
				out["company_id"] = "company_id is required"
			case "Title":
				out["title"] = "title is required"
			}
		}
	}
	if d.EmploymentType != "" && !ValidEmploymentType(d.EmploymentType) {
		out["employment_type"] = "unknown employment_type"
	}
	if d.SalaryMin != nil && d.SalaryMax != nil && *d.SalaryMin > *d.SalaryMax {
		out["salary_min"] = "salary_min must not exceed salary_max"
	}
	return out, len(out) == 0
}

func (d *CreateDTO) ToEntity() Job {
	now := time.Now().UTC()
	return Job{
		CompanyID:        d.CompanyID,
		Title:            d.Title,
		Description:      d.Description,
		Requirements:     d.Requirements,
		Responsibilities: d.Responsibilities,
		Location:         d.Location,
		EmploymentType:   d.EmploymentType,
		SalaryMin:        d.SalaryMin,
		SalaryMax:        d.SalaryMax,
		SalaryCurrency:   d.SalaryCurrency,
		Status:           StatusOpen,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

type UpdateDTO struct {
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	Requirements     *string         `json:"requirements"`
	Responsibilities *string         `json:"responsibilities"`
	Location         *string         `json:"location"`
	EmploymentType   *EmploymentType `json:"employment_type"`
	SalaryMin        *int64          `json:"salary_min"`
	SalaryMax        *int64          `json:"salary_max"`
	SalaryCurrency   *string         `json:"salary_currency"`
	Status           *Status         `json:"status"`
	ClosedReason     *string         `json:"closed_reason"`
}

func (d *UpdateDTO) Ok() (map[string]string, bool) {
	out := make(map[string]string)
	if d.Title != nil && strings.TrimSpace(*d.Title) == "" {
		out["title"] = "title must not be empty"
	}
	if d.EmploymentType != nil && !ValidEmploymentType(*d.EmploymentType) {
		out["employment_type"] = "unknown employment_type"
	}
	if d.Status != nil && !ValidStatus(*d.Status) {
		out["status"] = "unknown status"
	}
	return out, len(out) == 0
}

func (d *UpdateDTO) Fields() []string {
	var fields []string
	if d.Title != nil {
		fields = append(fields, "title")
	}
	if d.Description != nil {
		fields = append(fields, "description")
	}
	if d.Requirements != nil {
		fields = append(fields, "requirements")
	}
	if d.Responsibilities != nil {
		fields = append(fields, "responsibilities")
	}
	if d.Location != nil {
		fields = append(fields, "location")
	}
	if d.EmploymentType != nil {
		fields = append(fields, "employment_type")
	}
	if d.SalaryMin != nil {
		fields = append(fields, "salary_min")
	}
	if d.SalaryMax != nil {
		fields = append(fields, "salary_max")
	}
	if d.SalaryCurrency != nil {
		fields = append(fields, "salary_currency")
	}
	if d.Status != nil {
		fields = append(fields, "status")
	}
	if d.ClosedReason != nil {
		fields = append(fields, "closed_reason")
	}
	return fields
}
