package candidate

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/talentgrid-io/talentgrid/pkg/constants"
)

type CreateDTO struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
}

func (d *CreateDTO) Normalize() {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	d.Location = strings.TrimSpace(d.Location)
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	out := make(map[string]string)
	if errs := constants.Validate.Struct(d); errs != nil {
		for _, err := range errs.(validator.ValidationErrors) {
			switch err.Field() {
			case "FirstName":
				out["first_name"] = "first_name is required"
			case "LastName":
				out["last_name"] = "last_name is required"
			case "Email":
				out["email"] = "email is required"
			}
		}
	}
	if _, seen := out["email"]; !seen && !ValidEmail(d.Email) {
		out["email"] = "email is malformed"
	}
	return out, len(out) == 0
}

func (d *CreateDTO) ToEntity() Candidate {
	now := time.Now().UTC()
	return Candidate{
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Phone:     d.Phone,
		Location:  d.Location,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type UpdateDTO struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Location  *string `json:"location"`
	Status    *Status `json:"status"`
}

func (d *UpdateDTO) Ok() (map[string]string, bool) {
	out := make(map[string]string)
	if d.FirstName != nil && strings.TrimSpace(*d.FirstName) == "" {
		out["first_name"] = "first_name must not be empty"
	}
	if d.LastName != nil && strings.TrimSpace(*d.LastName) == "" {
		out["last_name"] = "last_name must not be empty"
	}
	if d.Email != nil && !ValidEmail(strings.TrimSpace(*d.Email)) {
		out["email"] = "email is malformed"
	}
	if d.Status != nil && *d.Status != StatusActive && *d.Status != StatusArchived {
		out["status"] = "status must be active or archived"
	}
	return out, len(out) == 0
}

func (d *UpdateDTO) Fields() []string {
	var fields []string
	if d.FirstName != nil {
		fields = append(fields, "first_name")
	}
	if d.LastName != nil {
		fields = append(fields, "last_name")
	}
	if d.Email != nil {
		fields = append(fields, "email")
	}
	if d.Phone != nil {
		fields = append(fields, "phone")
	}
	if d.Location != nil {
		fields = append(fields, "location")
	}
	if d.Status != nil {
		fields = append(fields, "status")
	}
	return fields
}
