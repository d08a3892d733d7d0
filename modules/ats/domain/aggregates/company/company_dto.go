package company

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/talentgrid-io/talentgrid/pkg/constants"
)

type CreateDTO struct {
	Name                   string    `json:"name" validate:"required"`
	Description            string    `json:"description"`
	Website                string    `json:"website"`
	IdentityOrganizationID uuid.UUID `json:"identity_organization_id" validate:"required"`
}

func (d *CreateDTO) Normalize() {
	d.Name = strings.TrimSpace(d.Name)
	d.Description = strings.TrimSpace(d.Description)
	d.Website = strings.TrimSpace(d.Website)
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	out := make(map[string]string)
	for _, err := range errs.(validator.ValidationErrors) {
		switch err.Field() {
		case "Name":
			out["name"] = "name is required"
		case "IdentityOrganizationID":
			out["identity_organization_id"] = "identity_organization_id is required"
		}
	}
	return out, false
}

func (d *CreateDTO) ToEntity() Company {
	now := time.Now().UTC()
	return Company{
		Name:                   d.Name,
		Description:            d.Description,
		Website:                d.Website,
		Status:                 StatusActive,
		IdentityOrganizationID: d.IdentityOrganizationID,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// UpdateDTO carries a partial update; nil means "leave unchanged".
type UpdateDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Status      *Status `json:"status"`
}

func (d *UpdateDTO) Ok() (map[string]string, bool) {
	out := make(map[string]string)
	if d.Name != nil && strings.TrimSpace(*d.Name) == "" {
		out["name"] = "name must not be empty"
	}
	if d.Status != nil && *d.Status != StatusActive && *d.Status != StatusInactive {
		out["status"] = "status must be active or inactive"
	}
	return out, len(out) == 0
}

// Fields lists the field names present in the patch, for the updated event.
func (d *UpdateDTO) Fields() []string {
	var fields []string
	if d.Name != nil {
		fields = append(fields, "name")
	}
	if d.Description != nil {
		fields = append(fields, "description")
	}
	if d.Website != nil {
		fields = append(fields, "website")
	}
	if d.Status != nil {
		fields = append(fields, "status")
	}
	return fields
}
