package jobrequirement

import (
	"context"
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = gerrors.New("job requirement not found")

type RequirementType string

const (
	TypeSkill         RequirementType = "skill"
	TypeExperience    RequirementType = "experience"
	TypeEducation     RequirementType = "education"
	TypeCertification RequirementType = "certification"
	TypeOther         RequirementType = "other"
)

// JobRequirement is an ordered child row of a job. Unlike the aggregates,
// delete here removes the row.
type JobRequirement struct {
	ID              uuid.UUID       `json:"id"`
	JobID           uuid.UUID       `json:"job_id"`
	RequirementType RequirementType `json:"requirement_type"`
	Description     string          `json:"description"`
	IsMandatory     bool            `json:"is_mandatory"`
	SortOrder       int             `json:"sort_order"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type CreateDTO struct {
	JobID           uuid.UUID       `json:"job_id"`
	RequirementType RequirementType `json:"requirement_type"`
	Description     string          `json:"description"`
	IsMandatory     bool            `json:"is_mandatory"`
	SortOrder       *int            `json:"sort_order"`
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Description = strings.TrimSpace(d.Description)

	out := make(map[string]string)
	if d.JobID == uuid.Nil {
		out["job_id"] = "job_id is required"
	}
	if d.RequirementType == "" {
		out["requirement_type"] = "requirement_type is required"
	}
	if d.Description == "" {
		out["description"] = "description is required"
	}
	if d.SortOrder == nil {
		out["sort_order"] = "sort_order is required"
	}
	return out, len(out) == 0
}

type UpdateDTO struct {
	RequirementType *RequirementType `json:"requirement_type"`
	Description     *string          `json:"description"`
	IsMandatory     *bool            `json:"is_mandatory"`
	SortOrder       *int             `json:"sort_order"`
}

func (d *UpdateDTO) Ok() (map[string]string, bool) {
	out := make(map[string]string)
	if d.RequirementType != nil && strings.TrimSpace(string(*d.RequirementType)) == "" {
		out["requirement_type"] = "requirement_type must not be empty"
	}
	if d.Description != nil && strings.TrimSpace(*d.Description) == "" {
		out["description"] = "description must not be empty"
	}
	return out, len(out) == 0
}

type Repository interface {
	GetByJobID(ctx context.Context, jobID uuid.UUID) ([]JobRequirement, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobRequirement, error)
	Create(ctx context.Context, dto *CreateDTO) (JobRequirement, error)
	Update(ctx context.Context, id uuid.UUID, patch *UpdateDTO) (JobRequirement, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// ReplaceForJob swaps the full ordered set for one job in a single
	// database-side transaction and returns the inserted rows.
	ReplaceForJob(ctx context.Context, jobID uuid.UUID, items []CreateDTO) ([]JobRequirement, error)
}
