package prescreenquestion

import (
	"context"
	"strings"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = gerrors.New("pre-screen question not found")

type QuestionType string

const (
	TypeText           QuestionType = "text"
	TypeBoolean        QuestionType = "boolean"
	TypeNumeric        QuestionType = "numeric"
	TypeMultipleChoice QuestionType = "multiple_choice"
)

// PreScreenQuestion is an ordered child row of a job, answered by candidates
// before applying. QuestionText mirrors Question under a second key some API
// consumers expect.
type PreScreenQuestion struct {
	ID           uuid.UUID    `json:"id"`
	JobID        uuid.UUID    `json:"job_id"`
	Question     string       `json:"question"`
	QuestionText string       `json:"question_text"`
	QuestionType QuestionType `json:"question_type"`
	Options      []string     `json:"options,omitempty"`
	IsRequired   bool         `json:"is_required"`
	SortOrder    int          `json:"sort_order"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

type CreateDTO struct {
	JobID        uuid.UUID    `json:"job_id"`
	Question     string       `json:"question"`
	QuestionType QuestionType `json:"question_type"`
	Options      []string     `json:"options"`
	IsRequired   bool         `json:"is_required"`
	SortOrder    *int         `json:"sort_order"`
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Question = strings.TrimSpace(d.Question)

	out := make(map[string]string)
	if d.JobID == uuid.Nil {
		out["job_id"] = "job_id is required"
	}
	if d.Question == "" {
		out["question"] = "question is required"
	}
	if d.QuestionType == "" {
		out["question_type"] = "question_type is required"
	}
	if d.SortOrder == nil {
		out["sort_order"] = "sort_order is required"
	}
	if d.QuestionType == TypeMultipleChoice && len(d.Options) == 0 {
		out["options"] = "options must not be empty for multiple_choice questions"
	}
	return out, len(out) == 0
}

type UpdateDTO struct {
	Question     *string       `json:"question"`
	QuestionType *QuestionType `json:"question_type"`
	Options      []string      `json:"options"`
	IsRequired   *bool         `json:"is_required"`
	SortOrder    *int          `json:"sort_order"`
}

func (d *UpdateDTO) Ok() (map[string]string, bool) {
	out := make(map[string]string)
	if d.Question != nil && strings.TrimSpace(*d.Question) == "" {
		out["question"] = "question must not be empty"
	}
	if d.QuestionType != nil && *d.QuestionType == TypeMultipleChoice && len(d.Options) == 0 {
		out["options"] = "options must not be empty for multiple_choice questions"
	}
	return out, len(out) == 0
}

type Repository interface {
	GetByJobID(ctx context.Context, jobID uuid.UUID) ([]PreScreenQuestion, error)
	GetByID(ctx context.Context, id uuid.UUID) (PreScreenQuestion, error)
	Create(ctx context.Context, dto *CreateDTO) (PreScreenQuestion, error)
	Update(ctx context.Context, id uuid.UUID, patch *UpdateDTO) (PreScreenQuestion, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceForJob(ctx context.Context, jobID uuid.UUID, items []CreateDTO) ([]PreScreenQuestion, error)
}
