package placement

import (
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var ErrNotFound = gerrors.New("placement not found")

// Placement records a successful hire tied to one application.
type Placement struct {
	ID            uuid.UUID  `json:"id"`
	CandidateID   uuid.UUID  `json:"candidate_id"`
	JobID         uuid.UUID  `json:"job_id"`
	ApplicationID uuid.UUID  `json:"application_id"`
	Status        Status     `json:"status"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	Salary        *int64     `json:"salary,omitempty"`
	FeePercentage *float64   `json:"fee_percentage,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
