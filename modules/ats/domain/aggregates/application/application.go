package application

import (
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

type Status string

const (
	StatusApplied   Status = "applied"
	StatusScreening Status = "screening"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

var ErrNotFound = gerrors.New("application not found")

// Application links a candidate to a job. Visibility is inherited from the
// job's company.
type Application struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`
	Status      Status    `json:"status"`
	Stage       string    `json:"stage,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusApplied, StatusScreening, StatusInterview, StatusOffer,
		StatusHired, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}
