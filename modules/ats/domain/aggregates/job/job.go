package job

import (
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusOnHold Status = "on_hold"
	StatusFilled Status = "filled"
	StatusClosed Status = "closed"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentTemporary  EmploymentType = "temporary"
	EmploymentInternship EmploymentType = "internship"
)

var ErrNotFound = gerrors.New("job not found")

// Job belongs to a company; its visibility follows the owning company's
// organization.
type Job struct {
	ID               uuid.UUID      `json:"id"`
	CompanyID        uuid.UUID      `json:"company_id"`
	Title            string         `json:"title"`
	Description      string         `json:"description,omitempty"`
	Requirements     string         `json:"requirements,omitempty"`
	Responsibilities string         `json:"responsibilities,omitempty"`
	Location         string         `json:"location,omitempty"`
	EmploymentType   EmploymentType `json:"employment_type,omitempty"`
	SalaryMin        *int64         `json:"salary_min,omitempty"`
	SalaryMax        *int64         `json:"salary_max,omitempty"`
	SalaryCurrency   string         `json:"salary_currency,omitempty"`
	Status           Status         `json:"status"`
	ClosedReason     string         `json:"closed_reason,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusOpen, StatusOnHold, StatusFilled, StatusClosed:
		return true
	}
	return false
}

func ValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentTemporary, EmploymentInternship:
		return true
	}
	return false
}
