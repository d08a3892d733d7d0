package candidate

import (
	"regexp"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

var ErrNotFound = gerrors.New("candidate not found")

// emailPattern accepts the minimal local@domain.tld shape; anything stricter
// belongs to the delivery layer, not here.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Candidate has no owning organization of its own; visibility is derived
// through the applications it holds, job by job, company by company.
type Candidate struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Location  string    `json:"location,omitempty"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
