// Package visibility models the organization scope applied to every list
// query. The scope is always chosen explicitly by the caller context; it is
// never inferred inside a repository from an empty id list.
package visibility

import "github.com/google/uuid"

type Scope struct {
	all    bool
	orgIDs []uuid.UUID
}

// All grants unrestricted visibility. Used for callers without any
// organization membership (platform operators).
func All() Scope {
	return Scope{all: true}
}

// Organizations restricts visibility to the given organization ids.
func Organizations(ids []uuid.UUID) Scope {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return Scope{orgIDs: out}
}

func (s Scope) IsAll() bool {
	return s.all
}

func (s Scope) OrganizationIDs() []uuid.UUID {
	return s.orgIDs
}
