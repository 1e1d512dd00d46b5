// Package capability maps roles to permitted operations. Checks happen before
// dispatch, in one place, instead of per-screen conditionals.
package capability

import (
	"fmt"

	"github.com/asimmohammad/corptravel/models"
)

// Operation names a user-facing action gated by role.
type Operation string

const (
	OpSearch          Operation = "search"
	OpBookSelf        Operation = "book_self"
	OpBookForOther    Operation = "book_for_other"
	OpManageTravelers Operation = "manage_travelers"
	OpManagePolicies  Operation = "manage_policies"
	OpViewReports     Operation = "view_reports"
)

var grants = map[models.Role]map[Operation]bool{
	models.RoleTraveler: {
		OpSearch:   true,
		OpBookSelf: true,
	},
	models.RoleArranger: {
		OpSearch:          true,
		OpBookSelf:        true,
		OpBookForOther:    true,
		OpManageTravelers: true,
	},
	models.RoleTravelManager: {
		OpSearch:         true,
		OpBookSelf:       true,
		OpManagePolicies: true,
		OpViewReports:    true,
	},
	models.RoleOrgAdmin: {
		OpSearch:          true,
		OpBookSelf:        true,
		OpBookForOther:    true,
		OpManageTravelers: true,
		OpManagePolicies:  true,
		OpViewReports:     true,
	},
}

// Allowed reports whether the role may perform the operation. Unknown roles
// are granted nothing.
func Allowed(role models.Role, op Operation) bool {
	return grants[role][op]
}

// DeniedError reports a capability check failure.
type DeniedError struct {
	Role models.Role
	Op   Operation
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("role %s is not permitted to %s", e.Role, e.Op)
}

// Require returns a DeniedError when the role lacks the operation.
func Require(role models.Role, op Operation) error {
	if !Allowed(role, op) {
		return &DeniedError{Role: role, Op: op}
	}
	return nil
}
