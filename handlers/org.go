// Package handlers implements a sandbox rendition of the travel API: the same
// REST contract the client core consumes, backed by canned data instead of
// real suppliers. It exists so the booking flows can be exercised end-to-end
// in development and integration tests.
package handlers

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/asimmohammad/corptravel/models"
)

type userRecord struct {
	passwordHash []byte
	role         models.Role
}

// Org holds the sandbox's in-memory state for a single organization.
type Org struct {
	mu           sync.Mutex
	users        map[string]*userRecord
	policies     []models.Policy
	nextPolicyID int
	trips        map[string][]models.Trip
	apiKeys      map[string]string
}

// Demo credentials seeded into every sandbox org.
const DemoPassword = "demo1234"

var demoEmails = []string{
	"admin@example.com",
	"tmgr@example.com",
	"arranger@example.com",
	"traveler@example.com",
}

// NewOrg builds a sandbox org seeded with one demo user per role and a demo
// API key pair.
func NewOrg() *Org {
	o := &Org{
		users:        make(map[string]*userRecord),
		trips:        make(map[string][]models.Trip),
		apiKeys:      map[string]string{"demo-key": "demo-secret"},
		nextPolicyID: 1,
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	for _, email := range demoEmails {
		o.users[email] = &userRecord{passwordHash: hash, role: RoleForEmail(email)}
	}
	return o
}

// RoleForEmail resolves a role from the email's local part, mirroring the
// sandbox convention: "admin" gets OrgAdmin, "tmgr" TravelManager, "arranger"
// Arranger, everyone else Traveler.
func RoleForEmail(email string) models.Role {
	switch {
	case strings.Contains(email, "admin"):
		return models.RoleOrgAdmin
	case strings.Contains(email, "tmgr"):
		return models.RoleTravelManager
	case strings.Contains(email, "arranger"):
		return models.RoleArranger
	default:
		return models.RoleTraveler
	}
}
