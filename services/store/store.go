package store

import (
	"sync"

	"github.com/asimmohammad/corptravel/models"
)

// Store is the session-scoped state container: signed-in user, cart, last
// search, and the trips/policies caches. It is an explicit value handed to
// collaborators rather than ambient global state, so each test can own an
// independent instance. All mutations replace whole values under one lock;
// readers receive copies and never observe partial updates.
type Store struct {
	mu         sync.RWMutex
	user       *models.User
	cart       []models.Offer
	lastSearch *models.SearchParams
	policies   []models.Policy
	trips      []models.Trip

	// Search results are committed through a sequence guard: a response is
	// applied only if it belongs to the most recently issued request, so a
	// slow earlier search can never clobber a newer one.
	issuedSeq  uint64
	appliedSeq uint64
	results    []models.Offer
}

func New() *Store {
	return &Store{}
}

// Login replaces the session identity. The cart is untouched.
func (s *Store) Login(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := u
	s.user = &copied
}

// Logout clears the session and the cart in one critical section; no reader
// can observe one cleared without the other.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.cart = nil
}

// User returns a copy of the signed-in user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// SetCart replaces the cart contents wholesale. Selecting an offer is a full
// replace, not an incremental add.
func (s *Store) SetCart(items []models.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(items) == 0 {
		s.cart = nil
		return
	}
	s.cart = append([]models.Offer(nil), items...)
}

// Cart returns a copy of the current cart.
func (s *Store) Cart() []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Offer(nil), s.cart...)
}

// LastSearch returns a copy of the params behind the committed results, or
// nil when no search has committed yet.
func (s *Store) LastSearch() *models.SearchParams {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastSearch == nil {
		return nil
	}
	copied := *s.lastSearch
	return &copied
}

// SetPolicies replaces the cached policy list. The API remains the source of
// truth; this is a convenience cache.
func (s *Store) SetPolicies(policies []models.Policy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies = append([]models.Policy(nil), policies...)
}

// Policies returns a copy of the cached policy list.
func (s *Store) Policies() []models.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Policy(nil), s.policies...)
}

// AddTrip appends a trip, preserving insertion order.
func (s *Store) AddTrip(t models.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append(s.trips, t)
}

// Trips returns a copy of the cached trip list.
func (s *Store) Trips() []models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Trip(nil), s.trips...)
}

// NextSearchSeq issues a sequence number for an outgoing search request.
func (s *Store) NextSearchSeq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedSeq++
	return s.issuedSeq
}

// ApplyResults commits a search response together with the params that
// produced it, if and only if the response carries the most recently issued
// sequence number. It reports whether the commit happened; stale and
// duplicate responses are dropped whole, so Results and LastSearch always
// describe the same search.
func (s *Store) ApplyResults(seq uint64, p models.SearchParams, offers []models.Offer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.issuedSeq || seq <= s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	copied := p
	s.lastSearch = &copied
	s.results = append([]models.Offer(nil), offers...)
	return true
}

// Results returns a copy of the last committed search results.
func (s *Store) Results() []models.Offer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Offer(nil), s.results...)
}
