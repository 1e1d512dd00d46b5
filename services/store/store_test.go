package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asimmohammad/corptravel/models"
)

func testUser() models.User {
	return models.User{Email: "erin@example.com", Role: models.RoleTraveler, Token: "tok"}
}

func testOffer(id string) models.Offer {
	return models.Offer{ID: id, Mode: models.ModeFlights, Name: "Flight " + id, Price: 100, Currency: "USD", PolicyStatus: models.PolicyIn}
}

func TestLoginDoesNotTouchCart(t *testing.T) {
	s := New()
	s.SetCart([]models.Offer{testOffer("1")})

	s.Login(testUser())

	require.NotNil(t, s.User())
	assert.Len(t, s.Cart(), 1)
}

func TestLogoutClearsSessionAndCart(t *testing.T) {
	cases := []struct {
		name string
		prep func(*Store)
	}{
		{"fresh store", func(*Store) {}},
		{"session only", func(s *Store) { s.Login(testUser()) }},
		{"cart only", func(s *Store) { s.SetCart([]models.Offer{testOffer("1")}) }},
		{"session and cart", func(s *Store) {
			s.Login(testUser())
			s.SetCart([]models.Offer{testOffer("1"), testOffer("2")})
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New()
			tc.prep(s)
			s.Logout()
			assert.Nil(t, s.User())
			assert.Empty(t, s.Cart())
		})
	}
}

func TestSetCartReplacesWholesale(t *testing.T) {
	s := New()
	s.SetCart([]models.Offer{testOffer("1"), testOffer("2")})
	s.SetCart([]models.Offer{testOffer("3")})

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "3", cart[0].ID)

	s.SetCart(nil)
	assert.Empty(t, s.Cart())
}

func TestSetCartCopiesInput(t *testing.T) {
	s := New()
	items := []models.Offer{testOffer("1")}
	s.SetCart(items)
	items[0].ID = "mutated"

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "1", cart[0].ID)
}

func TestAddTripPreservesOrder(t *testing.T) {
	s := New()
	s.AddTrip(models.Trip{ID: "t1"})
	s.AddTrip(models.Trip{ID: "t2"})
	s.AddTrip(models.Trip{ID: "t3"})

	trips := s.Trips()
	require.Len(t, trips, 3)
	assert.Equal(t, "t1", trips[0].ID)
	assert.Equal(t, "t3", trips[2].ID)
}

func TestLastSearchTracksCommittedResults(t *testing.T) {
	s := New()
	assert.Nil(t, s.LastSearch())

	seq := s.NextSearchSeq()
	params := models.SearchParams{Mode: models.ModeFlights, Origin: "ORD", Destination: "JFK"}
	require.True(t, s.ApplyResults(seq, params, []models.Offer{testOffer("1")}))

	got := s.LastSearch()
	require.NotNil(t, got)
	assert.Equal(t, "ORD", got.Origin)
}

func TestStaleSearchResponseIsDropped(t *testing.T) {
	s := New()

	first := s.NextSearchSeq()
	second := s.NextSearchSeq()

	// The newer request resolves first and wins.
	require.True(t, s.ApplyResults(second,
		models.SearchParams{Mode: models.ModeFlights, Origin: "SFO", Destination: "LAX"},
		[]models.Offer{testOffer("new")}))
	// The slow earlier response must not clobber it.
	require.False(t, s.ApplyResults(first,
		models.SearchParams{Mode: models.ModeFlights, Origin: "ORD", Destination: "JFK"},
		[]models.Offer{testOffer("old")}))

	got := s.Results()
	require.Len(t, got, 1)
	assert.Equal(t, "new", got[0].ID)

	// The stale response drops whole: its params never land either.
	last := s.LastSearch()
	require.NotNil(t, last)
	assert.Equal(t, "SFO", last.Origin)
}

func TestLatestResponseApplies(t *testing.T) {
	s := New()
	seq := s.NextSearchSeq()
	params := models.SearchParams{Mode: models.ModeFlights, Origin: "ORD", Destination: "JFK"}
	require.True(t, s.ApplyResults(seq, params, []models.Offer{testOffer("a"), testOffer("b")}))
	assert.Len(t, s.Results(), 2)

	// Re-applying the same sequence is rejected; each response commits once.
	assert.False(t, s.ApplyResults(seq, params, []models.Offer{testOffer("c")}))
	assert.Len(t, s.Results(), 2)
}

func TestPoliciesCacheCopies(t *testing.T) {
	s := New()
	s.SetPolicies([]models.Policy{{ID: 1, Name: "Default", Status: models.PolicyDraft}})

	got := s.Policies()
	require.Len(t, got, 1)
	got[0].Name = "mutated"

	assert.Equal(t, "Default", s.Policies()[0].Name)
}
