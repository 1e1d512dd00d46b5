package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asimmohammad/corptravel/client"
	"github.com/asimmohammad/corptravel/handlers"
	"github.com/asimmohammad/corptravel/models"
	"github.com/asimmohammad/corptravel/routes"
	"github.com/asimmohammad/corptravel/services/auth"
	"github.com/asimmohammad/corptravel/services/booking"
	"github.com/asimmohammad/corptravel/services/results"
	"github.com/asimmohammad/corptravel/services/search"
	"github.com/asimmohammad/corptravel/services/store"
	"github.com/asimmohammad/corptravel/utils"
)

func newSandbox(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	routes.RegisterRoutes(engine, handlers.NewOrg())
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, srv *httptest.Server) *client.Client {
	t.Helper()
	return client.New(srv.URL, "org-demo", 5*time.Second)
}

func TestSearchSelectBookFlow(t *testing.T) {
	ctx := context.Background()
	srv := newSandbox(t)
	c := newClient(t, srv)

	st := store.New()
	sessions := &utils.FileSessionStore{Path: filepath.Join(t.TempDir(), "session.json")}
	signin := &auth.Flow{API: c, Store: st, Sessions: sessions}

	user, err := signin.Login(ctx, "traveler@example.com", handlers.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleTraveler, user.Role)

	offers, err := search.Run(ctx, c, st, models.SearchParams{
		Mode:        models.ModeFlights,
		Origin:      "ORD",
		Destination: "JFK",
		DepartDate:  "2025-11-20",
	})
	require.NoError(t, err)
	require.Len(t, offers, 10)
	assert.Len(t, st.Results(), 10)

	inPolicy := results.Apply(offers, results.FilterSpec{Policy: results.PolicyIn})
	require.NotEmpty(t, inPolicy)
	for _, o := range inPolicy {
		assert.Equal(t, models.PolicyIn, o.PolicyStatus)
	}

	st.SetCart([]models.Offer{inPolicy[0]})
	require.Len(t, st.Cart(), 1)

	flow := &booking.Flow{API: c, Store: st}
	confirmation, err := flow.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(confirmation, "CONF"))
	assert.Empty(t, st.Cart(), "cart empties after a confirmed booking")

	trips, err := c.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, models.TripUpcoming, trips[0].Status)
	assert.Equal(t, []string{inPolicy[0].Name}, trips[0].Segments)

	// A fresh run resumes the persisted session without re-authenticating.
	resumed := &auth.Flow{API: c, Store: store.New(), Sessions: sessions}
	restored, err := resumed.Resume()
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "traveler@example.com", restored.Email)

	require.NoError(t, signin.Logout())
	assert.Nil(t, st.User())
	persisted, err := sessions.Load()
	require.NoError(t, err)
	assert.Nil(t, persisted, "logout deletes the persisted session")
}

func TestBookingOnBehalfRequiresCapability(t *testing.T) {
	ctx := context.Background()
	srv := newSandbox(t)

	traveler := newClient(t, srv)
	_, err := traveler.Login(ctx, "traveler@example.com", handlers.DemoPassword)
	require.NoError(t, err)

	item := models.BookingItem{ID: "flights-1", Mode: models.ModeFlights, Name: "Flight 2", Price: 132.5, Currency: "USD"}

	var apiErr *client.APIError
	_, err = traveler.CreateBooking(ctx, models.BookingRequest{
		Items:         []models.BookingItem{item},
		TravelerEmail: "colleague@example.com",
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	arranger := newClient(t, srv)
	_, err = arranger.Login(ctx, "arranger@example.com", handlers.DemoPassword)
	require.NoError(t, err)

	st := store.New()
	st.SetCart([]models.Offer{{ID: "flights-1", Mode: models.ModeFlights, Name: "Flight 2", Price: 132.5, Currency: "USD"}})
	flow := &booking.Flow{API: arranger, Store: st, TravelerEmail: "traveler@example.com"}
	confirmation, err := flow.Submit(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(confirmation, "CONF"))

	// The trip lands on the traveler's itinerary, not the arranger's.
	trips, err := arranger.ListTrips(ctx)
	require.NoError(t, err)
	assert.Empty(t, trips)

	trips, err = traveler.ListTrips(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "traveler@example.com", trips[0].Traveler)
}

func TestUnknownRoleDeniedSearchAndBooking(t *testing.T) {
	ctx := context.Background()
	srv := newSandbox(t)

	token, err := utils.GenerateToken("ghost@example.com", "Contractor", time.Hour)
	require.NoError(t, err)
	c := newClient(t, srv)
	c.SetToken(token)

	var apiErr *client.APIError
	_, err = c.Search(ctx, models.ModeFlights, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	_, err = c.CreateBooking(ctx, models.BookingRequest{
		Items: []models.BookingItem{{ID: "flights-1", Name: "Flight 2"}},
	})
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
}

func TestPublishedPolicyDrivesClassification(t *testing.T) {
	ctx := context.Background()
	srv := newSandbox(t)
	c := newClient(t, srv)

	_, err := c.Login(ctx, "tmgr@example.com", handlers.DemoPassword)
	require.NoError(t, err)

	created, err := c.CreatePolicy(ctx, models.PolicyCreate{
		Name: "Hotel rate cap",
		Rules: []models.PolicyRule{
			{Key: "hotel.max_nightly_rate", Op: models.OpLTE, Value: "200"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.PolicyDraft, created.Status)

	// Draft policies do not affect classification yet.
	offers, err := c.Search(ctx, models.ModeHotels, nil)
	require.NoError(t, err)
	assert.Equal(t, models.PolicyOut, offers[0].PolicyStatus, "canned pattern marks the first offer out")

	published, err := c.PublishPolicy(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PolicyPublished, published.Status)

	offers, err = c.Search(ctx, models.ModeHotels, nil)
	require.NoError(t, err)
	require.Len(t, offers, 10)
	for _, o := range offers {
		want := models.PolicyIn
		if o.Price > 200 {
			want = models.PolicyOut
		}
		assert.Equal(t, want, o.PolicyStatus, "offer %s priced %.2f", o.ID, o.Price)
	}

	// Published policies are immutable.
	_, err = c.PublishPolicy(ctx, created.ID)
	require.NoError(t, err, "re-publishing is a no-op")
	err = doUpdateRules(ctx, c, srv, created.ID)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

// doUpdateRules hits the rules endpoint directly; the client core never edits
// published policies, so the helper lives only in tests.
func doUpdateRules(ctx context.Context, c *client.Client, srv *httptest.Server, id int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut,
		srv.URL+"/policies/"+strconv.Itoa(id)+"/rules",
		strings.NewReader(`{"rules":[{"key":"price","op":"<=","value":"50"}]}`))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token())
	req.Header.Set("X-Org-External-Id", "org-demo")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &client.APIError{Status: resp.StatusCode, Message: resp.Status}
	}
	return nil
}

func TestRoleGates(t *testing.T) {
	ctx := context.Background()
	srv := newSandbox(t)

	traveler := newClient(t, srv)
	_, err := traveler.Login(ctx, "traveler@example.com", handlers.DemoPassword)
	require.NoError(t, err)

	var apiErr *client.APIError
	_, err = traveler.SpendReport(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	_, err = traveler.ListTravelers(ctx)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)

	arranger := newClient(t, srv)
	_, err = arranger.Login(ctx, "arranger@example.com", handlers.DemoPassword)
	require.NoError(t, err)

	travelers, err := arranger.ListTravelers(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, travelers)

	admin := newClient(t, srv)
	_, err = admin.Login(ctx, "admin@example.com", handlers.DemoPassword)
	require.NoError(t, err)

	spend, err := admin.SpendReport(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", spend.Currency)

	compliance, err := admin.ComplianceReport(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, compliance.InPolicyRate+compliance.OOPRate, 0.001)
}

func TestMissingOrgHeaderRejected(t *testing.T) {
	ctx := context.Background()
	srv := newSandbox(t)

	// A client with no org id sends no scoping header.
	c := client.New(srv.URL, "", 5*time.Second)
	_, err := c.Login(ctx, "traveler@example.com", handlers.DemoPassword)
	require.NoError(t, err, "auth endpoints are public")

	var apiErr *client.APIError
	_, err = c.Search(ctx, models.ModeFlights, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestUnauthenticatedSearchRejected(t *testing.T) {
	ctx := context.Background()
	srv := newSandbox(t)
	c := newClient(t, srv)

	var apiErr *client.APIError
	_, err := c.Search(ctx, models.ModeFlights, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.True(t, apiErr.IsAuthError())
}

func TestRegistrationFlow(t *testing.T) {
	ctx := context.Background()
	srv := newSandbox(t)
	c := newClient(t, srv)

	existing, err := c.InitiateRegistration(ctx, "newhire@example.com")
	require.NoError(t, err)
	assert.False(t, existing)

	resp, err := c.Register(ctx, "newhire@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, models.RoleTraveler, resp.Role)

	existing, err = c.InitiateRegistration(ctx, "newhire@example.com")
	require.NoError(t, err)
	assert.True(t, existing)

	// Registered identity can search right away.
	offers, err := c.Search(ctx, models.ModeCars, nil)
	require.NoError(t, err)
	assert.Len(t, offers, 10)
}
