package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voyago/itinerary"
	"voyago/models"
	"voyago/tripapi"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCollaborators satisfies every planner port with canned responses.
type fakeCollaborators struct {
	searchResp  models.FlightSearchResponse
	searchErr   error
	searchCalls int

	planResp models.PlanResponse
	planErr  error

	destResp tripapi.DestinationSearchResponse

	saved     models.SavedItinerary
	submitErr error
}

func (f *fakeCollaborators) SearchDestinations(_ context.Context, _ tripapi.DestinationSearchRequest) (tripapi.DestinationSearchResponse, error) {
	return f.destResp, nil
}

func (f *fakeCollaborators) SearchFlights(_ context.Context, _ tripapi.FlightSearchRequest) (models.FlightSearchResponse, error) {
	f.searchCalls++
	return f.searchResp, f.searchErr
}

func (f *fakeCollaborators) PlanItinerary(_ context.Context, _ tripapi.PlanRequest) (models.PlanResponse, error) {
	return f.planResp, f.planErr
}

func (f *fakeCollaborators) Submit(_ context.Context, _ itinerary.SubmitInput) (models.SavedItinerary, error) {
	return f.saved, f.submitErr
}

func newTestRouter(fake *fakeCollaborators) (*httprouter.Router, *Store) {
	store := NewStore()
	h := NewHandlers(store, fake, fake, fake, fake)

	router := httprouter.New()
	router.POST("/api/sessions", h.CreateSession)
	router.GET("/api/sessions/:id", h.GetSession)
	router.POST("/api/sessions/:id/flights/search", h.SearchFlights)
	router.POST("/api/sessions/:id/flights/select", h.SelectFlight)
	router.POST("/api/sessions/:id/hotels", h.AdvanceToHotels)
	router.POST("/api/sessions/:id/hotels/select", h.SelectHotel)
	router.POST("/api/sessions/:id/activities", h.AdvanceToActivities)
	router.POST("/api/sessions/:id/submit", h.Submit)
	return router, store
}

func doJSON(t *testing.T, router *httprouter.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) SessionView {
	t.Helper()
	var view SessionView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	return view
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	fake := &fakeCollaborators{
		searchResp: searchResponse(),
		planResp:   planResponse(),
		saved:      models.SavedItinerary{ItineraryID: "itin-1", Destination: "Lisbon"},
	}
	router, _ := newTestRouter(fake)

	rec := doJSON(t, router, http.MethodPost, "/api/sessions", testTrip())
	require.Equal(t, http.StatusCreated, rec.Code)
	view := decodeView(t, rec)
	require.NotEmpty(t, view.ID)
	base := "/api/sessions/" + view.ID

	rec = doJSON(t, router, http.MethodPost, base+"/flights/search", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeView(t, rec)
	assert.Equal(t, PhaseReviewingFlights, view.Phase)
	require.NotNil(t, view.Outbound)
	assert.Len(t, view.Outbound.Options, 2)

	rec = doJSON(t, router, http.MethodPost, base+"/flights/select", map[string]string{"leg": "outbound", "optionId": "out-1"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, router, http.MethodPost, base+"/flights/select", map[string]string{"leg": "return", "optionId": "ret-1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, base+"/hotels", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	view = decodeView(t, rec)
	assert.Equal(t, PhaseReviewingHotels, view.Phase)
	require.NotNil(t, view.Scenario)
	assert.Equal(t, "A", view.Scenario.Key)

	rec = doJSON(t, router, http.MethodPost, base+"/hotels/select", map[string]string{"offerId": "a-0"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, base+"/activities", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, base+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result struct {
		Status    string               `json:"status"`
		Itinerary models.SavedItinerary `json:"itinerary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "success", result.Status)
	assert.Equal(t, "itin-1", result.Itinerary.ItineraryID)

	rec = doJSON(t, router, http.MethodGet, base, nil)
	view = decodeView(t, rec)
	assert.Equal(t, PhaseCompleted, view.Phase)
}

func TestSearchFlightsValidationFailsFast(t *testing.T) {
	fake := &fakeCollaborators{searchResp: searchResponse()}
	router, _ := newTestRouter(fake)

	trip := testTrip()
	trip.TotalBudget = 0
	rec := doJSON(t, router, http.MethodPost, "/api/sessions", trip)
	view := decodeView(t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/sessions/"+view.ID+"/flights/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, fake.searchCalls)
}

func TestSearchFlightsUpstreamFailure(t *testing.T) {
	fake := &fakeCollaborators{searchErr: errors.New("supervisor timeout")}
	router, _ := newTestRouter(fake)

	rec := doJSON(t, router, http.MethodPost, "/api/sessions", testTrip())
	view := decodeView(t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/sessions/"+view.ID+"/flights/search", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "supervisor timeout")
}

func TestSubmitFailureKeepsSessionRetryable(t *testing.T) {
	fake := &fakeCollaborators{
		searchResp: searchResponse(),
		planResp:   planResponse(),
		submitErr:  errors.New("persistence unavailable"),
	}
	router, store := newTestRouter(fake)

	rec := doJSON(t, router, http.MethodPost, "/api/sessions", testTrip())
	id := decodeView(t, rec).ID
	base := "/api/sessions/" + id

	doJSON(t, router, http.MethodPost, base+"/flights/search", nil)
	doJSON(t, router, http.MethodPost, base+"/flights/select", map[string]string{"leg": "outbound", "optionId": "out-1"})
	doJSON(t, router, http.MethodPost, base+"/flights/select", map[string]string{"leg": "return", "optionId": "ret-1"})
	doJSON(t, router, http.MethodPost, base+"/hotels", nil)
	doJSON(t, router, http.MethodPost, base+"/hotels/select", map[string]string{"offerId": "a-0"})
	doJSON(t, router, http.MethodPost, base+"/activities", nil)

	rec = doJSON(t, router, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	s, err := store.Get(id)
	require.NoError(t, err)
	view := s.View()
	assert.Equal(t, PhaseReviewingActivities, view.Phase)
	require.NotNil(t, view.Selection.Hotel)

	// A second attempt succeeds once persistence is back.
	fake.submitErr = nil
	fake.saved = models.SavedItinerary{ItineraryID: "itin-2"}
	rec = doJSON(t, router, http.MethodPost, base+"/submit", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownSessionIs404(t *testing.T) {
	router, _ := newTestRouter(&fakeCollaborators{})
	rec := doJSON(t, router, http.MethodGet, "/api/sessions/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWrongPhaseIsConflict(t *testing.T) {
	fake := &fakeCollaborators{searchResp: searchResponse()}
	router, _ := newTestRouter(fake)

	rec := doJSON(t, router, http.MethodPost, "/api/sessions", testTrip())
	id := decodeView(t, rec).ID

	// Hotel advance before any flight search.
	rec = doJSON(t, router, http.MethodPost, "/api/sessions/"+id+"/hotels", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
