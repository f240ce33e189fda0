package planner

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"voyago/flights"
	"voyago/hotels"
	"voyago/models"
	"voyago/rdx"
	"voyago/tripapi"
	"voyago/utils"

	"github.com/julienschmidt/httprouter"
)

const submitLockTTL = 2 * time.Minute

// Handlers exposes the session lifecycle over HTTP. Remote collaborator
// calls run in the request goroutine; the session's generation fence takes
// care of requests that overlap a newer search.
type Handlers struct {
	store        *Store
	destinations DestinationSearcher
	searcher     FlightSearcher
	planner      ItineraryPlanner
	submitter    Submitter
}

func NewHandlers(store *Store, dests DestinationSearcher, searcher FlightSearcher, planner ItineraryPlanner, submitter Submitter) *Handlers {
	return &Handlers{
		store:        store,
		destinations: dests,
		searcher:     searcher,
		planner:      planner,
		submitter:    submitter,
	}
}

func (h *Handlers) respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation),
		errors.Is(err, flights.ErrUnknownOption),
		errors.Is(err, hotels.ErrUnknownOffer):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrWrongPhase),
		errors.Is(err, ErrIncompleteSelection),
		errors.Is(err, ErrSubmitInFlight),
		errors.Is(err, ErrStaleResponse):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
	}
}

func (h *Handlers) session(w http.ResponseWriter, ps httprouter.Params) (*Session, bool) {
	s, err := h.store.Get(ps.ByName("id"))
	if err != nil {
		h.respondErr(w, err)
		return nil, false
	}
	return s, true
}

func decodeBody(r *http.Request, out any) error {
	err := json.NewDecoder(r.Body).Decode(out)
	if err == io.EOF {
		return nil
	}
	return err
}

// SearchDestinations proxies the free-form destination search.
func (h *Handlers) SearchDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req tripapi.DestinationSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	resp, err := h.destinations.SearchDestinations(r.Context(), req)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadGateway, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateSession opens a new planning session from trip parameters.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var trip models.TripContext
	if err := decodeBody(r, &trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	s := h.store.Create(trip)
	utils.RespondWithJSON(w, http.StatusCreated, s.View())
}

// GetSession returns the current session view.
func (h *Handlers) GetSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// DeleteSession tears a session down and drops its snapshot.
func (h *Handlers) DeleteSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if _, ok := h.session(w, ps); !ok {
		return
	}
	h.store.Delete(ps.ByName("id"))
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "deleted"})
}

// UpdateSession replaces the trip parameters and resets derived state.
func (h *Handlers) UpdateSession(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	var trip models.TripContext
	if err := decodeBody(r, &trip); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := s.UpdateTrip(trip); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// SearchFlights dispatches the round-trip flight search for a session. The
// body may carry the chosen destination suggestion; omitting it reuses the
// trip's destination.
func (h *Handlers) SearchFlights(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}

	var body struct {
		Destination models.DestinationSuggestion `json:"destination"`
	}
	if err := decodeBody(r, &body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	gen, req, err := s.BeginFlightSearch(body.Destination)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	resp, err := h.searcher.SearchFlights(r.Context(), req)
	if err != nil {
		if ferr := s.FailFlightSearch(gen, err); errors.Is(ferr, ErrStaleResponse) {
			h.respondErr(w, ferr)
			return
		}
		utils.RespondWithJSON(w, http.StatusBadGateway, utils.M{"error": err.Error(), "session": s.View()})
		return
	}
	if err := s.ApplyFlightResults(gen, resp); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// SelectFlight picks one option for a leg.
func (h *Handlers) SelectFlight(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	var body struct {
		Leg      string `json:"leg"`
		OptionID string `json:"optionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := s.SelectFlight(body.Leg, body.OptionID); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// ReopenFlight re-exposes a leg's candidate list.
func (h *Handlers) ReopenFlight(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	var body struct {
		Leg string `json:"leg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := s.ReopenFlight(body.Leg); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// AdvanceToHotels runs the itinerary planning call and moves the session
// into hotel review.
func (h *Handlers) AdvanceToHotels(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}

	gen, req, err := s.BeginHotelPlanning()
	if err != nil {
		h.respondErr(w, err)
		return
	}

	resp, err := h.planner.PlanItinerary(r.Context(), req)
	if err != nil {
		if ferr := s.FailPlan(gen, err); errors.Is(ferr, ErrStaleResponse) {
			h.respondErr(w, ferr)
			return
		}
		utils.RespondWithJSON(w, http.StatusBadGateway, utils.M{"error": err.Error(), "session": s.View()})
		return
	}
	if err := s.ApplyPlan(gen, resp); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// SelectHotel picks one offer from the active scenario.
func (h *Handlers) SelectHotel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	var body struct {
		OfferID string `json:"offerId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := s.SelectHotel(body.OfferID); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// AdvanceToActivities moves the session into activity review.
func (h *Handlers) AdvanceToActivities(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	if err := s.AdvanceToActivities(); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// ToggleActivity adds or removes one activity from the selection.
func (h *Handlers) ToggleActivity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := s.ToggleActivity(body.Name); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// Back abandons the run and returns the session to Idle.
func (h *Handlers) Back(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	if err := s.Back(); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// StepBack steps to the previous reviewing phase.
func (h *Handlers) StepBack(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	if err := s.StepBack(); err != nil {
		h.respondErr(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, s.View())
}

// Submit finalizes the session. The redis lock plus the session's own
// in-flight flag serialize concurrent submit attempts; the loser gets a
// conflict, never a duplicate itinerary.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	s, ok := h.session(w, ps)
	if !ok {
		return
	}
	sessionID := ps.ByName("id")

	if !rdx.AcquireSubmitLock(sessionID, submitLockTTL) {
		h.respondErr(w, ErrSubmitInFlight)
		return
	}
	defer rdx.ReleaseSubmitLock(sessionID)

	in, err := s.BeginSubmit()
	if err != nil {
		h.respondErr(w, err)
		return
	}

	saved, err := h.submitter.Submit(r.Context(), in)
	if err != nil {
		s.FailSubmit(err)
		utils.RespondWithJSON(w, http.StatusBadGateway, utils.M{"error": err.Error(), "session": s.View()})
		return
	}
	s.CompleteSubmit(saved)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"status": "success", "itinerary": saved, "session": s.View()})
}
