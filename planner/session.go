// Package planner drives one trip-planning session through its phases:
// flight search, flight review, hotel review, activity review and final
// submission. All session state lives in an explicit Session value guarded
// by a mutex; remote calls happen outside the lock and re-enter through
// generation-fenced apply methods so late responses from a superseded
// search are discarded.
package planner

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"voyago/budget"
	"voyago/flights"
	"voyago/hotels"
	"voyago/itinerary"
	"voyago/models"
	"voyago/tripapi"
)

type Phase string

const (
	PhaseIdle                Phase = "idle"
	PhaseSearchingFlights    Phase = "searching_flights"
	PhaseReviewingFlights    Phase = "reviewing_flights"
	PhaseReviewingHotels     Phase = "reviewing_hotels"
	PhaseReviewingActivities Phase = "reviewing_activities"
	PhaseSubmitting          Phase = "submitting"
	PhaseCompleted           Phase = "completed"
	PhaseFailed              Phase = "failed"
)

// Session is the state of one planning run. Methods that talk to a
// collaborator are split into a Begin step (validate, reset, capture the
// generation, build the request) and an Apply/Fail step fenced on that
// generation.
type Session struct {
	mu sync.Mutex

	ID          string
	Trip        models.TripContext
	Destination models.DestinationSuggestion

	phase      Phase
	failureMsg string

	outbound *flights.LegState
	ret      *flights.LegState

	scenarioA *models.HotelScenario
	scenarioB *models.HotelScenario
	active    *models.HotelScenario
	available []models.ActivityOption

	selection models.Selection

	divisor      float64
	flightBudget float64

	generation uint64
	submitting bool

	lastItinerary *models.SavedItinerary

	// onChange is invoked after every state transition, outside of any
	// remote call but under the session lock. Used for websocket fan-out
	// and snapshot caching.
	onChange func(SessionView)
}

// SessionView is the serializable read model of a session.
type SessionView struct {
	ID            string                       `json:"sessionId"`
	Phase         Phase                        `json:"phase"`
	Message       string                       `json:"message,omitempty"`
	Trip          models.TripContext           `json:"trip"`
	Destination   models.DestinationSuggestion `json:"destination"`
	FlightBudget  float64                      `json:"flightBudget,omitempty"`
	Outbound      *flights.LegState            `json:"outbound,omitempty"`
	Return        *flights.LegState            `json:"return,omitempty"`
	Scenario      *models.HotelScenario        `json:"activeScenario,omitempty"`
	Activities    []models.ActivityOption      `json:"activities,omitempty"`
	Selection     models.Selection             `json:"selection"`
	LastItinerary *models.SavedItinerary       `json:"lastItinerary,omitempty"`
}

func NewSession(id string, trip models.TripContext) *Session {
	return &Session{ID: id, Trip: trip, phase: PhaseIdle, divisor: budget.DefaultDivisor}
}

func (s *Session) SetOnChange(fn func(SessionView)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// View returns a snapshot of the session.
func (s *Session) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Session) viewLocked() SessionView {
	return SessionView{
		ID:            s.ID,
		Phase:         s.phase,
		Message:       s.failureMsg,
		Trip:          s.Trip,
		Destination:   s.Destination,
		FlightBudget:  s.flightBudget,
		Outbound:      s.outbound,
		Return:        s.ret,
		Scenario:      s.active,
		Activities:    s.available,
		Selection:     s.selection,
		LastItinerary: s.lastItinerary,
	}
}

func (s *Session) changedLocked() {
	if s.onChange != nil {
		s.onChange(s.viewLocked())
	}
}

// UpdateTrip replaces the trip parameters. Allowed only while no search or
// submit is in flight; later-phase state is discarded because every
// downstream result depends on these parameters.
func (s *Session) UpdateTrip(trip models.TripContext) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseSearchingFlights || s.phase == PhaseSubmitting {
		return ErrWrongPhase
	}
	s.Trip = trip
	s.resetDownstreamLocked()
	s.phase = PhaseIdle
	s.changedLocked()
	return nil
}

// resetDownstreamLocked discards everything derived from a flight search.
func (s *Session) resetDownstreamLocked() {
	s.outbound = nil
	s.ret = nil
	s.scenarioA = nil
	s.scenarioB = nil
	s.active = nil
	s.available = nil
	s.selection = models.Selection{}
	s.flightBudget = 0
	s.failureMsg = ""
}

func (s *Session) validateTripLocked() error {
	switch {
	case strings.TrimSpace(s.Trip.Origin) == "":
		return fmt.Errorf("%w: origin is required", ErrValidation)
	case strings.TrimSpace(s.Trip.Destination) == "":
		return fmt.Errorf("%w: destination is required", ErrValidation)
	case s.Trip.Travelers < 1:
		return fmt.Errorf("%w: travelers must be at least 1", ErrValidation)
	case s.Trip.TotalBudget <= 0:
		return fmt.Errorf("%w: total budget must be positive", ErrValidation)
	case strings.TrimSpace(s.Trip.OutboundDate) == "":
		return fmt.Errorf("%w: outbound date is required", ErrValidation)
	}
	return nil
}

// BeginFlightSearch validates the trip, synchronously discards all state
// from any earlier search, bumps the generation and returns the request to
// dispatch. A validation failure transitions to Failed without any request
// being built.
func (s *Session) BeginFlightSearch(dest models.DestinationSuggestion) (uint64, tripapi.FlightSearchRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseSubmitting {
		return 0, tripapi.FlightSearchRequest{}, ErrWrongPhase
	}
	if dest.Destination != "" {
		s.Destination = dest
		s.Trip.Destination = dest.Destination
	}
	if err := s.validateTripLocked(); err != nil {
		s.resetDownstreamLocked()
		s.phase = PhaseFailed
		s.failureMsg = err.Error()
		s.changedLocked()
		return 0, tripapi.FlightSearchRequest{}, err
	}

	s.resetDownstreamLocked()
	s.generation++
	s.phase = PhaseSearchingFlights
	s.changedLocked()

	req := tripapi.FlightSearchRequest{
		CurrentCity:     s.Trip.Origin,
		DestinationCity: s.Trip.Destination,
		TotalBudget:     s.Trip.TotalBudget,
		Travellers:      s.Trip.Travelers,
		OutboundDate:    s.Trip.OutboundDate,
		ReturnDate:      s.Trip.ReturnDate,
	}
	return s.generation, req, nil
}

// ApplyFlightResults installs a search response. Responses from a
// superseded generation are discarded without touching state.
func (s *Session) ApplyFlightResults(gen uint64, resp models.FlightSearchResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrStaleResponse
	}

	s.divisor = resp.Budget.BudgetDivisor
	if s.divisor <= 0 {
		s.divisor = budget.DefaultDivisor
	}
	s.flightBudget = resp.Budget.BudgetForFlights
	if s.flightBudget <= 0 {
		s.flightBudget = budget.FlightBudget(s.Trip.TotalBudget, s.divisor)
	}

	s.outbound = flights.NormalizeLeg(resp.FlightFinder.Outbound, s.flightBudget)
	hotels.AssignScenarioKeys(s.outbound.Options)
	if s.Trip.ReturnDate != "" {
		s.ret = flights.NormalizeLeg(resp.FlightFinder.Return, s.flightBudget)
	}

	s.phase = PhaseReviewingFlights
	s.failureMsg = ""
	s.changedLocked()
	return nil
}

// FailFlightSearch records a search failure. The session drops back to
// Failed with the message surfaced inline; a new search recovers it.
func (s *Session) FailFlightSearch(gen uint64, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrStaleResponse
	}
	s.phase = PhaseFailed
	s.failureMsg = cause.Error()
	s.changedLocked()
	return nil
}

func (s *Session) legLocked(leg string) (*flights.LegState, error) {
	switch leg {
	case flights.LegOutbound:
		if s.outbound == nil {
			return nil, ErrWrongPhase
		}
		return s.outbound, nil
	case flights.LegReturn:
		if s.ret == nil {
			return nil, ErrWrongPhase
		}
		return s.ret, nil
	default:
		return nil, fmt.Errorf("%w: unknown leg %q", ErrValidation, leg)
	}
}

// SelectFlight picks one option for a leg. Only valid while reviewing
// flights; selecting again replaces the prior choice.
func (s *Session) SelectFlight(leg, optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReviewingFlights {
		return ErrWrongPhase
	}
	ls, err := s.legLocked(leg)
	if err != nil {
		return err
	}
	if err := ls.Select(optionID); err != nil {
		return err
	}

	chosen := *ls.Selected()
	if leg == flights.LegOutbound {
		s.selection.Outbound = &chosen
	} else {
		s.selection.Return = &chosen
	}
	s.changedLocked()
	return nil
}

// ReopenFlight re-exposes a leg's options for a change of mind.
func (s *Session) ReopenFlight(leg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReviewingFlights {
		return ErrWrongPhase
	}
	ls, err := s.legLocked(leg)
	if err != nil {
		return err
	}
	ls.Reopen()
	s.changedLocked()
	return nil
}

// BeginHotelPlanning guards the flights -> hotels transition. Both legs of
// a round trip must have a selection; an empty leg can never satisfy that.
func (s *Session) BeginHotelPlanning() (uint64, tripapi.PlanRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReviewingFlights {
		return 0, tripapi.PlanRequest{}, ErrWrongPhase
	}
	if s.outbound == nil || !s.outbound.HasSelection() {
		return 0, tripapi.PlanRequest{}, fmt.Errorf("%w: outbound flight not selected", ErrIncompleteSelection)
	}
	if s.Trip.ReturnDate != "" && (s.ret == nil || !s.ret.HasSelection()) {
		return 0, tripapi.PlanRequest{}, fmt.Errorf("%w: return flight not selected", ErrIncompleteSelection)
	}

	req := tripapi.PlanRequest{
		Destination:     s.Trip.Destination,
		Country:         s.Destination.Country,
		Origin:          s.Trip.Origin,
		BudgetPerPerson: budget.PerPerson(s.Trip.TotalBudget, s.Trip.Travelers),
		NumDays:         tripDays(s.Trip),
		Travelers:       s.Trip.Travelers,
		Activities:      s.Trip.Activities,
	}
	return s.generation, req, nil
}

// ApplyPlan installs the activity list and both hotel scenarios, then
// resolves the active scenario from the chosen outbound option's key.
func (s *Session) ApplyPlan(gen uint64, resp models.PlanResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrStaleResponse
	}
	if s.phase != PhaseReviewingFlights {
		return ErrWrongPhase
	}

	a, b := resp.ScenarioA, resp.ScenarioB
	a.Key, b.Key = hotels.ScenarioA, hotels.ScenarioB
	hotels.EnsureOfferIDs(&a)
	hotels.EnsureOfferIDs(&b)

	active, err := hotels.Resolve(s.selection.Outbound, a, b)
	if err != nil {
		return err
	}

	s.scenarioA, s.scenarioB = &a, &b
	s.active = &active
	s.available = resp.Activities
	s.phase = PhaseReviewingHotels
	s.failureMsg = ""
	s.changedLocked()
	return nil
}

// FailPlan surfaces a planning failure while keeping the flight review
// intact so the user can retry the transition.
func (s *Session) FailPlan(gen uint64, cause error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrStaleResponse
	}
	if s.phase != PhaseReviewingFlights {
		return ErrWrongPhase
	}
	s.failureMsg = cause.Error()
	s.changedLocked()
	return nil
}

// SelectHotel picks one offer from the active scenario.
func (s *Session) SelectHotel(offerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReviewingHotels {
		return ErrWrongPhase
	}
	offer, err := hotels.FindOffer(*s.active, offerID)
	if err != nil {
		return err
	}
	chosen := *offer
	s.selection.Hotel = &chosen
	s.changedLocked()
	return nil
}

// AdvanceToActivities guards the hotels -> activities transition: exactly
// one hotel must be selected.
func (s *Session) AdvanceToActivities() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReviewingHotels {
		return ErrWrongPhase
	}
	if s.selection.Hotel == nil {
		return fmt.Errorf("%w: hotel not selected", ErrIncompleteSelection)
	}
	s.phase = PhaseReviewingActivities
	s.failureMsg = ""
	s.changedLocked()
	return nil
}

// ToggleActivity adds or removes one activity from the selection by name.
// Zero selected activities is a valid end state.
func (s *Session) ToggleActivity(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseReviewingActivities {
		return ErrWrongPhase
	}

	var found *models.ActivityOption
	for i := range s.available {
		if s.available[i].Name == name {
			found = &s.available[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("%w: unknown activity %q", ErrValidation, name)
	}

	for i, act := range s.selection.Activities {
		if act.Name == name {
			s.selection.Activities = append(s.selection.Activities[:i], s.selection.Activities[i+1:]...)
			s.changedLocked()
			return nil
		}
	}
	s.selection.Activities = append(s.selection.Activities, *found)
	s.changedLocked()
	return nil
}

// Back abandons the current run from any phase: the selection and every
// search-derived state are discarded and the session returns to Idle. The
// generation bump fences out whatever remote call may still be in flight,
// so backing out of an active search is always allowed. Only an in-flight
// submit blocks it; persistence must resolve one way or the other first.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return ErrSubmitInFlight
	}
	s.generation++
	s.resetDownstreamLocked()
	s.phase = PhaseIdle
	s.changedLocked()
	return nil
}

// StepBack is the softer affordance: one reviewing phase at a time, keeping
// the earlier selections. From flight review it behaves like Back.
func (s *Session) StepBack() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseReviewingActivities:
		s.selection.Activities = nil
		s.phase = PhaseReviewingHotels
	case PhaseReviewingHotels:
		s.selection.Hotel = nil
		s.selection.Activities = nil
		s.scenarioA, s.scenarioB, s.active = nil, nil, nil
		s.available = nil
		s.phase = PhaseReviewingFlights
	case PhaseReviewingFlights, PhaseFailed, PhaseCompleted:
		s.generation++
		s.resetDownstreamLocked()
		s.phase = PhaseIdle
	default:
		return ErrWrongPhase
	}
	s.failureMsg = ""
	s.changedLocked()
	return nil
}

// BeginSubmit starts the finalization. At most one submit may be in flight
// per session; a second attempt is rejected, not queued.
func (s *Session) BeginSubmit() (itinerary.SubmitInput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.submitting {
		return itinerary.SubmitInput{}, ErrSubmitInFlight
	}
	if s.phase != PhaseReviewingActivities {
		return itinerary.SubmitInput{}, ErrWrongPhase
	}

	s.submitting = true
	s.phase = PhaseSubmitting
	s.failureMsg = ""
	s.changedLocked()

	return itinerary.SubmitInput{
		Trip:         s.Trip,
		Destination:  s.Destination,
		Selection:    s.selection,
		Note:         flights.CombinedNote(s.outbound, s.ret),
		Warnings:     collectWarnings(s.outbound, s.ret),
		FlightBudget: s.flightBudget,
		TotalBudget:  s.Trip.TotalBudget,
		NumDays:      tripDays(s.Trip),
	}, nil
}

// CompleteSubmit records the saved itinerary and clears the working
// selection; the session ends in Completed and a new search starts fresh.
func (s *Session) CompleteSubmit(saved models.SavedItinerary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
	s.lastItinerary = &saved
	s.resetDownstreamLocked()
	s.phase = PhaseCompleted
	s.changedLocked()
}

// FailSubmit returns the session to activity review with the failure
// message surfaced and the selection untouched, ready for a retry.
func (s *Session) FailSubmit(cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.submitting = false
	s.phase = PhaseReviewingActivities
	s.failureMsg = cause.Error()
	s.changedLocked()
}

func collectWarnings(legs ...*flights.LegState) []string {
	var out []string
	for _, leg := range legs {
		if leg == nil {
			continue
		}
		out = append(out, leg.Warnings...)
	}
	return out
}

// tripDays derives the trip length in nights from the travel dates,
// defaulting to 1 when dates are missing or malformed.
func tripDays(trip models.TripContext) int {
	start, err := time.Parse("2006-01-02", trip.OutboundDate)
	if err != nil {
		return 1
	}
	end, err := time.Parse("2006-01-02", trip.ReturnDate)
	if err != nil {
		return 1
	}
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
