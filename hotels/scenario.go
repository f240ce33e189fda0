// Package hotels resolves which precomputed hotel pricing scenario applies
// to a session.
package hotels

import (
	"errors"
	"fmt"
	"strings"

	"voyago/models"
)

const (
	ScenarioA = "A"
	ScenarioB = "B"
)

var (
	ErrNoOutboundSelection = errors.New("no outbound flight selected")
	ErrUnresolvedScenario  = errors.New("outbound option carries no scenario key")
	ErrUnknownOffer        = errors.New("hotel offer not in active scenario")
)

// AssignScenarioKeys backfills the scenario key on outbound options that the
// search service left unkeyed: the first listed option maps to scenario A,
// every other option to scenario B. Options that already carry a key are
// left alone, so an upstream that computes its own mapping wins.
func AssignScenarioKeys(options []models.FlightOption) {
	for i := range options {
		if options[i].ScenarioKey != "" {
			continue
		}
		if i == 0 {
			options[i].ScenarioKey = ScenarioA
		} else {
			options[i].ScenarioKey = ScenarioB
		}
	}
}

// Resolve returns the scenario named by the chosen outbound option's key.
// Resolution is by option identity, never by list position.
func Resolve(chosen *models.FlightOption, a, b models.HotelScenario) (models.HotelScenario, error) {
	if chosen == nil {
		return models.HotelScenario{}, ErrNoOutboundSelection
	}
	switch chosen.ScenarioKey {
	case ScenarioA:
		return a, nil
	case ScenarioB:
		return b, nil
	default:
		return models.HotelScenario{}, fmt.Errorf("%w: option %s", ErrUnresolvedScenario, chosen.ID)
	}
}

// EnsureOfferIDs gives every offer in a scenario a stable id so selections
// can reference offers by identity.
func EnsureOfferIDs(sc *models.HotelScenario) {
	for i := range sc.Hotels {
		if sc.Hotels[i].ID != "" {
			continue
		}
		sc.Hotels[i].ID = fmt.Sprintf("%s-%d", strings.ToLower(sc.Key), i)
	}
}

// FindOffer looks up an offer by id within the active scenario.
func FindOffer(sc models.HotelScenario, offerID string) (*models.HotelOffer, error) {
	for i := range sc.Hotels {
		if sc.Hotels[i].ID == offerID {
			return &sc.Hotels[i], nil
		}
	}
	return nil, ErrUnknownOffer
}
