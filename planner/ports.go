package planner

import (
	"context"

	"voyago/itinerary"
	"voyago/models"
	"voyago/tripapi"
)

// DestinationSearcher suggests destinations for free-form trip ideas.
type DestinationSearcher interface {
	SearchDestinations(ctx context.Context, req tripapi.DestinationSearchRequest) (tripapi.DestinationSearchResponse, error)
}

// FlightSearcher runs the round-trip flight search.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, req tripapi.FlightSearchRequest) (models.FlightSearchResponse, error)
}

// ItineraryPlanner supplies activities plus both hotel scenarios.
type ItineraryPlanner interface {
	PlanItinerary(ctx context.Context, req tripapi.PlanRequest) (models.PlanResponse, error)
}

// Submitter persists the finalized selection and returns the saved record.
type Submitter interface {
	Submit(ctx context.Context, in itinerary.SubmitInput) (models.SavedItinerary, error)
}
