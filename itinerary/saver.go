package itinerary

import (
	"context"
	"fmt"
	"time"

	"voyago/budget"
	"voyago/db"
	"voyago/models"
	"voyago/tripapi"
	"voyago/utils"

	"github.com/google/uuid"
)

// Creator generates the finalized day-by-day itinerary for a selection.
type Creator interface {
	CreateItinerary(ctx context.Context, req tripapi.CreateRequest) (models.CreateItineraryResponse, error)
}

// Saver turns a finished selection into a persisted itinerary record plus
// its downloadable flight document.
type Saver struct {
	creator    Creator
	publicBase string
}

func NewSaver(creator Creator, publicBase string) *Saver {
	return &Saver{creator: creator, publicBase: publicBase}
}

// Submit finalizes one selection. The itinerary generation call happens
// first; if it or any later step fails the caller's selection state is left
// untouched so the user can retry.
func (s *Saver) Submit(ctx context.Context, in SubmitInput) (models.SavedItinerary, error) {
	created, err := s.creator.CreateItinerary(ctx, tripapi.CreateRequest{
		Destination:        in.Trip.Destination,
		TripStartDate:      in.Trip.OutboundDate,
		TripEndDate:        in.Trip.ReturnDate,
		NumTravelers:       in.Trip.Travelers,
		BudgetPerPerson:    budget.PerPerson(in.TotalBudget, in.Trip.Travelers),
		SelectedOutbound:   in.Selection.Outbound,
		SelectedReturn:     in.Selection.Return,
		SelectedHotel:      in.Selection.Hotel,
		SelectedActivities: in.Selection.Activities,
	})
	if err != nil {
		return models.SavedItinerary{}, err
	}

	sel := BuildFlightSelection(in)
	artifact, err := WriteFlightPDF(sel, s.publicBase)
	if err != nil {
		return models.SavedItinerary{}, err
	}

	saved := models.SavedItinerary{
		ItineraryID: "itin-" + uuid.NewString(),
		Destination: in.Trip.Destination,
		Country:     in.Destination.Country,
		StartDate:   in.Trip.OutboundDate,
		EndDate:     in.Trip.ReturnDate,
		Travelers:   in.Trip.Travelers,
		Outbound:    sel.Flight,
		Return:      sel.ReturnFlight,
		Hotel:       in.Selection.Hotel,
		Activities:  activitiesOrEmpty(in.Selection.Activities),
		DailyPlans:  created.DailyPlans,
		Costs:       created.Costs,
		CreatedAt:   time.Now().UTC(),
		Artifact:    &artifact,
	}

	if _, err := db.ItinerariesCollection.InsertOne(ctx, saved); err != nil {
		return models.SavedItinerary{}, fmt.Errorf("persist itinerary: %w", err)
	}
	persistSelection(ctx, sel, artifact)
	return saved, nil
}

// persistSelection records the raw submitted payload alongside its artifact
// for audit. Failures here are logged by mongo driver semantics but do not
// fail the submit, the itinerary record is already durable.
func persistSelection(ctx context.Context, sel models.FlightSelection, artifact models.ArtifactRef) {
	doc := utils.M{
		"selection":  sel,
		"artifact":   artifact,
		"created_at": time.Now().UTC(),
	}
	_, _ = db.ArtifactsCollection.InsertOne(ctx, doc)
}

func activitiesOrEmpty(acts []models.ActivityOption) []models.ActivityOption {
	if acts == nil {
		return []models.ActivityOption{}
	}
	return acts
}
