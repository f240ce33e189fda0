// Package itinerary finalizes a completed selection: it builds the
// persistence payload, renders the downloadable flight document and appends
// the saved record to the itinerary collection.
package itinerary

import (
	"fmt"
	"strings"

	"voyago/models"
)

// UnknownField is the sentinel written in place of optional flight fields
// the search service did not supply.
const UnknownField = "Unknown"

// SubmitInput is everything the finalization step needs from a session.
type SubmitInput struct {
	Trip         models.TripContext
	Destination  models.DestinationSuggestion
	Selection    models.Selection
	Note         string
	Warnings     []string
	FlightBudget float64
	TotalBudget  float64
	NumDays      int
}

// SummarizeFlight flattens one chosen option into the persisted per-leg
// summary. Missing airline, times and airports become "Unknown" so the
// stored record never has absent required fields.
func SummarizeFlight(opt *models.FlightOption) models.FlightSummary {
	if opt == nil {
		return models.FlightSummary{
			Airline:          UnknownField,
			DepartureTime:    UnknownField,
			ArrivalTime:      UnknownField,
			Duration:         UnknownField,
			DepartureAirport: UnknownField,
			ArrivalAirport:   UnknownField,
		}
	}
	return models.FlightSummary{
		Airline:          orUnknown(opt.Airline),
		DepartureTime:    orUnknown(opt.Outbound.DepartureTime),
		ArrivalTime:      orUnknown(opt.Outbound.ArrivalTime),
		Duration:         formatDuration(opt.TotalDuration),
		Price:            opt.Price,
		BookingURL:       opt.BookingURL,
		Stops:            opt.Outbound.Stops,
		DepartureAirport: orUnknown(opt.Outbound.DepartureAirport),
		ArrivalAirport:   orUnknown(opt.Outbound.ArrivalAirport),
	}
}

// BuildFlightSelection assembles the payload submitted to persistence.
// Budget carries the flight sub-budget, not the trip total; the note is
// omitted entirely when no leg produced one.
func BuildFlightSelection(in SubmitInput) models.FlightSelection {
	sel := models.FlightSelection{
		Origin:       in.Trip.Origin,
		Destination:  in.Trip.Destination,
		OutboundDate: in.Trip.OutboundDate,
		ReturnDate:   in.Trip.ReturnDate,
		Travelers:    in.Trip.Travelers,
		Budget:       in.FlightBudget,
		TotalBudget:  in.TotalBudget,
		Flight:       SummarizeFlight(in.Selection.Outbound),
		Note:         strings.TrimSpace(in.Note),
	}
	if in.Selection.Return != nil {
		ret := SummarizeFlight(in.Selection.Return)
		sel.ReturnFlight = &ret
	}
	if len(in.Warnings) > 0 {
		sel.Metadata = map[string]interface{}{"warnings": in.Warnings}
	}
	return sel
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return UnknownField
	}
	return s
}

// formatDuration renders total minutes as "5h 30m".
func formatDuration(minutes int) string {
	if minutes <= 0 {
		return UnknownField
	}
	h, m := minutes/60, minutes%60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}
