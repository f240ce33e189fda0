package itinerary

import (
	"testing"
	"time"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInput() SubmitInput {
	return SubmitInput{
		Trip: models.TripContext{
			Origin:       "Berlin",
			Destination:  "Lisbon",
			Travelers:    2,
			TotalBudget:  4000,
			OutboundDate: "2026-09-10",
			ReturnDate:   "2026-09-17",
		},
		Selection: models.Selection{
			Outbound: &models.FlightOption{
				ID:            "out-1",
				Airline:       "TAP",
				Price:         420,
				TotalDuration: 215,
				BookingURL:    "https://example.com/book/out-1",
				Outbound: models.LegInfo{
					DepartureAirport: "BER",
					ArrivalAirport:   "LIS",
					DepartureTime:    "2026-09-10T08:30",
					ArrivalTime:      "2026-09-10T11:05",
					Stops:            1,
				},
			},
			Return: &models.FlightOption{
				ID:      "ret-1",
				Airline: "TAP",
				Price:   395,
				Outbound: models.LegInfo{
					DepartureAirport: "LIS",
					ArrivalAirport:   "BER",
				},
			},
		},
		FlightBudget: 2000,
		TotalBudget:  4000,
	}
}

func TestBuildFlightSelectionCarriesSubBudget(t *testing.T) {
	sel := BuildFlightSelection(sampleInput())

	assert.Equal(t, 2000.0, sel.Budget)
	assert.Equal(t, 4000.0, sel.TotalBudget)
	assert.Equal(t, "Berlin", sel.Origin)
	assert.Equal(t, "Lisbon", sel.Destination)
	assert.Equal(t, 2, sel.Travelers)
}

func TestBuildFlightSelectionSummaries(t *testing.T) {
	sel := BuildFlightSelection(sampleInput())

	assert.Equal(t, "TAP", sel.Flight.Airline)
	assert.Equal(t, "3h 35m", sel.Flight.Duration)
	assert.Equal(t, "BER", sel.Flight.DepartureAirport)
	assert.Equal(t, 1, sel.Flight.Stops)

	require.NotNil(t, sel.ReturnFlight)
	assert.Equal(t, "Unknown", sel.ReturnFlight.Duration)
	assert.Equal(t, "Unknown", sel.ReturnFlight.DepartureTime)
}

func TestBuildFlightSelectionOmitsEmptyNote(t *testing.T) {
	in := sampleInput()
	in.Note = "   "
	sel := BuildFlightSelection(in)
	assert.Empty(t, sel.Note)

	in.Note = "Prices are estimates."
	sel = BuildFlightSelection(in)
	assert.Equal(t, "Prices are estimates.", sel.Note)
}

func TestBuildFlightSelectionOneWay(t *testing.T) {
	in := sampleInput()
	in.Selection.Return = nil
	in.Trip.ReturnDate = ""

	sel := BuildFlightSelection(in)
	assert.Nil(t, sel.ReturnFlight)
	assert.Empty(t, sel.ReturnDate)
}

func TestSummarizeFlightDefaultsUnknown(t *testing.T) {
	sum := SummarizeFlight(&models.FlightOption{ID: "x", Price: 100})

	assert.Equal(t, "Unknown", sum.Airline)
	assert.Equal(t, "Unknown", sum.DepartureTime)
	assert.Equal(t, "Unknown", sum.ArrivalTime)
	assert.Equal(t, "Unknown", sum.Duration)
	assert.Equal(t, "Unknown", sum.DepartureAirport)
	assert.Equal(t, "Unknown", sum.ArrivalAirport)
	assert.Equal(t, 100.0, sum.Price)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45m", formatDuration(45))
	assert.Equal(t, "2h", formatDuration(120))
	assert.Equal(t, "5h 30m", formatDuration(330))
	assert.Equal(t, "Unknown", formatDuration(0))
}

func TestArtifactFilename(t *testing.T) {
	at := time.Date(2026, 9, 10, 14, 30, 5, 0, time.UTC)

	name := ArtifactFilename("New York", "São Paulo", at)
	assert.Equal(t, "flight_NEWYORK_SÃOPAULO_20260910_143005.pdf", name)

	name = ArtifactFilename("!!!", "", at)
	assert.Equal(t, "flight_ORIGIN_DEST_20260910_143005.pdf", name)
}
