package models

import "time"

// Selection is the user's in-progress choices for the current destination.
// Outbound/Return/Hotel are each 0-or-1; activities are 0..N.
type Selection struct {
	Outbound   *FlightOption    `json:"outbound,omitempty" bson:"outbound,omitempty"`
	Return     *FlightOption    `json:"return,omitempty" bson:"return,omitempty"`
	Hotel      *HotelOffer      `json:"hotel,omitempty" bson:"hotel,omitempty"`
	Activities []ActivityOption `json:"activities,omitempty" bson:"activities,omitempty"`
}

// FlightSummary is the persisted per-leg summary. Optional fields are
// defaulted to "Unknown" rather than left absent.
type FlightSummary struct {
	Airline          string  `json:"airline" bson:"airline"`
	DepartureTime    string  `json:"departure_time" bson:"departure_time"`
	ArrivalTime      string  `json:"arrival_time" bson:"arrival_time"`
	Duration         string  `json:"duration" bson:"duration"`
	Price            float64 `json:"price" bson:"price"`
	BookingURL       string  `json:"booking_url" bson:"booking_url"`
	Stops            int     `json:"stops" bson:"stops"`
	DepartureAirport string  `json:"departure_airport" bson:"departure_airport"`
	ArrivalAirport   string  `json:"arrival_airport" bson:"arrival_airport"`
}

// FlightSelection is the payload submitted to the persistence collaborator.
type FlightSelection struct {
	Origin       string                 `json:"origin" bson:"origin"`
	Destination  string                 `json:"destination" bson:"destination"`
	OutboundDate string                 `json:"outbound_date" bson:"outbound_date"`
	ReturnDate   string                 `json:"return_date,omitempty" bson:"return_date,omitempty"`
	Travelers    int                    `json:"travelers" bson:"travelers"`
	Budget       float64                `json:"budget" bson:"budget"` // flight-search sub-budget
	TotalBudget  float64                `json:"total_budget,omitempty" bson:"total_budget,omitempty"`
	Flight       FlightSummary          `json:"flight" bson:"flight"`
	ReturnFlight *FlightSummary         `json:"return_flight,omitempty" bson:"return_flight,omitempty"`
	Note         string                 `json:"note,omitempty" bson:"note,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// ArtifactRef points at a generated downloadable document.
type ArtifactRef struct {
	File        string `json:"file" bson:"file"`
	DownloadURL string `json:"download_url" bson:"download_url"`
}

// DayPlan is one day of the generated itinerary.
type DayPlan struct {
	DayNumber  int      `json:"day_number" bson:"day_number"`
	Date       string   `json:"date" bson:"date"`
	Activities []string `json:"activities" bson:"activities"`
	Notes      string   `json:"notes,omitempty" bson:"notes,omitempty"`
}

type CostBreakdown struct {
	Flights    float64 `json:"flights" bson:"flights"`
	Hotel      float64 `json:"hotel" bson:"hotel"`
	Activities float64 `json:"activities" bson:"activities"`
	Total      float64 `json:"total" bson:"total"`
}

// CreateItineraryResponse is the finalized itinerary returned by the
// itinerary-generation collaborator.
type CreateItineraryResponse struct {
	Status     string        `json:"status"`
	Error      string        `json:"error,omitempty"`
	DailyPlans []DayPlan     `json:"daily_plans"`
	Costs      CostBreakdown `json:"cost_breakdown"`
	CreatedAt  string        `json:"created_at,omitempty"`
}

// SavedItinerary is a finalized, persisted trip plan. Immutable once
// created; appended to the ordered itinerary collection.
type SavedItinerary struct {
	ItineraryID string           `json:"itineraryid" bson:"itineraryid"`
	Destination string           `json:"destination" bson:"destination"`
	Country     string           `json:"country,omitempty" bson:"country,omitempty"`
	StartDate   string           `json:"start_date" bson:"start_date"`
	EndDate     string           `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Travelers   int              `json:"travelers" bson:"travelers"`
	Outbound    FlightSummary    `json:"outbound" bson:"outbound"`
	Return      *FlightSummary   `json:"return,omitempty" bson:"return,omitempty"`
	Hotel       *HotelOffer      `json:"hotel,omitempty" bson:"hotel,omitempty"`
	Activities  []ActivityOption `json:"activities" bson:"activities"`
	DailyPlans  []DayPlan        `json:"daily_plans,omitempty" bson:"daily_plans,omitempty"`
	Costs       CostBreakdown    `json:"cost_breakdown" bson:"cost_breakdown"`
	CreatedAt   time.Time        `json:"created_at" bson:"created_at"`
	Artifact    *ArtifactRef     `json:"artifact,omitempty" bson:"artifact,omitempty"`
}
