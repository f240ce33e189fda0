package models

// LegInfo describes one directional segment of a flight option.
type LegInfo struct {
	DepartureAirport string   `json:"departureAirport" bson:"departureAirport"`
	ArrivalAirport   string   `json:"arrivalAirport" bson:"arrivalAirport"`
	DepartureTime    string   `json:"departureTime" bson:"departureTime"`
	ArrivalTime      string   `json:"arrivalTime" bson:"arrivalTime"`
	Stops            int      `json:"stops" bson:"stops"`
	StopsLabel       string   `json:"stopsLabel,omitempty" bson:"stopsLabel,omitempty"`
	Route            []string `json:"route,omitempty" bson:"route,omitempty"`
	RouteDisplay     string   `json:"routeDisplay,omitempty" bson:"routeDisplay,omitempty"`
}

// FlightOption is one bookable offer inside a leg's candidate list.
// ScenarioKey names the hotel pricing branch that applies when this option
// is the chosen outbound; the search service may supply it, otherwise the
// planner assigns it (first listed option -> "A", the rest -> "B").
type FlightOption struct {
	ID            string   `json:"id" bson:"id"`
	Airline       string   `json:"airline" bson:"airline"`
	Price         float64  `json:"price" bson:"price"`
	PriceDisplay  string   `json:"priceDisplay,omitempty" bson:"priceDisplay,omitempty"`
	OverBudget    bool     `json:"overBudget" bson:"overBudget"`
	Currency      string   `json:"currency,omitempty" bson:"currency,omitempty"`
	TotalDuration int      `json:"totalDuration,omitempty" bson:"totalDuration,omitempty"`
	Outbound      LegInfo  `json:"outbound" bson:"outbound"`
	Return        *LegInfo `json:"return,omitempty" bson:"return,omitempty"`
	BookingURL    string   `json:"bookingUrl,omitempty" bson:"bookingUrl,omitempty"`
	ScenarioKey   string   `json:"scenarioKey,omitempty" bson:"scenarioKey,omitempty"`
}

// RouteAttempt is one entry of the search service's attempt log.
type RouteAttempt struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Stops        int    `json:"stops"`
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	FlightsAdded int    `json:"flights_added"`
}

type SearchDates struct {
	Outbound string `json:"outbound"`
	Return   string `json:"return,omitempty"`
}

// FlightMetadata carries the advisory material attached to one leg result.
type FlightMetadata struct {
	Note             string         `json:"note,omitempty"`
	Warnings         []string       `json:"warnings,omitempty"`
	BudgetDivisor    float64        `json:"budgetDivisor,omitempty"`
	BudgetForFlights float64        `json:"budgetForFlightFinder,omitempty"`
	Travellers       int            `json:"travellers,omitempty"`
	TripType         string         `json:"tripType,omitempty"`
	CollectedFlights int            `json:"collectedFlights,omitempty"`
	AttemptedRoutes  []RouteAttempt `json:"attemptedRoutes,omitempty"`
	SearchDates      *SearchDates   `json:"searchDates,omitempty"`
}

// LegSearchResult is the search outcome for one leg. Status "no_results"
// implies an empty dropdown list and a non-empty message.
type LegSearchResult struct {
	Status           string         `json:"status"`
	Message          string         `json:"message,omitempty"`
	DropdownFlights  []FlightOption `json:"dropdownFlights"`
	CandidateFlights []FlightOption `json:"candidateFlights,omitempty"`
	Metadata         FlightMetadata `json:"metadata"`
}

// FlightSearchResponse is the full round-trip search response.
type FlightSearchResponse struct {
	Status           string `json:"status"`
	Error            string `json:"error,omitempty"`
	NormalizedCities struct {
		Current     string `json:"current"`
		Destination string `json:"destination"`
	} `json:"normalizedCities"`
	Budget struct {
		TotalBudget      float64 `json:"totalBudget"`
		BudgetDivisor    float64 `json:"budgetDivisor"`
		BudgetForFlights float64 `json:"budgetForFlightFinder"`
	} `json:"budget"`
	Travellers   int         `json:"travellers"`
	Dates        SearchDates `json:"dates"`
	FlightFinder struct {
		Outbound LegSearchResult `json:"outbound"`
		Return   LegSearchResult `json:"return"`
	} `json:"flightFinder"`
}
