package models

// HotelOffer is one categorized accommodation offer inside a scenario.
type HotelOffer struct {
	ID            string  `json:"id" bson:"id"`
	Name          string  `json:"name" bson:"name"`
	Category      string  `json:"category" bson:"category"` // cheapest | highest_rated | most_expensive
	PricePerNight float64 `json:"price_per_night" bson:"price_per_night"`
	TotalPrice    float64 `json:"total_price,omitempty" bson:"total_price,omitempty"`
	Rating        float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty" bson:"reviews,omitempty"`
	Link          string  `json:"link,omitempty" bson:"link,omitempty"`
}

// HotelScenario is one precomputed pricing branch. Exactly one scenario is
// active at a time, resolved from the chosen outbound flight.
type HotelScenario struct {
	Key    string       `json:"key" bson:"key"` // "A" | "B"
	Label  string       `json:"label,omitempty" bson:"label,omitempty"`
	Hotels []HotelOffer `json:"hotels" bson:"hotels"`
}

// ActivityOption is one candidate activity, immutable once retrieved.
type ActivityOption struct {
	Name              string  `json:"name" bson:"name"`
	Description       string  `json:"description" bson:"description"`
	Category          string  `json:"category" bson:"category"`
	EstimatedDuration string  `json:"estimated_duration,omitempty" bson:"estimated_duration,omitempty"`
	CostPerPerson     float64 `json:"cost_per_person,omitempty" bson:"cost_per_person,omitempty"`
	URL               string  `json:"url,omitempty" bson:"url,omitempty"`
}

// PlanResponse is what the itinerary-planning collaborator returns: the
// activity list plus both hotel scenarios.
type PlanResponse struct {
	Status     string           `json:"status"`
	Errors     []string         `json:"errors,omitempty"`
	Activities []ActivityOption `json:"activities"`
	ScenarioA  HotelScenario    `json:"scenarioA"`
	ScenarioB  HotelScenario    `json:"scenarioB"`
}
