package models

import "time"

// TripContext holds the parameters of one planning session. It seeds every
// downstream search.
type TripContext struct {
	Origin       string   `json:"origin" bson:"origin"`
	Destination  string   `json:"destination" bson:"destination"`
	Travelers    int      `json:"travelers" bson:"travelers"`
	TotalBudget  float64  `json:"totalBudget" bson:"totalBudget"`
	OutboundDate string   `json:"outboundDate" bson:"outboundDate"`
	ReturnDate   string   `json:"returnDate,omitempty" bson:"returnDate,omitempty"`
	Activities   []string `json:"activities,omitempty" bson:"activities,omitempty"`
}

// DestinationSuggestion is one candidate returned by the destination search.
type DestinationSuggestion struct {
	Destination           string   `json:"destination" bson:"destination"`
	Country               string   `json:"country" bson:"country"`
	Description           string   `json:"description" bson:"description"`
	RecommendedActivities []string `json:"recommended_activities" bson:"recommended_activities"`
	ImageURL              string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
	EstimatedBudget       string   `json:"estimated_budget" bson:"estimated_budget"`
}

// RatingEvent is one user judgment on a destination. Events are append-only;
// Seq preserves insertion order for tie-breaking in the preferred view.
type RatingEvent struct {
	Destination           string    `json:"destination" bson:"destination"`
	Country               string    `json:"country" bson:"country"`
	Description           string    `json:"description,omitempty" bson:"description,omitempty"`
	RecommendedActivities []string  `json:"recommended_activities,omitempty" bson:"recommended_activities,omitempty"`
	EstimatedBudget       string    `json:"estimated_budget,omitempty" bson:"estimated_budget,omitempty"`
	Rating                int       `json:"rating" bson:"rating"`
	Seq                   int64     `json:"seq" bson:"seq"`
	Timestamp             time.Time `json:"timestamp" bson:"timestamp"`
}
