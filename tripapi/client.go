// Package tripapi is the HTTP client for the remote trip-planning agents:
// destination search, flight search, itinerary planning and itinerary
// creation.
package tripapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"voyago/models"
)

const statusSuccess = "success"

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 90 * time.Second},
	}
}

// DestinationSearchRequest mirrors the phase-1 search contract.
type DestinationSearchRequest struct {
	Location   string   `json:"location"`
	Activities []string `json:"activities"`
	Budget     float64  `json:"budget"`
	DateMode   string   `json:"dateMode"` // "number_of_days" | "date_range"
	NumDays    int      `json:"numDays,omitempty"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
}

type DestinationSearchResponse struct {
	Status      string                         `json:"status"`
	Error       string                         `json:"error,omitempty"`
	Suggestions []models.DestinationSuggestion `json:"preliminary_location_suggestions"`
}

// FlightSearchRequest mirrors the phase-2 flight supervisor contract. The
// service derives the flight sub-budget from the total and reports the
// divisor it used in the response.
type FlightSearchRequest struct {
	CurrentCity     string  `json:"currentCity"`
	DestinationCity string  `json:"destinationCity"`
	TotalBudget     float64 `json:"totalBudget"`
	Travellers      int     `json:"travellers"`
	OutboundDate    string  `json:"outboundDate"`
	ReturnDate      string  `json:"returnDate,omitempty"`
}

// PlanRequest asks for activities plus both hotel scenarios.
type PlanRequest struct {
	Destination     string   `json:"destination"`
	Country         string   `json:"country,omitempty"`
	Origin          string   `json:"origin"`
	BudgetPerPerson float64  `json:"budget_per_person"`
	NumDays         int      `json:"numDays"`
	Travelers       int      `json:"travelers"`
	Activities      []string `json:"activities,omitempty"`
}

// CreateRequest carries the final selections into itinerary generation.
type CreateRequest struct {
	Destination        string                  `json:"destination"`
	TripStartDate      string                  `json:"trip_start_date"`
	TripEndDate        string                  `json:"trip_end_date,omitempty"`
	NumTravelers       int                     `json:"num_travelers"`
	BudgetPerPerson    float64                 `json:"budget_per_person"`
	SelectedOutbound   *models.FlightOption    `json:"selected_outbound,omitempty"`
	SelectedReturn     *models.FlightOption    `json:"selected_return,omitempty"`
	SelectedHotel      *models.HotelOffer      `json:"selected_hotel,omitempty"`
	SelectedActivities []models.ActivityOption `json:"selected_activities"`
}

func (c *Client) SearchDestinations(ctx context.Context, req DestinationSearchRequest) (DestinationSearchResponse, error) {
	var out DestinationSearchResponse
	if err := c.post(ctx, "/phase1/search", req, &out); err != nil {
		return out, err
	}
	if out.Status != "" && out.Status != statusSuccess {
		return out, serviceError("destination search", out.Status, out.Error)
	}
	return out, nil
}

func (c *Client) SearchFlights(ctx context.Context, req FlightSearchRequest) (models.FlightSearchResponse, error) {
	var out models.FlightSearchResponse
	if err := c.post(ctx, "/phase2/flights", req, &out); err != nil {
		return out, err
	}
	if out.Status != statusSuccess {
		return out, serviceError("flight search", out.Status, out.Error)
	}
	return out, nil
}

func (c *Client) PlanItinerary(ctx context.Context, req PlanRequest) (models.PlanResponse, error) {
	var out models.PlanResponse
	if err := c.post(ctx, "/phase2/plan", req, &out); err != nil {
		return out, err
	}
	if out.Status != "" && out.Status != statusSuccess {
		msg := ""
		if len(out.Errors) > 0 {
			msg = strings.Join(out.Errors, "; ")
		}
		return out, serviceError("itinerary planning", out.Status, msg)
	}
	return out, nil
}

func (c *Client) CreateItinerary(ctx context.Context, req CreateRequest) (models.CreateItineraryResponse, error) {
	var out models.CreateItineraryResponse
	if err := c.post(ctx, "/phase3/create-itinerary", req, &out); err != nil {
		return out, err
	}
	if out.Status != "" && out.Status != statusSuccess {
		return out, serviceError("itinerary creation", out.Status, out.Error)
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s returned status %d: %s", path, resp.StatusCode, bodyDetail(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// bodyDetail pulls the error/detail field out of a failure body, falling
// back to a trimmed raw snippet.
func bodyDetail(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))
	var parsed struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Detail != "" {
			return parsed.Detail
		}
	}
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "no detail provided"
	}
	return s
}

func serviceError(op, status, detail string) error {
	if detail == "" {
		detail = "status " + status
	}
	return fmt.Errorf("%s failed: %s", op, detail)
}
