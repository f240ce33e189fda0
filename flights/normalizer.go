// Package flights turns raw per-leg search results into selectable,
// UI-ready option state.
package flights

import (
	"errors"
	"strings"

	"voyago/models"
)

const (
	LegOutbound = "outbound"
	LegReturn   = "return"
)

const (
	StatusOK       = "success"
	StatusNoResult = "no_results"
)

// DefaultEmptyMessage is shown when a leg came back empty without its own
// explanation.
const DefaultEmptyMessage = "No flights found for the supplied cities and dates."

var ErrUnknownOption = errors.New("flight option not in candidate list")

// LegState is the normalized, selectable state for one leg. Option order is
// the upstream relevance ranking and is never changed here.
type LegState struct {
	Options    []models.FlightOption `json:"options"`
	Candidates []models.FlightOption `json:"candidateFlights,omitempty"`
	Status     string                `json:"status"`
	Message    string                `json:"message,omitempty"`
	Note       string                `json:"note,omitempty"`
	Warnings   []string              `json:"warnings,omitempty"`
	Metadata   models.FlightMetadata `json:"metadata"`
	SelectedID string                `json:"selectedId,omitempty"`
	Open       bool                  `json:"open"`
}

// NormalizeLeg builds the selectable state for a leg. Each option's
// over-budget flag is recomputed against the allocated sub-budget; an empty
// result surfaces the leg's message (or the generic default) instead of a
// selectable list.
func NormalizeLeg(res models.LegSearchResult, subBudget float64) *LegState {
	state := &LegState{
		Status:   res.Status,
		Note:     res.Metadata.Note,
		Warnings: res.Metadata.Warnings,
		Metadata: res.Metadata,
	}

	if len(res.DropdownFlights) == 0 {
		state.Status = StatusNoResult
		state.Message = res.Message
		if strings.TrimSpace(state.Message) == "" {
			state.Message = DefaultEmptyMessage
		}
		state.Options = []models.FlightOption{}
		return state
	}

	state.Options = make([]models.FlightOption, len(res.DropdownFlights))
	copy(state.Options, res.DropdownFlights)
	for i := range state.Options {
		state.Options[i].OverBudget = state.Options[i].Price > subBudget
	}

	// The richer candidate list rides along for the UI, same budget flags.
	if len(res.CandidateFlights) > 0 {
		state.Candidates = make([]models.FlightOption, len(res.CandidateFlights))
		copy(state.Candidates, res.CandidateFlights)
		for i := range state.Candidates {
			state.Candidates[i].OverBudget = state.Candidates[i].Price > subBudget
		}
	}

	state.Open = true
	return state
}

// Select records the chosen option and closes the presentation. At most one
// option is selected per leg.
func (ls *LegState) Select(optionID string) error {
	for _, opt := range ls.Options {
		if opt.ID == optionID {
			ls.SelectedID = optionID
			ls.Open = false
			return nil
		}
	}
	return ErrUnknownOption
}

// Reopen re-exposes the option list for a change of mind. The prior
// selection stands until a new one is made.
func (ls *LegState) Reopen() {
	if len(ls.Options) > 0 {
		ls.Open = true
	}
}

// Selected returns the chosen option, or nil when none is selected.
func (ls *LegState) Selected() *models.FlightOption {
	if ls.SelectedID == "" {
		return nil
	}
	for i := range ls.Options {
		if ls.Options[i].ID == ls.SelectedID {
			return &ls.Options[i]
		}
	}
	return nil
}

func (ls *LegState) HasSelection() bool {
	return ls.Selected() != nil
}

// SelectedIndex returns the position of the chosen option in the candidate
// list, or -1.
func (ls *LegState) SelectedIndex() int {
	for i := range ls.Options {
		if ls.Options[i].ID == ls.SelectedID && ls.SelectedID != "" {
			return i
		}
	}
	return -1
}

// CombinedNote joins the advisory notes of the given legs with a blank
// line. Returns "" when no leg produced a note.
func CombinedNote(legs ...*LegState) string {
	var parts []string
	for _, leg := range legs {
		if leg == nil {
			continue
		}
		if note := strings.TrimSpace(leg.Note); note != "" {
			parts = append(parts, note)
		}
	}
	return strings.Join(parts, "\n\n")
}
