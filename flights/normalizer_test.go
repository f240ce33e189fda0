package flights

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func legResult(opts ...models.FlightOption) models.LegSearchResult {
	return models.LegSearchResult{
		Status:          StatusOK,
		DropdownFlights: opts,
	}
}

func opt(id string, price float64) models.FlightOption {
	return models.FlightOption{ID: id, Airline: "TestAir", Price: price}
}

func TestNormalizeLegFlagsOverBudget(t *testing.T) {
	state := NormalizeLeg(legResult(opt("f1", 450), opt("f2", 2100), opt("f3", 2000)), 2000)

	require.Len(t, state.Options, 3)
	assert.False(t, state.Options[0].OverBudget)
	assert.True(t, state.Options[1].OverBudget)
	assert.False(t, state.Options[2].OverBudget) // price == budget is within budget
	assert.True(t, state.Open)
	assert.Equal(t, StatusOK, state.Status)
}

func TestNormalizeLegPreservesUpstreamOrder(t *testing.T) {
	state := NormalizeLeg(legResult(opt("b", 900), opt("a", 100), opt("c", 500)), 1000)

	ids := []string{state.Options[0].ID, state.Options[1].ID, state.Options[2].ID}
	assert.Equal(t, []string{"b", "a", "c"}, ids)
}

func TestNormalizeLegEmptyUsesLegMessage(t *testing.T) {
	res := models.LegSearchResult{Status: StatusNoResult, Message: "No outbound flights found"}
	state := NormalizeLeg(res, 2000)

	assert.Equal(t, StatusNoResult, state.Status)
	assert.Equal(t, "No outbound flights found", state.Message)
	assert.Empty(t, state.Options)
	assert.False(t, state.Open)
}

func TestNormalizeLegEmptyFallsBackToDefaultMessage(t *testing.T) {
	state := NormalizeLeg(models.LegSearchResult{Status: StatusOK}, 2000)

	assert.Equal(t, StatusNoResult, state.Status)
	assert.Equal(t, DefaultEmptyMessage, state.Message)
}

func TestNormalizeLegSurfacesNoteAndWarnings(t *testing.T) {
	res := legResult(opt("f1", 100))
	res.Metadata.Note = "All suggested flights currently exceed the provisional budget."
	res.Metadata.Warnings = []string{"airport resolved by fallback"}

	state := NormalizeLeg(res, 50)
	assert.Equal(t, res.Metadata.Note, state.Note)
	assert.Equal(t, res.Metadata.Warnings, state.Warnings)
}

func TestNormalizeLegCarriesCandidateList(t *testing.T) {
	res := legResult(opt("f1", 450))
	res.CandidateFlights = []models.FlightOption{
		opt("c1", 300),
		opt("c2", 2500),
		opt("c3", 900),
	}

	state := NormalizeLeg(res, 2000)

	require.Len(t, state.Candidates, 3)
	assert.Equal(t, []string{"c1", "c2", "c3"},
		[]string{state.Candidates[0].ID, state.Candidates[1].ID, state.Candidates[2].ID})
	assert.False(t, state.Candidates[0].OverBudget)
	assert.True(t, state.Candidates[1].OverBudget)

	// Selection stays scoped to the dropdown list.
	assert.ErrorIs(t, state.Select("c1"), ErrUnknownOption)
}

func TestSelectAndReopen(t *testing.T) {
	state := NormalizeLeg(legResult(opt("f1", 450), opt("f2", 500)), 2000)

	require.NoError(t, state.Select("f2"))
	assert.False(t, state.Open)
	assert.Equal(t, "f2", state.SelectedID)
	require.NotNil(t, state.Selected())
	assert.Equal(t, 500.0, state.Selected().Price)
	assert.Equal(t, 1, state.SelectedIndex())

	// reopening keeps the prior choice until a new one is made
	state.Reopen()
	assert.True(t, state.Open)
	assert.Equal(t, "f2", state.SelectedID)

	require.NoError(t, state.Select("f1"))
	assert.Equal(t, "f1", state.SelectedID)
	assert.Equal(t, 0, state.SelectedIndex())
}

func TestSelectUnknownOption(t *testing.T) {
	state := NormalizeLeg(legResult(opt("f1", 450)), 2000)
	assert.ErrorIs(t, state.Select("nope"), ErrUnknownOption)
	assert.False(t, state.HasSelection())
	assert.Equal(t, -1, state.SelectedIndex())
}

func TestCombinedNote(t *testing.T) {
	out := &LegState{Note: "outbound note"}
	ret := &LegState{Note: "return note"}

	assert.Equal(t, "outbound note\n\nreturn note", CombinedNote(out, ret))
	assert.Equal(t, "outbound note", CombinedNote(out, &LegState{}))
	assert.Equal(t, "", CombinedNote(&LegState{}, nil))
}
