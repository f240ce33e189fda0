package hotels

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignScenarioKeysFirstOptionIsA(t *testing.T) {
	opts := []models.FlightOption{{ID: "f1"}, {ID: "f2"}, {ID: "f3"}}
	AssignScenarioKeys(opts)

	assert.Equal(t, ScenarioA, opts[0].ScenarioKey)
	assert.Equal(t, ScenarioB, opts[1].ScenarioKey)
	assert.Equal(t, ScenarioB, opts[2].ScenarioKey)
}

func TestAssignScenarioKeysRespectsUpstreamKeys(t *testing.T) {
	opts := []models.FlightOption{
		{ID: "f1", ScenarioKey: ScenarioB},
		{ID: "f2"},
	}
	AssignScenarioKeys(opts)

	assert.Equal(t, ScenarioB, opts[0].ScenarioKey)
	assert.Equal(t, ScenarioB, opts[1].ScenarioKey)
}

func TestResolveByIdentity(t *testing.T) {
	a := models.HotelScenario{Key: ScenarioA}
	b := models.HotelScenario{Key: ScenarioB}

	sc, err := Resolve(&models.FlightOption{ID: "f1", ScenarioKey: ScenarioA}, a, b)
	require.NoError(t, err)
	assert.Equal(t, ScenarioA, sc.Key)

	sc, err = Resolve(&models.FlightOption{ID: "f9", ScenarioKey: ScenarioB}, a, b)
	require.NoError(t, err)
	assert.Equal(t, ScenarioB, sc.Key)
}

func TestResolveErrors(t *testing.T) {
	a := models.HotelScenario{Key: ScenarioA}
	b := models.HotelScenario{Key: ScenarioB}

	_, err := Resolve(nil, a, b)
	assert.ErrorIs(t, err, ErrNoOutboundSelection)

	_, err = Resolve(&models.FlightOption{ID: "f1"}, a, b)
	assert.ErrorIs(t, err, ErrUnresolvedScenario)
}

func TestEnsureOfferIDsAndFindOffer(t *testing.T) {
	sc := models.HotelScenario{
		Key: ScenarioA,
		Hotels: []models.HotelOffer{
			{Name: "Cheap Inn", Category: "cheapest"},
			{ID: "custom", Name: "Grand", Category: "most_expensive"},
		},
	}
	EnsureOfferIDs(&sc)

	assert.Equal(t, "a-0", sc.Hotels[0].ID)
	assert.Equal(t, "custom", sc.Hotels[1].ID)

	offer, err := FindOffer(sc, "custom")
	require.NoError(t, err)
	assert.Equal(t, "Grand", offer.Name)

	_, err = FindOffer(sc, "missing")
	assert.ErrorIs(t, err, ErrUnknownOffer)
}
