package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightBudget(t *testing.T) {
	assert.Equal(t, 2000.0, FlightBudget(4000, DefaultDivisor))
	assert.Equal(t, 1000.0, FlightBudget(4000, 4))
	assert.Equal(t, 0.0, FlightBudget(0, DefaultDivisor))
	assert.Equal(t, 0.0, FlightBudget(-100, DefaultDivisor))
	assert.Equal(t, 0.0, FlightBudget(4000, 0))
	assert.Equal(t, 0.0, FlightBudget(4000, -1))
}

func TestPerPerson(t *testing.T) {
	assert.Equal(t, 2000.0, PerPerson(4000, 2))
	assert.Equal(t, 4000.0, PerPerson(4000, 1))
	assert.Equal(t, 0.0, PerPerson(0, 2))
	assert.Equal(t, 0.0, PerPerson(-50, 2))

	// traveler counts below 1 never inflate the budget
	assert.Equal(t, 4000.0, PerPerson(4000, 0))
	assert.Equal(t, 4000.0, PerPerson(4000, -3))
}
