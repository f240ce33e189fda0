// Package budget derives sub-budgets from the total trip budget.
package budget

// DefaultDivisor is the share of the total budget handed to flight search
// unless the search service reports a different divisor.
const DefaultDivisor = 2.0

// FlightBudget returns the sub-budget allocated to flight search. A
// non-positive total or divisor yields 0 instead of propagating an invalid
// value downstream.
func FlightBudget(total, divisor float64) float64 {
	if total <= 0 || divisor <= 0 {
		return 0
	}
	return total / divisor
}

// PerPerson returns the per-traveler budget. Traveler counts below 1 are
// treated as 1 so a malformed context can never inflate the budget.
func PerPerson(total float64, travelers int) float64 {
	if total <= 0 {
		return 0
	}
	if travelers < 1 {
		travelers = 1
	}
	return total / float64(travelers)
}
