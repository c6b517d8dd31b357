// Package settings holds mutable runtime preferences for the backend.
package settings

import "sync/atomic"

// DefaultMonthlyBudget is the monthly budget before anyone sets one.
const DefaultMonthlyBudget = 10000

// Settings holds runtime preferences. It is owned by the router and
// injected into the handlers that need it.
//
// The monthly budget is not persisted, a restart resets it. Concurrent
// writers race with last-writer-wins semantics, each read and replace is
// atomic.
type Settings struct {
	monthlyBudget atomic.Int64
}

// New returns Settings with the default monthly budget.
func New() *Settings {
	s := &Settings{}
	s.monthlyBudget.Store(DefaultMonthlyBudget)
	return s
}

// MonthlyBudget returns the current monthly budget.
func (s *Settings) MonthlyBudget() int64 {
	return s.monthlyBudget.Load()
}

// SetMonthlyBudget replaces the monthly budget. Any value is accepted,
// including zero and negative ones.
func (s *Settings) SetMonthlyBudget(budget int64) {
	s.monthlyBudget.Store(budget)
}
