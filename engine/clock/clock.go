// Package clock advances game time and applies periodic interest.
package clock

import (
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// Advance moves the calendar forward one month and applies interest to
// the bank balance and the debt. Called exactly once per completed
// voyage, on arrival, never while still at sea. On a year rollover the
// difficulty scalars ramp up.
func Advance(s *types.GameState, defs *state.Defs) {
	s.Month++
	if s.Month > 12 {
		s.Month = 1
		s.Year++
		s.EnemyHealth += defs.EnemyHealthRamp
		s.EnemyDamage += defs.EnemyDamageRamp
	}

	s.Bank = int(float64(s.Bank) * (1 + defs.BankRate))
	s.Debt = int(float64(s.Debt) * (1 + defs.DebtRate))

	// Li Yuen's protection covers the month it was bought.
	s.LiYuen = false
}
