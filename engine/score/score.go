// Package score computes the net-worth score and evaluates the end
// conditions checked every turn.
package score

import (
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// Score returns floor(netWorth / 100 / monthsPlayed), monthsPlayed
// clamped to at least 1. Holding the date fixed, score is
// non-decreasing in net worth.
func Score(s *types.GameState) int {
	return floorDiv(state.NetWorth(s), 100*state.MonthsPlayed(s))
}

// floorDiv divides rounding toward negative infinity. Go's integer
// division truncates toward zero, which would round an indebted
// player's negative net worth the wrong way.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// Check evaluates the involuntary end conditions in order: bankruptcy,
// hull loss, a refused bailout, and the fixed time horizon. Returns
// EndNone while the game may continue.
func Check(s *types.GameState, defs *state.Defs) types.EndReason {
	if s.Cash == 0 && s.Bank == 0 && s.Debt > 0 {
		return types.EndBankrupt
	}
	if s.Damage >= 100 {
		return types.EndShipLost
	}
	if s.WuRefused {
		return types.EndRefusedBailout
	}
	if state.MonthsPlayed(s) >= defs.MaxMonths {
		return types.EndTimeUp
	}
	return types.EndNone
}

// CanRetire reports whether voluntary retirement is on the table.
func CanRetire(s *types.GameState, defs *state.Defs) bool {
	return state.NetWorth(s) >= defs.RetireThreshold
}
