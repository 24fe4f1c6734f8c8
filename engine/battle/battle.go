// Package battle runs the turn-based sea combat state machine. A battle
// is entered with a fleet size and a pirate kind and always terminates
// in exactly one of Won, Fled, Lost, or Interrupted. No exceptions are
// used for control flow: fighting with zero guns is an explicit no-op
// round, and an interruption is a distinct terminal state the caller
// resolves with a second encounter.
package battle

import (
	"fmt"

	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// Console is the narrow collaborator the battle needs from the UI:
// report a line, ask for the next order. The engine blocks on Order
// without mutating state, so state stays consistent at every prompt.
type Console interface {
	Report(text string)
	Order(numShips int) types.Order
}

// Result is the outcome of a finished battle. Booty is computed once at
// battle start and credited by the caller only on a win.
type Result struct {
	Outcome types.BattleOutcome
	Booty   int
	Sunk    int
	Thrown  int // cargo units jettisoned
}

// Run fights one battle to termination, mutating damage, guns, cargo
// and hold space on the shared game state as rounds resolve.
func Run(s *types.GameState, defs *state.Defs, rng *rng.RNG, console Console, numShips int, kind types.PirateKind) Result {
	res := Result{
		Booty: bootyValue(s, rng, numShips),
	}

	for numShips > 0 {
		if state.HullStatus(s) <= 0 {
			res.Outcome = types.BattleLost
			return res
		}

		switch console.Order(numShips) {
		case types.OrderFight:
			numShips = fightRound(s, rng, console, numShips, kind, &res)
			if numShips == 0 {
				res.Outcome = types.BattleWon
				return res
			}

		case types.OrderRun:
			escaped := false
			numShips, escaped = runRound(s, rng, console, numShips)
			if escaped {
				res.Outcome = types.BattleFled
				return res
			}

		case types.OrderThrowCargo:
			if throwRound(s, rng, console, numShips, &res) {
				res.Outcome = types.BattleFled
				return res
			}
		}

		if enemyRound(s, defs, rng, console, numShips, kind) {
			res.Outcome = types.BattleInterrupted
			return res
		}
	}

	res.Outcome = types.BattleWon
	return res
}

// bootyValue fixes the prize for sinking the whole fleet, scaling with
// elapsed game time and the fleet's starting size.
func bootyValue(s *types.GameState, rng *rng.RNG, numShips int) int {
	t := (s.Year-1860)*12 + s.Month
	return int(float64(t)/4*1000*float64(numShips) + rng.Float()*1000 + 250)
}

// fightRound fires every gun: each shot rolls 10..39 damage and sinks a
// ship with damage/100 probability. Afterwards part of a larger
// surviving fleet loses its nerve and flees, fewer against a severe
// opponent. Returns the ships still engaged.
func fightRound(s *types.GameState, rng *rng.RNG, console Console, numShips int, kind types.PirateKind, res *Result) int {
	if s.Guns == 0 {
		console.Report("We have no guns, Taipan!!")
		return numShips
	}

	console.Report("Aye, we'll fight 'em, Taipan.")
	sunk := 0
	for i := 0; i < s.Guns && numShips > 0; i++ {
		shot := rng.Intn(30) + 10
		if rng.Float() < float64(shot)/100 {
			numShips--
			sunk++
		}
	}
	res.Sunk += sunk
	if sunk > 0 {
		console.Report(fmt.Sprintf("Sunk %d of the buggers, Taipan!", sunk))
	} else {
		console.Report("Hit 'em, but didn't sink 'em, Taipan!")
	}

	if numShips > 2 {
		pool := numShips / 3 / kind.Severity
		if pool < 1 {
			pool = 1
		}
		fled := int(rng.Float() * float64(pool))
		if fled < 1 {
			fled = 1
		}
		numShips -= fled
		console.Report(fmt.Sprintf("%d ran away, Taipan!", fled))
	}
	return numShips
}

// runRound attempts a clean escape with odds (guns*10+30)/(ships*20).
// A failed attempt still has a 1-in-5 chance of shedding some pursuers.
func runRound(s *types.GameState, rng *rng.RNG, console Console, numShips int) (int, bool) {
	odds := float64(s.Guns*10+30) / float64(numShips*20)
	if rng.Float() < odds {
		console.Report("We got away from 'em, Taipan!")
		return numShips, true
	}

	console.Report("Couldn't lose 'em!")
	if rng.OneIn(5) {
		shed := numShips / 5
		if shed < 1 {
			shed = 1
		}
		numShips -= shed
		if numShips < 1 {
			numShips = 1
		}
		console.Report(fmt.Sprintf("But we escaped from %d of 'em!", shed))
	}
	return numShips, false
}

// throwRound jettisons up to ten units of cargo, cheapest first, to
// lighten the ship, then makes an immediate escape check at improved
// odds (guns*10+50)/(ships*20). With an empty hold there is nothing to
// throw and no check is made.
func throwRound(s *types.GameState, rng *rng.RNG, console Console, numShips int, res *Result) bool {
	thrown := jettison(s, 10)
	if thrown == 0 {
		console.Report("There's nothing in the hold to throw, Taipan!")
		return false
	}
	res.Thrown += thrown
	console.Report(fmt.Sprintf("Threw %d units overboard, Taipan!", thrown))

	odds := float64(s.Guns*10+50) / float64(numShips*20)
	if rng.Float() < odds {
		console.Report("We got away from 'em, Taipan!")
		return true
	}
	console.Report("They're still after us, Taipan!")
	return false
}

// jettison discards up to max cargo units, cheapest commodity first
// (general, then arms, silk, opium), restoring hold space as it goes.
func jettison(s *types.GameState, max int) int {
	thrown := 0
	for i := len(types.Commodities) - 1; i >= 0 && thrown < max; i-- {
		c := types.Commodities[i]
		qty := s.Inventory[c]
		if qty == 0 {
			continue
		}
		if qty > max-thrown {
			qty = max - thrown
		}
		s.Inventory[c] -= qty
		s.CargoSpace += qty
		thrown += qty
	}
	return thrown
}

// enemyRound is the hostile attack phase: a badly damaged ship risks
// losing a gun (the mounting frees its hold units), then hull damage
// lands, clamped at 100. Generic pirates also risk a 5% third-party
// interruption per round; returns true when that fires.
func enemyRound(s *types.GameState, defs *state.Defs, rng *rng.RNG, console Console, numShips int, kind types.PirateKind) bool {
	console.Report("They're firing on us, Taipan!")

	if s.Guns > 0 {
		disabled := false
		if s.Damage >= 75 {
			disabled = rng.Float() < 0.4
		} else if s.Damage >= 50 {
			disabled = rng.Float() < 0.2
		}
		if disabled {
			s.Guns--
			s.CargoSpace += defs.GunHoldSize
			console.Report("The buggers hit a gun, Taipan!!")
		}
	}

	attackers := numShips
	if attackers > 15 {
		attackers = 15
	}
	hit := int((rng.Float()*4 + 1) * float64(attackers) * float64(kind.Severity) * s.EnemyDamage)
	s.Damage += hit
	if s.Damage > 100 {
		s.Damage = 100
	}
	console.Report("We've been hit, Taipan!!")

	if kind == types.GenericPirates && rng.OneIn(defs.InterruptOdds) {
		return true
	}
	return false
}
