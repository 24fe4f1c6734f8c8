// Package pricing computes per-port commodity prices with bounded
// randomness, plus the occasional in-port price shock.
package pricing

import (
	"fmt"

	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// SetPortPrices overwrites all four prices for the current port:
// price = floor(portModifier/2 * roll(1..3) * baseMultiplier).
// Called on every arrival; idempotent given the same draws.
func SetPortPrices(s *types.GameState, defs *state.Defs, rng *rng.RNG) {
	for _, c := range types.Commodities {
		mod := defs.PortModifier[c][s.Location]
		s.Prices[c] = int(float64(mod) / 2 * float64(rng.Roll(3)) * float64(defs.BaseMultiplier[c]))
	}
}

// MaybeShock perturbs one commodity's price with 1-in-PriceShockOdds
// probability per stationary in-port turn: a spike multiplies by a
// random factor in [5,10], a crash divides by 5, 50/50 between them.
// Returns a report line for the player, or "" when nothing happened.
func MaybeShock(s *types.GameState, defs *state.Defs, rng *rng.RNG) string {
	if !rng.OneIn(defs.PriceShockOdds) {
		return ""
	}

	c := types.Commodities[rng.Intn(len(types.Commodities))]
	name := types.CommodityNames[c]

	if rng.OneIn(2) {
		factor := 5 + rng.Intn(6)
		s.Prices[c] *= factor
		return fmt.Sprintf("Taipan!! The price of %s has risen to %d!!", name, s.Prices[c])
	}

	s.Prices[c] /= 5
	return fmt.Sprintf("Taipan!! The price of %s has dropped to %d!!", name, s.Prices[c])
}
