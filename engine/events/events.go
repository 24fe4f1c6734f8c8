// Package events implements the random event generator and the outcome
// applier. Generation is split by regime: arrival checks, stationary
// port-turn checks, and at-sea encounter checks. Each regime evaluates
// its candidates in fixed priority order and short-circuits on the
// first match, so at most one event fires per call. The ordering
// decides which hazards can co-occur and is deliberate.
package events

import (
	"fmt"

	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// gameTime returns elapsed months since the start of 1860.
func gameTime(s *types.GameState) int {
	return (s.Year-1860)*12 + s.Month
}

// ArrivalEvent evaluates the high-priority checks run once on arrival
// at a port: the debt collector's warning, Wu's bailout for a destitute
// player, and McHenry's repair offer in the home port.
func ArrivalEvent(s *types.GameState, defs *state.Defs, rng *rng.RNG) *types.GameEvent {
	if s.Debt >= defs.WuWarnDebt && !s.WuWarning {
		return &types.GameEvent{
			Type: types.EventWuWarning,
			Description: "Elder Brother Wu has sent word, Taipan: " +
				"settle your debt soon, or face his displeasure.",
		}
	}

	if state.Destitute(s) {
		return BailoutOffer(s, rng)
	}

	if s.Damage > 0 && s.Location == types.HomePort {
		t := gameTime(s)
		rate := int((float64(60*(t+3))/4*rng.Float() + float64(25*(t+3))/4) *
			float64(s.Capacity) / 50)
		if rate < 1 {
			rate = 1
		}
		full := rate * s.Damage
		return &types.GameEvent{
			Type: types.EventRepairOffer,
			Description: fmt.Sprintf(
				"McHenry says full repairs will cost %d, Taipan. "+
					"Your ship has %d%% damage.", full, s.Damage),
			RequiresInput: true,
			Data:          types.EventData{RepairRate: rate, RepairFull: full},
		}
	}

	return nil
}

// BailoutOffer rolls Wu's emergency loan for a fully destitute player.
// The repayment figure worsens with every bailout already taken.
func BailoutOffer(s *types.GameState, rng *rng.RNG) *types.GameEvent {
	loan := rng.Intn(1000) + 500
	repay := rng.Intn(2000*(s.WuBailout+1)) + 1500
	return &types.GameEvent{
		Type: types.EventWuBailout,
		Description: fmt.Sprintf(
			"Elder Brother is aware of your plight, Taipan. "+
				"He is willing to loan you an additional %d "+
				"if you will pay back %d.", loan, repay),
		RequiresInput: true,
		Data:          types.EventData{LoanAmount: loan, RepayAmount: repay},
	}
}

// PortTurnEvent evaluates the lower-priority checks run on ordinary
// stationary turns in port: Li Yuen's extortion demand, a ship or gun
// sale offer, an opium seizure, a warehouse raid, and a mugging.
func PortTurnEvent(s *types.GameState, defs *state.Defs, rng *rng.RNG) *types.GameEvent {
	if s.Location == types.HomePort && s.Cash > 0 && !s.LiYuen {
		amount := extortionAmount(s, rng)
		return &types.GameEvent{
			Type: types.EventExtortion,
			Description: fmt.Sprintf(
				"Li Yuen asks %d in donation to the temple of "+
					"Tin Hau, the Sea Goddess, Taipan.", amount),
			RequiresInput: true,
			Data:          types.EventData{Extortion: amount},
		}
	}

	if rng.OneIn(defs.SaleOfferOdds) {
		if ev := saleOffer(s, defs, rng); ev != nil {
			return ev
		}
	}

	if s.Location != types.HomePort && s.Inventory[types.Opium] > 0 &&
		rng.OneIn(defs.SeizureOdds) {
		fine := 100 * s.Inventory[types.Opium]
		return &types.GameEvent{
			Type: types.EventSeizure,
			Description: fmt.Sprintf(
				"Bad joss!! The local authorities have seized your opium "+
					"cargo and have also fined you %d, Taipan!", fine),
			Data: types.EventData{MoneyLoss: fine},
		}
	}

	if s.Location == types.HomePort &&
		(s.Warehouse[types.Opium] > 0 || s.Warehouse[types.Arms] > 0) &&
		rng.OneIn(defs.RaidOdds) {
		return &types.GameEvent{
			Type:        types.EventWarehouseRaid,
			Description: "Messenger reports large theft from your warehouse, Taipan.",
		}
	}

	if s.Cash > defs.MuggingCashFloor && rng.OneIn(defs.MuggingOdds) {
		loss := int(float64(s.Cash) / 1.4 * rng.Float())
		return &types.GameEvent{
			Type: types.EventMugging,
			Description: fmt.Sprintf(
				"Bad joss!! You've been beaten up and robbed "+
					"of %d in cash, Taipan!!", loss),
			Data: types.EventData{MoneyLoss: loss},
		}
	}

	return nil
}

// extortionAmount scales Li Yuen's demand with elapsed time; in the
// first year it is a fraction of cash in hand instead.
func extortionAmount(s *types.GameState, rng *rng.RNG) int {
	t := gameTime(s)
	if t > 12 {
		base := 1000 * t
		return int(rng.Float()*float64(2*base)) + base
	}
	return int(float64(s.Cash) / 1.8 * rng.Float())
}

// saleOffer rolls a ship offer or a gun offer, 50/50. Offers the player
// cannot afford (or, for guns, cannot stow) never fire.
func saleOffer(s *types.GameState, defs *state.Defs, rng *rng.RNG) *types.GameEvent {
	t := gameTime(s)
	if rng.OneIn(2) {
		price := int(rng.Float()*float64(1000*(t+5)/6)*float64(s.Capacity)/50) + 1000
		if s.Cash < price {
			return nil
		}
		return &types.GameEvent{
			Type: types.EventShipOffer,
			Description: fmt.Sprintf(
				"Do you wish to trade in your %s ship for one "+
					"with 50 more capacity at a price of %d, Taipan?",
				holdCondition(s), price),
			RequiresInput: true,
			Data: types.EventData{
				ShipPrice:   price,
				NewCapacity: s.Capacity + 50,
			},
		}
	}

	price := int(rng.Float()*float64(1000*(t+5)/6)) + 500
	if s.Cash < price || s.CargoSpace < defs.GunHoldSize {
		return nil
	}
	return &types.GameEvent{
		Type: types.EventGunOffer,
		Description: fmt.Sprintf(
			"Do you wish to buy a ship's gun for %d, Taipan?", price),
		RequiresInput: true,
		Data:          types.EventData{GunPrice: price, NumGuns: 1},
	}
}

func holdCondition(s *types.GameState) string {
	if s.Damage > 0 {
		return "damaged"
	}
	return "fine"
}

// SeaPirates rolls the per-leg hostile encounter: 1-in-BattleOdds. The
// fleet size scales with hold capacity and guns carried.
func SeaPirates(s *types.GameState, rng *rng.RNG) *types.GameEvent {
	if !rng.OneIn(s.BattleOdds) {
		return nil
	}
	n := s.Capacity/10 + s.Guns
	if n < 1 {
		n = 1
	}
	ships := rng.Intn(n) + 1
	if ships > 9999 {
		ships = 9999
	}
	return &types.GameEvent{
		Type:          types.EventPirates,
		Description:   fmt.Sprintf("%d hostile ships approaching, Taipan!", ships),
		RequiresInput: true,
		Data:          types.EventData{NumShips: ships},
	}
}

// Storm rolls the per-leg weather hazard. The damage, a possible
// critical moment, and a possible diversion to another port are all
// fixed at generation; the applier lands them.
func Storm(s *types.GameState, defs *state.Defs, rng *rng.RNG) *types.GameEvent {
	if !rng.OneIn(defs.StormOdds) {
		return nil
	}

	ev := &types.GameEvent{
		Type:        types.EventStorm,
		Description: "Storm, Taipan!!",
		Data: types.EventData{
			StormDamage: rng.Intn(31) + 10,
			OffCourse:   types.PortNone,
		},
	}
	if rng.OneIn(defs.StormSinkOdds) {
		ev.Data.StormCritical = true
	}
	if rng.OneIn(defs.StormOffCourseOdds) {
		dest := s.NextDestination
		for dest == s.NextDestination {
			dest = types.Ports[rng.Intn(len(types.Ports))]
		}
		ev.Data.OffCourse = dest
	}
	return ev
}

// SeaLiYuen rolls the independent pirate-lord check, much rarer while
// protection is active: 1-in-(base + factor) instead of 1-in-base.
// While protected the fleet lets the ship pass (NumShips == 0).
func SeaLiYuen(s *types.GameState, defs *state.Defs, rng *rng.RNG) *types.GameEvent {
	odds := defs.LiYuenBaseOdds
	if s.LiYuen {
		odds += defs.LiYuenProtectedFactor
	}
	if !rng.OneIn(odds) {
		return nil
	}

	if s.LiYuen {
		return &types.GameEvent{
			Type:        types.EventLiYuenFleet,
			Description: "Li Yuen's fleet, Taipan. Good joss!! They let us be!!",
		}
	}

	n := s.Capacity/5 + s.Guns
	if n < 1 {
		n = 1
	}
	ships := rng.Intn(n) + 5
	return &types.GameEvent{
		Type: types.EventLiYuenFleet,
		Description: fmt.Sprintf(
			"%d ships of Li Yuen's pirate fleet, Taipan!!", ships),
		RequiresInput: true,
		Data:          types.EventData{NumShips: ships},
	}
}

// RivalFleetSize computes the fleet that shows up when a third party
// interrupts a battle and no truce holds.
func RivalFleetSize(s *types.GameState, rng *rng.RNG) int {
	base := s.Capacity/25 + s.Guns/2 + 5
	ships := int(float64(base) * (0.75 + rng.Float()*0.5))
	if ships < 1 {
		ships = 1
	}
	return ships
}
