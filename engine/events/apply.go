package events

import (
	"fmt"

	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// CanAcceptGun reports whether a gun offer can be honored: enough cash
// and free hold units for the mounting.
func CanAcceptGun(s *types.GameState, defs *state.Defs, ev *types.GameEvent) bool {
	return s.Cash >= ev.Data.GunPrice && s.CargoSpace >= defs.GunHoldSize
}

// Apply commits the payoff of an event given the player's decision. It
// is total over (type, result): unhandled combinations are no-ops. A
// chained follow-up (the gun offer after a ship purchase) comes back as
// a value on the first return, never as a panic or error. The second
// return is a report line for the player, or "".
func Apply(s *types.GameState, defs *state.Defs, ev *types.GameEvent, result types.EventResult, rng *rng.RNG) (*types.GameEvent, string) {
	switch ev.Type {
	case types.EventWuWarning:
		s.WuWarning = true
		return nil, ""

	case types.EventWuBailout:
		return nil, applyBailout(s, ev, result)

	case types.EventRepairOffer:
		if result == types.ResultAccepted {
			return nil, applyRepair(s, ev)
		}
		return nil, ""

	case types.EventExtortion:
		return nil, applyExtortion(s, ev, result)

	case types.EventMugging:
		// Passive: the loss lands regardless of the requested result.
		s.Cash -= ev.Data.MoneyLoss
		if s.Cash < 0 {
			s.Cash = 0
		}
		return nil, ""

	case types.EventShipOffer:
		return applyShipOffer(s, defs, ev, result, rng)

	case types.EventGunOffer:
		if result == types.ResultAccepted && CanAcceptGun(s, defs, ev) {
			s.Cash -= ev.Data.GunPrice
			s.Guns += ev.Data.NumGuns
			s.CargoSpace -= defs.GunHoldSize * ev.Data.NumGuns
			return nil, "The gun is mounted, Taipan."
		}
		return nil, ""

	case types.EventStorm:
		return nil, applyStorm(s, ev)

	case types.EventSeizure:
		// Passive: all opium aboard is confiscated and the fine lands.
		qty := s.Inventory[types.Opium]
		s.Inventory[types.Opium] = 0
		s.CargoSpace += qty
		s.Cash -= ev.Data.MoneyLoss
		if s.Cash < 0 {
			s.Cash = 0
		}
		return nil, ""

	case types.EventWarehouseRaid:
		// Passive: half of the stored contraband disappears.
		s.Warehouse[types.Opium] /= 2
		s.Warehouse[types.Arms] /= 2
		return nil, ""
	}

	return nil, ""
}

func applyBailout(s *types.GameState, ev *types.GameEvent, result types.EventResult) string {
	switch result {
	case types.ResultAccepted:
		s.Cash += ev.Data.LoanAmount
		s.Debt += ev.Data.RepayAmount
		s.WuBailout++
		return "Elder Brother Wu's men deliver the silver, Taipan."
	case types.ResultDeclined:
		// Refusing credit while destitute ends the game.
		s.WuRefused = true
		return "Very well, Taipan. There is nothing more to be done."
	}
	return ""
}

// applyRepair spends ev.Data.RepairSpend on hull work. Spending over
// the cash in hand zeroes the cash and repairs nothing; McHenry keeps
// the deposit.
func applyRepair(s *types.GameState, ev *types.GameEvent) string {
	spend := ev.Data.RepairSpend
	if spend <= 0 {
		return ""
	}
	if spend > s.Cash {
		s.Cash = 0
		return "Taipan, you can't afford that! McHenry keeps what you had."
	}

	s.Cash -= spend
	repaired := int(float64(spend)/float64(ev.Data.RepairRate) + 0.5)
	s.Damage -= repaired
	if s.Damage < 0 {
		s.Damage = 0
	}
	return fmt.Sprintf("McHenry's crew gets to work. Damage now %d%%.", s.Damage)
}

// applyStorm lands the weather rolled at generation. A critical moment
// on a hull at or below 30% seaworthiness sinks the ship; a surviving
// ship may find itself headed for a different port.
func applyStorm(s *types.GameState, ev *types.GameEvent) string {
	s.Damage += ev.Data.StormDamage
	if s.Damage > 100 {
		s.Damage = 100
	}

	if ev.Data.StormCritical && state.HullStatus(s) <= 30 {
		s.Damage = 100
		return "I think we're going down!! We're going down, Taipan!!"
	}

	if ev.Data.OffCourse != types.PortNone {
		s.NextDestination = ev.Data.OffCourse
		return fmt.Sprintf("We made it!! But we've been blown off course to %s, Taipan.",
			types.PortNames[ev.Data.OffCourse])
	}
	return "We made it!!"
}

func applyExtortion(s *types.GameState, ev *types.GameEvent, result types.EventResult) string {
	if result != types.ResultAccepted {
		return "Li Yuen will remember this, Taipan."
	}
	if s.Cash < ev.Data.Extortion {
		// Short payment: everything is taken and no protection granted.
		s.Cash = 0
		return "Taipan, you do not have enough! Li Yuen's men take all your cash."
	}
	s.Cash -= ev.Data.Extortion
	s.LiYuen = true
	return "Li Yuen is pleased. His fleet will let you be."
}

// applyShipOffer handles the accepted ship trade: new hull, more
// capacity, zero damage. With even odds, and only when cash and hold
// space allow, the broker follows up with a gun offer, returned as a
// chained event for the caller to process next.
func applyShipOffer(s *types.GameState, defs *state.Defs, ev *types.GameEvent, result types.EventResult, rng *rng.RNG) (*types.GameEvent, string) {
	if result != types.ResultAccepted || s.Cash < ev.Data.ShipPrice {
		return nil, ""
	}

	grown := ev.Data.NewCapacity - s.Capacity
	s.Cash -= ev.Data.ShipPrice
	s.Capacity = ev.Data.NewCapacity
	s.CargoSpace += grown
	s.Damage = 0

	if rng.OneIn(2) {
		t := gameTime(s)
		price := int(rng.Float()*float64(1000*(t+5)/6)) + 500
		if s.Cash >= price && s.CargoSpace >= defs.GunHoldSize {
			follow := &types.GameEvent{
				Type: types.EventGunOffer,
				Description: fmt.Sprintf(
					"The broker also has a ship's gun for %d, Taipan. Interested?", price),
				RequiresInput: true,
				Data:          types.EventData{GunPrice: price, NumGuns: 1},
			}
			return follow, "We have a new ship, Taipan!"
		}
	}
	return nil, "We have a new ship, Taipan!"
}
