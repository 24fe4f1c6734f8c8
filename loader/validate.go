package loader

import (
	"fmt"

	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// validate rejects tuning tables that would break the engine's
// arithmetic: 1-in-N odds below 1, negative rates, non-positive
// multipliers or thresholds.
func validate(defs *state.Defs) error {
	odds := map[string]int{
		"price_shock_odds":      defs.PriceShockOdds,
		"sale_offer_odds":       defs.SaleOfferOdds,
		"mugging_odds":          defs.MuggingOdds,
		"interrupt_odds":        defs.InterruptOdds,
		"li_yuen_base_odds":     defs.LiYuenBaseOdds,
		"storm_odds":            defs.StormOdds,
		"storm_sink_odds":       defs.StormSinkOdds,
		"storm_off_course_odds": defs.StormOffCourseOdds,
		"seizure_odds":          defs.SeizureOdds,
		"raid_odds":             defs.RaidOdds,
	}
	for name, n := range odds {
		if n < 1 {
			return fmt.Errorf("%s is %d, want >= 1", name, n)
		}
	}

	if defs.BankRate < 0 {
		return fmt.Errorf("bank_rate is %g, want >= 0", defs.BankRate)
	}
	if defs.DebtRate < 0 {
		return fmt.Errorf("debt_rate is %g, want >= 0", defs.DebtRate)
	}
	if defs.LiYuenProtectedFactor < 0 {
		return fmt.Errorf("li_yuen_protected_factor is %d, want >= 0", defs.LiYuenProtectedFactor)
	}

	for _, c := range types.Commodities {
		if defs.BaseMultiplier[c] <= 0 {
			return fmt.Errorf("base_multiplier for %s is %d, want > 0",
				types.CommodityNames[c], defs.BaseMultiplier[c])
		}
		for _, p := range types.Ports {
			if defs.PortModifier[c][p] <= 0 {
				return fmt.Errorf("port_modifier for %s at %s is %d, want > 0",
					types.CommodityNames[c], types.PortNames[p], defs.PortModifier[c][p])
			}
		}
	}

	if defs.TravelDamageLimit < 1 || defs.TravelDamageLimit > 100 {
		return fmt.Errorf("travel_damage_limit is %d, want 1..100", defs.TravelDamageLimit)
	}
	if defs.WarehouseCapacity < 0 {
		return fmt.Errorf("warehouse_capacity is %d, want >= 0", defs.WarehouseCapacity)
	}
	if defs.RetireThreshold <= 0 {
		return fmt.Errorf("retire_threshold is %d, want > 0", defs.RetireThreshold)
	}
	if defs.MaxMonths < 1 {
		return fmt.Errorf("max_months is %d, want >= 1", defs.MaxMonths)
	}
	if defs.GunHoldSize < 1 {
		return fmt.Errorf("gun_hold_size is %d, want >= 1", defs.GunHoldSize)
	}
	return nil
}
