// Package loader reads an optional Lua tuning file and overlays it on
// the default rule definitions. The Lua VM is sandboxed and discarded
// after loading; the result is an immutable Defs for the engine.
package loader

import (
	"fmt"

	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
	lua "github.com/yuin/gopher-lua"
)

// commodityKeys maps Lua table keys to commodities.
var commodityKeys = map[string]types.Commodity{
	"opium":   types.Opium,
	"silk":    types.Silk,
	"arms":    types.Arms,
	"general": types.General,
}

// portKeys maps Lua table keys to ports.
var portKeys = map[string]types.Port{
	"hong_kong": types.HongKong,
	"shanghai":  types.Shanghai,
	"nagasaki":  types.Nagasaki,
	"saigon":    types.Saigon,
	"manila":    types.Manila,
	"singapore": types.Singapore,
	"batavia":   types.Batavia,
}

// Load executes the tuning file and returns DefaultDefs with its
// overrides applied. Unknown keys are rejected so typos fail loudly.
func Load(path string) (*state.Defs, error) {
	defs := state.DefaultDefs()

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibs(L)
	sandbox(L)

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("executing %s: %w", path, err)
	}

	tuning := L.GetGlobal("tuning")
	if tuning == lua.LNil {
		return nil, fmt.Errorf("%s: no global 'tuning' table defined", path)
	}
	tbl, ok := tuning.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s: 'tuning' is %s, want table", path, tuning.Type())
	}

	if err := applyTuning(tbl, defs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := validate(defs); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return defs, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// applyTuning walks the tuning table and overwrites the matching Defs
// fields. Scalars and nested tables may each be given partially.
func applyTuning(tbl *lua.LTable, defs *state.Defs) error {
	var err error
	tbl.ForEach(func(k, v lua.LValue) {
		if err != nil {
			return
		}
		key, ok := k.(lua.LString)
		if !ok {
			err = fmt.Errorf("tuning key %v: want string key", k)
			return
		}
		err = applyKey(string(key), v, defs)
	})
	return err
}

func applyKey(key string, v lua.LValue, defs *state.Defs) error {
	switch key {
	case "bank_rate":
		return setFloat(key, v, &defs.BankRate)
	case "debt_rate":
		return setFloat(key, v, &defs.DebtRate)
	case "enemy_health_ramp":
		return setFloat(key, v, &defs.EnemyHealthRamp)
	case "enemy_damage_ramp":
		return setFloat(key, v, &defs.EnemyDamageRamp)
	case "price_shock_odds":
		return setInt(key, v, &defs.PriceShockOdds)
	case "sale_offer_odds":
		return setInt(key, v, &defs.SaleOfferOdds)
	case "mugging_odds":
		return setInt(key, v, &defs.MuggingOdds)
	case "interrupt_odds":
		return setInt(key, v, &defs.InterruptOdds)
	case "mugging_cash_floor":
		return setInt(key, v, &defs.MuggingCashFloor)
	case "storm_odds":
		return setInt(key, v, &defs.StormOdds)
	case "storm_sink_odds":
		return setInt(key, v, &defs.StormSinkOdds)
	case "storm_off_course_odds":
		return setInt(key, v, &defs.StormOffCourseOdds)
	case "seizure_odds":
		return setInt(key, v, &defs.SeizureOdds)
	case "raid_odds":
		return setInt(key, v, &defs.RaidOdds)
	case "wu_warn_debt":
		return setInt(key, v, &defs.WuWarnDebt)
	case "li_yuen_base_odds":
		return setInt(key, v, &defs.LiYuenBaseOdds)
	case "li_yuen_protected_factor":
		return setInt(key, v, &defs.LiYuenProtectedFactor)
	case "travel_damage_limit":
		return setInt(key, v, &defs.TravelDamageLimit)
	case "warehouse_capacity":
		return setInt(key, v, &defs.WarehouseCapacity)
	case "retire_threshold":
		return setInt(key, v, &defs.RetireThreshold)
	case "max_months":
		return setInt(key, v, &defs.MaxMonths)
	case "gun_hold_size":
		return setInt(key, v, &defs.GunHoldSize)
	case "base_multiplier":
		return applyCommodityInts(key, v, defs.BaseMultiplier)
	case "port_modifier":
		return applyPortModifier(v, defs)
	case "distances":
		return applyDistances(v, defs)
	}
	return fmt.Errorf("unknown tuning key %q", key)
}

func setInt(key string, v lua.LValue, dst *int) error {
	n, ok := v.(lua.LNumber)
	if !ok {
		return fmt.Errorf("%s: want number, got %s", key, v.Type())
	}
	*dst = int(n)
	return nil
}

func setFloat(key string, v lua.LValue, dst *float64) error {
	n, ok := v.(lua.LNumber)
	if !ok {
		return fmt.Errorf("%s: want number, got %s", key, v.Type())
	}
	*dst = float64(n)
	return nil
}

// applyCommodityInts overlays a {opium=.., silk=..} table onto dst.
func applyCommodityInts(key string, v lua.LValue, dst map[types.Commodity]int) error {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return fmt.Errorf("%s: want table, got %s", key, v.Type())
	}
	var err error
	tbl.ForEach(func(k, val lua.LValue) {
		if err != nil {
			return
		}
		c, ok := commodityKeys[lua.LVAsString(k)]
		if !ok {
			err = fmt.Errorf("%s: unknown commodity %q", key, lua.LVAsString(k))
			return
		}
		n, ok := val.(lua.LNumber)
		if !ok {
			err = fmt.Errorf("%s.%s: want number, got %s", key, lua.LVAsString(k), val.Type())
			return
		}
		dst[c] = int(n)
	})
	return err
}

func applyPortModifier(v lua.LValue, defs *state.Defs) error {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return fmt.Errorf("port_modifier: want table, got %s", v.Type())
	}
	var err error
	tbl.ForEach(func(k, val lua.LValue) {
		if err != nil {
			return
		}
		c, ok := commodityKeys[lua.LVAsString(k)]
		if !ok {
			err = fmt.Errorf("port_modifier: unknown commodity %q", lua.LVAsString(k))
			return
		}
		err = applyPortInts("port_modifier."+lua.LVAsString(k), val, defs.PortModifier[c])
	})
	return err
}

func applyPortInts(key string, v lua.LValue, dst map[types.Port]int) error {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return fmt.Errorf("%s: want table, got %s", key, v.Type())
	}
	var err error
	tbl.ForEach(func(k, val lua.LValue) {
		if err != nil {
			return
		}
		p, ok := portKeys[lua.LVAsString(k)]
		if !ok {
			err = fmt.Errorf("%s: unknown port %q", key, lua.LVAsString(k))
			return
		}
		n, ok := val.(lua.LNumber)
		if !ok {
			err = fmt.Errorf("%s.%s: want number, got %s", key, lua.LVAsString(k), val.Type())
			return
		}
		dst[p] = int(n)
	})
	return err
}

func applyDistances(v lua.LValue, defs *state.Defs) error {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return fmt.Errorf("distances: want table, got %s", v.Type())
	}
	var err error
	tbl.ForEach(func(k, val lua.LValue) {
		if err != nil {
			return
		}
		from, ok := portKeys[lua.LVAsString(k)]
		if !ok {
			err = fmt.Errorf("distances: unknown port %q", lua.LVAsString(k))
			return
		}
		if defs.Distances[from] == nil {
			defs.Distances[from] = map[types.Port]int{}
		}
		err = applyPortInts("distances."+lua.LVAsString(k), val, defs.Distances[from])
	})
	return err
}
