// Package state holds the immutable tuning definitions and the GameState
// lifecycle: creation, the two starting bundles, and invariant helpers.
package state

import (
	"fmt"

	"github.com/nathoo/taipan/types"
)

// Defs holds the immutable tuning tables the engine runs on. The defaults
// below are the canonical rule set; a Lua tuning file may override them.
type Defs struct {
	// Pricing: price = floor(PortModifier/2 * roll(1..3) * BaseMultiplier).
	BaseMultiplier map[types.Commodity]int
	PortModifier   map[types.Commodity]map[types.Port]int

	// Travel: symmetric distances between ports, default 1 when absent.
	Distances map[types.Port]map[types.Port]int

	// Interest, applied once per arrival.
	BankRate float64
	DebtRate float64

	// Yearly difficulty ramp.
	EnemyHealthRamp float64
	EnemyDamageRamp float64

	// Event odds, expressed as 1-in-N.
	PriceShockOdds int // in-port price spike/crash
	SaleOfferOdds  int // ship or gun sale while in port
	MuggingOdds    int
	InterruptOdds  int // third-party interruption per battle round

	MuggingCashFloor int // mugging only above this much cash
	WuWarnDebt       int // debt level that summons the debt collector

	StormOdds          int // 1-in-N storm per sea leg
	StormSinkOdds      int // 1-in-N critical moment inside a storm
	StormOffCourseOdds int // 1-in-N diversion to a random port after surviving

	SeizureOdds int // 1-in-N opium seizure while docked abroad with opium aboard
	RaidOdds    int // 1-in-N warehouse raid with contraband stored at home

	LiYuenBaseOdds        int // 1-in-N fleet check while unprotected
	LiYuenProtectedFactor int // added odds multiplier once protected

	TravelDamageLimit int // damage at or above this blocks sailing
	WarehouseCapacity int

	RetireThreshold int
	MaxMonths       int

	GunHoldSize int // hold units consumed per gun
}

// DefaultDefs returns the canonical tuning table.
func DefaultDefs() *Defs {
	return &Defs{
		BaseMultiplier: map[types.Commodity]int{
			types.Opium:   1000,
			types.Silk:    100,
			types.Arms:    10,
			types.General: 1,
		},
		PortModifier: map[types.Commodity]map[types.Port]int{
			types.Opium: {
				types.HongKong: 11, types.Shanghai: 16, types.Nagasaki: 15,
				types.Saigon: 14, types.Manila: 12, types.Singapore: 10, types.Batavia: 13,
			},
			types.Silk: {
				types.HongKong: 11, types.Shanghai: 14, types.Nagasaki: 15,
				types.Saigon: 16, types.Manila: 10, types.Singapore: 13, types.Batavia: 12,
			},
			types.Arms: {
				types.HongKong: 12, types.Shanghai: 16, types.Nagasaki: 10,
				types.Saigon: 11, types.Manila: 13, types.Singapore: 14, types.Batavia: 15,
			},
			types.General: {
				types.HongKong: 10, types.Shanghai: 11, types.Nagasaki: 12,
				types.Saigon: 13, types.Manila: 14, types.Singapore: 15, types.Batavia: 16,
			},
		},
		Distances: map[types.Port]map[types.Port]int{
			types.HongKong: {
				types.Shanghai: 2, types.Nagasaki: 3, types.Saigon: 2,
				types.Manila: 2, types.Singapore: 3, types.Batavia: 4,
			},
			types.Shanghai: {
				types.Nagasaki: 1, types.Saigon: 4, types.Manila: 3,
				types.Singapore: 5, types.Batavia: 6,
			},
			types.Nagasaki: {
				types.Saigon: 5, types.Manila: 4, types.Singapore: 6, types.Batavia: 7,
			},
			types.Saigon: {
				types.Manila: 2, types.Singapore: 1, types.Batavia: 2,
			},
			types.Manila: {
				types.Singapore: 3, types.Batavia: 4,
			},
			types.Singapore: {
				types.Batavia: 1,
			},
		},

		BankRate: 0.005,
		DebtRate: 0.1,

		EnemyHealthRamp: 10,
		EnemyDamageRamp: 0.5,

		PriceShockOdds: 9,
		SaleOfferOdds:  4,
		MuggingOdds:    20,
		InterruptOdds:  20,

		MuggingCashFloor: 25000,
		WuWarnDebt:       10000,

		StormOdds:          10,
		StormSinkOdds:      30,
		StormOffCourseOdds: 3,

		SeizureOdds: 10,
		RaidOdds:    20,

		LiYuenBaseOdds:        4,
		LiYuenProtectedFactor: 8,

		TravelDamageLimit: 90,
		WarehouseCapacity: 10000,

		RetireThreshold: 1000000,
		MaxMonths:       600,

		GunHoldSize: 10,
	}
}

// New creates a fresh game state docked in the home port. The starting
// bundle is applied separately via ApplyStart.
func New(seed int64) *types.GameState {
	return &types.GameState{
		Inventory:       map[types.Commodity]int{},
		Warehouse:       map[types.Commodity]int{},
		Prices:          map[types.Commodity]int{},
		Location:        types.HomePort,
		NextDestination: types.PortNone,
		Month:           1,
		Year:            1860,
		EnemyHealth:     20,
		EnemyDamage:     0.5,
		RNGSeed:         seed,
	}
}

// ApplyStart populates the state with one of the two fixed starting bundles.
func ApplyStart(s *types.GameState, defs *Defs, choice types.StartChoice) {
	switch choice {
	case types.CashStart:
		s.Cash = 400
		s.Debt = 5000
		s.Capacity = 60
		s.Guns = 0
		s.LiYuen = false
		s.BattleOdds = 10
	case types.GunsStart:
		s.Cash = 0
		s.Debt = 0
		s.Capacity = 10
		s.Guns = 5
		s.LiYuen = true
		s.BattleOdds = 7
	}
	s.CargoSpace = s.Capacity - defs.GunHoldSize*s.Guns
}

// UsedSpace returns the hold units consumed by cargo and guns.
func UsedSpace(s *types.GameState, defs *Defs) int {
	used := defs.GunHoldSize * s.Guns
	for _, qty := range s.Inventory {
		used += qty
	}
	return used
}

// CheckInvariants verifies the cross-cutting state invariants. Intended
// for tests; a violation means a mutator has a bug.
func CheckInvariants(s *types.GameState, defs *Defs) error {
	if s.Cash < 0 {
		return fmt.Errorf("cash is negative: %d", s.Cash)
	}
	if s.Bank < 0 {
		return fmt.Errorf("bank is negative: %d", s.Bank)
	}
	if got := s.Capacity - UsedSpace(s, defs); s.CargoSpace != got {
		return fmt.Errorf("cargo space %d, want %d (capacity %d, used %d)",
			s.CargoSpace, got, s.Capacity, UsedSpace(s, defs))
	}
	for c, qty := range s.Inventory {
		if qty < 0 {
			return fmt.Errorf("%s inventory is negative: %d", types.CommodityNames[c], qty)
		}
	}
	atSea := s.Location == types.AtSea
	hasDest := s.NextDestination != types.PortNone
	if atSea != hasDest {
		return fmt.Errorf("at sea %v but destination set %v", atSea, hasDest)
	}
	return nil
}

// HullStatus returns the ship's remaining seaworthiness percentage:
// 100 - damage/capacity*100.
func HullStatus(s *types.GameState) int {
	if s.Capacity == 0 {
		return 0
	}
	return 100 - int(float64(s.Damage)/float64(s.Capacity)*100)
}

// NetWorth returns cash + bank - debt.
func NetWorth(s *types.GameState) int {
	return s.Cash + s.Bank - s.Debt
}

// MonthsPlayed returns elapsed game months, minimum 1.
func MonthsPlayed(s *types.GameState) int {
	m := (s.Year-1860)*12 + s.Month
	if m < 1 {
		m = 1
	}
	return m
}

// Destitute reports whether the player has nothing left to trade with:
// zero cash, zero bank, no guns, and an empty hold.
func Destitute(s *types.GameState) bool {
	if s.Cash != 0 || s.Bank != 0 || s.Guns != 0 {
		return false
	}
	for _, qty := range s.Inventory {
		if qty != 0 {
			return false
		}
	}
	return true
}
