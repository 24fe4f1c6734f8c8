package battle

import (
	"strings"
	"testing"

	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// scriptConsole replays a fixed order and records every report line.
type scriptConsole struct {
	order types.Order
	lines []string
}

func (c *scriptConsole) Report(text string)            { c.lines = append(c.lines, text) }
func (c *scriptConsole) Order(numShips int) types.Order { return c.order }

func (c *scriptConsole) saw(substr string) bool {
	for _, line := range c.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

func battleState() *types.GameState {
	s := state.New(1)
	state.ApplyStart(s, state.DefaultDefs(), types.CashStart)
	return s
}

func TestRun_FightWithGunsTerminates(t *testing.T) {
	defs := state.DefaultDefs()
	s := battleState()
	s.Guns = 5
	s.CargoSpace = s.Capacity - 50

	console := &scriptConsole{order: types.OrderFight}
	res := Run(s, defs, rng.NewRNG(42), console, 3, types.LiYuenFleet)

	switch res.Outcome {
	case types.BattleWon:
		if res.Booty <= 0 {
			t.Errorf("winning booty %d, want > 0", res.Booty)
		}
	case types.BattleLost:
		// Also a legal terminal state.
	default:
		t.Fatalf("outcome %v, want Won or Lost against Li Yuen", res.Outcome)
	}
}

func TestRun_ZeroGunFightIsNoOp(t *testing.T) {
	defs := state.DefaultDefs()
	s := battleState()
	s.Guns = 0
	s.Capacity = 10 // small hull so the loss arrives quickly
	s.CargoSpace = 10

	console := &scriptConsole{order: types.OrderFight}
	res := Run(s, defs, rng.NewRNG(7), console, 2, types.LiYuenFleet)

	if !console.saw("We have no guns, Taipan!!") {
		t.Error("expected the no-guns report")
	}
	if res.Sunk != 0 {
		t.Errorf("sank %d ships without guns", res.Sunk)
	}
	if res.Outcome != types.BattleLost {
		t.Errorf("outcome %v, want Lost when unable to shoot or flee", res.Outcome)
	}
}

func TestRun_BootyScalesWithTimeAndFleet(t *testing.T) {
	defs := state.DefaultDefs()
	s := battleState()
	s.Guns = 1
	s.CargoSpace = s.Capacity - 10
	s.Year = 1865

	console := &scriptConsole{order: types.OrderFight}
	res := Run(s, defs, rng.NewRNG(42), console, 1, types.LiYuenFleet)

	// t = 61 months, one ship: floor(61/4*1000) = 15250 plus up to 1250.
	if res.Booty < 15250 || res.Booty > 16500 {
		t.Errorf("booty %d outside expected range for month 61", res.Booty)
	}
}

func TestRun_ThrowCargoLightensShip(t *testing.T) {
	defs := state.DefaultDefs()
	s := battleState()
	s.Guns = 0
	s.Inventory[types.General] = 25
	s.CargoSpace = s.Capacity - 25

	console := &scriptConsole{order: types.OrderThrowCargo}
	res := Run(s, defs, rng.NewRNG(3), console, 2, types.LiYuenFleet)

	if res.Thrown == 0 {
		t.Error("throwing with a full hold should jettison cargo")
	}
	if res.Thrown > 0 && s.Inventory[types.General] != 25-res.Thrown {
		t.Errorf("inventory %d, want %d", s.Inventory[types.General], 25-res.Thrown)
	}
	if err := state.CheckInvariants(s, state.DefaultDefs()); err != nil {
		t.Errorf("invariants violated after jettison: %v", err)
	}
	if res.Outcome != types.BattleFled && res.Outcome != types.BattleLost {
		t.Errorf("outcome %v, want Fled or Lost for a gunless escape", res.Outcome)
	}
}

func TestJettison_CheapestFirst(t *testing.T) {
	s := battleState()
	s.Inventory[types.Opium] = 5
	s.Inventory[types.General] = 5
	s.CargoSpace = s.Capacity - 10

	thrown := jettison(s, 7)

	if thrown != 7 {
		t.Fatalf("threw %d units, want 7", thrown)
	}
	if s.Inventory[types.General] != 0 {
		t.Errorf("general cargo %d, want 0 (thrown first)", s.Inventory[types.General])
	}
	if s.Inventory[types.Opium] != 3 {
		t.Errorf("opium %d, want 3 (thrown last)", s.Inventory[types.Opium])
	}
}

func TestJettison_EmptyHold(t *testing.T) {
	s := battleState()
	if thrown := jettison(s, 10); thrown != 0 {
		t.Errorf("threw %d from an empty hold", thrown)
	}
}

func TestRun_GenericPiratesCanBeInterrupted(t *testing.T) {
	defs := state.DefaultDefs()
	defs.InterruptOdds = 1 // every enemy round interrupts

	s := battleState()
	s.Guns = 0
	s.Capacity = 1000 // hull survives the single enemy round
	s.CargoSpace = 1000

	console := &scriptConsole{order: types.OrderFight}
	res := Run(s, defs, rng.NewRNG(2), console, 5, types.GenericPirates)

	if res.Outcome != types.BattleInterrupted {
		t.Errorf("outcome %v, want Interrupted with forced odds", res.Outcome)
	}
}

func TestRun_LiYuenNeverInterrupted(t *testing.T) {
	defs := state.DefaultDefs()
	defs.InterruptOdds = 1

	s := battleState()
	s.Guns = 5
	s.CargoSpace = s.Capacity - 50

	console := &scriptConsole{order: types.OrderFight}
	res := Run(s, defs, rng.NewRNG(2), console, 2, types.LiYuenFleet)

	if res.Outcome == types.BattleInterrupted {
		t.Error("Li Yuen's own fleet must never be interrupted")
	}
}

func TestEnemyRound_SeverityScalesDamage(t *testing.T) {
	defs := state.DefaultDefs()

	dmg := func(kind types.PirateKind) int {
		s := battleState()
		s.Guns = 0
		console := &scriptConsole{}
		enemyRound(s, defs, rng.NewRNG(42), console, 9, kind)
		return s.Damage
	}

	generic := dmg(types.GenericPirates)
	liYuen := dmg(types.LiYuenFleet)

	if generic < 1 {
		t.Fatalf("generic hit %d, want >= 1", generic)
	}
	if liYuen < generic {
		t.Errorf("Li Yuen damage %d below generic %d with identical draws", liYuen, generic)
	}
}

func TestEnemyRound_DamageClampedAt100(t *testing.T) {
	defs := state.DefaultDefs()
	s := battleState()
	s.Guns = 0
	s.Damage = 99
	s.EnemyDamage = 10

	console := &scriptConsole{}
	enemyRound(s, defs, rng.NewRNG(1), console, 15, types.LiYuenFleet)

	if s.Damage != 100 {
		t.Errorf("damage %d, want clamp at 100", s.Damage)
	}
}
