package score

import (
	"testing"

	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

func TestScore_Formula(t *testing.T) {
	s := state.New(1)
	s.Cash = 250000
	s.Bank = 50000
	s.Debt = 0
	s.Month = 1
	s.Year = 1862 // 25 months

	// 300000 / 100 / 25 = 120
	if got := Score(s); got != 120 {
		t.Errorf("score %d, want 120", got)
	}
}

func TestScore_MonotonicInNetWorth(t *testing.T) {
	s := state.New(1)
	s.Month = 6
	s.Year = 1861

	prev := -1 << 30
	for cash := 0; cash <= 1000000; cash += 50000 {
		s.Cash = cash
		got := Score(s)
		if got < prev {
			t.Fatalf("score decreased from %d to %d as net worth rose", prev, got)
		}
		prev = got
	}
}

func TestScore_NegativeForDebtors(t *testing.T) {
	s := state.New(1)
	s.Debt = 50000

	if got := Score(s); got >= 0 {
		t.Errorf("score %d, want negative when debt exceeds assets", got)
	}
}

func TestScore_NegativeRoundsDown(t *testing.T) {
	s := state.New(1)
	s.Debt = 150
	s.Month = 1
	s.Year = 1860

	// -150/100 over one month rounds toward minus infinity, not zero.
	if got := Score(s); got != -2 {
		t.Errorf("score %d, want -2", got)
	}

	s.Debt = 50
	if got := Score(s); got != -1 {
		t.Errorf("score %d, want -1 for any debt at all", got)
	}
}

func TestCheck_Bankruptcy(t *testing.T) {
	defs := state.DefaultDefs()
	s := state.New(1)
	s.Debt = 100

	if got := Check(s, defs); got != types.EndBankrupt {
		t.Errorf("end reason %v, want bankrupt with debt and no money", got)
	}

	s.Bank = 1
	if got := Check(s, defs); got != types.EndNone {
		t.Errorf("end reason %v, want none with a bank balance left", got)
	}
}

func TestCheck_ShipLost(t *testing.T) {
	defs := state.DefaultDefs()
	s := state.New(1)
	s.Cash = 100
	s.Damage = 100

	if got := Check(s, defs); got != types.EndShipLost {
		t.Errorf("end reason %v, want ship lost at full damage", got)
	}
}

func TestCheck_RefusedBailout(t *testing.T) {
	defs := state.DefaultDefs()
	s := state.New(1)
	s.Cash = 100
	s.WuRefused = true

	if got := Check(s, defs); got != types.EndRefusedBailout {
		t.Errorf("end reason %v, want refused bailout", got)
	}
}

func TestCheck_TimeHorizon(t *testing.T) {
	defs := state.DefaultDefs()
	s := state.New(1)
	s.Cash = 100
	s.Month = 12
	s.Year = 1909 // 600 months

	if got := Check(s, defs); got != types.EndTimeUp {
		t.Errorf("end reason %v, want time up at month 600", got)
	}

	s.Month = 11
	if got := Check(s, defs); got != types.EndNone {
		t.Errorf("end reason %v, want none at month 599", got)
	}
}

func TestCheck_BankruptcyOutranksHullLoss(t *testing.T) {
	defs := state.DefaultDefs()
	s := state.New(1)
	s.Debt = 100
	s.Damage = 100

	if got := Check(s, defs); got != types.EndBankrupt {
		t.Errorf("end reason %v, want bankruptcy checked first", got)
	}
}

func TestCanRetire(t *testing.T) {
	defs := state.DefaultDefs()
	s := state.New(1)

	s.Cash = 999999
	if CanRetire(s, defs) {
		t.Error("retirement below a million should be refused")
	}

	s.Cash = 500000
	s.Bank = 600000
	s.Debt = 100000
	if !CanRetire(s, defs) {
		t.Error("a million in net worth should allow retirement")
	}
}
