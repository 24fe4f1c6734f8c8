package banking

import (
	"testing"

	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

func TestDepositAndWithdraw(t *testing.T) {
	s := state.New(1)
	s.Cash = 1000

	if !Deposit(s, 600) {
		t.Fatal("deposit within cash should succeed")
	}
	if s.Cash != 400 || s.Bank != 600 {
		t.Errorf("cash %d bank %d, want 400/600", s.Cash, s.Bank)
	}

	if Deposit(s, 401) {
		t.Error("deposit beyond cash should fail")
	}
	if Deposit(s, 0) {
		t.Error("zero deposit should fail")
	}

	if !Withdraw(s, 600) {
		t.Fatal("withdraw within balance should succeed")
	}
	if s.Cash != 1000 || s.Bank != 0 {
		t.Errorf("cash %d bank %d after withdraw, want 1000/0", s.Cash, s.Bank)
	}
	if Withdraw(s, 1) {
		t.Error("withdraw from empty account should fail")
	}
}

func TestRepay_ClampsToDebt(t *testing.T) {
	s := state.New(1)
	s.Cash = 1000
	s.Debt = 300

	if !Repay(s, 500) {
		t.Fatal("repay should succeed with cash in hand")
	}
	if s.Debt != 0 {
		t.Errorf("debt %d, want 0", s.Debt)
	}
	if s.Cash != 700 {
		t.Errorf("cash %d, want 700 (overpayment clamped)", s.Cash)
	}
}

func TestRepay_RejectsBeyondCash(t *testing.T) {
	s := state.New(1)
	s.Cash = 100
	s.Debt = 300

	if Repay(s, 200) {
		t.Error("repay beyond cash should fail")
	}
	if s.Cash != 100 || s.Debt != 300 {
		t.Error("failed repay must not mutate state")
	}
}

func TestMaxRepay(t *testing.T) {
	s := state.New(1)
	s.Cash = 100
	s.Debt = 300
	if got := MaxRepay(s); got != 100 {
		t.Errorf("max repay %d, want 100", got)
	}

	s.Cash = 500
	if got := MaxRepay(s); got != 300 {
		t.Errorf("max repay %d, want 300", got)
	}
}

func TestBorrow_CeilingIsTwiceCash(t *testing.T) {
	s := state.New(1)
	s.Cash = 1000

	if got := MaxBorrow(s); got != 2000 {
		t.Errorf("max borrow %d, want 2000", got)
	}
	if Borrow(s, 2001) {
		t.Error("borrow beyond twice cash should fail")
	}
	if !Borrow(s, 2000) {
		t.Fatal("borrow at the ceiling should succeed")
	}
	if s.Cash != 3000 || s.Debt != 2000 {
		t.Errorf("cash %d debt %d, want 3000/2000", s.Cash, s.Debt)
	}
}

func TestAfterWuVisit_NeedsDeepDebtAndCash(t *testing.T) {
	r := rng.NewRNG(1)

	s := state.New(1)
	s.Debt = 20000
	s.Cash = 5000
	for i := 0; i < 100; i++ {
		if AfterWuVisit(s, r) != 0 {
			t.Fatal("ambush should never fire at debt <= 20000")
		}
	}

	s.Debt = 20001
	s.Cash = 0
	for i := 0; i < 100; i++ {
		if AfterWuVisit(s, r) != 0 {
			t.Fatal("ambush should never fire without cash")
		}
	}
}

func TestAfterWuVisit_RobsEverything(t *testing.T) {
	r := rng.NewRNG(2)
	fired := false

	for i := 0; i < 200 && !fired; i++ {
		s := state.New(1)
		s.Debt = 50000
		s.Cash = 9000
		if guards := AfterWuVisit(s, r); guards > 0 {
			fired = true
			if s.Cash != 0 {
				t.Errorf("cash %d after ambush, want 0", s.Cash)
			}
			if guards < 1 || guards > 3 {
				t.Errorf("guards lost %d, want 1..3", guards)
			}
		}
	}
	if !fired {
		t.Error("1-in-5 ambush never fired in 200 eligible visits")
	}
}

func TestDeposit_RejectsSentinel(t *testing.T) {
	s := state.New(1)
	s.Cash = 100
	if Deposit(s, types.AllAmount) {
		t.Error("raw sentinel must be resolved by the caller, not accepted here")
	}
}
