// Package banking implements the bank counter and Elder Brother Wu's
// ordinary lending business. The bailout path for destitute players
// lives in the events package.
package banking

import (
	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/types"
)

// Deposit moves cash into the bank. Rejects non-positive amounts and
// amounts exceeding cash on hand.
func Deposit(s *types.GameState, amount int) bool {
	if amount <= 0 || amount > s.Cash {
		return false
	}
	s.Cash -= amount
	s.Bank += amount
	return true
}

// Withdraw moves bank balance back into cash.
func Withdraw(s *types.GameState, amount int) bool {
	if amount <= 0 || amount > s.Bank {
		return false
	}
	s.Bank -= amount
	s.Cash += amount
	return true
}

// MaxRepay returns the most the player can hand Wu right now.
func MaxRepay(s *types.GameState) int {
	if s.Cash < s.Debt {
		return s.Cash
	}
	return s.Debt
}

// Repay pays down debt with cash. Overpayment is clamped to the debt.
func Repay(s *types.GameState, amount int) bool {
	if amount <= 0 || amount > s.Cash {
		return false
	}
	if amount > s.Debt {
		amount = s.Debt
	}
	s.Cash -= amount
	s.Debt -= amount
	return true
}

// MaxBorrow returns Wu's lending ceiling: twice the cash in hand.
func MaxBorrow(s *types.GameState) int {
	return s.Cash * 2
}

// Borrow takes a loan from Wu, limited to MaxBorrow.
func Borrow(s *types.GameState, amount int) bool {
	if amount <= 0 || amount > MaxBorrow(s) {
		return false
	}
	s.Cash += amount
	s.Debt += amount
	return true
}

// AfterWuVisit rolls the cutthroat ambush that can follow a visit to Wu
// while deep in his books: debt over 20000 with cash in hand carries a
// 1-in-5 chance of being robbed of everything. Returns the number of
// bodyguards lost, or 0 when nothing happened.
func AfterWuVisit(s *types.GameState, rng *rng.RNG) int {
	if s.Debt <= 20000 || s.Cash <= 0 || !rng.OneIn(5) {
		return 0
	}
	s.Cash = 0
	return rng.Intn(3) + 1
}
