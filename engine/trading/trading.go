// Package trading validates and executes buy/sell orders against cash
// and hold space, and moves cargo between ship and warehouse.
package trading

import (
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// ResolveBuyAll maps the "all" sentinel to the maximum affordable
// quantity at the stored price. Non-sentinel amounts pass through.
func ResolveBuyAll(s *types.GameState, c types.Commodity, qty int) int {
	if qty != types.AllAmount {
		return qty
	}
	price := s.Prices[c]
	if price <= 0 {
		return 0
	}
	max := s.Cash / price
	if max > s.CargoSpace {
		max = s.CargoSpace
	}
	return max
}

// ResolveSellAll maps the "all" sentinel to the quantity held.
func ResolveSellAll(s *types.GameState, c types.Commodity, qty int) int {
	if qty != types.AllAmount {
		return qty
	}
	return s.Inventory[c]
}

// CanBuy reports whether qty units fit in the hold and the cash covers
// them at the price snapshot already stored on state.
func CanBuy(s *types.GameState, c types.Commodity, qty int) bool {
	if qty <= 0 || qty > s.CargoSpace {
		return false
	}
	return s.Cash >= s.Prices[c]*qty
}

// Buy debits cash and loads cargo. No-op if CanBuy is false.
func Buy(s *types.GameState, c types.Commodity, qty int) bool {
	if !CanBuy(s, c, qty) {
		return false
	}
	s.Cash -= s.Prices[c] * qty
	s.Inventory[c] += qty
	s.CargoSpace -= qty
	return true
}

// CanSell reports whether qty units of the commodity are held.
func CanSell(s *types.GameState, c types.Commodity, qty int) bool {
	return qty > 0 && qty <= s.Inventory[c]
}

// Sell credits cash at the current port price and unloads cargo.
// No-op if CanSell is false.
func Sell(s *types.GameState, c types.Commodity, qty int) bool {
	if !CanSell(s, c, qty) {
		return false
	}
	s.Cash += s.Prices[c] * qty
	s.Inventory[c] -= qty
	s.CargoSpace += qty
	return true
}

// WarehouseUsed returns total units stored onshore.
func WarehouseUsed(s *types.GameState) int {
	used := 0
	for _, qty := range s.Warehouse {
		used += qty
	}
	return used
}

// Store moves cargo from the hold into the onshore warehouse. Rejects
// when the quantity is not held or the warehouse would overflow.
func Store(s *types.GameState, defs *state.Defs, c types.Commodity, qty int) bool {
	if qty <= 0 || qty > s.Inventory[c] {
		return false
	}
	if WarehouseUsed(s)+qty > defs.WarehouseCapacity {
		return false
	}
	s.Inventory[c] -= qty
	s.Warehouse[c] += qty
	s.CargoSpace += qty
	return true
}

// Retrieve moves cargo from the warehouse back aboard. Rejects when the
// quantity is not stored or the hold lacks the space.
func Retrieve(s *types.GameState, c types.Commodity, qty int) bool {
	if qty <= 0 || qty > s.Warehouse[c] || qty > s.CargoSpace {
		return false
	}
	s.Warehouse[c] -= qty
	s.Inventory[c] += qty
	s.CargoSpace -= qty
	return true
}
