// Package engine is the turn-loop orchestrator. It owns the single
// mutable GameState, drives the UI collaborator for every decision, and
// sequences the subsystem packages: pricing on arrival, the event
// generator and applier, sea battles, trading, banking, and the score
// check that ends the game. All randomness flows through one injectable
// RNG so a seed fully determines a run.
package engine

import (
	"fmt"

	"github.com/nathoo/taipan/engine/banking"
	"github.com/nathoo/taipan/engine/battle"
	"github.com/nathoo/taipan/engine/clock"
	"github.com/nathoo/taipan/engine/events"
	"github.com/nathoo/taipan/engine/pricing"
	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/engine/score"
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/engine/trading"
	"github.com/nathoo/taipan/engine/travel"
	"github.com/nathoo/taipan/types"
)

// Saver persists the game on demand. Nil disables the save action.
type Saver interface {
	Save(s *types.GameState) error
}

// Outcome summarizes a finished game.
type Outcome struct {
	Reason   types.EndReason
	Score    int
	NetWorth int
	Months   int
}

// Engine binds state, tuning, RNG and UI for one game.
type Engine struct {
	State *types.GameState
	Defs  *state.Defs
	RNG   *rng.RNG
	UI    UI
	Saver Saver
}

// New creates an engine around an existing state, typically a fresh one
// from state.New or a restored save.
func New(s *types.GameState, defs *state.Defs, r *rng.RNG, ui UI) *Engine {
	return &Engine{State: s, Defs: defs, RNG: r, UI: ui}
}

// Setup runs the pre-game dialogue on a fresh state: firm name, the
// starting bundle, and the first price table for the home port. Skip it
// when resuming from a save.
func (e *Engine) Setup() {
	s := e.State
	s.Firm = e.UI.AskFirmName()
	state.ApplyStart(s, e.Defs, e.UI.AskStartChoice())
	pricing.SetPortPrices(s, e.Defs, e.RNG)
	e.UI.ReportMessage(fmt.Sprintf(
		"Welcome aboard, Taipan. The firm of %s sails out of %s, %d %d.",
		s.Firm, types.PortNames[s.Location], s.Month, s.Year))
}

// Run drives the game to completion and returns the outcome. The end
// conditions are checked at the top of every iteration, after all of a
// turn's mutations have landed, so the arrival pipeline can still offer
// a destitute player Wu's bailout before bankruptcy is called.
func (e *Engine) Run() Outcome {
	for {
		if reason := score.Check(e.State, e.Defs); reason != types.EndNone {
			return e.finish(reason)
		}
		if e.State.Location == types.AtSea {
			e.seaLeg()
			continue
		}
		if reason := e.portTurn(); reason != types.EndNone {
			return e.finish(reason)
		}
	}
}

func (e *Engine) finish(reason types.EndReason) Outcome {
	return Outcome{
		Reason:   reason,
		Score:    score.Score(e.State),
		NetWorth: state.NetWorth(e.State),
		Months:   state.MonthsPlayed(e.State),
	}
}

// ---- port turns ----

// portTurn resolves one stationary turn in port: a possible price
// shock, a possible event, then player actions until the ship departs
// or the player ends the game. Returns EndNone unless the player quit
// or retired; involuntary endings surface through the next score check.
func (e *Engine) portTurn() types.EndReason {
	s := e.State

	if msg := pricing.MaybeShock(s, e.Defs, e.RNG); msg != "" {
		e.UI.ReportMessage(msg)
	}
	if ev := events.PortTurnEvent(s, e.Defs, e.RNG); ev != nil {
		e.resolveEvent(ev)
	}
	if score.Check(s, e.Defs) != types.EndNone {
		return types.EndNone
	}

	for {
		switch e.UI.AskPortAction(s) {
		case types.ActionBuy:
			e.doBuy()
		case types.ActionSell:
			e.doSell()
		case types.ActionBank:
			e.doBank()
		case types.ActionWarehouse:
			e.doWarehouse()
		case types.ActionVisitWu:
			e.visitWu()
			if score.Check(s, e.Defs) != types.EndNone {
				return types.EndNone
			}
		case types.ActionTravel:
			if e.doTravel() {
				return types.EndNone
			}
		case types.ActionSave:
			e.doSave()
		case types.ActionQuit:
			if e.UI.AskYesNo("Leave the China trade for good, Taipan?") {
				return types.EndQuit
			}
		case types.ActionRetire:
			if !score.CanRetire(s, e.Defs) {
				e.UI.ReportMessage("You need a million in net worth to retire, Taipan.")
				break
			}
			if e.UI.AskYesNo("Retire to a life of leisure, Taipan?") {
				return types.EndRetired
			}
		}
	}
}

func (e *Engine) doBuy() {
	s := e.State
	c := e.UI.AskCommodity("What do you wish me to buy, Taipan?")
	price := s.Prices[c]
	max := 0
	if price > 0 {
		max = s.Cash / price
		if max > s.CargoSpace {
			max = s.CargoSpace
		}
	}

	qty := e.UI.AskAmount(fmt.Sprintf("How much %s at %d?", types.CommodityNames[c], price), max)
	qty = trading.ResolveBuyAll(s, c, qty)
	if qty == 0 {
		return
	}
	if !trading.Buy(s, c, qty) {
		if qty > s.CargoSpace {
			e.UI.ReportMessage("There's not enough room in the hold, Taipan!")
		} else {
			e.UI.ReportMessage("Taipan, you can't afford that!")
		}
	}
}

func (e *Engine) doSell() {
	s := e.State
	c := e.UI.AskCommodity("What do you wish me to sell, Taipan?")
	qty := e.UI.AskAmount(
		fmt.Sprintf("How much %s at %d?", types.CommodityNames[c], s.Prices[c]),
		s.Inventory[c])
	qty = trading.ResolveSellAll(s, c, qty)
	if qty == 0 {
		return
	}
	if !trading.Sell(s, c, qty) {
		e.UI.ReportMessage(fmt.Sprintf("We don't have that much %s, Taipan!",
			types.CommodityNames[c]))
	}
}

// doBank runs the deposit and withdrawal counters. Hong Kong only.
func (e *Engine) doBank() {
	s := e.State
	if s.Location != types.HomePort {
		e.UI.ReportMessage("The bank is in Hong Kong, Taipan.")
		return
	}

	amount := e.UI.AskAmount("How much will you deposit?", s.Cash)
	if amount == types.AllAmount {
		amount = s.Cash
	}
	if amount > 0 && !banking.Deposit(s, amount) {
		e.UI.ReportMessage("Taipan, you don't have that much cash!")
	}

	amount = e.UI.AskAmount("How much will you withdraw?", s.Bank)
	if amount == types.AllAmount {
		amount = s.Bank
	}
	if amount > 0 && !banking.Withdraw(s, amount) {
		e.UI.ReportMessage("Taipan, you don't have that much in the bank!")
	}
}

// doWarehouse moves cargo between the hold and the onshore warehouse.
// Hong Kong only.
func (e *Engine) doWarehouse() {
	s := e.State
	if s.Location != types.HomePort {
		e.UI.ReportMessage("Your warehouse is in Hong Kong, Taipan.")
		return
	}

	if e.UI.AskYesNo("Shall we move cargo ashore, Taipan?") {
		c := e.UI.AskCommodity("What shall we move ashore?")
		qty := e.UI.AskAmount("How much?", s.Inventory[c])
		if qty == types.AllAmount {
			qty = s.Inventory[c]
		}
		if qty > 0 && !trading.Store(s, e.Defs, c, qty) {
			e.UI.ReportMessage("The warehouse can't take that much, Taipan!")
		}
	}

	if e.UI.AskYesNo("Shall we bring cargo aboard, Taipan?") {
		c := e.UI.AskCommodity("What shall we bring aboard?")
		max := s.Warehouse[c]
		if max > s.CargoSpace {
			max = s.CargoSpace
		}
		qty := e.UI.AskAmount("How much?", max)
		if qty == types.AllAmount {
			qty = max
		}
		if qty > 0 && !trading.Retrieve(s, c, qty) {
			e.UI.ReportMessage("There's not enough room in the hold, Taipan!")
		}
	}
}

// visitWu runs Elder Brother Wu's office: the bailout when destitute,
// otherwise repayment and fresh borrowing, then the chance of his
// cutthroats on the way out.
func (e *Engine) visitWu() {
	s := e.State
	if s.Location != types.HomePort {
		e.UI.ReportMessage("Elder Brother Wu does business in Hong Kong, Taipan.")
		return
	}

	if state.Destitute(s) {
		e.resolveEvent(events.BailoutOffer(s, e.RNG))
		return
	}

	if s.Debt > 0 && s.Cash > 0 {
		amount := e.UI.AskAmount("How much will you repay him?", banking.MaxRepay(s))
		if amount == types.AllAmount {
			amount = banking.MaxRepay(s)
		}
		if amount > 0 && !banking.Repay(s, amount) {
			e.UI.ReportMessage("Taipan, you don't have that much cash!")
		}
	}

	if e.UI.AskYesNo("Do you want to borrow from Elder Brother Wu?") {
		amount := e.UI.AskAmount("How much will you borrow?", banking.MaxBorrow(s))
		if amount == types.AllAmount {
			amount = banking.MaxBorrow(s)
		}
		if amount > 0 && !banking.Borrow(s, amount) {
			e.UI.ReportMessage("He won't loan you so much, Taipan!")
		}
	}

	if guards := banking.AfterWuVisit(s, e.RNG); guards > 0 {
		e.UI.ReportMessage(fmt.Sprintf(
			"Bad joss!! %d of your bodyguards have been killed by cutthroats "+
				"and you have been robbed of all of your cash, Taipan!!", guards))
	}
}

// doTravel starts a voyage; returns true once the ship has cast off.
func (e *Engine) doTravel() bool {
	s := e.State
	dest := e.UI.AskDestination(s)
	if dest == s.Location {
		e.UI.ReportMessage(fmt.Sprintf("You're already in %s, Taipan.", types.PortNames[dest]))
		return false
	}
	if !travel.Begin(s, e.Defs, dest) {
		e.UI.ReportMessage("The ship is too damaged to sail, Taipan!!")
		return false
	}
	e.UI.ReportMessage(fmt.Sprintf("Castin' off, Taipan. Course set for %s.",
		types.PortNames[dest]))
	return true
}

func (e *Engine) doSave() {
	if e.Saver == nil {
		e.UI.ReportMessage("There's nowhere to save the game, Taipan.")
		return
	}
	e.State.RNGPosition = e.RNG.Position()
	if err := e.Saver.Save(e.State); err != nil {
		e.UI.ReportMessage(fmt.Sprintf("Couldn't save the game: %v", err))
		return
	}
	e.UI.ReportMessage("Game saved, Taipan.")
}

// ---- sea legs ----

// battleConsole adapts the UI to the battle package's collaborator.
type battleConsole struct {
	e *Engine
}

func (c battleConsole) Report(text string) { c.e.UI.ReportMessage(text) }

func (c battleConsole) Order(numShips int) types.Order {
	return c.e.UI.AskBattleOrder(c.e.State, numShips)
}

// seaLeg resolves one voyage: the hostile encounter roll, the
// independent Li Yuen roll, the weather, then arrival. A lost ship
// ends the leg early; the score check at the loop top picks it up.
func (e *Engine) seaLeg() {
	s := e.State

	if ev := events.SeaPirates(s, e.RNG); ev != nil {
		e.UI.ReportMessage(ev.Description)
		if !e.fightOut(ev.Data.NumShips, types.GenericPirates) {
			return
		}
	}

	if ev := events.SeaLiYuen(s, e.Defs, e.RNG); ev != nil {
		e.UI.ReportMessage(ev.Description)
		if ev.Data.NumShips > 0 {
			if !e.fightOut(ev.Data.NumShips, types.LiYuenFleet) {
				return
			}
		}
	}

	if ev := events.Storm(s, e.Defs, e.RNG); ev != nil {
		e.resolveEvent(ev)
		if s.Damage >= 100 {
			return
		}
	}

	e.arrive()
}

// fightOut runs a battle and applies its outcome. Returns false when
// the ship was lost. A third-party interruption hands generic pirates
// over to Li Yuen's fleet: a free pass under protection, otherwise a
// second battle against his rival fleet.
func (e *Engine) fightOut(numShips int, kind types.PirateKind) bool {
	s := e.State
	res := battle.Run(s, e.Defs, e.RNG, battleConsole{e}, numShips, kind)

	switch res.Outcome {
	case types.BattleWon:
		s.Cash += res.Booty
		e.UI.ReportMessage(fmt.Sprintf(
			"We captured some booty, Taipan. It's worth %d!", res.Booty))
		return true

	case types.BattleFled:
		return true

	case types.BattleLost:
		// Hull gone; mark the ship lost for the end-condition check.
		s.Damage = 100
		e.UI.ReportMessage("The buggers got us, Taipan!! The ship is going down!!")
		return false

	case types.BattleInterrupted:
		e.UI.ReportMessage("Li Yuen's fleet has arrived and driven them off, Taipan!")
		if s.LiYuen {
			e.UI.ReportMessage("Good joss!! They let us be!!")
			return true
		}
		rival := events.RivalFleetSize(s, e.RNG)
		e.UI.ReportMessage(fmt.Sprintf(
			"%d ships of Li Yuen's pirate fleet turn on us, Taipan!!", rival))
		return e.fightOut(rival, types.LiYuenFleet)
	}
	return true
}

// arrive completes the voyage: dock, advance the clock and interest,
// reprice the port, ease the hostile odds, then run arrival events.
func (e *Engine) arrive() {
	s := e.State

	travel.Arrive(s)
	clock.Advance(s, e.Defs)
	pricing.SetPortPrices(s, e.Defs, e.RNG)
	if s.BattleOdds > 3 {
		s.BattleOdds--
	}

	e.UI.ReportMessage(fmt.Sprintf("Arriving at %s, Taipan. It is the %d. month of %d.",
		types.PortNames[s.Location], s.Month, s.Year))

	if ev := events.ArrivalEvent(s, e.Defs, e.RNG); ev != nil {
		e.resolveEvent(ev)
	}
}

// ---- event resolution ----

// resolveEvent narrates an event, collects the player's decision when
// one is required, applies the payoff, and follows any chained event.
func (e *Engine) resolveEvent(ev *types.GameEvent) {
	s := e.State
	for ev != nil {
		e.UI.ReportMessage(ev.Description)

		result := e.decide(ev)
		if ev.Type == types.EventRepairOffer && result == types.ResultAccepted {
			max := ev.Data.RepairFull
			if max > s.Cash {
				max = s.Cash
			}
			spend := e.UI.AskAmount("How much will you spend on repairs?", max)
			if spend == types.AllAmount {
				spend = max
			}
			ev.Data.RepairSpend = spend
		}

		next, note := events.Apply(s, e.Defs, ev, result, e.RNG)
		if note != "" {
			e.UI.ReportMessage(note)
		}
		ev = next
	}
}

// decide maps an event to the player's resolution. Events that need no
// input resolve to ResultNone and their payoff lands unconditionally.
func (e *Engine) decide(ev *types.GameEvent) types.EventResult {
	if !ev.RequiresInput {
		return types.ResultNone
	}

	var prompt string
	switch ev.Type {
	case types.EventExtortion:
		prompt = "Will you pay him, Taipan?"
	case types.EventWuBailout:
		prompt = "Will you accept his terms, Taipan?"
	case types.EventRepairOffer:
		prompt = "Will you have the ship repaired, Taipan?"
	case types.EventShipOffer, types.EventGunOffer:
		prompt = "Shall we take the offer, Taipan?"
	default:
		prompt = "Do you accept, Taipan?"
	}

	if e.UI.AskYesNo(prompt) {
		return types.ResultAccepted
	}
	return types.ResultDeclined
}
