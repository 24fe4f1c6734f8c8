// Package types defines the shared data structures for the Taipan engine.
// This package contains only type definitions and constant tables, no logic.
package types

// Port is one of the seven trading locations, or AtSea while on a voyage.
type Port int

const (
	AtSea Port = iota
	HongKong
	Shanghai
	Nagasaki
	Saigon
	Manila
	Singapore
	Batavia
)

// PortNone marks "no destination" in GameState.NextDestination.
const PortNone Port = -1

// HomePort hosts the moneylender, the repairer, and the warehouse.
const HomePort = HongKong

// Ports lists the seven reachable ports in menu order.
var Ports = []Port{HongKong, Shanghai, Nagasaki, Saigon, Manila, Singapore, Batavia}

// PortNames maps ports (including AtSea) to display names.
var PortNames = map[Port]string{
	AtSea:     "At sea",
	HongKong:  "Hong Kong",
	Shanghai:  "Shanghai",
	Nagasaki:  "Nagasaki",
	Saigon:    "Saigon",
	Manila:    "Manila",
	Singapore: "Singapore",
	Batavia:   "Batavia",
}

// Commodity is one of the four tradeable cargo types.
type Commodity int

const (
	Opium Commodity = iota
	Silk
	Arms
	General
)

// Commodities lists all cargo types, most valuable first. Order matters:
// jettison during battle walks this slice backwards (cheapest first).
var Commodities = []Commodity{Opium, Silk, Arms, General}

// CommodityNames maps commodities to display names.
var CommodityNames = map[Commodity]string{
	Opium:   "Opium",
	Silk:    "Silk",
	Arms:    "Arms",
	General: "General Cargo",
}

// GameState is the single mutable aggregate owned by the turn loop and
// passed by reference into every module call. Mutators maintain the
// invariant CargoSpace == Capacity - gunHold*Guns - sum(Inventory),
// where gunHold is the tuned hold size per gun mounting.
type GameState struct {
	Firm string

	Cash int
	Bank int
	Debt int

	Capacity   int // total hold size, consumed by cargo and guns
	CargoSpace int // unused hold capacity
	Guns       int
	Damage     int // hull damage percentage, 0..100

	Inventory map[Commodity]int // aboard ship
	Warehouse map[Commodity]int // stored onshore, survives voyages

	Location        Port
	NextDestination Port // PortNone unless a voyage is in progress

	Prices map[Commodity]int // unit prices at the current port

	Month int // 1..12
	Year  int // from 1860

	LiYuen    bool // protection arrangement with the pirate lord, lapses at month end
	WuWarning bool // debt collector has delivered his warning
	WuBailout int  // bailout loans taken so far; scales future terms
	WuRefused bool // declined a bailout while destitute; terminal

	EnemyHealth float64 // difficulty scalars, ramp up per year
	EnemyDamage float64
	BattleOdds  int // 1-in-N chance of hostiles per sea leg, floor 3

	RNGSeed     int64
	RNGPosition int64
}

// EventType tags a GameEvent.
type EventType int

const (
	EventNone EventType = iota
	EventWuWarning
	EventWuBailout
	EventRepairOffer
	EventExtortion
	EventShipOffer
	EventGunOffer
	EventMugging
	EventPirates
	EventLiYuenFleet
	EventStorm
	EventSeizure
	EventWarehouseRaid
)

// EventData carries the resolved numeric parameters of an event.
// Only the fields relevant to the event type are set.
type EventData struct {
	ShipPrice   int // ship offer
	NewCapacity int
	GunPrice    int // gun offer
	NumGuns     int
	MoneyLoss   int // mugging
	Extortion   int // Li Yuen's demand
	LoanAmount  int // Wu bailout
	RepayAmount int
	RepairRate  int // cost per point of damage
	RepairFull  int // rate * current damage
	RepairSpend int // amount the player chose to spend
	NumShips    int // hostile fleet size

	StormDamage   int  // hull damage rolled for a storm
	StormCritical bool // the storm has a critical moment
	OffCourse     Port // storm diversion target, PortNone when on course
}

// GameEvent is a transient value produced by the event generator and
// consumed exactly once by the outcome applier.
type GameEvent struct {
	Type          EventType
	Description   string
	RequiresInput bool
	Data          EventData
}

// EventResult is the player's (or the engine's) resolution of an event.
type EventResult int

const (
	ResultNone EventResult = iota
	ResultAccepted
	ResultDeclined
	ResultFled
	ResultDamaged
	ResultLoss
)

// PirateKind identifies a hostile fleet and carries its severity
// multiplier as named data rather than an enum-to-number cast.
type PirateKind struct {
	Name     string
	Severity int
}

var (
	GenericPirates = PirateKind{Name: "hostile ships", Severity: 1}
	LiYuenFleet    = PirateKind{Name: "Li Yuen's pirate fleet", Severity: 2}
)

// BattleOutcome is the terminal state of a sea battle.
type BattleOutcome int

const (
	BattleWon BattleOutcome = iota
	BattleFled
	BattleLost
	BattleInterrupted
)

// Order is a battle command.
type Order int

const (
	OrderFight Order = iota
	OrderRun
	OrderThrowCargo
)

// StartChoice selects one of the two fixed starting bundles.
type StartChoice int

const (
	CashStart StartChoice = iota // 400 cash, 5000 debt, 60 hold, no guns, hostile
	GunsStart                    // no cash, no debt, 10 hold, 5 guns, allied
)

// PortAction is a port menu choice.
type PortAction int

const (
	ActionBuy PortAction = iota
	ActionSell
	ActionBank
	ActionWarehouse
	ActionVisitWu
	ActionTravel
	ActionSave
	ActionQuit
	ActionRetire
)

// EndReason explains why the game ended.
type EndReason int

const (
	EndNone EndReason = iota
	EndBankrupt
	EndShipLost
	EndTimeUp
	EndRefusedBailout
	EndRetired
	EndQuit
)

// AllAmount is the sentinel an amount prompt returns for "all"; the
// engine resolves it to the context-dependent maximum before validation.
const AllAmount = -1
