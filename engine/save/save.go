// Package save implements JSON serialization and deserialization of
// game state, including the RNG seed and draw position so a restored
// game continues the same deterministic sequence.
package save

import (
	"encoding/json"
	"os"

	"github.com/nathoo/taipan/types"
)

// FormatVersion is bumped on incompatible save layout changes.
const FormatVersion = "1"

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version string `json:"version"`
	Firm    string `json:"firm"`

	Cash int `json:"cash"`
	Bank int `json:"bank"`
	Debt int `json:"debt"`

	Capacity   int `json:"capacity"`
	CargoSpace int `json:"cargo_space"`
	Guns       int `json:"guns"`
	Damage     int `json:"damage"`

	Inventory map[types.Commodity]int `json:"inventory"`
	Warehouse map[types.Commodity]int `json:"warehouse"`

	Location        types.Port `json:"location"`
	NextDestination types.Port `json:"next_destination"`

	Prices map[types.Commodity]int `json:"prices"`

	Month int `json:"month"`
	Year  int `json:"year"`

	LiYuen    bool `json:"li_yuen"`
	WuWarning bool `json:"wu_warning"`
	WuBailout int  `json:"wu_bailout"`
	WuRefused bool `json:"wu_refused"`

	EnemyHealth float64 `json:"enemy_health"`
	EnemyDamage float64 `json:"enemy_damage"`
	BattleOdds  int     `json:"battle_odds"`

	RNGSeed     int64 `json:"rng_seed"`
	RNGPosition int64 `json:"rng_position"`
}

// Save serializes game state to JSON bytes.
func Save(s *types.GameState) ([]byte, error) {
	data := SaveData{
		Version:         FormatVersion,
		Firm:            s.Firm,
		Cash:            s.Cash,
		Bank:            s.Bank,
		Debt:            s.Debt,
		Capacity:        s.Capacity,
		CargoSpace:      s.CargoSpace,
		Guns:            s.Guns,
		Damage:          s.Damage,
		Inventory:       s.Inventory,
		Warehouse:       s.Warehouse,
		Location:        s.Location,
		NextDestination: s.NextDestination,
		Prices:          s.Prices,
		Month:           s.Month,
		Year:            s.Year,
		LiYuen:          s.LiYuen,
		WuWarning:       s.WuWarning,
		WuBailout:       s.WuBailout,
		WuRefused:       s.WuRefused,
		EnemyHealth:     s.EnemyHealth,
		EnemyDamage:     s.EnemyDamage,
		BattleOdds:      s.BattleOdds,
		RNGSeed:         s.RNGSeed,
		RNGPosition:     s.RNGPosition,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	// Ensure maps are never nil after load.
	if sd.Inventory == nil {
		sd.Inventory = map[types.Commodity]int{}
	}
	if sd.Warehouse == nil {
		sd.Warehouse = map[types.Commodity]int{}
	}
	if sd.Prices == nil {
		sd.Prices = map[types.Commodity]int{}
	}
	return &sd, nil
}

// ApplySave applies loaded save data onto a state.
func ApplySave(s *types.GameState, sd *SaveData) {
	s.Firm = sd.Firm
	s.Cash = sd.Cash
	s.Bank = sd.Bank
	s.Debt = sd.Debt
	s.Capacity = sd.Capacity
	s.CargoSpace = sd.CargoSpace
	s.Guns = sd.Guns
	s.Damage = sd.Damage
	s.Inventory = sd.Inventory
	s.Warehouse = sd.Warehouse
	s.Location = sd.Location
	s.NextDestination = sd.NextDestination
	s.Prices = sd.Prices
	s.Month = sd.Month
	s.Year = sd.Year
	s.LiYuen = sd.LiYuen
	s.WuWarning = sd.WuWarning
	s.WuBailout = sd.WuBailout
	s.WuRefused = sd.WuRefused
	s.EnemyHealth = sd.EnemyHealth
	s.EnemyDamage = sd.EnemyDamage
	s.BattleOdds = sd.BattleOdds
	s.RNGSeed = sd.RNGSeed
	s.RNGPosition = sd.RNGPosition
}

// FileSaver writes saves to a fixed path. It satisfies the engine's
// Saver interface.
type FileSaver struct {
	Path string
}

func (f FileSaver) Save(s *types.GameState) error {
	data, err := Save(s)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o644)
}

// LoadFile reads a save file and reconstructs the game state.
func LoadFile(path string) (*types.GameState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sd, err := Load(data)
	if err != nil {
		return nil, err
	}
	s := &types.GameState{}
	ApplySave(s, sd)
	return s, nil
}
