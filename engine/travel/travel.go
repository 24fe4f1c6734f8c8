// Package travel resolves port-to-port distances and moves the ship in
// and out of the at-sea state.
package travel

import (
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

// Distance returns the symmetric sailing distance between two ports,
// drawn from the tuning table. Unlisted pairs default to 1.
func Distance(defs *state.Defs, from, to types.Port) int {
	if from == to {
		return 0
	}
	if d, ok := defs.Distances[from][to]; ok {
		return d
	}
	if d, ok := defs.Distances[to][from]; ok {
		return d
	}
	return 1
}

// CanBegin reports whether a voyage to dest may start. The destination
// must differ from the current port and the hull must be seaworthy.
func CanBegin(s *types.GameState, defs *state.Defs, dest types.Port) bool {
	if dest == s.Location || dest == types.AtSea {
		return false
	}
	return s.Damage < defs.TravelDamageLimit
}

// Begin transitions the ship into the at-sea state. No-op when CanBegin
// is false.
func Begin(s *types.GameState, defs *state.Defs, dest types.Port) bool {
	if !CanBegin(s, defs, dest) {
		return false
	}
	s.Location = types.AtSea
	s.NextDestination = dest
	return true
}

// Arrive completes the voyage: the ship docks at the stored destination
// and the destination is cleared. The caller runs the arrival pipeline
// (clock, prices, events) afterwards.
func Arrive(s *types.GameState) {
	if s.NextDestination == types.PortNone {
		return
	}
	s.Location = s.NextDestination
	s.NextDestination = types.PortNone
}
