package save

import (
	"path/filepath"
	"testing"

	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/types"
)

func sampleState() *types.GameState {
	s := state.New(42)
	state.ApplyStart(s, state.DefaultDefs(), types.CashStart)
	s.Firm = "Tai-Pan & Co."
	s.Cash = 12345
	s.Bank = 678
	s.Debt = 9000
	s.Inventory[types.Opium] = 3
	s.CargoSpace -= 3
	s.Warehouse[types.Silk] = 40
	s.Prices[types.Arms] = 66
	s.Month = 7
	s.Year = 1863
	s.LiYuen = true
	s.WuBailout = 2
	s.Damage = 15
	s.RNGPosition = 123
	return s
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := sampleState()

	data, err := Save(s)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	restored := &types.GameState{}
	ApplySave(restored, sd)

	if restored.Firm != s.Firm {
		t.Errorf("firm %q, want %q", restored.Firm, s.Firm)
	}
	if restored.Cash != s.Cash || restored.Bank != s.Bank || restored.Debt != s.Debt {
		t.Errorf("money %d/%d/%d, want %d/%d/%d",
			restored.Cash, restored.Bank, restored.Debt, s.Cash, s.Bank, s.Debt)
	}
	if restored.Inventory[types.Opium] != 3 {
		t.Errorf("opium %d, want 3", restored.Inventory[types.Opium])
	}
	if restored.Warehouse[types.Silk] != 40 {
		t.Errorf("warehoused silk %d, want 40", restored.Warehouse[types.Silk])
	}
	if restored.Month != 7 || restored.Year != 1863 {
		t.Errorf("date %d/%d, want 7/1863", restored.Month, restored.Year)
	}
	if !restored.LiYuen || restored.WuBailout != 2 {
		t.Error("Wu and Li Yuen standing not preserved")
	}
	if restored.RNGSeed != 42 || restored.RNGPosition != 123 {
		t.Errorf("rng %d@%d, want 42@123", restored.RNGSeed, restored.RNGPosition)
	}
	if err := state.CheckInvariants(restored, state.DefaultDefs()); err != nil {
		t.Errorf("invariants violated after restore: %v", err)
	}
}

func TestLoad_NilMapsBecomeEmpty(t *testing.T) {
	sd, err := Load([]byte(`{"version":"1","firm":"X"}`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sd.Inventory == nil || sd.Warehouse == nil || sd.Prices == nil {
		t.Error("maps should never be nil after load")
	}
}

func TestLoad_RejectsGarbage(t *testing.T) {
	if _, err := Load([]byte("not json")); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestFileSaver_RoundTripThroughDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.json")
	s := sampleState()

	if err := (FileSaver{Path: path}).Save(s); err != nil {
		t.Fatalf("file save: %v", err)
	}

	restored, err := LoadFile(path)
	if err != nil {
		t.Fatalf("file load: %v", err)
	}
	if restored.Cash != s.Cash || restored.Firm != s.Firm {
		t.Error("state differs after disk round trip")
	}
}

func TestRestoredRNGContinuesSequence(t *testing.T) {
	r := rng.NewRNG(42)
	for i := 0; i < 10; i++ {
		r.Roll(6)
	}

	s := sampleState()
	s.RNGSeed = r.Seed()
	s.RNGPosition = r.Position()

	data, err := Save(s)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	sd, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	restored := rng.RestoreRNG(sd.RNGSeed, sd.RNGPosition)
	for i := 0; i < 20; i++ {
		a := r.Roll(6)
		b := restored.Roll(6)
		if a != b {
			t.Fatalf("roll %d diverged after restore: %d vs %d", i, a, b)
		}
	}
}
