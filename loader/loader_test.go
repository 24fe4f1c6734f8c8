package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nathoo/taipan/types"
)

func writeTuning(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing tuning file: %v", err)
	}
	return path
}

func TestLoad_ScalarOverrides(t *testing.T) {
	path := writeTuning(t, `
tuning = {
	bank_rate = 0.01,
	debt_rate = 0.2,
	mugging_odds = 10,
	retire_threshold = 2000000,
}
`)
	defs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if defs.BankRate != 0.01 {
		t.Errorf("bank rate %g, want 0.01", defs.BankRate)
	}
	if defs.DebtRate != 0.2 {
		t.Errorf("debt rate %g, want 0.2", defs.DebtRate)
	}
	if defs.MuggingOdds != 10 {
		t.Errorf("mugging odds %d, want 10", defs.MuggingOdds)
	}
	if defs.RetireThreshold != 2000000 {
		t.Errorf("retire threshold %d, want 2000000", defs.RetireThreshold)
	}

	// Untouched keys keep the defaults.
	if defs.MaxMonths != 600 {
		t.Errorf("max months %d, want default 600", defs.MaxMonths)
	}
}

func TestLoad_TableOverridesArePartial(t *testing.T) {
	path := writeTuning(t, `
tuning = {
	base_multiplier = { opium = 2000 },
	port_modifier = {
		silk = { manila = 20 },
	},
	distances = {
		hong_kong = { batavia = 9 },
	},
}
`)
	defs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if defs.BaseMultiplier[types.Opium] != 2000 {
		t.Errorf("opium multiplier %d, want 2000", defs.BaseMultiplier[types.Opium])
	}
	if defs.BaseMultiplier[types.Silk] != 100 {
		t.Errorf("silk multiplier %d, want untouched 100", defs.BaseMultiplier[types.Silk])
	}
	if defs.PortModifier[types.Silk][types.Manila] != 20 {
		t.Errorf("silk modifier in Manila %d, want 20", defs.PortModifier[types.Silk][types.Manila])
	}
	if defs.PortModifier[types.Silk][types.Shanghai] != 14 {
		t.Errorf("silk modifier in Shanghai %d, want untouched 14",
			defs.PortModifier[types.Silk][types.Shanghai])
	}
	if defs.Distances[types.HongKong][types.Batavia] != 9 {
		t.Errorf("Hong Kong -> Batavia %d, want 9", defs.Distances[types.HongKong][types.Batavia])
	}
}

func TestLoad_RejectsUnknownKey(t *testing.T) {
	path := writeTuning(t, `tuning = { bnak_rate = 0.01 }`)
	if _, err := Load(path); err == nil {
		t.Error("expected an error for a misspelled key")
	}
}

func TestLoad_RejectsUnknownPort(t *testing.T) {
	path := writeTuning(t, `
tuning = { distances = { macau = { batavia = 2 } } }
`)
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unknown port")
	}
}

func TestLoad_RejectsMissingTable(t *testing.T) {
	path := writeTuning(t, `x = 1`)
	if _, err := Load(path); err == nil {
		t.Error("expected an error when the tuning table is missing")
	}
}

func TestLoad_ValidationCatchesBadOdds(t *testing.T) {
	path := writeTuning(t, `tuning = { mugging_odds = 0 }`)
	if _, err := Load(path); err == nil {
		t.Error("expected a validation error for zero odds")
	}
}

func TestLoad_ValidationCatchesNegativeRate(t *testing.T) {
	path := writeTuning(t, `tuning = { debt_rate = -0.5 }`)
	if _, err := Load(path); err == nil {
		t.Error("expected a validation error for a negative rate")
	}
}

func TestLoad_LuaExpressionsWork(t *testing.T) {
	path := writeTuning(t, `
local base = 500
tuning = { wu_warn_debt = base * 20 + math.floor(0.5) }
`)
	defs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if defs.WuWarnDebt != 10000 {
		t.Errorf("wu warn debt %d, want computed 10000", defs.WuWarnDebt)
	}
}
