package scores

import (
	"path/filepath"
	"testing"

	"github.com/nathoo/taipan/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndTop(t *testing.T) {
	store := openTestStore(t)

	id, err := store.Record("Struan & Co.", 500, 1250000, 25, types.EndRetired)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}
	if _, err := store.Record("Brock & Sons", 900, 1800000, 20, types.EndRetired); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := store.Record("Cooper-Tillman", -50, -5000, 10, types.EndBankrupt); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := store.Top(10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Firm != "Brock & Sons" {
		t.Errorf("leader %q, want Brock & Sons", entries[0].Firm)
	}
	if entries[2].Reason != "bankrupt" {
		t.Errorf("last reason %q, want bankrupt", entries[2].Reason)
	}
}

func TestTop_TiesBrokenByShorterCareer(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Record("Slow", 100, 300000, 30, types.EndTimeUp); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := store.Record("Fast", 100, 300000, 12, types.EndRetired); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := store.Top(10)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if entries[0].Firm != "Fast" {
		t.Errorf("leader %q, want the shorter career on a tie", entries[0].Firm)
	}
}

func TestTop_RespectsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.Record("Firm", i, i*100, 10, types.EndQuit); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	entries, err := store.Top(3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestReasonLabel(t *testing.T) {
	if got := ReasonLabel(types.EndShipLost); got != "ship lost" {
		t.Errorf("label %q, want %q", got, "ship lost")
	}
	if got := ReasonLabel(types.EndNone); got != "unknown" {
		t.Errorf("label %q, want %q", got, "unknown")
	}
}
