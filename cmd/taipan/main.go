// Taipan is a turn-based trading game set on the China coast of 1860.
// Usage: taipan [--version] [--plain] [--load] [--seed <n>] [--config <file>]
//               [--tuning <file>] [--scores]
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nathoo/taipan/cli"
	"github.com/nathoo/taipan/config"
	"github.com/nathoo/taipan/engine"
	"github.com/nathoo/taipan/engine/rng"
	"github.com/nathoo/taipan/engine/save"
	"github.com/nathoo/taipan/engine/state"
	"github.com/nathoo/taipan/loader"
	"github.com/nathoo/taipan/scores"
	"github.com/nathoo/taipan/tui"
	"github.com/nathoo/taipan/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	resume := false
	showScores := false
	var seed int64
	var configFile string
	var tuningFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("taipan %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--load":
			resume = true
		case "--scores":
			showScores = true
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			fmt.Sscanf(args[i], "%d", &seed)
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--config requires a file path\n")
				os.Exit(1)
			}
			i++
			configFile = args[i]
		case "--tuning":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--tuning requires a file path\n")
				os.Exit(1)
			}
			i++
			tuningFile = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument %q\n", args[i])
			fmt.Fprintf(os.Stderr, "Usage: taipan [--version] [--plain] [--load] [--seed <n>] [--config <file>] [--tuning <file>] [--scores]\n")
			os.Exit(1)
		}
	}

	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if cfg.Plain {
		plain = true
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	if cfg.TuningPath != "" && tuningFile == "" {
		tuningFile = cfg.TuningPath
	}

	defs := state.DefaultDefs()
	if tuningFile != "" {
		var err error
		defs, err = loader.Load(tuningFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tuning: %v\n", err)
			os.Exit(1)
		}
	}

	store := openScores(cfg.ScoresPath)
	if store != nil {
		defer store.Close()
	}

	if showScores {
		printTop(store)
		return
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var s *types.GameState
	var r *rng.RNG
	if resume {
		loaded, err := save.LoadFile(cfg.SavePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading save: %v\n", err)
			os.Exit(1)
		}
		s = loaded
		r = rng.RestoreRNG(s.RNGSeed, s.RNGPosition)
	} else {
		s = state.New(seed)
		r = rng.NewRNG(seed)
	}

	eng := engine.New(s, defs, r, nil)
	if dir := filepath.Dir(cfg.SavePath); dir != "" {
		os.MkdirAll(dir, 0o755)
	}
	eng.Saver = save.FileSaver{Path: cfg.SavePath}

	var out engine.Outcome
	if plain || !isTerminal() {
		c := cli.New()
		eng.UI = c
		if !resume {
			eng.Setup()
		}
		out = eng.Run()
		printOutcome(out)
	} else {
		var err error
		out, err = tui.Run(eng, resume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if store != nil && out.Reason != types.EndNone {
		if _, err := store.Record(s.Firm, out.Score, out.NetWorth, out.Months, out.Reason); err != nil {
			fmt.Fprintf(os.Stderr, "Couldn't record score: %v\n", err)
		}
		printTop(store)
	}
}

// openScores opens the score database, creating its directory first.
// Failure is not fatal; the game just runs without a leaderboard.
func openScores(path string) *scores.Store {
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "" {
		os.MkdirAll(dir, 0o755)
	}
	store, err := scores.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scores unavailable: %v\n", err)
		return nil
	}
	return store
}

func printOutcome(out engine.Outcome) {
	fmt.Printf("\nNet worth %s after %d months. Your score is %s.\n",
		humanize.Comma(int64(out.NetWorth)), out.Months,
		humanize.Comma(int64(out.Score)))
}

func printTop(store *scores.Store) {
	if store == nil {
		return
	}
	entries, err := store.Top(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't read leaderboard: %v\n", err)
		return
	}
	if len(entries) == 0 {
		return
	}
	fmt.Printf("\nBest taipans of the China coast:\n")
	for i, e := range entries {
		fmt.Printf("%2d. %-20s %10s  (%d months, %s)\n",
			i+1, e.Firm, humanize.Comma(int64(e.Score)), e.Months, e.Reason)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
