// Package scores provides SQLite-based storage for finished games: one
// row per game with the firm, the ending, and the final score, plus a
// best-first leaderboard query.
package scores

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nathoo/taipan/types"
)

// Entry is one finished game.
type Entry struct {
	ID       string    `db:"id"`
	Firm     string    `db:"firm"`
	Score    int       `db:"score"`
	NetWorth int       `db:"net_worth"`
	Months   int       `db:"months"`
	Reason   string    `db:"reason"`
	PlayedAt time.Time `db:"played_at"`
}

// reasonLabels are the strings stored in the reason column.
var reasonLabels = map[types.EndReason]string{
	types.EndBankrupt:       "bankrupt",
	types.EndShipLost:       "ship lost",
	types.EndTimeUp:         "time up",
	types.EndRefusedBailout: "refused bailout",
	types.EndRetired:        "retired",
	types.EndQuit:           "quit",
}

// ReasonLabel returns the stored string for an end reason.
func ReasonLabel(r types.EndReason) string {
	if label, ok := reasonLabels[r]; ok {
		return label
	}
	return "unknown"
}

// Store wraps a SQLite connection for the scores table.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open scores db: %w", err)
	}

	st := &Store{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate scores db: %w", err)
	}
	return st, nil
}

// Close closes the database connection.
func (st *Store) Close() error {
	return st.conn.Close()
}

func (st *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS scores (
		id TEXT PRIMARY KEY,
		firm TEXT NOT NULL,
		score INTEGER NOT NULL,
		net_worth INTEGER NOT NULL,
		months INTEGER NOT NULL,
		reason TEXT NOT NULL,
		played_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scores_score ON scores(score DESC);
	`
	_, err := st.conn.Exec(schema)
	return err
}

// Record inserts a finished game and returns its generated id.
func (st *Store) Record(firm string, score, netWorth, months int, reason types.EndReason) (string, error) {
	id := uuid.NewString()
	_, err := st.conn.Exec(`
		INSERT INTO scores (id, firm, score, net_worth, months, reason, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, firm, score, netWorth, months, ReasonLabel(reason), time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("record score: %w", err)
	}
	return id, nil
}

// Top returns the best n games, highest score first, ties broken by
// shorter careers.
func (st *Store) Top(n int) ([]Entry, error) {
	var entries []Entry
	err := st.conn.Select(&entries, `
		SELECT id, firm, score, net_worth, months, reason, played_at
		FROM scores
		ORDER BY score DESC, months ASC, played_at ASC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	return entries, nil
}
