// Package turnlog persists an append-only audit trail of finished turns in
// Postgres. It is optional: without a DSN the orchestrator runs with a no-op
// recorder and nothing here is touched.
package turnlog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	statex "github.com/paxbot/curator-agent/agent/state"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

type Config struct {
	DSN     string        `envconfig:"DSN"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"5s"`
}

// Configured reports whether a turn log backend was selected.
func (c Config) Configured() bool {
	return strings.TrimSpace(c.DSN) != ""
}

// TurnEntry is one audited turn row.
type TurnEntry struct {
	bun.BaseModel `bun:"table:turn_log"`

	ID        int64     `bun:"id,pk,autoincrement"`
	SessionID string    `bun:"session_id,notnull"`
	Query     string    `bun:"query,notnull"`
	Response  string    `bun:"response,notnull"`
	Outcome   string    `bun:"outcome,notnull"`
	At        time.Time `bun:"at,notnull"`
}

type Recorder struct {
	db      *bun.DB
	timeout time.Duration
}

// New opens the Postgres connection and ensures the turn_log table exists.
func New(ctx context.Context, cfg Config) (*Recorder, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("turn log dsn is required")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	db := bun.NewDB(sqldb, pgdialect.New())

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if _, err := db.NewCreateTable().
		Model((*TurnEntry)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create turn_log table: %w", err)
	}

	return &Recorder{db: db, timeout: cfg.Timeout}, nil
}

func (r *Recorder) Record(ctx context.Context, sessionID string, turn statex.Turn) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	entry := &TurnEntry{
		SessionID: sessionID,
		Query:     turn.Query,
		Response:  turn.Response,
		Outcome:   turn.Outcome,
		At:        turn.At,
	}
	if _, err := r.db.NewInsert().Model(entry).Exec(ctx); err != nil {
		return fmt.Errorf("insert turn log entry: %w", err)
	}
	return nil
}

func (r *Recorder) Close() error {
	return r.db.Close()
}
