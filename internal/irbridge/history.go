package irbridge

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// History is the durable command log, the same database/sql-over-
// mattn/go-sqlite3 shape as the teacher's SQLiteStorage, with a single
// append-only commands table in place of the teacher's upserted flows
// table (a decoded command is an event, not a document to overwrite).
type History struct {
	db *sql.DB
}

// NewHistory opens (creating if necessary) a SQLite database at dbPath and
// ensures the commands table exists.
func NewHistory(dbPath string) (*History, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("irbridge: failed to open database: %w", err)
	}

	h := &History{db: db}
	if err := h.init(); err != nil {
		db.Close()
		return nil, err
	}

	return h, nil
}

func (h *History) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS commands (
		id TEXT PRIMARY KEY,
		pin INTEGER NOT NULL,
		protocol TEXT NOT NULL,
		address INTEGER NOT NULL,
		command INTEGER NOT NULL,
		repeat INTEGER NOT NULL,
		timestamp DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_commands_timestamp ON commands(timestamp);
	CREATE INDEX IF NOT EXISTS idx_commands_protocol ON commands(protocol);
	`

	if _, err := h.db.Exec(schema); err != nil {
		return fmt.Errorf("irbridge: failed to create schema: %w", err)
	}
	return nil
}

// Append inserts one decoded-command envelope into the history table.
func (h *History) Append(env Envelope) error {
	query := `
		INSERT INTO commands (id, pin, protocol, address, command, repeat, timestamp)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	repeat := 0
	if env.Repeat {
		repeat = 1
	}

	_, err := h.db.Exec(query, env.ID, env.Pin, env.Protocol, env.Address, env.Command, repeat, env.Timestamp)
	if err != nil {
		return fmt.Errorf("irbridge: failed to append command: %w", err)
	}
	return nil
}

// Recent returns the most recent limit commands, newest first.
func (h *History) Recent(limit int) ([]Envelope, error) {
	query := `
		SELECT id, pin, protocol, address, command, repeat, timestamp
		FROM commands ORDER BY timestamp DESC LIMIT ?
	`

	rows, err := h.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("irbridge: failed to query commands: %w", err)
	}
	defer rows.Close()

	envs := []Envelope{}
	for rows.Next() {
		var env Envelope
		var repeat int
		if err := rows.Scan(&env.ID, &env.Pin, &env.Protocol, &env.Address, &env.Command, &repeat, &env.Timestamp); err != nil {
			continue
		}
		env.Repeat = repeat != 0
		envs = append(envs, env)
	}

	return envs, nil
}

// Close closes the database connection.
func (h *History) Close() error {
	return h.db.Close()
}
