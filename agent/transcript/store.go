// Package transcript persists conversation transcripts in SQLite. A Session
// is the opaque resumable handle the rest of the system passes around; only
// this package interprets it.
package transcript

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS transcript_messages (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	identity    TEXT NOT NULL,
	role        TEXT NOT NULL,
	content     TEXT NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_transcript_identity ON transcript_messages(identity, id);
`

// Store wraps the SQLite database holding transcripts for every identity.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the transcript database in dataDir and applies the
// schema. Pass ":memory:" as dataDir for an in-memory database (used by tests).
func Open(dataDir string) (*Store, error) {
	var dsn string
	if dataDir == ":memory:" {
		dsn = ":memory:"
	} else {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		dsn = filepath.Join(dataDir, "transcripts.db")
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening transcript database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging transcript database: %w", err)
	}

	// Single connection avoids "database is locked" under concurrent turns.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting journal mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying transcript schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Session returns the resumable transcript handle for identity.
func (s *Store) Session(identity string) (*Session, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return nil, errors.New("transcript identity is empty")
	}
	return &Session{store: s, identity: identity}, nil
}

// Message is one persisted transcript line.
type Message struct {
	Role      string
	Content   string
	CreatedAt time.Time
}

// Session appends to and reads from one identity's transcript.
type Session struct {
	store    *Store
	identity string
}

func (s *Session) Identity() string {
	return s.identity
}

// Append persists one transcript line.
func (s *Session) Append(ctx context.Context, role, content string) error {
	role = strings.TrimSpace(role)
	if role == "" {
		return errors.New("transcript role is empty")
	}
	_, err := s.store.db.ExecContext(ctx,
		`INSERT INTO transcript_messages (identity, role, content, created_at) VALUES (?, ?, ?, ?)`,
		s.identity, role, content, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("appending transcript message: %w", err)
	}
	return nil
}

// History returns up to limit most-recent messages in chronological order.
// limit <= 0 returns the full transcript.
func (s *Session) History(ctx context.Context, limit int) ([]Message, error) {
	query := `SELECT role, content, created_at FROM transcript_messages WHERE identity = ? ORDER BY id`
	args := []any{s.identity}
	if limit > 0 {
		query = `SELECT role, content, created_at FROM (
			SELECT id, role, content, created_at FROM transcript_messages
			WHERE identity = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id`
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transcript: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		var createdAt string
		if err := rows.Scan(&m.Role, &m.Content, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning transcript row: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			m.CreatedAt = ts
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Clear drops the transcript for this identity.
func (s *Session) Clear(ctx context.Context) error {
	_, err := s.store.db.ExecContext(ctx,
		`DELETE FROM transcript_messages WHERE identity = ?`, s.identity)
	if err != nil {
		return fmt.Errorf("clearing transcript: %w", err)
	}
	return nil
}
