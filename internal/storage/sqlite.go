// Package storage provides SQLite-based persistence for win counters,
// match history, and settings. Uses the pure-Go modernc.org/sqlite driver
// to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Counter names persisted across sessions. Both are monotonic: read once
// at startup, incremented once per game over.
const (
	CounterPlayerWins = "player_wins"
	CounterAgentWins  = "agent_wins"
)

// Setting keys.
const (
	SettingEnhancedSound = "enhanced_sound"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// MatchRecord is a single finished game.
type MatchRecord struct {
	ID           int64
	GameID       string
	Winner       string // "player" or "agent"
	PlayerScore  int
	AgentScore   int
	LevelReached int
	DurationSecs int
	CreatedAt    time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS counters (
			name TEXT PRIMARY KEY,
			value INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			winner TEXT NOT NULL,
			player_score INTEGER NOT NULL,
			agent_score INTEGER NOT NULL,
			level_reached INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Counter returns the current value of a named counter (0 if unset).
func (s *Store) Counter(name string) (int, error) {
	var value sql.NullInt64
	err := s.db.QueryRow(
		"SELECT value FROM counters WHERE name = ?",
		name,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query counter %s: %w", name, err)
	}

	return int(value.Int64), nil
}

// IncrementCounter adds one to a named counter, creating it if needed,
// and returns the new value.
func (s *Store) IncrementCounter(name string) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO counters (name, value) VALUES (?, 1)
		 ON CONFLICT(name) DO UPDATE SET value = value + 1`,
		name,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot increment counter %s: %w", name, err)
	}

	return s.Counter(name)
}

// SaveMatch records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (game_id, winner, player_score, agent_score, level_reached, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.Winner, rec.PlayerScore, rec.AgentScore, rec.LevelReached, rec.DurationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent finished games, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, winner, player_score, agent_score, level_reached, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.GameID, &rec.Winner, &rec.PlayerScore,
			&rec.AgentScore, &rec.LevelReached, &rec.DurationSecs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			rec.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				rec.CreatedAt = parsed
			}
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Setting returns a stored setting value, or the given default if unset.
func (s *Store) Setting(key, def string) (string, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE key = ?",
		key,
	).Scan(&value)

	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot query setting %s: %w", key, err)
	}

	return value, nil
}

// SetSetting stores a setting value, replacing any existing one.
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot set setting %s: %w", key, err)
	}
	return nil
}

// EnhancedSoundUnlocked reports whether the enhanced hit sound is unlocked.
// Missing or unreadable settings count as locked.
func (s *Store) EnhancedSoundUnlocked() bool {
	v, err := s.Setting(SettingEnhancedSound, "0")
	if err != nil {
		return false
	}
	return v == "1" || v == "true"
}
