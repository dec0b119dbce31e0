// Package storage provides durable backends for lanehop scores.
// The default backend is SQLite via the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies; GdataStore keeps the same values in the per-user
// application data directory.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/lanehop/internal/game"
)

// DefaultPath is where the play and serve commands keep the database.
const DefaultPath = "~/.lanehop/lanehop.db"

// Store manages the SQLite database holding the key/value preferences the
// score tracker writes through, and the history of finished sessions.
//
// Store is safe for concurrent use; SSH sessions share one instance.
type Store struct {
	db *sql.DB

	mu      sync.Mutex
	values  map[string]int
	pending map[string]pendingOp
}

// ScoreEntry is one finished session.
type ScoreEntry struct {
	ID        int64
	Score     int
	Player    string
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// A single connection serializes writers; SQLite would otherwise
	// report SQLITE_BUSY under concurrent SSH sessions.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{
		db:      db,
		values:  make(map[string]int),
		pending: make(map[string]pendingOp),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	if err := store.loadPrefs(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func expandHome(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_top ON sessions(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) loadPrefs() error {
	rows, err := s.db.Query("SELECT key, value FROM prefs")
	if err != nil {
		return fmt.Errorf("storage: cannot query prefs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value int
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("storage: cannot scan row: %w", err)
		}
		s.values[key] = value
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("storage: row iteration error: %w", err)
	}
	return nil
}

// Close flushes pending values and closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	flushErr := s.Flush()
	if err := s.db.Close(); err != nil {
		return err
	}
	return flushErr
}

// GetInt returns the value stored under key, including values written but
// not yet flushed, or def when the key was never written.
func (s *Store) GetInt(key string, def int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.values[key]; ok {
		return v
	}
	return def
}

// PutInt records a value. It becomes durable on the next Flush.
func (s *Store) PutInt(key string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.queue(key, pendingOp{kind: opSet, value: value})
}

// MaxInt raises key to at least value and returns the result. On Flush the
// stored row keeps the larger of its value and this one.
func (s *Store) MaxInt(key string, value int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok || value > v {
		v = value
	}
	s.values[key] = v
	s.queue(key, pendingOp{kind: opMax, value: value})
	return v
}

// AddInt adds delta to key and returns the result. On Flush the delta is
// added to the stored row.
func (s *Store) AddInt(key string, delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[key] + delta
	s.values[key] = v
	s.queue(key, pendingOp{kind: opAdd, value: delta})
	return v
}

// queue must be called with mu held, after values[key] was updated.
func (s *Store) queue(key string, op pendingOp) {
	prev, ok := s.pending[key]
	s.pending[key] = mergeOp(prev, ok, op, s.values[key])
}

// upsertSQL writes one pending op, combining it with the stored row.
var upsertSQL = map[opKind]string{
	opSet: `INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
	opMax: `INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = MAX(value, excluded.value)`,
	opAdd: `INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = value + excluded.value`,
}

// Flush writes every pending value in one transaction and reloads the
// flushed keys, picking up what other processes stored. On failure the
// values stay pending and the next Flush retries them.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	stored := make(map[string]int, len(s.pending))
	for key, op := range s.pending {
		if _, err := tx.Exec(upsertSQL[op.kind], key, op.value); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot write %s: %w", key, err)
		}
		var v int
		if err := tx.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&v); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot read back %s: %w", key, err)
		}
		stored[key] = v
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit prefs: %w", err)
	}

	for key, v := range stored {
		s.values[key] = v
	}
	clear(s.pending)
	return nil
}

// SaveScore records a finished session. Returns the ID of the inserted record.
func (s *Store) SaveScore(player string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (score, player) VALUES (?, ?)",
		score, player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N sessions ordered by score descending.
// Ties keep the earlier session first.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, player, created_at
		 FROM sessions
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best recorded session score, or 0 with no history.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes the session history and the persisted counters.
func (s *Store) ClearScores() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM prefs"); err != nil {
		return fmt.Errorf("storage: cannot clear prefs: %w", err)
	}
	clear(s.values)
	clear(s.pending)
	return nil
}

// Stats contains aggregated statistics over the session history.
type Stats struct {
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics over all recorded sessions.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(score), 0), MAX(created_at)
		 FROM sessions`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

var _ game.Store = (*Store)(nil)
