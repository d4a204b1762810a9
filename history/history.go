// Package history keeps a persistent, capped log of calculator
// evaluations so the UI can show the most recent results.
package history

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	_ "github.com/mattn/go-sqlite3"
)

// logger instance
var log = logrus.New()

// TAG identifies the module for logging
const TAG = "history"

// SetLogLevel changes the package's log level.
func SetLogLevel(level logrus.Level) {
	log.Level = level
}

// GetLogLevel gets the package's log level.
func GetLogLevel() logrus.Level {
	return log.Level
}

// DefaultLimit is the number of entries kept when no limit is configured.
const DefaultLimit = 20

// schemeVersion is the version the store migrates its scheme to on open.
const schemeVersion = 1

// Entry is one remembered evaluation.
type Entry struct {
	Expression string    `json:"expression"`
	Result     float64   `json:"result"`
	Timestamp  time.Time `json:"timestamp"`
}

// Store is a persistent log of evaluations capped at a fixed count.
// A Store is safe for use by multiple goroutines.
type Store struct {
	mutex sync.Mutex
	db    *sql.DB
	limit int
}

// Open opens or creates a history store at path. limit is the maximum
// number of entries kept; zero or negative selects DefaultLimit.
func Open(path string, limit int) (*Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_txlock=exclusive", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open history file %q: %s", path, err)
	}
	s := &Store{db: db, limit: limit}
	if err := s.updateScheme(); err != nil {
		_ = db.Close()
		return nil, err
	}
	log.WithField("path", path).Debugf("[%s]: opened with limit %d", TAG, limit)
	return s, nil
}

// Close closes the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Limit gets the maximum number of entries the store keeps.
func (s *Store) Limit() int {
	return s.limit
}

// updateScheme migrates the database scheme to the current version. The
// scheme version lives in the sqlite user_version pragma; each migration
// runs inside a transaction.
func (s *Store) updateScheme() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to get history scheme version: %s", err)
	}
	if version >= schemeVersion {
		return nil // nothing to do
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin scheme transaction: %s", err)
	}
	defer tx.Rollback()

	if version < 1 {
		log.Debugf("[%s]: creating scheme version 1", TAG)
		const script = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	expression TEXT NOT NULL,
	result REAL NOT NULL,
	ts INTEGER NOT NULL
);
PRAGMA user_version = 1;`
		if _, err := tx.Exec(script); err != nil {
			return fmt.Errorf("failed to create history scheme: %s", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit scheme transaction: %s", err)
	}
	return nil
}

// Add appends an evaluation to the log and evicts the oldest entries
// beyond the cap.
func (s *Store) Add(expression string, result float64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %s", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT INTO history(expression, result, ts) VALUES (?, ?, ?)",
		expression, result, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %s", err)
	}
	_, err = tx.Exec("DELETE FROM history WHERE id NOT IN (SELECT id FROM history ORDER BY id DESC LIMIT ?)",
		s.limit)
	if err != nil {
		return fmt.Errorf("failed to trim history: %s", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history transaction: %s", err)
	}
	log.WithField("expression", expression).Debugf("[%s]: recorded %g", TAG, result)
	return nil
}

// Recent returns up to n entries, newest first. Zero or negative n, or n
// above the cap, reports everything up to the cap.
func (s *Store) Recent(n int) ([]Entry, error) {
	if n <= 0 || n > s.limit {
		n = s.limit
	}
	rows, err := s.db.Query("SELECT expression, result, ts FROM history ORDER BY id DESC LIMIT ?", n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %s", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.Expression, &e.Result, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %s", err)
		}
		e.Timestamp = time.Unix(ts, 0).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every entry from the log.
func (s *Store) Clear() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := s.db.Exec("DELETE FROM history"); err != nil {
		return fmt.Errorf("failed to clear history: %s", err)
	}
	log.Debugf("[%s]: cleared", TAG)
	return nil
}
