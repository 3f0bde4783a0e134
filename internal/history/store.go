// Package history persists a record of every firewall mutation issued
// through the tool, so an operator can answer "what changed, when, and did
// it succeed" after the fact.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"grimm.is/palisade/internal/clock"
)

// Record is one persisted command invocation.
type Record struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Op        string    `json:"op"`
	Args      string    `json:"args"`
	ExitCode  int       `json:"exit_code"`
	Output    string    `json:"output,omitempty"`
}

// Store provides persistent storage for command history.
type Store struct {
	mu            sync.RWMutex
	db            *sql.DB
	retentionDays int
}

// NewStore opens (creating if needed) the history database at dbPath.
func NewStore(dbPath string, retentionDays int) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS command_history (
			id TEXT PRIMARY KEY,
			timestamp DATETIME NOT NULL,
			user TEXT NOT NULL,
			op TEXT NOT NULL,
			args TEXT NOT NULL,
			exit_code INTEGER DEFAULT 0,
			output TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_history_timestamp ON command_history(timestamp);
		CREATE INDEX IF NOT EXISTS idx_history_op ON command_history(op);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create history table: %w", err)
	}

	if retentionDays <= 0 {
		retentionDays = 90
	}

	return &Store{
		db:            db,
		retentionDays: retentionDays,
	}, nil
}

// Record implements the repository's recorder hook. Errors are swallowed:
// history is best-effort and must never block a firewall operation.
func (s *Store) Record(op string, args []string, exitCode int, output string) {
	_ = s.Write(Record{
		Op:       op,
		Args:     strings.Join(args, " "),
		ExitCode: exitCode,
		Output:   output,
	})
}

// Write persists a record, filling in ID, timestamp and user when unset.
func (s *Store) Write(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = clock.Now()
	}
	if rec.User == "" {
		rec.User = invokingUser()
	}

	_, err := s.db.Exec(`
		INSERT INTO command_history (id, timestamp, user, op, args, exit_code, output)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Timestamp, rec.User, rec.Op, rec.Args, rec.ExitCode, rec.Output)
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first.
func (s *Store) List(limit int) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := "SELECT id, timestamp, user, op, args, exit_code, output FROM command_history ORDER BY timestamp DESC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var output sql.NullString
		if err := rows.Scan(&rec.ID, &rec.Timestamp, &rec.User, &rec.Op, &rec.Args, &rec.ExitCode, &output); err != nil {
			return nil, fmt.Errorf("scan history record: %w", err)
		}
		if output.Valid {
			rec.Output = output.String
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Prune removes records older than the retention period.
func (s *Store) Prune() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := clock.Now().AddDate(0, 0, -s.retentionDays)
	result, err := s.db.Exec("DELETE FROM command_history WHERE timestamp < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune history: %w", err)
	}
	return result.RowsAffected()
}

// Count returns the total number of records in the store.
func (s *Store) Count() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	err := s.db.QueryRow("SELECT COUNT(*) FROM command_history").Scan(&count)
	return count, err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// invokingUser identifies who ran the command. Under pkexec/sudo the real
// user is in the environment, not the euid.
func invokingUser() string {
	for _, key := range []string{"PKEXEC_UID", "SUDO_USER", "USER"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return "unknown"
}
