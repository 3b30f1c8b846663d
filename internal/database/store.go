// Package database provides the session store for the agenda builder.
//
// Each user session owns one ordered list of agenda items. The store
// is SQLite, opened at ":memory:" by default so nothing outlives the
// process. DBService is the primary entry point for all operations.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Mr-Dark-debug/agenda/internal/agenda"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrSessionNotFound is returned for operations on an unknown session.
var ErrSessionNotFound = errors.New("session not found")

// Store defines the interface for session-scoped agenda lists.
type Store interface {
	// CreateSession registers a new, empty session.
	CreateSession(sessionID string) error
	// SessionExists reports whether the session has been created.
	SessionExists(sessionID string) (bool, error)
	// DeleteSession drops a session and all of its items.
	DeleteSession(sessionID string) error
	// TouchSession records activity on a session at the given time.
	TouchSession(sessionID string, at time.Time) error
	// ExpireSessions deletes sessions idle since before cutoff and
	// returns their IDs.
	ExpireSessions(cutoff time.Time) ([]string, error)

	// AppendItem adds an item at the end of the session's list.
	AppendItem(sessionID string, item agenda.Item) error
	// ListItems returns the session's items in insertion order.
	ListItems(sessionID string) ([]agenda.Item, error)
	// ClearItems empties the session's list.
	ClearItems(sessionID string) error

	// Close gracefully shuts down the database connection.
	Close() error
}

// DBService implements the Store interface using SQLite.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtAppendItem *sql.Stmt
	stmtListItems  *sql.Stmt
	stmtClearItems *sql.Stmt
}

// NewDBService opens the store at path, initializes the schema and
// prepares the hot-path statements.
//
// Use ":memory:" for a process-lifetime store.
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=ON", path)
	if path != ":memory:" {
		dsn += "&_journal_mode=WAL&_synchronous=NORMAL"
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// A single connection keeps ":memory:" pointing at one database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtAppendItem, err = s.db.Prepare(`
		INSERT INTO agenda_items (session_id, position, topic, owner, duration_min)
		VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM agenda_items WHERE session_id = ?), ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing AppendItem: %w", err)
	}

	s.stmtListItems, err = s.db.Prepare(`
		SELECT topic, owner, duration_min
		FROM agenda_items
		WHERE session_id = ?
		ORDER BY position ASC
	`)
	if err != nil {
		return fmt.Errorf("preparing ListItems: %w", err)
	}

	s.stmtClearItems, err = s.db.Prepare(`
		DELETE FROM agenda_items WHERE session_id = ?
	`)
	if err != nil {
		return fmt.Errorf("preparing ClearItems: %w", err)
	}

	return nil
}

// CreateSession registers a session. Creating an existing session is a no-op.
func (s *DBService) CreateSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixNano()
	_, err := s.db.Exec(`
		INSERT INTO sessions (session_id, created_at, last_seen) VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO NOTHING
	`, sessionID, now, now)
	if err != nil {
		return fmt.Errorf("creating session %s: %w", sessionID, err)
	}
	return nil
}

// SessionExists reports whether sessionID has been created.
func (s *DBService) SessionExists(sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessionExists(sessionID)
}

func (s *DBService) sessionExists(sessionID string) (bool, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions WHERE session_id = ?`, sessionID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("looking up session %s: %w", sessionID, err)
	}
	return n > 0, nil
}

// DeleteSession removes a session; its items go with it.
func (s *DBService) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM sessions WHERE session_id = ?`, sessionID)
	if err != nil {
		return fmt.Errorf("deleting session %s: %w", sessionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("deleting session %s: %w", sessionID, ErrSessionNotFound)
	}
	return nil
}

// TouchSession moves the session's last activity to at.
func (s *DBService) TouchSession(sessionID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`UPDATE sessions SET last_seen = ? WHERE session_id = ?`,
		at.UnixNano(), sessionID)
	if err != nil {
		return fmt.Errorf("touching session %s: %w", sessionID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("touching session %s: %w", sessionID, ErrSessionNotFound)
	}
	return nil
}

// ExpireSessions deletes every session whose last activity is before
// cutoff, along with its items.
func (s *DBService) ExpireSessions(cutoff time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("beginning expiry: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT session_id FROM sessions WHERE last_seen < ?`, cutoff.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("listing idle sessions: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing idle sessions: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM sessions WHERE last_seen < ?`, cutoff.UnixNano()); err != nil {
		return nil, fmt.Errorf("deleting idle sessions: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing expiry: %w", err)
	}
	return ids, nil
}

// AppendItem adds item at the end of the session's list.
func (s *DBService) AppendItem(sessionID string, item agenda.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ok, err := s.sessionExists(sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("appending to session %s: %w", sessionID, ErrSessionNotFound)
	}

	_, err = s.stmtAppendItem.Exec(sessionID, sessionID, item.Topic, item.Owner, item.DurationMin)
	if err != nil {
		return fmt.Errorf("appending item %q to session %s: %w", item.Topic, sessionID, err)
	}
	return nil
}

// ListItems returns the session's items ordered by insertion.
func (s *DBService) ListItems(sessionID string) ([]agenda.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.stmtListItems.Query(sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing items for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ClearItems removes every item of the session.
func (s *DBService) ClearItems(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.stmtClearItems.Exec(sessionID); err != nil {
		return fmt.Errorf("clearing session %s: %w", sessionID, err)
	}
	return nil
}

// Close closes the prepared statements and the connection pool.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmts := []*sql.Stmt{s.stmtAppendItem, s.stmtListItems, s.stmtClearItems}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}

func scanItems(rows *sql.Rows) ([]agenda.Item, error) {
	var items []agenda.Item
	for rows.Next() {
		var it agenda.Item
		if err := rows.Scan(&it.Topic, &it.Owner, &it.DurationMin); err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
