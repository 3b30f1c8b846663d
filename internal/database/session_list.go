package database

import "github.com/Mr-Dark-debug/agenda/internal/agenda"

// SessionList exposes one session of a Store as an agenda.List.
type SessionList struct {
	store     Store
	sessionID string
}

// OpenSession creates sessionID if needed and returns its list.
func OpenSession(store Store, sessionID string) (*SessionList, error) {
	if err := store.CreateSession(sessionID); err != nil {
		return nil, err
	}
	return NewSessionList(store, sessionID), nil
}

// NewSessionList wraps an existing session without creating it.
func NewSessionList(store Store, sessionID string) *SessionList {
	return &SessionList{store: store, sessionID: sessionID}
}

// ID returns the session identifier.
func (l *SessionList) ID() string { return l.sessionID }

func (l *SessionList) Append(item agenda.Item) error {
	return l.store.AppendItem(l.sessionID, item)
}

func (l *SessionList) Clear() error {
	return l.store.ClearItems(l.sessionID)
}

func (l *SessionList) Items() ([]agenda.Item, error) {
	return l.store.ListItems(l.sessionID)
}

var _ agenda.List = (*SessionList)(nil)
