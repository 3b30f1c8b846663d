package agenda

import "sync"

// List is an ordered, session-scoped list of agenda items. Items are
// only ever appended or cleared all at once.
type List interface {
	Append(item Item) error
	Clear() error
	Items() ([]Item, error)
}

// Session is an in-memory List owned by a single user session. The
// terminal front end uses it when no session database is configured.
type Session struct {
	mu    sync.Mutex
	items []Item
}

// NewSession returns a session seeded with items.
func NewSession(items ...Item) *Session {
	s := &Session{}
	s.items = append(s.items, items...)
	return s
}

func (s *Session) Append(item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
	return nil
}

func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	return nil
}

// Items returns a copy of the list in insertion order.
func (s *Session) Items() ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// Submit validates user input and appends the resulting item to l.
// On a validation error l is left unchanged.
func Submit(l List, topic, owner string, minutes int) (Item, error) {
	item, err := NewItem(topic, owner, minutes)
	if err != nil {
		return Item{}, err
	}
	if err := l.Append(item); err != nil {
		return Item{}, err
	}
	return item, nil
}

// Effective returns the items to render: the list itself, or the
// built-in example when the list is empty. The bool reports whether
// the example was substituted.
func Effective(items []Item) ([]Item, bool) {
	if len(items) == 0 {
		return ExampleItems(), true
	}
	return items, false
}
