// Package location models the navigation fragment of a single-page view:
// the current "#/..." string plus the observers told about each change.
package location

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Location holds the current fragment and notifies subscribers on every
// navigation. It is driven from one event loop.
type Location struct {
	hash  string
	subs  map[uuid.UUID]func(fragment string)
	order []uuid.UUID
	log   *slog.Logger
}

// Subscription is one registered observer. Cancel releases it.
type Subscription struct {
	ID uuid.UUID

	loc  *Location
	once sync.Once
}

// New returns a location positioned at initial.
func New(initial string, log *slog.Logger) *Location {
	if log == nil {
		log = slog.Default()
	}
	return &Location{
		hash: initial,
		subs: map[uuid.UUID]func(string){},
		log:  log.With("component", "location"),
	}
}

// Hash is the current fragment, including the leading '#'.
func (l *Location) Hash() string { return l.hash }

// Navigate moves to fragment and calls each subscriber once, in
// subscription order. Navigating to the current fragment still counts as
// an event.
func (l *Location) Navigate(fragment string) {
	l.hash = fragment
	l.log.Debug("navigate", "fragment", fragment, "subscribers", len(l.order))
	// a subscriber may cancel itself or a neighbour mid-dispatch
	order := append([]uuid.UUID(nil), l.order...)
	for _, id := range order {
		if fn, ok := l.subs[id]; ok {
			fn(fragment)
		}
	}
}

// Subscribe registers fn for future navigations.
func (l *Location) Subscribe(fn func(fragment string)) *Subscription {
	s := &Subscription{ID: uuid.New(), loc: l}
	l.subs[s.ID] = fn
	l.order = append(l.order, s.ID)
	l.log.Debug("subscribed", "subscription", s.ID)
	return s
}

// Unsubscribe removes the subscription with the given id and reports
// whether it was live.
func (l *Location) Unsubscribe(id uuid.UUID) bool {
	if _, ok := l.subs[id]; !ok {
		return false
	}
	delete(l.subs, id)
	for i, o := range l.order {
		if o == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.log.Debug("unsubscribed", "subscription", id)
	return true
}

// Len is the number of live subscriptions.
func (l *Location) Len() int { return len(l.order) }

// Cancel removes the subscription. Only the first call has any effect.
func (s *Subscription) Cancel() {
	s.once.Do(func() { s.loc.Unsubscribe(s.ID) })
}
