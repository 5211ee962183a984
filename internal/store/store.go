// Package store holds the authoritative in-memory todo list and the
// current view filter. A Store is owned by one event loop and is not safe
// for concurrent use.
package store

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"github.com/idilsaglam/todomvc/internal/model"
)

var (
	// ErrEmptyTitle is returned when a title is empty after trimming.
	ErrEmptyTitle = errors.New("empty title")
	// ErrNotFound is returned when no item has the requested id.
	ErrNotFound = errors.New("item not found")
)

// Store is the single source of truth for the list and its derived views.
type Store struct {
	items  []model.Item
	nextID int
	filter model.FilterMode

	// version bumps on every change that a render layer could observe.
	version uint64

	// remaining count memoised against version.
	countedAt uint64
	counted   bool
	remaining int

	log *slog.Logger
}

// View is what a render layer consumes after each change.
type View struct {
	Filter    model.FilterMode
	Items     []model.Item
	Remaining int
	Completed int
	Total     int
	Version   uint64
}

// New returns an empty store showing every item. A nil logger falls back
// to slog.Default().
func New(log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{log: log.With("component", "store")}
}

// Add appends a new item with a fresh id.
func (s *Store) Add(raw string) (model.Item, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return model.Item{}, ErrEmptyTitle
	}
	it := model.Item{ID: s.nextID, Title: title}
	s.nextID++
	s.items = append(s.items, it)
	s.bump()
	s.log.Debug("added", "id", it.ID, "title", it.Title)
	return it, nil
}

// Toggle flips the completed flag of the item with the given id.
func (s *Store) Toggle(id int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("toggle %d: %w", id, ErrNotFound)
	}
	s.items[i].Completed = !s.items[i].Completed
	s.bump()
	s.log.Debug("toggled", "id", id, "completed", s.items[i].Completed)
	return nil
}

// Rename replaces the title of an existing item.
func (s *Store) Rename(id int, raw string) error {
	title := strings.TrimSpace(raw)
	if title == "" {
		return fmt.Errorf("rename %d: %w", id, ErrEmptyTitle)
	}
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("rename %d: %w", id, ErrNotFound)
	}
	if s.items[i].Title == title {
		return nil
	}
	s.items[i].Title = title
	s.bump()
	s.log.Debug("renamed", "id", id, "title", title)
	return nil
}

// Remove deletes the item with the given id, keeping the others in order.
func (s *Store) Remove(id int) error {
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("remove %d: %w", id, ErrNotFound)
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.bump()
	s.log.Debug("removed", "id", id)
	return nil
}

// ToggleAll sets every item's completed flag to completed.
func (s *Store) ToggleAll(completed bool) {
	changed := 0
	for i := range s.items {
		if s.items[i].Completed != completed {
			s.items[i].Completed = completed
			changed++
		}
	}
	if changed > 0 {
		s.bump()
	}
	s.log.Debug("toggled all", "completed", completed, "changed", changed)
}

// ClearCompleted removes every completed item.
func (s *Store) ClearCompleted() {
	kept := s.items[:0]
	for _, it := range s.items {
		if !it.Completed {
			kept = append(kept, it)
		}
	}
	removed := len(s.items) - len(kept)
	// zero the tail so dropped items are not retained by the backing array
	clear(s.items[len(kept):])
	s.items = kept
	if removed > 0 {
		s.bump()
	}
	s.log.Debug("cleared completed", "removed", removed)
}

// RemainingCount is the number of items not yet completed.
func (s *Store) RemainingCount() int {
	if s.counted && s.countedAt == s.version {
		return s.remaining
	}
	n := 0
	for _, it := range s.items {
		if !it.Completed {
			n++
		}
	}
	s.remaining, s.countedAt, s.counted = n, s.version, true
	return n
}

// CompletedCount is the number of completed items.
func (s *Store) CompletedCount() int { return len(s.items) - s.RemainingCount() }

// TotalCount is the number of items in the list.
func (s *Store) TotalCount() int { return len(s.items) }

// AllCompleted reports whether the list is non-empty and nothing remains.
func (s *Store) AllCompleted() bool {
	return len(s.items) > 0 && s.RemainingCount() == 0
}

// VisibleItems yields, in list order, the items matching mode. The
// sequence reads the list at iteration time and can be ranged over again.
func (s *Store) VisibleItems(mode model.FilterMode) iter.Seq[model.Item] {
	return func(yield func(model.Item) bool) {
		for _, it := range s.items {
			if mode.Matches(it) && !yield(it) {
				return
			}
		}
	}
}

// Visible is VisibleItems for the store's current filter.
func (s *Store) Visible() iter.Seq[model.Item] { return s.VisibleItems(s.filter) }

// Filter is the filter applied by Visible.
func (s *Store) Filter() model.FilterMode { return s.filter }

// SetFilter changes the current view filter.
func (s *Store) SetFilter(mode model.FilterMode) {
	if s.filter == mode {
		return
	}
	s.filter = mode
	s.bump()
	s.log.Debug("filter changed", "filter", mode.String())
}

// Get returns a copy of the item with the given id.
func (s *Store) Get(id int) (model.Item, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Item{}, false
	}
	return s.items[i], true
}

// Items returns a copy of the whole list.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Version increases whenever the list or the filter changes.
func (s *Store) Version() uint64 { return s.version }

// Snapshot collects the current filtered view and counters.
func (s *Store) Snapshot() View {
	v := View{
		Filter:    s.filter,
		Items:     []model.Item{},
		Remaining: s.RemainingCount(),
		Total:     len(s.items),
		Version:   s.version,
	}
	v.Completed = v.Total - v.Remaining
	for it := range s.Visible() {
		v.Items = append(v.Items, it)
	}
	return v
}

func (s *Store) index(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) bump() { s.version++ }
