// Package router maps location fragments onto filter modes.
package router

import (
	"log/slog"
	"sync"

	"github.com/idilsaglam/todomvc/internal/location"
	"github.com/idilsaglam/todomvc/internal/model"
)

// prefixLen is the width of the "#/" marker in front of every route.
const prefixLen = 2

// Source is a navigation fragment provider.
type Source interface {
	Hash() string
	Subscribe(fn func(fragment string)) *location.Subscription
}

// Router follows a Source and reports the filter each fragment selects.
type Router struct {
	sub    *location.Subscription
	mode   model.FilterMode
	notify func(model.FilterMode)
	closed bool
	once   sync.Once
	log    *slog.Logger
}

// ParseFragment resolves a fragment such as "#/active". Anything that is
// not a known route falls back to All.
func ParseFragment(fragment string) model.FilterMode {
	if len(fragment) < prefixLen {
		return model.All
	}
	switch fragment[prefixLen:] {
	case "active":
		return model.Active
	case "completed":
		return model.Completed
	default:
		return model.All
	}
}

// New subscribes to src and applies its current fragment right away.
// notify runs synchronously, once per navigation, until Close.
func New(src Source, notify func(model.FilterMode), log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	r := &Router{notify: notify, log: log.With("component", "router")}
	r.apply(src.Hash())
	r.sub = src.Subscribe(r.apply)
	return r
}

// Mode is the filter selected by the last fragment seen.
func (r *Router) Mode() model.FilterMode { return r.mode }

// Close releases the navigation observer. Safe to call more than once.
func (r *Router) Close() {
	r.once.Do(func() {
		r.closed = true
		r.sub.Cancel()
		r.log.Debug("closed")
	})
}

func (r *Router) apply(fragment string) {
	if r.closed {
		return
	}
	r.mode = ParseFragment(fragment)
	r.log.Debug("route", "fragment", fragment, "filter", r.mode.String())
	if r.notify != nil {
		r.notify(r.mode)
	}
}
