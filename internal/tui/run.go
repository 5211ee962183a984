package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todomvc/internal/location"
	"github.com/idilsaglam/todomvc/internal/router"
	"github.com/idilsaglam/todomvc/internal/store"
)

// Run starts the Bubble Tea program over s. The router that feeds loc into
// the store lives exactly as long as the program.
func Run(s *store.Store, loc *location.Location, opt Options, log *slog.Logger, progOpts ...tea.ProgramOption) error {
	r := router.New(loc, s.SetFilter, log)
	defer r.Close()

	p := tea.NewProgram(New(s, loc, opt), append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
