// Package tui is the interactive render layer: a Bubble Tea program that
// redraws the store's current view after every event.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todomvc/internal/location"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/store"
)

// Options tune the interactive view.
type Options struct {
	CharLimit int
}

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) TitleText() string {
	box := theme.BoxUnchecked
	if i.item.Completed {
		box = theme.BoxChecked
	}
	return fmt.Sprintf("%s %s", box, i.item.Title)
}

// Implement list.Item interface
func (i listItem) Title() string       { return i.TitleText() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Title }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	boxStyled := mutedStyle.Render(theme.BoxUnchecked)
	textStyled := it.item.Title
	if it.item.Completed {
		boxStyled = successStyle.Render(theme.BoxChecked)
		textStyled = doneStyle.Render(it.item.Title)
	}

	line := fmt.Sprintf("%s %s", boxStyled, textStyled)
	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprint(w, prefix+line)
}

// Model is the Bubble Tea model over a store. The store is shared, so
// copies of Model made by Bubble Tea all see the same list.
type Model struct {
	store *store.Store
	loc   *location.Location
	keys  KeyMap

	list list.Model
	seen uint64 // store version the list was last built from
	sync bool

	// Inline add / edit
	adding   bool
	editing  bool
	editID   int
	ti       textinput.Model
	inputErr string

	lastErr string

	width, height int
}

// New builds the model. Navigation keys drive loc; the caller wires loc to
// the store through a router.
func New(s *store.Store, loc *location.Location, opt Options) Model {
	keys := DefaultKeyMap()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	if opt.CharLimit > 0 {
		ti.CharLimit = opt.CharLimit
	}

	m := Model{
		store:  s,
		loc:    loc,
		keys:   keys,
		list:   l,
		ti:     ti,
		width:  80,
		height: 24,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// size applies in every mode; the list and input still see the message
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.sync = true
	}
	var cmd tea.Cmd
	switch {
	case m.adding || m.editing:
		m, cmd = m.updateInput(msg)
	default:
		m, cmd = m.updateList(msg)
	}
	if m.sync || m.seen != m.store.Version() {
		return m, tea.Batch(cmd, m.refresh())
	}
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	if x, ok := msg.(tea.KeyMsg); ok {
		switch x.String() {
		case "enter":
			var err error
			if m.adding {
				_, err = m.store.Add(m.ti.Value())
			} else {
				err = m.store.Rename(m.editID, m.ti.Value())
			}
			switch {
			case errors.Is(err, store.ErrEmptyTitle):
				m.inputErr = "Title cannot be empty"
				return m, nil
			case err != nil:
				m.lastErr = err.Error()
			}
			m.closeInput()
			return m, nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// the list's own text filter takes every key while it is open
		if m.list.FilterState() == list.Filtering {
			break
		}
		// esc first clears an applied text filter
		if msg.String() == "esc" && m.list.FilterState() == list.FilterApplied {
			break
		}
		m.lastErr = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Add):
			m.adding = true
			m.sync = true
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "What needs to be done?"
			return m, m.ti.Focus()
		case key.Matches(msg, m.keys.Edit):
			if it, ok := m.selected(); ok {
				m.editing = true
				m.sync = true
				m.editID = it.ID
				m.inputErr = ""
				m.ti.SetValue(it.Title)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit item title..."
				return m, m.ti.Focus()
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			if it, ok := m.selected(); ok {
				m.setErr(m.store.Toggle(it.ID))
			}
			return m, nil
		case key.Matches(msg, m.keys.Remove):
			if it, ok := m.selected(); ok {
				m.setErr(m.store.Remove(it.ID))
			}
			return m, nil
		case key.Matches(msg, m.keys.ToggleAll):
			m.store.ToggleAll(!m.store.AllCompleted())
			return m, nil
		case key.Matches(msg, m.keys.ClearCompleted):
			m.store.ClearCompleted()
			return m, nil
		case key.Matches(msg, m.keys.ShowAll):
			m.loc.Navigate(model.All.Fragment())
			return m, nil
		case key.Matches(msg, m.keys.ShowActive):
			m.loc.Navigate(model.Active.Fragment())
			return m, nil
		case key.Matches(msg, m.keys.ShowCompleted):
			m.loc.Navigate(model.Completed.Fragment())
			return m, nil
		case key.Matches(msg, m.keys.NextView):
			m.loc.Navigate(m.store.Filter().Next().Fragment())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding, m.editing = false, false
	m.sync = true
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.lastErr = err.Error()
	}
}

func (m Model) selected() (model.Item, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it.item, ok
}

// refresh rebuilds list rows, header and size from the store.
func (m *Model) refresh() tea.Cmd {
	v := m.store.Snapshot()
	rows := make([]list.Item, 0, len(v.Items))
	for _, it := range v.Items {
		rows = append(rows, listItem{item: it})
	}
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render(theme.SymDone), v.Completed,
		pendingStyle.Render(theme.SymPending), v.Remaining,
		accentStyle.Render("Total"), v.Total,
	)
	listHeight := m.height - 5
	if m.adding || m.editing {
		listHeight -= 3
	}
	m.list.SetSize(m.width-4, max(listHeight, 1))
	m.seen = v.Version
	m.sync = false
	cmd := m.list.SetItems(rows)
	if n := len(rows); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding || m.editing {
		title := "Add new item"
		if m.editing {
			title = "Edit item"
		}
		if m.inputErr != "" {
			title += " · " + errorStyle.Render(m.inputErr)
		}
		content += "\n" + panelString(title+"\n"+m.ti.View())
	}
	content += "\n" + m.footer()
	return panelString(content)
}

func (m Model) footer() string {
	remaining := m.store.RemainingCount()
	left := fmt.Sprintf("%d items left", remaining)
	if remaining == 1 {
		left = "1 item left"
	}
	var tabs []string
	for _, mode := range model.Modes {
		label := mode.String()
		if mode == m.store.Filter() {
			tabs = append(tabs, accentStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, mutedStyle.Render(label))
		}
	}
	out := left + "   " + strings.Join(tabs, " ")
	if m.store.CompletedCount() > 0 {
		out += "   " + mutedStyle.Render("c: clear completed")
	}
	if m.lastErr != "" {
		out += "\n" + errorStyle.Render("✖ "+m.lastErr)
	}
	return out
}
