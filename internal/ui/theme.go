// Package ui holds the palette shared by the shell and the interactive
// view, plus the framed panel the shell prints.
package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette, check boxes and frame.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	r *lipgloss.Renderer
}

// palette is the ANSI-256 colour set of one theme; "" means no colour.
type palette struct {
	success, pending, accent, err, border string
}

var current Theme

func init() { SetTheme("classic") }

// SetTheme selects classic, neon or mono; unknown names mean classic.
func SetTheme(name string) {
	name = strings.ToLower(name)
	p := palette{success: "42", pending: "214", accent: "12", err: "9", border: "8"}
	t := Theme{
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
		Border: lipgloss.NormalBorder(),
	}
	switch name {
	case "neon":
		p = palette{success: "48", pending: "226", accent: "51", err: "197", border: "201"}
		t.BoxUnchecked, t.BoxChecked = "◻", "◼"
		t.Border = lipgloss.RoundedBorder()
	case "mono":
		p = palette{}
		t.BoxUnchecked, t.BoxChecked = "[ ]", "[x]"
		t.SymDone, t.SymPending = "x", "-"
		t.Border = lipgloss.ASCIIBorder()
	default:
		name = "classic"
	}
	t.Name = name
	t.Title = lipgloss.NewStyle().Bold(true)
	t.Muted = lipgloss.NewStyle().Faint(true)
	t.Accent = lipgloss.NewStyle().Foreground(color(p.accent))
	t.Success = lipgloss.NewStyle().Foreground(color(p.success))
	t.Pending = lipgloss.NewStyle().Foreground(color(p.pending))
	t.Error = lipgloss.NewStyle().Foreground(color(p.err)).Bold(true)
	t.BorderColor = color(p.border)
	current = t
}

// Current is the active theme, rendering through lipgloss's default
// renderer (stdout).
func Current() Theme { return current }

// For rebinds the theme's styles to a renderer for w, so colour
// detection looks at w instead of stdout.
func (t Theme) For(w io.Writer) Theme {
	r := rendererFor(w)
	for _, s := range []*lipgloss.Style{&t.Title, &t.Muted, &t.Accent, &t.Success, &t.Error, &t.Pending} {
		*s = s.Renderer(r)
	}
	t.r = r
	return t
}

func (t Theme) renderer() *lipgloss.Renderer {
	if t.r == nil {
		return lipgloss.DefaultRenderer()
	}
	return t.r
}

func color(c string) lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c)
}
