package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var colorMode = "auto"

// SetColorMode applies ui.color: "always", "never", or "auto" (detect per
// output). The default renderer used by the interactive view follows it too.
func SetColorMode(mode string) {
	colorMode = mode
	def := lipgloss.DefaultRenderer()
	switch mode {
	case "always":
		def.SetColorProfile(termenv.ANSI256)
	case "never":
		def.SetColorProfile(termenv.Ascii)
	default:
		def.SetColorProfile(def.Output().EnvColorProfile())
	}
}

func rendererFor(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch colorMode {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func OK(w io.Writer, msg string) {
	t := Current().For(w)
	fmt.Fprintln(w, t.Success.Render(t.SymDone+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().For(w).Error.Render("✖ "+msg))
}
