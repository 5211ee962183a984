package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todomvc/internal/location"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/router"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/ui"
)

type harness struct {
	sh       *Shell
	store    *store.Store
	loc      *location.Location
	out, err *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ui.SetTheme("mono")
	ui.SetColorMode("never")
	t.Cleanup(func() {
		ui.SetTheme("classic")
		ui.SetColorMode("auto")
	})

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := store.New(log)
	loc := location.New("#/", log)
	r := router.New(loc, s.SetFilter, log)
	t.Cleanup(r.Close)

	h := &harness{store: s, loc: loc, out: &bytes.Buffer{}, err: &bytes.Buffer{}}
	h.sh = New(s, loc, Options{}, h.out, h.err, log)
	return h
}

func (h *harness) reset() {
	h.out.Reset()
	h.err.Reset()
}

func TestShell_AddToggleClear(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 0, h.sh.Exec("add buy milk"))
	assert.Equal(t, 0, h.sh.Exec("add   write   spec"))
	assert.Contains(t, h.out.String(), "added #0")
	assert.Contains(t, h.out.String(), "added #1")

	items := h.store.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "write spec", items[1].Title)

	assert.Equal(t, 0, h.sh.Exec("toggle 0"))
	assert.Equal(t, 1, h.store.RemainingCount())

	assert.Equal(t, 0, h.sh.Exec("clear"))
	assert.Contains(t, h.out.String(), "cleared 1 completed")
	assert.Equal(t, 1, h.store.TotalCount())
}

func TestShell_ExitCodes(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.sh.Exec("add a"))

	tests := []struct {
		line string
		code int
		msg  string
	}{
		{"", 2, ""},
		{"add", 2, "usage: add"},
		{"toggle", 2, "usage: toggle"},
		{"toggle x", 2, "not a number"},
		{"toggle 9", 1, "item not found"},
		{"rm 9", 1, "Hint"},
		{"edit 0", 2, "usage: edit"},
		{"edit 0    ", 2, "usage: edit"},
		{"all maybe", 2, "want on or off"},
		{"go", 2, "usage: go"},
		{"help", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			h.reset()
			assert.Equal(t, tt.code, h.sh.Exec(tt.line))
			if tt.msg != "" {
				assert.Contains(t, h.err.String(), tt.msg)
			}
		})
	}
	assert.Equal(t, 1, h.store.TotalCount())
}

func TestShell_AddWhitespaceOnly(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.sh.Run([]string{"add"}))
	assert.Equal(t, 1, h.sh.Run([]string{"add", "   "}))
	assert.Contains(t, h.err.String(), "empty title")
	assert.Equal(t, 0, h.store.TotalCount())
}

func TestShell_EditAndRemove(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, 0, h.sh.Exec("add a"))
	require.Equal(t, 0, h.sh.Exec("add b"))

	assert.Equal(t, 0, h.sh.Exec("edit 1 bee keeper"))
	it, ok := h.store.Get(1)
	require.True(t, ok)
	assert.Equal(t, "bee keeper", it.Title)

	assert.Equal(t, 0, h.sh.Exec("rm 0"))
	assert.Equal(t, 1, h.store.TotalCount())
}

func TestShell_All(t *testing.T) {
	h := newHarness(t)
	for _, l := range []string{"add a", "add b", "add c", "toggle 1"} {
		require.Equal(t, 0, h.sh.Exec(l))
	}

	assert.Equal(t, 0, h.sh.Exec("all on"))
	assert.Equal(t, 0, h.store.RemainingCount())

	assert.Equal(t, 0, h.sh.Exec("all off"))
	assert.Equal(t, 3, h.store.RemainingCount())

	// bare "all" flips to the opposite of the toggle-all checkbox
	assert.Equal(t, 0, h.sh.Exec("all"))
	assert.True(t, h.store.AllCompleted())
	assert.Equal(t, 0, h.sh.Exec("all"))
	assert.Equal(t, 3, h.store.RemainingCount())
}

func TestShell_GoRoutesThroughLocation(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, 0, h.sh.Exec("go #/active"))
	assert.Equal(t, "#/active", h.loc.Hash())
	assert.Equal(t, model.Active, h.store.Filter())

	assert.Equal(t, 0, h.sh.Exec("go completed"))
	assert.Equal(t, "#/completed", h.loc.Hash())
	assert.Equal(t, model.Completed, h.store.Filter())

	assert.Equal(t, 0, h.sh.Exec("go #/bogus"))
	assert.Equal(t, model.All, h.store.Filter())
	assert.Contains(t, h.out.String(), "showing all")
}

func TestShell_ListShowsCurrentView(t *testing.T) {
	h := newHarness(t)
	for _, l := range []string{"add buy milk", "add write spec", "toggle 0", "go #/active"} {
		require.Equal(t, 0, h.sh.Exec(l))
	}
	h.reset()

	assert.Equal(t, 0, h.sh.Exec("ls"))
	out := h.out.String()
	assert.Contains(t, out, "[active]")
	assert.Contains(t, out, "write spec")
	assert.NotContains(t, out, "buy milk")
	assert.Contains(t, out, "1 item left")
}

func TestShell_ListGrouped(t *testing.T) {
	h := newHarness(t)
	for _, l := range []string{"add a", "add b", "toggle 1"} {
		require.Equal(t, 0, h.sh.Exec(l))
	}
	h.reset()

	assert.Equal(t, 0, h.sh.Exec("ls --group"))
	out := h.out.String()
	active := strings.Index(out, "Active")
	completed := strings.Index(out, "Completed")
	require.GreaterOrEqual(t, active, 0)
	require.Greater(t, completed, active)
	assert.Contains(t, out[completed:], "[x] b")
}

func TestShell_UnknownCommandSuggests(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, 2, h.sh.Exec("togle 1"))
	assert.Contains(t, h.err.String(), "unknown command: togle")
	assert.Contains(t, h.err.String(), "did you mean `toggle`?")

	h.reset()
	assert.Equal(t, 2, h.sh.Exec("frobnicate"))
	assert.NotContains(t, h.err.String(), "did you mean")
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, "clear", suggest("cler"))
	assert.Equal(t, "rm", suggest("r"))
	assert.Equal(t, "", suggest("zzzzzz"))
}

func TestShell_Loop(t *testing.T) {
	h := newHarness(t)
	in := NewBasicLineReader(strings.NewReader("add a\n\n  add b  \ntoggle 7\nquit\nadd never\n"), nil)

	assert.Equal(t, 1, h.sh.Loop(in))
	assert.Equal(t, 2, h.store.TotalCount())
}

func TestShell_LoopEOFWithoutNewline(t *testing.T) {
	h := newHarness(t)
	in := NewBasicLineReader(strings.NewReader("add a\nadd b"), nil)

	assert.Equal(t, 0, h.sh.Loop(in))
	assert.Equal(t, 2, h.store.TotalCount())
}

func TestShell_ListJSON(t *testing.T) {
	h := newHarness(t)
	for _, l := range []string{"add a", "add b", "toggle 0", "go #/completed"} {
		require.Equal(t, 0, h.sh.Exec(l))
	}
	h.reset()

	assert.Equal(t, 0, h.sh.Exec("ls --json"))
	var got jsonView
	require.NoError(t, json.Unmarshal(h.out.Bytes(), &got))
	assert.Equal(t, "completed", got.Filter)
	assert.Equal(t, "#/completed", got.Fragment)
	assert.Equal(t, []model.Item{{ID: 0, Title: "a", Completed: true}}, got.Items)
	assert.Equal(t, 1, got.Remaining)
	assert.Equal(t, 2, got.Total)

	assert.Equal(t, 2, h.sh.Exec("ls --yaml"))
}
