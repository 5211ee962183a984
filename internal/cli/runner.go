package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/idilsaglam/todomvc/internal/location"
	"github.com/idilsaglam/todomvc/internal/model"
	"github.com/idilsaglam/todomvc/internal/store"
	"github.com/idilsaglam/todomvc/internal/ui"
)

// Options tune output behavior from root flags.
type Options struct {
	Group bool // list grouped by active/completed
}

// Shell runs line commands against one store. Navigation goes through the
// location so the router sees it like any other fragment change.
type Shell struct {
	store  *store.Store
	loc    *location.Location
	opt    Options
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
}

var commands = []string{"help", "ls", "add", "toggle", "rm", "edit", "all", "clear", "go", "quit"}

// New returns a shell printing results to out and failures to errOut.
func New(s *store.Store, loc *location.Location, opt Options, out, errOut io.Writer, log *slog.Logger) *Shell {
	if log == nil {
		log = slog.Default()
	}
	return &Shell{store: s, loc: loc, opt: opt, out: out, errOut: errOut, log: log.With("component", "shell")}
}

// Exec splits line into words and runs it.
func (sh *Shell) Exec(line string) int {
	return sh.Run(strings.Fields(line))
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func (sh *Shell) Run(args []string) int {
	if len(args) == 0 {
		sh.PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]
	sh.log.Debug("command", "name", cmd, "args", len(a))

	switch cmd {
	case "help", "-h", "--help":
		sh.PrintHelp()
		return 0

	case "quit", "exit":
		return 0

	case "ls":
		opt := sh.opt
		for _, f := range a {
			switch f {
			case "--group", "-g":
				opt.Group = true
			case "--json":
				return sh.doListJSON()
			default:
				ui.Fail(sh.errOut, "usage: ls [--group|--json]")
				return 2
			}
		}
		return sh.doList(opt)

	case "add":
		if len(a) == 0 {
			ui.Fail(sh.errOut, "usage: add <title...>")
			return 2
		}
		return sh.doAdd(strings.Join(a, " "))

	case "toggle", "done":
		id, code := sh.parseID("toggle", a, 1)
		if code != 0 {
			return code
		}
		return sh.report("toggled", sh.store.Toggle(id))

	case "rm":
		id, code := sh.parseID("rm", a, 1)
		if code != 0 {
			return code
		}
		return sh.report("removed", sh.store.Remove(id))

	case "edit":
		if len(a) < 2 {
			ui.Fail(sh.errOut, "usage: edit <id> <title...>")
			return 2
		}
		id, code := sh.parseID("edit", a[:1], 1)
		if code != 0 {
			return code
		}
		return sh.report("renamed", sh.store.Rename(id, strings.Join(a[1:], " ")))

	case "all":
		return sh.doToggleAll(a)

	case "clear":
		n := sh.store.CompletedCount()
		sh.store.ClearCompleted()
		ui.OK(sh.out, fmt.Sprintf("cleared %d completed", n))
		return 0

	case "go":
		if len(a) != 1 {
			ui.Fail(sh.errOut, "usage: go <#/|#/active|#/completed>")
			return 2
		}
		frag := a[0]
		if !strings.HasPrefix(frag, "#") {
			frag = "#/" + strings.TrimPrefix(frag, "/")
		}
		sh.loc.Navigate(frag)
		ui.OK(sh.out, "showing "+sh.store.Filter().String())
		return 0
	}

	ui.Fail(sh.errOut, "unknown command: "+cmd)
	if s := suggest(cmd); s != "" {
		fmt.Fprintln(sh.errOut, ui.Current().For(sh.errOut).Muted.Render("did you mean `"+s+"`?"))
	}
	return 2
}

func (sh *Shell) PrintHelp() {
	fmt.Fprint(sh.out, `Commands:
  add <title...>       Add a new item (title can be multiple words)
  ls [--group|--json]  List items in the current view
  toggle <id>          Toggle completed for the item with that id
  rm <id>              Remove the item with that id
  edit <id> <title...> Rename an item
  all [on|off]         Mark every item completed (on) or active (off)
  clear                Remove completed items
  go <fragment>        Switch view: #/, #/active, #/completed
  quit                 Leave the shell

Examples:
  add Buy milk
  toggle 0
  go #/active
`)
}

// -------------- command impls ----------------

func (sh *Shell) doList(opt Options) int {
	v := sh.store.Snapshot()
	t := ui.Current().For(sh.out)

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), v.Completed,
		t.Pending.Render(t.SymPending), v.Remaining,
		t.Accent.Render("Total"), v.Total,
		t.Muted.Render("["+v.Filter.String()+"]"),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(v.Completed, v.Total, 28)))
	lines = append(lines, "")

	if opt.Group {
		lines = append(lines, groupLines(t, v.Items)...)
	} else {
		lines = append(lines, flatLines(t, v.Items)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render(itemsLeft(v.Remaining)))
	ui.Panel(sh.out, lines)
	return 0
}

// jsonView is the machine-readable form of the current view.
type jsonView struct {
	Filter    string       `json:"filter"`
	Fragment  string       `json:"fragment"`
	Items     []model.Item `json:"items"`
	Remaining int          `json:"remaining"`
	Total     int          `json:"total"`
}

func (sh *Shell) doListJSON() int {
	v := sh.store.Snapshot()
	enc := json.NewEncoder(sh.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonView{
		Filter:    v.Filter.String(),
		Fragment:  sh.loc.Hash(),
		Items:     v.Items,
		Remaining: v.Remaining,
		Total:     v.Total,
	}); err != nil {
		ui.Fail(sh.errOut, "json marshal: "+err.Error())
		return 1
	}
	return 0
}

func (sh *Shell) doAdd(title string) int {
	it, err := sh.store.Add(title)
	if err != nil {
		ui.Fail(sh.errOut, "add: "+err.Error())
		return 1
	}
	ui.OK(sh.out, fmt.Sprintf("added #%d", it.ID))
	return 0
}

func (sh *Shell) doToggleAll(a []string) int {
	completed := !sh.store.AllCompleted()
	if len(a) > 1 {
		ui.Fail(sh.errOut, "usage: all [on|off]")
		return 2
	}
	if len(a) == 1 {
		switch a[0] {
		case "on":
			completed = true
		case "off":
			completed = false
		default:
			ui.Fail(sh.errOut, "all: want on or off, got "+a[0])
			return 2
		}
	}
	sh.store.ToggleAll(completed)
	if completed {
		ui.OK(sh.out, "marked all completed")
	} else {
		ui.OK(sh.out, "marked all active")
	}
	return 0
}

func (sh *Shell) parseID(cmd string, a []string, want int) (int, int) {
	if len(a) != want {
		ui.Fail(sh.errOut, "usage: "+cmd+" <id>")
		return 0, 2
	}
	n, err := strconv.Atoi(a[0])
	if err != nil {
		ui.Fail(sh.errOut, cmd+": not a number: "+a[0])
		return 0, 2
	}
	return n, 0
}

// report maps a store error onto an exit code.
func (sh *Shell) report(done string, err error) int {
	switch {
	case err == nil:
		ui.OK(sh.out, done)
		return 0
	case errors.Is(err, store.ErrNotFound):
		ui.Fail(sh.errOut, err.Error())
		fmt.Fprintln(sh.errOut, ui.Current().For(sh.errOut).Muted.Render("Hint: run `ls` to see valid ids"))
		return 1
	default:
		ui.Fail(sh.errOut, err.Error())
		return 1
	}
}

// suggest returns the closest known command, or "" if nothing is near.
func suggest(cmd string) string {
	best, bestDist := "", 3
	for _, c := range commands {
		if d := levenshtein.ComputeDistance(cmd, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// -------------- rendering helpers --------------

func itemsLeft(n int) string {
	if n == 1 {
		return "1 item left"
	}
	return fmt.Sprintf("%d items left", n)
}

func flatLines(t ui.Theme, items []model.Item) []string {
	if len(items) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		idx := fmt.Sprintf("%3d", it.ID)
		box := t.Muted.Render(t.BoxUnchecked)
		if it.Completed {
			box = t.Success.Render(t.BoxChecked)
		}
		title := it.Title
		if r := []rune(title); len(r) > 80 {
			title = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(idx), box, title))
	}
	return out
}

func groupLines(t ui.Theme, items []model.Item) []string {
	var active, done []model.Item
	for _, it := range items {
		if it.Completed {
			done = append(done, it)
		} else {
			active = append(active, it)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Active"))
	if len(active) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(t, active)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Completed"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(t, done)...)
	}
	return lines
}
