package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader yields one line of input per call.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type basicLineReader struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewBasicLineReader reads from in without line editing.
func NewBasicLineReader(in io.Reader, out io.Writer) LineReader {
	return &basicLineReader{reader: bufio.NewReader(in), out: out}
}

func (b *basicLineReader) ReadLine(prompt string) (string, error) {
	if b.out != nil {
		fmt.Fprint(b.out, prompt)
	}
	line, err := b.reader.ReadString('\n')
	if err != nil {
		// hand back a final unterminated line before EOF
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (b *basicLineReader) Close() error { return nil }

type readlineReader struct {
	instance *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(prompt)
	return r.instance.Readline()
}

func (r *readlineReader) Close() error {
	if r == nil || r.instance == nil {
		return nil
	}
	return r.instance.Close()
}

// NewLineReader prefers readline and falls back to a plain reader on in
// when the terminal cannot be set up. History stays in memory.
func NewLineReader(in io.Reader, out io.Writer) (LineReader, error) {
	instance, err := readline.NewEx(&readline.Config{
		Prompt:            "> ",
		HistorySearchFold: true,
		AutoComplete:      completer(),
	})
	if err != nil {
		return NewBasicLineReader(in, out), err
	}
	return &readlineReader{instance: instance}, nil
}

func completer() readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, c := range commands {
		if c == "go" {
			items = append(items, readline.PcItem("go",
				readline.PcItem("#/"), readline.PcItem("#/active"), readline.PcItem("#/completed")))
			continue
		}
		items = append(items, readline.PcItem(c))
	}
	return readline.NewPrefixCompleter(items...)
}

// Loop reads commands until quit or end of input and returns the exit
// code of the last command run.
func (sh *Shell) Loop(in LineReader) int {
	last := 0
	for {
		line, err := in.ReadLine("todo> ")
		if err != nil {
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				fmt.Fprintln(sh.out)
				continue
			case errors.Is(err, io.EOF):
				return last
			default:
				fmt.Fprintf(sh.errOut, "read input failed: %v\n", err)
				return 1
			}
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return last
		}
		last = sh.Exec(line)
	}
}
