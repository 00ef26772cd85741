package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/giantswarm/shellkit/pkg/logging"
	pkgstrings "github.com/giantswarm/shellkit/pkg/strings"
)

// ReadlineConfig configures a Readline terminal.
type ReadlineConfig struct {
	// HistoryFile persists entered lines across sessions. Empty disables history.
	HistoryFile string
	// In defaults to os.Stdin.
	In *os.File
	// Out defaults to os.Stdout.
	Out *os.File
}

// Readline is an interactive Terminal backed by github.com/chzyer/readline.
type Readline struct {
	rl      *readline.Instance
	in      *os.File
	out     *os.File
	input   *inputMux
	painter *rightPrompt
}

// NewReadline creates a line editor on the configured files.
func NewReadline(cfg ReadlineConfig) (*Readline, error) {
	if cfg.In == nil {
		cfg.In = os.Stdin
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}

	t := &Readline{
		in:    cfg.In,
		out:   cfg.Out,
		input: newInputMux(cfg.In),
	}
	t.painter = &rightPrompt{width: t.Width}

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:       cfg.HistoryFile,
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		Stdin:             t.input,
		Stdout:            cfg.Out,
		Stderr:            cfg.Out,
		Painter:           t.painter,
		FuncGetWidth:      t.Width,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline instance: %w", err)
	}
	t.rl = rl
	return t, nil
}

// ReadLine shows left at the caret and right aligned to the right edge, then reads one line.
func (t *Readline) ReadLine(left, right string) (string, error) {
	t.painter.set(right, pkgstrings.DisplayWidth(left))
	t.rl.SetPrompt(left)

	line, err := t.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return line, &InterruptError{Line: line}
	case errors.Is(err, io.EOF):
		return "", io.EOF
	case err != nil:
		return "", fmt.Errorf("readline error: %w", err)
	}
	return line, nil
}

// ReadKey switches the input to raw mode and reads a single keystroke.
func (t *Readline) ReadKey() (Key, error) {
	return readRawKey(t.in, t.input.readKey)
}

// Width returns the terminal width, or DefaultWidth when it cannot be determined.
func (t *Readline) Width() int {
	return fileWidth(t.out)
}

// Output returns the terminal's output file.
func (t *Readline) Output() io.Writer {
	return t.out
}

// Interactive reports whether both ends are terminals.
func (t *Readline) Interactive() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// SetCompleter replaces the tab completion source.
func (t *Readline) SetCompleter(c readline.AutoCompleter) {
	t.rl.Config.AutoComplete = c
}

// Close releases the line editor.
func (t *Readline) Close() error {
	err := t.rl.Close()
	_ = t.input.Close()
	return err
}

// readRawKey puts in into raw mode when it is a terminal for the duration of read.
func readRawKey(in *os.File, read func() (Key, error)) (Key, error) {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return Key{}, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() {
			if err := term.Restore(fd, state); err != nil {
				logging.Warn("Terminal", "failed to restore terminal state: %v", err)
			}
		}()
	}
	return read()
}

func fileWidth(f *os.File) int {
	if f == nil {
		return DefaultWidth
	}
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// rightPrompt paints the right prompt after the edited line on every refresh,
// jumping to the right edge and back with cursor save and restore.
type rightPrompt struct {
	mu        sync.Mutex
	text      string
	leftWidth int
	width     func() int
}

func (p *rightPrompt) set(text string, leftWidth int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.text = text
	p.leftWidth = leftWidth
}

// Paint implements readline.Painter.
func (p *rightPrompt) Paint(line []rune, _ int) []rune {
	p.mu.Lock()
	text, leftWidth := p.text, p.leftWidth
	p.mu.Unlock()

	if text == "" {
		return line
	}
	width := p.width()
	textWidth := pkgstrings.DisplayWidth(text)
	if leftWidth+pkgstrings.DisplayWidth(string(line))+textWidth+1 >= width {
		return line
	}

	out := make([]rune, 0, len(line)+len(text)+16)
	out = append(out, line...)
	out = append(out, []rune(fmt.Sprintf("\x1b7\x1b[%dG%s\x1b8", width-textWidth+1, text))...)
	return out
}
