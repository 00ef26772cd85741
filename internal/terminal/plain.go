package terminal

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Plain is a Terminal without line editing. Lines are read from any reader and
// prompts are only printed when the input is a terminal.
type Plain struct {
	in      *bufio.Reader
	inFile  *os.File
	pending []byte
	out     io.Writer
	width   int
}

// NewPlain creates a Plain terminal reading from in and writing to out.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	p := &Plain{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok {
		p.inFile = f
	}
	return p
}

// ReadLine reads the next line, returning io.EOF once the input is exhausted.
func (p *Plain) ReadLine(left, _ string) (string, error) {
	if p.inFile != nil && term.IsTerminal(int(p.inFile.Fd())) {
		_, _ = io.WriteString(p.out, left)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadKey reads one keystroke, in raw mode when the input is a terminal.
func (p *Plain) ReadKey() (Key, error) {
	if p.inFile != nil {
		return readRawKey(p.inFile, p.readKey)
	}
	return p.readKey()
}

func (p *Plain) readKey() (Key, error) {
	for {
		if len(p.pending) > 0 {
			key, n := DecodeKey(p.pending)
			if n > 0 {
				p.pending = p.pending[n:]
				if key.Code != KeyNone {
					return key, nil
				}
				continue
			}
		}

		b, err := p.in.ReadByte()
		if err != nil {
			return Key{}, err
		}
		p.pending = append(p.pending, b)
		for p.in.Buffered() > 0 && len(p.pending) < 16 {
			c, _ := p.in.ReadByte()
			p.pending = append(p.pending, c)
		}
	}
}

// Width returns the output width, or DefaultWidth when it is not a terminal.
func (p *Plain) Width() int {
	if p.width > 0 {
		return p.width
	}
	if f, ok := p.out.(*os.File); ok {
		return fileWidth(f)
	}
	return DefaultWidth
}

// SetWidth overrides the reported width.
func (p *Plain) SetWidth(w int) {
	p.width = w
}

// Output returns the writer output goes to.
func (p *Plain) Output() io.Writer {
	return p.out
}

// Interactive reports whether both input and output are terminals.
func (p *Plain) Interactive() bool {
	out, ok := p.out.(*os.File)
	return ok && p.inFile != nil &&
		term.IsTerminal(int(p.inFile.Fd())) && term.IsTerminal(int(out.Fd()))
}

// SetCompleter is a no-op; plain terminals have no tab completion.
func (p *Plain) SetCompleter(readline.AutoCompleter) {}

// Close does nothing; the caller owns the reader and writer.
func (p *Plain) Close() error {
	return nil
}
