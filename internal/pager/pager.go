// Package pager prints long result lists one page at a time, reading raw
// keystrokes to move between pages.
//
// The pager is a small state machine:
//
//	Viewing -> ReadKey -> Advance | Retreat | Shrink | Grow | DumpRest | Quit
//
// Advance, Retreat, Shrink and Grow go back to Viewing; DumpRest and Quit end
// the session, as does advancing past the last item. Keys come from a
// terminal.KeyReader so sessions can be driven without a real terminal.
package pager

import (
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/giantswarm/shellkit/internal/preferences"
	"github.com/giantswarm/shellkit/internal/terminal"
	"github.com/giantswarm/shellkit/internal/theme"
	"github.com/giantswarm/shellkit/pkg/logging"
)

// Preferences the pager reads on every session.
var (
	PagingSpec = preferences.Spec{
		ID:          "paging",
		Description: "Page results that do not fit on one screen",
		Type:        preferences.Flag,
		Default:     "true",
	}
	ResultsPerPageSpec = preferences.Spec{
		ID:          "results-per-page",
		Description: "Number of results shown per page",
		Type:        preferences.Number,
		Default:     "25",
	}
)

// PrintFunc writes one item.
type PrintFunc func(w io.Writer, item any) error

// Options configures a Pager.
type Options struct {
	Out         io.Writer
	Keys        terminal.KeyReader
	Renderer    *theme.Renderer
	Preferences *preferences.Store
	// Interactive is false when output goes to a file; such sessions never page.
	Interactive bool
	// Print writes an item; defaults to one fmt.Fprintln per item.
	Print PrintFunc
}

// Pager pages a list of items to one writer.
type Pager struct {
	out         io.Writer
	keys        terminal.KeyReader
	renderer    *theme.Renderer
	paging      *preferences.Preference
	perPage     *preferences.Preference
	interactive bool
	print       PrintFunc
}

// Stats describes what a session printed.
type Stats struct {
	// Pages is the number of pages drawn, counting redraws after a resize or retreat.
	Pages int
	// Items is the number of item prints, counting reprints.
	Items int
	// Paged is false when everything was printed without entering the key loop.
	Paged bool
}

// New creates a Pager.
func New(opts Options) *Pager {
	if opts.Preferences == nil {
		opts.Preferences = preferences.NewStore()
	}
	if opts.Renderer == nil {
		opts.Renderer = theme.NewRenderer(theme.Default(), termenv.Ascii)
	}
	if opts.Print == nil {
		opts.Print = func(w io.Writer, item any) error {
			_, err := fmt.Fprintln(w, item)
			return err
		}
	}
	return &Pager{
		out:         opts.Out,
		keys:        opts.Keys,
		renderer:    opts.Renderer,
		paging:      opts.Preferences.Register(PagingSpec),
		perPage:     opts.Preferences.Register(ResultsPerPageSpec),
		interactive: opts.Interactive && opts.Keys != nil,
		print:       opts.Print,
	}
}

// PageStrings is Page for a list of lines.
func (p *Pager) PageStrings(lines []string) (Stats, error) {
	items := make([]any, len(lines))
	for i, l := range lines {
		items[i] = l
	}
	return p.Page(items)
}

// Page prints items, paging them when paging is enabled, the output is
// interactive and the list does not fit on one page.
func (p *Pager) Page(items []any) (Stats, error) {
	var stats Stats
	count := len(items)
	if count == 0 {
		return stats, nil
	}

	s := &session{pageSize: p.perPage.Int()}
	s.clamp()

	if !p.paging.Bool() || !p.interactive || count <= s.pageSize {
		n, err := p.printAll(items)
		stats.Items = n
		return stats, err
	}

	stats.Paged = true
	for s.cursor < count {
		s.clamp()
		end := min(s.cursor+s.pageSize, count)
		if err := p.printRange(items[s.cursor:end]); err != nil {
			return stats, err
		}
		stats.Pages++
		stats.Items += end - s.cursor

		action, err := p.readAction(s, count)
		if err != nil {
			return stats, err
		}
		switch action {
		case DumpRest:
			n, err := p.printAll(items[end:])
			stats.Items += n
			return stats, err
		case Quit:
			return stats, nil
		}
		s.apply(action)
	}
	return stats, nil
}

// readAction draws the footer and reads keys until one maps to an action.
func (p *Pager) readAction(s *session, count int) (Action, error) {
	if _, err := io.WriteString(p.out, p.footer(s, count)); err != nil {
		return Quit, err
	}
	defer func() { _, _ = io.WriteString(p.out, "\r\x1b[2K") }()

	for {
		key, err := p.keys.ReadKey()
		if errors.Is(err, io.EOF) {
			logging.Debug("Pager", "key input closed, leaving pager")
			return Quit, nil
		}
		if err != nil {
			return Quit, fmt.Errorf("failed to read key: %w", err)
		}
		if action := ActionFor(key); action != None {
			return action, nil
		}
	}
}

func (p *Pager) footer(s *session, count int) string {
	page := s.cursor/s.pageSize + 1
	total := (count + s.pageSize - 1) / s.pageSize
	r := p.renderer

	label := fmt.Sprintf(" %s %d/%d %s ", r.Icon("prev"), page, total, r.Icon("next"))
	hint := " space next · b prev · -/+ size · a all · q quit"
	return r.Sprint("footer", label) + r.Sprint("muted", hint)
}

func (p *Pager) printRange(items []any) error {
	for _, item := range items {
		if err := p.print(p.out, item); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pager) printAll(items []any) (int, error) {
	for i, item := range items {
		if err := p.print(p.out, item); err != nil {
			return i, err
		}
	}
	return len(items), nil
}
