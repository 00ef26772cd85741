package prompt

import (
	"sync"

	"github.com/giantswarm/shellkit/internal/theme"
)

// Writer contributes zero or one segment to a prompt.
type Writer interface {
	WritePrompt(p *Prompt)
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(p *Prompt)

// WritePrompt calls f(p).
func (f WriterFunc) WritePrompt(p *Prompt) {
	f(p)
}

// Renderer draws the left and right prompts from their registered writers.
type Renderer struct {
	mu       sync.RWMutex
	renderer *theme.Renderer
	left     []Writer
	right    []Writer
}

// NewRenderer creates a prompt renderer drawing with r.
func NewRenderer(r *theme.Renderer) *Renderer {
	return &Renderer{renderer: r}
}

// AddLeft appends writers to the left prompt.
func (r *Renderer) AddLeft(w ...Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.left = append(r.left, w...)
}

// AddRight appends writers to the right prompt.
func (r *Renderer) AddRight(w ...Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.right = append(r.right, w...)
}

// SetLayout replaces both writer lists.
func (r *Renderer) SetLayout(left, right []Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.left = left
	r.right = right
}

// Left draws the left prompt. The chain stays open since the caret follows it.
// Without any segment the arrow icon is used.
func (r *Renderer) Left() string {
	r.mu.RLock()
	writers := r.left
	r.mu.RUnlock()

	p := r.draw(writers)
	if p.Len() == 0 {
		return r.renderer.Sprint("highlight", r.renderer.Icon("arrow")) + " "
	}
	return p.String() + " "
}

// Right draws the right prompt and closes its chain.
func (r *Renderer) Right() string {
	r.mu.RLock()
	writers := r.right
	r.mu.RUnlock()

	p := r.draw(writers)
	p.CloseSegments()
	return p.String()
}

func (r *Renderer) draw(writers []Writer) *Prompt {
	p := New(r.renderer)
	for _, w := range writers {
		w.WritePrompt(p)
	}
	return p
}
