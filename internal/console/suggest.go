package console

import (
	"strings"

	"github.com/giantswarm/shellkit/pkg/logging"
)

// Suggest returns completion candidates for a partially typed line. While the
// first word is typed, matching command names and aliases are offered;
// afterwards the command completes its own arguments.
func (c *Console) Suggest(line string) []Suggestion {
	words := splitWords(line)

	if len(words) == 1 {
		var out []Suggestion
		for _, name := range c.registry.Names() {
			if !strings.HasPrefix(name, words[0]) {
				continue
			}
			cmd, _ := c.registry.Get(name)
			meta := cmd.Meta()
			out = append(out, Suggestion{
				Value:       name,
				Description: meta.Description,
				Group:       meta.Type,
				Complete:    true,
			})
		}
		return out
	}

	cmd, ok := c.registry.Get(words[0])
	if !ok {
		return nil
	}
	ctx := &Context{
		Command: cmd,
		Args:    words[1:],
		Out:     c.out,
		Console: c,
	}
	return c.suggestSafely(cmd, ctx)
}

// suggestSafely keeps a panicking suggestion provider from taking down the line editor.
func (c *Console) suggestSafely(cmd Command, ctx *Context) (out []Suggestion) {
	defer func() {
		if r := recover(); r != nil {
			logging.Warn("Console", "suggestions for %s panicked: %v", cmd.Meta().Name, r)
			out = nil
		}
	}()
	return cmd.Suggest(ctx)
}
