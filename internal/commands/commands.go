// Package commands holds the console's built-in commands.
package commands

import (
	"github.com/giantswarm/shellkit/internal/console"
)

// Command types used to group the help listing.
const (
	TypeBuiltin  = "builtin"
	TypeSettings = "settings"
	TypeSession  = "session"
)

// All returns every built-in command.
func All() []console.Command {
	return []console.Command{
		Help(),
		Prefs(),
		Theme(),
		Errors(),
		Echo(),
		Source(),
		Exit(),
	}
}

// Register adds every built-in command to c.
func Register(c *console.Console) {
	c.Register(All()...)
}
