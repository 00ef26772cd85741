package commands

import (
	"strings"

	"github.com/giantswarm/shellkit/internal/console"
)

// Echo prints its arguments.
func Echo() console.Command {
	return &console.Func{
		Info: console.Meta{
			Name:        "echo",
			Type:        TypeBuiltin,
			Description: "Print the arguments",
		},
		Redirects: true,
		Run: func(ctx *console.Context) (any, error) {
			return strings.Join(ctx.Args, " "), nil
		},
	}
}

// Exit ends the interactive session.
func Exit() console.Command {
	return &console.Func{
		Info: console.Meta{
			Name:        "exit",
			Aliases:     []string{"quit"},
			Type:        TypeBuiltin,
			Description: "Leave the console",
		},
		Run: func(*console.Context) (any, error) {
			return nil, console.ErrExit
		},
	}
}
