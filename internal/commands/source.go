package commands

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/giantswarm/shellkit/internal/console"
	"github.com/giantswarm/shellkit/pkg/logging"
)

// Source runs every line of a file as if it had been typed.
func Source() console.Command {
	return &console.Func{
		Info: console.Meta{
			Name:        "source",
			Type:        TypeBuiltin,
			Description: "Run the commands in a file",
		},
		Run: runSource,
	}
}

func runSource(ctx *console.Context) (any, error) {
	if len(ctx.Args) != 1 {
		return nil, console.Errorf(console.KindMissingInput, "usage: source <file>")
	}
	path := ctx.Args[0]

	lines, err := readLines(path)
	if err != nil {
		return nil, console.WrapError(console.KindIO, err, "cannot read %s", path)
	}
	logging.Debug("Source", "running %d lines from %s", len(lines), path)

	failed, total := 0, 0
	for _, line := range lines {
		tokens, err := console.Tokenize(line)
		if err == nil && len(tokens) == 0 {
			continue
		}
		total++
		if err := ctx.Console.ExecuteContext(ctx.Context(), ctx.Out, line); err != nil {
			if errors.Is(err, console.ErrExit) {
				return nil, err
			}
			failed++
		}
	}
	if failed > 0 {
		return nil, fmt.Errorf("%s: %d of %d commands failed", path, failed, total)
	}
	return nil, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
