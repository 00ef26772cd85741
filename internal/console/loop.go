package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/giantswarm/shellkit/internal/terminal"
	"github.com/giantswarm/shellkit/pkg/logging"
)

// Run reads and executes lines until end of input, an exit command, an
// interrupt on an empty line or ctx being cancelled.
//
// Each line runs as its own batch so the prompt reflects its outcome. An
// interrupt while a partial line is typed only discards that line.
func (c *Console) Run(ctx context.Context) error {
	if c.term == nil {
		return fmt.Errorf("console has no terminal")
	}
	c.term.SetCompleter(NewCompleter(c))

	for {
		select {
		case <-ctx.Done():
			logging.Info("Console", "shutting down")
			return nil
		default:
		}

		c.bus.NotifyReady()
		line, err := c.term.ReadLine(c.prompt.Left(), c.prompt.Right())
		if errors.Is(err, io.EOF) {
			return nil
		}
		if partial, interrupted := terminal.InterruptedLine(err); interrupted {
			if strings.TrimSpace(partial) != "" {
				continue
			}
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		if err := c.ExecuteBatchContext(ctx, c.out, line); errors.Is(err, ErrExit) {
			return nil
		}
	}
}
