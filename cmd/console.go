package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/giantswarm/shellkit/internal/commands"
	"github.com/giantswarm/shellkit/internal/config"
	"github.com/giantswarm/shellkit/internal/console"
	"github.com/giantswarm/shellkit/internal/lifecycle"
	"github.com/giantswarm/shellkit/internal/preferences"
	"github.com/giantswarm/shellkit/internal/prompt"
	"github.com/giantswarm/shellkit/internal/terminal"
	"github.com/giantswarm/shellkit/internal/theme"
	"github.com/giantswarm/shellkit/pkg/logging"
)

func runConsole(cmd *cobra.Command, opts *options) error {
	if err := initLogging(opts, cmd.ErrOrStderr()); err != nil {
		return err
	}
	defer func() { _ = logging.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	if len(opts.commands) > 0 {
		c, _, err := newConsole(opts, terminal.NewPlain(in, out), out)
		if err != nil {
			return err
		}
		return ignoreExit(c.ExecuteBatchContext(ctx, c.Out(), opts.commands...))
	}

	t, err := openTerminal(opts, in, out)
	if err != nil {
		return err
	}
	defer func() { _ = t.Close() }()

	c, cfg, err := newConsole(opts, t, t.Output())
	if err != nil {
		return err
	}
	if t.Interactive() && !opts.noWatch {
		stopWatch, err := watchPreferences(cfg, c)
		if err != nil {
			return err
		}
		defer stopWatch()
	}
	return c.Run(ctx)
}

func initLogging(opts *options, stderr io.Writer) error {
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	if opts.logFile != "" {
		logging.InitForFile(level, logging.DefaultFileConfig(opts.logFile))
		return nil
	}
	logging.InitForCLI(level, stderr)
	return nil
}

// openTerminal returns a line editor when in is a terminal and a plain line
// reader otherwise.
func openTerminal(opts *options, in io.Reader, out io.Writer) (terminal.Terminal, error) {
	inFile, inOK := in.(*os.File)
	outFile, outOK := out.(*os.File)
	if !inOK || !outOK || !term.IsTerminal(int(inFile.Fd())) {
		return terminal.NewPlain(in, out), nil
	}

	if err := os.MkdirAll(opts.configDir, 0o755); err != nil {
		logging.Warn("Shell", "Cannot create %s, history disabled: %v", opts.configDir, err)
		opts.historyFile = os.DevNull
	}
	t, err := terminal.NewReadline(terminal.ReadlineConfig{
		HistoryFile: opts.history(),
		In:          inFile,
		Out:         outFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return t, nil
}

// newConsole wires configuration, theme, prompt and built-in commands into a console.
func newConsole(opts *options, t terminal.Terminal, out io.Writer) (*console.Console, *config.Config, error) {
	cfg, err := config.Load(opts.configDir)
	if err != nil {
		return nil, nil, err
	}

	th := theme.Default()
	if opts.ascii {
		config.AsciiTheme().ApplyTo(th)
	}
	profile := theme.ProfileFor(out, opts.noColor)

	bus := lifecycle.NewBus(nil)
	pr := prompt.NewRenderer(theme.NewRenderer(th, profile))
	left, right, err := prompt.Build(cfg.Prompt, bus)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid prompt layout: %w", err)
	}
	pr.SetLayout(left, right)

	store := preferences.NewStore()
	c := console.New(console.Options{
		Terminal:    t,
		Output:      out,
		Theme:       th,
		Profile:     &profile,
		Preferences: store,
		Bus:         bus,
		Prompt:      pr,
	})
	commands.Register(c)

	if err := cfg.Apply(store, th); err != nil {
		c.Out().PrintError(fmt.Errorf("ignoring invalid preferences: %w", err))
	}
	return c, cfg, nil
}

// watchPreferences reloads preferences.yaml into the console between commands.
func watchPreferences(cfg *config.Config, c *console.Console) (func(), error) {
	var queue config.ReloadQueue
	queue.Attach(c.Bus(), c.Preferences())

	w := config.NewWatcher(config.WatcherConfig{Dir: cfg.Dir, OnChange: queue.Push})
	if err := w.Start(); err != nil {
		return nil, err
	}
	return func() { _ = w.Stop() }, nil
}

func ignoreExit(err error) error {
	if errors.Is(err, console.ErrExit) {
		return nil
	}
	return err
}
