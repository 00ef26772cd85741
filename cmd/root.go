package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/shellkit/internal/console"
)

// Exit codes for the shellkit binary.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error.
	ExitCodeError = 1
	// ExitCodeUsage indicates a command was given bad input.
	ExitCodeUsage = 2
	// ExitCodeUnknownCommand follows the shell convention for commands that do not exist.
	ExitCodeUnknownCommand = 127
)

// rootCmd starts the console. It is the entry point when the binary is called
// without a subcommand.
var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()
	cmd := &cobra.Command{
		Use:   "shellkit",
		Short: "Interactive command console",
		Long: `shellkit is an interactive command console with a themed powerline prompt,
tab completion, typed preferences and a pager for long results.

Without -c it reads commands from the terminal, or line by line from standard
input when that is not a terminal. With -c it runs the given commands and exits.

Configuration is read from the config directory (default ~/.config/shellkit):
  preferences.yaml  preference id to value
  theme.yaml        colors, icons and styles (theme.toml is accepted too)
  prompt.yaml       prompt layout`,
		Args: cobra.NoArgs,
		// SilenceUsage keeps command failures from printing the usage text.
		SilenceUsage: true,
		// The console prints its own errors.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConsole(cmd, opts)
		},
	}
	opts.bindFlags(cmd)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// SetVersion sets the version reported by --version and the version command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the application version.
func GetVersion() string {
	return rootCmd.Version
}

// Execute runs the root command and exits with a code derived from the error.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "shellkit version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps an error to a process exit code.
func getExitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, console.ErrUnknownCommand):
		return ExitCodeUnknownCommand
	case errors.Is(err, console.ErrMissingInput),
		errors.Is(err, console.ErrUnknownAction),
		errors.Is(err, console.ErrConversion),
		errors.Is(err, console.ErrUnresolvedParameter):
		return ExitCodeUsage
	}
	return ExitCodeError
}
