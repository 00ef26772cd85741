package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/giantswarm/shellkit/internal/config"
)

// options are the root command's flags.
type options struct {
	configDir   string
	noColor     bool
	ascii       bool
	logLevel    string
	logFile     string
	historyFile string
	noWatch     bool
	commands    []string
}

func defaultOptions() *options {
	dir, err := config.DefaultDir()
	if err != nil {
		dir = ".shellkit"
	}
	return &options{configDir: dir, logLevel: "warn"}
}

func (o *options) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.configDir, "config-dir", o.configDir, "Configuration directory")
	f.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	f.BoolVar(&o.ascii, "ascii", false, "Use ASCII icons instead of powerline glyphs")
	f.StringVar(&o.logLevel, "log-level", o.logLevel, "Log level: debug, info, warn or error")
	f.StringVar(&o.logFile, "log-file", "", "Write logs to this rotating file instead of stderr")
	f.StringVar(&o.historyFile, "history-file", "", "Line history file (default <config-dir>/history)")
	f.BoolVar(&o.noWatch, "no-watch", false, "Do not reload preferences.yaml when it changes")
	f.StringArrayVarP(&o.commands, "command", "c", nil, "Run this command and exit (repeatable)")
}

func (o *options) history() string {
	if o.historyFile != "" {
		return o.historyFile
	}
	return filepath.Join(o.configDir, "history")
}
