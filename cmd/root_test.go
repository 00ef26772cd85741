package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/shellkit/internal/console"
)

func TestSetVersion(t *testing.T) {
	original := rootCmd.Version
	defer func() { rootCmd.Version = original }()

	SetVersion("1.2.3-test")

	assert.Equal(t, "1.2.3-test", rootCmd.Version)
	assert.Equal(t, "1.2.3-test", GetVersion())
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "shellkit", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)

	for _, flag := range []string{"config-dir", "no-color", "ascii", "log-level", "log-file", "history-file", "no-watch", "command"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
	assert.Equal(t, "c", cmd.Flags().Lookup("command").Shorthand)
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitCodeSuccess},
		{"unknown command", console.Errorf(console.KindUnknownCommand, "unknown command: x"), ExitCodeUnknownCommand},
		{"missing input", console.Errorf(console.KindMissingInput, "missing"), ExitCodeUsage},
		{"conversion", console.Errorf(console.KindConversion, "nan"), ExitCodeUsage},
		{"joined", errors.Join(errors.New("a"), console.Errorf(console.KindUnknownAction, "b")), ExitCodeUsage},
		{"other", errors.New("boom"), ExitCodeError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, getExitCode(tt.err))
		})
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config-dir", t.TempDir(), "--no-watch"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBatchCommands(t *testing.T) {
	out, err := execute(t, "", "-c", "echo hello", "-c", "prefs set paging off", "-c", "prefs get paging")

	require.NoError(t, err)
	assert.Equal(t, "hello\npaging = off\npaging = off\n", out)
}

func TestBatchCommands_Failure(t *testing.T) {
	out, err := execute(t, "", "-c", "statsu", "-c", "echo still runs")

	require.Error(t, err)
	assert.Equal(t, ExitCodeUnknownCommand, getExitCode(err))
	assert.Contains(t, out, "unknown command: statsu")
	assert.Contains(t, out, "still runs")
}

func TestBatchCommands_Exit(t *testing.T) {
	out, err := execute(t, "", "-c", "echo one", "-c", "exit", "-c", "echo two")

	require.NoError(t, err)
	assert.Equal(t, "one\n", out)
}

func TestPipedInput(t *testing.T) {
	out, err := execute(t, "echo piped\n\nprefs get results-per-page\nexit\necho never\n")

	require.NoError(t, err)
	assert.Contains(t, out, "piped\n")
	assert.Contains(t, out, "results-per-page = 25\n")
	assert.NotContains(t, out, "never")
}

func TestConfigDirectoryIsApplied(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "preferences.yaml"), []byte("results-per-page: 5\n"), 0o600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--config-dir", dir, "-c", "prefs get results-per-page"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "results-per-page = 5\n", out.String())
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "", "--log-level", "loud", "-c", "echo hi")
	assert.Error(t, err)
}
