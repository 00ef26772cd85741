// Package config loads the console configuration directory.
//
// The directory, ~/.config/shellkit by default, may contain:
//   - preferences.yaml: a flat map of preference id to value
//   - theme.yaml or theme.toml: colors, icons and styles tables merged over the built-in theme
//   - prompt.yaml: the prompt layout, replacing the embedded default
//
// Every file is optional. Watcher re-reads preferences.yaml when it changes so a
// running console picks up edits made in another editor.
package config
