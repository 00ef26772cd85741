package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/giantswarm/shellkit/internal/preferences"
	"github.com/giantswarm/shellkit/internal/prompt"
	"github.com/giantswarm/shellkit/internal/theme"
	"github.com/giantswarm/shellkit/pkg/logging"
)

const (
	userConfigDir = ".config/shellkit"

	PreferencesFile = "preferences.yaml"
	ThemeFile       = "theme.yaml"
	ThemeTOMLFile   = "theme.toml"
	PromptFile      = "prompt.yaml"
)

// DefaultDir returns ~/.config/shellkit.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(home, userConfigDir), nil
}

// ThemeTables are the entries a theme file overlays on the active theme.
type ThemeTables struct {
	Colors map[string]string `yaml:"colors" toml:"colors"`
	Icons  map[string]string `yaml:"icons" toml:"icons"`
	Styles map[string]string `yaml:"styles" toml:"styles"`
}

// IsEmpty reports whether no table has entries.
func (t ThemeTables) IsEmpty() bool {
	return len(t.Colors) == 0 && len(t.Icons) == 0 && len(t.Styles) == 0
}

// ApplyTo merges the tables into th.
func (t ThemeTables) ApplyTo(th *theme.Theme) {
	th.Merge(t.Colors, t.Icons, t.Styles)
}

// Config is the content of a configuration directory.
type Config struct {
	Dir         string
	Preferences map[string]string
	Theme       ThemeTables
	Prompt      prompt.Layout
}

// Load reads dir. Missing files leave the defaults in place; a missing
// directory is not an error.
func Load(dir string) (*Config, error) {
	cfg := &Config{Dir: dir, Prompt: DefaultPrompt()}

	prefs, err := LoadPreferences(filepath.Join(dir, PreferencesFile))
	if err != nil {
		return nil, err
	}
	cfg.Preferences = prefs

	if cfg.Theme, err = LoadTheme(dir); err != nil {
		return nil, err
	}

	layout, found, err := LoadPrompt(filepath.Join(dir, PromptFile))
	if err != nil {
		return nil, err
	}
	if found {
		cfg.Prompt = layout
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s (%d preferences)", dir, len(cfg.Preferences))
	return cfg, nil
}

// Apply loads the preferences into store and merges the theme into th.
// Preferences not registered yet are kept by the store until they are.
func (c *Config) Apply(store *preferences.Store, th *theme.Theme) error {
	c.Theme.ApplyTo(th)
	return store.Load(c.Preferences)
}

// LoadPreferences reads a flat YAML map of preference id to scalar value.
// A missing file yields an empty map.
func LoadPreferences(path string) (map[string]string, error) {
	data, ok, err := readOptional(path)
	if err != nil || !ok {
		return map[string]string{}, err
	}

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &ConfigurationError{FilePath: path, Format: "yaml", Message: "malformed preferences", Err: err}
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	prefs := make(map[string]string, len(raw))
	for _, id := range ids {
		node := raw[id]
		if node.Kind != yaml.ScalarNode {
			return nil, &ConfigurationError{
				FilePath: path,
				Format:   "yaml",
				Message:  fmt.Sprintf("preference %s on line %d must be a scalar", id, node.Line),
			}
		}
		prefs[id] = node.Value
	}
	return prefs, nil
}

// LoadTheme reads theme.yaml from dir, or theme.toml when there is no YAML file.
func LoadTheme(dir string) (ThemeTables, error) {
	var tables ThemeTables

	yamlPath := filepath.Join(dir, ThemeFile)
	data, ok, err := readOptional(yamlPath)
	if err != nil {
		return tables, err
	}
	if ok {
		if err := yaml.Unmarshal(data, &tables); err != nil {
			return tables, &ConfigurationError{FilePath: yamlPath, Format: "yaml", Message: "malformed theme", Err: err}
		}
		return tables, nil
	}

	tomlPath := filepath.Join(dir, ThemeTOMLFile)
	if _, err := os.Stat(tomlPath); errors.Is(err, os.ErrNotExist) {
		return tables, nil
	}
	meta, err := toml.DecodeFile(tomlPath, &tables)
	if err != nil {
		return tables, &ConfigurationError{FilePath: tomlPath, Format: "toml", Message: "malformed theme", Err: err}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		logging.Warn("ConfigLoader", "Ignoring unknown keys in %s: %v", tomlPath, undecoded)
	}
	return tables, nil
}

// LoadPrompt reads a prompt layout. found is false when the file does not exist.
func LoadPrompt(path string) (layout prompt.Layout, found bool, err error) {
	data, ok, err := readOptional(path)
	if err != nil || !ok {
		return layout, false, err
	}
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return layout, false, &ConfigurationError{FilePath: path, Format: "yaml", Message: "malformed prompt layout", Err: err}
	}
	return layout, true, nil
}

func readOptional(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		logging.Debug("ConfigLoader", "No %s found, using defaults", path)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &ConfigurationError{FilePath: path, Message: "cannot read", Err: err}
	}
	return data, true, nil
}
