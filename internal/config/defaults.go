package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/giantswarm/shellkit/internal/prompt"
)

//go:embed defaults/prompt.yaml
var defaultPromptData []byte

//go:embed defaults/theme-ascii.yaml
var asciiThemeData []byte

// DefaultPrompt returns the built-in prompt layout.
func DefaultPrompt() prompt.Layout {
	var layout prompt.Layout
	if err := yaml.Unmarshal(defaultPromptData, &layout); err != nil {
		panic(fmt.Errorf("embedded prompt layout is invalid: %w", err))
	}
	return layout
}

// AsciiTheme returns theme tables that only use ASCII glyphs.
func AsciiTheme() ThemeTables {
	var tables ThemeTables
	if err := yaml.Unmarshal(asciiThemeData, &tables); err != nil {
		panic(fmt.Errorf("embedded ascii theme is invalid: %w", err))
	}
	return tables
}
