package config

import (
	"fmt"
)

// ConfigurationError is a configuration file that could not be read or parsed.
type ConfigurationError struct {
	// FilePath is the file that failed.
	FilePath string
	// Format is "yaml" or "toml".
	Format string
	// Message describes the failure.
	Message string
	// Err is the underlying decoder or I/O error.
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.FilePath, e.Message, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
