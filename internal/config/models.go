package config

import (
	"fmt"
	"time"
)

// CurrentVersion is the config file schema version
const CurrentVersion = 1

// Config represents the entire user configuration file.
// Every field can be overridden by a PROFILEFORM_* environment variable.
type Config struct {
	Version int          `yaml:"version"`
	Form    FormPrefs    `yaml:"form"`
	Display DisplayPrefs `yaml:"display"`
	Logging LoggingPrefs `yaml:"logging"`
}

// FormPrefs tunes the feedback controller
type FormPrefs struct {
	HighlightDelay time.Duration `yaml:"highlight_delay" env:"PROFILEFORM_HIGHLIGHT_DELAY"` // How long a submit error highlight stays visible
	Placeholder    string        `yaml:"placeholder" env:"PROFILEFORM_PLACEHOLDER"`         // Result text before a valid submission
}

// DisplayPrefs controls the terminal UI
type DisplayPrefs struct {
	AltScreen bool `yaml:"alt_screen" env:"PROFILEFORM_ALT_SCREEN"` // Run the form on the alternate screen
	ShowHelp  bool `yaml:"show_help" env:"PROFILEFORM_SHOW_HELP"`   // Show the key binding footer
}

// LoggingPrefs mirrors the logging package's environment variables
type LoggingPrefs struct {
	Level string `yaml:"level,omitempty" env:"PROFILEFORM_LOG_LEVEL"` // debug, info, warn, error; empty is silent
	File  string `yaml:"file,omitempty" env:"PROFILEFORM_LOG_FILE"`   // Log destination; empty is stderr
}

// Default values
const (
	DefaultHighlightDelay = 2 * time.Second
	DefaultPlaceholder    = "Your result will appear here..."
)

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Form: FormPrefs{
			HighlightDelay: DefaultHighlightDelay,
			Placeholder:    DefaultPlaceholder,
		},
		Display: DisplayPrefs{
			AltScreen: true,
			ShowHelp:  true,
		},
	}
}

// Validate checks values that would break the form
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", c.Version, CurrentVersion)
	}
	if c.Form.HighlightDelay <= 0 {
		return fmt.Errorf("form.highlight_delay must be positive, got %s", c.Form.HighlightDelay)
	}
	if c.Form.HighlightDelay > time.Minute {
		return fmt.Errorf("form.highlight_delay must be at most 1m, got %s", c.Form.HighlightDelay)
	}
	return nil
}
