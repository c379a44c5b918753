// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	// OutputPlain prints one resulting path per line.
	OutputPlain OutputFormat = "plain"
	// OutputTable prints an input/result table.
	OutputTable OutputFormat = "table"

	// DefaultMaxAttempts bounds how often reserve retries after losing a race.
	DefaultMaxAttempts = 8
	// maxMaxAttempts mirrors the upper bound in config_schema.cue.
	maxMaxAttempts = 1000
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputFormat is returned when an OutputFormat value is not recognized.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidMaxAttempts is returned when reserve.max_attempts is out of range.
	ErrInvalidMaxAttempts = errors.New("invalid reserve max attempts")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// OutputFormat selects how command results are printed.
	OutputFormat string

	// Config holds the application configuration.
	Config struct {
		// UI configures the user interface
		UI UIConfig `json:"ui" toml:"ui" mapstructure:"ui"`
		// Output configures result rendering
		Output OutputConfig `json:"output" toml:"output" mapstructure:"output"`
		// Reserve configures the reserve command
		Reserve ReserveConfig `json:"reserve" toml:"reserve" mapstructure:"reserve"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// Verbose enables debug logging and full error chains
		Verbose bool `json:"verbose" toml:"verbose" mapstructure:"verbose"`
		// ColorScheme sets the color scheme used for rendered Markdown
		ColorScheme ColorScheme `json:"color_scheme" toml:"color_scheme" mapstructure:"color_scheme"`
	}

	// OutputConfig configures result rendering.
	OutputConfig struct {
		Format OutputFormat `json:"format" toml:"format" mapstructure:"format"`
	}

	// ReserveConfig configures the reserve command.
	ReserveConfig struct {
		// MaxAttempts is how many names reserve tries before giving up
		MaxAttempts int `json:"max_attempts" toml:"max_attempts" mapstructure:"max_attempts"`
	}

	// InvalidConfigError collects every invalid field of a Config.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Verbose:     false,
			ColorScheme: ColorSchemeAuto,
		},
		Output: OutputConfig{
			Format: OutputPlain,
		},
		Reserve: ReserveConfig{
			MaxAttempts: DefaultMaxAttempts,
		},
	}
}

// Validate returns an error if the ColorScheme is not one of the known schemes.
func (c ColorScheme) Validate() error {
	switch c {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: auto, dark, light)", ErrInvalidColorScheme, c)
	}
}

// GlamourStyle returns the glamour standard style name for the scheme.
func (c ColorScheme) GlamourStyle() string {
	if c == "" {
		return string(ColorSchemeAuto)
	}
	return string(c)
}

// Validate returns an error if the OutputFormat is not one of the known formats.
func (f OutputFormat) Validate() error {
	switch f {
	case OutputPlain, OutputTable:
		return nil
	default:
		return fmt.Errorf("%w: %q (valid: plain, table)", ErrInvalidOutputFormat, f)
	}
}

// Validate checks every field and returns an *InvalidConfigError listing all
// problems. Environment overrides bypass the CUE schema, so this runs after
// every load.
func (c Config) Validate() error {
	var errs []error
	if err := c.UI.ColorScheme.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Output.Format.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Reserve.MaxAttempts < 1 || c.Reserve.MaxAttempts > maxMaxAttempts {
		errs = append(errs, fmt.Errorf("%w: %d (must be in range 1-%d)", ErrInvalidMaxAttempts, c.Reserve.MaxAttempts, maxMaxAttempts))
	}
	if len(errs) > 0 {
		return &InvalidConfigError{FieldErrors: errs}
	}
	return nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s): %v", len(e.FieldErrors), errors.Join(e.FieldErrors...))
}

// Unwrap returns ErrInvalidConfig and the field errors for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() []error {
	return append([]error{ErrInvalidConfig}, e.FieldErrors...)
}
