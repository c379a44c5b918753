// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorScheme_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value   ColorScheme
		wantErr bool
	}{
		{ColorSchemeAuto, false},
		{ColorSchemeDark, false},
		{ColorSchemeLight, false},
		{"", true},
		{"neon", true},
		{"Dark", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.value), func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorScheme(%q).Validate() error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidColorScheme) {
				t.Errorf("error should wrap ErrInvalidColorScheme, got %v", err)
			}
		})
	}
}

func TestColorScheme_GlamourStyle(t *testing.T) {
	t.Parallel()

	if got := ColorScheme("").GlamourStyle(); got != "auto" {
		t.Errorf("empty scheme GlamourStyle() = %q, want auto", got)
	}
	if got := ColorSchemeLight.GlamourStyle(); got != "light" {
		t.Errorf("light GlamourStyle() = %q, want light", got)
	}
}

func TestOutputFormat_Validate(t *testing.T) {
	t.Parallel()

	for _, f := range []OutputFormat{OutputPlain, OutputTable} {
		if err := f.Validate(); err != nil {
			t.Errorf("OutputFormat(%q).Validate() = %v", f, err)
		}
	}
	for _, f := range []OutputFormat{"", "json", "TABLE"} {
		if err := f.Validate(); !errors.Is(err, ErrInvalidOutputFormat) {
			t.Errorf("OutputFormat(%q).Validate() = %v, want ErrInvalidOutputFormat", f, err)
		}
	}
}

func TestConfig_Validate_CollectsAllFieldErrors(t *testing.T) {
	t.Parallel()

	cfg := Config{
		UI:      UIConfig{ColorScheme: "neon"},
		Output:  OutputConfig{Format: "json"},
		Reserve: ReserveConfig{MaxAttempts: 0},
	}

	err := cfg.Validate()
	var cfgErr *InvalidConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Validate() error = %T, want *InvalidConfigError", err)
	}
	if len(cfgErr.FieldErrors) != 3 {
		t.Errorf("FieldErrors = %d, want 3: %v", len(cfgErr.FieldErrors), cfgErr.FieldErrors)
	}
	for _, sentinel := range []error{ErrInvalidConfig, ErrInvalidColorScheme, ErrInvalidOutputFormat, ErrInvalidMaxAttempts} {
		if !errors.Is(err, sentinel) {
			t.Errorf("Validate() error should match %v", sentinel)
		}
	}
}

func TestConfig_Validate_MaxAttemptsRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attempts int
		wantErr  bool
	}{
		{-1, true},
		{0, true},
		{1, false},
		{DefaultMaxAttempts, false},
		{maxMaxAttempts, false},
		{maxMaxAttempts + 1, true},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Reserve.MaxAttempts = tt.attempts
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("MaxAttempts=%d: Validate() error = %v, wantErr %v", tt.attempts, err, tt.wantErr)
		}
	}
}
