// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"

	"github.com/lodestone/lodestone/pkg/types"
)

type (
	// LoadOptions defines explicit configuration loading inputs. Zero values
	// mean "use the default lookup".
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath types.FilesystemPath
		// ConfigDirPath overrides the config directory lookup when set.
		ConfigDirPath types.FilesystemPath
	}

	// Loaded is a loaded configuration and the file it came from.
	Loaded struct {
		Config *Config
		// Path is the file that was read, or "" when only defaults and
		// environment overrides apply.
		Path string
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Loaded, error)
	}

	fileProvider struct{}

	staticProvider struct {
		cfg *Config
	}
)

// NewProvider creates a provider that reads config files and the environment.
func NewProvider() Provider {
	return &fileProvider{}
}

// NewStaticProvider returns a provider that always yields cfg. Useful for
// tests and embedding callers that manage configuration themselves.
func NewStaticProvider(cfg *Config) Provider {
	return &staticProvider{cfg: cfg}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Loaded, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Loaded{Config: cfg, Path: path}, nil
}

// Load returns the static configuration, or defaults when none was given.
func (p *staticProvider) Load(_ context.Context, _ LoadOptions) (*Loaded, error) {
	if p.cfg == nil {
		return &Loaded{Config: DefaultConfig()}, nil
	}
	cfg := *p.cfg
	return &Loaded{Config: &cfg}, nil
}
