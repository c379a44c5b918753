// SPDX-License-Identifier: MPL-2.0

// Package config handles lodestone configuration using Viper with CUE as the
// file format.
//
// Configuration is loaded from config.cue in the platform config directory
// ($XDG_CONFIG_HOME/lodestone, ~/Library/Application Support/lodestone or
// %APPDATA%\lodestone), falling back to ./config.cue. Files are validated
// against the embedded #Config schema. Any key can be overridden through a
// LODESTONE_-prefixed environment variable (LODESTONE_OUTPUT_FORMAT=table).
package config
