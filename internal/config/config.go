// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config provides the shell configuration and its YAML file format.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of a shell session.
type Config struct {
	// VFSPath is the path to the archive the virtual file system is loaded
	// from. If empty, the session starts with an empty root.
	VFSPath string `yaml:"vfs_path"`

	// LogPath is the path to the audit log file. If empty, commands are not
	// logged.
	LogPath string `yaml:"log_path"`

	// StartupScript is the path to a script that is run before the
	// interactive session starts.
	StartupScript string `yaml:"startup_script"`

	// Name is shown in the prompt.
	Name string `yaml:"name" default:"vfs"`

	// NoColor disables colored output.
	NoColor bool `yaml:"no_color"`
}

// Default returns the [Config] with all defaults set.
func Default() Config {
	var cfg Config

	// Only fails for non-pointer arguments.
	_ = defaults.Set(&cfg)

	return cfg
}

// Load reads the YAML configuration file at the given path. Environment
// variables in the file are expanded. Fields not present in the file keep
// their defaults.
//
// A non existing file is not an error. The defaults are returned in this
// case.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("read config: %w", err)
	}

	expanded := os.ExpandEnv(string(content))

	decoder := yaml.NewDecoder(bytes.NewBufferString(expanded))
	decoder.KnownFields(true)

	err = decoder.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Override replaces the fields of the [Config] with all non-empty fields of
// the given [Config]. Command line values take priority over config file
// values this way.
func (c *Config) Override(other Config) {
	if other.VFSPath != "" {
		c.VFSPath = other.VFSPath
	}

	if other.LogPath != "" {
		c.LogPath = other.LogPath
	}

	if other.StartupScript != "" {
		c.StartupScript = other.StartupScript
	}

	if other.Name != "" {
		c.Name = other.Name
	}

	if other.NoColor {
		c.NoColor = true
	}
}

// Fields returns the configuration as ordered key value pairs using the
// YAML keys.
func (c *Config) Fields() [][2]string {
	return [][2]string{
		{"vfs_path", c.VFSPath},
		{"log_path", c.LogPath},
		{"startup_script", c.StartupScript},
		{"name", c.Name},
		{"no_color", fmt.Sprint(c.NoColor)},
	}
}
