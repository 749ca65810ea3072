// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package config loads bladegen configuration from bladegen.yaml and the
// environment.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"

	"github.com/albertocavalcante/bladegen/marker"
)

const (
	maxWalkDepth = 25

	// EnvPrefix prefixes every environment variable, e.g. BLADEGEN_TARGET.
	EnvPrefix = "BLADEGEN"
)

// FileNames are the config file names looked up in each directory, in order.
var FileNames = []string{"bladegen.yaml", "bladegen.yml", ".bladegen.yaml"}

// Config represents the bladegen configuration.
type Config struct {
	// Target is the generation target name ("go", "proto", "markdown").
	Target string `mapstructure:"target" json:"target"`

	// Patterns are the package patterns to scan.
	Patterns []string `mapstructure:"patterns" json:"patterns"`

	// Tags are build tags used when loading packages.
	Tags []string `mapstructure:"tags" json:"tags"`

	// Workers bounds concurrency. Zero picks GOMAXPROCS.
	Workers int `mapstructure:"workers" json:"workers"`

	// Options are target options as "key=value" pairs.
	Options []string `mapstructure:"options" json:"options"`

	Marker   MarkerConfig   `mapstructure:"marker" json:"marker"`
	Template TemplateConfig `mapstructure:"template" json:"template"`
	Output   OutputConfig   `mapstructure:"output" json:"output"`
	Log      LogConfig      `mapstructure:"log" json:"log"`
}

// MarkerConfig selects which types are generated.
type MarkerConfig struct {
	Name    string `mapstructure:"name" json:"name"`
	Strict  bool   `mapstructure:"strict" json:"strict"`
	Package string `mapstructure:"package" json:"package"`
}

// TemplateConfig overrides the target's embedded template.
type TemplateConfig struct {
	Path string `mapstructure:"path" json:"path"`
	Dir  string `mapstructure:"dir" json:"dir"`
}

// OutputConfig controls where artifacts go.
type OutputConfig struct {
	Dir    string `mapstructure:"dir" json:"dir"`
	Suffix string `mapstructure:"suffix" json:"suffix"`
}

// LogConfig controls logging.
type LogConfig struct {
	JSON bool `mapstructure:"json" json:"json"`
}

// Load discovers and loads configuration with proper precedence:
// env > config file > defaults. Flags are applied by the caller.
//
// Returns the loaded config, the path to the config file (empty if none found),
// and any error encountered.
func Load(explicitPath string) (*Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, "getting cwd")
	}
	return load(explicitPath, cwd)
}

func load(explicitPath, startDir string) (*Config, string, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := findConfigFile(explicitPath, startDir)
	if err != nil {
		return nil, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, configPath, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configPath, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, configPath, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("target", "go")
	v.SetDefault("patterns", []string{"./..."})
	v.SetDefault("tags", []string{})
	v.SetDefault("workers", 0)
	v.SetDefault("options", []string{})

	v.SetDefault("marker.name", marker.Name)
	v.SetDefault("marker.strict", false)
	v.SetDefault("marker.package", marker.Path)

	v.SetDefault("template.path", "")
	v.SetDefault("template.dir", "")

	v.SetDefault("output.dir", "")
	v.SetDefault("output.suffix", ".g")

	v.SetDefault("log.json", false)
}

// findConfigFile finds the config file to use.
// If explicitPath is provided, it validates the file exists.
// Otherwise, it walks up from startDir looking for one of FileNames,
// stopping at a .git directory or after maxWalkDepth levels.
func findConfigFile(explicitPath, startDir string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", errors.Newf("config file not found: %s", explicitPath)
		}
		return explicitPath, nil
	}

	dir := startDir
	for i := 0; i < maxWalkDepth; i++ {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		// Stop at the repository root.
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", nil // No config found, use defaults
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Target == "" {
		return errors.New("target is empty")
	}
	if c.Workers < 0 {
		return errors.Newf("workers must not be negative, got %d", c.Workers)
	}
	if strings.ContainsAny(c.Output.Suffix, `/\`) {
		return errors.Newf("output.suffix %q must not contain a path separator", c.Output.Suffix)
	}
	if c.Marker.Name == "" {
		return errors.New("marker.name is empty")
	}
	if c.Marker.Strict && c.Marker.Package == "" {
		return errors.New("marker.strict requires marker.package")
	}
	if c.Marker.Strict && strings.Contains(c.Marker.Name, ".") {
		return errors.WithHint(
			errors.Newf("marker.name %q is qualified; strict mode takes the type name only", c.Marker.Name),
			"set marker.name to the type name and marker.package to its import path",
		)
	}
	if c.Template.Path != "" && c.Template.Dir != "" {
		return errors.WithHint(
			errors.New("template.path and template.dir are mutually exclusive"),
			"template.path applies to one target; template.dir holds <target>.tmpl files",
		)
	}
	if _, err := c.OptionMap(); err != nil {
		return err
	}
	return nil
}

// OptionMap parses Options into a map. Later entries win.
func (c *Config) OptionMap() (map[string]string, error) {
	out := make(map[string]string, len(c.Options))
	for _, kv := range c.Options {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, errors.Newf("option %q is not key=value", kv)
		}
		out[k] = strings.TrimSpace(v)
	}
	return out, nil
}
