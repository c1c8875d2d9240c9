// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config loads the optional rfcurl YAML configuration file and applies
// it to command-line flags the user did not set.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfig names a config file to load when --config is not given.
	EnvConfig = "RFCURL_CONFIG"
	// DefaultFileName is looked up in the working directory when neither
	// --config nor RFCURL_CONFIG is set.
	DefaultFileName = ".rfcurl.yaml"
)

// Config is the content of a config file. Zero values mean "not set".
type Config struct {
	Output         string `yaml:"output"`
	Debug          bool   `yaml:"debug"`
	StructuredLogs bool   `yaml:"structuredLogs"`
	NoColor        bool   `yaml:"noColor"`
	HTTPSOnly      bool   `yaml:"httpsOnly"`
	MaxLength      int    `yaml:"maxLength"`
}

// Load reads the config file at path. An empty path falls back to
// RFCURL_CONFIG and then to DefaultFileName; only the implicit default may
// be missing, in which case an empty Config is returned.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		path = DefaultFileName
		explicit = false
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses and validates YAML config from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Output {
	case "", "default", "json", "yaml":
	default:
		return fmt.Errorf("output must be one of default, json, yaml; got %q", c.Output)
	}
	if c.MaxLength < 0 {
		return fmt.Errorf("maxLength must not be negative, got %d", c.MaxLength)
	}
	return nil
}

// flagValues maps flag names to the string form of each set field.
func (c *Config) flagValues() map[string]string {
	values := map[string]string{}
	if c.Output != "" {
		values["output"] = c.Output
	}
	if c.Debug {
		values["debug"] = "true"
	}
	if c.StructuredLogs {
		values["structured-logs"] = "true"
	}
	if c.NoColor {
		values["no-color"] = "true"
	}
	if c.HTTPSOnly {
		values["https-only"] = "true"
	}
	if c.MaxLength > 0 {
		values["max-length"] = strconv.Itoa(c.MaxLength)
	}
	return values
}

// ApplyToFlags sets every flag in fs that has a config value and was not
// given on the command line. Flags fs does not define are skipped.
func (c *Config) ApplyToFlags(fs *pflag.FlagSet) error {
	values := c.flagValues()

	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		value, ok := values[f.Name]
		if !ok || f.Changed {
			return
		}
		if err := fs.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Errorf("config value for --%s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}
