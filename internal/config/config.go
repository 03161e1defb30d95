// Package config loads springscan configuration from .springscan.yml with
// SPRINGSCAN_* environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SPRINGSCAN_*). A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// SPRINGSCAN_SOURCE -> source, SPRINGSCAN_RENDERER_PLANTUML_JAR stays
	// flat (single-level keys only; nested overrides use the yaml file).
	if err := k.Load(env.Provider("SPRINGSCAN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SPRINGSCAN_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validFormats is the set of recognized output formats.
var validFormats = map[OutputFormat]bool{
	FormatPlantUML:    true,
	FormatStructurizr: true,
	FormatMarkdown:    true,
	FormatJSON:        true,
	FormatHTML:        true,
}

// validDetails is the set of recognized detail levels.
var validDetails = map[DetailLevel]bool{
	DetailBrief:     true,
	DetailDeep:      true,
	DetailValidated: true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("at least one output format is required")
	}
	for _, f := range c.Formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format %q: must be one of puml, dsl, md, json, html", f)
		}
	}
	if c.Detail != "" && !validDetails[c.Detail] {
		return fmt.Errorf("invalid detail %q: must be one of brief, deep, validated", c.Detail)
	}
	if f := c.Renderer.ImageFormat; f != "" && f != "png" && f != "svg" {
		return fmt.Errorf("invalid image_format %q: must be png or svg", f)
	}
	return nil
}

// HasFormat reports whether the given format is selected.
func (c *Config) HasFormat(format OutputFormat) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}
