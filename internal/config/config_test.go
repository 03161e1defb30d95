package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultConfigFile))
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	content := `
source: /projects
output: /tmp/out
formats:
  - md
  - json
detail: validated
relationships: true
renderer:
  enabled: true
  plantuml_jar: /opt/plantuml.jar
  image_format: svg
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source != "/projects" || cfg.Output != "/tmp/out" {
		t.Errorf("paths = %q, %q", cfg.Source, cfg.Output)
	}
	if !reflect.DeepEqual(cfg.Formats, []OutputFormat{FormatMarkdown, FormatJSON}) {
		t.Errorf("formats = %v", cfg.Formats)
	}
	if cfg.Detail != DetailValidated || !cfg.Relationships {
		t.Errorf("detail = %q, relationships = %v", cfg.Detail, cfg.Relationships)
	}
	if !cfg.Renderer.Enabled || cfg.Renderer.PlantUMLJar != "/opt/plantuml.jar" || cfg.Renderer.ImageFormat != "svg" {
		t.Errorf("renderer = %+v", cfg.Renderer)
	}
	// Keys absent from the file keep their defaults.
	if !reflect.DeepEqual(cfg.Exclude, DefaultConfig().Exclude) {
		t.Errorf("exclude = %v", cfg.Exclude)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SPRINGSCAN_SOURCE", "/env/projects")
	t.Setenv("SPRINGSCAN_DETAIL", "brief")

	cfg, err := Load(filepath.Join(t.TempDir(), DefaultConfigFile))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Source != "/env/projects" {
		t.Errorf("Source = %q, want env override", cfg.Source)
	}
	if cfg.Detail != DetailBrief {
		t.Errorf("Detail = %q, want brief", cfg.Detail)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	cfg := DefaultConfig()
	cfg.Source = "/projects"
	cfg.Relationships = true

	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Source != cfg.Source || loaded.Output != cfg.Output {
		t.Errorf("paths = %q, %q", loaded.Source, loaded.Output)
	}
	if !reflect.DeepEqual(loaded.Formats, cfg.Formats) {
		t.Errorf("formats = %v, want %v", loaded.Formats, cfg.Formats)
	}
	if loaded.Relationships != cfg.Relationships || loaded.Detail != cfg.Detail {
		t.Errorf("detail = %q, relationships = %v", loaded.Detail, loaded.Relationships)
	}
	if loaded.Renderer != cfg.Renderer {
		t.Errorf("renderer = %+v, want %+v", loaded.Renderer, cfg.Renderer)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty source", func(c *Config) { c.Source = "" }, true},
		{"empty output", func(c *Config) { c.Output = "" }, true},
		{"no formats", func(c *Config) { c.Formats = nil }, true},
		{"bad format", func(c *Config) { c.Formats = []OutputFormat{"pdf"} }, true},
		{"bad detail", func(c *Config) { c.Detail = "verbose" }, true},
		{"empty detail ok", func(c *Config) { c.Detail = "" }, false},
		{"bad image format", func(c *Config) { c.Renderer.ImageFormat = "bmp" }, true},
		{"svg image format", func(c *Config) { c.Renderer.ImageFormat = "svg" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHasFormat(t *testing.T) {
	cfg := &Config{Formats: []OutputFormat{FormatPlantUML, FormatJSON}}
	if !cfg.HasFormat(FormatPlantUML) || cfg.HasFormat(FormatHTML) {
		t.Error("HasFormat mismatch")
	}
}
