package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectSource looks for a plausible source directory near the working
// directory to offer as a default.
func detectSource() string {
	for _, candidate := range []string{"input", "src", "."} {
		if fi, err := os.Stat(candidate); err == nil && fi.IsDir() {
			abs, err := filepath.Abs(candidate)
			if err == nil {
				return abs
			}
		}
	}
	return DefaultConfig().Source
}

// RunWizard runs an interactive configuration wizard, saves the result to
// .springscan.yml, and returns it.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to springscan! Let's configure your analysis.")
	fmt.Println()

	cfg := DefaultConfig()

	sourcePrompt := promptui.Prompt{
		Label:   "Source directory containing Spring Boot projects",
		Default: detectSource(),
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}
	cfg.Source = source

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for diagrams and reports",
		Default: cfg.Output,
	}
	output, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output selection: %w", err)
	}
	cfg.Output = output

	detailPrompt := promptui.Select{
		Label: "Report detail level",
		Items: []string{
			"brief     - component counts only",
			"deep      - sampled names and endpoints",
			"validated - deep plus dependency validation report",
		},
	}
	detailIdx, _, err := detailPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("detail selection: %w", err)
	}
	levels := []DetailLevel{DetailBrief, DetailDeep, DetailValidated}
	cfg.Detail = levels[detailIdx]
	cfg.Relationships = cfg.Detail == DetailValidated

	formatsPrompt := promptui.Prompt{
		Label:   "Output formats (comma-separated: puml,dsl,md,json,html)",
		Default: "puml,dsl,md,json",
	}
	formatsStr, err := formatsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("format selection: %w", err)
	}
	cfg.Formats = nil
	for _, f := range strings.Split(formatsStr, ",") {
		f = strings.TrimSpace(f)
		if f != "" {
			cfg.Formats = append(cfg.Formats, OutputFormat(f))
		}
	}

	rendererPrompt := promptui.Select{
		Label: "Invoke the external PlantUML renderer after analysis?",
		Items: []string{"no", "yes"},
	}
	rendererIdx, _, err := rendererPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("renderer selection: %w", err)
	}
	cfg.Renderer.Enabled = rendererIdx == 1

	if cfg.Renderer.Enabled {
		jarPrompt := promptui.Prompt{
			Label:   "Path to plantuml.jar",
			Default: cfg.Renderer.PlantUMLJar,
		}
		jar, err := jarPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("jar selection: %w", err)
		}
		cfg.Renderer.PlantUMLJar = jar
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, err
	}

	fmt.Printf("\nConfiguration saved to %s\n", DefaultConfigFile)
	return cfg, nil
}
