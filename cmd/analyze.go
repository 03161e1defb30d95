package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srcarch/springscan/internal/analyzer"
	"github.com/srcarch/springscan/internal/config"
	"github.com/srcarch/springscan/internal/emit"
	"github.com/srcarch/springscan/internal/progress"
	"github.com/srcarch/springscan/internal/render"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Scan Spring Boot projects and generate diagrams and reports",
	Long: `Discovers Spring Boot projects under the source directory (by pom.xml or
build.gradle markers), classifies their components, and writes the selected
output formats to the output directory.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("src", "", "source directory (overrides config)")
	analyzeCmd.Flags().String("out", "", "output directory (overrides config)")
	analyzeCmd.Flags().String("format", "", "comma-separated output formats: puml,dsl,md,json,html")
	analyzeCmd.Flags().String("detail", "", "report detail level: brief, deep, validated")
	analyzeCmd.Flags().Bool("relationships", false, "infer dependency-injection relationships")
	analyzeCmd.Flags().Bool("render", false, "invoke the external renderer on generated diagrams")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyAnalyzeFlags(cmd, cfg)

	if _, err := os.Stat(cfg.Source); err != nil {
		return fmt.Errorf("source directory %s is not usable: %w", cfg.Source, err)
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	roots, err := analyzer.DiscoverProjects(cfg.Source)
	if err != nil {
		return fmt.Errorf("discovering projects: %w", err)
	}
	if len(roots) == 0 {
		return fmt.Errorf("no Spring Boot projects found under %s (no pom.xml or build.gradle)", cfg.Source)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "Found %d projects under %s\n", len(roots), cfg.Source)
	}

	relationships := cfg.Relationships || cfg.Detail == config.DetailValidated
	a := analyzer.New(analyzer.Options{
		Include:       cfg.Include,
		Exclude:       cfg.Exclude,
		Relationships: relationships,
	})

	reporter := progress.NewReporter()
	reporter.Start(len(roots))

	var services []*analyzer.Service
	for i, root := range roots {
		reporter.Update(i+1, filepath.Base(root))
		svc, err := a.Analyze(root)
		if err != nil {
			// One bad project must not abort the batch.
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", root, err)
			continue
		}
		services = append(services, svc)
	}
	reporter.Finish()

	written, err := writeOutputs(cfg, services)
	if err != nil {
		return err
	}

	fmt.Printf("Analyzed %d services; wrote %d files to %s\n", len(services), len(written), cfg.Output)

	if rendered, _ := cmd.Flags().GetBool("render"); rendered || cfg.Renderer.Enabled {
		renderAll(cfg, written)
	}
	return nil
}

// applyAnalyzeFlags overlays command-line flags onto the loaded config.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config) {
	if src, _ := cmd.Flags().GetString("src"); src != "" {
		cfg.Source = src
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Output = out
	}
	if formats, _ := cmd.Flags().GetString("format"); formats != "" {
		cfg.Formats = nil
		for _, f := range strings.Split(formats, ",") {
			if f = strings.TrimSpace(f); f != "" {
				cfg.Formats = append(cfg.Formats, config.OutputFormat(f))
			}
		}
	}
	if detail, _ := cmd.Flags().GetString("detail"); detail != "" {
		cfg.Detail = config.DetailLevel(detail)
	}
	if rel, _ := cmd.Flags().GetBool("relationships"); rel {
		cfg.Relationships = true
	}
}

// writeOutputs emits every selected format and returns the paths written.
func writeOutputs(cfg *config.Config, services []*analyzer.Service) ([]string, error) {
	var written []string
	out := func(name string, data []byte) error {
		path := filepath.Join(cfg.Output, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	detail := emit.Detail(cfg.Detail)
	meta := emit.NewMetadata(Version)

	if cfg.HasFormat(config.FormatPlantUML) {
		for _, svc := range services {
			id := emit.SanitizeID(svc.Name)
			if err := out(id+"_c1_context.puml", []byte(emit.ContextDiagram(svc))); err != nil {
				return written, err
			}
			if err := out(id+"_container.puml", []byte(emit.ContainerDiagram(svc))); err != nil {
				return written, err
			}
			diagram, valid := emit.ComponentDiagram(svc)
			if err := out(id+"_c3_component.puml", []byte(diagram)); err != nil {
				return written, err
			}
			if cfg.Detail == config.DetailValidated {
				report := emit.ValidationReport(svc, valid)
				if err := out(id+"_validation_report.md", []byte(report)); err != nil {
					return written, err
				}
			}
		}
	}

	if cfg.HasFormat(config.FormatStructurizr) {
		if err := out("architecture.dsl", []byte(emit.StructurizrDSL(services))); err != nil {
			return written, err
		}
	}

	report := emit.MarkdownReport(services, detail)
	if cfg.HasFormat(config.FormatMarkdown) {
		if err := out("analysis_report.md", []byte(report)); err != nil {
			return written, err
		}
	}
	if cfg.HasFormat(config.FormatHTML) {
		html, err := emit.HTMLReport("Spring Boot Architecture Analysis", report)
		if err != nil {
			return written, err
		}
		if err := out("analysis_report.html", html); err != nil {
			return written, err
		}
	}

	if cfg.HasFormat(config.FormatJSON) {
		data, err := emit.ServicesJSON(services)
		if err != nil {
			return written, fmt.Errorf("marshalling services: %w", err)
		}
		if err := out("services.json", data); err != nil {
			return written, err
		}
		for _, svc := range services {
			data, err := emit.ProjectJSON(svc, meta)
			if err != nil {
				return written, fmt.Errorf("marshalling %s: %w", svc.Name, err)
			}
			if err := out(emit.SanitizeID(svc.Name)+"_analysis.json", data); err != nil {
				return written, err
			}
		}
	}

	return written, nil
}

// renderAll invokes the external renderer on every written diagram file.
// Failures are reported and skipped; they never fail the analyze run.
func renderAll(cfg *config.Config, written []string) {
	r := render.New(render.Options{
		PlantUMLJar:    cfg.Renderer.PlantUMLJar,
		StructurizrCLI: cfg.Renderer.StructurizrCLI,
		ImageFormat:    cfg.Renderer.ImageFormat,
	})
	ctx := context.Background()
	for _, path := range written {
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".puml" && ext != ".dsl" {
			continue
		}
		if err := r.Render(ctx, path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			continue
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Rendered %s\n", path)
		}
	}
}
