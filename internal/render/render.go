// Package render invokes external diagram renderers (the PlantUML jar and
// structurizr-cli) as subprocesses. Rendering is strictly best-effort: a
// failed invocation is reported and the caller moves on.
package render

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Options configure the external renderer invocation.
type Options struct {
	PlantUMLJar    string // Path to plantuml.jar.
	StructurizrCLI string // Path to the structurizr.sh / structurizr-cli binary.
	ImageFormat    string // png or svg.
	JavaBinary     string // Defaults to "java" on PATH.
}

// Renderer turns textual diagram descriptions into images.
type Renderer struct {
	opts Options
	run  func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// New creates a Renderer. Lookup of the java binary is deferred until the
// first invocation.
func New(opts Options) *Renderer {
	if opts.ImageFormat == "" {
		opts.ImageFormat = "png"
	}
	if opts.JavaBinary == "" {
		opts.JavaBinary = "java"
	}
	return &Renderer{
		opts: opts,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
	}
}

// Render dispatches on the file extension: .puml goes to PlantUML, .dsl to
// structurizr-cli. A single attempt is made; there is no retry.
func (r *Renderer) Render(ctx context.Context, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".puml":
		return r.renderPlantUML(ctx, path)
	case ".dsl":
		return r.exportStructurizr(ctx, path)
	default:
		return fmt.Errorf("render: unsupported diagram file %q (want .puml or .dsl)", path)
	}
}

func (r *Renderer) renderPlantUML(ctx context.Context, path string) error {
	jar := r.opts.PlantUMLJar
	if jar == "" {
		return fmt.Errorf("render: plantuml jar path not configured")
	}
	if _, err := exec.LookPath(r.opts.JavaBinary); err != nil {
		return fmt.Errorf("render: java not found: %w", err)
	}

	out, err := r.run(ctx, r.opts.JavaBinary, "-jar", jar, "-t"+r.opts.ImageFormat, path)
	if err != nil {
		return fmt.Errorf("render: plantuml failed for %s: %w\n%s", path, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// exportStructurizr converts a Structurizr DSL workspace to PlantUML via
// the structurizr-cli export command.
func (r *Renderer) exportStructurizr(ctx context.Context, path string) error {
	cli := r.opts.StructurizrCLI
	if cli == "" {
		cli = "structurizr.sh"
	}
	if _, err := exec.LookPath(cli); err != nil {
		return fmt.Errorf("render: structurizr cli not found: %w", err)
	}

	out, err := r.run(ctx, cli, "export", "-workspace", path, "-format", "plantuml")
	if err != nil {
		return fmt.Errorf("render: structurizr export failed for %s: %w\n%s", path, err, strings.TrimSpace(string(out)))
	}
	return nil
}
