package cmd

import (
	"github.com/spf13/cobra"

	"github.com/srcarch/springscan/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <diagram-file>...",
	Short: "Render existing diagram description files to images",
	Long: `Invokes the external renderer on .puml files (PlantUML jar) or .dsl
files (structurizr-cli). Requires the renderer tools to be installed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("image-format", "", "png or svg (overrides config)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if f, _ := cmd.Flags().GetString("image-format"); f != "" {
		cfg.Renderer.ImageFormat = f
	}

	r := render.New(render.Options{
		PlantUMLJar:    cfg.Renderer.PlantUMLJar,
		StructurizrCLI: cfg.Renderer.StructurizrCLI,
		ImageFormat:    cfg.Renderer.ImageFormat,
	})

	for _, path := range args {
		if err := r.Render(cmd.Context(), path); err != nil {
			return err
		}
	}
	return nil
}
