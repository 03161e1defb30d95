package config

// DefaultConfigFile is the config filename looked up in the working directory.
const DefaultConfigFile = ".springscan.yml"

// DefaultConfig returns the built-in defaults. The source and output paths
// match the conventional container layout used by the analysis workflow.
func DefaultConfig() *Config {
	return &Config{
		Source:  "/workspace/input",
		Output:  "/workspace/output",
		Formats: []OutputFormat{FormatPlantUML, FormatStructurizr, FormatMarkdown, FormatJSON},
		Detail:  DetailDeep,
		Exclude: []string{"**/*Test.java", "**/*Tests.java"},
		Renderer: RendererConfig{
			PlantUMLJar: "/plantuml.jar",
			ImageFormat: "png",
		},
	}
}
