package config

// OutputFormat selects one emitted artifact family.
type OutputFormat string

const (
	FormatPlantUML    OutputFormat = "puml"
	FormatStructurizr OutputFormat = "dsl"
	FormatMarkdown    OutputFormat = "md"
	FormatJSON        OutputFormat = "json"
	FormatHTML        OutputFormat = "html"
)

// DetailLevel selects report depth: brief (counts only), deep (sampled
// names and endpoints), validated (deep plus the validation report).
type DetailLevel string

const (
	DetailBrief     DetailLevel = "brief"
	DetailDeep      DetailLevel = "deep"
	DetailValidated DetailLevel = "validated"
)

// Config is the top-level springscan configuration, corresponding to
// .springscan.yml.
type Config struct {
	Source        string         `yaml:"source" koanf:"source"`
	Output        string         `yaml:"output" koanf:"output"`
	Formats       []OutputFormat `yaml:"formats" koanf:"formats"`
	Detail        DetailLevel    `yaml:"detail" koanf:"detail"`
	Relationships bool           `yaml:"relationships" koanf:"relationships"`
	Include       []string       `yaml:"include" koanf:"include"`
	Exclude       []string       `yaml:"exclude" koanf:"exclude"`
	Renderer      RendererConfig `yaml:"renderer" koanf:"renderer"`
}

// RendererConfig holds external diagram renderer settings.
type RendererConfig struct {
	Enabled        bool   `yaml:"enabled" koanf:"enabled"`
	PlantUMLJar    string `yaml:"plantuml_jar" koanf:"plantuml_jar"`
	StructurizrCLI string `yaml:"structurizr_cli" koanf:"structurizr_cli"`
	ImageFormat    string `yaml:"image_format" koanf:"image_format"`
}
