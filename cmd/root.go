package cmd

import (
	"github.com/spf13/cobra"

	"github.com/srcarch/springscan/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "springscan",
	Short: "Spring Boot source analyzer and C4 diagram generator",
	Long: `springscan walks Spring Boot source trees, classifies components by
their framework annotations, and generates C4 architecture diagrams
(PlantUML, Structurizr DSL) alongside Markdown and JSON reports.

Classification is a best-effort heuristic over source text; it requires
no build and no compiled artifacts.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
