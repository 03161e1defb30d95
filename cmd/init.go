package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srcarch/springscan/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .springscan.yml config file",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	initCmd.Flags().Bool("interactive", false, "run the interactive configuration wizard")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(cfgFile); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
	}

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		_, err := config.RunWizard()
		return err
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}
	fmt.Printf("Wrote default configuration to %s\n", cfgFile)
	return nil
}
