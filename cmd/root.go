package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chriserin/puml/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "puml",
	Short: "Parse and track PlantUML class diagrams",
	Long: `puml parses a line-oriented subset of the PlantUML class-diagram notation
(classes, interfaces and enums) and keeps the results in a local database.

Example usage:
  puml init                  # Create .puml/ in the current directory
  puml parse diagram.puml    # Print the parsed structure of one file
  puml sync                  # Parse and store every diagram in the project
  puml show VentanaPrograma  # Show the members of a stored element`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(".")
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(cfg.LogLevel())
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.puml/config.yaml)")
}

// currentConfig returns the configuration loaded by the root command, or the
// defaults when a Run function is called directly.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func requireProject() error {
	if _, err := os.Stat(config.Dir); os.IsNotExist(err) {
		return fmt.Errorf("run `puml init` first")
	}
	return nil
}
