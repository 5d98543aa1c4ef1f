package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridfit/gridfit/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "gridfit",
	Short: "Heat pump sizing and grid impact calculator",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file, or defaults plus environment
// overrides when no file is given.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.LoadDefaults()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
