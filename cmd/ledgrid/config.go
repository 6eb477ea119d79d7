package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/led-arcade/internal/config"
)

var (
	flagWrite    bool
	flagDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or write the configuration",
	Long: `Print the effective configuration as YAML.

Search order: --config path, ~/.ledgrid/config.yaml, ./configs/ledgrid.yaml,
then the built-in defaults. Values are clamped to their supported ranges.

Examples:
  ledgrid config                 # Print the effective config
  ledgrid config --defaults      # Print the built-in defaults
  ledgrid config --write         # Save the effective config to ~/.ledgrid/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWrite, "write", false, "Write the config to --config or the user config path")
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Use the built-in defaults instead of the search path")
}

func runConfig(_ *cobra.Command, _ []string) {
	var cfg config.Config
	if flagDefaults {
		if err := yaml.Unmarshal(config.DefaultYAML(), &cfg); err != nil {
			cfg = config.Default()
		}
		cfg.Normalize()
	} else {
		loaded, err := loadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	if flagWrite {
		path := flagConfig
		if path == "" {
			path = config.UserConfigPath()
		}
		if err := config.Save(path, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
