// ledgrid drives a falling-block and a snake game on an LED grid, played by
// an AI or by a human over WebSocket, SSH or the local terminal.
//
// Usage:
//
//	ledgrid serve             - Run the grid with the HTTP/WebSocket API (and optional SSH)
//	ledgrid play [game]       - Watch or play in the local terminal
//	ledgrid list              - List available games
//	ledgrid scores [game]     - Show high scores
//	ledgrid config            - Print or write the configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search path)
//	--seed <value>      - RNG seed for reproducible gameplay
//	--db <path>         - Scores database path
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/engine"
	"github.com/vovakirdan/led-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/led-arcade/internal/games/snake"
	_ "github.com/vovakirdan/led-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ledgrid",
	Short: "LED grid arcade - AI-driven falling blocks and snake",
	Long: `ledgrid runs a falling-block game and a snake game on a small LED grid.
An AI plays by default; a human can take over at any time from a browser,
an SSH session or the local terminal.

Available commands:
  serve    - Run the grid with the HTTP/WebSocket API
  play     - Watch or play in the local terminal
  list     - Show all available games
  scores   - View high scores
  config   - Print or write the configuration

Examples:
  ledgrid serve --addr :8080 --ssh :23234
  ledgrid play snake
  ledgrid scores tetris
  ledgrid config --write`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: search path)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger at the --log-level level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// loadConfig reads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	applyGlobalFlags(&cfg)
	return cfg, nil
}

// loadLive reads the configuration into a live store and layers the global
// flags plus override on top, so saving from the API keeps the file's own
// server and storage settings.
func loadLive(override func(*config.Config)) (*config.Live, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	live := config.NewLive(cfg, flagConfig)
	live.Override(func(c *config.Config) {
		applyGlobalFlags(c)
		if override != nil {
			override(c)
		}
	})
	return live, nil
}

func applyGlobalFlags(cfg *config.Config) {
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
}

// seed returns --seed, or a time-based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newRunner builds a runner on live with initial as the active game.
func newRunner(live *config.Live, initial string, logger *log.Logger) (*engine.Runner, error) {
	cfg := live.Get()
	rc := engine.DefaultRunnerConfig()
	rc.TickInterval = cfg.TickInterval()
	rc.BroadcastInterval = cfg.BroadcastInterval()
	rc.Seed = seed()
	if initial != "" {
		rc.InitialGame = initial
	}

	runner, err := engine.NewRunner(rc, live, nil)
	if err != nil {
		return nil, err
	}
	runner.SetLogger(logger)
	return runner, nil
}

// openStore opens the scores database, or returns nil with a warning.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database, continuing without it", "path", path, "error", err)
		return nil
	}
	return store
}
