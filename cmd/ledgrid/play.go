package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/led-arcade/internal/platform/tui"
	"github.com/vovakirdan/led-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Watch or play in the local terminal",
	Long: `Run the grid locally and show it in the terminal.
The AI plays until you press 'm' to take over.

Controls:
  ←/→ ↑/↓    - Move / steer
  x/w        - Rotate
  Space      - Hard drop
  s          - Toggle soft drop
  m / a      - Manual / AI mode
  Tab        - Next game
  Ctrl+S     - Save a snapshot to ~/.ledgrid/screenshots
  ?          - Help
  Q/Ctrl+C   - Quit

Examples:
  ledgrid play
  ledgrid play snake
  ledgrid play tetris --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger("ledgrid")

	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'ledgrid list' to see available games.")
			os.Exit(1)
		}
	}

	live, err := loadLive(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := live.Get()

	// The grid draws each cell two columns wide inside a border.
	needW, needH := cfg.Grid.Width*2+2, cfg.Grid.Height+6
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		logger.Warn("terminal is smaller than the grid", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", needW, needH))
	}

	runner, err := newRunner(live, gameID, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg.Storage.DBPath, logger)
	if store != nil {
		runner.SetResultSaver(store)
	}

	runErr := tui.Run(runner, tui.PanelOptions{
		Drive:    true,
		Interval: cfg.TickInterval(),
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running panel: %v\n", runErr)
		os.Exit(1)
	}
}
