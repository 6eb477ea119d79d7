package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/led-arcade/internal/platform/tui"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresLimit  int
	flagScoresRecent bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top scores for a game, or a per-game summary when no
game is given.

Examples:
  ledgrid scores
  ledgrid scores tetris
  ledgrid scores snake --limit 20
  ledgrid scores --recent
  ledgrid scores tetris --clear
  ledgrid scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the most recently finished games")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the given game")
}

func runScores(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagScoresRecent {
		printRecent(store)
		return
	}

	if len(args) == 0 {
		if flagScoresClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a game")
			os.Exit(1)
		}
		printSummary(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ledgrid list' to see available games.")
		os.Exit(1)
	}
	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", gameTitle(gameID))
		return
	}
	printTop(store, gameID)
}

func printRecent(store *storage.Store) {
	scores, err := store.RecentScores(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}
	if len(scores) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-6s  %-6s  %s\n", "Game", "Score", "Lines", "Mode", "Date")
	for _, entry := range scores {
		fmt.Printf("  %-16s  %-8d  %-6d  %-6s  %s\n",
			gameTitle(entry.GameID), entry.Score, entry.Lines, entry.Mode, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printTop(store *storage.Store, gameID string) {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", gameTitle(gameID))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'ledgrid serve' or 'ledgrid play %s' to record games.\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "Rank", "Score", "Lines", "Mode", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----", "----", "----")

	for i, entry := range scores {
		dur := (time.Duration(entry.Duration) * time.Millisecond).Round(time.Second)
		fmt.Printf("  %-4d  %-8d  %-6d  %-6s  %-8s  %s\n",
			i+1, entry.Score, entry.Lines, entry.Mode, dur, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printSummary(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(stats) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-7s  %-6s  %-8s  %-10s  %s\n", "Game", "Games", "Manual", "Best", "Average", "Best lines", "Last played")
	for _, id := range ids {
		st := stats[id]
		last := "-"
		if !st.LastPlayed.IsZero() {
			last = st.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-16s  %-6d  %-7d  %-6d  %-8.1f  %-10d  %s\n",
			gameTitle(id), st.GamesCount, st.ManualGames, st.HighScore, st.AvgScore, st.BestLines, last)
	}
}

// gameTitle returns the registered title for id, or id itself.
func gameTitle(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}
