package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresRecent int
	flagInteractive  bool
	flagReset        bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display high scores, stats and recent games for a mode.
Without a mode, prints a summary of every mode played so far.

Examples:
  match3 scores
  match3 scores match3 --recent 5
  match3 scores --interactive
  match3 scores match3_classic --reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of high scores to show")
	scoresCmd.Flags().IntVar(&flagScoresRecent, "recent", 5, "Number of recent games to show (0 = none)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete every score and game record for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagInteractive {
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	if len(args) == 0 {
		if flagReset {
			return errors.New("--reset needs a mode")
		}
		return printSummary(store)
	}

	gameID := args[0]
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown mode %q, run 'match3 list' to see available modes", gameID)
	}

	if flagReset {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		log.Info("scores cleared", "mode", gameID)
		return nil
	}

	return printScores(store, info.ID, info.Title)
}

// printSummary lists one stats line per mode played.
func printSummary(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-16s  %-6d  %-8d  %-8.0f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.0f  Total moves: %d  Best chain: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalMoves, stats.BestChain)

	if flagScoresRecent <= 0 {
		return nil
	}
	sessions, err := store.RecentSessions(gameID, flagScoresRecent)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent games:")
	fmt.Printf("  %-16s  %-8s  %-6s  %-6s  %-12s  %s\n", "Date", "Score", "Moves", "Chain", "Ended", "Session")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-8d  %-6d  %-6d  %-12s  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Score, s.Moves, s.BestChain, s.EndReason, shortID(s.SessionID))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
