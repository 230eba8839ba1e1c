package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tetraterm/tetraterm/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate play statistics",
	Long: `Display aggregate statistics across all recorded games: play counts,
score totals, and lifetime piece spawn counts.

Examples:
  tetraterm stats`,
	Run: runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Play Statistics")
	fmt.Println()

	if stats.GamesCount == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetraterm play' to start building your statistics!")
		return
	}

	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	fmt.Printf("  High score:    %d\n", stats.HighScore)
	fmt.Printf("  Average score: %.1f\n", stats.AvgScore)
	fmt.Printf("  Total score:   %d\n", stats.TotalScore)
	fmt.Printf("  Max level:     %d\n", stats.MaxLevel)
	fmt.Printf("  Total lines:   %d\n", stats.TotalLines)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	pieces, err := store.PieceSpawns()
	if err != nil || len(pieces) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Piece spawns (lifetime):")
	var total int64
	for _, p := range pieces {
		total += p.Spawns
	}
	for _, p := range pieces {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(p.Spawns) / float64(total)
		}
		fmt.Printf("  %-2s  %8d  (%.1f%%)\n", p.Kind, p.Spawns, pct)
	}
}
