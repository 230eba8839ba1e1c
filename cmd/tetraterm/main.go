// tetraterm is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetraterm play              - Play in the current terminal
//	tetraterm serve             - Start SSH server for remote play
//	tetraterm scores            - Show high scores
//	tetraterm stats             - Show aggregate play statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetraterm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/tetraterm/tetraterm/internal/tetra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

const gameID = "tetra"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetraterm",
	Short: "Tetra - a falling-block puzzle in your terminal",
	Long: `Tetraterm is a terminal falling-block puzzle game. Stack the pieces,
complete rows to clear them, and survive as long as the gravity allows.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View aggregate play statistics

Examples:
  tetraterm play
  tetraterm play --difficulty hard
  tetraterm serve --ssh :2222
  tetraterm scores
  tetraterm stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetraterm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
