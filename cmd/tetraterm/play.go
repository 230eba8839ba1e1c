package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tetraterm/tetraterm/internal/core"
	"github.com/tetraterm/tetraterm/internal/platform/tui"
	"github.com/tetraterm/tetraterm/internal/registry"
	"github.com/tetraterm/tetraterm/internal/storage"
	"github.com/tetraterm/tetraterm/internal/tetra"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Up/W       - Rotate clockwise
  Down/S     - Soft drop (+1 point per row)
  Space      - Hard drop
  P/Esc      - Pause
  T          - Toggle piece statistics
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower starting gravity
  normal - Start at level 3
  hard   - Start at level 6
  fixed  - No level progression

Examples:
  tetraterm play
  tetraterm play --difficulty hard
  tetraterm play --level 5
  tetraterm play --config ./my-rules.yaml
  tetraterm play --seed 12345`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (overrides difficulty preset)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	tetra.SetConfigPath(flagConfig)
	tetra.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 {
		tetra.SetStartLevel(flagLevel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
