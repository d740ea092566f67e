package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman"
	"github.com/vovakirdan/tui-pacman/internal/platform/tui"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the game",
	Long: `Start playing. Without a mode argument the mode/difficulty
selector opens first.

Controls:
  Arrows     - Steer (Player 1)
  WASD       - Steer (Player 2 in duel mode)
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower ghosts
  normal - Standard speeds
  hard   - Faster ghosts

Examples:
  pacman play
  pacman play pacman
  pacman play pacman_duel --difficulty hard
  pacman play pacman --config ./my-pacman.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for the mode selector
	width, height := 80, 36 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	pacman.SetConfigPath(flagConfig)
	difficulty := flagDifficulty

	var gameID string
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'pacman list' to see available modes.")
			os.Exit(1)
		}
	} else {
		// Show mode/difficulty selector
		selection, updatedCfg, selErr := tui.RunPacmanModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		gameID = selection.GameID
		if difficulty == "" {
			difficulty = selection.Difficulty
		}
	}

	pacman.SetDifficultyPreset(difficulty)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Seed the persisted high score so the HUD shows it from the start
	if store != nil {
		if high, highErr := store.HighScore(gameID); highErr == nil {
			pacman.SetHighScore(high)
		}
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Run the game
	runErr := tui.Run(game, cfg, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
