// pacman is a TUI maze-chase game for the terminal.
//
// Usage:
//
//	pacman list              - List available game modes
//	pacman play [mode]       - Play (single-player or local duel)
//	pacman menu              - Start menu to pick modes interactively
//	pacman serve             - Start SSH server for remote play
//	pacman scores <mode>     - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/pacman.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-pacman/internal/games/pacman"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pacman",
	Short: "Pac-Man - chase dots and dodge ghosts in your terminal",
	Long: `A terminal rendition of the classic maze-chase game, with a local
two-player duel mode on a shared keyboard.

Available commands:
  list     - Show all available game modes
  play     - Play directly (shows the mode selector)
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pacman play
  pacman play pacman_duel --difficulty hard
  pacman menu
  pacman serve --ssh :2222
  pacman scores pacman`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/pacman.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
