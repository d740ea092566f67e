package pacman

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/games/pacman/engine"
	"github.com/vovakirdan/tui-pacman/internal/registry"
)

const (
	hudHeight = 2

	// How long the "level cleared" overlay stays up before the next
	// level starts (ticks at the platform tick rate).
	levelClearDelayTicks = 90
)

// Game adapts the maze engine to the platform's game interface: it maps
// action frames to engine intents, drives the fixed-timestep clock and
// renders the world into the screen buffer.
type Game struct {
	st   *engine.State
	mode engine.GameMode

	screenW   int
	screenH   int
	msPerTick float64

	offsetX int
	offsetY int

	tooSmall   bool
	clearTicks int
}

// Package-level variables for config/difficulty (like breakout pattern)
var (
	configPath       string
	difficultyPreset string
	seedHighScore    int
)

// SetConfigPath sets a custom YAML config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset ("easy", "normal", "hard").
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetHighScore seeds the engine with a persisted high score before Reset.
func SetHighScore(score int) {
	seedHighScore = score
}

// New creates a new single-player game.
func New() *Game {
	return &Game{mode: engine.ModeSingle}
}

// NewDuel creates a new local two-player game (arrows vs WASD).
func NewDuel() *Game {
	return &Game{mode: engine.ModeTwoPlayer}
}

func init() {
	registry.Register("pacman", func() registry.Game {
		return New()
	})
	registry.Register("pacman_duel", func() registry.Game {
		return NewDuel()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == engine.ModeTwoPlayer {
		return "pacman_duel"
	}
	return "pacman"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == engine.ModeTwoPlayer {
		return "Pac-Man (2 Players)"
	}
	return "Pac-Man"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.msPerTick = 1000.0 / float64(tickRate)

	g.st = engine.NewWithTuning(g.tuning(), seedHighScore, cfg.Seed)
	g.st.SetDifficulty(presetDifficulty(difficultyPreset))
	g.st.SetGameMode(g.mode)
	g.st.StartGame()
	g.clearTicks = 0

	requiredW := engine.MazeWidth + 2
	requiredH := engine.MazeHeight + hudHeight + 1
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
	g.offsetX = (g.screenW - engine.MazeWidth) / 2
	g.offsetY = hudHeight
}

// tuning builds the engine config from the YAML config chain.
func (g *Game) tuning() engine.Config {
	fileCfg, err := config.LoadPacman(configPath)
	if err != nil {
		fileCfg = config.DefaultPacmanConfig()
	}
	return engine.Config{
		PlayerSpeed:  fileCfg.Speeds.Player,
		GhostSpeed:   fileCfg.Speeds.Ghost,
		Lives:        fileCfg.Rules.Lives,
		FrightenedMs: fileCfg.Timers.FrightenedMs,
		FlashMs:      fileCfg.Timers.FlashMs,
		DeathMs:      fileCfg.Timers.DeathMs,
		MaxLevel:     fileCfg.Rules.MaxLevel,
	}
}

func presetDifficulty(preset string) engine.Difficulty {
	switch config.DifficultyPreset(preset) {
	case config.DifficultyEasy:
		return engine.DifficultyEasy
	case config.DifficultyHard:
		return engine.DifficultyHard
	default:
		return engine.DifficultyMedium
	}
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.MultiInputFrame) core.StepResult {
	p1 := in.Player1Frame()
	p2 := in.Player2Frame()

	// Handle restart
	if p1.Has(core.ActionRestart) && g.ended() {
		g.st.ResetGame()
		g.st.SetDifficulty(presetDifficulty(difficultyPreset))
		g.st.SetGameMode(g.mode)
		g.st.StartGame()
		g.clearTicks = 0
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if p1.Has(core.ActionPause) {
		switch g.st.Status {
		case engine.StatusRunning:
			g.st.PauseGame()
		case engine.StatusPaused:
			g.st.ResumeGame()
		}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyIntent(1, p1)
	g.applyIntent(2, p2)

	// Hold the cleared board on screen briefly, then move on.
	if g.st.Status == engine.StatusLevelComplete {
		g.clearTicks++
		if g.clearTicks >= levelClearDelayTicks {
			g.clearTicks = 0
			g.st.NextLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.st.Tick(g.msPerTick)
	return core.StepResult{State: g.State()}
}

// applyIntent translates one player's action frame into a steering intent.
func (g *Game) applyIntent(player int, in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.st.SetPlayerIntent(player, engine.DirUp)
	case in.Has(core.ActionDown):
		g.st.SetPlayerIntent(player, engine.DirDown)
	case in.Has(core.ActionLeft):
		g.st.SetPlayerIntent(player, engine.DirLeft)
	case in.Has(core.ActionRight):
		g.st.SetPlayerIntent(player, engine.DirRight)
	}
}

// ended reports whether the match reached a terminal status.
func (g *Game) ended() bool {
	return g.st.Status == engine.StatusGameOver || g.st.Status == engine.StatusGameComplete
}

// State returns the current game state for the platform shell.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.st.Players[0].Score,
		Score2:    g.st.Players[1].Score,
		HighScore: g.st.HighScore,
		TwoPlayer: g.mode == engine.ModeTwoPlayer,
		GameOver:  g.ended(),
		Paused:    g.st.Status == engine.StatusPaused,
	}
}

// Snapshot exposes the engine snapshot for determinism tests and replay.
func (g *Game) Snapshot() engine.Snapshot {
	return g.st.Snapshot()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	snap := g.st.Snapshot()
	b.WriteString(fmt.Sprintf("Status: %s, Level: %d, Frame: %d\n", snap.Status, snap.Level, snap.FrameCount))
	b.WriteString(fmt.Sprintf("Score: %d/%d, Lives: %d/%d, High: %d\n",
		snap.Score, snap.Player2Score, snap.Lives, snap.Player2Lives, snap.HighScore))
	b.WriteString(fmt.Sprintf("Dots left: %d, Vulnerable: %v (%.0fms)\n", snap.DotsLeft, snap.Vulnerable, snap.VulnTimer))
	return b.String()
}
