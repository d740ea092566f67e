package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/multiplayer"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// GameModel is the Bubble Tea model that runs a single game.
// It drives the fixed-timestep loop, maps keys to per-player action
// frames and persists scores when a run ends.
type GameModel struct {
	game        registry.Game
	cfg         core.RuntimeConfig
	screen      *core.Screen
	inputFrame  core.MultiInputFrame
	keyMapper   *KeyMapper
	store       *storage.Store
	match       *multiplayer.Match
	startedAt   time.Time
	resultSaved bool
	quitting    bool
	backToMenu  bool
}

// NewGameModel creates a model for the given game instance.
// store may be nil, in which case no scores are persisted.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, store *storage.Store) *GameModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game.Reset(cfg)

	km := NewKeyMapper()
	var match *multiplayer.Match
	if game.State().TwoPlayer {
		km = NewDuelKeyMapper()
		matchID := fmt.Sprintf("local-%d", time.Now().UnixNano())
		match = multiplayer.NewMatch(multiplayer.MatchID(matchID), multiplayer.MatchModeLocalDuel, "local")
	}

	return &GameModel{
		game:       game,
		cfg:        cfg,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		inputFrame: core.NewMultiInputFrame(),
		keyMapper:  km,
		store:      store,
		match:      match,
		startedAt:  time.Now(),
	}
}

// BackToMenu reports whether the player asked to return to the menu.
// Checked by the session model after the game program exits.
func (m *GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit the session entirely.
func (m *GameModel) IsQuitting() bool {
	return m.quitting
}

// Init starts the tick loop.
func (m *GameModel) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles input and tick messages.
func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if !m.game.State().GameOver {
			m.game.Reset(m.cfg)
			m.resultSaved = false
			m.startedAt = time.Now()
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m *GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Screenshot before anything else so it works on any screen.
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	player, action, isQuit := m.keyMapper.MapKey(msg)

	if isQuit {
		m.saveResults()
		m.quitting = true
		return m, tea.Quit
	}

	state := m.game.State()

	// Back returns to the menu from the pause screen or after game over.
	if action == core.ActionBack && (state.GameOver || state.Paused) {
		m.saveResults()
		m.backToMenu = true
		return m, tea.Quit
	}

	// Restart gets a fresh seed so replays differ run to run.
	if action == core.ActionRestart && state.GameOver {
		m.cfg.Seed = time.Now().UnixNano()
		m.game.Reset(m.cfg)
		m.resultSaved = false
		m.startedAt = time.Now()
		if m.match != nil {
			matchID := fmt.Sprintf("local-%d", time.Now().UnixNano())
			m.match = multiplayer.NewMatch(multiplayer.MatchID(matchID), multiplayer.MatchModeLocalDuel, "local")
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(player, action)
	}

	return m, nil
}

func (m *GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State.GameOver {
		m.saveResults()
	}

	return m, tickCmd(m.cfg.TickRate)
}

// saveResults persists the finished run exactly once: solo runs save the
// score, duels save both scores plus the match outcome.
func (m *GameModel) saveResults() {
	if m.resultSaved || m.store == nil {
		return
	}

	state := m.game.State()
	if !state.GameOver {
		return
	}
	m.resultSaved = true

	if state.Score > 0 {
		m.store.SaveScore(m.game.ID(), state.Score)
	}

	if !state.TwoPlayer || m.match == nil {
		return
	}
	if state.Score2 > 0 {
		m.store.SaveScore(m.game.ID(), state.Score2)
	}
	m.store.SaveDuelResult(multiplayer.DuelResultData{
		MatchID:      string(m.match.ID()),
		GameID:       m.game.ID(),
		Score1:       state.Score,
		Score2:       state.Score2,
		Winner:       multiplayer.DuelWinner(state.Score, state.Score2),
		DurationSecs: int(time.Since(m.startedAt).Seconds()),
	})
}

// saveScreenshot writes the current screen buffer to ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	name := fmt.Sprintf("%s-%s.txt", m.game.ID(), time.Now().Format("20060102-150405"))
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o644)
}

// View renders the current frame.
func (m *GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts a standalone game session in the local terminal.
// Blocks until the player quits. store may be nil.
func Run(game registry.Game, cfg core.RuntimeConfig, store *storage.Store) error {
	model := NewGameModel(game, cfg, store)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: program failed: %w", err)
	}

	return nil
}
