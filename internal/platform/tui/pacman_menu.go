package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// PacmanSelection holds the user's selection from the mode menu.
type PacmanSelection struct {
	GameID     string // "pacman" or "pacman_duel"
	Difficulty string // "easy", "normal", "hard"
}

var difficultyNames = []string{"Easy", "Normal", "Hard"}

// PacmanModeModel lets users choose game mode and difficulty.
// Two-step flow: pick single or duel first, then the difficulty preset.
type PacmanModeModel struct {
	cursor           int
	difficultyCursor int
	inDifficulty     bool
	width            int
	height           int
	keyMapper        *KeyMapper
	selection        PacmanSelection
	choosing         bool
	quitting         bool
	back             bool
}

// NewPacmanModeModel creates a new mode selection model.
func NewPacmanModeModel(width, height int) PacmanModeModel {
	return PacmanModeModel{
		cursor:           0,
		difficultyCursor: 1, // Normal preselected
		width:            width,
		height:           height,
		keyMapper:        NewKeyMapper(),
		choosing:         true,
	}
}

// Init initializes the model.
func (m PacmanModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m PacmanModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m PacmanModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inDifficulty {
		return m.handleDifficultyKey(action)
	}
	return m.handleModeKey(action)
}

func (m PacmanModeModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Single Player, Two Player Duel
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.selection.GameID = "pacman"
		case 1:
			m.selection.GameID = "pacman_duel"
		}
		m.inDifficulty = true
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m PacmanModeModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.difficultyCursor > 0 {
			m.difficultyCursor--
		}
	case MenuActionDown:
		if m.difficultyCursor < len(difficultyNames)-1 {
			m.difficultyCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Difficulty = strings.ToLower(difficultyNames[m.difficultyCursor])
		return m, tea.Quit
	case MenuActionBack:
		m.inDifficulty = false
	}

	return m, nil
}

// View renders the mode/difficulty selection.
func (m PacmanModeModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inDifficulty {
		return m.viewDifficultySelect()
	}
	return m.viewModeSelect()
}

func (m PacmanModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("P A C - M A N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		"Single Player (arrows or WASD)",
		"Two Player Duel (arrows vs WASD)",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m PacmanModeModel) viewDifficultySelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, name := range difficultyNames {
		cursor := "  "
		if i == m.difficultyCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m PacmanModeModel) Selected() *PacmanSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m PacmanModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m PacmanModeModel) WantsBack() bool {
	return m.back
}

// RunPacmanModeSelector runs the mode selection and returns the selection.
// Returns nil if the user backed out or quit.
func RunPacmanModeSelector(cfg core.RuntimeConfig) (*PacmanSelection, core.RuntimeConfig, error) {
	model := NewPacmanModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(PacmanModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
