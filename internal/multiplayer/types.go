// Package multiplayer provides types and abstractions for multiplayer
// game support. Two-player games run as local duels on one keyboard
// (arrows vs WASD); the session types also identify SSH connections so
// remote solo play shares the same bookkeeping.
package multiplayer

import "github.com/vovakirdan/tui-pacman/internal/core"

// PlayerID is an alias to core.PlayerID for convenience.
// Player1 is the arrow-key player, Player2 the WASD player.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// SessionID uniquely identifies a player's session (e.g., SSH connection).
type SessionID string

// MatchID uniquely identifies a game match.
type MatchID string

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single-player game.
	MatchModeSolo MatchMode = iota

	// MatchModeLocalDuel is two players sharing one keyboard.
	MatchModeLocalDuel
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeLocalDuel:
		return "Local Duel"
	default:
		return "Unknown"
	}
}

// MatchHandle provides access to match metadata.
// Games receive this to know their context without managing match lifecycle.
type MatchHandle interface {
	// ID returns the unique identifier for this match.
	ID() MatchID

	// Mode returns how this match is configured.
	Mode() MatchMode
}

// Match is a concrete implementation of MatchHandle.
// The platform creates matches and passes handles to games.
type Match struct {
	id   MatchID
	mode MatchMode

	// SessionIDs tracks which sessions are part of this match.
	// Local duels share a single session.
	SessionIDs []SessionID
}

// NewMatch creates a new match with the given parameters.
func NewMatch(id MatchID, mode MatchMode, sessions ...SessionID) *Match {
	return &Match{
		id:         id,
		mode:       mode,
		SessionIDs: sessions,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// Sessions returns the session IDs participating in this match.
func (m *Match) Sessions() []SessionID {
	return m.SessionIDs
}

// DuelResultData carries the outcome of a finished local duel to a
// persistence layer.
type DuelResultData struct {
	MatchID      string
	GameID       string
	Score1       int
	Score2       int
	Winner       PlayerID // 0 on a draw
	DurationSecs int
}

// ResultSaver persists duel outcomes. The storage package implements it;
// keeping the interface here avoids a platform -> storage dependency.
type ResultSaver interface {
	SaveDuelResult(data DuelResultData) error
}

// DuelWinner applies the scoring rule for a finished duel: the higher
// score wins, equal scores are a draw.
func DuelWinner(score1, score2 int) PlayerID {
	switch {
	case score1 > score2:
		return Player1
	case score2 > score1:
		return Player2
	default:
		return 0
	}
}
