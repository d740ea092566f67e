package multiplayer

import "testing"

func TestDuelWinner(t *testing.T) {
	if got := DuelWinner(100, 50); got != Player1 {
		t.Errorf("DuelWinner(100, 50) = %v, want Player1", got)
	}
	if got := DuelWinner(10, 90); got != Player2 {
		t.Errorf("DuelWinner(10, 90) = %v, want Player2", got)
	}
	if got := DuelWinner(30, 30); got != 0 {
		t.Errorf("DuelWinner(30, 30) = %v, want 0 (draw)", got)
	}
}

func TestMatchMetadata(t *testing.T) {
	m := NewMatch("m-1", MatchModeLocalDuel, "sess-a")
	if m.ID() != "m-1" {
		t.Errorf("ID = %q", m.ID())
	}
	if m.Mode() != MatchModeLocalDuel {
		t.Errorf("Mode = %v", m.Mode())
	}
	if len(m.Sessions()) != 1 || m.Sessions()[0] != "sess-a" {
		t.Errorf("Sessions = %v", m.Sessions())
	}
	if MatchModeSolo.String() != "Solo" || MatchModeLocalDuel.String() != "Local Duel" {
		t.Error("mode names wrong")
	}
}
