package engine

// GhostSnapshot is one ghost's observable state.
type GhostSnapshot struct {
	Name     GhostName
	Mode     GhostMode
	X, Y     float64
	Dir      Direction
	InHouse  bool
	Released bool
}

// Snapshot captures the observable game state for determinism testing
// and replay verification.
type Snapshot struct {
	Status       Status
	Mode         GameMode
	Difficulty   Difficulty
	Level        int
	Score        int
	Player2Score int
	Lives        int
	Player2Lives int
	HighScore    int
	ElapsedTime  float64
	FrameCount   int
	DotsLeft     int
	P1X, P1Y     float64
	P1Dir        Direction
	P2X, P2Y     float64
	P2Dir        Direction
	Ghosts       [4]GhostSnapshot
	Vulnerable   bool
	VulnTimer    float64
	GhostsEaten  int
	DeathTimer   float64
}

// Snapshot returns the current observable state. Two states driven by
// identical action/tick sequences must produce equal snapshots.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Status:       s.Status,
		Mode:         s.Mode,
		Difficulty:   s.Difficulty,
		Level:        s.Level,
		Score:        s.Players[0].Score,
		Player2Score: s.Players[1].Score,
		Lives:        s.Players[0].Lives,
		Player2Lives: s.Players[1].Lives,
		HighScore:    s.HighScore,
		ElapsedTime:  s.ElapsedTime,
		FrameCount:   s.FrameCount,
		DotsLeft:     len(s.Dots),
		P1X:          s.Players[0].X,
		P1Y:          s.Players[0].Y,
		P1Dir:        s.Players[0].Dir,
		P2X:          s.Players[1].X,
		P2Y:          s.Players[1].Y,
		P2Dir:        s.Players[1].Dir,
		Vulnerable:   s.GhostsVulnerable,
		VulnTimer:    s.VulnerabilityTimer,
		GhostsEaten:  s.GhostsEaten,
		DeathTimer:   s.DeathTimer,
	}
	for i, g := range s.Ghosts {
		snap.Ghosts[i] = GhostSnapshot{
			Name:     g.Name,
			Mode:     g.Mode,
			X:        g.X,
			Y:        g.Y,
			Dir:      g.Dir,
			InHouse:  g.InHouse,
			Released: g.Released,
		}
	}
	return snap
}
