package engine

import "math"

// GhostName identifies one of the four ghost personalities. The numeric
// order is also the canonical update order.
type GhostName int

const (
	Blinky GhostName = iota
	Pinky
	Inky
	Clyde
)

func (n GhostName) String() string {
	switch n {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "ghost"
	}
}

// GhostMode is the per-ghost automaton state.
type GhostMode int

const (
	GhostScatter GhostMode = iota
	GhostChase
	GhostFrightened
	GhostEaten
)

func (m GhostMode) String() string {
	switch m {
	case GhostScatter:
		return "scatter"
	case GhostChase:
		return "chase"
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Ghost extends Actor with AI state.
type Ghost struct {
	Actor
	Name          GhostName
	Mode          GhostMode
	ScatterTarget Tile
	Released      bool
	InHouse       bool
}

// schedulePhase is one leg of the global scatter/chase alternation.
type schedulePhase struct {
	mode     GhostMode
	duration float64 // ms; negative means forever
}

// modeSchedule is the deterministic global scatter/chase sequence.
// Frightened episodes suspend this clock; eaten trips do not.
var modeSchedule = []schedulePhase{
	{GhostScatter, 7000},
	{GhostChase, 20000},
	{GhostScatter, 7000},
	{GhostChase, 20000},
	{GhostScatter, 5000},
	{GhostChase, 20000},
	{GhostScatter, 5000},
	{GhostChase, -1},
}

// scheduledMode returns the mode the global schedule currently dictates.
func (s *State) scheduledMode() GhostMode {
	return modeSchedule[s.phaseIndex].mode
}

// advanceSchedule moves the scatter/chase clock forward. At each phase
// flip every non-frightened, non-eaten ghost reverses exactly once.
func (s *State) advanceSchedule(dt float64) {
	phase := modeSchedule[s.phaseIndex]
	if phase.duration < 0 {
		return
	}
	s.phaseTimer += dt
	if s.phaseTimer < phase.duration {
		return
	}
	s.phaseTimer -= phase.duration
	s.phaseIndex++
	next := modeSchedule[s.phaseIndex].mode
	for _, g := range s.Ghosts {
		switch g.Mode {
		case GhostFrightened, GhostEaten:
			// keep fleeing / keep heading home
		default:
			g.Mode = next
			if !g.InHouse && g.Dir != DirNone {
				g.Dir = g.Dir.Opposite()
			}
		}
	}
}

// chaseTarget computes the ghost's chase-mode target tile.
func (s *State) chaseTarget(g *Ghost) Tile {
	p := s.nearestActivePlayer(g)
	if p == nil {
		return g.ScatterTarget
	}
	pt := p.Tile()

	switch g.Name {
	case Blinky:
		return pt

	case Pinky:
		dx, dy := p.Dir.Delta()
		return Tile{X: pt.X + 4*dx, Y: pt.Y + 4*dy}

	case Inky:
		dx, dy := p.Dir.Delta()
		look := Tile{X: pt.X + 2*dx, Y: pt.Y + 2*dy}
		bt := s.Ghosts[Blinky].Tile()
		// Double the vector from Blinky through the lookahead tile.
		return Tile{X: 2*look.X - bt.X, Y: 2*look.Y - bt.Y}

	case Clyde:
		gt := g.Tile()
		ddx := float64(gt.X - pt.X)
		ddy := float64(gt.Y - pt.Y)
		if math.Sqrt(ddx*ddx+ddy*ddy) > clydeShyDistance {
			return pt
		}
		return g.ScatterTarget
	}
	return g.ScatterTarget
}

// currentTarget returns the tile the ghost steers toward in its current
// mode. Frightened ghosts have no target (they roam randomly).
func (s *State) currentTarget(g *Ghost) Tile {
	switch g.Mode {
	case GhostScatter:
		return g.ScatterTarget
	case GhostChase:
		return s.chaseTarget(g)
	case GhostEaten:
		return houseEntryTile
	default:
		return g.ScatterTarget
	}
}

// chooseGhostDir picks the ghost's next direction at a tile centre.
// Non-frightened ghosts take the exit minimizing Euclidean distance to
// the target, ties broken by Up > Left > Down > Right; reverse is
// excluded unless it is the only way out. Frightened ghosts pick a
// random legal non-reverse exit from the state's seeded RNG.
func (s *State) chooseGhostDir(g *Ghost) {
	t := g.Tile()
	reverse := g.Dir.Opposite()
	all := s.Maze.Neighbors(t, g.Mode == GhostEaten)

	exits := all[:0:0]
	for _, e := range all {
		if e.Dir == reverse && g.Dir != DirNone {
			continue
		}
		exits = append(exits, e)
	}
	if len(exits) == 0 {
		// Dead end: the one place reversal is allowed mid-phase.
		if len(all) > 0 {
			g.Dir = all[0].Dir
		} else {
			g.Dir = DirNone
		}
		return
	}

	if g.Mode == GhostFrightened {
		g.Dir = exits[s.rng.Intn(len(exits))].Dir
		return
	}

	target := s.currentTarget(g)
	best := exits[0]
	bestDist := tileDistSq(best.Tile, target)
	for _, e := range exits[1:] {
		if d := tileDistSq(e.Tile, target); d < bestDist {
			best, bestDist = e, d
		}
	}
	g.Dir = best.Dir
}

func tileDistSq(a, b Tile) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// updateGhost advances one ghost by dt milliseconds.
func (s *State) updateGhost(g *Ghost, dt float64) {
	g.Speed = s.ghostSpeed(g)

	if g.InHouse {
		s.moveGhostInHouse(g, dt)
		return
	}

	s.moveGhost(g, g.Speed*dt)
}

// ghostSpeed returns the ghost's current speed in px/ms.
func (s *State) ghostSpeed(g *Ghost) float64 {
	speed := s.cfg.GhostSpeed * s.difficultyFactor() * s.levelFactor()
	switch g.Mode {
	case GhostFrightened:
		speed *= frightenedSpeedFactor
	case GhostEaten:
		speed *= eatenSpeedFactor
	}
	return speed
}

// moveGhostInHouse handles the house-exit path: wait until released,
// align to the exit column, then rise through the door. Wall checks are
// skipped; the path is fixed.
func (s *State) moveGhostInHouse(g *Ghost, dt float64) {
	if !g.Released {
		return
	}
	step := g.Speed * dt
	exitX, _ := (Tile{X: houseExitColumn, Y: 0}).Center()
	_, exitY := houseEntryTile.Center()

	if abs(g.X-exitX) > step {
		if g.X < exitX {
			g.X += step
		} else {
			g.X -= step
		}
		return
	}
	g.X = exitX
	g.Y -= step
	if g.Y <= exitY {
		g.Y = exitY
		g.InHouse = false
		g.Dir = DirLeft
	}
}

// moveGhost advances the ghost by `step` pixels, re-deciding direction
// every time it crosses a tile centre. Segment-by-segment movement keeps
// decisions exactly on-grid regardless of dt.
func (s *State) moveGhost(g *Ghost, step float64) {
	for guard := 0; step > 1e-9 && guard < 8; guard++ {
		if g.Dir == DirNone {
			s.chooseGhostDir(g)
			if g.Dir == DirNone {
				return
			}
		}

		t := g.Tile()
		cx, cy := t.Center()
		dx, dy := g.Dir.Delta()

		// Distance to the next decision point: this tile's centre if
		// still ahead, otherwise the centre of the tile entered next.
		ahead := (cx-g.X)*float64(dx) + (cy-g.Y)*float64(dy)
		if ahead <= 1e-9 {
			ahead += TileSize
		}

		if step < ahead {
			g.X += float64(dx) * step
			g.Y += float64(dy) * step
			g.X, g.Y = s.Maze.Wrap(g.X, g.Y)
			return
		}

		g.X += float64(dx) * ahead
		g.Y += float64(dy) * ahead
		g.X, g.Y = s.Maze.Wrap(g.X, g.Y)
		step -= ahead

		if g.Mode == GhostEaten && g.Tile() == houseEntryTile {
			s.reenterHouse(g)
			return
		}
		s.chooseGhostDir(g)
	}
}

// reenterHouse drops an eaten ghost back into the house; it will rise
// out again immediately, restored to the scheduled mode.
func (s *State) reenterHouse(g *Ghost) {
	g.PlaceAt(houseSpawnTiles[Pinky])
	g.Mode = s.scheduledMode()
	g.InHouse = true
	g.Released = true
}
