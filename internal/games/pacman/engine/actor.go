package engine

// Actor holds tile-aligned kinematics shared by players and ghosts:
// a continuous pixel position, the direction currently moved in, a
// buffered desired direction (players only) and a speed in px/ms.
type Actor struct {
	X, Y       float64
	Dir        Direction
	DesiredDir Direction
	Speed      float64
}

// Tile returns the tile currently containing the actor's centre.
func (a *Actor) Tile() Tile {
	return TileAt(a.X, a.Y)
}

// PlaceAt snaps the actor to the centre of a tile, stopped.
func (a *Actor) PlaceAt(t Tile) {
	a.X, a.Y = t.Center()
	a.Dir = DirNone
	a.DesiredDir = DirNone
}

// Move advances the actor by Speed*dt along its current direction,
// applying the desired-direction buffer first:
//
//  1. A reversal is honored immediately, anywhere in the tile.
//  2. Any other buffered turn is taken when the actor is within the
//     pre-turn window of the nearest tile centre and the target tile is
//     open; the actor snaps to the centre so the turn stays on-grid.
//  3. Movement into a wall clamps to the aligning tile centre and stops
//     the actor (direction becomes none).
//  4. Tunnel rows wrap horizontally.
func (a *Actor) Move(m *Maze, dt float64) {
	if a.DesiredDir != DirNone && a.DesiredDir == a.Dir.Opposite() {
		a.Dir = a.DesiredDir
	}

	t := a.Tile()
	cx, cy := t.Center()

	if a.DesiredDir != DirNone && a.DesiredDir != a.Dir &&
		abs(a.X-cx) <= preTurnTolerance && abs(a.Y-cy) <= preTurnTolerance {
		if m.Passable(m.Step(t, a.DesiredDir), false) {
			a.X, a.Y = cx, cy
			a.Dir = a.DesiredDir
		}
	}

	if a.Dir == DirNone {
		return
	}

	dx, dy := a.Dir.Delta()
	step := a.Speed * dt

	if !m.Passable(m.Step(t, a.Dir), false) {
		// Distance to the centre along the axis of motion; positive
		// while the centre is still ahead.
		ahead := (cx-a.X)*float64(dx) + (cy-a.Y)*float64(dy)
		if ahead <= step {
			a.X, a.Y = cx, cy
			a.Dir = DirNone
			return
		}
	}

	a.X += float64(dx) * step
	a.Y += float64(dy) * step
	a.X, a.Y = m.Wrap(a.X, a.Y)
}
