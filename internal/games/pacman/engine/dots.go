package engine

// DotKind distinguishes a normal dot from a power pellet.
type DotKind int

const (
	DotNormal DotKind = iota
	DotPower
)

// Dots maps each uncollected pellet's tile to its kind. Never contains a
// wall tile; once a tile is removed it stays removed until a level reset.
type Dots map[Tile]DotKind

// NewDots populates dots from the maze: a normal dot on every open
// corridor tile and a power pellet on every power slot. Tunnel corridors,
// the ghost house and plain (dot-free) corridors stay empty.
func NewDots(m *Maze) Dots {
	d := make(Dots)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			t := Tile{X: x, Y: y}
			switch m.Kind(t) {
			case TilePowerSlot:
				d[t] = DotPower
			case TileOpen:
				// Layout distinguishes dotted '.' corridors from
				// dot-free ' ' ones; both parse to TileOpen, so
				// consult the layout rune directly.
				if defaultLayout[y][x] == '.' {
					d[t] = DotNormal
				}
			}
		}
	}
	return d
}

// CollectAt removes the pellet under the given pixel position, if any.
// A pellet is collected when the actor's centre lies within half a tile
// of the pellet's centre. Returns the points gained and whether the
// pellet was a power pellet. Collection is idempotent: once a tile is
// empty, re-querying it yields zero points.
func (d Dots) CollectAt(x, y float64) (points int, power bool) {
	t := TileAt(x, y)
	kind, ok := d[t]
	if !ok {
		return 0, false
	}
	cx, cy := t.Center()
	if abs(x-cx) > TileSize/2 || abs(y-cy) > TileSize/2 {
		return 0, false
	}
	delete(d, t)
	if kind == DotPower {
		return PowerPelletPoints, true
	}
	return DotPoints, false
}

// AllCollected reports whether every pellet has been eaten.
func (d Dots) AllCollected() bool {
	return len(d) == 0
}

// Clone returns an independent copy, used when rebuilding levels.
func (d Dots) Clone() Dots {
	c := make(Dots, len(d))
	for t, k := range d {
		c[t] = k
	}
	return c
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
