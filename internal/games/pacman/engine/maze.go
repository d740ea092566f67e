package engine

// TileKind tags a maze cell.
type TileKind int

const (
	TileWall TileKind = iota
	TileOpen
	TilePowerSlot
	TileTunnel
	TileHouse
	TileDoor
)

// Tile is a maze grid coordinate.
type Tile struct {
	X, Y int
}

// Center returns the pixel coordinates of the tile's centre.
func (t Tile) Center() (float64, float64) {
	return (float64(t.X) + 0.5) * TileSize, (float64(t.Y) + 0.5) * TileSize
}

// TileAt returns the tile containing the pixel position.
func TileAt(x, y float64) Tile {
	return Tile{X: int(x / TileSize), Y: int(y / TileSize)}
}

// Exit is one legal move out of a tile.
type Exit struct {
	Dir  Direction
	Tile Tile
}

// defaultLayout is the maze, one rune per tile:
//
//	'#' wall, '.' open corridor (gets a dot), 'o' power pellet slot,
//	'T' tunnel corridor (open, wraps, no dot), ' ' open corridor without
//	a dot, '=' ghost house door, 'H' ghost house interior.
var defaultLayout = []string{
	"############################",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"######.##### ## #####.######",
	"######.##          ##.######",
	"######.## ###==### ##.######",
	"######.## #HHHHHH# ##.######",
	"TTTTTT.   #HHHHHH#   .TTTTTT",
	"######.## #HHHHHH# ##.######",
	"######.## ######## ##.######",
	"######.##          ##.######",
	"######.## ######## ##.######",
	"######.## ######## ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##.......  .......##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.##########.##.##########.#",
	"#..........................#",
	"############################",
}

// Fixed landmark tiles of the default maze.
var (
	playerSpawnTiles = [2]Tile{{X: 13, Y: 23}, {X: 14, Y: 23}}

	// blinkySpawnTile is just above the house door; the other three
	// ghosts start inside the house and leave through the door.
	blinkySpawnTile = Tile{X: 13, Y: 11}
	houseSpawnTiles = [4]Tile{
		{X: 13, Y: 11}, // Blinky (outside)
		{X: 13, Y: 14}, // Pinky
		{X: 12, Y: 14}, // Inky
		{X: 15, Y: 14}, // Clyde
	}

	// houseEntryTile is where an eaten ghost's return trip ends; from
	// there it drops back into the house.
	houseEntryTile = Tile{X: 13, Y: 11}

	// houseExitColumn is the column ghosts align to when rising out of
	// the house through the door.
	houseExitColumn = 13

	scatterTargets = [4]Tile{
		{X: 25, Y: 0},  // Blinky: top right
		{X: 2, Y: 0},   // Pinky: top left
		{X: 27, Y: 30}, // Inky: bottom right
		{X: 0, Y: 30},  // Clyde: bottom left
	}
)

// Maze is the static tile grid. Immutable after construction.
type Maze struct {
	Width  int
	Height int
	tiles  [][]TileKind
}

// NewMaze builds the default maze.
func NewMaze() *Maze {
	m := &Maze{
		Width:  len(defaultLayout[0]),
		Height: len(defaultLayout),
	}
	m.tiles = make([][]TileKind, m.Height)
	for y, row := range defaultLayout {
		m.tiles[y] = make([]TileKind, m.Width)
		for x, ch := range row {
			switch ch {
			case '#':
				m.tiles[y][x] = TileWall
			case '.':
				m.tiles[y][x] = TileOpen
			case 'o':
				m.tiles[y][x] = TilePowerSlot
			case 'T':
				m.tiles[y][x] = TileTunnel
			case '=':
				m.tiles[y][x] = TileDoor
			case 'H':
				m.tiles[y][x] = TileHouse
			default:
				m.tiles[y][x] = TileOpen
			}
		}
	}
	return m
}

// Kind returns the tag of a tile; out-of-bounds reads as wall.
func (m *Maze) Kind(t Tile) TileKind {
	if t.Y < 0 || t.Y >= m.Height || t.X < 0 || t.X >= m.Width {
		return TileWall
	}
	return m.tiles[t.Y][t.X]
}

// IsWall reports whether the tile blocks all movement.
func (m *Maze) IsWall(t Tile) bool {
	return m.Kind(t) == TileWall
}

// IsTunnelRow reports whether row y wraps horizontally.
func (m *Maze) IsTunnelRow(y int) bool {
	if y < 0 || y >= m.Height {
		return false
	}
	for x := 0; x < m.Width; x++ {
		if m.tiles[y][x] == TileTunnel {
			return true
		}
	}
	return false
}

// Passable reports whether an actor may enter the tile. The ghost house
// door (and interior) is traversable only with throughDoor set: eaten
// ghosts returning home and ghosts being released. This rule is kept
// explicit here rather than inferred at call sites.
func (m *Maze) Passable(t Tile, throughDoor bool) bool {
	switch m.Kind(t) {
	case TileWall:
		return false
	case TileDoor, TileHouse:
		return throughDoor
	default:
		return true
	}
}

// Step returns the neighboring tile one move in direction d, wrapping
// horizontally on tunnel rows.
func (m *Maze) Step(t Tile, d Direction) Tile {
	dx, dy := d.Delta()
	n := Tile{X: t.X + dx, Y: t.Y + dy}
	if m.IsTunnelRow(n.Y) {
		if n.X < 0 {
			n.X = m.Width - 1
		} else if n.X >= m.Width {
			n.X = 0
		}
	}
	return n
}

// Neighbors returns the legal exits from a tile, in decision priority
// order (Up, Left, Down, Right).
func (m *Maze) Neighbors(t Tile, throughDoor bool) []Exit {
	exits := make([]Exit, 0, 4)
	for _, d := range decisionOrder {
		n := m.Step(t, d)
		if m.Passable(n, throughDoor) {
			exits = append(exits, Exit{Dir: d, Tile: n})
		}
	}
	return exits
}

// Wrap applies tunnel wrap-around to a pixel position. Positions on
// non-tunnel rows are returned unchanged; walls keep actors inside on
// those rows anyway.
func (m *Maze) Wrap(x, y float64) (float64, float64) {
	row := int(y / TileSize)
	if !m.IsTunnelRow(row) {
		return x, y
	}
	spanX := float64(m.Width) * TileSize
	if x < 0 {
		x += spanX
	} else if x >= spanX {
		x -= spanX
	}
	return x, y
}

// PixelWidth returns the maze width in pixels.
func (m *Maze) PixelWidth() float64 {
	return float64(m.Width) * TileSize
}

// PixelHeight returns the maze height in pixels.
func (m *Maze) PixelHeight() float64 {
	return float64(m.Height) * TileSize
}
