package engine

import "testing"

func TestMazeDimensions(t *testing.T) {
	m := NewMaze()
	if m.Width != MazeWidth || m.Height != MazeHeight {
		t.Fatalf("maze is %dx%d, want %dx%d", m.Width, m.Height, MazeWidth, MazeHeight)
	}
	for _, row := range defaultLayout {
		if len(row) != MazeWidth {
			t.Fatalf("layout row %q has width %d, want %d", row, len(row), MazeWidth)
		}
	}
}

func TestMazeTunnelRow(t *testing.T) {
	m := NewMaze()
	if !m.IsTunnelRow(14) {
		t.Error("row 14 should be a tunnel row")
	}
	if m.IsTunnelRow(0) || m.IsTunnelRow(30) {
		t.Error("border rows should not be tunnel rows")
	}
}

func TestMazeDoorTraversal(t *testing.T) {
	m := NewMaze()
	door := Tile{X: 13, Y: 12}
	if m.Kind(door) != TileDoor {
		t.Fatalf("tile %v kind = %v, want door", door, m.Kind(door))
	}
	if m.Passable(door, false) {
		t.Error("door should block normal traversal")
	}
	if !m.Passable(door, true) {
		t.Error("door should open for house traversal")
	}
	house := Tile{X: 13, Y: 14}
	if m.Passable(house, false) || !m.Passable(house, true) {
		t.Error("house interior should follow the door rule")
	}
}

func TestMazeOutOfBoundsIsWall(t *testing.T) {
	m := NewMaze()
	for _, tl := range []Tile{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 28, Y: 0}, {X: 0, Y: 31}} {
		if m.Kind(tl) != TileWall {
			t.Errorf("out-of-bounds tile %v should read as wall", tl)
		}
	}
}

func TestMazeStepWrapsTunnel(t *testing.T) {
	m := NewMaze()
	left := m.Step(Tile{X: 0, Y: 14}, DirLeft)
	if left != (Tile{X: 27, Y: 14}) {
		t.Errorf("stepping left off the tunnel got %v, want (27,14)", left)
	}
	right := m.Step(Tile{X: 27, Y: 14}, DirRight)
	if right != (Tile{X: 0, Y: 14}) {
		t.Errorf("stepping right off the tunnel got %v, want (0,14)", right)
	}
	// Non-tunnel rows do not wrap; the neighbor is simply out of bounds.
	if n := m.Step(Tile{X: 0, Y: 1}, DirLeft); n.X != -1 {
		t.Errorf("non-tunnel row wrapped: %v", n)
	}
}

func TestMazeNeighborsPriorityOrder(t *testing.T) {
	m := NewMaze()
	// (6,5) has open tiles on all four sides.
	exits := m.Neighbors(Tile{X: 6, Y: 5}, false)
	if len(exits) != 4 {
		t.Fatalf("expected 4 exits, got %d", len(exits))
	}
	want := [4]Direction{DirUp, DirLeft, DirDown, DirRight}
	for i, e := range exits {
		if e.Dir != want[i] {
			t.Errorf("exit %d = %v, want %v", i, e.Dir, want[i])
		}
	}
}

func TestMazePixelWrap(t *testing.T) {
	m := NewMaze()
	y := (float64(14) + 0.5) * TileSize
	if x, _ := m.Wrap(-8, y); x != m.PixelWidth()-8 {
		t.Errorf("left wrap got x=%v", x)
	}
	if x, _ := m.Wrap(m.PixelWidth()+4, y); x != 4 {
		t.Errorf("right wrap got x=%v", x)
	}
	// No wrap outside tunnel rows.
	if x, _ := m.Wrap(-8, TileSize*1.5); x != -8 {
		t.Errorf("non-tunnel row wrapped: x=%v", x)
	}
}
