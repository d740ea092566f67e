package engine

import "testing"

func TestActorMovesAlongCorridor(t *testing.T) {
	m := NewMaze()
	a := &Actor{Speed: 0.1}
	a.PlaceAt(Tile{X: 1, Y: 1})
	a.Dir = DirRight

	a.Move(m, 100)
	wantX, wantY := (Tile{X: 1, Y: 1}).Center()
	if a.X != wantX+10 || a.Y != wantY {
		t.Errorf("actor at (%v,%v), want (%v,%v)", a.X, a.Y, wantX+10, wantY)
	}
}

func TestActorStopsAtWall(t *testing.T) {
	m := NewMaze()
	a := &Actor{Speed: 0.1}
	a.PlaceAt(Tile{X: 1, Y: 1})
	cx, cy := (Tile{X: 1, Y: 1}).Center()
	a.Y = cy + 4 // below centre, heading up into the border wall
	a.Dir = DirUp

	a.Move(m, 100)
	if a.X != cx || a.Y != cy {
		t.Errorf("actor at (%v,%v), want clamped to centre (%v,%v)", a.X, a.Y, cx, cy)
	}
	if a.Dir != DirNone {
		t.Errorf("dir = %v, want none after hitting a wall", a.Dir)
	}
}

func TestActorPreTurnBuffer(t *testing.T) {
	m := NewMaze()
	a := &Actor{Speed: 0.1}
	// Tile (6,1) has an opening below at (6,2). Approach its centre from
	// the left with a buffered down-turn.
	cx, cy := (Tile{X: 6, Y: 1}).Center()
	a.X, a.Y = cx-2, cy
	a.Dir = DirRight
	a.DesiredDir = DirDown

	a.Move(m, 50)
	if a.Dir != DirDown {
		t.Fatalf("dir = %v, want down (buffered turn)", a.Dir)
	}
	if a.X != cx {
		t.Errorf("x = %v, want snapped to %v", a.X, cx)
	}
	if a.Y <= cy {
		t.Errorf("y = %v, should have advanced below %v", a.Y, cy)
	}
}

func TestActorPreTurnRejectedIntoWall(t *testing.T) {
	m := NewMaze()
	a := &Actor{Speed: 0.1}
	// Tile (2,1) has walls above and below; an up-turn must not take.
	cx, cy := (Tile{X: 2, Y: 1}).Center()
	a.X, a.Y = cx-1, cy
	a.Dir = DirRight
	a.DesiredDir = DirUp

	a.Move(m, 10)
	if a.Dir != DirRight {
		t.Errorf("dir = %v, turn into a wall should be ignored", a.Dir)
	}
}

func TestActorImmediateReversal(t *testing.T) {
	m := NewMaze()
	a := &Actor{Speed: 0.1}
	a.PlaceAt(Tile{X: 3, Y: 1})
	a.X += 5 // mid-tile
	a.Dir = DirRight
	a.DesiredDir = DirLeft

	a.Move(m, 10)
	if a.Dir != DirLeft {
		t.Errorf("dir = %v, reversal should apply anywhere in the tile", a.Dir)
	}
}

func TestActorTunnelWrap(t *testing.T) {
	m := NewMaze()
	a := &Actor{Speed: 0.1}
	_, cy := (Tile{X: 0, Y: 14}).Center()
	a.X, a.Y = 2, cy
	a.Dir = DirLeft

	a.Move(m, 100)
	want := m.PixelWidth() - 8
	if a.X != want {
		t.Errorf("x = %v, want wrapped to %v", a.X, want)
	}
}
