package engine

import "testing"

func TestNewDotsPopulation(t *testing.T) {
	m := NewMaze()
	d := NewDots(m)

	power := 0
	for tile, kind := range d {
		if m.IsWall(tile) {
			t.Errorf("dot on wall tile %v", tile)
		}
		switch m.Kind(tile) {
		case TileHouse, TileDoor, TileTunnel:
			t.Errorf("dot on %v tile %v", m.Kind(tile), tile)
		}
		if kind == DotPower {
			power++
		}
	}
	if power != 4 {
		t.Errorf("power pellets = %d, want 4", power)
	}
	if len(d) < 200 {
		t.Errorf("suspiciously few pellets: %d", len(d))
	}
}

func TestCollectAtNormalDot(t *testing.T) {
	d := NewDots(NewMaze())
	tile := Tile{X: 1, Y: 1}
	x, y := tile.Center()

	points, power := d.CollectAt(x, y)
	if points != DotPoints || power {
		t.Fatalf("got (%d, %v), want (%d, false)", points, power, DotPoints)
	}
	if _, ok := d[tile]; ok {
		t.Error("collected tile still present")
	}
	// Idempotent: the empty tile yields nothing.
	if points, _ := d.CollectAt(x, y); points != 0 {
		t.Errorf("second collection scored %d", points)
	}
}

func TestCollectAtPowerPellet(t *testing.T) {
	d := NewDots(NewMaze())
	x, y := (Tile{X: 1, Y: 3}).Center()

	points, power := d.CollectAt(x, y)
	if points != PowerPelletPoints || !power {
		t.Fatalf("got (%d, %v), want (%d, true)", points, power, PowerPelletPoints)
	}
}

func TestCollectAtRequiresProximity(t *testing.T) {
	d := NewDots(NewMaze())
	tile := Tile{X: 1, Y: 1}
	x, y := tile.Center()

	// Just inside the half-tile window collects.
	if points, _ := d.CollectAt(x+TileSize/2-0.5, y); points != DotPoints {
		t.Error("near-centre position should collect")
	}
}

func TestAllCollected(t *testing.T) {
	m := NewMaze()
	d := NewDots(m)
	if d.AllCollected() {
		t.Fatal("fresh dots reported collected")
	}

	tiles := make([]Tile, 0, len(d))
	for tile := range d {
		tiles = append(tiles, tile)
	}
	for _, tile := range tiles {
		x, y := tile.Center()
		d.CollectAt(x, y)
	}
	if !d.AllCollected() {
		t.Errorf("%d pellets left after sweeping every tile", len(d))
	}
}

func TestDotsClone(t *testing.T) {
	d := NewDots(NewMaze())
	c := d.Clone()
	x, y := (Tile{X: 1, Y: 1}).Center()
	c.CollectAt(x, y)
	if len(c) != len(d)-1 {
		t.Error("clone did not diverge")
	}
	if _, ok := d[Tile{X: 1, Y: 1}]; !ok {
		t.Error("original lost a pellet through the clone")
	}
}
