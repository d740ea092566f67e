package engine

import "testing"

func newRunningState(seed int64) *State {
	s := New(0, seed)
	s.SetGameMode(ModeSingle)
	s.StartGame()
	return s
}

func TestChaseTargets(t *testing.T) {
	s := newRunningState(1)
	p := s.Players[0]
	p.PlaceAt(Tile{X: 13, Y: 23})
	p.Dir = DirLeft

	if got := s.chaseTarget(s.Ghosts[Blinky]); got != (Tile{X: 13, Y: 23}) {
		t.Errorf("blinky target %v, want the player tile", got)
	}
	if got := s.chaseTarget(s.Ghosts[Pinky]); got != (Tile{X: 9, Y: 23}) {
		t.Errorf("pinky target %v, want 4 ahead of the player", got)
	}

	// Inky doubles the vector from Blinky through the tile 2 ahead.
	s.Ghosts[Blinky].PlaceAt(Tile{X: 13, Y: 11})
	if got := s.chaseTarget(s.Ghosts[Inky]); got != (Tile{X: 9, Y: 35}) {
		t.Errorf("inky target %v, want (9,35)", got)
	}
}

func TestClydeShyness(t *testing.T) {
	s := newRunningState(1)
	p := s.Players[0]
	p.PlaceAt(Tile{X: 13, Y: 23})
	clyde := s.Ghosts[Clyde]

	clyde.PlaceAt(Tile{X: 13, Y: 11}) // 12 tiles away
	if got := s.chaseTarget(clyde); got != (Tile{X: 13, Y: 23}) {
		t.Errorf("distant clyde target %v, want the player tile", got)
	}

	clyde.PlaceAt(Tile{X: 13, Y: 22}) // 1 tile away
	if got := s.chaseTarget(clyde); got != clyde.ScatterTarget {
		t.Errorf("near clyde target %v, want scatter corner %v", got, clyde.ScatterTarget)
	}
}

func TestGhostDecisionTieBreak(t *testing.T) {
	s := newRunningState(1)
	g := s.Ghosts[Blinky]
	// From (1,1) the exits are Down and Right; with the ghost's own tile
	// as target both are equidistant, so priority order decides.
	g.PlaceAt(Tile{X: 1, Y: 1})
	g.Mode = GhostScatter
	g.ScatterTarget = Tile{X: 1, Y: 1}

	s.chooseGhostDir(g)
	if g.Dir != DirDown {
		t.Errorf("dir = %v, want down (Up > Left > Down > Right)", g.Dir)
	}
}

func TestGhostNeverReversesMidPhase(t *testing.T) {
	s := newRunningState(1)
	g := s.Ghosts[Blinky]
	// Straight corridor tile: only forward and backward are open.
	g.PlaceAt(Tile{X: 2, Y: 1})
	g.Dir = DirRight
	g.Mode = GhostScatter
	g.ScatterTarget = Tile{X: 1, Y: 1} // behind the ghost

	s.chooseGhostDir(g)
	if g.Dir != DirRight {
		t.Errorf("dir = %v, reverse must stay excluded even toward the target", g.Dir)
	}
}

func TestScheduleFlipReversesGhosts(t *testing.T) {
	s := newRunningState(1)
	blinky := s.Ghosts[Blinky]
	blinky.Dir = DirLeft
	pinky := s.Ghosts[Pinky]
	pinky.InHouse = false
	pinky.Mode = GhostFrightened
	pinky.Dir = DirUp

	s.advanceSchedule(7000)
	if s.scheduledMode() != GhostChase {
		t.Fatalf("scheduled mode = %v, want chase after 7s", s.scheduledMode())
	}
	if blinky.Mode != GhostChase || blinky.Dir != DirRight {
		t.Errorf("blinky %v/%v, want chase facing right", blinky.Mode, blinky.Dir)
	}
	if pinky.Mode != GhostFrightened || pinky.Dir != DirUp {
		t.Errorf("frightened pinky was disturbed by the flip: %v/%v", pinky.Mode, pinky.Dir)
	}
}

func TestScheduleFinalPhaseIsPermanent(t *testing.T) {
	s := newRunningState(1)
	for i := 0; i < len(modeSchedule)-1; i++ {
		s.advanceSchedule(modeSchedule[i].duration)
	}
	if s.scheduledMode() != GhostChase {
		t.Fatalf("final mode = %v, want chase", s.scheduledMode())
	}
	idx := s.phaseIndex
	s.advanceSchedule(1e9)
	if s.phaseIndex != idx {
		t.Error("permanent chase phase advanced")
	}
}

func TestFrightenedChoiceIsSeeded(t *testing.T) {
	pick := func(seed int64) Direction {
		s := newRunningState(seed)
		g := s.Ghosts[Blinky]
		g.PlaceAt(Tile{X: 6, Y: 5}) // four-way intersection
		g.Mode = GhostFrightened
		s.chooseGhostDir(g)
		return g.Dir
	}
	if pick(42) != pick(42) {
		t.Error("same seed produced different frightened choices")
	}
}

func TestEatenGhostReentersHouse(t *testing.T) {
	s := newRunningState(1)
	g := s.Ghosts[Pinky]
	g.InHouse = false
	g.Released = true
	g.Mode = GhostEaten
	// One tile left of the entry, heading straight for it.
	g.PlaceAt(Tile{X: 12, Y: 11})
	g.Dir = DirRight

	s.moveGhost(g, TileSize)
	if !g.InHouse {
		t.Fatal("ghost should re-enter the house at the entry tile")
	}
	if g.Mode == GhostEaten {
		t.Error("ghost should leave eaten mode on arrival")
	}
	if g.Tile() != houseSpawnTiles[Pinky] {
		t.Errorf("ghost at %v, want house spawn %v", g.Tile(), houseSpawnTiles[Pinky])
	}
}

func TestHouseReleaseRisesThroughDoor(t *testing.T) {
	s := newRunningState(1)
	g := s.Ghosts[Pinky] // spawns at (13,14), already on the exit column
	g.Released = true
	g.Speed = 0.1

	for i := 0; i < 100 && g.InHouse; i++ {
		s.moveGhostInHouse(g, 16)
	}
	if g.InHouse {
		t.Fatal("released ghost never left the house")
	}
	if g.Tile() != houseEntryTile {
		t.Errorf("ghost surfaced at %v, want %v", g.Tile(), houseEntryTile)
	}
	if g.Dir != DirLeft {
		t.Errorf("dir = %v, want left after exiting", g.Dir)
	}
}
