package engine

import "testing"

func TestFreshStartSinglePlayer(t *testing.T) {
	s := New(0, 7)
	if s.Status != StatusModeSelect {
		t.Fatalf("initial status = %v, want mode_select", s.Status)
	}

	s.SetGameMode(ModeSingle)
	if s.Status != StatusIdle {
		t.Fatalf("status = %v after mode select, want idle", s.Status)
	}
	s.StartGame()
	if s.Status != StatusRunning {
		t.Fatalf("status = %v after start, want running", s.Status)
	}

	for i := 0; i < 60; i++ {
		s.Tick(16)
	}
	if s.ElapsedTime != 960 {
		t.Errorf("elapsed = %v, want 960", s.ElapsedTime)
	}
	if s.FrameCount != 60 {
		t.Errorf("frames = %d, want 60", s.FrameCount)
	}
	if s.HighScore < s.Players[0].Score || s.HighScore < s.Players[1].Score {
		t.Error("high score fell behind a player score")
	}
}

func TestIdleStatesIgnoreTicks(t *testing.T) {
	s := New(500, 7)
	before := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Tick(16)
	}
	if s.Snapshot() != before {
		t.Error("mode_select state changed under ticks")
	}

	s.SetGameMode(ModeSingle)
	s.StartGame()
	s.Tick(16)
	s.PauseGame()
	paused := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Tick(16)
	}
	if s.Snapshot() != paused {
		t.Error("paused state changed under ticks")
	}
}

func TestPauseResumeRoundTrip(t *testing.T) {
	s := newRunningState(7)
	s.Tick(16)
	before := s.Snapshot()

	s.PauseGame()
	s.ResumeGame()
	if s.Status != StatusRunning {
		t.Fatalf("status = %v, want running", s.Status)
	}
	if s.Snapshot() != before {
		t.Error("pause/resume altered the state")
	}

	// Both are no-ops out of position.
	s.ResumeGame()
	s.PauseGame()
	s.PauseGame()
	if s.Status != StatusPaused {
		t.Errorf("status = %v, want paused", s.Status)
	}
}

func TestNormalPelletCollection(t *testing.T) {
	s := newRunningState(7)
	s.Players[0].PlaceAt(Tile{X: 1, Y: 1})
	s.Tick(1)

	if s.Players[0].Score != DotPoints {
		t.Errorf("score = %d, want %d", s.Players[0].Score, DotPoints)
	}
	if _, ok := s.Dots[Tile{X: 1, Y: 1}]; ok {
		t.Error("collected pellet still on the board")
	}
	if s.HighScore != DotPoints {
		t.Errorf("high score = %d, want %d", s.HighScore, DotPoints)
	}
}

func TestPowerPelletStartsFrightenedEpisode(t *testing.T) {
	s := newRunningState(7)
	s.Players[0].PlaceAt(Tile{X: 1, Y: 3})
	s.Tick(1)

	if s.Players[0].Score != PowerPelletPoints {
		t.Errorf("score = %d, want %d", s.Players[0].Score, PowerPelletPoints)
	}
	if !s.GhostsVulnerable {
		t.Fatal("ghosts not vulnerable after power pellet")
	}
	if s.VulnerabilityTimer != FrightenedDuration {
		t.Errorf("timer = %v, want %v on the collection tick", s.VulnerabilityTimer, FrightenedDuration)
	}
	for _, g := range s.Ghosts {
		if g.Mode != GhostFrightened {
			t.Errorf("%v mode = %v, want frightened", g.Name, g.Mode)
		}
	}

	// The countdown starts on the next tick.
	s.Tick(16)
	if s.VulnerabilityTimer != FrightenedDuration-16 {
		t.Errorf("timer = %v after one tick, want %v", s.VulnerabilityTimer, FrightenedDuration-16)
	}
}

func TestFrightenedEpisodeExpires(t *testing.T) {
	cfg := DefaultTuning()
	cfg.FrightenedMs = 500
	s := NewWithTuning(cfg, 0, 7)
	s.SetGameMode(ModeSingle)
	s.StartGame()

	s.triggerFright()
	for i := 0; i < 40; i++ {
		s.Tick(16)
	}
	if s.GhostsVulnerable {
		t.Fatal("episode still active after its duration")
	}
	if s.VulnerabilityTimer != 0 {
		t.Errorf("timer = %v, want 0", s.VulnerabilityTimer)
	}
	for _, g := range s.Ghosts {
		if g.Mode == GhostFrightened {
			t.Errorf("%v still frightened after expiry", g.Name)
		}
	}
}

func TestGhostsFlashingWindow(t *testing.T) {
	s := newRunningState(7)
	s.GhostsVulnerable = true
	s.VulnerabilityTimer = 3000
	if s.AreGhostsFlashing() {
		t.Error("flashing too early")
	}
	s.VulnerabilityTimer = 1500
	if !s.AreGhostsFlashing() {
		t.Error("not flashing inside the final window")
	}
}

func TestGhostEatChain(t *testing.T) {
	s := newRunningState(7)
	p := s.Players[0]
	p.PlaceAt(Tile{X: 13, Y: 23}) // spawn tile, no pellet underneath
	s.triggerFright()

	want := GhostEatPoints
	for i, g := range s.Ghosts {
		g.InHouse = false
		g.Released = true
		g.PlaceAt(p.Tile())

		before := p.Score
		s.Tick(1)
		if delta := p.Score - before; delta != want[i] {
			t.Errorf("ghost %d scored %d, want %d", i, delta, want[i])
		}
		if g.Mode != GhostEaten {
			t.Errorf("%v mode = %v, want eaten", g.Name, g.Mode)
		}
		// Move the eaten ghost out of the way for the next overlap.
		g.PlaceAt(Tile{X: 26, Y: 29})
		g.Mode = GhostEaten
	}
	if s.GhostsEaten != 4 {
		t.Errorf("ghosts eaten = %d, want 4", s.GhostsEaten)
	}
	if s.Status != StatusRunning {
		t.Errorf("status = %v, eating ghosts must not kill the player", s.Status)
	}
}

func TestDeathAndRespawn(t *testing.T) {
	s := newRunningState(7)
	p := s.Players[0]
	p.Lives = 2
	blinky := s.Ghosts[Blinky]
	blinky.PlaceAt(p.Tile())

	s.Tick(16)
	if s.Status != StatusDying {
		t.Fatalf("status = %v, want dying", s.Status)
	}
	if p.Lives != 1 {
		t.Errorf("lives = %d, want 1", p.Lives)
	}
	if s.DeathTimer != DeathAnimationDuration {
		t.Errorf("death timer = %v, want %v", s.DeathTimer, DeathAnimationDuration)
	}

	for i := 0; i < 15; i++ {
		s.Tick(100)
	}
	if s.Status != StatusRunning {
		t.Fatalf("status = %v after the animation, want running", s.Status)
	}
	if p.Tile() != playerSpawnTiles[0] {
		t.Errorf("player at %v, want spawn %v", p.Tile(), playerSpawnTiles[0])
	}
	if blinky.Tile() != blinkySpawnTile {
		t.Errorf("blinky at %v, want spawn %v", blinky.Tile(), blinkySpawnTile)
	}
	for _, g := range s.Ghosts[1:] {
		if !g.InHouse {
			t.Errorf("%v not back in the house after respawn", g.Name)
		}
	}
	if s.GhostsVulnerable {
		t.Error("frightened state survived the respawn")
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	s := newRunningState(7)
	p := s.Players[0]
	p.Lives = 1
	s.Ghosts[Blinky].PlaceAt(p.Tile())

	s.Tick(16)
	for i := 0; i < 15; i++ {
		s.Tick(100)
	}
	if s.Status != StatusGameOver {
		t.Fatalf("status = %v, want game_over", s.Status)
	}
	if p.Lives != 0 {
		t.Errorf("lives = %d, want 0", p.Lives)
	}
}

func TestTwoPlayerSurvivorKeepsPlaying(t *testing.T) {
	s := New(0, 7)
	s.SetGameMode(ModeTwoPlayer)
	s.StartGame()
	p2 := s.Players[1]
	p2.Lives = 1
	s.Ghosts[Blinky].PlaceAt(p2.Tile())

	s.Tick(16)
	if s.Status != StatusDying {
		t.Fatalf("status = %v, want dying", s.Status)
	}
	for i := 0; i < 15; i++ {
		s.Tick(100)
	}
	if s.Status != StatusRunning {
		t.Fatalf("status = %v, survivor should keep the game running", s.Status)
	}
	if p2.Active {
		t.Error("player 2 should be out of the game")
	}
	if !s.Players[0].Active {
		t.Error("player 1 dropped out by mistake")
	}
}

func TestLevelCompleteAndNextLevel(t *testing.T) {
	s := newRunningState(7)
	score := 1230
	s.Players[0].Score = score
	s.Dots = make(Dots)

	s.Tick(16)
	if s.Status != StatusLevelComplete {
		t.Fatalf("status = %v, want level_complete", s.Status)
	}

	s.NextLevel()
	if s.Status != StatusRunning {
		t.Fatalf("status = %v, want running on level 2", s.Status)
	}
	if s.Level != 2 {
		t.Errorf("level = %d, want 2", s.Level)
	}
	if s.Dots.AllCollected() {
		t.Error("dots not repopulated")
	}
	if s.Players[0].Score != score {
		t.Errorf("score = %d, want preserved %d", s.Players[0].Score, score)
	}
	for _, g := range s.Ghosts {
		if g.Mode != GhostScatter {
			t.Errorf("%v mode = %v, want scatter at level start", g.Name, g.Mode)
		}
	}
}

func TestGameCompleteOnFinalLevel(t *testing.T) {
	s := newRunningState(7)
	s.Level = s.MaxLevel()
	s.Dots = make(Dots)
	s.Tick(16)
	s.NextLevel()
	if s.Status != StatusGameComplete {
		t.Fatalf("status = %v, want game_complete", s.Status)
	}
	// nextLevel out of position stays a no-op.
	s.NextLevel()
	if s.Status != StatusGameComplete {
		t.Error("nextLevel acted outside level_complete")
	}
}

func TestResetPreservesHighScore(t *testing.T) {
	s := newRunningState(7)
	s.Players[0].PlaceAt(Tile{X: 1, Y: 1})
	s.Tick(1)
	if s.HighScore == 0 {
		t.Fatal("setup failed to score")
	}
	high := s.HighScore

	s.ResetGame()
	if s.Status != StatusModeSelect || s.Mode != ModeUnset || s.Difficulty != DifficultyMedium {
		t.Errorf("reset left status=%v mode=%v difficulty=%v", s.Status, s.Mode, s.Difficulty)
	}
	if s.HighScore != high {
		t.Errorf("high score = %d, want preserved %d", s.HighScore, high)
	}
	if s.Players[0].Score != 0 || s.Players[0].Lives != DefaultTuning().Lives {
		t.Error("player state not reset")
	}
	if s.Level != 1 || s.ElapsedTime != 0 || s.FrameCount != 0 {
		t.Error("progress counters not reset")
	}
}

func TestNegativeDeltaClamped(t *testing.T) {
	s := newRunningState(7)
	s.Tick(-100)
	if s.ElapsedTime != 0 {
		t.Errorf("elapsed = %v, negative dt must clamp to 0", s.ElapsedTime)
	}
	if s.FrameCount != 1 {
		t.Errorf("frames = %d, want 1", s.FrameCount)
	}
}

func TestSetGameModePreconditions(t *testing.T) {
	s := newRunningState(7)
	s.SetGameMode(ModeTwoPlayer)
	if s.Mode != ModeSingle || s.Status != StatusRunning {
		t.Error("setGameMode acted while running")
	}
	s.SetDifficulty(DifficultyHard)
	if s.Difficulty != DifficultyMedium {
		t.Error("setDifficulty acted while running")
	}
}

func TestPlayer2IntentIgnoredInSingleMode(t *testing.T) {
	s := newRunningState(7)
	s.SetPlayerIntent(2, DirUp)
	if s.Players[1].DesiredDir != DirNone {
		t.Error("player 2 intent accepted in single mode")
	}
	s.SetPlayerIntent(1, DirLeft)
	if s.Players[0].DesiredDir != DirLeft {
		t.Error("player 1 intent lost")
	}
}

func TestDifficultySpeedScaling(t *testing.T) {
	s := newRunningState(7)
	s.Difficulty = DifficultyEasy
	easy := s.playerSpeed()
	s.Difficulty = DifficultyHard
	hard := s.playerSpeed()
	if easy >= hard {
		t.Errorf("easy speed %v should be below hard speed %v", easy, hard)
	}
}

func TestNoActorEntersWalls(t *testing.T) {
	s := newRunningState(7)
	dirs := []Direction{DirLeft, DirUp, DirRight, DirDown}
	for i := 0; i < 600; i++ {
		s.SetPlayerIntent(1, dirs[(i/37)%len(dirs)])
		s.Tick(16)
		if s.Status != StatusRunning {
			break
		}
		if s.Maze.IsWall(s.Players[0].Tile()) {
			t.Fatalf("player inside a wall at frame %d", i)
		}
		for _, g := range s.Ghosts {
			if s.Maze.IsWall(g.Tile()) {
				t.Fatalf("%v inside a wall at frame %d", g.Name, i)
			}
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() Snapshot {
		s := New(100, 42)
		s.SetGameMode(ModeSingle)
		s.StartGame()
		s.triggerFright() // exercise the seeded frightened RNG
		dirs := []Direction{DirLeft, DirDown, DirRight, DirUp}
		for i := 0; i < 300; i++ {
			s.SetPlayerIntent(1, dirs[(i/50)%len(dirs)])
			s.Tick(16)
		}
		return s.Snapshot()
	}
	if run() != run() {
		t.Error("identical inputs diverged")
	}
}
