package engine

import "math/rand"

// Status is the match lifecycle state.
type Status int

const (
	StatusModeSelect Status = iota
	StatusIdle
	StatusRunning
	StatusPaused
	StatusDying
	StatusGameOver
	StatusLevelComplete
	StatusGameComplete
)

func (s Status) String() string {
	switch s {
	case StatusModeSelect:
		return "mode_select"
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusDying:
		return "dying"
	case StatusGameOver:
		return "game_over"
	case StatusLevelComplete:
		return "level_complete"
	case StatusGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// GameMode selects single- or two-player play.
type GameMode int

const (
	ModeUnset GameMode = iota
	ModeSingle
	ModeTwoPlayer
)

func (m GameMode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeTwoPlayer:
		return "two_player"
	default:
		return "unset"
	}
}

// Difficulty scales actor speeds.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "medium"
	}
}

func (d Difficulty) speedFactor() float64 {
	switch d {
	case DifficultyEasy:
		return 0.9
	case DifficultyHard:
		return 1.1
	default:
		return 1.0
	}
}

// Player is one playable actor with its own score and lives. In
// two-player mode a player whose lives run out goes inactive while the
// other keeps playing.
type Player struct {
	Actor
	Score  int
	Lives  int
	Active bool
}

// Config holds the engine's tuning knobs. Zero values are not usable;
// start from DefaultTuning.
type Config struct {
	PlayerSpeed  float64 // px/ms before difficulty and level scaling
	GhostSpeed   float64
	Lives        int
	FrightenedMs float64
	FlashMs      float64
	DeathMs      float64
	MaxLevel     int
}

// DefaultTuning returns the canonical tuning values.
func DefaultTuning() Config {
	return Config{
		PlayerSpeed:  PlayerBaseSpeed,
		GhostSpeed:   GhostBaseSpeed,
		Lives:        3,
		FrightenedMs: FrightenedDuration,
		FlashMs:      FrightenedFlashTime,
		DeathMs:      DeathAnimationDuration,
		MaxLevel:     MaxLevel,
	}
}

// State is the whole game world. It is advanced exclusively through
// Tick and the action methods; two states fed the same actions and
// deltas evolve identically (frightened randomness comes from the
// seeded RNG carried here).
type State struct {
	Status     Status
	Mode       GameMode
	Difficulty Difficulty

	HighScore int
	Level     int

	ElapsedTime float64 // ms, accumulates only while RUNNING or DYING
	FrameCount  int

	Maze *Maze
	Dots Dots

	Players [2]*Player
	Ghosts  [4]*Ghost

	GhostsVulnerable   bool
	VulnerabilityTimer float64 // ms remaining
	GhostsEaten        int     // within the current frightened episode

	DeathTimer float64 // ms remaining, nonzero only while DYING

	dyingPlayer int
	phaseIndex  int
	phaseTimer  float64
	levelTime   float64 // ms since level start, drives house releases

	rng *rand.Rand
	cfg Config
}

// New builds the initial state carrying a previously persisted high
// score. The seed fixes the frightened-mode RNG.
func New(persistedHighScore int, seed int64) *State {
	return NewWithTuning(DefaultTuning(), persistedHighScore, seed)
}

// NewWithTuning is New with explicit tuning values.
func NewWithTuning(cfg Config, persistedHighScore int, seed int64) *State {
	s := &State{
		Status:     StatusModeSelect,
		Mode:       ModeUnset,
		Difficulty: DifficultyMedium,
		HighScore:  persistedHighScore,
		Level:      1,
		Maze:       NewMaze(),
		rng:        rand.New(rand.NewSource(seed)),
		cfg:        cfg,
	}
	for i := range s.Players {
		s.Players[i] = &Player{Lives: cfg.Lives}
	}
	for i := range s.Ghosts {
		s.Ghosts[i] = &Ghost{
			Name:          GhostName(i),
			ScatterTarget: scatterTargets[i],
		}
	}
	s.initLevel()
	return s
}

// initLevel repopulates dots and puts every actor on its spawn tile.
// Score, lives, level and high score are untouched.
func (s *State) initLevel() {
	s.Dots = NewDots(s.Maze)
	s.resetRound()
}

// resetRound resets actor positions, the frightened episode and the
// scatter/chase clock. Dots are kept, so it doubles as the post-death
// respawn.
func (s *State) resetRound() {
	s.phaseIndex = 0
	s.phaseTimer = 0
	s.levelTime = 0
	s.GhostsVulnerable = false
	s.VulnerabilityTimer = 0
	s.GhostsEaten = 0
	s.DeathTimer = 0

	for i, p := range s.Players {
		p.PlaceAt(playerSpawnTiles[i])
	}
	for i, g := range s.Ghosts {
		g.Mode = GhostScatter
		if g.Name == Blinky {
			g.PlaceAt(blinkySpawnTile)
			g.InHouse = false
			g.Released = true
			g.Dir = DirLeft
		} else {
			g.PlaceAt(houseSpawnTiles[i])
			g.InHouse = true
			g.Released = false
		}
	}
}

// --- action surface -------------------------------------------------

// SetGameMode picks single- or two-player play. Valid only in
// MODE_SELECT or IDLE; moves the state to IDLE.
func (s *State) SetGameMode(m GameMode) {
	if m == ModeUnset {
		return
	}
	if s.Status != StatusModeSelect && s.Status != StatusIdle {
		return
	}
	s.Mode = m
	s.Players[0].Active = true
	s.Players[1].Active = m == ModeTwoPlayer
	s.Status = StatusIdle
}

// SetDifficulty is valid only in MODE_SELECT or IDLE.
func (s *State) SetDifficulty(d Difficulty) {
	if s.Status != StatusModeSelect && s.Status != StatusIdle {
		return
	}
	s.Difficulty = d
}

// StartGame begins play; a no-op unless the state is IDLE.
func (s *State) StartGame() {
	if s.Status != StatusIdle || s.Mode == ModeUnset {
		return
	}
	s.Status = StatusRunning
}

// PauseGame is a no-op outside RUNNING.
func (s *State) PauseGame() {
	if s.Status == StatusRunning {
		s.Status = StatusPaused
	}
}

// ResumeGame is a no-op outside PAUSED.
func (s *State) ResumeGame() {
	if s.Status == StatusPaused {
		s.Status = StatusRunning
	}
}

// ResetGame rebuilds everything except the high score and returns to
// mode selection with default difficulty.
func (s *State) ResetGame() {
	s.Status = StatusModeSelect
	s.Mode = ModeUnset
	s.Difficulty = DifficultyMedium
	s.Level = 1
	s.ElapsedTime = 0
	s.FrameCount = 0
	for i := range s.Players {
		s.Players[i] = &Player{Lives: s.cfg.Lives}
	}
	s.initLevel()
}

// NextLevel advances past a cleared level. Valid only in
// LEVEL_COMPLETE; on the final level it ends the game instead.
func (s *State) NextLevel() {
	if s.Status != StatusLevelComplete {
		return
	}
	if s.Level >= s.cfg.MaxLevel {
		s.Status = StatusGameComplete
		return
	}
	s.Level++
	s.initLevel()
	s.Status = StatusRunning
}

// SetPlayerIntent buffers a player's next turn. Player 2 intents are
// ignored outside two-player mode.
func (s *State) SetPlayerIntent(player int, d Direction) {
	switch player {
	case 1:
		s.Players[0].DesiredDir = d
	case 2:
		if s.Mode == ModeTwoPlayer {
			s.Players[1].DesiredDir = d
		}
	}
}

// AreGhostsFlashing reports whether the frightened episode is in its
// final stretch, for renderer cues.
func (s *State) AreGhostsFlashing() bool {
	return s.GhostsVulnerable && s.VulnerabilityTimer <= s.cfg.FlashMs
}

// MaxLevel returns the configured final level.
func (s *State) MaxLevel() int {
	return s.cfg.MaxLevel
}

// --- tick -----------------------------------------------------------

// Tick advances the world by dt milliseconds. Outside RUNNING and
// DYING it is the identity. Negative deltas are clamped to zero.
func (s *State) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	switch s.Status {
	case StatusDying:
		s.DeathTimer -= dt
		if s.DeathTimer <= 0 {
			s.finishDeath()
		}
	case StatusRunning:
		s.step(dt)
	default:
		return
	}
	s.ElapsedTime += dt
	s.FrameCount++
}

// step is the RUNNING-state reducer body. Order is fixed: players move
// and eat, the frightened timer updates, the scatter/chase schedule and
// house releases advance, ghosts move, collisions resolve, then the
// level-clear check runs.
func (s *State) step(dt float64) {
	powerCollected := false
	for _, p := range s.activePlayers() {
		p.Speed = s.playerSpeed()
		p.Move(s.Maze, dt)
		points, power := s.Dots.CollectAt(p.X, p.Y)
		if points > 0 {
			s.addPoints(p, points)
		}
		if power {
			s.triggerFright()
			powerCollected = true
		}
	}

	// A pellet eaten this tick starts the timer at its full value; the
	// first decrement happens on the following tick.
	if s.GhostsVulnerable && !powerCollected {
		s.VulnerabilityTimer -= dt
		if s.VulnerabilityTimer <= 0 {
			s.endFright()
		}
	}

	if !s.GhostsVulnerable {
		s.advanceSchedule(dt)
	}
	s.updateReleases(dt)

	for _, g := range s.Ghosts {
		s.updateGhost(g, dt)
	}

	if s.resolveCollisions() {
		return
	}

	if s.Dots.AllCollected() {
		s.Status = StatusLevelComplete
	}
}

// activePlayers returns the players currently in play, player 1 first.
func (s *State) activePlayers() []*Player {
	out := make([]*Player, 0, 2)
	for _, p := range s.Players {
		if p.Active {
			out = append(out, p)
		}
	}
	return out
}

// nearestActivePlayer returns the closest in-play player to the ghost,
// or nil when no one is in play.
func (s *State) nearestActivePlayer(g *Ghost) *Player {
	var best *Player
	bestDist := 0.0
	for _, p := range s.activePlayers() {
		dx := p.X - g.X
		dy := p.Y - g.Y
		d := dx*dx + dy*dy
		if best == nil || d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func (s *State) difficultyFactor() float64 {
	return s.Difficulty.speedFactor()
}

// levelFactor speeds everything up slightly on each level.
func (s *State) levelFactor() float64 {
	return 1 + levelSpeedStep*float64(s.Level-1)
}

func (s *State) playerSpeed() float64 {
	return s.cfg.PlayerSpeed * s.difficultyFactor() * s.levelFactor()
}

// addPoints credits a player and keeps the high score in sync.
func (s *State) addPoints(p *Player, points int) {
	p.Score += points
	if p.Score > s.HighScore {
		s.HighScore = p.Score
	}
}

// triggerFright starts (or restarts) a frightened episode: every ghost
// not already heading home turns frightened and reverses.
func (s *State) triggerFright() {
	s.GhostsVulnerable = true
	s.VulnerabilityTimer = s.cfg.FrightenedMs
	s.GhostsEaten = 0
	for _, g := range s.Ghosts {
		if g.Mode == GhostEaten {
			continue
		}
		g.Mode = GhostFrightened
		if !g.InHouse && g.Dir != DirNone {
			g.Dir = g.Dir.Opposite()
		}
	}
}

// endFright restores frightened ghosts to whatever the schedule
// currently dictates. Eaten ghosts finish their trip home regardless.
func (s *State) endFright() {
	s.GhostsVulnerable = false
	s.VulnerabilityTimer = 0
	for _, g := range s.Ghosts {
		if g.Mode == GhostFrightened {
			g.Mode = s.scheduledMode()
		}
	}
}

// updateReleases lets ghosts out of the house on a fixed per-level
// stagger.
func (s *State) updateReleases(dt float64) {
	s.levelTime += dt
	for i, g := range s.Ghosts {
		if !g.Released && s.levelTime >= ghostReleaseDelays[i] {
			g.Released = true
		}
	}
}

// resolveCollisions handles player/ghost overlaps. Returns true when a
// fatal collision moved the state to DYING, which ends the tick early.
func (s *State) resolveCollisions() bool {
	limit := 2 * collisionRadius
	for idx, p := range s.Players {
		if !p.Active {
			continue
		}
		for _, g := range s.Ghosts {
			if g.InHouse {
				continue
			}
			dx := p.X - g.X
			dy := p.Y - g.Y
			if dx*dx+dy*dy > limit*limit {
				continue
			}
			switch g.Mode {
			case GhostEaten:
				// already just eyes, no effect
			case GhostFrightened:
				s.eatGhost(p, g)
			default:
				s.startDying(idx)
				return true
			}
		}
	}
	return false
}

// eatGhost scores a frightened ghost and sends it home. Point values
// double per ghost within one episode, clamped at the last.
func (s *State) eatGhost(p *Player, g *Ghost) {
	n := s.GhostsEaten
	if n >= len(GhostEatPoints) {
		n = len(GhostEatPoints) - 1
	}
	s.addPoints(p, GhostEatPoints[n])
	s.GhostsEaten++
	g.Mode = GhostEaten
}

// startDying enters the death animation: the hit player loses a life
// and everything else freezes until the timer runs out.
func (s *State) startDying(playerIdx int) {
	s.Status = StatusDying
	s.dyingPlayer = playerIdx
	s.Players[playerIdx].Lives--
	s.DeathTimer = s.cfg.DeathMs
}

// finishDeath ends the death animation: a player out of lives drops
// out; when no one is left the game is over, otherwise the round
// restarts with everyone back on their spawn tiles.
func (s *State) finishDeath() {
	s.DeathTimer = 0
	p := s.Players[s.dyingPlayer]
	if p.Lives <= 0 {
		p.Active = false
	}
	if len(s.activePlayers()) == 0 {
		s.Status = StatusGameOver
		return
	}
	s.resetRound()
	s.Status = StatusRunning
}
