package engine

// TileSize is the width of one maze tile in pixels. Actor positions are
// continuous pixel coordinates; a tile index is floor(pos/TileSize).
const TileSize = 16.0

// Maze dimensions in tiles. Exposed for renderers.
const (
	MazeWidth  = 28
	MazeHeight = 31
)

// Timer durations in milliseconds.
const (
	// FrightenedDuration is how long ghosts stay edible after a power
	// pellet. The live timer; there is no separate vulnerability alias.
	FrightenedDuration = 8000.0

	// FrightenedFlashTime is the remaining-time threshold below which
	// the renderer should flash frightened ghosts.
	FrightenedFlashTime = 2000.0

	// DeathAnimationDuration is how long the world stays frozen in the
	// dying state before respawn or game over.
	DeathAnimationDuration = 1500.0
)

// MaxLevel is the last playable level; clearing it ends the game with
// StatusGameComplete instead of advancing.
const MaxLevel = 5

// Point values.
const (
	DotPoints         = 10
	PowerPelletPoints = 50
)

// GhostEatPoints is the score awarded for the n-th ghost eaten during a
// single frightened episode. Eating more ghosts than entries clamps to
// the last value.
var GhostEatPoints = [4]int{200, 400, 800, 1600}

// Base speeds in pixels per millisecond before difficulty and level scaling.
const (
	PlayerBaseSpeed = 0.120
	GhostBaseSpeed  = 0.105

	frightenedSpeedFactor = 0.5
	eatenSpeedFactor      = 2.0

	// levelSpeedStep is the per-level speed bonus past level 1.
	levelSpeedStep = 0.04
)

// Movement tuning.
const (
	// preTurnTolerance is the pre-turn window around a tile centre, in
	// pixels. Must exceed the largest per-tick step so a queued turn is
	// never skipped over.
	preTurnTolerance = 3.0

	// collisionRadius is the actor body radius used for overlap tests.
	collisionRadius = TileSize/2 - 2
)

// ghostReleaseDelays is how long after a level start or respawn each
// ghost leaves the house, in milliseconds, indexed by GhostName.
var ghostReleaseDelays = [4]float64{0, 2000, 4000, 6000}

// clydeShyDistance is the tile distance below which Clyde retreats to
// its scatter corner instead of chasing.
const clydeShyDistance = 8.0
