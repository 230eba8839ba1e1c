package tetra

import "math/rand"

// Rules holds the tunable rule set for the engine. Values come from the
// config package; DefaultRules matches the classic rules.
type Rules struct {
	InitialSpeedMs int    // Gravity interval at level 1
	SpeedFloorMs   int    // Gravity interval lower bound
	SpeedScaleMs   int    // Inverse-level term: speed = floor + scale/level
	ClearDelayMs   int    // Delay between row detection and compaction
	RowsPerLevel   int    // Cleared rows needed to advance a level
	SoftDropScore  int    // Points per soft-dropped row
	HardDropFactor int    // Points per hard-dropped row
	ClearScores    [4]int // Points for 1..4 rows, multiplied by level
}

// DefaultRules returns the classic rule set.
func DefaultRules() Rules {
	return Rules{
		InitialSpeedMs: 1000,
		SpeedFloorMs:   10,
		SpeedScaleMs:   990,
		ClearDelayMs:   100,
		RowsPerLevel:   10,
		SoftDropScore:  1,
		HardDropFactor: 2,
		ClearScores:    [4]int{100, 300, 500, 800},
	}
}

// Engine is the falling-block game state machine: the well, the active
// piece, the bag, and the scoring/leveling counters. It is purely
// synchronous; every operation either commits and returns success or leaves
// the state untouched. The caller owns all timing, including when gravity
// ticks fire and when pending rows are compacted.
type Engine struct {
	rules Rules
	well  Well
	bag   *Bag

	// Active piece pose. (x, y) is the top-left of the 4x4 bounding box.
	kind   Kind
	rot    int
	x, y   int
	ghostY int

	score     int
	level     int
	levelRows int // Rows cleared toward the next level
	lines     int
	speedMs   int
	levelUp   bool // Edge-triggered, cleared by ConsumeLevelUp
	gameOver  bool

	// Rows detected full, awaiting compaction. Ordered top to bottom,
	// at most MaxClearedRows entries.
	pending []int

	stats [KindCount]int
}

// NewEngine creates an engine with the given rules and a fresh game.
func NewEngine(rules Rules, rng *rand.Rand) *Engine {
	e := &Engine{rules: rules}
	e.Reset(rng)
	return e
}

// Reset starts a new game: empty well, fresh bag, level 1, first spawn.
func (e *Engine) Reset(rng *rand.Rand) {
	e.well.Reset()
	e.bag = NewBag(rng)
	e.score = 0
	e.level = 1
	e.levelRows = 0
	e.lines = 0
	e.speedMs = e.rules.InitialSpeedMs
	e.levelUp = false
	e.gameOver = false
	e.pending = nil
	e.stats = [KindCount]int{}
	e.spawn()
	e.computeGhost()
}

// SetLevel overrides the starting level and its gravity interval.
// Intended for use right after Reset.
func (e *Engine) SetLevel(level int) {
	if level < 1 {
		level = 1
	}
	e.level = level
	e.levelRows = 0
	if level > 1 {
		e.speedMs = e.rules.SpeedFloorMs + e.rules.SpeedScaleMs/level
	} else {
		e.speedMs = e.rules.InitialSpeedMs
	}
}

// collides reports whether the piece at the given pose has an occupied cell
// outside the well bounds or on an occupied well cell. This is the single
// legality check gating every state transition.
func (e *Engine) collides(kind Kind, rot, x, y int) bool {
	shape := ShapeOf(kind, rot)
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			if shape[dy][dx] == 0 {
				continue
			}
			cx, cy := x+dx, y+dy
			if cx < 0 || cx >= WellWidth || cy < 0 || cy >= WellHeight {
				return true
			}
			if e.well.cells[cy][cx] != 0 {
				return true
			}
		}
	}
	return false
}

// spawn replaces the active piece with the next bag kind at the top-center
// in the default rotation. It never checks collision itself; the next
// gravity tick decides game over.
func (e *Engine) spawn() {
	e.kind = e.bag.Next()
	e.stats[e.kind]++
	e.rot = 0
	e.x = WellWidth/2 - 2
	e.y = 0
}

// computeGhost scans downward from the current y for the lowest
// non-colliding row at the current x and rotation.
func (e *Engine) computeGhost() {
	y := e.y
	for ; y < WellHeight; y++ {
		if e.collides(e.kind, e.rot, e.x, y) {
			break
		}
	}
	e.ghostY = y - 1
}

// Move translates the active piece by (dx, dy) and returns whether it
// committed. Rejected moves leave the pose completely unchanged.
func (e *Engine) Move(dx, dy int) bool {
	if e.gameOver {
		return false
	}
	if e.collides(e.kind, e.rot, e.x+dx, e.y+dy) {
		return false
	}
	e.x += dx
	e.y += dy
	e.computeGhost()
	return true
}

// Rotate turns the active piece clockwise and returns whether it committed.
// A rotation that collides simply fails; there is no wall-kick retry.
func (e *Engine) Rotate() bool {
	if e.gameOver {
		return false
	}
	rot := (e.rot + 1) % Rotations
	if e.collides(e.kind, rot, e.x, e.y) {
		return false
	}
	e.rot = rot
	e.computeGhost()
	return true
}

// SoftDrop moves the piece down one row, scoring a point on success.
func (e *Engine) SoftDrop() bool {
	if !e.Move(0, 1) {
		return false
	}
	e.score += e.rules.SoftDropScore
	return true
}

// HardDrop teleports the piece to its ghost position, scores per row
// descended, and forces the gravity update so the piece locks immediately.
// Returns the number of rows descended. A piece that overlaps the stack at
// spawn has ghostY above its own y; it descends nowhere and the forced tick
// ends the game.
func (e *Engine) HardDrop() int {
	if e.gameOver {
		return 0
	}
	dropped := e.ghostY - e.y
	if dropped > 0 {
		e.score += e.rules.HardDropFactor * dropped
		e.y = e.ghostY
	} else {
		dropped = 0
	}
	e.Tick()
	return dropped
}

// Tick applies one gravity step. If the piece can move down, the tick ends
// there. If it cannot and is still on the spawn row, the game is over.
// Otherwise the piece locks into the well, a new piece spawns, and full rows
// are detected and scored (compaction is deferred to Compact).
func (e *Engine) Tick() {
	if e.gameOver {
		return
	}
	if e.Move(0, 1) {
		return
	}
	if e.y == 0 {
		e.gameOver = true
		return
	}
	e.lock()
	e.spawn()
	e.detectRows()
	e.computeGhost()
}

// lock writes the active piece's cells into the well at its current pose.
func (e *Engine) lock() {
	shape := ShapeOf(e.kind, e.rot)
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 4; dx++ {
			if shape[dy][dx] != 0 {
				e.well.cells[e.y+dy][e.x+dx] = shape[dy][dx]
			}
		}
	}
}

// detectRows records full rows into the pending set and awards score and
// level progress for the detected count. Points are awarded on detection,
// before removal; this ordering affects level-up timing and is deliberate.
func (e *Engine) detectRows() {
	rows := e.well.FullRows()
	if len(rows) == 0 {
		return
	}
	e.pending = rows
	e.score += e.rules.ClearScores[len(rows)-1] * e.level
	e.lines += len(rows)
	e.levelRows += len(rows)
	if e.rules.RowsPerLevel > 0 && e.levelRows >= e.rules.RowsPerLevel {
		e.level++
		e.levelRows -= e.rules.RowsPerLevel
		e.speedMs = e.rules.SpeedFloorMs + e.rules.SpeedScaleMs/e.level
		e.levelUp = true
	}
}

// Compact removes the pending rows from the well and empties the pending
// set. The caller invokes this after its clear-delay window elapses.
func (e *Engine) Compact() {
	if len(e.pending) == 0 {
		return
	}
	e.well.Compact(e.pending)
	e.pending = nil
	e.computeGhost()
}

// HasPending reports whether detected rows are awaiting compaction.
func (e *Engine) HasPending() bool {
	return len(e.pending) > 0
}

// PendingRows returns a copy of the row indices awaiting compaction,
// ordered top to bottom.
func (e *Engine) PendingRows() []int {
	if len(e.pending) == 0 {
		return nil
	}
	rows := make([]int, len(e.pending))
	copy(rows, e.pending)
	return rows
}

// ConsumeLevelUp returns whether a level-up occurred since the last call and
// clears the signal.
func (e *Engine) ConsumeLevelUp() bool {
	v := e.levelUp
	e.levelUp = false
	return v
}

// Piece returns the active piece's kind and pose.
func (e *Engine) Piece() (kind Kind, rot, x, y int) {
	return e.kind, e.rot, e.x, e.y
}

// GhostY returns the row the active piece would rest on after a hard drop.
func (e *Engine) GhostY() int {
	return e.ghostY
}

// Preview returns the next kind the bag will deal.
func (e *Engine) Preview() Kind {
	return e.bag.Preview()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the current level, starting at 1.
func (e *Engine) Level() int {
	return e.level
}

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int {
	return e.lines
}

// SpeedMs returns the current gravity interval in milliseconds.
func (e *Engine) SpeedMs() int {
	return e.speedMs
}

// GameOver reports whether the terminal state has been reached.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// Stats returns the per-kind spawn counts for this game.
func (e *Engine) Stats() [KindCount]int {
	return e.stats
}

// WellCell returns the color value of a well cell, 0 when empty or out of
// bounds.
func (e *Engine) WellCell(x, y int) uint8 {
	return e.well.Cell(x, y)
}

// WellSnapshot returns a read-only copy of the well grid.
func (e *Engine) WellSnapshot() [WellHeight][WellWidth]uint8 {
	return e.well.Snapshot()
}
