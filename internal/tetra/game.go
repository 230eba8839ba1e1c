package tetra

import (
	"fmt"
	"math/rand"

	"github.com/tetraterm/tetraterm/internal/config"
	"github.com/tetraterm/tetraterm/internal/core"
	"github.com/tetraterm/tetraterm/internal/registry"
)

// Game adapts the engine to the platform's registry.Game interface. It owns
// the collaborator concerns the engine deliberately does not: wall-clock
// timing (gravity interval and clear delay via a millisecond accumulator),
// the pause flag, input mapping, and rendering.
type Game struct {
	engine *Engine
	rules  Rules
	rng    *rand.Rand

	tick      uint64
	tickRate  int
	msPerTick float64
	gravityMs float64
	clearMs   float64

	paused           bool
	showStats        bool
	tooSmall         bool
	gameOverReported bool

	screenW int
	screenH int
}

// Package-level variables for config/difficulty, set by the CLI before the
// game is created.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level. 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// New creates a new game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetra", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetra"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetra"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tcfg, err := config.LoadTetra(configPath)
	if err != nil {
		tcfg = config.DefaultTetraConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetraPreset(&tcfg, config.DifficultyPreset(difficultyPreset))
	}
	g.rules = rulesFromConfig(tcfg)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(g.rules, g.rng)

	startLevel := tcfg.Leveling.StartLevel
	if selectedStartLevel > 0 {
		startLevel = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}
	if startLevel > 1 {
		g.engine.SetLevel(startLevel)
	}

	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.msPerTick = 1000.0 / float64(g.tickRate)
	g.gravityMs = 0
	g.clearMs = 0
	g.paused = false
	g.showStats = false
	g.gameOverReported = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = g.screenW < WellWidth*2+24 || g.screenH < WellHeight+1
}

// rulesFromConfig maps the YAML configuration onto engine rules.
func rulesFromConfig(cfg config.TetraConfig) Rules {
	return Rules{
		InitialSpeedMs: cfg.Speed.InitialMs,
		SpeedFloorMs:   cfg.Speed.FloorMs,
		SpeedScaleMs:   cfg.Speed.ScaleMs,
		ClearDelayMs:   cfg.Speed.ClearDelayMs,
		RowsPerLevel:   cfg.Leveling.RowsPerLevel,
		SoftDropScore:  cfg.Scoring.SoftDrop,
		HardDropFactor: cfg.Scoring.HardDropFactor,
		ClearScores: [4]int{
			cfg.Scoring.Single,
			cfg.Scoring.Double,
			cfg.Scoring.Triple,
			cfg.Scoring.Tetris,
		},
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.engine.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Pause gates tick and input issuance; the engine has no pause state.
	if input.Has(core.ActionPause) && !g.engine.GameOver() {
		g.paused = !g.paused
	}
	if input.Has(core.ActionStats) {
		g.showStats = !g.showStats
	}

	var events []core.Event

	if !g.paused && !g.tooSmall && !g.engine.GameOver() {
		// Commands. Rejections are silent; the engine reports them as
		// booleans and the pose stays unchanged.
		if input.Has(core.ActionLeft) {
			g.engine.Move(-1, 0)
		}
		if input.Has(core.ActionRight) {
			g.engine.Move(1, 0)
		}
		if input.Has(core.ActionRotateCW) {
			g.engine.Rotate()
		}
		if input.Has(core.ActionSoftDrop) {
			g.engine.SoftDrop()
		}
		if input.Has(core.ActionHardDrop) {
			g.engine.HardDrop()
		}

		// Gravity fires once the accumulated frame time reaches the
		// level's interval.
		g.gravityMs += g.msPerTick
		if g.gravityMs >= float64(g.engine.SpeedMs()) {
			g.gravityMs = 0
			g.engine.Tick()
		}

		// Detected rows stay on screen for the clear delay, then compact.
		if g.engine.HasPending() {
			g.clearMs += g.msPerTick
			if g.clearMs >= float64(g.rules.ClearDelayMs) {
				g.clearMs = 0
				g.engine.Compact()
			}
		} else {
			g.clearMs = 0
		}
	}

	if g.engine.ConsumeLevelUp() {
		events = append(events, core.EventLevelUp)
	}
	if g.engine.GameOver() && !g.gameOverReported {
		g.gameOverReported = true
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Lines:    g.engine.Lines(),
		GameOver: g.engine.GameOver(),
		Paused:   g.paused,
	}
}

// Engine exposes the underlying engine for tests and debugging tools.
func (g *Game) Engine() *Engine {
	return g.engine
}

// PieceSpawnCounts returns this game's per-kind spawn counts keyed by the
// kind's letter name, for persistence by the platform.
func (g *Game) PieceSpawnCounts() map[string]int {
	stats := g.engine.Stats()
	counts := make(map[string]int, KindCount)
	for i := 0; i < KindCount; i++ {
		counts[Kind(i).String()] = stats[i]
	}
	return counts
}

// cellColors maps well color values to screen colors.
var cellColors = map[uint8]core.Color{
	1: core.ColorBlue,    // O
	2: core.ColorGreen,   // S
	3: core.ColorCyan,    // Z
	4: core.ColorRed,     // I
	5: core.ColorMagenta, // L
	6: core.ColorYellow,  // T
	7: core.ColorGray,    // J
}

func colorFor(v uint8) core.Color {
	if c, ok := cellColors[v]; ok {
		return c
	}
	return core.ColorWhite
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	wellX := dst.Width()/2 - WellWidth

	g.renderWell(dst, wellX)
	if !g.engine.GameOver() {
		g.renderGhost(dst, wellX)
	}
	g.renderPiece(dst, wellX)
	g.renderPreview(dst)
	g.renderHUD(dst)

	if g.showStats {
		g.renderStats(dst)
	}

	switch {
	case g.engine.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d, press R to restart", g.engine.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderWell draws the border and the locked cells. The top buffer rows are
// hidden; rows awaiting compaction flash white.
func (g *Game) renderWell(dst *core.Screen, wellX int) {
	pending := g.engine.PendingRows()
	isPending := func(y int) bool {
		for _, r := range pending {
			if r == y {
				return true
			}
		}
		return false
	}

	// Border
	for y := BufferRows; y < WellHeight; y++ {
		dst.SetCell(wellX-1, y, '│', core.ColorGray)
		dst.SetCell(wellX+WellWidth*2, y, '│', core.ColorGray)
	}
	dst.SetCell(wellX-1, WellHeight, '└', core.ColorGray)
	dst.SetCell(wellX+WellWidth*2, WellHeight, '┘', core.ColorGray)
	dst.DrawHLine(wellX, WellHeight, WellWidth*2, '─')

	// Cells, one row high and two columns wide
	for y := BufferRows; y < WellHeight; y++ {
		for x := 0; x < WellWidth; x++ {
			v := g.engine.WellCell(x, y)
			if v == 0 {
				dst.SetCell(wellX+x*2, y, ' ', core.ColorDefault)
				dst.SetCell(wellX+x*2+1, y, '.', core.ColorGray)
				continue
			}
			c := colorFor(v)
			if isPending(y) {
				c = core.ColorBrightWhite
			}
			dst.SetCell(wellX+x*2, y, '█', c)
			dst.SetCell(wellX+x*2+1, y, '█', c)
		}
	}
}

// renderGhost draws the landing preview at the ghost row.
func (g *Game) renderGhost(dst *core.Screen, wellX int) {
	kind, rot, x, _ := g.engine.Piece()
	ghostY := g.engine.GhostY()
	for _, c := range OccupiedCells(kind, rot) {
		gy := ghostY + c.DY
		if gy < BufferRows {
			continue
		}
		dst.SetCell(wellX+(x+c.DX)*2, gy, ':', colorFor(c.Color))
		dst.SetCell(wellX+(x+c.DX)*2+1, gy, ':', colorFor(c.Color))
	}
}

// renderPiece draws the active piece.
func (g *Game) renderPiece(dst *core.Screen, wellX int) {
	kind, rot, x, y := g.engine.Piece()
	for _, c := range OccupiedCells(kind, rot) {
		gy := y + c.DY
		if gy < BufferRows {
			continue
		}
		dst.SetCell(wellX+(x+c.DX)*2, gy, '█', colorFor(c.Color))
		dst.SetCell(wellX+(x+c.DX)*2+1, gy, '█', colorFor(c.Color))
	}
}

// renderPreview draws the next piece to the right of the well.
func (g *Game) renderPreview(dst *core.Screen) {
	px := dst.Width() * 3 / 4
	py := 2
	dst.DrawTextColored(px, py-1, "NEXT", core.ColorGreen)
	for _, c := range OccupiedCells(g.engine.Preview(), 0) {
		dst.SetCell(px+c.DX*2, py+c.DY, '█', colorFor(c.Color))
		dst.SetCell(px+c.DX*2+1, py+c.DY, '█', colorFor(c.Color))
	}
}

// renderHUD draws score, level and line counters plus key hints.
func (g *Game) renderHUD(dst *core.Screen) {
	sx := dst.Width() * 3 / 4
	sy := dst.Height()/2 - 2
	dst.DrawTextColored(sx, sy, "SCORE", core.ColorGreen)
	dst.DrawText(sx, sy+1, fmt.Sprintf("%d", g.engine.Score()))
	dst.DrawTextColored(sx, sy+3, "LEVEL", core.ColorGreen)
	dst.DrawText(sx, sy+4, fmt.Sprintf("%d", g.engine.Level()))
	dst.DrawTextColored(sx, sy+6, "LINES", core.ColorGreen)
	dst.DrawText(sx, sy+7, fmt.Sprintf("%d", g.engine.Lines()))

	help := "←/→ move  ↑ rotate  ↓ soft drop  space hard drop  p pause  t stats  q quit"
	dst.DrawTextColored(1, dst.Height()-1, help, core.ColorGray)
}

// renderStats draws the per-kind spawn counters on the left.
func (g *Game) renderStats(dst *core.Screen) {
	stats := g.engine.Stats()
	dst.DrawTextColored(2, 1, "PIECES", core.ColorGreen)
	for i := 0; i < KindCount; i++ {
		kind := Kind(i)
		dst.DrawText(2, 2+i, fmt.Sprintf("%s %5d", kind, stats[i]))
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := core.Clamp((w-boxW)/2, 0, w)
	boxY := core.Clamp((h-boxH)/2, 0, h)

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
