package tetra

// Snapshot captures the complete game state for determinism testing and
// replay. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Score   int
	Level   int
	Lines   int
	SpeedMs int

	Kind    int
	Rot     int
	X       int
	Y       int
	GhostY  int
	Preview int

	PendingRows []int
	GameOver    bool
	Paused      bool

	// Well cells flattened row-major, one int per cell color value.
	WellData []int

	// Per-kind spawn counts.
	StatsData []int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	kind, rot, x, y := g.engine.Piece()
	grid := g.engine.WellSnapshot()

	wellData := make([]int, WellWidth*WellHeight)
	for gy := 0; gy < WellHeight; gy++ {
		for gx := 0; gx < WellWidth; gx++ {
			wellData[gy*WellWidth+gx] = int(grid[gy][gx])
		}
	}

	stats := g.engine.Stats()
	statsData := make([]int, KindCount)
	for i := range stats {
		statsData[i] = stats[i]
	}

	return Snapshot{
		Tick:        g.tick,
		Score:       g.engine.Score(),
		Level:       g.engine.Level(),
		Lines:       g.engine.Lines(),
		SpeedMs:     g.engine.SpeedMs(),
		Kind:        int(kind),
		Rot:         rot,
		X:           x,
		Y:           y,
		GhostY:      g.engine.GhostY(),
		Preview:     int(g.engine.Preview()),
		PendingRows: g.engine.PendingRows(),
		GameOver:    g.engine.GameOver(),
		Paused:      g.paused,
		WellData:    wellData,
		StatsData:   statsData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Level)
	h = h*31 + uint64(snap.Lines)
	h = h*31 + uint64(snap.SpeedMs)
	h = h*31 + uint64(snap.Kind)
	h = h*31 + uint64(snap.Rot)
	h = h*31 + uint64(snap.X)
	h = h*31 + uint64(snap.Y)
	h = h*31 + uint64(snap.GhostY)
	h = h*31 + uint64(snap.Preview)
	if snap.GameOver {
		h = h*31 + 1
	}
	for _, r := range snap.PendingRows {
		h = h*31 + uint64(r)
	}
	for _, v := range snap.WellData {
		h = h*31 + uint64(v)
	}
	for _, v := range snap.StatsData {
		h = h*31 + uint64(v)
	}
	return h
}
