package tetra

// Well dimensions. The top two rows are the spawn buffer: part of the
// playing field for collision and clearing, hidden by the renderer.
const (
	WellWidth  = 10
	WellHeight = 22

	// BufferRows is the number of hidden spawn rows at the top of the well.
	BufferRows = 2

	// MaxClearedRows bounds the pending-clear set. A piece is at most four
	// cells tall, so more rows cannot become full in one lock; the detector
	// still clamps rather than trusting that.
	MaxClearedRows = 4
)

// Well is the playing field: a grid of color values, 0 = empty.
// Rows are indexed top (0) to bottom (WellHeight-1). It is mutated only by
// locking a piece, compacting cleared rows, and Reset.
type Well struct {
	cells [WellHeight][WellWidth]uint8
}

// Reset empties every cell.
func (w *Well) Reset() {
	w.cells = [WellHeight][WellWidth]uint8{}
}

// Cell returns the color value at (x, y), or 0 for out-of-bounds
// coordinates.
func (w *Well) Cell(x, y int) uint8 {
	if x < 0 || x >= WellWidth || y < 0 || y >= WellHeight {
		return 0
	}
	return w.cells[y][x]
}

// SetCell writes a color value at (x, y). Out-of-bounds writes are ignored.
func (w *Well) SetCell(x, y int, v uint8) {
	if x < 0 || x >= WellWidth || y < 0 || y >= WellHeight {
		return
	}
	w.cells[y][x] = v
}

// FullRows scans every row top to bottom and returns the indices of rows
// with all WellWidth cells occupied, at most MaxClearedRows of them.
func (w *Well) FullRows() []int {
	var rows []int
	for y := 0; y < WellHeight; y++ {
		full := true
		for x := 0; x < WellWidth; x++ {
			if w.cells[y][x] == 0 {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		rows = append(rows, y)
		if len(rows) == MaxClearedRows {
			break
		}
	}
	return rows
}

// Compact removes the given rows (indices ordered top to bottom) by shifting
// every row above each of them down one, inserting an empty top row.
func (w *Well) Compact(rows []int) {
	for _, r := range rows {
		if r < 0 || r >= WellHeight {
			continue
		}
		for y := r; y > 0; y-- {
			w.cells[y] = w.cells[y-1]
		}
		w.cells[0] = [WellWidth]uint8{}
	}
}

// Snapshot returns a copy of the grid for read-only consumers.
func (w *Well) Snapshot() [WellHeight][WellWidth]uint8 {
	return w.cells
}
