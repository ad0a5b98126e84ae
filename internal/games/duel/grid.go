package duel

// Grid dimensions in paddle-local pixels. One grid cell is one pixel of
// the right paddle, so the grid matches the paddle's 10x100 footprint.
const (
	GridWidth  = 10
	GridHeight = 100
)

// PaddleGrid owns the per-pixel health of the destructible right paddle.
// Cells hold values in [0.0, 1.0]; a cell is solid while its value is
// above zero. Damage is applied by edge erosion: every confirmed hit
// removes full rows from both the top and the bottom across all columns.
type PaddleGrid struct {
	cells         [][]float64 // indexed [col][row], allocated lazily
	hitsRemaining int
	topRemoved    int // rows fully zeroed from the top edge
	bottomRemoved int // rows fully zeroed from the bottom edge
	maxHits       int
}

// NewPaddleGrid creates a grid that absorbs hitPoints confirmed hits.
// Cell storage is allocated on first access.
func NewPaddleGrid(hitPoints int) *PaddleGrid {
	if hitPoints <= 0 {
		hitPoints = 1
	}
	return &PaddleGrid{
		hitsRemaining: hitPoints,
		maxHits:       hitPoints,
	}
}

// ensure lazily allocates and fills the cell matrix. Reads of an
// uninitialized grid see a fully intact paddle instead of failing.
func (pg *PaddleGrid) ensure() {
	if pg.cells != nil {
		return
	}
	pg.cells = make([][]float64, GridWidth)
	for x := range pg.cells {
		pg.cells[x] = make([]float64, GridHeight)
		for y := range pg.cells[x] {
			pg.cells[x][y] = 1.0
		}
	}
}

// Reset restores the grid to a fully intact paddle. Storage is dropped
// and reallocated on the next access.
func (pg *PaddleGrid) Reset() {
	pg.cells = nil
	pg.hitsRemaining = pg.maxHits
	pg.topRemoved = 0
	pg.bottomRemoved = 0
}

// IsSolid reports whether the cell at (col, row) still blocks the ball.
// Out-of-range coordinates read as not solid.
func (pg *PaddleGrid) IsSolid(col, row int) bool {
	if col < 0 || col >= GridWidth || row < 0 || row >= GridHeight {
		return false
	}
	pg.ensure()
	return pg.cells[col][row] > 0
}

// Cell returns the health value at (col, row), or 0 when out of range.
func (pg *PaddleGrid) Cell(col, row int) float64 {
	if col < 0 || col >= GridWidth || row < 0 || row >= GridHeight {
		return 0
	}
	pg.ensure()
	return pg.cells[col][row]
}

// ApplyHit consumes one hit point and erodes the paddle from both edges.
// The column only gates whether the hit counts; the damage itself is
// global and symmetric. Returns false when the hit is rejected (no hit
// points left or column out of range).
func (pg *PaddleGrid) ApplyHit(col int) bool {
	pg.ensure()
	if pg.hitsRemaining == 0 || col < 0 || col >= GridWidth {
		return false
	}
	pg.hitsRemaining--

	rowsPerHit := GridHeight / pg.maxHits
	rowsPerEdge := rowsPerHit / 2
	mid := GridHeight / 2

	// Erode from the top, never past the midline.
	newTop := pg.topRemoved + rowsPerEdge
	if newTop > mid {
		newTop = mid
	}
	for x := 0; x < GridWidth; x++ {
		for y := pg.topRemoved; y < newTop; y++ {
			pg.cells[x][y] = 0
		}
	}
	pg.topRemoved = newTop

	// Erode symmetrically from the bottom.
	newBottom := pg.bottomRemoved + rowsPerEdge
	if newBottom > mid {
		newBottom = mid
	}
	for x := 0; x < GridWidth; x++ {
		for y := GridHeight - newBottom; y < GridHeight-pg.bottomRemoved; y++ {
			pg.cells[x][y] = 0
		}
	}
	pg.bottomRemoved = newBottom

	return true
}

// HitsRemaining returns how many more hits the paddle can absorb.
func (pg *PaddleGrid) HitsRemaining() int {
	return pg.hitsRemaining
}

// EdgesRemoved returns the number of rows eroded from each edge.
func (pg *PaddleGrid) EdgesRemoved() (top, bottom int) {
	return pg.topRemoved, pg.bottomRemoved
}

// Destroyed reports whether every hit point has been consumed.
func (pg *PaddleGrid) Destroyed() bool {
	return pg.hitsRemaining == 0
}

// restore rebuilds the grid from erosion counters, for snapshot replay.
// Damage is always edge-symmetric, so the counters fully determine the
// cell matrix.
func (pg *PaddleGrid) restore(hitsRemaining, top, bottom int) {
	mid := GridHeight / 2
	if top < 0 {
		top = 0
	} else if top > mid {
		top = mid
	}
	if bottom < 0 {
		bottom = 0
	} else if bottom > mid {
		bottom = mid
	}

	pg.cells = nil
	pg.ensure()
	for x := 0; x < GridWidth; x++ {
		for y := 0; y < top; y++ {
			pg.cells[x][y] = 0
		}
		for y := GridHeight - bottom; y < GridHeight; y++ {
			pg.cells[x][y] = 0
		}
	}

	pg.hitsRemaining = hitsRemaining
	pg.topRemoved = top
	pg.bottomRemoved = bottom
}
