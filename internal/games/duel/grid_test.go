package duel

import (
	"testing"
)

func TestGridStartsIntact(t *testing.T) {
	pg := NewPaddleGrid(5)

	if pg.HitsRemaining() != 5 {
		t.Errorf("Fresh grid should have all hit points, got %d", pg.HitsRemaining())
	}
	top, bottom := pg.EdgesRemoved()
	if top != 0 || bottom != 0 {
		t.Errorf("Fresh grid should have no erosion, got %d/%d", top, bottom)
	}
	if !pg.IsSolid(0, 0) || !pg.IsSolid(GridWidth-1, GridHeight-1) {
		t.Error("Fresh grid should be solid at the corners")
	}
	if pg.Cell(0, 0) != 1.0 {
		t.Errorf("Fresh cell should be at full health, got %f", pg.Cell(0, 0))
	}
	if pg.Destroyed() {
		t.Error("Fresh grid should not be destroyed")
	}
}

func TestGridErosionIsEdgeSymmetric(t *testing.T) {
	pg := NewPaddleGrid(5)

	// Each hit peels the same number of rows off both edges
	for k := 1; k <= 5; k++ {
		if !pg.ApplyHit(k % GridWidth) {
			t.Fatalf("Hit %d should be accepted", k)
		}
		top, bottom := pg.EdgesRemoved()
		if top != 10*k || bottom != 10*k {
			t.Errorf("After %d hits edges should be %d/%d, got %d/%d", k, 10*k, 10*k, top, bottom)
		}
		if pg.HitsRemaining() != 5-k {
			t.Errorf("After %d hits %d should remain, got %d", k, 5-k, pg.HitsRemaining())
		}
	}

	if !pg.Destroyed() {
		t.Error("Grid should be destroyed after max hits")
	}
	for row := 0; row < GridHeight; row++ {
		if pg.IsSolid(0, row) {
			t.Fatalf("Row %d should be eroded after max hits", row)
		}
	}
}

func TestGridErosionSpansAllColumns(t *testing.T) {
	pg := NewPaddleGrid(5)

	// A hit in one column erodes every column's edges
	pg.ApplyHit(3)

	for col := 0; col < GridWidth; col++ {
		if pg.IsSolid(col, 0) || pg.IsSolid(col, 9) {
			t.Errorf("Column %d should lose its top rows", col)
		}
		if pg.IsSolid(col, GridHeight-1) || pg.IsSolid(col, GridHeight-10) {
			t.Errorf("Column %d should lose its bottom rows", col)
		}
		if !pg.IsSolid(col, 10) || !pg.IsSolid(col, GridHeight-11) {
			t.Errorf("Column %d should keep its inner rows", col)
		}
		if !pg.IsSolid(col, GridHeight/2) {
			t.Errorf("Column %d should keep its midline", col)
		}
	}
}

func TestGridRejectsExhaustedHits(t *testing.T) {
	pg := NewPaddleGrid(5)

	for i := 0; i < 5; i++ {
		pg.ApplyHit(0)
	}

	if pg.ApplyHit(0) {
		t.Error("Hits past the limit should be rejected")
	}
	if pg.HitsRemaining() != 0 {
		t.Errorf("Rejected hit should not change the count, got %d", pg.HitsRemaining())
	}
}

func TestGridRejectsOutOfRangeColumn(t *testing.T) {
	pg := NewPaddleGrid(5)

	if pg.ApplyHit(-1) {
		t.Error("Negative column should be rejected")
	}
	if pg.ApplyHit(GridWidth) {
		t.Error("Column past the grid should be rejected")
	}
	if pg.HitsRemaining() != 5 {
		t.Errorf("Rejected hits should not consume hit points, got %d", pg.HitsRemaining())
	}
}

func TestGridOutOfRangeReads(t *testing.T) {
	pg := NewPaddleGrid(5)

	if pg.IsSolid(-1, 0) || pg.IsSolid(0, -1) || pg.IsSolid(GridWidth, 0) || pg.IsSolid(0, GridHeight) {
		t.Error("Out-of-range cells should read as not solid")
	}
	if pg.Cell(-1, 0) != 0 || pg.Cell(0, GridHeight) != 0 {
		t.Error("Out-of-range cells should read as zero health")
	}
}

func TestGridOddHitPointsLeaveSliver(t *testing.T) {
	// 3 hit points over 100 rows erode 16 rows per edge per hit, so a
	// 4-row sliver around the midline survives a fully spent grid.
	pg := NewPaddleGrid(3)

	for i := 0; i < 3; i++ {
		if !pg.ApplyHit(0) {
			t.Fatalf("Hit %d should be accepted", i+1)
		}
	}

	top, bottom := pg.EdgesRemoved()
	if top != 48 || bottom != 48 {
		t.Errorf("Edges should erode 48 rows each, got %d/%d", top, bottom)
	}
	if !pg.Destroyed() {
		t.Error("Grid should be spent after max hits")
	}
	if !pg.IsSolid(0, 49) || !pg.IsSolid(0, 50) {
		t.Error("The midline sliver should survive")
	}
	if pg.IsSolid(0, 47) || pg.IsSolid(0, 52) {
		t.Error("Rows outside the sliver should be eroded")
	}
}

func TestGridReset(t *testing.T) {
	pg := NewPaddleGrid(5)

	pg.ApplyHit(0)
	pg.ApplyHit(1)
	pg.ApplyHit(2)

	pg.Reset()

	if pg.HitsRemaining() != 5 {
		t.Errorf("Reset should restore hit points, got %d", pg.HitsRemaining())
	}
	top, bottom := pg.EdgesRemoved()
	if top != 0 || bottom != 0 {
		t.Errorf("Reset should restore edges, got %d/%d", top, bottom)
	}
	if !pg.IsSolid(0, 0) || !pg.IsSolid(0, GridHeight-1) {
		t.Error("Reset should restore every cell")
	}
}

func TestGridRestoreFromCounters(t *testing.T) {
	pg := NewPaddleGrid(5)

	pg.restore(3, 20, 20)

	if pg.HitsRemaining() != 3 {
		t.Errorf("Restore should set hit points, got %d", pg.HitsRemaining())
	}
	top, bottom := pg.EdgesRemoved()
	if top != 20 || bottom != 20 {
		t.Errorf("Restore should set edges, got %d/%d", top, bottom)
	}
	if pg.IsSolid(0, 19) || pg.IsSolid(0, GridHeight-20) {
		t.Error("Restored erosion should read as not solid")
	}
	if !pg.IsSolid(0, 20) || !pg.IsSolid(0, GridHeight-21) {
		t.Error("Rows inside the restored erosion should stay solid")
	}
}

func TestGridZeroHitPointsClampsToOne(t *testing.T) {
	pg := NewPaddleGrid(0)

	if !pg.ApplyHit(0) {
		t.Error("A grid built with no hit points should still absorb one hit")
	}
	if pg.ApplyHit(0) {
		t.Error("The single hit point should then be spent")
	}
}
