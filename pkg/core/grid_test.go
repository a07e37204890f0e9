package core

import "testing"

func TestGridOutOfRangeIsWall(t *testing.T) {
	g := NewGridIndex(5, 5)

	cases := []GridPos{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 5, Y: 0},
		{X: 0, Y: 5},
		{X: 100, Y: 100},
	}
	for _, c := range cases {
		if got := g.At(c); got.Kind != OccWall {
			t.Errorf("At(%v) = %v, want wall", c, got.Kind)
		}
		if !g.Blocked(c) {
			t.Errorf("Blocked(%v) = false, want true", c)
		}
	}
}

func TestGridSetClear(t *testing.T) {
	g := NewGridIndex(5, 5)
	cell := GridPos{X: 2, Y: 3}

	if g.Blocked(cell) {
		t.Fatalf("fresh grid should be empty at %v", cell)
	}

	g.Set(cell, Occupant{Kind: OccBomb, Handle: 7})
	got := g.At(cell)
	if got.Kind != OccBomb || got.Handle != 7 {
		t.Fatalf("At(%v) = %+v, want bomb handle 7", cell, got)
	}

	g.Clear(cell)
	if g.Blocked(cell) {
		t.Fatalf("cell %v should be empty after Clear", cell)
	}

	// 越界写入应当被忽略而不是崩溃
	g.Set(GridPos{X: -1, Y: -1}, Occupant{Kind: OccWall})
	g.Clear(GridPos{X: 9, Y: 9})
}
