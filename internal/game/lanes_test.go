package game

import (
	"math"
	"testing"
)

func TestLaneGridCenters(t *testing.T) {
	g := NewLaneGrid(5, 50)
	if g.Count() != 5 {
		t.Fatalf("Count() = %d, want 5", g.Count())
	}
	want := []float64{5, 15, 25, 35, 45}
	for i, w := range want {
		if got := g.Center(i); got != w {
			t.Errorf("Center(%d) = %v, want %v", i, got, w)
		}
	}
	if g.Center(-3) != 5 || g.Center(99) != 45 {
		t.Error("Center() should clamp out-of-range lanes")
	}
}

func TestLaneForY(t *testing.T) {
	g := NewLaneGrid(5, 50)
	tests := []struct {
		y    float64
		want int
	}{
		{-10, 0},
		{0, 0},
		{9.99, 0},
		{10, 1},
		{25, 2},
		{49.9, 4},
		{50, 4},
		{1000, 4},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := g.LaneForY(tt.y); got != tt.want {
			t.Errorf("LaneForY(%v) = %d, want %d", tt.y, got, tt.want)
		}
	}
}

func TestLaneOccupancy(t *testing.T) {
	g := NewLaneGrid(4, 40)
	g.Occupy(1)
	g.Occupy(3)

	free := g.FreeLanes()
	if len(free) != 2 || free[0] != 0 || free[1] != 2 {
		t.Errorf("FreeLanes() = %v, want [0 2]", free)
	}
	if g.OccupiedCount() != 2 {
		t.Errorf("OccupiedCount() = %d, want 2", g.OccupiedCount())
	}

	g.Release(1)
	g.Release(1)
	g.Release(0)
	if g.Occupied(1) || g.Occupied(0) {
		t.Error("Release() should leave lanes free")
	}
	if !g.Occupied(3) {
		t.Error("Release() of another lane changed lane 3")
	}

	g.ReleaseAll()
	if g.OccupiedCount() != 0 {
		t.Errorf("after ReleaseAll OccupiedCount() = %d", g.OccupiedCount())
	}
}

func TestNewLaneGridMinimum(t *testing.T) {
	g := NewLaneGrid(0, 10)
	if g.Count() != 1 {
		t.Errorf("Count() = %d, want 1", g.Count())
	}
	if g.LaneForY(7) != 0 {
		t.Error("single lane grid should map every y to lane 0")
	}
}
