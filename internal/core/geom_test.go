package core

import (
	"math"
	"testing"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		ra, rb   float64
		expected bool
	}{
		{"same center", V(0, 0), V(0, 0), 1, 1, true},
		{"overlapping", V(0, 0), V(1.5, 0), 1, 1, true},
		{"touching edges", V(0, 0), V(2, 0), 1, 1, false},
		{"apart", V(0, 0), V(5, 5), 1, 1, false},
		{"diagonal overlap", V(0, 0), V(1, 1), 1, 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(tc.a, tc.ra, tc.b, tc.rb); got != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSweptCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a0, a1   Vec
		b0, b1   Vec
		expected bool
	}{
		{"passes through", V(0, 0), V(0, 0), V(8, 0), V(-8, 0), true},
		{"ends overlapping", V(0, 0), V(0, 0), V(5, 0), V(1, 0), true},
		{"stops short", V(0, 0), V(0, 0), V(8, 0), V(2, 0), false},
		{"passes beside", V(0, 0), V(0, 0), V(8, 3), V(-8, 3), false},
		{"moving away", V(0, 0), V(0, 0), V(3, 0), V(8, 0), false},
		{"both still apart", V(0, 0), V(0, 0), V(5, 0), V(5, 0), false},
		{"both moving together", V(0, 0), V(10, 0), V(1, 0), V(11, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SweptCirclesOverlap(tc.a0, tc.a1, 1, tc.b0, tc.b1, 1); got != tc.expected {
				t.Errorf("SweptCirclesOverlap() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestVecArithmetic(t *testing.T) {
	v := V(3, 4).Add(V(1, -1)).Scale(2)
	if v != V(8, 6) {
		t.Errorf("Add/Scale = %v, expected (8, 6)", v)
	}
	if d := V(0, 0).Dist(V(3, 4)); math.Abs(d-5) > 1e-9 {
		t.Errorf("Dist = %f, expected 5", d)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 5, 4, 2)

	inside := [][2]int{{10, 5}, {13, 6}, {11, 5}}
	outside := [][2]int{{9, 5}, {14, 5}, {10, 7}, {10, 4}}

	for _, p := range inside {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = false, expected true", p[0], p[1])
		}
	}
	for _, p := range outside {
		if r.Contains(p[0], p[1]) {
			t.Errorf("Contains(%d, %d) = true, expected false", p[0], p[1])
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	if !a.Intersects(NewRect(9, 9, 10, 10)) {
		t.Error("single cell overlap should intersect")
	}
	if a.Intersects(NewRect(10, 0, 10, 10)) {
		t.Error("adjacent rects should not intersect")
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-3, 0, 4) != 0 || Clamp(9, 0, 4) != 4 || Clamp(2, 0, 4) != 2 {
		t.Error("Clamp returned a value outside the range")
	}
	if ClampF(1.5, 0, 1) != 1 || ClampF(-0.5, 0, 1) != 0 {
		t.Error("ClampF returned a value outside the range")
	}
}

func TestFixedStep(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 50}
	if cfg.FixedStep() != 0.02 {
		t.Errorf("FixedStep() = %f, expected 0.02", cfg.FixedStep())
	}

	// Zero rate falls back to 60 FPS
	if got := (RuntimeConfig{}).FixedStep(); math.Abs(got-1.0/60) > 1e-12 {
		t.Errorf("FixedStep() with zero rate = %f", got)
	}
}
