// Package game implements the lanehop simulation core: lanes, the physics
// world, enemy spawning, collision handling, the phase state machine and
// score bookkeeping. It has no terminal, audio or storage dependencies; those
// collaborators are reached through the interfaces in events.go and score.go.
package game

import "math"

// LaneGrid partitions the world height into N equal horizontal bands and
// tracks which bands currently hold an enemy.
type LaneGrid struct {
	centers  []float64
	height   float64
	occupied []bool
}

// NewLaneGrid creates a grid of n lanes over a world of the given height.
// n is raised to 1 if smaller.
func NewLaneGrid(n int, height float64) *LaneGrid {
	if n < 1 {
		n = 1
	}
	g := &LaneGrid{
		centers:  make([]float64, n),
		height:   height,
		occupied: make([]bool, n),
	}
	band := height / float64(n)
	for i := range g.centers {
		g.centers[i] = band * (float64(i) + 0.5)
	}
	return g
}

// Count returns the number of lanes.
func (g *LaneGrid) Count() int {
	return len(g.centers)
}

// Clamp restricts a lane index to [0, N-1].
func (g *LaneGrid) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(g.centers) {
		return len(g.centers) - 1
	}
	return i
}

// Center returns the vertical center of lane i. Out-of-range indices are clamped.
func (g *LaneGrid) Center(i int) float64 {
	return g.centers[g.Clamp(i)]
}

// LaneForY maps a vertical world coordinate to the lane containing it.
// Coordinates above or below the world clamp to the first or last lane.
func (g *LaneGrid) LaneForY(y float64) int {
	if math.IsNaN(y) {
		return 0
	}
	band := g.height / float64(len(g.centers))
	idx := math.Floor(y / band)
	if idx < 0 {
		return 0
	}
	if idx >= float64(len(g.centers)) {
		return len(g.centers) - 1
	}
	return int(idx)
}

// FreeLanes returns the indices of unoccupied lanes in ascending order.
func (g *LaneGrid) FreeLanes() []int {
	free := make([]int, 0, len(g.occupied))
	for i, occ := range g.occupied {
		if !occ {
			free = append(free, i)
		}
	}
	return free
}

// Occupied reports whether lane i holds an enemy.
func (g *LaneGrid) Occupied(i int) bool {
	return g.occupied[g.Clamp(i)]
}

// OccupiedCount returns how many lanes hold an enemy.
func (g *LaneGrid) OccupiedCount() int {
	n := 0
	for _, occ := range g.occupied {
		if occ {
			n++
		}
	}
	return n
}

// Occupy marks lane i as holding an enemy.
// Callers only pass indices taken from FreeLanes.
func (g *LaneGrid) Occupy(i int) {
	g.occupied[g.Clamp(i)] = true
}

// Release frees lane i. Releasing a free lane is a no-op.
func (g *LaneGrid) Release(i int) {
	g.occupied[g.Clamp(i)] = false
}

// ReleaseAll frees every lane.
func (g *LaneGrid) ReleaseAll() {
	for i := range g.occupied {
		g.occupied[i] = false
	}
}
