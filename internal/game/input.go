package game

import "github.com/vovakirdan/lanehop/internal/core"

// Region names a tappable area owned by the render collaborator.
type Region int

const (
	RegionPlay Region = iota
	RegionPause
	RegionResume
	RegionHome
	RegionReplay
	RegionScores
)

func (r Region) String() string {
	switch r {
	case RegionPlay:
		return "play"
	case RegionPause:
		return "pause"
	case RegionResume:
		return "resume"
	case RegionHome:
		return "home"
	case RegionReplay:
		return "replay"
	case RegionScores:
		return "scores"
	default:
		return "unknown"
	}
}

// HitTester answers whether a world-space point falls inside a region.
// The session never computes region geometry itself.
type HitTester interface {
	Hit(r Region, p core.Vec) bool
}

type noHits struct{}

func (noHits) Hit(Region, core.Vec) bool { return false }

// hit reports whether the frame carries a tap inside region r.
func hit(h HitTester, in core.InputFrame, r Region) bool {
	p, ok := in.Tap()
	return ok && h.Hit(r, p)
}

// targetLane resolves this frame's lane request while playing. A tap wins
// over a direct lane selection, which wins over a one-lane hop.
func targetLane(grid *LaneGrid, current int, in core.InputFrame) (int, bool) {
	if p, ok := in.Tap(); ok {
		return grid.LaneForY(p.Y), true
	}
	if ln, ok := in.Lane(); ok {
		return grid.Clamp(ln), true
	}
	switch {
	case in.Has(core.ActionUp) && !in.Has(core.ActionDown):
		return grid.Clamp(current - 1), true
	case in.Has(core.ActionDown) && !in.Has(core.ActionUp):
		return grid.Clamp(current + 1), true
	}
	return current, false
}
