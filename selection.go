package corridor

import "math"

// Resolver picks the item a pinch should open: the one whose effective depth
// sits closest to the sweet spot directly in front of the viewer.
//
// Resolve must be given the visual (smoothed) camera depth, not the raw
// target, so the choice matches what the viewer perceives as closest.
type Resolver struct {
	// SweetSpot is the effective depth considered "centered in front of
	// the viewer". Empirically tuned, not principled.
	SweetSpot float64
	// MaxDistance rejects the pick when even the best item sits further
	// than this from the sweet spot — nothing is near the viewport.
	MaxDistance float64
}

// DefaultResolver matches the reference tunnel tuning.
var DefaultResolver = Resolver{
	SweetSpot:   -200,
	MaxDistance: 1000,
}

// Resolve scans items and returns the one minimizing the distance between
// its effective depth and the sweet spot, or (nil, false) when no item is
// within MaxDistance. Ties go to the first item in iteration order, which is
// stable because placements are deterministic.
func (r Resolver) Resolve(items []*Item, cameraDepth float64) (*Item, bool) {
	var best *Item
	bestDist := math.Inf(1)
	for _, item := range items {
		ed := item.Placement.Z + cameraDepth
		if d := abs(ed - r.SweetSpot); d < bestDist {
			best = item
			bestDist = d
		}
	}
	if best == nil || bestDist > r.MaxDistance {
		return nil, false
	}
	return best, true
}
