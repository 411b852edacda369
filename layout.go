package corridor

// Layout deterministically places items along the tunnel. Generate is a pure
// function of the index: the same index always yields the same Placement,
// which stable re-renders and selection both rely on.
type Layout struct {
	// SeedStride is the constant multiplied with the index to derive the
	// per-item seed the spread values are extracted from.
	SeedStride int
	// StepDistance is the depth gap between consecutive items. Item i sits
	// at Z = -StepDistance * i, strictly ordered away from the camera.
	StepDistance float64
	// SpreadX and SpreadY are the full screen-plane spans the modulo
	// spread distributes items across, centered on the tunnel axis.
	SpreadX, SpreadY float64
	// TiltSpan is the full rotation span in degrees, centered on zero.
	TiltSpan float64
	// MinScale and ScaleSpan bound the intrinsic size multiplier:
	// scale in [MinScale, MinScale+ScaleSpan).
	MinScale, ScaleSpan float64
}

// DefaultLayout matches the reference tunnel tuning.
var DefaultLayout = Layout{
	SeedStride:   137,
	StepDistance: 350,
	SpreadX:      600,
	SpreadY:      400,
	TiltSpan:     30,
	MinScale:     0.8,
	ScaleSpan:    0.4,
}

// Generate returns the placement for the item at index. Pure and
// deterministic; index 0 yields the baseline placement at Z = 0. A span
// below one unit collapses that axis to the baseline instead of spreading.
func (l Layout) Generate(index int) Placement {
	seed := index * l.SeedStride
	scale := l.MinScale
	if s := int(l.ScaleSpan * 100); s >= 1 {
		scale += float64(seed%s) / 100
	}
	return Placement{
		X:        spread(seed, l.SpreadX),
		Y:        spread(seed, l.SpreadY),
		Z:        -l.StepDistance * float64(index),
		Rotation: spread(seed, l.TiltSpan),
		Scale:    scale,
	}
}

// spread extracts a modulo offset in [-span/2, span/2) from the seed, or 0
// when the span is too small to spread across.
func spread(seed int, span float64) float64 {
	if span < 1 {
		return 0
	}
	return float64(seed%int(span)) - span/2
}

// GenerateItems builds n items with placements from l. IDs run 0..n-1 in
// depth order. Display metadata is left zero for the caller to fill in.
func GenerateItems(l Layout, n int) []*Item {
	items := make([]*Item, n)
	for i := range items {
		items[i] = &Item{ID: i, Placement: l.Generate(i)}
	}
	return items
}
