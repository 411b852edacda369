package corridor

// Projection maps an item's static depth plus the current camera depth into
// visual attributes. All outputs are pure functions of the effective depth:
// no hysteresis, no frame memory, safe to recompute at any rate.
//
// Effective depth is itemZ + cameraDepth; the camera moving forward raises
// cameraDepth, bringing items ahead (negative effective depth) toward zero.
type Projection struct {
	// FarClip is the effective depth at and beyond which items are fully
	// transparent (too deep in the tunnel to see).
	FarClip float64
	// FullFrom is where the far fade-in completes; opacity holds 1 from
	// here until the item passes the viewer.
	FullFrom float64
	// PassFrom is the small positive depth at which an item has passed the
	// camera and begins to fade out.
	PassFrom float64
	// BehindClip is where the behind-the-viewer fade-out completes.
	BehindClip float64

	// MinScale applies at FarClip; MaxScale at effective depth 0. Scale
	// interpolates linearly between them and clamps outside.
	MinScale, MaxScale float64

	// MaxBlur (pixels) applies at FarClip, easing linearly to 0 at
	// BlurClear and holding 0 from there toward the viewer.
	MaxBlur   float64
	BlurClear float64
}

// DefaultProjection matches the reference tunnel tuning.
var DefaultProjection = Projection{
	FarClip:    -2000,
	FullFrom:   -1200,
	PassFrom:   50,
	BehindClip: 300,
	MinScale:   0.5,
	MaxScale:   1.2,
	MaxBlur:    8,
	BlurClear:  -600,
}

// Project computes the visual attributes for one item at the given camera
// depth.
func (p Projection) Project(itemZ, cameraDepth float64) VisualAttributes {
	ed := itemZ + cameraDepth
	return VisualAttributes{
		ScreenDepth: ed,
		Opacity:     p.opacity(ed),
		Scale:       p.scale(ed),
		BlurRadius:  p.blur(ed),
	}
}

// opacity is piecewise linear: 0 at FarClip, ramping to 1 at FullFrom,
// holding 1 through PassFrom, dropping back to 0 at BehindClip.
func (p Projection) opacity(ed float64) float64 {
	switch {
	case ed <= p.FarClip:
		return 0
	case ed < p.FullFrom:
		return (ed - p.FarClip) / (p.FullFrom - p.FarClip)
	case ed <= p.PassFrom:
		return 1
	case ed < p.BehindClip:
		return 1 - (ed-p.PassFrom)/(p.BehindClip-p.PassFrom)
	default:
		return 0
	}
}

// scale interpolates MinScale at FarClip to MaxScale at depth 0, clamped.
func (p Projection) scale(ed float64) float64 {
	t := clamp01((ed - p.FarClip) / -p.FarClip)
	return p.MinScale + t*(p.MaxScale-p.MinScale)
}

// blur interpolates MaxBlur at FarClip down to 0 at BlurClear, floored at 0.
func (p Projection) blur(ed float64) float64 {
	t := clamp01((ed - p.FarClip) / (p.BlurClear - p.FarClip))
	return p.MaxBlur * (1 - t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
