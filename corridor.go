package corridor

// Vec2 is a 2D vector used for normalized landmark coordinates and screen
// offsets. For landmarks, both components are in [0, 1] with the origin at
// the top-left of the capture frame.
type Vec2 struct {
	X, Y float64
}

// Placement is an item's static position in the depth field. Assigned once
// by Layout.Generate and never mutated for the item's lifetime.
type Placement struct {
	// X and Y are screen-plane offsets from the tunnel axis, in pixels.
	X, Y float64
	// Z is the depth coordinate. Items are laid out at strictly decreasing
	// Z (further from the initial camera) as the index grows.
	Z float64
	// Rotation is the card's tilt in degrees.
	Rotation float64
	// Scale is the card's intrinsic size multiplier, independent of the
	// depth-derived scale applied at projection time.
	Scale float64
}

// Item is one card in the tunnel: an immutable placement plus display
// metadata the engine never interprets.
type Item struct {
	// ID is the item's stable identity, unique within a scene.
	ID int
	// Placement is fixed at creation. The engine relies on it never
	// changing: selection and re-renders assume stable depth ordering.
	Placement Placement

	// Display metadata, opaque to the engine.
	Title string
	Price string
	Image any
}

// VisualAttributes is the per-frame projection of one item: a pure function
// of the item's Z and the current camera depth, recomputed every frame and
// never persisted.
type VisualAttributes struct {
	// ScreenDepth is the item's effective depth relative to the camera.
	// Negative values are ahead of the viewer, positive behind.
	ScreenDepth float64
	// Opacity in [0, 1].
	Opacity float64
	// Scale is the depth-derived size multiplier.
	Scale float64
	// BlurRadius in pixels; 0 means fully sharp.
	BlurRadius float64
}

// Visible reports whether the attributes produce any visible output.
func (v VisualAttributes) Visible() bool {
	return v.Opacity > 0
}
