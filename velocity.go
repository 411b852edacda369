package corridor

// VelocityConfig converts the vertical gesture signal into a signed camera
// velocity. The scene integrates the result into the camera depth once per
// rendered frame — a continuous integrator, not a one-shot delta. Pointer
// drag and wheel input bypass this entirely and apply direct deltas.
type VelocityConfig struct {
	// Deadzone is the half-width of the neutral band around 0.5 where the
	// velocity is zero, absorbing hand tremor near center.
	Deadzone float64
	// Gain scales the post-deadzone displacement into depth units/frame.
	Gain float64
	// MinVelocity is the magnitude below which the integrator skips the
	// frame entirely.
	MinVelocity float64
}

// DefaultVelocity matches the reference tunnel tuning.
var DefaultVelocity = VelocityConfig{
	Deadzone:    0.15,
	Gain:        25,
	MinVelocity: 0.1,
}

// deadzoneEpsilon absorbs float64 rounding at the deadzone boundary: a hand
// exactly on the band edge (0.5±Deadzone) must read as neutral, but the
// subtraction can leave ~1e-17 of noise there.
const deadzoneEpsilon = 1e-9

// Compute returns the signed velocity for the given vertical position.
// Hand above center (vertical < 0.5) steers forward (positive velocity).
// Returns exactly 0 when the hand is undetected or inside the deadzone.
func (c VelocityConfig) Compute(vertical float64, detected bool) float64 {
	if !detected {
		return 0
	}
	offset := 0.5 - vertical
	magnitude := abs(offset) - c.Deadzone
	if magnitude < deadzoneEpsilon {
		return 0
	}
	if offset < 0 {
		return -magnitude * c.Gain
	}
	return magnitude * c.Gain
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
