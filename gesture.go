package corridor

import "math"

// Hand landmark indices, MediaPipe hand-model convention. Only the four the
// interpreter reads are named; a full frame carries 21 points.
const (
	LandmarkWrist      = 0
	LandmarkThumbTip   = 4
	LandmarkIndexTip   = 8
	LandmarkMiddleBase = 9

	landmarkCount = 21
)

// HandFrame is one detection from the capture collaborator. A nil or short
// Landmarks slice means no hand was detected this frame; the interpreter
// treats partial frames the same way rather than crash the frame loop.
type HandFrame struct {
	Landmarks []Vec2
}

// GestureState is the per-frame output of the interpreter. Ephemeral;
// recomputed from each frame.
type GestureState struct {
	// Vertical is the normalized y of the middle-finger base in [0, 1],
	// 0 at the top of the capture frame. 0.5 (neutral) when undetected.
	Vertical float64
	// Detected reports whether a usable hand was present this frame.
	Detected bool
	// Pinching reports the current pinch state (level, not edge).
	Pinching bool
}

// PinchEvent is an edge-triggered pinch transition. Steady-state pinching
// emits nothing: one physical pinch fires exactly one PinchStart.
type PinchEvent uint8

const (
	PinchNone  PinchEvent = iota // no transition this frame
	PinchStart                   // fingers just closed
	PinchEnd                     // fingers just released
)

// DefaultPinchThreshold is the normalized thumb–index distance below which
// the hand counts as pinching. Empirically tuned, not principled.
const DefaultPinchThreshold = 0.25

// Interpreter turns raw landmark frames into a steering signal and pinch
// transitions. It keeps only the previous frame's pinch boolean, the minimum
// state needed for edge detection.
type Interpreter struct {
	// PinchThreshold is the normalized thumb–index distance below which
	// the hand counts as pinching. NewInterpreter sets it to
	// DefaultPinchThreshold; adjust before the first Read if needed.
	PinchThreshold float64

	prevPinch bool
}

// NewInterpreter creates an Interpreter with the default pinch threshold.
func NewInterpreter() *Interpreter {
	return &Interpreter{PinchThreshold: DefaultPinchThreshold}
}

// Read consumes one frame and returns the gesture state plus any pinch
// transition. When tracking is lost a held pinch is forcibly released so
// downstream state never stays latched.
func (in *Interpreter) Read(frame HandFrame) (GestureState, PinchEvent) {
	lm := frame.Landmarks
	if len(lm) < landmarkCount {
		return in.lost()
	}

	// Normalizing the thumb–index distance by the wrist-to-middle-base
	// distance makes the threshold invariant to how far the hand is from
	// the camera.
	handScale := dist(lm[LandmarkWrist], lm[LandmarkMiddleBase])
	if handScale <= 0 {
		return in.lost()
	}
	pinchDist := dist(lm[LandmarkThumbTip], lm[LandmarkIndexTip]) / handScale

	state := GestureState{
		Vertical: clamp01(lm[LandmarkMiddleBase].Y),
		Detected: true,
		Pinching: pinchDist < in.PinchThreshold,
	}
	return state, in.edge(state.Pinching)
}

// lost reports the neutral no-hand state, releasing any held pinch.
func (in *Interpreter) lost() (GestureState, PinchEvent) {
	return GestureState{Vertical: 0.5}, in.edge(false)
}

// edge compares against the previous frame's pinch boolean and emits only
// on change.
func (in *Interpreter) edge(pinching bool) PinchEvent {
	if pinching == in.prevPinch {
		return PinchNone
	}
	in.prevPinch = pinching
	if pinching {
		return PinchStart
	}
	return PinchEnd
}

// SyntheticHand builds a full landmark frame for a hand whose middle-finger
// base sits at the given normalized vertical, optionally pinching. Useful for
// scripted input (test runners, demos) in place of a real capture source.
func SyntheticHand(vertical float64, pinched bool) HandFrame {
	lm := make([]Vec2, landmarkCount)
	for i := range lm {
		lm[i] = Vec2{X: 0.5, Y: vertical}
	}
	// Hand scale 0.3: wrist below the middle-finger base.
	lm[LandmarkWrist] = Vec2{X: 0.5, Y: vertical + 0.3}
	gap := 0.2
	if pinched {
		gap = 0.02
	}
	lm[LandmarkThumbTip] = Vec2{X: 0.5 - gap/2, Y: vertical}
	lm[LandmarkIndexTip] = Vec2{X: 0.5 + gap/2, Y: vertical}
	return HandFrame{Landmarks: lm}
}

func dist(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
