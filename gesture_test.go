package corridor

import "testing"

// testHand builds a full landmark frame: the middle-finger base sits at
// (0.5, middleBaseY) with the wrist handSpan below it, and the thumb and
// index tips are separated by pinchGap (all in normalized units).
func testHand(middleBaseY, handSpan, pinchGap float64) HandFrame {
	lm := make([]Vec2, landmarkCount)
	for i := range lm {
		lm[i] = Vec2{X: 0.5, Y: middleBaseY + handSpan}
	}
	lm[LandmarkWrist] = Vec2{X: 0.5, Y: middleBaseY + handSpan}
	lm[LandmarkMiddleBase] = Vec2{X: 0.5, Y: middleBaseY}
	lm[LandmarkThumbTip] = Vec2{X: 0.5 - pinchGap/2, Y: middleBaseY}
	lm[LandmarkIndexTip] = Vec2{X: 0.5 + pinchGap/2, Y: middleBaseY}
	return HandFrame{Landmarks: lm}
}

func TestReadVerticalSignal(t *testing.T) {
	in := NewInterpreter()
	state, _ := in.Read(testHand(0.2, 0.3, 0.3))
	if !state.Detected {
		t.Fatal("hand not detected")
	}
	if !approxEqual(state.Vertical, 0.2, epsilon) {
		t.Errorf("Vertical = %f, want 0.2", state.Vertical)
	}
}

func TestReadNoHandNeutral(t *testing.T) {
	in := NewInterpreter()
	state, ev := in.Read(HandFrame{})
	if state.Detected {
		t.Error("Detected = true for empty frame")
	}
	if state.Vertical != 0.5 {
		t.Errorf("Vertical = %f, want neutral 0.5", state.Vertical)
	}
	if ev != PinchNone {
		t.Errorf("event = %d, want PinchNone", ev)
	}
}

func TestReadPartialFrameTreatedAsNoHand(t *testing.T) {
	in := NewInterpreter()
	// Frame missing the upper landmark indices must not crash and must
	// read as no hand.
	state, _ := in.Read(HandFrame{Landmarks: make([]Vec2, LandmarkIndexTip)})
	if state.Detected {
		t.Error("Detected = true for partial frame")
	}
}

func TestReadDegenerateHandScale(t *testing.T) {
	in := NewInterpreter()
	// All landmarks coincident: hand scale is zero, normalization would
	// divide by zero. Must read as no hand.
	lm := make([]Vec2, landmarkCount)
	state, _ := in.Read(HandFrame{Landmarks: lm})
	if state.Detected {
		t.Error("Detected = true for degenerate frame")
	}
}

func TestPinchDetection(t *testing.T) {
	in := NewInterpreter()
	// Gap well below threshold*span: 0.02 / 0.3 ≈ 0.067 < 0.25.
	state, ev := in.Read(testHand(0.5, 0.3, 0.02))
	if !state.Pinching {
		t.Error("Pinching = false for closed fingers")
	}
	if ev != PinchStart {
		t.Errorf("event = %d, want PinchStart", ev)
	}

	// Gap above threshold: 0.2 / 0.3 ≈ 0.67 > 0.25.
	state, ev = in.Read(testHand(0.5, 0.3, 0.2))
	if state.Pinching {
		t.Error("Pinching = true for open fingers")
	}
	if ev != PinchEnd {
		t.Errorf("event = %d, want PinchEnd", ev)
	}
}

func TestPinchScaleInvariance(t *testing.T) {
	// The same physical pose at half the apparent size (hand further from
	// the camera) must classify identically.
	near := NewInterpreter()
	far := NewInterpreter()
	nearState, _ := near.Read(testHand(0.5, 0.4, 0.06))
	farState, _ := far.Read(testHand(0.5, 0.2, 0.03))
	if nearState.Pinching != farState.Pinching {
		t.Errorf("near.Pinching = %v, far.Pinching = %v, want equal",
			nearState.Pinching, farState.Pinching)
	}
	if !nearState.Pinching {
		t.Error("expected pinch at normalized distance 0.15")
	}
}

func TestPinchEdgeTriggering(t *testing.T) {
	in := NewInterpreter()
	frames := []bool{false, true, true, true, false}
	var events []PinchEvent
	for _, pinching := range frames {
		gap := 0.2
		if pinching {
			gap = 0.02
		}
		_, ev := in.Read(testHand(0.5, 0.3, gap))
		if ev != PinchNone {
			events = append(events, ev)
		}
	}
	if len(events) != 2 || events[0] != PinchStart || events[1] != PinchEnd {
		t.Errorf("events = %v, want [PinchStart PinchEnd]", events)
	}
}

func TestPinchReleasedOnTrackingLoss(t *testing.T) {
	in := NewInterpreter()
	if _, ev := in.Read(testHand(0.5, 0.3, 0.02)); ev != PinchStart {
		t.Fatalf("setup: event = %d, want PinchStart", ev)
	}
	// Hand disappears mid-pinch: the held state must not stay latched.
	_, ev := in.Read(HandFrame{})
	if ev != PinchEnd {
		t.Errorf("event = %d, want PinchEnd on tracking loss", ev)
	}
	// Reacquiring an open hand emits nothing new.
	if _, ev := in.Read(testHand(0.5, 0.3, 0.2)); ev != PinchNone {
		t.Errorf("event = %d, want PinchNone after release", ev)
	}
}

func TestVerticalClamped(t *testing.T) {
	in := NewInterpreter()
	state, _ := in.Read(testHand(-0.4, 0.3, 0.2))
	if state.Vertical != 0 {
		t.Errorf("Vertical = %f, want clamped 0", state.Vertical)
	}
}
