package corridor

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene ties the tunnel together: items, the depth camera, input routing,
// gesture tracking, and rendering. Drive it from an ebiten.Game by calling
// Update and Draw once per frame.
//
// All state mutation happens on the frame loop goroutine; the only cross-
// goroutine traffic is the tracker mailbox and the camera's own locking.
type Scene struct {
	items   []*Item
	cam     *DepthCamera
	router  *Router
	tracker *Tracker
	interp  *Interpreter

	velocity   VelocityConfig
	projection Projection

	// gesture is the last interpreted state, kept for the debug HUD and
	// for callers that render a hand cursor.
	gesture GestureState

	// Pointer state: previous frame's button level, for press/release
	// edge detection against ebiten's polled input.
	pointerWasDown bool

	injectQueue []syntheticEvent
	pendingHand *HandFrame
	renderer    cardRenderer
	debug       bool
	sink        EventSink

	testRunner      *TestRunner
	screenshotQueue []string

	// ScreenshotDir is where Screenshot writes PNGs.
	ScreenshotDir string
}

// NewScene creates a scene over the given items with default tuning:
// DefaultProjection, DefaultVelocity, DefaultResolver, and default input
// gains. Items and their placements are treated as immutable.
func NewScene(items []*Item) *Scene {
	cam := NewDepthCamera()
	return &Scene{
		items:         items,
		cam:           cam,
		router:        NewRouter(items, cam),
		tracker:       NewTracker(),
		interp:        NewInterpreter(),
		velocity:      DefaultVelocity,
		projection:    DefaultProjection,
		ScreenshotDir: DefaultScreenshotDir,
	}
}

// Items returns the scene's items. The returned slice MUST NOT be mutated.
func (s *Scene) Items() []*Item {
	return s.items
}

// Camera returns the scene's depth camera.
func (s *Scene) Camera() *DepthCamera {
	return s.cam
}

// Router returns the scene's interaction router, for explicit open/close
// and for adjusting input gains.
func (s *Scene) Router() *Router {
	return s.router
}

// SetProjection replaces the depth-to-visual mapping.
func (s *Scene) SetProjection(p Projection) {
	s.projection = p
}

// SetVelocity replaces the gesture velocity tuning.
func (s *Scene) SetVelocity(v VelocityConfig) {
	s.velocity = v
}

// OnSelect registers a callback fired when a pinch (or explicit open)
// selects an item and opens the overlay.
func (s *Scene) OnSelect(fn func(*Item)) Handle {
	return s.router.OnOpen(fn)
}

// OnClose registers a callback fired when the overlay closes.
func (s *Scene) OnClose(fn func()) Handle {
	return s.router.OnClose(fn)
}

// Gesture returns the last interpreted gesture state.
func (s *Scene) Gesture() GestureState {
	return s.gesture
}

// SetDebugHUD enables the frame-stats overlay drawn in the corner.
func (s *Scene) SetDebugHUD(enabled bool) {
	s.debug = enabled
}

// SetEventSink forwards navigation events (overlay open/close, pinch edges)
// to the given sink. Pass nil to detach.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
	s.router.SetEventSink(sink)
}

// --- Gesture availability ---

// EnableGestures initializes the hand source and starts the capture loop.
// On failure the scene silently stays pointer/wheel-only and the returned
// error (wrapping ErrTrackerUnavailable) lets the caller surface a
// degraded-mode message. Never blocks awaiting gesture availability.
func (s *Scene) EnableGestures(ctx context.Context, src HandSource) error {
	return s.tracker.Start(ctx, src)
}

// DisableGestures cancels the capture loop. The camera stays exactly where
// it was; a held pinch is released on the next frame.
func (s *Scene) DisableGestures() {
	s.tracker.Stop()
}

// GesturesAvailable reports whether gesture input is currently usable.
func (s *Scene) GesturesAvailable() bool {
	return s.tracker.Available()
}

// --- Frame loop ---

// Update processes one frame of input: pointer, wheel, the latest gesture
// detection, and velocity integration, then advances camera smoothing.
func (s *Scene) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if s.testRunner != nil {
		s.testRunner.step(s)
	}

	// Synthetic input replaces device polling for the frame, identical to
	// how real input would route.
	if !s.processInjected() {
		s.processPointer()
		s.processWheel()
	}
	s.processGesture()
	s.integrateVelocity()

	s.cam.update(dt)
}

// processPointer polls the mouse and feeds press/move/release edges to the
// router. The router decides whether a drag may begin or steer.
func (s *Scene) processPointer() {
	_, my := ebiten.CursorPosition()
	y := float64(my)
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case down && !s.pointerWasDown:
		s.router.PointerDown(y)
	case down && s.pointerWasDown:
		s.router.PointerMove(y)
	case !down && s.pointerWasDown:
		s.router.PointerUp()
	}
	s.pointerWasDown = down
}

// processWheel feeds wheel ticks to the router as direct depth deltas.
func (s *Scene) processWheel() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		s.router.Wheel(wy)
	}
}

// processGesture reads the latest detection (injected frame first, then the
// tracker mailbox — possibly stale, which is tolerated) and routes pinch
// transitions.
func (s *Scene) processGesture() {
	var frame HandFrame
	if s.pendingHand != nil {
		frame = *s.pendingHand
		s.pendingHand = nil
	} else {
		frame = s.tracker.Latest()
	}

	state, ev := s.interp.Read(frame)
	s.gesture = state
	if ev == PinchNone {
		return
	}
	if s.sink != nil {
		t := EventPinchDown
		if ev == PinchEnd {
			t = EventPinchUp
		}
		s.sink.Emit(Event{Type: t, Depth: s.cam.VisualDepth()})
	}
	s.router.Pinch(ev)
}

// integrateVelocity applies the gesture velocity to the camera once per
// frame. Forced to zero while the overlay is open, skipped below the
// minimum magnitude.
func (s *Scene) integrateVelocity() {
	if s.router.NavigationLocked() {
		return
	}
	v := s.velocity.Compute(s.gesture.Vertical, s.gesture.Detected)
	if abs(v) > s.velocity.MinVelocity {
		s.cam.Advance(v)
	}
}
