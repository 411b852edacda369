package corridor

type syntheticEventKind uint8

const (
	pressEvent syntheticEventKind = iota
	moveEvent
	releaseEvent
	leaveEvent
	wheelEvent
	handEvent
)

// syntheticEvent is a single injected input event. Pointer events carry only
// the y coordinate — the depth axis is the only one navigation reads.
type syntheticEvent struct {
	kind  syntheticEventKind
	y     float64
	wheel float64
	frame HandFrame
}

// InjectPress queues a pointer press at the given screen y. One injected
// event is consumed per Update, replacing device polling for that frame.
func (s *Scene) InjectPress(y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: pressEvent, y: y})
}

// InjectMove queues a pointer move with the button held down. Use between
// InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: moveEvent, y: y})
}

// InjectRelease queues a pointer release.
func (s *Scene) InjectRelease() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: releaseEvent})
}

// InjectLeave queues the pointer leaving the scene, which ends a drag the
// same way a release does.
func (s *Scene) InjectLeave() {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: leaveEvent})
}

// InjectWheel queues a wheel tick with the given deltaY.
func (s *Scene) InjectWheel(deltaY float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: wheelEvent, wheel: deltaY})
}

// InjectHandFrame queues a landmark frame that takes the place of the
// tracker mailbox for one frame, feeding the interpreter exactly like a
// real detection.
func (s *Scene) InjectHandFrame(frame HandFrame) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: handEvent, frame: frame})
}

// InjectDrag queues a full drag consuming `frames` frames: press at fromY,
// linearly interpolated moves ending at toY, release. Minimum frames is 3
// (press + one move + release).
func (s *Scene) InjectDrag(fromY, toY float64, frames int) {
	if frames < 3 {
		frames = 3
	}
	s.InjectPress(fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.InjectMove(fromY + (toY-fromY)*t)
	}
	s.InjectRelease()
}

// processInjected pops one event from the queue and routes it. Returns true
// if an event was consumed (device polling is skipped that frame).
func (s *Scene) processInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case pressEvent:
		s.router.PointerDown(evt.y)
	case moveEvent:
		s.router.PointerMove(evt.y)
	case releaseEvent:
		s.router.PointerUp()
	case leaveEvent:
		s.router.PointerLeave()
	case wheelEvent:
		s.router.Wheel(evt.wheel)
	case handEvent:
		s.pendingHand = &evt.frame
	}
	return true
}
