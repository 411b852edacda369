package corridor

// RouterState identifies the interaction mode the router is in.
type RouterState uint8

const (
	StateIdle      RouterState = iota // no active interaction
	StateDragging                     // pointer held, deltas steer the camera
	StateModalOpen                    // detail overlay open, navigation frozen
)

// Default input gains. Drag and wheel bypass the velocity controller and
// apply direct deltas per input event, not per frame.
const (
	DefaultDragGain  = 2.5
	DefaultWheelGain = 1.5
)

// --- Handler registry ---

type openHandler struct {
	id uint32
	fn func(*Item)
}

type closeHandler struct {
	id uint32
	fn func()
}

// Handle allows removing a registered router callback.
type Handle struct {
	id     uint32
	router *Router
	close  bool
}

// Remove unregisters this callback so it no longer fires.
func (h Handle) Remove() {
	if h.router == nil {
		return
	}
	if h.close {
		h.router.closeHandlers = removeCloseHandler(h.router.closeHandlers, h.id)
		return
	}
	h.router.openHandlers = removeOpenHandler(h.router.openHandlers, h.id)
}

func removeOpenHandler(s []openHandler, id uint32) []openHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = openHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeCloseHandler(s []closeHandler, id uint32) []closeHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = closeHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Router ---

// Router arbitrates the three input sources (pointer drag, wheel, gesture)
// over the shared depth camera, and owns the overlay's open/closed truth.
// While the overlay is open all camera mutation is suppressed and a pinch
// means close, never re-selection.
//
// Router methods must be called from the frame loop goroutine.
type Router struct {
	items    []*Item
	cam      *DepthCamera
	resolver Resolver

	// DragGain and WheelGain scale raw pointer/wheel deltas into depth.
	DragGain  float64
	WheelGain float64

	state     RouterState
	lastDragY float64
	selected  *Item

	openHandlers  []openHandler
	closeHandlers []closeHandler
	nextID        uint32
	sink          EventSink
}

// NewRouter creates a router over the given items and camera with the
// default resolver and input gains.
func NewRouter(items []*Item, cam *DepthCamera) *Router {
	return &Router{
		items:     items,
		cam:       cam,
		resolver:  DefaultResolver,
		DragGain:  DefaultDragGain,
		WheelGain: DefaultWheelGain,
	}
}

// SetResolver replaces the selection resolver.
func (r *Router) SetResolver(resolver Resolver) {
	r.resolver = resolver
}

// SetEventSink sets the optional event bridge for open/close events.
func (r *Router) SetEventSink(sink EventSink) {
	r.sink = sink
}

// State returns the current interaction state.
func (r *Router) State() RouterState {
	return r.state
}

// Selected returns the item the open overlay shows, or nil when closed.
// The overlay collaborator must tolerate nil and display nothing.
func (r *Router) Selected() *Item {
	return r.selected
}

// NavigationLocked reports whether camera mutation is currently suppressed.
func (r *Router) NavigationLocked() bool {
	return r.state == StateModalOpen
}

// OnOpen registers a callback fired when the overlay opens with an item.
func (r *Router) OnOpen(fn func(*Item)) Handle {
	r.nextID++
	r.openHandlers = append(r.openHandlers, openHandler{id: r.nextID, fn: fn})
	return Handle{id: r.nextID, router: r}
}

// OnClose registers a callback fired when the overlay closes.
func (r *Router) OnClose(fn func()) Handle {
	r.nextID++
	r.closeHandlers = append(r.closeHandlers, closeHandler{id: r.nextID, fn: fn})
	return Handle{id: r.nextID, router: r, close: true}
}

// --- Pointer input ---

// PointerDown begins a drag at the given screen y. No-op while the overlay
// is open.
func (r *Router) PointerDown(y float64) {
	if r.state != StateIdle {
		return
	}
	r.state = StateDragging
	r.lastDragY = y
}

// PointerMove steers the camera while dragging: each movement applies
// deltaY * DragGain directly to the depth accumulator.
func (r *Router) PointerMove(y float64) {
	if r.state != StateDragging {
		return
	}
	r.cam.Advance((y - r.lastDragY) * r.DragGain)
	r.lastDragY = y
}

// PointerUp ends a drag. The camera stays exactly where the drag left it.
func (r *Router) PointerUp() {
	if r.state == StateDragging {
		r.state = StateIdle
	}
}

// PointerLeave ends a drag the same way PointerUp does; a pointer leaving
// the scene must not keep steering.
func (r *Router) PointerLeave() {
	r.PointerUp()
}

// Wheel applies deltaY * WheelGain directly to the depth accumulator.
// No-op while the overlay is open.
func (r *Router) Wheel(deltaY float64) {
	if r.state == StateModalOpen {
		return
	}
	r.cam.Advance(deltaY * r.WheelGain)
}

// --- Pinch and overlay ---

// Pinch routes an edge-triggered pinch event. A pinch start while browsing
// resolves a selection against the visual depth and opens the overlay when
// an item is in range (silent no-op otherwise — expected steady state, not a
// failure). A pinch start while the overlay is open closes it. Pinch ends
// are ignored; all semantics ride the start edge.
func (r *Router) Pinch(ev PinchEvent) {
	if ev != PinchStart {
		return
	}
	if r.state == StateModalOpen {
		r.Close()
		return
	}
	item, ok := r.resolver.Resolve(r.items, r.cam.VisualDepth())
	if !ok {
		return
	}
	r.Open(item)
}

// Open opens the overlay on the given item from any state, interrupting an
// active drag. Navigation is frozen until Close.
func (r *Router) Open(item *Item) {
	if item == nil {
		return
	}
	r.state = StateModalOpen
	r.selected = item
	for _, h := range r.openHandlers {
		h.fn(item)
	}
	if r.sink != nil {
		r.sink.Emit(Event{Type: EventOpen, ItemID: item.ID, Depth: r.cam.VisualDepth()})
	}
}

// Close dismisses the overlay and resumes navigation. The overlay
// collaborator calls this on explicit dismissal; the router's transition is
// the sole determinant of open/closed, not overlay-internal state.
func (r *Router) Close() {
	if r.state != StateModalOpen {
		return
	}
	r.state = StateIdle
	r.selected = nil
	for _, h := range r.closeHandlers {
		h.fn()
	}
	if r.sink != nil {
		r.sink.Emit(Event{Type: EventClose, Depth: r.cam.VisualDepth()})
	}
}
