package corridor

// EventType identifies a kind of navigation event.
type EventType uint8

const (
	EventOpen      EventType = iota // overlay opened with a selected item
	EventClose                      // overlay closed
	EventPinchDown                  // fingers closed (edge-triggered)
	EventPinchUp                    // fingers released (edge-triggered)
)

// Event carries navigation data for the optional event bridge.
type Event struct {
	Type EventType
	// ItemID is the selected item's ID. Valid for EventOpen only.
	ItemID int
	// Depth is the visual camera depth when the event fired.
	Depth float64
}

// EventSink is the interface for optional event-bus integration. When set on
// a Scene, navigation events are forwarded to it (Donburi bridge in
// corridor/ecs).
type EventSink interface {
	Emit(Event)
}
