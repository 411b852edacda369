package corridor

import "testing"

type recordingSink struct {
	events []Event
}

func (r *recordingSink) Emit(ev Event) { r.events = append(r.events, ev) }

func TestEventSinkOpenClose(t *testing.T) {
	s := testScene()
	sink := &recordingSink{}
	s.SetEventSink(sink)

	s.InjectHandFrame(pinchFrame())
	s.Update()
	s.InjectHandFrame(openFrame())
	s.Update()
	s.InjectHandFrame(pinchFrame())
	s.Update()

	want := []EventType{EventPinchDown, EventOpen, EventPinchUp, EventPinchDown, EventClose}
	if len(sink.events) != len(want) {
		t.Fatalf("event count = %d, want %d: %+v", len(sink.events), len(want), sink.events)
	}
	for i, ev := range sink.events {
		if ev.Type != want[i] {
			t.Errorf("events[%d].Type = %d, want %d", i, ev.Type, want[i])
		}
	}
	if sink.events[1].ItemID != 0 {
		t.Errorf("open ItemID = %d, want 0", sink.events[1].ItemID)
	}
}

func TestEventSinkDetached(t *testing.T) {
	s := testScene()
	sink := &recordingSink{}
	s.SetEventSink(sink)
	s.SetEventSink(nil)

	s.InjectHandFrame(pinchFrame())
	s.Update()
	if len(sink.events) != 0 {
		t.Errorf("detached sink received %d events", len(sink.events))
	}
}
