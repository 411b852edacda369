package corridor

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTrackerUnavailable is reported when the hand source failed to
// initialize or stopped working. Gesture input stays disabled for the
// session; there is no automatic retry.
var ErrTrackerUnavailable = errors.New("corridor: hand tracking unavailable")

// HandSource supplies landmark frames from a capture device and detection
// model. Implementations deliver either a full landmark set or an explicit
// no-hand frame (empty Landmarks) once per capture frame, at whatever rate
// the device runs — the engine never assumes a fixed rate relative to
// rendering.
type HandSource interface {
	// Init opens the device and loads the detection model. An error here
	// permanently degrades the session to pointer/wheel input.
	Init() error
	// Next blocks until the next capture frame. It must honor ctx
	// cancellation promptly.
	Next(ctx context.Context) (HandFrame, error)
}

// Tracker runs the capture loop on its own goroutine and publishes the
// latest frame into a mailbox the render loop polls each frame. Readers
// always get the most recent detection, which may be one or more capture
// frames stale; that is tolerated by design.
type Tracker struct {
	mu     sync.Mutex
	latest HandFrame
	failed bool

	// starting claims the tracker from guard check to loop launch, so a
	// concurrent Start cannot pass the guard while Init is in flight.
	starting bool

	cancel context.CancelFunc
	done   chan struct{}
}

// NewTracker creates a tracker with no source attached. Latest returns
// no-hand frames until Start succeeds.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Start initializes the source and launches the capture loop. On init
// failure the tracker is permanently marked unavailable and the error wraps
// ErrTrackerUnavailable. Calling Start on a failed or running tracker is an
// error; concurrent Starts are serialized, and the loser is refused as
// already running even while the winner's Init is still in flight.
func (t *Tracker) Start(ctx context.Context, src HandSource) error {
	t.mu.Lock()
	if t.failed {
		t.mu.Unlock()
		return ErrTrackerUnavailable
	}
	if t.starting || t.done != nil {
		t.mu.Unlock()
		return errors.New("corridor: tracker already running")
	}
	t.starting = true
	t.mu.Unlock()

	if err := src.Init(); err != nil {
		t.mu.Lock()
		t.failed = true
		t.starting = false
		t.mu.Unlock()
		return fmt.Errorf("%w: %v", ErrTrackerUnavailable, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	t.mu.Lock()
	t.starting = false
	t.cancel = cancel
	t.done = done
	t.mu.Unlock()

	go t.loop(ctx, src, done)
	return nil
}

// loop pulls frames until cancellation or a source error. A source error
// degrades the session: the mailbox is cleared to no-hand and the tracker
// marked failed.
func (t *Tracker) loop(ctx context.Context, src HandSource, done chan struct{}) {
	defer close(done)
	for {
		frame, err := src.Next(ctx)
		if err != nil {
			t.mu.Lock()
			t.latest = HandFrame{}
			if ctx.Err() == nil {
				t.failed = true
			}
			t.mu.Unlock()
			return
		}
		t.mu.Lock()
		t.latest = frame
		t.mu.Unlock()
	}
}

// Stop cancels the capture loop and waits for it to exit. The mailbox is
// cleared to no-hand so a held pinch releases; camera depth is untouched —
// stopping tracking never snaps the view back.
func (t *Tracker) Stop() {
	t.mu.Lock()
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	t.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	t.mu.Lock()
	t.latest = HandFrame{}
	t.mu.Unlock()
}

// Latest returns the most recent detection, or a no-hand frame when the
// tracker is stopped, failed, or has not detected yet.
func (t *Tracker) Latest() HandFrame {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest
}

// Available reports whether gesture input is usable. False before Start,
// after Stop, and permanently after a failure.
func (t *Tracker) Available() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done != nil && !t.failed
}

// Failed reports whether the tracker has permanently degraded.
func (t *Tracker) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.failed
}
