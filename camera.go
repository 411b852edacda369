package corridor

import (
	"sync"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// snapEpsilon is the visual-to-target gap below which smoothing snaps to the
// target instead of creeping forever.
const snapEpsilon = 0.001

// DepthCamera is the single mutable navigation scalar every input source
// converges on: accumulated travel distance along the tunnel axis, unbounded
// in both directions.
//
// Two values are kept. The target depth is the raw accumulator that drag,
// wheel, and gesture velocity write to. The visual depth eases toward the
// target each frame and is what projection and selection read, so selection
// always matches what the viewer actually sees mid-ease.
//
// The detection loop runs on its own goroutine, so access is serialized by a
// mutex rather than relying on frame-loop ordering.
type DepthCamera struct {
	mu     sync.Mutex
	target float64
	visual float64

	// smoothLerp is the per-frame easing factor toward the target.
	// 1 snaps immediately; lower values glide.
	smoothLerp float64

	scrollTween *gween.Tween
}

// defaultSmoothLerp gives roughly a quarter-second glide at 60 TPS.
const defaultSmoothLerp = 0.12

// NewDepthCamera creates a camera at depth 0 with default smoothing.
func NewDepthCamera() *DepthCamera {
	return &DepthCamera{smoothLerp: defaultSmoothLerp}
}

// SetSmoothing sets the per-frame easing factor, clamped to (0, 1].
func (c *DepthCamera) SetSmoothing(lerp float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if lerp <= 0 {
		lerp = defaultSmoothLerp
	} else if lerp > 1 {
		lerp = 1
	}
	c.smoothLerp = lerp
}

// Advance adds delta to the target depth. Any scroll animation in flight is
// cancelled so direct input never fights the tween over the accumulator.
func (c *DepthCamera) Advance(delta float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrollTween = nil
	c.target += delta
}

// SetDepth replaces the target depth, cancelling any scroll animation. The
// visual depth eases toward the new target over the following frames.
func (c *DepthCamera) SetDepth(depth float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrollTween = nil
	c.target = depth
}

// Snap sets both target and visual depth, with no easing.
func (c *DepthCamera) Snap(depth float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrollTween = nil
	c.target = depth
	c.visual = depth
}

// Depth returns the raw target depth.
func (c *DepthCamera) Depth() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// VisualDepth returns the smoothed depth currently shown to the viewer.
func (c *DepthCamera) VisualDepth() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visual
}

// ScrollTo animates the target depth to the given value over duration
// seconds. Direct input (Advance, SetDepth) cancels the animation.
func (c *DepthCamera) ScrollTo(depth float64, duration float32, easeFn ease.TweenFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scrollTween = gween.New(float32(c.target), float32(depth), duration, easeFn)
}

// update advances the scroll animation and eases the visual depth toward the
// target. Called once per frame from Scene.Update.
func (c *DepthCamera) update(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scrollTween != nil {
		val, done := c.scrollTween.Update(dt)
		c.target = float64(val)
		if done {
			c.scrollTween = nil
		}
	}

	c.visual += (c.target - c.visual) * c.smoothLerp
	if abs(c.target-c.visual) < snapEpsilon {
		c.visual = c.target
	}
}
