package corridor

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// blurShaderSrc is a 9-tap box blur. Uses //kage:unit pixels as required by
// Ebitengine. Ebitengine stores premultiplied alpha, so the taps average
// directly without un-premultiplying.
const blurShaderSrc = `//kage:unit pixels
package main

var Radius float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	var sum vec4
	for j := -1; j <= 1; j++ {
		for i := -1; i <= 1; i++ {
			sum += imageSrc0At(src + vec2(float(i), float(j))*Radius*0.5)
		}
	}
	return sum / 9
}
`

// BlurFilter realizes the BlurRadius visual attribute: it renders a card
// image through the blur shader into a pooled offscreen. Apply is cheap to
// call per card per frame; offscreens are recycled through the pool.
type BlurFilter struct {
	shader *ebiten.Shader
	pool   offscreenPool
}

// NewBlurFilter compiles the blur shader. If compilation fails the filter
// degrades to a passthrough — cards render sharp rather than not at all.
func NewBlurFilter() *BlurFilter {
	shader, err := ebiten.NewShader([]byte(blurShaderSrc))
	if err != nil {
		shader = nil
	}
	return &BlurFilter{shader: shader}
}

// Apply returns a blurred copy of src rendered into a pooled offscreen, and
// a release func that must be called once the copy has been drawn. When the
// shader is unavailable it returns src itself and a nil release.
func (f *BlurFilter) Apply(src *ebiten.Image, radius float64) (*ebiten.Image, func()) {
	if f.shader == nil {
		return src, nil
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	target := f.pool.Acquire(w, h)
	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = src
	op.Uniforms = map[string]any{"Radius": float32(radius)}
	target.DrawRectShader(w, h, f.shader, op)

	sub := target.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)
	return sub, func() { f.pool.Release(target) }
}

// offscreenPool recycles offscreen images keyed by power-of-two dimensions.
// After warmup, Acquire/Release are zero-alloc.
type offscreenPool struct {
	buckets map[uint64][]*ebiten.Image
}

func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen with at least (w, h) pixels,
// dimensions rounded up to the next power of two.
func (p *offscreenPool) Acquire(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool. It is cleared on the next Acquire,
// not here, to avoid redundant GPU work when re-acquired immediately.
func (p *offscreenPool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}
