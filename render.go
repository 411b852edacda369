package corridor

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Placeholder card size used when an item carries no image.
const (
	placeholderW = 240
	placeholderH = 320
)

// minBlurRadius is the radius below which the blur pass is skipped; a
// fraction of a pixel is not worth an offscreen render.
const minBlurRadius = 0.5

// cardDraw pairs an item with its projection for one frame.
type cardDraw struct {
	item *Item
	va   VisualAttributes
}

// cardRenderer holds the scratch state Draw reuses across frames.
type cardRenderer struct {
	drawBuf     []cardDraw
	placeholder *ebiten.Image
	blur        *BlurFilter
}

// visibleCards projects every item at the given camera depth, drops the
// invisible ones, and sorts back-to-front (most negative effective depth
// first) for painter-order drawing. Sorting is stable so equal depths keep
// item order.
func visibleCards(items []*Item, p Projection, cameraDepth float64, buf []cardDraw) []cardDraw {
	buf = buf[:0]
	for _, item := range items {
		va := p.Project(item.Placement.Z, cameraDepth)
		if !va.Visible() {
			continue
		}
		buf = append(buf, cardDraw{item: item, va: va})
	}
	sort.SliceStable(buf, func(i, j int) bool {
		return buf[i].va.ScreenDepth < buf[j].va.ScreenDepth
	})
	return buf
}

// Draw renders all visible cards back-to-front at the camera's visual
// depth, then the debug HUD if enabled.
func (s *Scene) Draw(screen *ebiten.Image) {
	r := &s.renderer
	r.drawBuf = visibleCards(s.items, s.projection, s.cam.VisualDepth(), r.drawBuf)

	bounds := screen.Bounds()
	cx := float64(bounds.Dx()) / 2
	cy := float64(bounds.Dy()) / 2

	for _, cd := range r.drawBuf {
		r.drawCard(screen, cd, cx, cy)
	}

	if s.debug {
		s.drawHUD(screen)
	}

	s.flushScreenshots(screen)
}

// drawCard draws one card with its depth-derived scale, opacity, and blur,
// centered on the tunnel axis plus the card's placement offset.
func (r *cardRenderer) drawCard(dst *ebiten.Image, cd cardDraw, cx, cy float64) {
	img := r.image(cd.item)
	var release func()
	if cd.va.BlurRadius >= minBlurRadius {
		img, release = r.blurred(img, cd.va.BlurRadius)
	}

	b := img.Bounds()
	scale := cd.va.Scale * cd.item.Placement.Scale

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(cd.item.Placement.Rotation * math.Pi / 180)
	op.GeoM.Translate(cx+cd.item.Placement.X, cy+cd.item.Placement.Y)
	op.ColorScale.ScaleAlpha(float32(cd.va.Opacity))
	dst.DrawImage(img, op)

	if release != nil {
		release()
	}
}

// image returns the item's card image, or a shared placeholder when the
// opaque metadata does not carry an *ebiten.Image.
func (r *cardRenderer) image(item *Item) *ebiten.Image {
	if img, ok := item.Image.(*ebiten.Image); ok && img != nil {
		return img
	}
	if r.placeholder == nil {
		r.placeholder = ebiten.NewImage(placeholderW, placeholderH)
		r.placeholder.Fill(color.RGBA{R: 0x2a, G: 0x2a, B: 0x33, A: 0xff})
	}
	return r.placeholder
}

// blurred renders img through the blur shader into a pooled offscreen.
// The release func returns the offscreen to the pool after drawing.
func (r *cardRenderer) blurred(img *ebiten.Image, radius float64) (*ebiten.Image, func()) {
	if r.blur == nil {
		r.blur = NewBlurFilter()
	}
	return r.blur.Apply(img, radius)
}
