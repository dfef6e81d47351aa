// Package scene composes the demo's frames: background, sun, then every
// planet in spawn order, back to front.
package scene

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/orrery/assets"
	"github.com/plus3/orrery/ecs"
	"github.com/plus3/orrery/sim"
)

// Screen is the singleton carrying the frame's destination image. The
// window loop sets Image before the render pass and it stays nil in
// headless runs, which turns rendering into a no-op.
type Screen struct {
	Image *ebiten.Image
}

// Frame holds the fixed scene geometry computed once at startup.
type Frame struct {
	Width, Height int
	Sun           image.Rectangle
}

// drawOp is a single blit: one texture scaled into a destination rectangle.
type drawOp struct {
	texture string
	dst     image.Rectangle
}

// RenderSystem blits the composed scene onto the screen singleton.
type RenderSystem struct {
	Library *assets.Library

	ops []drawOp // reused between frames
}

func (r *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := ecs.GetSingleton[Screen](frame.Storage)
	if screen == nil || screen.Image == nil {
		return
	}

	r.ops = compose(frame.Storage, r.ops[:0])
	for _, op := range r.ops {
		r.blit(screen.Image, op)
	}
}

// compose appends the frame's draw list to ops: background, sun, then the
// orbiting bodies in spawn order. Later entries occlude earlier ones.
func compose(storage *ecs.Storage, ops []drawOp) []drawOp {
	frame := ecs.GetSingleton[Frame](storage)

	ops = append(ops, drawOp{
		texture: "stars",
		dst:     image.Rect(0, 0, frame.Width, frame.Height),
	})
	ops = append(ops, drawOp{
		texture: "sun",
		dst:     frame.Sun,
	})

	ecs.Each2(storage, func(_ ecs.EntityId, body *sim.Body, pos *sim.Position) {
		x, y := int(pos.X), int(pos.Y)
		ops = append(ops, drawOp{
			texture: body.Texture,
			dst:     image.Rect(x, y, x+body.W, y+body.H),
		})
	})

	return ops
}

func (r *RenderSystem) blit(dst *ebiten.Image, op drawOp) {
	img := r.Library.Image(op.texture)
	bounds := img.Bounds()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(
		float64(op.dst.Dx())/float64(bounds.Dx()),
		float64(op.dst.Dy())/float64(bounds.Dy()),
	)
	opts.GeoM.Translate(float64(op.dst.Min.X), float64(op.dst.Min.Y))
	dst.DrawImage(img, opts)
}
