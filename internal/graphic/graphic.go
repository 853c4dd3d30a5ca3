// Package graphic draws primitive shapes for the debug painter.
package graphic

import (
	"image/color"
	"sync"

	"github.com/kemari/flexlay/geo"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	g    graphic
	once sync.Once
)

type graphic struct {
	pixel *ebiten.Image
}

func (g *graphic) setup() {
	once.Do(func() {
		g.pixel = ebiten.NewImage(1, 1)
	})
}

// FillRectOpts configures FillRect.
type FillRectOpts struct {
	Rect  geo.Rectangle
	Color color.Color
}

// FillRect fills a rectangle on the target image.
func FillRect(target *ebiten.Image, opts *FillRectOpts) {
	g.setup()
	g.pixel.Fill(opts.Color)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(opts.Rect.Dx(), opts.Rect.Dy())
	op.GeoM.Translate(opts.Rect.Min.X, opts.Rect.Min.Y)
	target.DrawImage(g.pixel, op)
}

// DrawRectOpts configures DrawRect.
type DrawRectOpts struct {
	Rect        geo.Rectangle
	Color       color.Color
	StrokeWidth float64
}

// DrawRect strokes the outline of a rectangle on the target image.
func DrawRect(target *ebiten.Image, opts *DrawRectOpts) {
	r, c, sw := opts.Rect, opts.Color, opts.StrokeWidth
	FillRect(target, &FillRectOpts{
		Rect: geo.Rect(r.Min.X, r.Min.Y, r.Min.X+sw, r.Max.Y), Color: c,
	})
	FillRect(target, &FillRectOpts{
		Rect: geo.Rect(r.Max.X-sw, r.Min.Y, r.Max.X, r.Max.Y), Color: c,
	})
	FillRect(target, &FillRectOpts{
		Rect: geo.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+sw), Color: c,
	})
	FillRect(target, &FillRectOpts{
		Rect: geo.Rect(r.Min.X, r.Max.Y-sw, r.Max.X, r.Max.Y), Color: c,
	})
}
