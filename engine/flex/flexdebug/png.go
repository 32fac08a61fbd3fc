package flexdebug

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/npillmayer/flexlayout/core/dimen"
	"github.com/npillmayer/flexlayout/engine/flex"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Outline colors, by depth of a node in the tree.
var palette = []color.RGBA{
	{0x20, 0x20, 0x20, 0xff},
	{0x1f, 0x77, 0xb4, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
}

// RenderPNG draws the border boxes of a laid-out tree, each labeled at its
// top left corner. scale is the number of image pixels per layout pixel;
// values ≤ 0 are taken as 1. Nodes with an empty box are not drawn.
func RenderPNG(t *flex.Tree, root flex.NodeID, scale float32, opts ...Option) *image.RGBA {
	o := makeOptions(opts)
	if scale <= 0 {
		scale = 1
	}
	l := t.Layout(root)
	w, h := pixels(dimen.OrElse(l.Width(), 0), scale), pixels(dimen.OrElse(l.Height(), 0), scale)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	origin := make(map[flex.NodeID]dimen.Point)
	_ = t.Walk(root, func(n flex.NodeID, depth int) error {
		pos := dimen.Origin
		if n != root {
			pos = origin[t.Owner(n)]
			pos.Shift(dimen.Point{X: t.Layout(n).Left(), Y: t.Layout(n).Top()})
		}
		origin[n] = pos
		box := t.Layout(n)
		if t.Style(n).Display == flex.DisplayNone || box.Width() <= 0 || box.Height() <= 0 {
			return nil
		}
		r := image.Rect(
			pixels(pos.X, scale), pixels(pos.Y, scale),
			pixels(pos.X+box.Width(), scale), pixels(pos.Y+box.Height(), scale),
		)
		c := palette[depth%len(palette)]
		outline(img, r, c)
		label(img, r, o.label(n), c)
		tracer().Debugf("node %s drawn at %v", o.label(n), r)
		return nil
	})
	return img
}

// WritePNG encodes an image created by RenderPNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func pixels(x, scale float32) int {
	return int(math.Round(float64(x * scale)))
}

func outline(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

func label(img *image.RGBA, r image.Rectangle, text string, c color.Color) {
	face := basicfont.Face7x13
	if r.Dx() < face.Advance+4 || r.Dy() < face.Height+2 {
		return // no room for a label
	}
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(r.Min.X+2, r.Min.Y+face.Ascent+1),
	}
	d.DrawString(text)
}
