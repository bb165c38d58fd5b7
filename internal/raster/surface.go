package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// White is the canvas background color.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Surface owns the pixel buffer that every tool draws into. All coordinates
// are buffer pixels; anything outside the buffer is clipped per pixel and
// never an error.
type Surface struct {
	img *image.NRGBA
}

// NewSurface returns a white surface of the given size.
func NewSurface(width, height int) *Surface {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	s := &Surface{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
	s.Clear()
	return s
}

func (s *Surface) Width() int  { return s.img.Rect.Dx() }
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Image exposes the live buffer for rendering. Callers must not mutate it.
func (s *Surface) Image() *image.NRGBA { return s.img }

// At returns the pixel at x,y, or the zero color outside the buffer.
func (s *Surface) At(x, y int) color.NRGBA {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return color.NRGBA{}
	}
	return s.img.NRGBAAt(x, y)
}

// SetPixel writes one pixel, silently clipping out-of-bounds coordinates.
func (s *Surface) SetPixel(x, y int, c color.NRGBA) {
	if !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}
	s.img.SetNRGBA(x, y, c)
}

// Clear fills the whole buffer with the white background.
func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(White), image.Point{}, draw.Src)
}

// DrawImage composites src onto the surface with its top-left corner at the
// given point.
func (s *Surface) DrawImage(src image.Image, at image.Point) {
	r := src.Bounds().Sub(src.Bounds().Min).Add(at)
	draw.Draw(s.img, r, src, src.Bounds().Min, draw.Over)
}

// DrawStroke draws one capsule-shaped segment of a freehand stroke. It is
// called once per pointer-motion sample with from = the previous sample.
// Zero-length segments are no-ops; with roundCap false the end caps are cut
// flat (butt caps).
func (s *Surface) DrawStroke(from, to image.Point, col color.NRGBA, width int, roundCap bool) {
	if from == to {
		return
	}
	if width < 1 {
		width = 1
	}
	radius := float64(width) / 2

	pad := width/2 + 1
	x0 := max(min(from.X, to.X)-pad, s.img.Rect.Min.X)
	x1 := min(max(from.X, to.X)+pad, s.img.Rect.Max.X-1)
	y0 := max(min(from.Y, to.Y)-pad, s.img.Rect.Min.Y)
	y1 := min(max(from.Y, to.Y)+pad, s.img.Rect.Max.Y-1)

	ax, ay := float64(from.X), float64(from.Y)
	bx, by := float64(to.X), float64(to.Y)
	dx, dy := bx-ax, by-ay
	segLenSq := dx*dx + dy*dy

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px, py := float64(x), float64(y)
			t := ((px-ax)*dx + (py-ay)*dy) / segLenSq
			if roundCap {
				t = math.Min(math.Max(t, 0), 1)
			} else if t < 0 || t > 1 {
				continue
			}
			cx, cy := ax+t*dx, ay+t*dy
			if math.Hypot(px-cx, py-cy) <= radius {
				s.img.SetNRGBA(x, y, col)
			}
		}
	}
}

// ShapeKind selects the primitive drawn by DrawShape.
type ShapeKind int

const (
	ShapeLine ShapeKind = iota
	ShapeRectangle
	ShapeEllipse
)

// DrawShape draws the outline of the primitive spanning the rectangle
// defined by anchor and end.
func (s *Surface) DrawShape(kind ShapeKind, anchor, end image.Point, col color.NRGBA, width int) {
	if width < 1 {
		width = 1
	}
	switch kind {
	case ShapeLine:
		s.DrawStroke(anchor, end, col, width, false)
	case ShapeRectangle:
		r := image.Rectangle{Min: anchor, Max: end}.Canon()
		tl := r.Min
		tr := image.Point{X: r.Max.X, Y: r.Min.Y}
		bl := image.Point{X: r.Min.X, Y: r.Max.Y}
		br := r.Max
		s.DrawStroke(tl, tr, col, width, true)
		s.DrawStroke(tr, br, col, width, true)
		s.DrawStroke(br, bl, col, width, true)
		s.DrawStroke(bl, tl, col, width, true)
	case ShapeEllipse:
		s.drawEllipse(anchor, end, col, width)
	}
}

// drawEllipse stamps round dabs along the parametric outline of the ellipse
// inscribed in the anchor/end rectangle.
func (s *Surface) drawEllipse(anchor, end image.Point, col color.NRGBA, width int) {
	r := image.Rectangle{Min: anchor, Max: end}.Canon()
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	if rx == 0 && ry == 0 {
		return
	}
	cx := float64(r.Min.X) + rx
	cy := float64(r.Min.Y) + ry
	radius := float64(width) / 2
	if radius < 0.5 {
		radius = 0.5
	}

	// Enough steps that consecutive dabs overlap.
	steps := int(4 * math.Ceil(math.Max(rx, ry)) * 2)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		s.fillDisc(cx+rx*math.Cos(theta), cy+ry*math.Sin(theta), radius, col)
	}
}

// fillDisc sets every pixel whose center lies within r of (cx, cy).
func (s *Surface) fillDisc(cx, cy, r float64, col color.NRGBA) {
	x0 := max(int(math.Floor(cx-r)), s.img.Rect.Min.X)
	x1 := min(int(math.Ceil(cx+r)), s.img.Rect.Max.X-1)
	y0 := max(int(math.Floor(cy-r)), s.img.Rect.Min.Y)
	y1 := min(int(math.Ceil(cy+r)), s.img.Rect.Max.Y-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= r {
				s.img.SetNRGBA(x, y, col)
			}
		}
	}
}

// Resize reallocates the buffer to the new dimensions, keeping the existing
// content anchored at the top-left and exposing new area as white.
func (s *Surface) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == s.Width() && height == s.Height() {
		return
	}
	next := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(next, next.Rect, image.NewUniform(White), image.Point{}, draw.Src)
	draw.Draw(next, s.img.Rect, s.img, s.img.Rect.Min, draw.Src)
	s.img = next
}
