package raster

import (
	"image"
	"image/color"
)

// DefaultFillTolerance is the per-channel similarity used by the bucket tool.
const DefaultFillTolerance = 10

// FloodFill recolors the connected region of pixels similar to the seed
// pixel with fill. Similarity is componentwise on R, G and B (alpha is
// ignored): a pixel matches when every channel is within tolerance of the
// seed's. Filling a region that already has the fill color is a no-op, as is
// an out-of-bounds seed.
//
// The fill is a scanline seed fill: whole row spans are recolored per work
// item instead of single pixels, which keeps the auxiliary queue small and
// the total cost proportional to the pixels touched.
func (s *Surface) FloodFill(seed image.Point, fill color.NRGBA, tolerance uint8) {
	if !seed.In(s.img.Rect) {
		return
	}
	target := s.img.NRGBAAt(seed.X, seed.Y)
	if target.R == fill.R && target.G == fill.G && target.B == fill.B {
		return
	}

	w := s.Width()
	h := s.Height()
	// With a nonzero tolerance a recolored pixel can still match the
	// target, so track visited pixels explicitly.
	visited := make([]bool, w*h)
	matches := func(x, y int) bool {
		if visited[y*w+x] {
			return false
		}
		c := s.img.NRGBAAt(x, y)
		return chanDiff(c.R, target.R) <= tolerance &&
			chanDiff(c.G, target.G) <= tolerance &&
			chanDiff(c.B, target.B) <= tolerance
	}

	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !matches(p.X, p.Y) {
			continue
		}

		// Extend to the furthest matching pixels on this row.
		x1 := p.X
		for x1 > 0 && matches(x1-1, p.Y) {
			x1--
		}
		x2 := p.X
		for x2 < w-1 && matches(x2+1, p.Y) {
			x2++
		}

		for x := x1; x <= x2; x++ {
			s.img.SetNRGBA(x, p.Y, fill)
			visited[p.Y*w+x] = true
		}

		// Seed the rows above and below wherever they still match.
		for x := x1; x <= x2; x++ {
			if p.Y > 0 && matches(x, p.Y-1) {
				stack = append(stack, image.Point{X: x, Y: p.Y - 1})
			}
			if p.Y < h-1 && matches(x, p.Y+1) {
				stack = append(stack, image.Point{X: x, Y: p.Y + 1})
			}
		}
	}
}

func chanDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
