package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Page margin in millimeters.
const margin = 10

// PDF writes a single-page A4 landscape PDF with the canvas image scaled to
// fit inside the page margins.
func PDF(w io.Writer, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding canvas: %w", err)
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	p.RegisterImageOptionsReader("canvas", opts, &buf)

	pageW, pageH := p.GetPageSize()
	maxW := pageW - 2*margin
	maxH := pageH - 2*margin

	b := img.Bounds()
	imgW := float64(b.Dx())
	imgH := float64(b.Dy())
	scale := maxW / imgW
	if imgH*scale > maxH {
		scale = maxH / imgH
	}
	drawW := imgW * scale
	drawH := imgH * scale

	x := (pageW - drawW) / 2
	y := (pageH - drawH) / 2
	p.ImageOptions("canvas", x, y, drawW, drawH, false, opts, 0, "")

	return p.Output(w)
}
