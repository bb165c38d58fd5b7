package export

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestPDF_WritesDocument(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := PDF(&buf, img); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("output does not start with a PDF header")
	}
	if buf.Len() < 500 {
		t.Errorf("output suspiciously small: %d bytes", buf.Len())
	}
}

func TestPDF_TallImageFitsPage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 30, 400))

	var buf bytes.Buffer
	if err := PDF(&buf, img); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("no output for a tall image")
	}
}
