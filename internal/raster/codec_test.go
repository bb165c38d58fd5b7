package raster

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func makeTestImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestCodec_EncodeDecodeRoundTrip(t *testing.T) {
	src := makeTestImage(8, 6, color.NRGBA{R: 40, G: 80, B: 120, A: 255})

	testCases := []struct {
		format   Format
		lossless bool
	}{
		{FormatPNG, true},
		{FormatBMP, true},
		{FormatJPEG, false},
	}
	for _, tc := range testCases {
		t.Run(string(tc.format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, src, tc.format); err != nil {
				t.Fatalf("encode: %v", err)
			}
			img, err := Decode(buf.Bytes())
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
				t.Fatalf("decoded size = %v, want 8x6", img.Bounds())
			}
			if tc.lossless {
				r, g, b, _ := img.At(3, 3).RGBA()
				if uint8(r>>8) != 40 || uint8(g>>8) != 80 || uint8(b>>8) != 120 {
					t.Errorf("decoded pixel = (%d,%d,%d), want (40,80,120)", r>>8, g>>8, b>>8)
				}
			}
		})
	}
}

func TestCodec_EncodeUnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, makeTestImage(2, 2, White), Format("gif")); err == nil {
		t.Error("encoding an unsupported format did not fail")
	}
}

func TestCodec_DecodeInvalidData(t *testing.T) {
	testCases := [][]byte{
		nil,
		{},
		[]byte("definitely not an image"),
		{0x89, 0x50, 0x4e, 0x47, 0x00}, // truncated PNG signature
	}
	for _, data := range testCases {
		if _, err := Decode(data); !errors.Is(err, ErrInvalidImage) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidImage", data, err)
		}
	}
}

func TestCodec_FormatForExtension(t *testing.T) {
	testCases := []struct {
		ext  string
		want Format
		ok   bool
	}{
		{".png", FormatPNG, true},
		{"png", FormatPNG, true},
		{".jpg", FormatJPEG, true},
		{".jpeg", FormatJPEG, true},
		{".bmp", FormatBMP, true},
		{".gif", "", false},
		{"", "", false},
	}
	for _, tc := range testCases {
		got, ok := FormatForExtension(tc.ext)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FormatForExtension(%q) = (%q, %v), want (%q, %v)", tc.ext, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCodec_FitToCanvas(t *testing.T) {
	testCases := []struct {
		name         string
		srcW, srcH   int
		dstW, dstH   int
		wantW, wantH int
	}{
		{"downscale wide", 200, 100, 100, 100, 100, 50},
		{"downscale tall", 100, 200, 100, 100, 50, 100},
		{"upscale", 50, 50, 100, 100, 100, 100},
		{"exact", 64, 48, 64, 48, 64, 48},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			src := makeTestImage(tc.srcW, tc.srcH, red)
			got := FitToCanvas(src, tc.dstW, tc.dstH)
			if got.Bounds().Dx() != tc.wantW || got.Bounds().Dy() != tc.wantH {
				t.Errorf("fitted size = %dx%d, want %dx%d",
					got.Bounds().Dx(), got.Bounds().Dy(), tc.wantW, tc.wantH)
			}
		})
	}
}
