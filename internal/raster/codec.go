package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// ErrInvalidImage marks image data that could not be decoded. The surface is
// left untouched when a load fails with it.
var ErrInvalidImage = errors.New("invalid image data")

// Format names a supported raster encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
)

// FormatForExtension maps a file extension (with or without the dot) to its
// encoding. The second return is false for unknown extensions.
func FormatForExtension(ext string) (Format, bool) {
	switch ext {
	case "png", ".png":
		return FormatPNG, true
	case "jpg", ".jpg", "jpeg", ".jpeg":
		return FormatJPEG, true
	case "bmp", ".bmp":
		return FormatBMP, true
	}
	return "", false
}

// Decode sniffs and decodes PNG, JPEG or BMP data.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}

// FitToCanvas scales img to the largest size that fits within width x height
// while keeping its aspect ratio, using Lanczos resampling. Images already
// matching the target are cloned unchanged.
func FitToCanvas(img image.Image, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return imaging.Clone(img)
	}
	scale := math.Min(float64(width)/float64(b.Dx()), float64(height)/float64(b.Dy()))
	w := int(math.Round(float64(b.Dx()) * scale))
	h := int(math.Round(float64(b.Dy()) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}
