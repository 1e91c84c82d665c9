package gds

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// ImageToPolygons converts a bitmap into layout geometry: the image is
// converted to grayscale, binarized at threshold, flipped vertically
// (image y grows down, layout y grows up), and every dark pixel becomes a
// 1x1 µm rectangle on layer 1. With flip set, bright pixels are kept
// instead.
//
// PNG, JPEG and BMP inputs are supported.
func ImageToPolygons(r io.Reader, threshold uint8, flip bool) ([]*Polygon, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	var polys []*Polygon
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Luma per ITU-R BT.601, the same weighting image/color uses.
			r16, g16, b16, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			gray := uint8((299*r16 + 587*g16 + 114*b16) / 1000 >> 8)

			dark := gray <= threshold
			if dark == flip {
				continue
			}
			// Flip vertically: layout row 0 is the bottom image row.
			ly := h - 1 - y
			polys = append(polys, Rectangle(
				Pt(float64(x), float64(ly)),
				Pt(float64(x+1), float64(ly+1)),
				1,
			))
		}
	}
	Logger().Debug("image converted",
		"format", format, "width", w, "height", h,
		"threshold", threshold, "pixels", len(polys))
	return polys, nil
}

// ImageFileToPolygons converts an image file into layout geometry.
func ImageFileToPolygons(path string, threshold uint8, flip bool) ([]*Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ImageToPolygons(f, threshold, flip)
}
