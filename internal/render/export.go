package render

import (
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DataURIPrefix is the prefix of a base64 SVG data URI.
const DataURIPrefix = "data:image/svg+xml;base64,"

// DataURI encodes an SVG document as a base64 data URI.
func DataURI(svg string) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString([]byte(svg))
}

// Rasterize draws an SVG document into an RGBA image, scaled by scale.
// Shapes and gradients are drawn; text labels are not.
func Rasterize(svg string, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale %v: must be positive", scale)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG: %w", err)
	}

	w := int(math.Ceil(icon.ViewBox.W * scale))
	h := int(math.Ceil(icon.ViewBox.H * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("empty canvas (%dx%d)", w, h)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	return img, nil
}

// WritePNG rasterizes svg and writes it to w as PNG.
func WritePNG(w io.Writer, svg string, scale float64) error {
	img, err := Rasterize(svg, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
