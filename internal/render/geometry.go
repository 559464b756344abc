package render

import "github.com/muurk/ptable/internal/dataset"

// Size is a canvas size in SVG user units.
type Size struct {
	Width  float64
	Height float64
}

// Point is a position in SVG user units.
type Point struct {
	X float64
	Y float64
}

// Canvas computes the document size from the largest period and group in
// elements. An empty slice contributes no content, leaving twice the padding.
func Canvas(elements []dataset.Element, layout dataset.Layout) Size {
	maxPeriod, maxGroup := 0, 0
	for _, el := range elements {
		maxPeriod = max(maxPeriod, el.Period)
		maxGroup = max(maxGroup, el.Group)
	}

	return Size{
		Width:  span(maxGroup, layout.BoxWidth, layout.Gap) + 2*layout.Padding,
		Height: span(maxPeriod, layout.BoxHeight, layout.Gap) + 2*layout.Padding,
	}
}

// span is the extent of n boxes separated by gaps; zero for n == 0.
func span(n int, box, gap float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*box + float64(n-1)*gap
}

// BoxPosition returns the top-left corner of an element's box.
func BoxPosition(el dataset.Element, layout dataset.Layout) Point {
	return Point{
		X: float64(el.Group)*layout.BoxWidth + float64(el.Group-1)*layout.Gap + layout.Padding,
		Y: float64(el.Period)*layout.BoxHeight + float64(el.Period-1)*layout.Gap + layout.Padding,
	}
}
