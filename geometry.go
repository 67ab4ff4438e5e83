package lensicon

import "math"

// Proportions of the lens glyph relative to the icon size.
const (
	radiusRatio    = 0.25
	lineWidthRatio = 0.08
	shiftRatio     = 0.05
	handleInner    = 0.5
	handleOuter    = 1.3
)

// Geometry holds the pixel measurements of the lens glyph for one icon size.
// Every field is derived from Size; see NewGeometry.
type Geometry struct {
	Size int

	// Center is the canvas midpoint, shared by both axes.
	Center int

	// Radius of the innermost lens outline.
	Radius int

	// LineWidth is the stroke thickness of the outline and the handle.
	LineWidth int

	// Shift moves the lens up and to the left of Center.
	Shift int

	// Lens is the bounding box of the innermost outline, in inclusive
	// pixel coordinates.
	Lens Box

	// HandleStart and HandleEnd lie on the 45° diagonal through Center.
	HandleStart Point
	HandleEnd   Point
}

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Box is an axis-aligned box with inclusive pixel edges.
type Box struct {
	Left, Top, Right, Bottom int
}

// Inset returns b grown by n pixels on every side (shrunk for negative n).
func (b Box) Inset(n int) Box {
	return Box{
		Left:   b.Left - n,
		Top:    b.Top - n,
		Right:  b.Right + n,
		Bottom: b.Bottom + n,
	}
}

// NewGeometry computes the glyph layout for a square icon of the given size.
// Fractional measurements are truncated toward zero, except LineWidth which
// is rounded and never below one pixel.
func NewGeometry(size int) Geometry {
	fs := float64(size)
	center := size / 2
	radius := int(fs * radiusRatio)
	shift := int(fs * shiftRatio)

	inner := center + int(float64(radius)*handleInner)
	outer := center + int(float64(radius)*handleOuter)

	return Geometry{
		Size:      size,
		Center:    center,
		Radius:    radius,
		LineWidth: StrokeWidth(size),
		Shift:     shift,
		Lens: Box{
			Left:   center - radius - shift,
			Top:    center - radius - shift,
			Right:  center + radius - shift,
			Bottom: center + radius - shift,
		},
		HandleStart: Point{X: inner, Y: inner},
		HandleEnd:   Point{X: outer, Y: outer},
	}
}

// StrokeWidth returns max(1, round(0.08*size)).
func StrokeWidth(size int) int {
	w := int(math.Round(float64(size) * lineWidthRatio))
	if w < 1 {
		return 1
	}
	return w
}

// LensCenter returns the midpoint of the lens box in pixel-center
// coordinates, ready to pass to the drawing context.
func (g Geometry) LensCenter() (x, y float64) {
	x = float64(g.Lens.Left+g.Lens.Right)/2 + 0.5
	y = float64(g.Lens.Top+g.Lens.Bottom)/2 + 0.5
	return x, y
}

// HandleOffsets returns the pixel shifts used to thicken the handle:
// i - LineWidth/2 for i in [0, LineWidth).
func (g Geometry) HandleOffsets() []int {
	offsets := make([]int, g.LineWidth)
	for i := range offsets {
		offsets[i] = i - g.LineWidth/2
	}
	return offsets
}
