package lensicon

import "github.com/gogpu/gg"

// StrokeMode selects how thick outlines are produced.
type StrokeMode int

const (
	// StrokeLayered covers the pixels of 1px shapes offset one pixel per
	// layer. The lens ring grows outward from its inner radius.
	StrokeLayered StrokeMode = iota

	// StrokeNative draws each shape once with the stroke width set on the
	// drawing context, covering the same ring as StrokeLayered.
	StrokeNative
)

// String returns the mode name.
func (m StrokeMode) String() string {
	switch m {
	case StrokeLayered:
		return "layered"
	case StrokeNative:
		return "native"
	default:
		return "unknown"
	}
}

// Icon colors.
var (
	Background = gg.Hex("#0066CC")
	Foreground = gg.White
)

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// Default layered strokes
//	r := lensicon.NewRenderer()
//
//	// Single native stroke per shape
//	r := lensicon.NewRenderer(lensicon.WithStrokeMode(lensicon.StrokeNative))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	mode        StrokeMode
	placeholder bool
}

func defaultOptions() rendererOptions {
	return rendererOptions{
		mode: StrokeLayered,
	}
}

// WithStrokeMode sets the outline technique.
func WithStrokeMode(mode StrokeMode) RendererOption {
	return func(o *rendererOptions) {
		o.mode = mode
	}
}

// WithPlaceholder makes the Renderer emit plain background squares with no
// glyph. Useful as stand-in assets with the correct dimensions.
func WithPlaceholder() RendererOption {
	return func(o *rendererOptions) {
		o.placeholder = true
	}
}
