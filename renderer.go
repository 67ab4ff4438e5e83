package lensicon

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gg"

	"github.com/pdslens/lensicon/internal/imgfmt"
)

// Renderer draws the lens icon. A Renderer holds only its options, so one
// value can render any number of sizes; each call owns its own canvas.
type Renderer struct {
	opts rendererOptions
}

// NewRenderer creates a Renderer. Without options it draws the glyph with
// layered 1px strokes.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o}
}

// Mode returns the stroke technique in use.
func (r *Renderer) Mode() StrokeMode {
	return r.opts.mode
}

// Render draws a size×size icon and returns it as an opaque RGBA image.
func (r *Renderer) Render(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	g := NewGeometry(size)
	Logger().Debug("lensicon: geometry",
		"size", size,
		"radius", g.Radius,
		"lineWidth", g.LineWidth,
		"shift", g.Shift,
		"mode", r.opts.mode.String())

	dc := gg.NewContext(size, size)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(Background)

	if !r.opts.placeholder {
		dc.SetColor(Foreground.Color())
		var err error
		switch r.opts.mode {
		case StrokeNative:
			err = drawNative(dc, g)
		default:
			err = drawLayered(dc, g)
		}
		if err != nil {
			return nil, fmt.Errorf("lensicon: draw %dpx icon: %w", size, err)
		}
	}

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("lensicon: flush: %w", err)
	}
	return toRGBA(dc.Image()), nil
}

// RenderFile renders a size×size icon and writes it to path. The image
// format follows the file extension, which is checked before drawing.
func (r *Renderer) RenderFile(size int, path string) error {
	if err := CheckDependencies(path); err != nil {
		return err
	}
	return r.renderFile(size, path)
}

// renderFile is RenderFile for paths already passed through
// CheckDependencies.
func (r *Renderer) renderFile(size int, path string) error {
	img, err := r.Render(size)
	if err != nil {
		return err
	}
	if err := imgfmt.WriteFile(path, img); err != nil {
		return fmt.Errorf("lensicon: write %s: %w", path, err)
	}
	Logger().Info("lensicon: icon written", "path", path, "size", size)
	return nil
}

// ringPad widens the lens ring slightly past the pixel edges so that the
// curved boundary still fully covers the pixels on the ring's axes.
const ringPad = 0.1

// drawLayered covers the pixels of LineWidth concentric 1px outlines, lens
// layer i being the lens box grown by i pixels. The layers are filled as one
// even-odd annulus so ring pixels reach full coverage instead of
// compounding partial anti-aliased strokes. Handle layers are 1px segments
// shifted along x and along y by each of g.HandleOffsets.
func drawLayered(dc *gg.Context, g Geometry) error {
	cx, cy := g.LensCenter()
	outer := g.Lens.Inset(g.LineWidth - 1)
	dc.DrawEllipse(cx, cy,
		float64(g.Lens.Right-g.Lens.Left)/2-0.5-ringPad,
		float64(g.Lens.Bottom-g.Lens.Top)/2-0.5-ringPad)
	dc.DrawEllipse(cx, cy,
		float64(outer.Right-outer.Left)/2+0.5+ringPad,
		float64(outer.Bottom-outer.Top)/2+0.5+ringPad)
	dc.SetFillRule(gg.FillRuleEvenOdd)
	err := dc.Fill()
	dc.SetFillRule(gg.FillRuleNonZero)
	if err != nil {
		return err
	}

	dc.SetLineWidth(1)
	dc.SetLineCap(gg.LineCapButt)
	s, e := g.HandleStart, g.HandleEnd
	for _, off := range g.HandleOffsets() {
		drawPixelLine(dc, s.X+off, s.Y, e.X+off, e.Y)
		if err := dc.Stroke(); err != nil {
			return err
		}
		drawPixelLine(dc, s.X, s.Y+off, e.X, e.Y+off)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// drawNative strokes the lens once at full width over the same ring the
// layered mode covers, and the handle as a single round-capped segment.
func drawNative(dc *gg.Context, g Geometry) error {
	w := float64(g.LineWidth)
	dc.SetLineWidth(w)

	cx, cy := g.LensCenter()
	grow := (w - 1) / 2
	rx := float64(g.Lens.Right-g.Lens.Left)/2 + grow
	ry := float64(g.Lens.Bottom-g.Lens.Top)/2 + grow
	dc.SetLineCap(gg.LineCapButt)
	dc.DrawEllipse(cx, cy, rx, ry)
	if err := dc.Stroke(); err != nil {
		return err
	}

	dc.SetLineCap(gg.LineCapRound)
	drawPixelLine(dc, g.HandleStart.X, g.HandleStart.Y, g.HandleEnd.X, g.HandleEnd.Y)
	return dc.Stroke()
}

// drawPixelLine adds a segment between two pixel centers to the path.
func drawPixelLine(dc *gg.Context, x1, y1, x2, y2 int) {
	dc.DrawLine(float64(x1)+0.5, float64(y1)+0.5, float64(x2)+0.5, float64(y2)+0.5)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
