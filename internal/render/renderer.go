// Package render owns the drawing surface of the radial dot pattern and the
// encoders that turn it into SVG or PNG.
//
// A Renderer is the explicit context of one drawing: it holds the surface
// and the dot color. OnParameterChange is the only entry point the control
// layer needs; it regenerates the pattern and swaps the "dot" circles of the
// surface synchronously.
package render

import (
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/radial-dots/internal/config"
	"github.com/iburimskiy/radial-dots/internal/pattern"
)

// Renderer draws pattern dots onto a Surface.
type Renderer struct {
	Surface  *Surface
	DotColor colorful.Color

	// last reported validation problem, so a drag across invalid values
	// warns once instead of every tick
	lastWarn string
}

// NewRenderer returns a renderer drawing dots of the given color on s.
func NewRenderer(s *Surface, dot colorful.Color) *Renderer {
	return &Renderer{Surface: s, DotColor: dot}
}

// NewDefaultRenderer returns a renderer on a fresh surface using the
// configured canvas size and colors.
func NewDefaultRenderer() *Renderer {
	s := NewSurface(config.CanvasWidth, config.CanvasHeight, MustColor(config.Background))
	return NewRenderer(s, MustColor(config.DotColor))
}

func (r *Renderer) logger() *slog.Logger {
	return Logger().With("component", "renderer")
}

// OnParameterChange regenerates the pattern for p, replaces the dot circles
// of the surface and returns the new descriptors together with the result
// of p.Validate. Invalid parameters are still drawn with the generator's
// fallback; callers decide whether the error matters to them.
func (r *Renderer) OnParameterChange(p pattern.Params) ([]pattern.Dot, error) {
	log := r.logger()
	err := p.Validate()
	switch {
	case err == nil:
		r.lastWarn = ""
	case err.Error() != r.lastWarn:
		r.lastWarn = err.Error()
		log.Warn("drawing with invalid parameters", "err", err)
	}

	dots := pattern.Generate(p)
	circles := make([]Circle, len(dots))
	for i, d := range dots {
		x, y := d.Position(r.Surface.Width, r.Surface.Height)
		circles[i] = Circle{X: x, Y: y, R: d.Size, Fill: r.DotColor}
	}
	r.Surface.Replace(config.DotClass, circles)

	log.Debug("pattern redrawn",
		"variant", p.Variant,
		"lines", p.LineCount,
		"steps", p.StepsPerLine,
		"dots", len(dots))
	return dots, err
}

// Render is OnParameterChange in free-function form.
func Render(r *Renderer, p pattern.Params) ([]pattern.Dot, error) {
	return r.OnParameterChange(p)
}
