package render

import (
	"fmt"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/radial-dots/internal/pattern"
)

// Circle is a filled circle primitive tagged with a class.
type Circle struct {
	Class string
	X, Y  float64
	R     float64
	Fill  colorful.Color
}

// Surface is a 2D vector drawing surface: a solid background and an ordered
// list of filled circles. Circles are grouped by class so one group can be
// cleared and redrawn without touching the others.
type Surface struct {
	Width, Height float64
	Background    colorful.Color

	circles []Circle
}

// NewSurface returns an empty surface.
func NewSurface(width, height float64, bg colorful.Color) *Surface {
	return &Surface{Width: width, Height: height, Background: bg}
}

// Replace removes every circle tagged class and appends circles, each of
// which is tagged class regardless of its own Class field.
func (s *Surface) Replace(class string, circles []Circle) {
	s.circles = slices.DeleteFunc(s.circles, func(c Circle) bool { return c.Class == class })
	for _, c := range circles {
		c.Class = class
		s.circles = append(s.circles, c)
	}
}

// Clear removes every circle tagged class.
func (s *Surface) Clear(class string) {
	s.Replace(class, nil)
}

// Circles returns the circles tagged class in drawing order. An empty class
// returns all circles.
func (s *Surface) Circles(class string) []Circle {
	if class == "" {
		return slices.Clone(s.circles)
	}
	var out []Circle
	for _, c := range s.circles {
		if c.Class == class {
			out = append(out, c)
		}
	}
	return out
}

// Len is the total number of circles on the surface.
func (s *Surface) Len() int { return len(s.circles) }

// check reports a surface that cannot be encoded: a non-positive size or a
// circle with a negative radius.
func (s *Surface) check() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("render: surface %gx%g: %w", s.Width, s.Height, pattern.ErrInvalidParameter)
	}
	for _, c := range s.circles {
		if c.R < 0 {
			return fmt.Errorf("render: circle radius %g at (%g,%g): %w", c.R, c.X, c.Y, pattern.ErrInvalidParameter)
		}
	}
	return nil
}
