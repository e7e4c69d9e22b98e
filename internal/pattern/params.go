// Package pattern generates the radial dot pattern: a set of spokes around
// the canvas center, each carrying an evenly interpolated run of dots.
//
// Generation is pure. The same Params always produce the same ordered slice
// of Dot values, so callers may regenerate freely on every input change.
package pattern

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter reports a parameter set that cannot produce a sane
// pattern. Generate still returns its best-effort fallback for such input.
var ErrInvalidParameter = errors.New("pattern: invalid parameter")

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("pattern: unknown variant")

// Variant selects the generation rules.
type Variant int

const (
	// Static spreads every spoke evenly over [0, MaxRadius] and draws all
	// dots at DotBaseRadius.
	Static Variant = iota
	// Interactive offsets odd spokes by half a step, shortens even spokes
	// to EvenLineFraction of MaxRadius and tapers dot size near the rim.
	Interactive
)

func (v Variant) String() string {
	switch v {
	case Static:
		return "static"
	case Interactive:
		return "interactive"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps "static" or "interactive" to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "static":
		return Static, nil
	case "interactive":
		return Interactive, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Params is the full input of the generator.
type Params struct {
	Variant Variant

	LineCount    int // number of spokes
	StepsPerLine int // dots per spoke, at least 2

	// DotBaseRadius is the draw radius used by the static variant. The
	// interactive taper is fixed at 3→1 and does not read it.
	DotBaseRadius float64

	InnerRadius      float64 // distance of the first dot from the center
	EvenLineFraction float64 // share of MaxRadius reached by even spokes, 0..1

	Width, Height, Margin float64
}

// MaxRadius is the outermost reachable distance from the center.
func (p Params) MaxRadius() float64 {
	return math.Min(p.Width, p.Height)/2 - p.Margin
}

// Center returns the canvas center.
func (p Params) Center() (cx, cy float64) {
	return p.Width / 2, p.Height / 2
}

// Validate reports the first problem with p, wrapped in ErrInvalidParameter.
// A nil result means Generate produces exactly LineCount*StepsPerLine dots
// with non-decreasing radii along every spoke.
func (p Params) Validate() error {
	switch {
	case p.Variant != Static && p.Variant != Interactive:
		return fmt.Errorf("%w: variant %v", ErrInvalidParameter, p.Variant)
	case p.LineCount < 1:
		return fmt.Errorf("%w: line count %d < 1", ErrInvalidParameter, p.LineCount)
	case p.StepsPerLine < 2:
		return fmt.Errorf("%w: steps per line %d < 2", ErrInvalidParameter, p.StepsPerLine)
	}
	if err := p.CheckCanvas(); err != nil {
		return err
	}
	switch {
	case p.InnerRadius < 0:
		return fmt.Errorf("%w: inner radius %g < 0", ErrInvalidParameter, p.InnerRadius)
	case p.EvenLineFraction < 0 || p.EvenLineFraction > 1:
		return fmt.Errorf("%w: even line fraction %g outside [0,1]", ErrInvalidParameter, p.EvenLineFraction)
	}
	if p.Variant == Interactive {
		if maxR := p.MaxRadius(); maxR <= p.InnerRadius {
			return fmt.Errorf("%w: max radius %g <= inner radius %g", ErrInvalidParameter, maxR, p.InnerRadius)
		}
		if evenMax := p.MaxRadius() * p.EvenLineFraction; evenMax < p.InnerRadius {
			return fmt.Errorf("%w: even spoke extent %g < inner radius %g", ErrInvalidParameter, evenMax, p.InnerRadius)
		}
	} else if p.MaxRadius() <= 0 {
		return fmt.Errorf("%w: max radius %g <= 0", ErrInvalidParameter, p.MaxRadius())
	}
	return nil
}

// CheckCanvas reports problems that leave nothing drawable: a non-positive
// canvas, a negative margin or a non-positive dot radius. Unlike the other
// Validate failures these have no fallback rendering.
func (p Params) CheckCanvas() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: canvas %gx%g", ErrInvalidParameter, p.Width, p.Height)
	case p.Margin < 0:
		return fmt.Errorf("%w: margin %g < 0", ErrInvalidParameter, p.Margin)
	case p.DotBaseRadius <= 0:
		return fmt.Errorf("%w: dot radius %g <= 0", ErrInvalidParameter, p.DotBaseRadius)
	}
	return nil
}
