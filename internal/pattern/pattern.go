package pattern

import "math"

// Taper breakpoints for the interactive dot size.
const (
	bulkSize    = 3.0 // size up to taperStart
	rimSize     = 1.0 // size at the outer end of a spoke
	taperStart  = 0.8
	taperLength = 1 - taperStart
)

// Dot describes one circle of the pattern.
type Dot struct {
	Spoke int // spoke index i
	Step  int // position j along the spoke

	Angle    float64 // radians
	Radius   float64 // distance from the center
	Fraction float64 // 0 at the inner end, 1 at the outer end
	Size     float64 // draw radius
}

// Position returns the dot center on a width×height canvas.
func (d Dot) Position(width, height float64) (x, y float64) {
	return width/2 + d.Radius*math.Cos(d.Angle), height/2 + d.Radius*math.Sin(d.Angle)
}

// Generate returns LineCount*StepsPerLine dots ordered spoke by spoke, inner
// to outer. With StepsPerLine == 1 every spoke gets a single dot at its inner
// end. Non-positive counts yield no dots; use Params.Validate to tell why.
func Generate(p Params) []Dot {
	if p.LineCount <= 0 || p.StepsPerLine <= 0 {
		return nil
	}
	if p.Variant == Interactive {
		return generateInteractive(p)
	}
	return generateStatic(p)
}

func generateStatic(p Params) []Dot {
	maxR := p.MaxRadius()
	dots := make([]Dot, 0, p.LineCount*p.StepsPerLine)
	for i := 0; i < p.LineCount; i++ {
		angle := SpokeAngle(i, p.LineCount, false)
		for j := 0; j < p.StepsPerLine; j++ {
			f := StepFraction(j, p.StepsPerLine)
			dots = append(dots, Dot{
				Spoke:    i,
				Step:     j,
				Angle:    angle,
				Radius:   lerp(0, maxR, f),
				Fraction: f,
				Size:     p.DotBaseRadius,
			})
		}
	}
	return dots
}

func generateInteractive(p Params) []Dot {
	oddMax := p.MaxRadius()
	evenMax := oddMax * p.EvenLineFraction

	dots := make([]Dot, 0, p.LineCount*p.StepsPerLine)
	for i := 0; i < p.LineCount; i++ {
		angle := SpokeAngle(i, p.LineCount, true)
		lineMax := oddMax
		if i%2 == 0 {
			lineMax = evenMax
		}
		for j := 0; j < p.StepsPerLine; j++ {
			f := StepFraction(j, p.StepsPerLine)
			dots = append(dots, Dot{
				Spoke:    i,
				Step:     j,
				Angle:    angle,
				Radius:   lerp(p.InnerRadius, lineMax, f),
				Fraction: f,
				Size:     DotSize(f),
			})
		}
	}
	return dots
}

// SpokeAngle is the angle of spoke i out of n. With interleave set, odd
// spokes are rotated by half the spoke spacing.
func SpokeAngle(i, n int, interleave bool) float64 {
	angle := 2 * math.Pi * float64(i) / float64(n)
	if interleave && i%2 == 1 {
		angle += math.Pi / float64(n)
	}
	return angle
}

// StepFraction is j/(steps-1), or 0 when a spoke has a single step.
func StepFraction(j, steps int) float64 {
	if steps < 2 {
		return 0
	}
	return float64(j) / float64(steps-1)
}

// DotSize is the interactive draw radius for a dot at fraction f: constant
// over the first 80% of a spoke, then linear from 3 down to 1 at the rim.
func DotSize(f float64) float64 {
	if f < taperStart {
		return bulkSize
	}
	local := (f - taperStart) / taperLength
	return bulkSize - (bulkSize-rimSize)*local
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
