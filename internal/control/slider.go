// Package control models the slider panel of the interactive pattern: five
// range inputs, each with a readonly readout, laid out in a column.
package control

import (
	"fmt"
	"math"

	"github.com/iburimskiy/radial-dots/internal/config"
	"github.com/iburimskiy/radial-dots/internal/pattern"
)

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Slider is one range input.
type Slider struct {
	config.Slider
	Track Rect

	value float64
}

// NewSlider returns a slider at its default value.
func NewSlider(spec config.Slider, track Rect) *Slider {
	s := &Slider{Slider: spec, Track: track}
	s.value = s.snap(spec.Default)
	return s
}

// Value is the current value.
func (s *Slider) Value() float64 { return s.value }

// Set snaps v to the slider step, clamps it to the range and reports whether
// the value changed.
func (s *Slider) Set(v float64) bool {
	v = s.snap(v)
	if v == s.value {
		return false
	}
	s.value = v
	return true
}

// Nudge moves the value by n steps.
func (s *Slider) Nudge(n int) bool {
	return s.Set(s.value + float64(n)*s.Step)
}

// SetFromX sets the value from a cursor x position over the track.
func (s *Slider) SetFromX(x int) bool {
	pos := 0.0
	if s.Track.W > 0 {
		pos = clamp01(float64(x-s.Track.X) / float64(s.Track.W))
	}
	return s.Set(s.Min + pos*(s.Max-s.Min))
}

// Position is the value as a 0..1 share of the range.
func (s *Slider) Position() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.value - s.Min) / (s.Max - s.Min)
}

// Readout is the text shown next to the slider.
func (s *Slider) Readout() string {
	if s.Percent {
		return fmt.Sprintf("%.0f%%", s.value)
	}
	return fmt.Sprintf("%g", s.value)
}

func (s *Slider) snap(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ParamsFrom copies the slider values into base. Sliders with unknown names
// are ignored.
func ParamsFrom(base pattern.Params, sliders []*Slider) pattern.Params {
	p := base
	for _, s := range sliders {
		switch s.Name {
		case config.SliderLines:
			p.LineCount = int(s.value)
		case config.SliderSteps:
			p.StepsPerLine = int(s.value)
		case config.SliderDotSize:
			p.DotBaseRadius = s.value
		case config.SliderRMin:
			p.InnerRadius = s.value
		case config.SliderEvenMax:
			p.EvenLineFraction = s.value / 100
		}
	}
	return p
}
