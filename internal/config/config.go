package config

import "github.com/iburimskiy/radial-dots/internal/pattern"

const (
	// Drawing surface
	CanvasWidth  = 600
	CanvasHeight = 600
	Margin       = 20

	Background = "#0C4C5F" // teal/blue
	DotColor   = "#FFFFFF"
	DotClass   = "dot"

	// Static pattern
	StaticLines     = 100
	StaticSteps     = 60
	StaticDotRadius = 2

	// Control panel, to the right of the canvas
	PanelWidth   = 260
	PanelPadding = 20
	SliderHeight = 12
	SliderGap    = 56

	WindowWidth  = CanvasWidth + PanelWidth
	WindowHeight = CanvasHeight

	// Export button
	ButtonWidth  = 120
	ButtonHeight = 40
)

// Slider describes one numeric range input of the control panel.
type Slider struct {
	Name     string
	Label    string
	Min, Max float64
	Step     float64
	Default  float64
	Percent  bool // readout as "NN%"
}

// Slider names, in panel order.
const (
	SliderLines   = "lines"
	SliderSteps   = "steps"
	SliderDotSize = "dotSize"
	SliderRMin    = "rMin"
	SliderEvenMax = "evenMax"
)

// Sliders lists the controls of the interactive variant.
var Sliders = []Slider{
	{Name: SliderLines, Label: "Lines", Min: 2, Max: 200, Step: 1, Default: 100},
	{Name: SliderSteps, Label: "Steps per line", Min: 2, Max: 100, Step: 1, Default: 60},
	{Name: SliderDotSize, Label: "Dot size", Min: 1, Max: 10, Step: 1, Default: 2},
	{Name: SliderRMin, Label: "Inner radius", Min: 0, Max: 200, Step: 1, Default: 0},
	{Name: SliderEvenMax, Label: "Even line max", Min: 0, Max: 100, Step: 1, Default: 50, Percent: true},
}

// StaticParams is the fixed-constant pattern.
func StaticParams() pattern.Params {
	return pattern.Params{
		Variant:          pattern.Static,
		LineCount:        StaticLines,
		StepsPerLine:     StaticSteps,
		DotBaseRadius:    StaticDotRadius,
		EvenLineFraction: 1,
		Width:            CanvasWidth,
		Height:           CanvasHeight,
		Margin:           Margin,
	}
}

// InteractiveParams is the interactive pattern at the slider defaults.
func InteractiveParams() pattern.Params {
	p := StaticParams()
	p.Variant = pattern.Interactive
	for _, s := range Sliders {
		switch s.Name {
		case SliderLines:
			p.LineCount = int(s.Default)
		case SliderSteps:
			p.StepsPerLine = int(s.Default)
		case SliderDotSize:
			p.DotBaseRadius = s.Default
		case SliderRMin:
			p.InnerRadius = s.Default
		case SliderEvenMax:
			p.EvenLineFraction = s.Default / 100
		}
	}
	return p
}
