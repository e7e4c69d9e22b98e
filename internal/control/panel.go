package control

import (
	"github.com/iburimskiy/radial-dots/internal/config"
	"github.com/iburimskiy/radial-dots/internal/pattern"
)

// Panel is the column of sliders. It tracks keyboard focus and an active
// mouse drag, and calls OnChange after every value change.
type Panel struct {
	Sliders []*Slider
	Base    pattern.Params

	// OnChange receives the full parameter set after any slider moves.
	OnChange func(pattern.Params)

	focus    int
	dragging int // index of the dragged slider, -1 when idle
}

// NewPanel lays out one slider per spec starting at (x, y).
func NewPanel(x, y, width int, specs []config.Slider, base pattern.Params) *Panel {
	p := &Panel{Base: base, dragging: -1}
	for i, spec := range specs {
		track := Rect{X: x, Y: y + i*config.SliderGap, W: width, H: config.SliderHeight}
		p.Sliders = append(p.Sliders, NewSlider(spec, track))
	}
	return p
}

// NewDefaultPanel is the panel of the interactive window.
func NewDefaultPanel() *Panel {
	x := config.CanvasWidth + config.PanelPadding
	w := config.PanelWidth - 2*config.PanelPadding
	return NewPanel(x, config.PanelPadding+16, w, config.Sliders, config.InteractiveParams())
}

// Params is the parameter set described by the current slider values.
func (p *Panel) Params() pattern.Params {
	return ParamsFrom(p.Base, p.Sliders)
}

// Focus is the index of the keyboard-focused slider.
func (p *Panel) Focus() int { return p.focus }

// Dragging reports whether a slider is being dragged.
func (p *Panel) Dragging() bool { return p.dragging >= 0 }

// Press starts a drag if (x, y) hits a slider track, focusing it and moving
// its value under the cursor. It reports whether a slider was hit.
func (p *Panel) Press(x, y int) bool {
	for i, s := range p.Sliders {
		if s.Track.Contains(x, y) {
			p.focus = i
			p.dragging = i
			p.apply(s.SetFromX(x))
			return true
		}
	}
	return false
}

// Drag moves the dragged slider to x. The cursor may leave the track.
func (p *Panel) Drag(x int) {
	if p.dragging < 0 {
		return
	}
	p.apply(p.Sliders[p.dragging].SetFromX(x))
}

// Release ends a drag.
func (p *Panel) Release() { p.dragging = -1 }

// FocusNext moves keyboard focus by delta, wrapping around.
func (p *Panel) FocusNext(delta int) {
	n := len(p.Sliders)
	if n == 0 {
		return
	}
	p.focus = ((p.focus+delta)%n + n) % n
}

// Nudge moves the focused slider by n steps.
func (p *Panel) Nudge(n int) {
	if len(p.Sliders) == 0 {
		return
	}
	p.apply(p.Sliders[p.focus].Nudge(n))
}

// Reset restores every slider to its default.
func (p *Panel) Reset() {
	changed := false
	for _, s := range p.Sliders {
		if s.Set(s.Default) {
			changed = true
		}
	}
	p.apply(changed)
}

func (p *Panel) apply(changed bool) {
	if changed && p.OnChange != nil {
		p.OnChange(p.Params())
	}
}
