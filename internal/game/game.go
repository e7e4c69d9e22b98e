// Package game is the interactive window: the pattern canvas on the left,
// the slider panel on the right and an export button below the sliders.
package game

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/radial-dots/internal/config"
	"github.com/iburimskiy/radial-dots/internal/control"
	"github.com/iburimskiy/radial-dots/internal/pattern"
	"github.com/iburimskiy/radial-dots/internal/render"
)

type Game struct {
	renderer *render.Renderer
	panel    *control.Panel
	dots     []pattern.Dot
	params   pattern.Params

	// cached colors of the surface
	background color.RGBA
	dotColor   color.RGBA

	// export button state
	button        control.Rect
	buttonHovered bool
	buttonPressed bool

	lastErr    error
	lastExport string
}

// New builds the window state and draws the pattern at the slider defaults.
func New(r *render.Renderer) *Game {
	g := &Game{
		renderer:   r,
		panel:      control.NewDefaultPanel(),
		background: render.RGBA(r.Surface.Background),
		dotColor:   render.RGBA(r.DotColor),
	}
	last := g.panel.Sliders[len(g.panel.Sliders)-1].Track
	g.button = control.Rect{
		X: last.X,
		Y: last.Y + config.SliderGap,
		W: config.ButtonWidth,
		H: config.ButtonHeight,
	}
	g.panel.OnChange = g.redraw
	g.redraw(g.panel.Params())
	return g
}

func (g *Game) redraw(p pattern.Params) {
	g.params = p
	g.dots, g.lastErr = g.renderer.OnParameterChange(p)
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()

	// Sliders
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.panel.Press(mouseX, mouseY)
	}
	if g.panel.Dragging() {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			g.panel.Drag(mouseX)
		} else {
			g.panel.Release()
		}
	}

	// Export button
	g.buttonHovered = g.button.Contains(mouseX, mouseY)
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.exportDialog(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}

	// Keyboard
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		delta := 1
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			delta = -1
		}
		g.panel.FocusNext(delta)
	case repeating(ebiten.KeyArrowRight), repeating(ebiten.KeyArrowUp):
		g.panel.Nudge(1)
	case repeating(ebiten.KeyArrowLeft), repeating(ebiten.KeyArrowDown):
		g.panel.Nudge(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.panel.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 28, B: 36, A: 255})
	g.drawCanvas(screen)
	g.drawPanel(screen)
	g.drawButton(screen)

	status := fmt.Sprintf("%d dots", len(g.dots))
	if g.lastExport != "" {
		status += " | saved " + g.lastExport
	}
	if g.lastErr != nil {
		status += " | " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 8, config.CanvasHeight-20)
}

func (g *Game) drawCanvas(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.CanvasWidth, config.CanvasHeight, g.background, false)
	for _, c := range g.renderer.Surface.Circles(config.DotClass) {
		vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.R), g.dotColor, true)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	for i, s := range g.panel.Sliders {
		tr := s.Track
		label := s.Label + ": " + s.Readout()
		ebitenutil.DebugPrintAt(screen, label, tr.X, tr.Y-18)

		track := color.RGBA{R: 60, G: 70, B: 90, A: 255}
		if i == g.panel.Focus() {
			track = color.RGBA{R: 100, G: 120, B: 160, A: 255}
		}
		vector.DrawFilledRect(screen, float32(tr.X), float32(tr.Y+tr.H/2-2), float32(tr.W), 4, track, false)

		knobX := float64(tr.X) + s.Position()*float64(tr.W)
		knobY := float64(tr.Y) + float64(tr.H)/2
		vector.DrawFilledCircle(screen, float32(knobX), float32(knobY), float32(tr.H)/2+1, color.White, true)
	}
}

func (g *Game) drawButton(screen *ebiten.Image) {
	b := g.button
	var bg color.Color
	if g.buttonPressed {
		bg = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bg = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Export..."
	textX := b.X + (b.W-len(text)*charWidth)/2
	textY := b.Y + (b.H-charHeight)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// exportDialog asks for a file name and writes the surface there.
func (g *Game) exportDialog() error {
	path, err := zenity.SelectFileSave(
		zenity.Title("Export pattern"),
		zenity.Filename("pattern.svg"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{
			{Name: "SVG image", Patterns: []string{"*.svg"}},
			{Name: "PNG image", Patterns: []string{"*.png"}},
		},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	path = render.WithDefaultExt(path)
	if err := render.WriteFile(path, g.renderer.Surface); err != nil {
		return err
	}
	g.lastExport = path
	render.Logger().Info("exported", "component", "game", "path", path, "params", fmt.Sprintf("%+v", g.params))
	return nil
}
