package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
)

// Rasterize paints s on a new gg context of the surface's size.
func Rasterize(s *Surface) (*gg.Context, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	dc := gg.NewContext(int(s.Width+0.5), int(s.Height+0.5))
	bg := s.Background.Clamped()
	dc.ClearWithColor(gg.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 1})
	for _, c := range s.circles {
		dc.SetColor(RGBA(c.Fill))
		dc.DrawCircle(c.X, c.Y, c.R)
		if err := dc.Fill(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("render: fill circle at (%g,%g): %w", c.X, c.Y, err)
		}
	}
	return dc, nil
}

// EncodePNG writes s as a PNG image.
func EncodePNG(w io.Writer, s *Surface) error {
	dc, err := Rasterize(s)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
