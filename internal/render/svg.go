package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// EncodeSVG writes s as a standalone SVG document: a background rectangle
// followed by every circle, in drawing order, carrying its class.
func EncodeSVG(w io.Writer, s *Surface) error {
	if err := s.check(); err != nil {
		return err
	}
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(s.Width, s.Height)
	canvas.Rect(0, 0, s.Width, s.Height, `class="background"`, fmt.Sprintf(`fill="%s"`, s.Background.Hex()))
	for _, c := range s.circles {
		canvas.Circle(c.X, c.Y, c.R, fmt.Sprintf(`class="%s"`, c.Class), fmt.Sprintf(`fill="%s"`, c.Fill.Hex()))
	}
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = fmt.Errorf("render: write svg: %w", err)
	}
	return n, err
}
