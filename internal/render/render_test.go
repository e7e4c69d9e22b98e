package render

import (
	"bytes"
	"errors"
	"image/png"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iburimskiy/radial-dots/internal/config"
	"github.com/iburimskiy/radial-dots/internal/pattern"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#0C4C5F", "#0c4c5f"},
		{"#ffffff", "#ffffff"},
		{"#fff", "#ffffff"},
		{"#000", "#000000"},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
		}
		if got := c.Hex(); got != tt.want {
			t.Errorf("ParseColor(%q).Hex() = %q, want %q", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "white", "#12"} {
		if _, err := ParseColor(bad); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrBadColor", bad, err)
		}
	}
}

func TestRGBA(t *testing.T) {
	c := RGBA(MustColor(config.Background))
	if c.R != 0x0c || c.G != 0x4c || c.B != 0x5f || c.A != 0xff {
		t.Errorf("RGBA(background) = %+v", c)
	}
}

func TestSurfaceReplaceKeepsOtherClasses(t *testing.T) {
	s := NewSurface(100, 100, MustColor("#000"))
	white := MustColor("#fff")
	s.Replace("marker", []Circle{{X: 50, Y: 50, R: 10, Fill: white}})
	s.Replace("dot", []Circle{{X: 1, Y: 1, R: 1}, {X: 2, Y: 2, R: 1}})

	if got := s.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	s.Replace("dot", []Circle{{X: 3, Y: 3, R: 1, Class: "ignored"}})
	if got := len(s.Circles("dot")); got != 1 {
		t.Errorf("dot circles = %d, want 1", got)
	}
	if got := s.Circles("dot")[0]; got.X != 3 || got.Class != "dot" {
		t.Errorf("dot circle = %+v", got)
	}
	if got := len(s.Circles("marker")); got != 1 {
		t.Errorf("marker circles = %d, want 1", got)
	}

	s.Clear("dot")
	if got := s.Len(); got != 1 {
		t.Errorf("Len() after Clear = %d, want 1", got)
	}
	if got := len(s.Circles("")); got != 1 {
		t.Errorf("Circles(\"\") = %d, want 1", got)
	}
}

func TestOnParameterChange(t *testing.T) {
	r := NewDefaultRenderer()
	p := config.InteractiveParams()
	p.LineCount = 4
	p.StepsPerLine = 3

	dots, err := r.OnParameterChange(p)
	if err != nil {
		t.Fatalf("OnParameterChange error: %v", err)
	}
	if len(dots) != 12 {
		t.Fatalf("got %d dots, want 12", len(dots))
	}
	circles := r.Surface.Circles(config.DotClass)
	if len(circles) != len(dots) {
		t.Fatalf("surface has %d dots, want %d", len(circles), len(dots))
	}
	for i, d := range dots {
		x, y := d.Position(config.CanvasWidth, config.CanvasHeight)
		c := circles[i]
		if c.X != x || c.Y != y || c.R != d.Size {
			t.Errorf("circle %d = (%g,%g,r=%g), want (%g,%g,r=%g)", i, c.X, c.Y, c.R, x, y, d.Size)
		}
	}

	// Redraw must not accumulate.
	p.LineCount = 2
	Render(r, p)
	if got := r.Surface.Len(); got != 6 {
		t.Errorf("Len() after redraw = %d, want 6", got)
	}
}

func TestOnParameterChangeInvalid(t *testing.T) {
	r := NewDefaultRenderer()
	p := config.InteractiveParams()
	p.LineCount = 5
	p.StepsPerLine = 1
	p.InnerRadius = 40

	dots, err := r.OnParameterChange(p)
	if !errors.Is(err, pattern.ErrInvalidParameter) {
		t.Errorf("OnParameterChange error = %v, want ErrInvalidParameter", err)
	}
	if len(dots) != 5 {
		t.Fatalf("got %d dots, want 5", len(dots))
	}
	for _, c := range r.Surface.Circles(config.DotClass) {
		if math.IsNaN(c.X) || math.IsNaN(c.Y) {
			t.Fatalf("NaN circle %+v", c)
		}
		if d := math.Hypot(c.X-300, c.Y-300); math.Abs(d-40) > 1e-9 {
			t.Errorf("circle at distance %g, want 40", d)
		}
	}
}

func TestEncodeSVG(t *testing.T) {
	r := NewDefaultRenderer()
	p := config.InteractiveParams()
	p.LineCount = 6
	p.StepsPerLine = 5
	r.OnParameterChange(p)

	var buf bytes.Buffer
	if err := EncodeSVG(&buf, r.Surface); err != nil {
		t.Fatalf("EncodeSVG: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an svg document:\n%s", out)
	}
	if got := strings.Count(out, `class="dot"`); got != 30 {
		t.Errorf("got %d dot circles, want 30", got)
	}
	if got := strings.Count(out, "<circle"); got != 30 {
		t.Errorf("got %d circles, want 30", got)
	}
	if !strings.Contains(out, `fill="#0c4c5f"`) {
		t.Error("missing background fill")
	}
	if !strings.Contains(out, `fill="#ffffff"`) {
		t.Error("missing dot fill")
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeSVGWriteError(t *testing.T) {
	s := NewSurface(10, 10, MustColor("#000"))
	if err := EncodeSVG(failWriter{}, s); err == nil {
		t.Fatal("expected write error")
	}
}

func TestEncodePNG(t *testing.T) {
	r := NewDefaultRenderer()
	r.OnParameterChange(config.StaticParams())

	var buf bytes.Buffer
	if err := EncodePNG(&buf, r.Surface); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != config.CanvasWidth || b.Dy() != config.CanvasHeight {
		t.Fatalf("image is %dx%d, want %dx%d", b.Dx(), b.Dy(), config.CanvasWidth, config.CanvasHeight)
	}

	// The corner lies inside the margin; the center is covered by the first
	// dot of every spoke.
	assertPixel(t, img.At(2, 2), 0x0c, 0x4c, 0x5f)
	assertPixel(t, img.At(300, 300), 0xff, 0xff, 0xff)
}

func assertPixel(t *testing.T, c interface{ RGBA() (r, g, b, a uint32) }, wr, wg, wb uint8) {
	t.Helper()
	r, g, b, _ := c.RGBA()
	diff := func(got uint32, want uint8) bool {
		return math.Abs(float64(got>>8)-float64(want)) > 2
	}
	if diff(r, wr) || diff(g, wg) || diff(b, wb) {
		t.Errorf("pixel = (%d,%d,%d), want (%d,%d,%d)", r>>8, g>>8, b>>8, wr, wg, wb)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"out.svg", SVG},
		{"OUT.SVG", SVG},
		{"dir/pattern.png", PNG},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, %v, want %v", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatFromPath("pattern.jpg"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("FormatFromPath(.jpg) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestWithDefaultExt(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"pattern", "pattern.svg"},
		{"dir/pattern", "dir/pattern.svg"},
		{"pattern.png", "pattern.png"},
		{"pattern.SVG", "pattern.SVG"},
	}
	for _, tt := range tests {
		if got := WithDefaultExt(tt.in); got != tt.want {
			t.Errorf("WithDefaultExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	r := NewDefaultRenderer()
	p := config.StaticParams()
	p.LineCount = 3
	p.StepsPerLine = 2
	r.OnParameterChange(p)

	dir := t.TempDir()
	for _, name := range []string{"pattern.svg", "pattern.png"} {
		if err := WriteFile(filepath.Join(dir, name), r.Surface); err != nil {
			t.Errorf("WriteFile(%s): %v", name, err)
		}
	}
	if err := WriteFile(filepath.Join(dir, "pattern.gif"), r.Surface); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("WriteFile(.gif) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRenderDoesNotMutateParams(t *testing.T) {
	r := NewDefaultRenderer()
	p := config.InteractiveParams()
	before := p
	r.OnParameterChange(p)
	if p != before {
		t.Error("params changed by OnParameterChange")
	}
	if len(pattern.Generate(p)) != r.Surface.Len() {
		t.Error("surface does not match generator output")
	}
}

func TestEncodersRejectBadSurface(t *testing.T) {
	tests := []struct {
		name string
		s    *Surface
	}{
		{"negative width", NewSurface(-100, 600, MustColor("#000"))},
		{"zero height", NewSurface(600, 0, MustColor("#000"))},
	}
	neg := NewSurface(100, 100, MustColor("#000"))
	neg.Replace("dot", []Circle{{X: 50, Y: 50, R: -3}})
	tests = append(tests, struct {
		name string
		s    *Surface
	}{"negative radius", neg})

	for _, tt := range tests {
		var buf bytes.Buffer
		if err := EncodeSVG(&buf, tt.s); !errors.Is(err, pattern.ErrInvalidParameter) {
			t.Errorf("%s: EncodeSVG error = %v, want ErrInvalidParameter", tt.name, err)
		}
		if _, err := Rasterize(tt.s); !errors.Is(err, pattern.ErrInvalidParameter) {
			t.Errorf("%s: Rasterize error = %v, want ErrInvalidParameter", tt.name, err)
		}
	}
}

func TestLoggerReachesExistingRenderer(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	r := NewDefaultRenderer()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	p := config.InteractiveParams()
	p.LineCount = 3
	r.OnParameterChange(p)
	if !strings.Contains(buf.String(), "pattern redrawn") {
		t.Errorf("no redraw record in log:\n%s", buf.String())
	}
}

func TestInvalidParamsWarnOnce(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	r := NewDefaultRenderer()
	p := config.InteractiveParams()
	p.InnerRadius = 200
	p.EvenLineFraction = 0.1
	for i := 0; i < 5; i++ {
		r.OnParameterChange(p)
	}
	if got := strings.Count(buf.String(), "level=WARN"); got != 1 {
		t.Errorf("got %d warnings for a repeated invalid redraw, want 1", got)
	}

	r.OnParameterChange(config.InteractiveParams())
	r.OnParameterChange(p)
	if got := strings.Count(buf.String(), "level=WARN"); got != 2 {
		t.Errorf("got %d warnings after recovering and failing again, want 2", got)
	}
}
