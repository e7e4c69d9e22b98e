package render

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports itself disabled, so a renderer
// with no logger configured never formats its attributes.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var current atomic.Pointer[slog.Logger]

func init() { current.Store(slog.New(discard{})) }

// SetLogger routes the package's log output to l; nil silences it again.
// Renderers look the logger up on every redraw, so the change also reaches
// renderers built earlier.
//
// A renderer warns once when a redraw starts failing Params.Validate and
// logs every redraw at debug level. WriteFile logs each export at info.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return current.Load() }
