package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/radial-dots/internal/control"
)

// Debug font cell size of ebitenutil.DebugPrint.
const (
	charWidth  = 6
	charHeight = 16
)

// repeating reports a key press on the first tick and then at the panel's
// repeat interval while the key is held.
func repeating(k ebiten.Key) bool {
	return control.KeyRepeat(inpututil.KeyPressDuration(k))
}
