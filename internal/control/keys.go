package control

// Key repeat timing, in ticks.
const (
	RepeatDelay    = 20
	RepeatInterval = 3
)

// KeyRepeat reports whether a key held for ticks frames should nudge a
// slider: on the first tick, then every RepeatInterval ticks once the key
// has been held for RepeatDelay.
func KeyRepeat(ticks int) bool {
	if ticks == 1 {
		return true
	}
	return ticks >= RepeatDelay && (ticks-RepeatDelay)%RepeatInterval == 0
}
