package gamemath

import (
	"fmt"
	"math"
	"time"
)

// FormatClock renders d as MM:SS. There is no hours field, so long
// durations simply grow the minutes. Negative durations are not special
// cased and produce negative fields, e.g. -500ms renders as "-1:-1".
func FormatClock(d time.Duration) string {
	totalSeconds := int(math.Floor(d.Seconds()))
	minutes := int(math.Floor(float64(totalSeconds) / 60))
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
