package utils

import (
	"math"

	"github.com/pvlab/engcalc/common"
)

func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(round))
	return math.Round(f*scale) / scale
}

// LocTimeToTicks converts a wall-clock time to the tick count since
// midnight. mod scales the tick: 1 for seconds, 1000 for milliseconds.
// The inverse is TicksToLocTime.
func LocTimeToTicks(hours, minutes, seconds, mod int64) (int64, error) {
	if hours > 23 || minutes > 59 || seconds > 59 {
		return 0, common.ErrorInvalidValue
	}
	if hours < 0 || minutes < 0 || seconds < 0 || mod <= 0 {
		return 0, common.ErrorInvalidValue
	}
	return mod*3600*hours + mod*60*minutes + mod*seconds, nil
}

// TicksToLocTime converts a tick count since midnight back to
// (hours, minutes, seconds). The inverse is LocTimeToTicks.
func TicksToLocTime(ticks, mod int64) (hours, minutes, seconds int64) {
	hours = ticks / (3600 * mod)
	minutes = (ticks - hours*3600*mod) / (60 * mod)
	seconds = (ticks - hours*3600*mod - minutes*60*mod) / mod
	return hours, minutes, seconds
}
