package gesture

import (
	"math"

	"github.com/vovakirdan/gesture-snake/internal/core"
)

// Sector boundaries in radians.
const (
	quarterPi      = math.Pi / 4
	threeQuarterPi = 3 * math.Pi / 4
)

// DirectionForAngle maps a wrist→thumb-tip angle in (-π, π] to a direction.
//
// The landmarks come from a horizontally mirrored image, and the mapping
// swaps up/down and left/right relative to the naive screen angle:
//
//	(-3π/4, -π/4)          down
//	[-π/4, π/4]            left
//	(π/4, 3π/4)            up
//	[3π/4, π], [-π, -3π/4] right
//
// Left owns both of its diagonal boundaries and right owns both of its, so
// every angle maps to exactly one direction.
func DirectionForAngle(angle float64) core.Direction {
	switch {
	case angle > -threeQuarterPi && angle < -quarterPi:
		return core.DirDown
	case angle >= -quarterPi && angle <= quarterPi:
		return core.DirLeft
	case angle > quarterPi && angle < threeQuarterPi:
		return core.DirUp
	default:
		return core.DirRight
	}
}

// ThumbAngle returns atan2(dy, dx) of the vector from the wrist to the thumb tip.
func ThumbAngle(h Hand) float64 {
	wrist := h[Wrist]
	tip := h[ThumbTip]
	return math.Atan2(tip.Y-wrist.Y, tip.X-wrist.X)
}
