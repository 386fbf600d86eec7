// Package gesture turns per-frame hand landmarks into debounced snake
// directions.
package gesture

import (
	"errors"
	"fmt"
	"time"
)

// Hand landmark indices following the MediaPipe 21-point hand model.
// The classifier only reads Wrist and ThumbTip.
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexTip     = 8
	MiddleMCP    = 9
	PinkyTip     = 20
	NumLandmarks = 21
)

// ErrLandmarkCount is returned when a hand does not carry exactly 21 points.
var ErrLandmarkCount = errors.New("gesture: hand must have 21 landmarks")

// Point3D is a landmark in normalized camera space (x, y roughly in [0,1]).
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Hand holds the 21 landmarks of one detected hand.
type Hand [NumLandmarks]Point3D

// HandFromPoints builds a Hand from [x, y, z] triples as they appear in
// landmark streams.
func HandFromPoints(points [][]float64) (Hand, error) {
	var h Hand
	if len(points) != NumLandmarks {
		return h, fmt.Errorf("%w: got %d", ErrLandmarkCount, len(points))
	}
	for i, p := range points {
		if len(p) < 2 {
			return h, fmt.Errorf("gesture: landmark %d has %d coordinates", i, len(p))
		}
		h[i] = Point3D{X: p[0], Y: p[1]}
		if len(p) > 2 {
			h[i].Z = p[2]
		}
	}
	return h, nil
}

// Mirrored returns the hand flipped horizontally (x -> 1-x), as if the
// camera image had been mirrored before landmark extraction.
func (h Hand) Mirrored() Hand {
	out := h
	for i := range out {
		out[i].X = 1 - out[i].X
	}
	return out
}

// Sample is the landmark input for one processed frame: one hand or none.
type Sample struct {
	hand    Hand
	present bool
}

// NoHand is the sample for a frame in which no hand was detected.
var NoHand = Sample{}

// WithHand wraps a detected hand into a sample.
func WithHand(h Hand) Sample {
	return Sample{hand: h, present: true}
}

// Hand returns the detected hand and whether one is present.
func (s Sample) Hand() (Hand, bool) {
	return s.hand, s.present
}

// Frame is one landmark frame from a frame source. A frame may contain any
// number of hands; the provider decides which one to use.
type Frame struct {
	Seq   uint64
	At    time.Time
	Hands []Hand
}
