package sensing

import "github.com/vovakirdan/gesture-snake/internal/gesture"

// HandProvider picks the hand the classifier should see from a frame.
type HandProvider struct {
	mirror bool
}

// NewHandProvider creates a provider. With mirror set, landmarks are
// flipped horizontally before classification, for trackers that do not
// mirror the camera image themselves.
func NewHandProvider(mirror bool) *HandProvider {
	return &HandProvider{mirror: mirror}
}

// Detect returns the first hand of the frame, or NoHand.
func (p *HandProvider) Detect(f gesture.Frame) gesture.Sample {
	if len(f.Hands) == 0 {
		return gesture.NoHand
	}
	h := f.Hands[0]
	if p.mirror {
		h = h.Mirrored()
	}
	return gesture.WithHand(h)
}
