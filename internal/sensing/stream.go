// Package sensing provides landmark frame sources and the hand landmark
// provider. Sources decode newline-delimited JSON frames produced by an
// external hand tracker:
//
//	{"t": 1712.5, "hands": [[[x, y, z], ... 21 points], ...]}
//
// An empty "hands" array means no hand was detected in that frame.
package sensing

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesture-snake/internal/gesture"
)

// maxLineBytes bounds a single NDJSON line.
const maxLineBytes = 1 << 20

// wireFrame is the on-the-wire shape of one frame.
type wireFrame struct {
	T     float64       `json:"t"`
	Hands [][][]float64 `json:"hands"`
}

// StreamStats counts what the reader goroutine has seen so far.
type StreamStats struct {
	Frames    uint64
	Dropped   uint64
	Malformed uint64
}

// StreamSource reads NDJSON frames from an io.Reader in a background
// goroutine. Only the newest undelivered frame is kept: if the tick driver
// is slower than the tracker, older frames are dropped.
type StreamSource struct {
	frames chan gesture.Frame
	done   chan struct{}
	closer io.Closer
	logger *log.Logger

	closeOnce sync.Once
	closeErr  error

	seq       atomic.Uint64
	dropped   atomic.Uint64
	malformed atomic.Uint64

	errMu sync.Mutex
	err   error

	now func() time.Time
}

// NewStreamSource starts reading r. closer, if non-nil, is closed by Close.
func NewStreamSource(r io.Reader, closer io.Closer, logger *log.Logger) *StreamSource {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &StreamSource{
		frames: make(chan gesture.Frame, 1),
		done:   make(chan struct{}),
		closer: closer,
		logger: logger,
		now:    time.Now,
	}
	go s.run(r)
	return s
}

func (s *StreamSource) run(r io.Reader) {
	defer close(s.done)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		raw := sc.Bytes()
		if len(raw) == 0 {
			continue
		}

		frame, err := s.decode(raw)
		if err != nil {
			s.malformed.Add(1)
			s.logger.Warn("skipping malformed frame", "line", line, "err", err)
			continue
		}
		s.publish(frame)
	}

	if err := sc.Err(); err != nil && !errors.Is(err, io.ErrClosedPipe) && !errors.Is(err, fs.ErrClosed) {
		s.setErr(err)
		s.logger.Error("frame stream failed", "err", err)
		return
	}
	s.logger.Debug("frame stream ended", "lines", line)
}

// decode parses one line. Hands that do not carry exactly 21 landmarks are
// discarded, so a frame whose only hand is incomplete reads as "no hand".
func (s *StreamSource) decode(raw []byte) (gesture.Frame, error) {
	var wf wireFrame
	if err := json.Unmarshal(raw, &wf); err != nil {
		return gesture.Frame{}, err
	}

	frame := gesture.Frame{
		Seq: s.seq.Add(1),
		At:  s.now(),
	}
	for i, points := range wf.Hands {
		h, err := gesture.HandFromPoints(points)
		if err != nil {
			s.logger.Debug("discarding hand", "seq", frame.Seq, "hand", i, "err", err)
			continue
		}
		frame.Hands = append(frame.Hands, h)
	}
	return frame, nil
}

// publish stores f as the pending frame, replacing any frame the consumer
// has not picked up yet. Only the reader goroutine sends on s.frames, so the
// send after draining never blocks.
func (s *StreamSource) publish(f gesture.Frame) {
	select {
	case s.frames <- f:
		return
	default:
	}
	select {
	case <-s.frames:
		s.dropped.Add(1)
	default:
	}
	s.frames <- f
}

// Read returns the pending frame without blocking.
func (s *StreamSource) Read() (gesture.Frame, bool) {
	select {
	case f := <-s.frames:
		return f, true
	default:
		return gesture.Frame{}, false
	}
}

// Done is closed once the underlying reader is exhausted.
func (s *StreamSource) Done() <-chan struct{} {
	return s.done
}

// Exhausted reports whether the stream has ended and every frame was read.
func (s *StreamSource) Exhausted() bool {
	select {
	case <-s.done:
		return len(s.frames) == 0
	default:
		return false
	}
}

// Err returns the read error that stopped the stream, if any. A clean EOF
// is not an error.
func (s *StreamSource) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *StreamSource) setErr(err error) {
	s.errMu.Lock()
	s.err = err
	s.errMu.Unlock()
}

// Stats returns a snapshot of the stream counters.
func (s *StreamSource) Stats() StreamStats {
	return StreamStats{
		Frames:    s.seq.Load(),
		Dropped:   s.dropped.Load(),
		Malformed: s.malformed.Load(),
	}
}

// Close closes the underlying reader if one was given. It does not wait for
// the reader goroutine: a read blocked on a terminal cannot be interrupted.
func (s *StreamSource) Close() error {
	s.closeOnce.Do(func() {
		if s.closer != nil {
			s.closeErr = s.closer.Close()
		}
	})
	return s.closeErr
}
