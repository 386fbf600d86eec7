package sensing

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesture-snake/internal/gesture"
	"github.com/vovakirdan/gesture-snake/internal/registry"
)

// handJSON renders a 21-point hand with the thumb tip at (tx, ty) and every
// other landmark at (0.5, 0.5).
func handJSON(tx, ty float64) string {
	points := make([]string, gesture.NumLandmarks)
	for i := range points {
		points[i] = "[0.5,0.5,0]"
	}
	points[gesture.ThumbTip] = fmt.Sprintf("[%g,%g,0]", tx, ty)
	return "[" + strings.Join(points, ",") + "]"
}

func frameLine(hands ...string) string {
	return fmt.Sprintf(`{"t":0,"hands":[%s]}`, strings.Join(hands, ","))
}

func waitDone(t *testing.T, s *StreamSource) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not finish")
	}
}

func TestStreamSourceKeepsNewestFrame(t *testing.T) {
	input := strings.Join([]string{
		frameLine(handJSON(0.6, 0.5)),
		frameLine(),
		frameLine(handJSON(0.5, 0.6)),
	}, "\n") + "\n"

	s := NewStreamSource(strings.NewReader(input), nil, nil)
	waitDone(t, s)

	f, ok := s.Read()
	if !ok {
		t.Fatal("expected a pending frame")
	}
	if f.Seq != 3 {
		t.Errorf("pending frame seq = %d, expected the newest (3)", f.Seq)
	}
	if len(f.Hands) != 1 || f.Hands[0][gesture.ThumbTip].Y != 0.6 {
		t.Errorf("unexpected hands: %+v", f.Hands)
	}

	if _, ok := s.Read(); ok {
		t.Error("a frame must be delivered only once")
	}
	if !s.Exhausted() {
		t.Error("stream should be exhausted after EOF and a drained frame")
	}

	stats := s.Stats()
	if stats.Frames != 3 || stats.Dropped != 2 {
		t.Errorf("stats = %+v, expected 3 frames with 2 dropped", stats)
	}
}

func TestStreamSourceSkipsMalformedLines(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)

	input := "not json\n\n" + frameLine(handJSON(0.6, 0.5)) + "\n{\"hands\": 7}\n"
	s := NewStreamSource(strings.NewReader(input), nil, logger)
	waitDone(t, s)

	f, ok := s.Read()
	if !ok || len(f.Hands) != 1 {
		t.Fatalf("expected the one valid frame, got %+v, %v", f, ok)
	}
	if got := s.Stats().Malformed; got != 2 {
		t.Errorf("malformed = %d, expected 2", got)
	}
	if !strings.Contains(logs.String(), "skipping malformed frame") {
		t.Errorf("malformed lines should be logged, got %q", logs.String())
	}
	if s.Err() != nil {
		t.Errorf("clean EOF should not be an error, got %v", s.Err())
	}
}

func TestStreamSourceDropsIncompleteHands(t *testing.T) {
	short := "[[0.5,0.5,0],[0.6,0.5,0]]"
	s := NewStreamSource(strings.NewReader(frameLine(short)+"\n"), nil, nil)
	waitDone(t, s)

	f, ok := s.Read()
	if !ok {
		t.Fatal("frame with an incomplete hand is still a frame")
	}
	if len(f.Hands) != 0 {
		t.Errorf("incomplete hand should be discarded, got %d hands", len(f.Hands))
	}
	if sample := NewHandProvider(false).Detect(f); sample != gesture.NoHand {
		t.Error("frame without complete hands should read as no hand")
	}
}

func TestStreamSourceReadDoesNotBlock(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	s := NewStreamSource(pr, pr, nil)
	defer s.Close()

	start := time.Now()
	if _, ok := s.Read(); ok {
		t.Error("no frame has been written yet")
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Error("Read blocked waiting for input")
	}
	if s.Exhausted() {
		t.Error("open stream is not exhausted")
	}
}

func TestHandProvider(t *testing.T) {
	var first, second gesture.Hand
	first[gesture.ThumbTip] = gesture.Point3D{X: 0.2, Y: 0.3}
	second[gesture.ThumbTip] = gesture.Point3D{X: 0.9, Y: 0.9}
	frame := gesture.Frame{Hands: []gesture.Hand{first, second}}

	h, ok := NewHandProvider(false).Detect(frame).Hand()
	if !ok || h != first {
		t.Error("provider should pick the first hand")
	}

	h, ok = NewHandProvider(true).Detect(frame).Hand()
	if !ok || h[gesture.ThumbTip].X != 0.8 {
		t.Errorf("mirrored thumb x = %v, expected 0.8", h[gesture.ThumbTip].X)
	}

	if NewHandProvider(true).Detect(gesture.Frame{}) != gesture.NoHand {
		t.Error("empty frame should be NoHand")
	}
}

func TestRegisteredSources(t *testing.T) {
	for _, name := range []string{"none", "stdin", "file", "exec"} {
		if !registry.Exists(name) {
			t.Errorf("source %q should be registered", name)
		}
	}

	src, err := registry.Open("none", registry.Env{})
	if err != nil {
		t.Fatalf("Open(none) failed: %v", err)
	}
	if _, ok := src.Read(); ok {
		t.Error("none source should never produce frames")
	}
}

func TestStdinSource(t *testing.T) {
	src, err := registry.Open("stdin", registry.Env{Stdin: strings.NewReader(frameLine() + "\n")})
	if err != nil {
		t.Fatalf("Open(stdin) failed: %v", err)
	}
	defer src.Close()

	s := src.(*StreamSource)
	waitDone(t, s)
	if f, ok := s.Read(); !ok || len(f.Hands) != 0 {
		t.Errorf("stdin frame = %+v, %v", f, ok)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hands.ndjson")
	if err := os.WriteFile(path, []byte(frameLine(handJSON(0.6, 0.5))+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := registry.Open("file:"+path, registry.Env{})
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	defer src.Close()

	s := src.(*StreamSource)
	waitDone(t, s)
	if f, ok := s.Read(); !ok || len(f.Hands) != 1 {
		t.Errorf("file frame = %+v, %v", f, ok)
	}

	if _, err := registry.Open("file:"+filepath.Join(t.TempDir(), "missing"), registry.Env{}); err == nil {
		t.Error("missing file should fail to open")
	}
	if _, err := registry.Open("file", registry.Env{}); err == nil {
		t.Error("file source without a path should fail")
	}
}

func TestExecSourceRejectsBadCommands(t *testing.T) {
	if _, err := registry.Open("exec:", registry.Env{}); err == nil {
		t.Error("empty command should fail")
	}
	if _, err := registry.Open(`exec:tracker "unterminated`, registry.Env{}); err == nil {
		t.Error("unbalanced quotes should fail")
	}
}

func TestLineLogger(t *testing.T) {
	var logs bytes.Buffer
	w := &lineLogger{logger: log.New(&logs)}

	fmt.Fprint(w, "camera 0 ")
	if logs.Len() != 0 {
		t.Error("partial line should be buffered")
	}
	fmt.Fprint(w, "opened\nsecond line\n")

	out := logs.String()
	if !strings.Contains(out, "camera 0 opened") || !strings.Contains(out, "second line") {
		t.Errorf("unexpected log output %q", out)
	}
}
