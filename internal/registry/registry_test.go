package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/gesture-snake/internal/gesture"
)

type stubSource struct {
	arg    string
	closed bool
}

func (s *stubSource) Read() (gesture.Frame, bool) { return gesture.Frame{}, false }
func (s *stubSource) Close() error               { s.closed = true; return nil }

func TestSplitSource(t *testing.T) {
	tests := []struct {
		source, name, arg string
	}{
		{"stdin", "stdin", ""},
		{"file:/tmp/hand.ndjson", "file", "/tmp/hand.ndjson"},
		{"exec:python3 track.py --cam 0", "exec", "python3 track.py --cam 0"},
		{"  none  ", "none", ""},
		{"file:c:/x:y", "file", "c:/x:y"},
	}

	for _, tc := range tests {
		name, arg := SplitSource(tc.source)
		if name != tc.name || arg != tc.arg {
			t.Errorf("SplitSource(%q) = %q, %q; expected %q, %q", tc.source, name, arg, tc.name, tc.arg)
		}
	}
}

func TestRegisterAndOpen(t *testing.T) {
	Register("test-stub", "test-stub:<arg>", func(arg string, env Env) (Source, error) {
		if env.Logger == nil {
			t.Error("Open should always provide a logger")
		}
		return &stubSource{arg: arg}, nil
	})

	if !Exists("test-stub") {
		t.Fatal("registered source should exist")
	}

	src, err := Open("test-stub:hello", Env{})
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if stub := src.(*stubSource); stub.arg != "hello" {
		t.Errorf("factory got arg %q, expected hello", stub.arg)
	}

	found := false
	for _, info := range List() {
		if info.Name == "test-stub" {
			found = info.Usage == "test-stub:<arg>"
		}
	}
	if !found {
		t.Error("List() should include the registered source with its usage")
	}
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open("carrier-pigeon", Env{})
	if err == nil || !strings.Contains(err.Error(), "unknown source") {
		t.Errorf("Open(unknown) error = %v", err)
	}
}

func TestOpenWrapsFactoryError(t *testing.T) {
	sentinel := errors.New("boom")
	Register("test-failing", "test-failing", func(string, Env) (Source, error) {
		return nil, sentinel
	})

	if _, err := Open("test-failing", Env{}); !errors.Is(err, sentinel) {
		t.Errorf("Open() error = %v, expected wrapped sentinel", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "", func(string, Env) (Source, error) { return &stubSource{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "", func(string, Env) (Source, error) { return &stubSource{}, nil })
}
