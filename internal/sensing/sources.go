package sensing

import (
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/gesture-snake/internal/gesture"
	"github.com/vovakirdan/gesture-snake/internal/registry"
)

func init() {
	registry.Register("none", "none", func(string, registry.Env) (registry.Source, error) {
		return NoneSource{}, nil
	})
	registry.Register("stdin", "stdin", openStdin)
	registry.Register("file", "file:<path>", openFile)
	registry.Register("exec", "exec:<command line>", openExec)
}

// NoneSource never produces frames. The game is then keyboard-only.
type NoneSource struct{}

func (NoneSource) Read() (gesture.Frame, bool) { return gesture.Frame{}, false }
func (NoneSource) Close() error                { return nil }

func openStdin(_ string, env registry.Env) (registry.Source, error) {
	r := env.Stdin
	if r == nil {
		r = os.Stdin
	}
	// stdin is left open on Close; the process owns it.
	return NewStreamSource(r, nil, env.Logger.WithPrefix("stdin")), nil
}

func openFile(path string, env registry.Env) (registry.Source, error) {
	if path == "" {
		return nil, errors.New("sensing: file source needs a path")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sensing: %w", err)
	}
	return NewStreamSource(f, f, env.Logger.WithPrefix("file")), nil
}

func openExec(cmdline string, env registry.Env) (registry.Source, error) {
	return NewExecSource(cmdline, env.Logger)
}

var (
	_ registry.Source = NoneSource{}
	_ registry.Source = (*StreamSource)(nil)
	_ registry.Source = (*ExecSource)(nil)
)
