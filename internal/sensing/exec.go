package sensing

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/anmitsu/go-shlex"
	"github.com/charmbracelet/log"
)

// ExecSource runs a hand-tracking sidecar and reads frames from its stdout.
// The sidecar's stderr is forwarded to the logger line by line.
type ExecSource struct {
	*StreamSource

	cmd    *exec.Cmd
	logger *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewExecSource starts the command line with POSIX shell quoting rules.
func NewExecSource(cmdline string, logger *log.Logger) (*ExecSource, error) {
	args, err := shlex.Split(cmdline, true)
	if err != nil {
		return nil, fmt.Errorf("sensing: parse command: %w", err)
	}
	if len(args) == 0 {
		return nil, errors.New("sensing: empty sidecar command")
	}

	logger = logger.WithPrefix("sidecar")

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stderr = &lineLogger{logger: logger}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("sensing: stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("sensing: start %s: %w", args[0], err)
	}
	logger.Info("started", "cmd", args[0], "pid", cmd.Process.Pid)

	return &ExecSource{
		StreamSource: NewStreamSource(stdout, nil, logger),
		cmd:          cmd,
		logger:       logger,
	}, nil
}

// Close kills the sidecar and waits for it to exit.
func (s *ExecSource) Close() error {
	s.closeOnce.Do(func() {
		if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			s.closeErr = fmt.Errorf("sensing: kill sidecar: %w", err)
			return
		}
		// Wait reports the kill as an error; that is the expected outcome.
		if err := s.cmd.Wait(); err != nil {
			s.logger.Debug("exited", "err", err)
		}
	})
	return s.closeErr
}

// lineLogger is an io.Writer that logs each complete line it receives.
type lineLogger struct {
	mu     sync.Mutex
	logger *log.Logger
	buf    bytes.Buffer
}

func (w *lineLogger) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadBytes('\n')
		if err != nil {
			// Incomplete line: keep it for the next write.
			w.buf.Reset()
			w.buf.Write(line)
			break
		}
		if msg := bytes.TrimRight(line, "\r\n"); len(msg) > 0 {
			w.logger.Warn(string(msg))
		}
	}
	return len(p), nil
}
