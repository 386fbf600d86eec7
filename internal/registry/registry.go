// Package registry provides a global registry of landmark frame sources.
// Sources register themselves in init() functions, allowing the command line
// to pick one by name ("stdin", "file:<path>", ...) without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gesture-snake/internal/gesture"
)

// Source delivers landmark frames to the tick driver.
type Source interface {
	// Read returns the most recent unread frame. ok=false means there is no
	// new frame this tick and gesture processing is skipped. Read must not
	// block the tick for longer than it takes to hand over a frame.
	Read() (frame gesture.Frame, ok bool)

	// Close releases the source (files, sidecar processes).
	Close() error
}

// Env carries process resources a source factory may need.
type Env struct {
	Stdin  io.Reader
	Logger *log.Logger
}

// Factory creates a source. arg is whatever followed "name:" in the
// --source value, or empty.
type Factory func(arg string, env Env) (Source, error)

// SourceInfo contains metadata about a registered source.
type SourceInfo struct {
	Name  string
	Usage string
}

var (
	factories = make(map[string]Factory)
	usages    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a source factory to the registry.
// Panics if a source with the same name is already registered.
func Register(name, usage string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: source %q already registered", name))
	}

	factories[name] = f
	usages[name] = usage
}

// List returns information about all registered sources, sorted by name.
func List() []SourceInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SourceInfo, 0, len(factories))
	for name := range factories {
		result = append(result, SourceInfo{
			Name:  name,
			Usage: usages[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Exists checks if a source with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}

// SplitSource splits "name:arg" into its parts. A value without a colon is
// a bare name.
func SplitSource(source string) (name, arg string) {
	name, arg, _ = strings.Cut(strings.TrimSpace(source), ":")
	return name, arg
}

// Open instantiates a source from a value such as "file:/tmp/hand.ndjson".
// Returns an error if the source name is not registered.
func Open(source string, env Env) (Source, error) {
	name, arg := SplitSource(source)

	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown source %q", name)
	}

	if env.Logger == nil {
		env.Logger = log.New(io.Discard)
	}

	src, err := f(arg, env)
	if err != nil {
		return nil, fmt.Errorf("registry: open %s: %w", name, err)
	}
	return src, nil
}
