package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/gesture-snake/internal/registry"
)

// printSources writes the frame sources that can be passed to --source.
func printSources(w io.Writer) {
	sources := registry.List()

	if len(sources) == 0 {
		fmt.Fprintln(w, "No sources available.")
		return
	}

	fmt.Fprintln(w, "Available sources:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, s := range sources {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	// Print header
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "Name", "Usage")
	fmt.Fprintf(w, "  %-*s  %s\n", maxNameLen, "----", "-----")

	for _, s := range sources {
		fmt.Fprintf(w, "  %-*s  --source %s\n", maxNameLen, s.Name, s.Usage)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, `Sources read newline-delimited JSON: {"t": <seconds>, "hands": [[[x, y, z], ...21 points]]}`)
}
