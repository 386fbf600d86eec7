package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gesture-snake/internal/config"
)

// printConfig writes the configuration gsnake would run with, after the
// config file search and the flag overrides. With --defaults it writes the
// embedded default file instead, a starting point for ~/.gsnake/config.yaml.
func printConfig(cmd *cobra.Command, w io.Writer) error {
	if flagDefaults {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	cfg, origin, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Fprintf(w, "# source: %s\n%s", origin, out)
	return nil
}
