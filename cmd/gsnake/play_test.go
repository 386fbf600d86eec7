package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vovakirdan/gesture-snake/internal/config"
)

// testCommand returns a command carrying the override flags loadConfig
// inspects, and restores the flag variables afterwards.
func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfgPath, fps, seed, skin := flagConfig, flagFPS, flagSeed, flagSkin
	reverse, mirror, defaults := flagReverse, flagMirror, flagDefaults
	t.Cleanup(func() {
		flagConfig, flagFPS, flagSeed, flagSkin = cfgPath, fps, seed, skin
		flagReverse, flagMirror, flagDefaults = reverse, mirror, defaults
	})
	flagConfig, flagFPS, flagSeed, flagSkin, flagDefaults = "", 0, 0, "", false

	cmd := &cobra.Command{}
	cmd.Flags().BoolVar(&flagReverse, "reverse-gesture", true, "")
	cmd.Flags().BoolVar(&flagMirror, "mirror", false, "")
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	cmd := testCommand(t)

	cfg, origin, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if origin != config.OriginEmbedded {
		t.Errorf("origin = %s, expected embedded", origin)
	}
	if !cfg.Gesture.Reverse || cfg.TickRate != 5 {
		t.Errorf("defaults not kept without flags: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cmd := testCommand(t)
	flagFPS = 10
	flagSeed = 99
	flagSkin = "neon"
	if err := cmd.Flags().Set("reverse-gesture", "false"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("mirror", "true"); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.TickRate != 10 || cfg.Seed != 99 || cfg.Skin != "neon" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Gesture.Reverse || !cfg.Gesture.MirrorInput {
		t.Errorf("gesture flags not applied: %+v", cfg.Gesture)
	}
}

func TestLoadConfigUnknownSkin(t *testing.T) {
	cmd := testCommand(t)
	flagSkin = "plaid"

	if _, _, err := loadConfig(cmd); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("loadConfig() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestPrintConfig(t *testing.T) {
	cmd := testCommand(t)
	flagFPS = 12

	var out bytes.Buffer
	if err := printConfig(cmd, &out); err != nil {
		t.Fatalf("printConfig() failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "# source: embedded") || !strings.Contains(out.String(), "tick_rate: 12") {
		t.Errorf("unexpected output:\n%s", out.String())
	}

	// The printed config is a valid config file.
	if _, err := config.Parse(out.Bytes()); err != nil {
		t.Errorf("printed config does not parse: %v", err)
	}

	out.Reset()
	flagDefaults = true
	if err := printConfig(cmd, &out); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Bytes(), config.DefaultYAML()) {
		t.Error("--defaults should print the embedded file verbatim")
	}
}

func TestPrintSources(t *testing.T) {
	var out bytes.Buffer
	printSources(&out)

	for _, want := range []string{"none", "stdin", "file:<path>", "exec:<command line>"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("source list should mention %q:\n%s", want, out.String())
		}
	}
}

func TestFlagUsageNamesExistingFlags(t *testing.T) {
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_, ref, found := strings.Cut(f.Usage, "'gsnake ")
		if !found {
			return
		}
		ref, _, _ = strings.Cut(ref, "'")
		if !strings.HasPrefix(ref, "--") {
			t.Errorf("--%s usage points at %q, gsnake has no subcommands", f.Name, ref)
			return
		}
		if rootCmd.Flags().Lookup(strings.TrimPrefix(ref, "--")) == nil {
			t.Errorf("--%s usage points at unknown flag %s", f.Name, ref)
		}
	})
}
