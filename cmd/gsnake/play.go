package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gesture-snake/internal/config"
	"github.com/vovakirdan/gesture-snake/internal/engine"
	"github.com/vovakirdan/gesture-snake/internal/platform/tui"
	"github.com/vovakirdan/gesture-snake/internal/registry"
	"github.com/vovakirdan/gesture-snake/internal/sensing"
)

var (
	flagSource   string
	flagReverse  bool
	flagMirror   bool
	flagSkin     string
	flagLogFile  string
	flagDebug    bool
	flagHeadless bool
	flagTicks    int

	flagListSources bool
	flagPrintConfig bool
	flagDefaults    bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagSource, "source", "none", "Landmark source: none, stdin, file:<path>, exec:<command>")
	f.BoolVar(&flagReverse, "reverse-gesture", true, "Swap every gesture for its opposite direction")
	f.BoolVar(&flagMirror, "mirror", false, "Flip landmark x for trackers that do not mirror the camera")
	f.StringVar(&flagSkin, "skin", "", "Snake skin (see 'gsnake --print-config')")
	f.StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the UI runs")
	f.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	f.BoolVar(&flagHeadless, "headless", false, "Run without the terminal UI")
	f.IntVar(&flagTicks, "ticks", 0, "Stop a headless run after this many ticks (0 = until game over)")
	f.BoolVar(&flagListSources, "list-sources", false, "List landmark frame sources and exit")
	f.BoolVar(&flagPrintConfig, "print-config", false, "Print the effective configuration and exit")
	f.BoolVar(&flagDefaults, "defaults", false, "With --print-config, print the embedded default file")
}

// loadConfig resolves the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, origin, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("reverse-gesture") {
		cfg.Gesture.Reverse = flagReverse
	}
	if cmd.Flags().Changed("mirror") {
		cfg.Gesture.MirrorInput = flagMirror
	}
	if flagSkin != "" {
		cfg.Skin = flagSkin
	}

	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, origin, nil
}

// newLogger creates the process logger. The UI owns the terminal, so
// without --log-file its logs are discarded. The returned func closes the
// log file, if any.
func newLogger() (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case flagHeadless:
		w = os.Stderr
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "gsnake",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

func runGame(cmd *cobra.Command, args []string) error {
	switch {
	case flagListSources:
		printSources(os.Stdout)
		return nil
	case flagPrintConfig:
		return printConfig(cmd, os.Stdout)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, origin, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "origin", origin, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height), "tick_rate", cfg.TickRate)

	src, err := registry.Open(flagSource, registry.Env{Stdin: os.Stdin, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if err := src.Close(); err != nil {
			logger.Warn("closing source", "err", err)
		}
	}()
	logger.Info("source opened", "source", flagSource)

	mode := engine.ModeMenu
	if flagHeadless {
		mode = engine.ModePlaying
	}
	e, err := engine.New(engine.Options{
		Config:   cfg,
		Source:   src,
		Provider: sensing.NewHandProvider(cfg.Gesture.MirrorInput),
		Logger:   logger,
		Mode:     mode,
	})
	if err != nil {
		return err
	}

	if flagHeadless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		res := e.RunHeadless(ctx, cfg.TickInterval(), flagTicks)
		fmt.Printf("session %s: %s after %d ticks, score %d, length %d\n",
			res.SessionID, res.Outcome, res.Ticks, res.Score, res.Length)
		return nil
	}

	// Get terminal size for the first frame; resizes arrive as messages.
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(e, tui.Options{
		Width:  width,
		Height: height,
		Logger: logger,
	})
}
