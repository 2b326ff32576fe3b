// cmd/flyer/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // Use standard log for errors before logger is ready
	"os"

	"github.com/bethropolis/flyer/internal/app"
	"github.com/bethropolis/flyer/internal/config"
	"github.com/bethropolis/flyer/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	var flags config.Flags
	flags.ParseFlags()

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return
	}

	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, &flags)

	// --- Logger Initialization ---
	output, closeLog := openLogOutput(cfg.Logger.LogFilePath)
	defer closeLog()
	logger.Init(cfg.Logger, output)

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Using default configuration: %v", cfgErr)
	}
	logger.Debugf("Canvas %.1fx%.1f, history depth %d, theme %q",
		cfg.Canvas.Width, cfg.Canvas.Height, cfg.History.MaxDepth, cfg.Editor.Theme)

	// --- Create and Run App ---
	flyerApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		stlog.Printf("Error initializing application: %v", err)
		closeLog()
		os.Exit(1)
	}

	if err := flyerApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}

// openLogOutput opens the configured log destination. An empty path logs
// to flyer.log in the working directory; "-" logs to stderr. When the file
// cannot be opened, logging is discarded.
func openLogOutput(path string) (io.Writer, func()) {
	if path == "-" {
		return os.Stderr, func() {}
	}
	if path == "" {
		path = config.DefaultLogFileName
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		stlog.Printf("Warning: failed to open log file '%s': %v, logging disabled", path, err)
		return io.Discard, func() {}
	}
	return logFile, func() { logFile.Close() }
}
