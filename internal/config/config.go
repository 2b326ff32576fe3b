// Package config loads the TOML configuration and command-line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/flyer/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config `toml:"logger"`
	Canvas  CanvasConfig  `toml:"canvas"`
	History HistoryConfig `toml:"history"`
	Editor  EditorConfig  `toml:"editor"`
}

// CanvasConfig sets the fixed poster size.
type CanvasConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// HistoryConfig bounds the undo log.
type HistoryConfig struct {
	MaxDepth int `toml:"max_depth"` // 0 = unbounded
}

// EditorConfig holds interaction settings.
type EditorConfig struct {
	NudgeStep       float64 `toml:"nudge_step"`
	CoarseStep      float64 `toml:"coarse_step"`
	RotateStep      float64 `toml:"rotate_step"`
	PasteOffset     float64 `toml:"paste_offset"`
	SystemClipboard bool    `toml:"system_clipboard"`
	Theme           string  `toml:"theme"`
	Demo            bool    `toml:"demo"` // start with the starter document
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Canvas: CanvasConfig{
			Width:  DefaultCanvasWidth,
			Height: DefaultCanvasHeight,
		},
		Editor: EditorConfig{
			NudgeStep:       DefaultNudgeStep,
			CoarseStep:      DefaultCoarseStep,
			RotateStep:      DefaultRotateStep,
			PasteOffset:     DefaultPasteOffset,
			SystemClipboard: SystemClipboard,
			Theme:           DefaultThemeName,
			Demo:            true,
		},
	}
}

// loadFromFile decodes filePath over cfg. Keys missing from the file keep
// their current value. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets out-of-range values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		c.Canvas = defaults.Canvas
	}
	if c.History.MaxDepth < 0 {
		c.History.MaxDepth = defaults.History.MaxDepth
	}
	if c.Editor.NudgeStep <= 0 {
		c.Editor.NudgeStep = defaults.Editor.NudgeStep
	}
	if c.Editor.CoarseStep <= 0 {
		c.Editor.CoarseStep = defaults.Editor.CoarseStep
	}
	if c.Editor.RotateStep <= 0 {
		c.Editor.RotateStep = defaults.Editor.RotateStep
	}
	if c.Editor.PasteOffset < 0 {
		c.Editor.PasteOffset = defaults.Editor.PasteOffset
	}
	if c.Editor.Theme == "" {
		c.Editor.Theme = defaults.Editor.Theme
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok || c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// DefaultConfigPath returns the per-user config file location, or "" if
// the user config directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// Load builds a configuration from defaults, the file at configFilePath
// (or the default location when empty) and flag overrides.
// A file error is returned alongside a usable default-based config.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var err error
	if effectivePath != "" {
		if err = loadFromFile(effectivePath, cfg); err != nil {
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig runs Load once and stores the result for Get.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
