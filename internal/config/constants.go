package config

import "time"

// Base application details
const AppName = "flyer"
const Version = "0.1.0"
const ConfigDirName = "flyer"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "flyer.log"

// Canvas is the fixed poster surface, in canvas units.
const DefaultCanvasWidth = 573.0
const DefaultCanvasHeight = 668.5

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Editing steps, in canvas units (rotation in degrees)
const DefaultNudgeStep = 1.0
const DefaultCoarseStep = 10.0
const DefaultRotateStep = 15.0
const DefaultPasteOffset = 10.0

const DefaultThemeName = "Poster Dark"
const SystemClipboard = false
