package config

import (
	"image/color"

	"github.com/automoto/arena-duel/shared/leveldata"
	"github.com/automoto/arena-duel/shared/simconfig"
	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every renderer is registered on.
const Default ecs.LayerID = 0

// UIConfig contains HUD and drawing configuration values
type UIConfig struct {
	// Health bars
	HealthBarWidth   float64
	HealthBarHeight  float64
	HealthBarMargin  float64
	HealthBarFill    color.RGBA
	HealthBarOutline color.RGBA
	HealthDrainTime  float32 // seconds for the bar to catch up with damage

	// Timer
	TimerFontSize float64
	TimerY        int

	// Fighter name labels
	NameFontSize float64
	NameOffsetY  int

	TextColor     color.RGBA
	PlatformColor color.RGBA

	// Loading screen
	LoadingBackground color.RGBA
	LoadingErrorColor color.RGBA
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	ShowHitboxes bool // Outline fighter and platform rectangles
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var UI UIConfig
var Debug DebugConfig

// Arena and Tuning are the fixed stage and simulation constants, loaded
// from the embedded data files at startup.
var Arena *leveldata.Arena
var Tuning simconfig.Tuning

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Brown     = color.RGBA{R: 165, G: 42, B: 42, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	NightBlue = color.RGBA{R: 15, G: 25, B: 50, A: 255}
)

func init() {
	Arena = leveldata.MustLoadArena()
	Tuning = simconfig.MustLoadTuning()

	C = &Config{
		Width:  int(Arena.Width),
		Height: int(Arena.Height),
	}

	UI = UIConfig{
		HealthBarWidth:   200,
		HealthBarHeight:  20,
		HealthBarMargin:  10,
		HealthBarFill:    Red,
		HealthBarOutline: White,
		HealthDrainTime:  0.25,

		TimerFontSize: 24,
		TimerY:        30,

		NameFontSize: 18,
		NameOffsetY:  10,

		TextColor:     White,
		PlatformColor: Brown,

		LoadingBackground: NightBlue,
		LoadingErrorColor: LightRed,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHitboxes: false,
	}
}
