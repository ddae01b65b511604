package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// BallConfig contains ball sizing and spawn configuration values.
// Motion constants (friction, restitution, stop threshold) live in the
// physics package alongside the integrator that uses them.
type BallConfig struct {
	Radius float64

	// Spawn position (offset from the left border, vertically centered)
	SpawnOffsetX float64
}

// CourseConfig contains course layout configuration values
type CourseConfig struct {
	BorderThickness float64
	HoleRadius      float64
	// Capture zone as a fraction of the hole radius
	HoleCaptureFactor float64
	TotalCourses      int

	// Course element colors
	FieldColor    color.RGBA
	BorderColor   color.RGBA
	WallColor     color.RGBA
	PlatformColor color.RGBA
	RepulsorColor color.RGBA
	HoleColor     color.RGBA
}

// AimConfig contains aiming and launch configuration values
type AimConfig struct {
	MaxPower     float64
	DefaultAngle float64
	DefaultPower float64

	// Keyboard aiming increments per tick
	AngleStep float64
	PowerStep float64

	// Trajectory preview
	PreviewPoints int
	PreviewRadius float32
	PreviewColor  color.RGBA

	// Control panel layout (bottom strip of the window)
	PanelHeight       float64
	AngleSliderWidth  int
	PowerSliderWidth  int
	LaunchButtonWidth int
}

// RoundConfig contains round timing and progression configuration values
type RoundConfig struct {
	// Countdown for clearing all courses
	TimerSeconds   int
	TicksPerSecond int
	// Timer turns red below this many seconds
	WarningSeconds int
}

// HUDConfig contains in-game HUD configuration values
type HUDConfig struct {
	LabelX      float64
	CourseLineY float64
	TimerLineY  float64
	TextColor   color.RGBA
	WarnColor   color.RGBA
}

// PauseConfig contains pause overlay configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// RoundEndConfig contains win/lose overlay configuration values
type RoundEndConfig struct {
	OverlayColor      color.RGBA
	WinColor          color.RGBA
	LoseColor         color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	WinTitle          string
	LoseTitle         string
	MenuOptions       []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to a course
	StartCourse int  // Course index to start on when skipping the menu, 0 is the first
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Default is the render layer every renderer registers on
const Default = ecs.LayerDefault

// Global configuration instances
var C *Config
var Ball BallConfig
var Course CourseConfig
var Aim AimConfig
var Round RoundConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var RoundEnd RoundEndConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White          = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow         = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange         = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Red            = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Brown          = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	FieldGreen     = color.RGBA{R: 0, G: 150, B: 0, A: 255}
	BorderBlue     = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	WallGray       = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	PlatformPurple = color.RGBA{R: 148, G: 0, B: 211, A: 255}
	Black          = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	BlackOverlay   = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue      = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue       = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	Ball = BallConfig{
		Radius:       10.0,
		SpawnOffsetX: 20.0,
	}

	Course = CourseConfig{
		BorderThickness:   30.0,
		HoleRadius:        12.0,
		HoleCaptureFactor: 0.75,
		TotalCourses:      5,

		FieldColor:    FieldGreen,
		BorderColor:   BorderBlue,
		WallColor:     WallGray,
		PlatformColor: PlatformPurple,
		RepulsorColor: Orange,
		HoleColor:     Black,
	}

	Aim = AimConfig{
		MaxPower:     300.0,
		DefaultAngle: 0.0,
		DefaultPower: 150.0,

		AngleStep: 2.0,
		PowerStep: 3.0,

		PreviewPoints: 15,
		PreviewRadius: 3.0,
		PreviewColor:  Orange,

		PanelHeight:       30.0,
		AngleSliderWidth:  300,
		PowerSliderWidth:  240,
		LaunchButtonWidth: 100,
	}

	Round = RoundConfig{
		TimerSeconds:   100,
		TicksPerSecond: 60,
		WarningSeconds: 30,
	}

	HUD = HUDConfig{
		LabelX:      10.0,
		CourseLineY: 20.0,
		TimerLineY:  45.0,
		TextColor:   White,
		WarnColor:   Red,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
		MenuItemHeight:    30.0,
		MenuItemGap:       10.0,
		MenuOptions:       []string{"Resume", "Restart Round", "Settings", "Main Menu", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 60, B: 25, A: 255},
		TitleColor:        Yellow,
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		TitleY:            150.0,
		MenuStartY:        280.0,
		MenuItemHeight:    30.0,
		MenuItemGap:       15.0,
		MenuOptions:       []string{"Play", "Settings", "Exit"},
	}

	RoundEnd = RoundEndConfig{
		OverlayColor:      BlackOverlay,
		WinColor:          Yellow,
		LoseColor:         Red,
		TextColorNormal:   White,
		TextColorSelected: Yellow,
		TitleY:            250.0,
		MenuStartY:        360.0,
		MenuItemHeight:    30.0,
		MenuItemGap:       15.0,
		WinTitle:          "YOU WIN! CONGRATS!",
		LoseTitle:         "TIME'S UP! YOU LOSE!",
		MenuOptions:       []string{"Play Again", "Main Menu", "Exit"},
	}
}
