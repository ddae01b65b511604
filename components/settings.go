package components

import "github.com/yohamta/donburi"

// SettingsData stores global toggles persisted between sessions (singleton component)
type SettingsData struct {
	Debug           bool // Show collision space overlay
	SFXVolume       float64
	Muted           bool
	Fullscreen      bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
