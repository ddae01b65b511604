package systems

import (
	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles global toggles that work in any scene
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			SFXVolume:       GetSFXVolume(),
			Muted:           IsMuted(),
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
