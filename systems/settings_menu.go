package systems

import (
	"fmt"

	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// OpenSettings opens the settings overlay, remembering where it was opened from
func OpenSettings(e *ecs.ECS, fromPause bool) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.OpenedFromPause = fromPause
	settings.SelectedOption = components.SettingsOptSFXVolume
}

// IsSettingsOpen reports whether the settings overlay is currently shown
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := GetOrCreateSettingsMenu(e)
	return settings.IsOpen
}

// UpdateSettingsMenu handles settings navigation and value changes.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	input := getOrCreateInput(e)

	// Navigate up
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		navigateUp(settings)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	// Navigate down
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		navigateDown(settings)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}

	// Adjust value left
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(e, settings, -1)
	}

	// Adjust value right
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(e, settings, +1)
	}

	// Select/Enter - for toggles and Back button
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, settings)
	}

	// B/Circle, Start, or Escape to go back
	if GetAction(input, cfg.ActionMenuBack).JustPressed ||
		GetAction(input, cfg.ActionPause).JustPressed {
		closeSettings(e, settings)
	}
}

// navigateUp moves selection up, skipping hidden options
func navigateUp(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// navigateDown moves selection down, skipping hidden options
func navigateDown(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + 1) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// isOptionHidden returns true if the option should be hidden
func isOptionHidden(s *components.SettingsMenuData, opt components.SettingsMenuOption) bool {
	// Hide resolution when fullscreen is enabled
	if opt == components.SettingsOptResolution && s.Fullscreen {
		return true
	}
	return false
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		SetSFXVolume(e, s.SFXVolume)
		// Play preview sound
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptResolution:
		cycleResolution(s, direction)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	currentIdx := findClosestStepIndex(current, steps)
	newIdx := currentIdx + direction
	if newIdx < 0 {
		newIdx = 0
	}
	if newIdx >= len(steps) {
		newIdx = len(steps) - 1
	}
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0 // Start with a large difference
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// toggleMute toggles the mute state
func toggleMute(s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	SetMuted(s.Muted)
}

// toggleFullscreen toggles fullscreen mode
func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available resolutions
func cycleResolution(s *components.SettingsMenuData, direction int) {
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	// Apply the resolution
	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptBack:
		closeSettings(e, s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw solid background
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	// Get font
	fontFace := fonts.Menu.Get()
	titleFont := fonts.Big.Get()

	// Draw title centered near top
	title := "SETTINGS"
	titleWidth := len(title) * 26
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, 60, cfg.Menu.TitleColor)

	// Count visible options for layout calculation
	visibleCount := 0
	for opt := components.SettingsOptSFXVolume; opt <= components.SettingsOptBack; opt++ {
		if !isOptionHidden(settings, opt) {
			visibleCount++
		}
	}

	// Calculate menu positioning - center vertically in available space
	menuItemHeight := 24.0
	menuItemGap := 10.0
	totalMenuHeight := float64(visibleCount) * (menuItemHeight + menuItemGap)
	startY := (height-totalMenuHeight)/2 + 10 // Offset slightly down from center

	// Draw each option
	optionIndex := 0
	for opt := components.SettingsOptSFXVolume; opt <= components.SettingsOptBack; opt++ {
		if isOptionHidden(settings, opt) {
			continue
		}

		y := startY + float64(optionIndex)*(menuItemHeight+menuItemGap)

		// Determine color based on selection
		textColor := cfg.Pause.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		// Get label and value for this option
		label, value := getOptionDisplay(settings, opt)

		// Draw label on left side (centered layout)
		labelX := int(width/2) - 120
		text.Draw(screen, label, fontFace, labelX, int(y)+int(menuItemHeight), textColor)

		// Draw value on right side (if not Back button)
		if opt != components.SettingsOptBack {
			valueX := int(width/2) + 40
			text.Draw(screen, value, fontFace, valueX, int(y)+int(menuItemHeight), textColor)
		}

		optionIndex++
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColorNormal)
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptSFXVolume:
		return "SFX Volume", formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return "Mute", formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptResolution:
		if s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
			return "Resolution", cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
		}
		return "Resolution", "Unknown"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	percentage := int(volume * 100)
	filled := int(volume * 10)
	bar := ""
	for i := 0; i < 10; i++ {
		if i < filled {
			bar += "|"
		} else {
			bar += "."
		}
	}
	return fmt.Sprintf("[%s] %d%%", bar, percentage)
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))

		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			IsOpen:          false,
			SelectedOption:  components.SettingsOptSFXVolume,
			OpenedFromPause: false,
			SFXVolume:       GetSFXVolume(),
			Muted:           IsMuted(),
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}
