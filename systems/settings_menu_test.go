package systems

import (
	"testing"

	"github.com/automoto/minigolf/components"
)

func TestAdjustVolumeStepClamps(t *testing.T) {
	if got := adjustVolumeStep(1.0, +1); got != 1.0 {
		t.Errorf("stepping up from max = %v, want 1.0", got)
	}
	if got := adjustVolumeStep(0.0, -1); got != 0.0 {
		t.Errorf("stepping down from min = %v, want 0.0", got)
	}
	if got := adjustVolumeStep(0.5, +1); got != 0.75 {
		t.Errorf("stepping up from 0.5 = %v, want 0.75", got)
	}
	if got := adjustVolumeStep(0.5, -1); got != 0.25 {
		t.Errorf("stepping down from 0.5 = %v, want 0.25", got)
	}
}

func TestFindClosestStepIndex(t *testing.T) {
	steps := []float64{0, 0.25, 0.5, 0.75, 1.0}

	if got := findClosestStepIndex(0.6, steps); got != 2 {
		t.Errorf("closest to 0.6 = index %d, want 2", got)
	}
	if got := findClosestStepIndex(0.9, steps); got != 4 {
		t.Errorf("closest to 0.9 = index %d, want 4", got)
	}
}

func TestNavigationSkipsResolutionWhenFullscreen(t *testing.T) {
	s := &components.SettingsMenuData{
		Fullscreen:     true,
		SelectedOption: components.SettingsOptFullscreen,
	}

	navigateDown(s)
	if s.SelectedOption != components.SettingsOptBack {
		t.Errorf("selection = %v, want back (resolution hidden in fullscreen)", s.SelectedOption)
	}

	navigateUp(s)
	if s.SelectedOption != components.SettingsOptFullscreen {
		t.Errorf("selection = %v, want fullscreen", s.SelectedOption)
	}
}

func TestFormatVolumeBar(t *testing.T) {
	if got := formatVolumeBar(0.5); got != "[|||||.....] 50%" {
		t.Errorf("formatVolumeBar(0.5) = %q", got)
	}
	if got := formatVolumeBar(1.0); got != "[||||||||||] 100%" {
		t.Errorf("formatVolumeBar(1.0) = %q", got)
	}
}
