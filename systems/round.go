package systems

import (
	"fmt"
	"image/color"
	"os"

	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Overlay fade-in length in ticks
const roundEndFadeTicks = 30

// UpdateRoundTimer counts the shared clock down one second at a time.
// Runs only while unpaused and undecided (see WithGameplayChecks).
func UpdateRoundTimer(e *ecs.ECS) {
	round := GetOrCreateRound(e)

	round.TickCounter++
	if round.TickCounter < cfg.Round.TicksPerSecond {
		return
	}
	round.TickCounter = 0

	if round.TimerSeconds > 0 {
		round.TimerSeconds--
	} else {
		EndRound(e, cfg.RoundLost)
	}
}

// EndRound moves the round into a terminal state and starts the overlay fade
func EndRound(e *ecs.ECS, state cfg.RoundStateID) {
	round := GetOrCreateRound(e)
	if round.State != cfg.RoundPlaying {
		return
	}
	round.State = state
	round.SelectedOption = 0

	entry, _ := components.Round.First(e.World)
	if entry.HasComponent(components.Tween) {
		seq := gween.NewSequence(
			gween.New(0, float32(cfg.RoundEnd.OverlayColor.A), roundEndFadeTicks, ease.Linear),
		)
		components.Tween.Set(entry, seq)
	}
}

// NewUpdateRoundEnd creates the system driving the win/lose screen menu
func NewUpdateRoundEnd(sceneChanger SceneChanger, createCourseScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		round := GetOrCreateRound(e)
		if round.State == cfg.RoundPlaying {
			return
		}

		input := getOrCreateInput(e)

		numOptions := len(cfg.RoundEnd.MenuOptions)
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			round.SelectedOption = (round.SelectedOption - 1 + numOptions) % numOptions
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			round.SelectedOption = (round.SelectedOption + 1) % numOptions
			PlaySFX(e, cfg.SoundMenuNavigate)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch round.SelectedOption {
			case 0: // Play Again
				sceneChanger.ChangeScene(createCourseScene())
			case 1: // Main Menu
				sceneChanger.ChangeScene(createMenuScene())
			case 2: // Exit
				os.Exit(0)
			}
		}
	}
}

// DrawRoundEnd renders the win/lose overlay once the round is decided
func DrawRoundEnd(e *ecs.ECS, screen *ebiten.Image) {
	round := GetOrCreateRound(e)
	if round.State == cfg.RoundPlaying {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Fade the overlay in
	alpha := cfg.RoundEnd.OverlayColor.A
	if entry, ok := components.Round.First(e.World); ok && entry.HasComponent(components.Tween) {
		seq := components.Tween.Get(entry)
		if v, _, done := seq.Update(1); !done {
			alpha = uint8(v)
		}
	}
	overlay := color.RGBA{A: alpha}
	vector.FillRect(screen, 0, 0, float32(width), float32(height), overlay, false)

	title := cfg.RoundEnd.WinTitle
	titleColor := cfg.RoundEnd.WinColor
	if round.State == cfg.RoundLost {
		title = cfg.RoundEnd.LoseTitle
		titleColor = cfg.RoundEnd.LoseColor
	}

	titleFont := fonts.Big.Get()
	titleWidth := len(title) * 26
	text.Draw(screen, title, titleFont, int((width-float64(titleWidth))/2), int(cfg.RoundEnd.TitleY), titleColor)

	menuFont := fonts.Menu.Get()
	for i, option := range cfg.RoundEnd.MenuOptions {
		y := cfg.RoundEnd.MenuStartY + float64(i)*(cfg.RoundEnd.MenuItemHeight+cfg.RoundEnd.MenuItemGap)

		textColor := cfg.RoundEnd.TextColorNormal
		if i == round.SelectedOption {
			textColor = cfg.RoundEnd.TextColorSelected
		}

		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.RoundEnd.MenuItemHeight), textColor)
	}
}

// FormatTimer renders the remaining time the way the HUD shows it
func FormatTimer(seconds int) string {
	return fmt.Sprintf("Timer: %d min %d sec", seconds/60, seconds%60)
}

// GetOrCreateRound returns the singleton Round component, creating if needed
func GetOrCreateRound(e *ecs.ECS) *components.RoundData {
	if _, ok := components.Round.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Round, components.Tween))
		components.Round.SetValue(ent, components.RoundData{
			State:        cfg.RoundPlaying,
			TimerSeconds: cfg.Round.TimerSeconds,
		})
		components.Tween.Set(ent, gween.NewSequence())
	}

	ent, _ := components.Round.First(e.World)
	return components.Round.Get(ent)
}
