package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/minigolf/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// AimUI holds the ebitenui panel for aiming the shot
type AimUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnAngleChanged func(angleDeg float64)
	OnPowerChanged func(power float64)
	OnLaunch       func()

	// Widget references for updates
	angleSlider  *widget.Slider
	powerSlider  *widget.Slider
	angleLabel   *widget.Label
	powerLabel   *widget.Label
	launchButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	normalFace text.Face
	smallFace  text.Face

	// Suppresses change callbacks while syncing slider positions
	syncing bool
}

// NewAimUI creates the aim panel shown along the bottom of the screen
func NewAimUI(onAngleChanged, onPowerChanged func(float64), onLaunch func()) *AimUI {
	aui := &AimUI{
		OnAngleChanged: onAngleChanged,
		OnPowerChanged: onPowerChanged,
		OnLaunch:       onLaunch,
	}

	aui.loadFonts()
	aui.buildUI()

	return aui
}

func (aui *AimUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	aui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   14,
	}
	aui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (aui *AimUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Panel strip pinned to the bottom edge
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 10, Right: 10}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 40, 20, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, int(cfg.Aim.PanelHeight)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	// Angle controls
	angleTitle := widget.NewLabel(
		widget.LabelOpts.Text("Angle", &aui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(angleTitle)

	aui.angleSlider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, 359),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(cfg.Aim.AngleSliderWidth), 20),
		),
		widget.SliderOpts.Images(aui.sliderTrackImage(), aui.sliderHandleImage()),
		widget.SliderOpts.FixedHandleSize(10),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int { return 10 }),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if aui.syncing {
				return
			}
			if aui.OnAngleChanged != nil {
				aui.OnAngleChanged(float64(args.Current))
			}
			aui.updateLabels(float64(args.Current), float64(aui.powerSlider.Current))
		}),
	)
	panel.AddChild(aui.angleSlider)

	aui.angleLabel = widget.NewLabel(
		widget.LabelOpts.Text("0", &aui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	panel.AddChild(aui.angleLabel)

	// Power controls
	powerTitle := widget.NewLabel(
		widget.LabelOpts.Text("Power", &aui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(powerTitle)

	aui.powerSlider = widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, int(cfg.Aim.MaxPower)),
		widget.SliderOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(cfg.Aim.PowerSliderWidth), 20),
		),
		widget.SliderOpts.Images(aui.sliderTrackImage(), aui.sliderHandleImage()),
		widget.SliderOpts.FixedHandleSize(10),
		widget.SliderOpts.TrackOffset(0),
		widget.SliderOpts.PageSizeFunc(func() int { return 15 }),
		widget.SliderOpts.ChangedHandler(func(args *widget.SliderChangedEventArgs) {
			if aui.syncing {
				return
			}
			if aui.OnPowerChanged != nil {
				aui.OnPowerChanged(float64(args.Current))
			}
			aui.updateLabels(float64(aui.angleSlider.Current), float64(args.Current))
		}),
	)
	panel.AddChild(aui.powerSlider)

	aui.powerLabel = widget.NewLabel(
		widget.LabelOpts.Text("0", &aui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	panel.AddChild(aui.powerLabel)

	// Launch button
	aui.launchButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(cfg.Aim.LaunchButtonWidth), 26),
		),
		widget.ButtonOpts.Image(aui.launchButtonImage()),
		widget.ButtonOpts.Text("LAUNCH", &aui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if aui.OnLaunch != nil {
				aui.OnLaunch()
			}
		}),
	)
	panel.AddChild(aui.launchButton)

	rootContainer.AddChild(panel)

	aui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (aui *AimUI) sliderTrackImage() *widget.SliderTrackImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 60, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{50, 70, 50, 255})

	return &widget.SliderTrackImage{
		Idle:  idle,
		Hover: hover,
	}
}

func (aui *AimUI) sliderHandleImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{200, 200, 200, 255})
	hover := image.NewNineSliceColor(color.RGBA{230, 230, 230, 255})
	pressed := image.NewNineSliceColor(color.RGBA{170, 170, 170, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func (aui *AimUI) launchButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetValues moves the sliders to match externally driven aim state,
// such as keyboard or gamepad adjustments.
func (aui *AimUI) SetValues(angleDeg, power float64) {
	aui.syncing = true
	aui.angleSlider.Current = int(angleDeg)
	aui.powerSlider.Current = int(power)
	aui.syncing = false

	aui.updateLabels(angleDeg, power)
}

// SetLaunchState retargets the launch button: STOP while the ball rolls,
// LAUNCH at rest, disabled while it sinks into the hole.
func (aui *AimUI) SetLaunchState(moving, sinking bool) {
	if aui.launchButton == nil {
		return
	}
	aui.launchButton.GetWidget().Disabled = sinking
	if textWidget := aui.launchButton.Text(); textWidget != nil {
		if moving {
			textWidget.Label = "STOP"
		} else {
			textWidget.Label = "LAUNCH"
		}
	}
}

func (aui *AimUI) updateLabels(angleDeg, power float64) {
	if aui.angleLabel != nil {
		aui.angleLabel.Label = fmt.Sprintf("%3.0f", angleDeg)
	}
	if aui.powerLabel != nil {
		aui.powerLabel.Label = fmt.Sprintf("%3.0f", power)
	}
}

// Update calls the UI's Update method
func (aui *AimUI) Update() {
	aui.UI.Update()
}
