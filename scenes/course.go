package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/systems"
	"github.com/automoto/minigolf/systems/factory"
	"github.com/automoto/minigolf/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CourseScene runs the playable rounds: aiming, physics, and the timer
type CourseScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	aimUI        *ui.AimUI
	once         sync.Once
}

// NewCourseScene creates a new course scene starting from the first course
func NewCourseScene(sc SceneChanger) *CourseScene {
	return &CourseScene{sceneChanger: sc}
}

func (cs *CourseScene) Update() {
	cs.once.Do(cs.configure)
	cs.ecs.Update()

	if cs.aimPanelActive() {
		cs.aimUI.Update()
		cs.syncAimPanel()
	}
}

func (cs *CourseScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)

	if cs.aimPanelActive() {
		cs.aimUI.UI.Draw(screen)
	}
}

func (cs *CourseScene) configure() {
	// Preload assets to avoid lag on first use (important for WASM)
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Menu scene factory for pause/round-end transitions
	createMenuScene := func() interface{} {
		return NewMenuScene(cs.sceneChanger)
	}
	// Restarting spins up a fresh course scene
	createCourseScene := func() interface{} {
		return NewCourseScene(cs.sceneChanger)
	}

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdatePause(cs.sceneChanger, createCourseScene, createMenuScene))

	// Game systems wrapped with pause and round-over checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateAim))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBall))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateRoundTimer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))

	// Round-end menu runs always (handles win/lose overlay input)
	e.AddSystem(systems.NewUpdateRoundEnd(cs.sceneChanger, createCourseScene, createMenuScene))

	// Systems that run even when paused
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateSettingsMenu)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawCourse)
	e.AddRenderer(cfg.Default, systems.DrawAimPreview)
	e.AddRenderer(cfg.Default, systems.DrawBall)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawRoundEnd)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	cs.ecs = e

	// Load the courses FIRST so the space can mirror their obstacles.
	courseEntry := factory.CreateCoursesAtIndex(cs.ecs, cfg.Debug.StartCourse)
	courseData := components.Course.Get(courseEntry)

	// Collision space matches the fixed arena size
	factory.CreateSpace(cs.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateBorders(cs.ecs)

	factory.CreateCourseObjects(cs.ecs, courseData.CurrentCourse)
	factory.CreateBall(cs.ecs)

	cs.buildAimUI()
}

// buildAimUI wires the slider panel to the shared aim state
func (cs *CourseScene) buildAimUI() {
	cs.aimUI = ui.NewAimUI(
		func(angleDeg float64) {
			systems.GetOrCreateAim(cs.ecs).AngleDeg = angleDeg
		},
		func(power float64) {
			systems.GetOrCreateAim(cs.ecs).Power = power
		},
		func() {
			systems.GetOrCreateAim(cs.ecs).LaunchRequested = true
		},
	)

	aim := systems.GetOrCreateAim(cs.ecs)
	cs.aimUI.SetValues(aim.AngleDeg, aim.Power)
}

// aimPanelActive reports whether the slider panel should be shown this frame
func (cs *CourseScene) aimPanelActive() bool {
	if cs.ecs == nil || cs.aimUI == nil {
		return false
	}
	if systems.GetOrCreatePause(cs.ecs).IsPaused || systems.IsSettingsOpen(cs.ecs) {
		return false
	}
	return systems.GetOrCreateRound(cs.ecs).State == cfg.RoundPlaying
}

// syncAimPanel mirrors keyboard aim adjustments into the sliders and
// flips the launch button to a stop button while the ball is in motion
func (cs *CourseScene) syncAimPanel() {
	aim := systems.GetOrCreateAim(cs.ecs)
	cs.aimUI.SetValues(aim.AngleDeg, aim.Power)

	moving, sinking := false, false
	if ballEntry, ok := components.Ball.First(cs.ecs.World); ok {
		ball := components.Ball.Get(ballEntry)
		moving, sinking = ball.Moving, ball.Teleporting
	}
	cs.aimUI.SetLaunchState(moving, sinking)
}
