package factory

import (
	"fmt"

	"github.com/automoto/minigolf/archetypes"
	"github.com/automoto/minigolf/assets"
	"github.com/automoto/minigolf/components"
	cfg "github.com/automoto/minigolf/config"
	"github.com/automoto/minigolf/physics"
	"github.com/automoto/minigolf/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCourses(ecs *ecs.ECS) *donburi.Entry {
	return CreateCoursesAtIndex(ecs, 0)
}

func CreateCoursesAtIndex(ecs *ecs.ECS, courseIndex int) *donburi.Entry {
	entry := archetypes.Course.Spawn(ecs)

	loader := assets.NewCourseLoader()
	courses := loader.MustLoadCourses()

	// Clamp index to valid range
	if courseIndex < 0 || courseIndex >= len(courses) {
		courseIndex = 0
	}

	courseData := &components.CourseData{
		Courses:       courses,
		CourseIndex:   courseIndex,
		CurrentCourse: &courses[courseIndex],
	}

	components.Course.Set(entry, courseData)

	return entry
}

// CreateBorders adds the four arena border strips to the collision
// space. They are plain space objects without entities, so course
// rebuilds leave them alone.
func CreateBorders(ecs *ecs.ECS) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	b := cfg.Course.BorderThickness

	for _, r := range []physics.Rect{
		{X: 0, Y: 0, W: w, H: b},
		{X: 0, Y: h - b, W: w, H: b},
		{X: 0, Y: 0, W: b, H: h},
		{X: w - b, Y: 0, W: b, H: h},
	} {
		obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvBorder)
		obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
		addToSpace(ecs, obj)
	}
}

// CreateCourseObjects mirrors every obstacle of the course into the
// collision space, one entity per obstacle. Platform and repulsor
// objects carry their physics counterpart in Data so the sync system
// can follow them as they move. A panic here means the course file
// places an obstacle, or an oscillation envelope, into the border.
func CreateCourseObjects(ecs *ecs.ECS, course *assets.Course) {
	for i := range course.Walls {
		w := course.Walls[i]
		mustClearBorders(fmt.Sprintf("course %d wall %d", course.Number, i), w)
		CreateWall(ecs, w)
	}
	for i, p := range course.Platforms {
		mustClearBorders(fmt.Sprintf("course %d platform %d", course.Number, i), platformEnvelope(p))
		CreatePlatform(ecs, p)
	}
	for i, r := range course.Repulsors {
		env := physics.Rect{X: r.Pos.X - r.Radius, Y: r.Pos.Y - r.Radius, W: r.Radius * 2, H: r.Radius * 2}
		mustClearBorders(fmt.Sprintf("course %d repulsor %d", course.Number, i), env)
		CreateRepulsor(ecs, r)
	}
}

// platformEnvelope returns the full rectangle an obstacle can sweep.
// Oscillators overshoot their amplitude by up to one step at each
// turnaround; drifters reflect at the border and never leave the field.
func platformEnvelope(p *physics.Platform) physics.Rect {
	env := p.Rect
	reach := p.Amplitude + p.Speed
	switch p.Mode {
	case physics.MoveVertical:
		env.Y -= reach
		env.H += 2 * reach
	case physics.MoveHorizontal:
		env.X -= reach
		env.W += 2 * reach
	}
	return env
}

// mustClearBorders panics when the given extent intersects any of the
// four border strips
func mustClearBorders(name string, r physics.Rect) {
	w := float64(cfg.C.Width)
	h := float64(cfg.C.Height)
	b := cfg.Course.BorderThickness

	shape := resolv.NewRectangle(r.X, r.Y, r.W, r.H)
	for _, border := range []physics.Rect{
		{X: 0, Y: 0, W: w, H: b},
		{X: 0, Y: h - b, W: w, H: b},
		{X: 0, Y: 0, W: b, H: h},
		{X: w - b, Y: 0, W: b, H: h},
	} {
		if shape.Intersection(0, 0, resolv.NewRectangle(border.X, border.Y, border.W, border.H)) != nil {
			panic(fmt.Sprintf("%s reaches into the arena border (extent %.0f,%.0f %gx%g)", name, r.X, r.Y, r.W, r.H))
		}
	}
}

func CreateWall(ecs *ecs.ECS, r physics.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvWall)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}

func CreatePlatform(ecs *ecs.ECS, p *physics.Platform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, p.Rect.W, p.Rect.H))
	obj.Data = p

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

func CreateRepulsor(ecs *ecs.ECS, r *physics.Repulsor) *donburi.Entry {
	repulsor := archetypes.Repulsor.Spawn(ecs)

	// Bounding square of the circle
	obj := resolv.NewObject(r.Pos.X-r.Radius, r.Pos.Y-r.Radius, r.Radius*2, r.Radius*2, tags.ResolvRepulsor)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Radius*2, r.Radius*2))
	obj.Data = r

	components.Object.SetValue(repulsor, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return repulsor
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
