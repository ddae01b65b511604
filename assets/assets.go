package assets

import (
	"embed"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/automoto/minigolf/physics"
	"github.com/lafriks/go-tiled"
)

//go:embed all:courses
var assetFS embed.FS

// Course pairs a parsed course definition with the file it came from
type Course struct {
	*physics.Course
	Name string
}

// Random obstacle generation bounds, used when a course map requests
// randomPlatforms or randomRepulsors.
const (
	randomPlatformW    = 60.0
	randomPlatformH    = 10.0
	randomPlatformMinX = 80.0
	randomPlatformMaxX = 710.0
	randomPlatformMinY = 80.0
	randomPlatformMaxY = 560.0

	randomRepulsorRadius = 15.0
	randomRepulsorMinX   = 60.0
	randomRepulsorMaxX   = 740.0
	randomRepulsorMinY   = 60.0
	randomRepulsorMaxY   = 540.0

	randomDriftMax = 2.0
)

// CourseLoader parses Tiled maps into course definitions
type CourseLoader struct {
	rng *rand.Rand
}

func NewCourseLoader() *CourseLoader {
	return &CourseLoader{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewCourseLoaderWithSeed returns a loader with deterministic random obstacles
func NewCourseLoaderWithSeed(seed int64) *CourseLoader {
	return &CourseLoader{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// MustLoadCourses loads every .tmx file under courses/ in name order
func (l *CourseLoader) MustLoadCourses() []Course {
	entries, err := assetFS.ReadDir("courses")
	if err != nil {
		panic(fmt.Sprintf("Failed to read courses directory: %v", err))
	}

	var courses []Course
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			coursePath := filepath.Join("courses", entry.Name())
			course, err := l.LoadCourse(coursePath)
			if err != nil {
				panic(fmt.Sprintf("Failed to load course %s: %v", coursePath, err))
			}
			courses = append(courses, course)
		}
	}

	if len(courses) == 0 {
		panic("No course files found in assets/courses directory")
	}

	return courses
}

// LoadCourse parses a single Tiled map into a course definition.
// Layout errors (missing hole, bad platform parameters) are reported
// rather than silently skipped so broken maps fail at startup.
func (l *CourseLoader) LoadCourse(coursePath string) (Course, error) {
	courseMap, err := tiled.LoadFile(coursePath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Course{}, err
	}

	number := courseMap.Properties.GetInt("courseNumber")
	if number <= 0 {
		return Course{}, fmt.Errorf("%s: missing or invalid courseNumber property", coursePath)
	}

	rebound, err := parseReboundPolicy(courseMap.Properties.GetString("reboundPolicy"))
	if err != nil {
		return Course{}, fmt.Errorf("%s: %w", coursePath, err)
	}

	def := physics.NewCourse(number, physics.Vec2{}, rebound)
	holeSeen := false

	for _, og := range courseMap.ObjectGroups {
		switch og.Name {
		case "Hole":
			for _, o := range og.Objects {
				if holeSeen {
					return Course{}, fmt.Errorf("%s: more than one hole object", coursePath)
				}
				def.Hole = physics.Vec2{X: o.X, Y: o.Y}
				holeSeen = true
			}
		case "Walls":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return Course{}, fmt.Errorf("%s: wall %d has non-positive size", coursePath, o.ID)
				}
				def.AddWall(physics.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Platforms":
			for _, o := range og.Objects {
				p, err := parsePlatform(o)
				if err != nil {
					return Course{}, fmt.Errorf("%s: platform %d: %w", coursePath, o.ID, err)
				}
				def.AddPlatform(p)
			}
		case "Repulsors":
			for _, o := range og.Objects {
				radius := o.Properties.GetFloat("radius")
				r, err := physics.NewRepulsor(physics.Vec2{X: o.X, Y: o.Y}, radius)
				if err != nil {
					return Course{}, fmt.Errorf("%s: repulsor %d: %w", coursePath, o.ID, err)
				}
				def.AddRepulsor(r)
			}
		}
	}

	if !holeSeen {
		return Course{}, fmt.Errorf("%s: no hole object", coursePath)
	}

	for i := 0; i < courseMap.Properties.GetInt("randomPlatforms"); i++ {
		def.AddPlatform(l.randomPlatform())
	}
	for i := 0; i < courseMap.Properties.GetInt("randomRepulsors"); i++ {
		def.AddRepulsor(l.randomRepulsor())
	}

	return Course{Course: def, Name: coursePath}, nil
}

func parseReboundPolicy(s string) (physics.ReboundPolicy, error) {
	switch s {
	case "", "reflect":
		return physics.ReboundReflect, nil
	case "boost":
		return physics.ReboundBoost, nil
	case "reverse":
		return physics.ReboundReverse, nil
	default:
		return 0, fmt.Errorf("unknown reboundPolicy %q", s)
	}
}

func parsePlatform(o *tiled.Object) (*physics.Platform, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("non-positive size")
	}
	rect := physics.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}

	mode := o.Properties.GetString("mode")
	switch mode {
	case "horizontal", "vertical":
		m := physics.MoveHorizontal
		if mode == "vertical" {
			m = physics.MoveVertical
		}
		amplitude := o.Properties.GetFloat("amplitude")
		speed := o.Properties.GetFloat("speed")
		dir := float64(o.Properties.GetInt("dir"))
		return physics.NewOscillatingPlatform(rect, m, amplitude, speed, dir)
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}

func (l *CourseLoader) uniform(min, max float64) float64 {
	return min + l.rng.Float64()*(max-min)
}

func (l *CourseLoader) randomDrift() physics.Vec2 {
	return physics.Vec2{
		X: l.uniform(-randomDriftMax, randomDriftMax),
		Y: l.uniform(-randomDriftMax, randomDriftMax),
	}
}

func (l *CourseLoader) randomPlatform() *physics.Platform {
	rect := physics.Rect{
		X: l.uniform(randomPlatformMinX, randomPlatformMaxX),
		Y: l.uniform(randomPlatformMinY, randomPlatformMaxY),
		W: randomPlatformW,
		H: randomPlatformH,
	}
	return physics.NewDriftingPlatform(rect, l.randomDrift())
}

func (l *CourseLoader) randomRepulsor() *physics.Repulsor {
	pos := physics.Vec2{
		X: l.uniform(randomRepulsorMinX, randomRepulsorMaxX),
		Y: l.uniform(randomRepulsorMinY, randomRepulsorMaxY),
	}
	r, err := physics.NewDriftingRepulsor(pos, randomRepulsorRadius, l.randomDrift())
	if err != nil {
		panic(err)
	}
	return r
}
