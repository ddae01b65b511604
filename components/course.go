package components

import (
	"github.com/automoto/minigolf/assets"
	"github.com/yohamta/donburi"
)

type CourseData struct {
	CurrentCourse *assets.Course
	CourseIndex   int
	Courses       []assets.Course
}

var Course = donburi.NewComponentType[CourseData]()
