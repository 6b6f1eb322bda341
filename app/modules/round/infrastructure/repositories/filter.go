package rounddb

import rounddomain "github.com/Black-And-White-Club/golf-tracker/app/modules/round/domain"

// Filter narrows a query. Nil fields are unconstrained; set fields are
// AND-combined.
type Filter struct {
	Player    *string
	Course    *string
	HoleCount *int
}

// Matches reports whether r satisfies every set field. Player matches rounds
// in which the player has a score sheet; Course is compared exactly.
func (f Filter) Matches(r rounddomain.RoundRecord) bool {
	if f.Player != nil && !r.HasPlayer(*f.Player) {
		return false
	}
	if f.Course != nil && r.CourseName != *f.Course {
		return false
	}
	if f.HoleCount != nil && r.HoleCount != *f.HoleCount {
		return false
	}
	return true
}

// ForPlayer is shorthand for a filter on one player.
func ForPlayer(name string) Filter {
	return Filter{Player: &name}
}

// ForCourse is shorthand for a filter on one course.
func ForCourse(course string) Filter {
	return Filter{Course: &course}
}
