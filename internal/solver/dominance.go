package solver

import "github.com/evscheduler/daily-schedule/internal/model"

// Dominates reports whether a dominates b: same activity, b's group
// memory is a subset of a's, a's utility is at least as high, and a
// reaches that utility no later than b. A nil b is trivially dominated.
func Dominates(a, b *model.Label) bool {
	if b == nil {
		return true
	}
	if a.Act.ID != b.Act.ID {
		return false
	}
	if !b.Mem.IsSubsetOf(a.Mem) {
		return false
	}
	if a.Utility < b.Utility {
		return false
	}
	if a.Time > b.Time {
		return false
	}
	return true
}
