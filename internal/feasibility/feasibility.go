// Package feasibility implements the admissibility oracle: given a label
// and a candidate activity, it decides whether extending the label onto
// that activity respects time-window, duration, SOC, charging-continuity
// and group-elementarity constraints.
package feasibility

import (
	"github.com/evscheduler/daily-schedule/internal/charging"
	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/geometry"
	"github.com/evscheduler/daily-schedule/internal/model"
)

// Admissible reports whether label l may extend onto candidate activity a.
// dusk is the last activity in the input set (id == numActivities-1),
// needed to check that there is still time to return home at day's end.
func Admissible(l *model.Label, a, dusk *model.Activity, numActivities int, p config.Parameters) bool {
	if a.ID == l.Act.ID {
		return continuation(l, a, p)
	}
	return transition(l, a, dusk, numActivities, p)
}

func continuation(l *model.Label, a *model.Activity, p config.Parameters) bool {
	if l.Duration+1 > a.MaxDuration {
		return false
	}
	if a.IsServiceStation && !a.IsCharging {
		return false
	}
	if a.IsCharging {
		if a.ChargeMode == model.ChargeModeNone {
			return false
		}
		if l.Previous != nil && l.Previous.Act.ID == a.ID && l.ChargeMode != a.ChargeMode {
			return false
		}
		profile := charging.ChargeProfile(a.ChargeMode, a.Group, p)
		if l.CurrentSOC+profile.RatePerInterval > 1 {
			return false
		}
	}
	return true
}

func transition(l *model.Label, a, dusk *model.Activity, numActivities int, p config.Parameters) bool {
	if a.IsDawn() {
		return false
	}
	if l.Previous != nil && l.Previous.Act.ID == a.ID {
		return false
	}
	if l.Act.IsDusk(numActivities) {
		return false
	}
	if l.Duration < l.Act.MinDuration {
		return false
	}

	tt := geometry.TravelIntervals(l.Act, a, p)

	if l.Time+tt+a.MinDuration+geometry.TravelIntervals(a, dusk, p) >= p.Horizon-1 {
		return false
	}
	if l.Time+tt < a.EarliestStart || l.Time+tt > a.LatestStart {
		return false
	}
	// Home is revisitable: elementarity only bites on groups that
	// represent a genuine trip chain commitment (work, shopping, etc).
	if a.Group != model.GroupHome && l.Mem.Contains(a.Group) {
		return false
	}
	if l.CurrentSOC-geometry.TravelSOC(l.Act, a, p) < 0 {
		return false
	}
	if a.IsCharging && a.ChargeMode == model.ChargeModeNone {
		return false
	}
	if a.IsServiceStation && !a.IsCharging {
		return false
	}
	return true
}
