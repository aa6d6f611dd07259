// Package utility implements the transition utility evaluator: the
// incremental utility contribution when a label transitions to a new
// activity, and the charging-cost/SOC terms when a charging activity ends.
package utility

import (
	"math"

	"github.com/evscheduler/daily-schedule/internal/charging"
	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/geometry"
	"github.com/evscheduler/daily-schedule/internal/model"
)

// ApplyTransition adds the five transition contributions to newLabel.Utility
// in spec order. newLabel.Previous is the label at the end of the
// now-finished activity; everything else about newLabel must already be
// set by the caller (solver.extendTransition) before this runs.
func ApplyTransition(newLabel *model.Label, p config.Parameters) {
	prev := newLabel.Previous
	if prev == nil {
		return
	}

	interval := float64(p.TimeInterval)

	// 1. Attraction.
	newLabel.Utility += p.Utility.ASC[newLabel.Act.Group]

	// 2. Travel.
	tt := geometry.TravelIntervals(prev.Act, newLabel.Act, p)
	newLabel.Utility += p.TravelTimePenalty * float64(tt)

	// 3. Duration penalty for the activity that just finished.
	if prev.Act.Group != model.GroupHome && !prev.Act.IsServiceStation {
		g := prev.Act.Group
		newLabel.Utility += p.Utility.Short[g] * interval * math.Max(0, float64(prev.Act.DesDuration-prev.Duration))
		newLabel.Utility += p.Utility.Long[g] * interval * math.Max(0, float64(prev.Duration-prev.Act.DesDuration))
	}

	// 4. Start-time penalty for the new activity.
	if newLabel.Act.Group != model.GroupHome && !newLabel.Act.IsServiceStation {
		g := newLabel.Act.Group
		newLabel.Utility += p.Utility.Early[g] * interval * math.Max(0, float64(newLabel.Act.DesStartTime-newLabel.StartTime))
		newLabel.Utility += p.Utility.Late[g] * interval * math.Max(0, float64(newLabel.StartTime-newLabel.Act.DesStartTime))
	}

	// 5. Charging terms for the activity that just finished.
	if prev.Act.IsCharging {
		newLabel.Utility += chargingInconvenience(prev.Act.Group, p)
		newLabel.Utility += p.Battery.ThetaSOC * math.Max(0, p.Battery.SOCThreshold-prev.SOCAtActivityStart)
		newLabel.Utility += p.Battery.BetaDeltaSOC * (prev.CurrentSOC - prev.SOCAtActivityStart)
		intervalChargeCost := prev.ChargeCost - prev.ChargeCostAtActivityStart
		newLabel.Utility += p.Battery.BetaChargeCost * intervalChargeCost
	}
}

func chargingInconvenience(finishedGroup model.Group, p config.Parameters) float64 {
	switch finishedGroup {
	case model.GroupWork:
		return p.Battery.GammaChargeWork
	case model.GroupHome:
		return p.Battery.GammaChargeHome
	default:
		return p.Battery.GammaChargeNonWork
	}
}

// ChargeInterval performs one interval of charging on label l in place:
// advances CurrentSOC, ChargeDuration and ChargeCost. Shared by the
// continuation and transition extension paths in the DP.
func ChargeInterval(l *model.Label, atTime int, p config.Parameters) {
	if !l.Act.IsCharging || l.CurrentSOC >= 1 {
		return
	}
	profile := charging.ChargeProfile(l.ChargeMode, l.Act.Group, p)
	touFactor := charging.TOUFactor(atTime, p)
	deltaSOC, cost := charging.IntervalCost(l.CurrentSOC, profile, touFactor, p)
	l.CurrentSOC += deltaSOC
	l.ChargeDuration += p.TimeInterval
	l.ChargeCost += cost
}
