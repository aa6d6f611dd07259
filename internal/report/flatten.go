// Package report renders a converged label chain into the flattened,
// human/machine-readable views consumed by the CLI and the HTTP API:
// one row per activity visited, plus CSV export.
package report

import "github.com/evscheduler/daily-schedule/internal/model"

// Flatten walks best's label chain from dawn to tail and produces one
// ScheduleRow per activity visited. Each chain entry already carries the
// full accumulated state for its stay (Duration, ChargeDuration,
// ChargeCost, CurrentSOC): the DP's continuation labels collapse their
// own per-interval Previous pointer back to the prior activity's entry
// (see solver.extendContinuation), so Chain never yields two consecutive
// entries for the same activity.
func Flatten(best *model.Label) model.Schedule {
	chain := best.Chain()

	rows := make([]model.ScheduleRow, 0, len(chain))
	var prevCum float64
	for _, l := range chain {
		rows = append(rows, model.ScheduleRow{
			Index:          len(rows),
			ActivityID:     l.Act.ID,
			Group:          l.Act.Group,
			StartTime:      l.StartTime,
			EndTime:        l.Time,
			Duration:       l.Duration,
			Action:         model.ChargeActionFromLabel(l),
			ChargeDuration: l.ChargeDuration,
			ChargeCost:     l.ChargeCost,
			SOCStart:       l.SOCAtActivityStart,
			SOCEnd:         l.CurrentSOC,
			Utility:        l.Utility - prevCum,
			CumUtility:     l.Utility,
		})
		prevCum = l.Utility
	}

	return model.Schedule{
		Rows:         rows,
		TotalUtility: best.Utility,
		FinalSOC:     best.CurrentSOC,
	}
}
