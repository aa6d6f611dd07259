package main

import (
	"fmt"

	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/model"
	"github.com/evscheduler/daily-schedule/internal/report"
	"github.com/evscheduler/daily-schedule/internal/solver"
)

// Demo builds the smallest interesting activity set by hand — dawn, one
// work activity, dusk — and walks through a solve so the pieces (DP,
// dominance, DSSR, report flattening) can be seen working together
// without any file I/O.
func main() {
	params := config.Default()

	dawn := &model.Activity{ID: 0, X: 0, Y: 0, Group: model.GroupHome, EarliestStart: 0, LatestStart: 0, MinDuration: 1, MaxDuration: 286}
	work := &model.Activity{
		ID: 1, X: 20200, Y: -717, Group: model.GroupWork,
		EarliestStart: 60, LatestStart: 276,
		MinDuration: 10, MaxDuration: 144,
		DesStartTime: 98, DesDuration: 80,
	}
	dusk := &model.Activity{ID: 2, X: 0, Y: 0, Group: model.GroupHome, EarliestStart: 0, LatestStart: 287, MinDuration: 1, MaxDuration: 288}

	activities := []*model.Activity{dawn, work, dusk}

	outcome, err := solver.Solve(activities, params, solver.Options{InitialSOC: 0.8})
	if err != nil {
		panic(err)
	}

	fmt.Printf("status=%s iterations=%d\n", outcome.Status, outcome.Iterations)
	if outcome.Status != solver.StatusConverged {
		return
	}

	sched := report.Flatten(outcome.Best)
	fmt.Printf("total utility=%.3f final soc=%.3f\n", sched.TotalUtility, sched.FinalSOC)
	for _, row := range sched.Rows {
		fmt.Printf("  activity=%d group=%s start=%d end=%d utility=%.3f\n",
			row.ActivityID, row.Group, row.StartTime, row.EndTime, row.CumUtility)
	}
}
