package solver

import (
	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/feasibility"
	"github.com/evscheduler/daily-schedule/internal/geometry"
	"github.com/evscheduler/daily-schedule/internal/model"
	"github.com/evscheduler/daily-schedule/internal/utility"
)

// Run executes the label-setting DP to completion over a freshly allocated
// bucket: seeds a label at dawn, then extends every surviving label
// against every candidate activity, applying dominance at each insertion.
// activities must be indexed by id (activities[0] is dawn,
// activities[len-1] is dusk) and any DSSR-injected ForbiddenGroups must
// already be set on them.
func Run(activities []*model.Activity, initialSOC float64, p config.Parameters) *Bucket {
	n := len(activities)
	dawn, dusk := activities[0], activities[n-1]
	bucket := NewBucket(p.Horizon, n)

	seed := &model.Label{
		Act:       dawn,
		Time:      dawn.MinDuration,
		StartTime: 0,
		Duration:  dawn.MinDuration,
		CurrentSOC: initialSOC,
		Mem:        model.NewGroupSet(dawn.Group),
	}
	bucket.Insert(seed)

	for t := seed.Time; t < p.Horizon-1; t++ {
		queue := make([]*model.Label, 0, n)
		for i := 0; i < n; i++ {
			queue = append(queue, bucket.Cell(t, i)...)
		}
		for idx := 0; idx < len(queue); idx++ {
			l := queue[idx]
			for _, a := range activities {
				if !feasibility.Admissible(l, a, dusk, n, p) {
					continue
				}
				extended := extend(l, a, dusk, p)
				if bucket.Insert(extended) && extended.Time == t {
					queue = append(queue, extended)
				}
			}
		}
	}
	return bucket
}

func extend(l *model.Label, a, dusk *model.Activity, p config.Parameters) *model.Label {
	if a.ID == l.Act.ID {
		return extendContinuation(l, a, p)
	}
	return extendTransition(l, a, dusk, p)
}

func extendContinuation(l *model.Label, a *model.Activity, p config.Parameters) *model.Label {
	next := &model.Label{
		Act:                       a,
		Time:                      l.Time + 1,
		StartTime:                 l.StartTime,
		Duration:                  l.Duration + 1,
		CurrentSOC:                l.CurrentSOC,
		SOCAtActivityStart:        l.SOCAtActivityStart,
		ChargeMode:                l.ChargeMode,
		ChargeDuration:            l.ChargeDuration,
		ChargeCost:                l.ChargeCost,
		ChargeCostAtActivityStart: l.ChargeCostAtActivityStart,
		Utility:                   l.Utility,
		Mem:                       l.Mem,
		Previous:                  l.Previous,
	}
	if a.IsCharging {
		utility.ChargeInterval(next, next.Time, p)
	}
	return next
}

func extendTransition(l *model.Label, a, dusk *model.Activity, p config.Parameters) *model.Label {
	tt := geometry.TravelIntervals(l.Act, a, p)
	startTime := l.Time + tt

	next := &model.Label{
		Act:        a,
		StartTime:  startTime,
		ChargeMode: a.ChargeMode,
		Mem:        l.Mem.Union(a.ForbiddenGroups),
		Utility:    l.Utility,
		Previous:   l,
	}
	if a.ID == dusk.ID {
		next.Time = p.Horizon - 1
		next.Duration = p.Horizon - 1 - startTime
	} else {
		next.Time = startTime + a.MinDuration
		next.Duration = a.MinDuration
	}
	next.SOCAtActivityStart = l.CurrentSOC - geometry.TravelSOC(l.Act, a, p)
	next.CurrentSOC = next.SOCAtActivityStart
	next.ChargeCostAtActivityStart = l.ChargeCost
	next.ChargeCost = l.ChargeCost

	if a.IsCharging {
		utility.ChargeInterval(next, next.Time, p)
	}
	utility.ApplyTransition(next, p)
	return next
}
