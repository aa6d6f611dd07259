package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evscheduler/daily-schedule/internal/model"
	"github.com/evscheduler/daily-schedule/internal/report"
)

func TestFlattenOneRowPerActivityVisited(t *testing.T) {
	dawn := &model.Activity{ID: 0, Group: model.GroupHome}
	work := &model.Activity{ID: 1, Group: model.GroupWork}
	dusk := &model.Activity{ID: 2, Group: model.GroupHome}

	l0 := &model.Label{Act: dawn, Time: 1, Duration: 1}
	l1 := &model.Label{Act: work, Previous: l0, StartTime: 52, Time: 62, Duration: 10, Utility: 12.5}
	l2 := &model.Label{Act: dusk, Previous: l1, StartTime: 70, Time: 287, Duration: 217, Utility: 12.5}

	sched := report.Flatten(l2)

	if assert.Len(t, sched.Rows, 3) {
		assert.Equal(t, dawn.ID, sched.Rows[0].ActivityID)
		assert.Equal(t, work.ID, sched.Rows[1].ActivityID)
		assert.Equal(t, dusk.ID, sched.Rows[2].ActivityID)
		assert.InDelta(t, 12.5, sched.Rows[1].Utility, 1e-9)
		assert.InDelta(t, 0, sched.Rows[2].Utility, 1e-9)
	}
	assert.Equal(t, 12.5, sched.TotalUtility)
}

func TestChargeActionFromLabel(t *testing.T) {
	charging := &model.Activity{IsCharging: true}
	idle := &model.Activity{IsCharging: false}

	assert.Equal(t, model.ChargeActionCharging, model.ChargeActionFromLabel(&model.Label{Act: charging, ChargeDuration: 15}))
	assert.Equal(t, model.ChargeActionNone, model.ChargeActionFromLabel(&model.Label{Act: charging, ChargeDuration: 0}))
	assert.Equal(t, model.ChargeActionNone, model.ChargeActionFromLabel(&model.Label{Act: idle, ChargeDuration: 0}))
}
