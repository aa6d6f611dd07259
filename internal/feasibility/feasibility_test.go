package feasibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/feasibility"
	"github.com/evscheduler/daily-schedule/internal/model"
)

func baseParams() config.Parameters {
	p := config.Default()
	p.Horizon = 288
	return p
}

func TestContinuationRejectsOverMaxDuration(t *testing.T) {
	p := baseParams()
	act := &model.Activity{ID: 1, MaxDuration: 5}
	dusk := &model.Activity{ID: 2}
	l := &model.Label{Act: act, Duration: 5}

	assert.False(t, feasibility.Admissible(l, act, dusk, 3, p))
}

func TestContinuationRequiresChargingOnServiceStation(t *testing.T) {
	p := baseParams()
	act := &model.Activity{ID: 1, MaxDuration: 10, IsServiceStation: true, IsCharging: false}
	dusk := &model.Activity{ID: 2}
	l := &model.Label{Act: act, Duration: 1}

	assert.False(t, feasibility.Admissible(l, act, dusk, 3, p))
}

func TestContinuationRejectsChargeModeSwitch(t *testing.T) {
	p := baseParams()
	act := &model.Activity{ID: 1, MaxDuration: 10, IsCharging: true, ChargeMode: model.ChargeModeFast}
	dusk := &model.Activity{ID: 2}
	previous := &model.Label{Act: act, ChargeMode: model.ChargeModeSlow}
	l := &model.Label{Act: act, Duration: 1, ChargeMode: model.ChargeModeSlow, Previous: previous, CurrentSOC: 0.1}

	assert.False(t, feasibility.Admissible(l, act, dusk, 3, p))
}

func TestTransitionRejectsReturnToDawn(t *testing.T) {
	p := baseParams()
	dawn := &model.Activity{ID: 0}
	work := &model.Activity{ID: 1, MinDuration: 1}
	dusk := &model.Activity{ID: 2}
	l := &model.Label{Act: work, Duration: 1}

	assert.False(t, feasibility.Admissible(l, dawn, dusk, 3, p))
}

func TestTransitionRejectsLeavingDusk(t *testing.T) {
	p := baseParams()
	dusk := &model.Activity{ID: 2}
	other := &model.Activity{ID: 1, MinDuration: 1}
	l := &model.Label{Act: dusk, Duration: 1}

	assert.False(t, feasibility.Admissible(l, other, dusk, 3, p))
}

func TestTransitionRejectsGroupAlreadyVisited(t *testing.T) {
	p := baseParams()
	home := &model.Activity{ID: 0, Group: model.GroupHome, MinDuration: 1}
	shop1 := &model.Activity{ID: 1, Group: model.GroupShopping, EarliestStart: 0, LatestStart: 287, MinDuration: 1}
	shop2 := &model.Activity{
		ID: 2, Group: model.GroupShopping,
		EarliestStart: 0, LatestStart: 287, MinDuration: 1,
	}
	dusk := &model.Activity{ID: 3}

	l := &model.Label{
		Act: shop1, Time: 5, Duration: 1,
		Mem: model.NewGroupSet(model.GroupHome, model.GroupShopping),
	}
	assert.False(t, feasibility.Admissible(l, shop2, dusk, 4, p))
	_ = home
}

func TestTransitionRejectsNegativeArrivalSOC(t *testing.T) {
	p := baseParams()
	p.Battery.EnergyConsumptionRate = 1000 // force a large travel_soc
	from := &model.Activity{ID: 0, X: 0, Y: 0, MinDuration: 1}
	to := &model.Activity{ID: 1, X: 100000, Y: 0, Group: model.GroupShopping, EarliestStart: 0, LatestStart: 287, MinDuration: 1}
	dusk := &model.Activity{ID: 2}

	l := &model.Label{Act: from, Time: 0, Duration: 1, CurrentSOC: 0.01}
	assert.False(t, feasibility.Admissible(l, to, dusk, 3, p))
}

func TestTransitionAcceptsOrdinaryHop(t *testing.T) {
	p := baseParams()
	from := &model.Activity{ID: 0, X: 0, Y: 0, MinDuration: 1}
	to := &model.Activity{
		ID: 1, X: 100, Y: 0, Group: model.GroupShopping,
		EarliestStart: 0, LatestStart: 287, MinDuration: 1,
	}
	dusk := &model.Activity{ID: 2, X: 0, Y: 0}

	l := &model.Label{Act: from, Time: 0, Duration: 1, CurrentSOC: 1.0}
	assert.True(t, feasibility.Admissible(l, to, dusk, 3, p))
}

// TestTransitionRejectsWindowTooTightForReturnTrip covers a candidate
// activity whose own window only opens late enough that visiting it
// would leave no time to travel back to dusk before the horizon ends.
func TestTransitionRejectsWindowTooTightForReturnTrip(t *testing.T) {
	p := baseParams()
	from := &model.Activity{ID: 0, X: 0, Y: 0, MinDuration: 1}
	work := &model.Activity{
		ID: 1, X: 20200, Y: -717, Group: model.GroupWork,
		EarliestStart: 280, LatestStart: 281, MinDuration: 50,
	}
	dusk := &model.Activity{ID: 2, X: 0, Y: 0}

	l := &model.Label{Act: from, Time: 272, Duration: 1, CurrentSOC: 1.0}
	assert.False(t, feasibility.Admissible(l, work, dusk, 3, p))
}

// TestTransitionRejectsServiceStationWithoutCharging is the
// transition-case counterpart to the continuation check: a
// service-station activity that does not actually charge can never be
// entered, continuation or transition.
func TestTransitionRejectsServiceStationWithoutCharging(t *testing.T) {
	p := baseParams()
	from := &model.Activity{ID: 0, X: 0, Y: 0, MinDuration: 1}
	station := &model.Activity{
		ID: 1, X: 100, Y: 0, Group: model.GroupServiceStation,
		EarliestStart: 0, LatestStart: 287, MinDuration: 1,
		IsServiceStation: true, IsCharging: false,
	}
	dusk := &model.Activity{ID: 2, X: 0, Y: 0}

	l := &model.Label{Act: from, Time: 0, Duration: 1, CurrentSOC: 1.0}
	assert.False(t, feasibility.Admissible(l, station, dusk, 3, p))
}
