// Package geometry provides pure, side-effect-free distance, travel-time
// and travel-energy functions shared by the feasibility oracle and the
// label-setting DP.
package geometry

import (
	"math"

	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/model"
)

// Distance returns the Euclidean distance between two activity locations,
// in metres.
func Distance(a, b *model.Activity) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TravelIntervals converts the distance between a and b into a whole
// number of time-slots: raw travel minutes (distance/speed) are rounded
// up to the next multiple of the time interval, then divided by the
// interval. Same-location pairs yield 0; the result is always >= 0.
func TravelIntervals(a, b *model.Activity, p config.Parameters) int {
	dist := Distance(a, b)
	if dist == 0 {
		return 0
	}
	rawMinutes := dist / p.Speed
	return int(math.Ceil(rawMinutes / float64(p.TimeInterval)))
}

// TravelSOC returns the fraction of battery capacity consumed travelling
// from a to b.
func TravelSOC(a, b *model.Activity, p config.Parameters) float64 {
	distanceKM := Distance(a, b) / 1000
	energyKWh := p.Battery.EnergyConsumptionRate * distanceKM
	return energyKWh / p.Battery.BatteryCapacityKWh
}
