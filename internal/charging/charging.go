// Package charging implements the charging kernel: per-mode charge
// rate/price lookup and the time-of-use surcharge factor.
package charging

import (
	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/model"
)

// Profile is the per-interval charge rate (fraction of battery capacity
// gained per time-slot) and the price per kWh for a given charging mode
// and activity group.
type Profile struct {
	RatePerInterval float64
	PricePerKWh     float64
}

// ChargeProfile returns the (rate, price) pair for the given mode and
// activity group. Home charging on the slow tier gets the discounted home
// tariff; every other slow/fast charge uses the AC tariff; rapid charging
// always uses the public DC tariff. Mode "none" returns the zero Profile.
func ChargeProfile(mode model.ChargeMode, group model.Group, p config.Parameters) Profile {
	fractionOfHour := float64(p.TimeInterval) / 60.0
	cap := p.Battery.BatteryCapacityKWh

	switch mode {
	case model.ChargeModeSlow:
		price := p.Charging.ACChargePrice
		if group == model.GroupHome {
			price = p.Charging.HomeSlowChargePrice
		}
		return Profile{
			RatePerInterval: (p.Charging.SlowChargePowerKW / cap) * fractionOfHour,
			PricePerKWh:     price,
		}
	case model.ChargeModeFast:
		return Profile{
			RatePerInterval: (p.Charging.FastChargePowerKW / cap) * fractionOfHour,
			PricePerKWh:     p.Charging.ACChargePrice,
		}
	case model.ChargeModeRapid:
		return Profile{
			RatePerInterval: (p.Charging.RapidChargePowerKW / cap) * fractionOfHour,
			PricePerKWh:     p.Charging.PublicDCChargePrice,
		}
	default:
		return Profile{}
	}
}

// TOUFactor returns the time-of-use multiplier applying at time-slot t:
// peak in [PeakStart,PeakEnd), mid-peak in either mid-peak window,
// off-peak otherwise. t is converted to an hour-of-day before comparing
// against the configured hour boundaries, so the comparison stays
// consistent regardless of the configured time-slot width.
func TOUFactor(t int, p config.Parameters) float64 {
	hour := (t * p.TimeInterval) / 60

	switch {
	case hour >= p.Charging.PeakStart && hour < p.Charging.PeakEnd:
		return p.Charging.TOUPeakFactor
	case (hour >= p.Charging.MidPeak1Start && hour < p.Charging.MidPeak1End) ||
		(hour >= p.Charging.MidPeak2Start && hour < p.Charging.MidPeak2End):
		return p.Charging.TOUMidPeakFactor
	default:
		return p.Charging.TOUOffPeakFactor
	}
}

// IntervalCost returns the monetary cost of one interval of charging,
// given the current SOC before the interval and the profile/TOU factor
// in effect. deltaSOC is capped so the battery never exceeds full.
func IntervalCost(currentSOC float64, profile Profile, touFactor float64, p config.Parameters) (deltaSOC, cost float64) {
	deltaSOC = profile.RatePerInterval
	if currentSOC+deltaSOC > 1 {
		deltaSOC = 1 - currentSOC
	}
	if deltaSOC < 0 {
		deltaSOC = 0
	}
	cost = deltaSOC * p.Battery.BatteryCapacityKWh * profile.PricePerKWh * touFactor
	return deltaSOC, cost
}
