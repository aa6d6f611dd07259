// Package config bundles the global, read-only-during-solving
// configuration the core consumes: time discretisation, utility
// coefficients, charging rates/prices and time-of-use windows. A value is
// built once per process (or per solve, if callers need to vary it) and
// passed by value into solver.Solve, so nothing in the core depends on
// shared mutable globals.
package config

// UtilityCoefficients holds the per-Group coefficient arrays: attraction,
// early/late start penalties, and long/short duration penalties. Index by
// model.Group; arrays are sized to model.NumGroups.
type UtilityCoefficients struct {
	ASC   [8]float64
	Early [8]float64
	Late  [8]float64
	Long  [8]float64
	Short [8]float64
}

// ChargingRatesAndPrices holds the per-mode charge power ratings together
// with the tariff table (flat prices plus time-of-use windows/factors).
// Default returns a reasonable baseline; callers load their own values
// from config.File for a specific market.
type ChargingRatesAndPrices struct {
	SlowChargePowerKW  float64
	FastChargePowerKW  float64
	RapidChargePowerKW float64

	HomeSlowChargePrice float64
	ACChargePrice       float64
	PublicDCChargePrice float64

	TOUPeakFactor    float64
	TOUMidPeakFactor float64
	TOUOffPeakFactor float64

	PeakStart, PeakEnd           int
	MidPeak1Start, MidPeak1End   int
	MidPeak2Start, MidPeak2End   int
}

// BatteryCoefficients holds the EV battery sub-model parameters: physical
// constants plus the charging-inconvenience utility coefficients.
type BatteryCoefficients struct {
	BatteryCapacityKWh     float64
	EnergyConsumptionRate  float64 // kWh per km
	SOCThreshold           float64

	GammaChargeWork    float64
	GammaChargeNonWork float64
	GammaChargeHome    float64
	ThetaSOC           float64
	BetaDeltaSOC       float64
	BetaChargeCost     float64
}

// Parameters is the complete set of global inputs a solve needs, built
// once per process and passed by value into solver.Solve.
type Parameters struct {
	Horizon           int
	Speed             float64 // metres per minute (see geometry.TravelIntervals)
	TravelTimePenalty float64
	TimeInterval      int // minutes per time-slot

	Utility  UtilityCoefficients
	Charging ChargingRatesAndPrices
	Battery  BatteryCoefficients
}

// Default returns a baseline parameter set: a 288-slot (24h @ 5 min)
// horizon, a representative charging rate/tariff table, and a calibrated
// set of attraction/timing/duration coefficients per activity group.
func Default() Parameters {
	return Parameters{
		Horizon:           288,
		Speed:             20.4 * 1.60934 * 16.667, // 20.4 mph (~32.8 km/h), converted to m/min (~547)
		TravelTimePenalty: 0.1,
		TimeInterval:      5,
		Utility: UtilityCoefficients{
			ASC:   [8]float64{0, 17.4, 16.1, 6.76, 12, 11.3, 10.6, 0},
			Early: [8]float64{0, -2.56, -1.73, -2.55, -0.031, -2.51, -1.37, 0},
			Late:  [8]float64{0, -1.54, -3.42, -0.578, -1.58, -0.993, -0.79, 0},
			Long:  [8]float64{0, -0.0783, -0.597, -0.0267, -0.209, -0.133, -0.201, 0},
			Short: [8]float64{0, -0.783, -5.63, 0.134, -0.00764, 0.528, -4.78, 0},
		},
		Charging: DefaultChargingRatesAndPrices(),
		Battery: BatteryCoefficients{
			BatteryCapacityKWh:    60,
			EnergyConsumptionRate: 0.2,
			SOCThreshold:          0.3,
			GammaChargeWork:       -3.59,
			GammaChargeNonWork:    -4.34,
			GammaChargeHome:       -3.34,
			ThetaSOC:              -80,
			BetaDeltaSOC:          25,
			BetaChargeCost:        -0.3,
		},
	}
}

// DefaultChargingRatesAndPrices returns a baseline charging rate/tariff
// table: three charge-power tiers, flat per-kWh prices, and a three-band
// time-of-use schedule.
func DefaultChargingRatesAndPrices() ChargingRatesAndPrices {
	return ChargingRatesAndPrices{
		SlowChargePowerKW:  7,
		FastChargePowerKW:  22,
		RapidChargePowerKW: 50,

		HomeSlowChargePrice: 0.26,
		ACChargePrice:       0.52,
		PublicDCChargePrice: 0.79,

		TOUPeakFactor:    1.5,
		TOUMidPeakFactor: 2.5,
		TOUOffPeakFactor: 1,

		PeakStart: 12, PeakEnd: 18,
		MidPeak1Start: 8, MidPeak1End: 12,
		MidPeak2Start: 18, MidPeak2End: 21,
	}
}
