package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration shape (YAML): a general block plus
// an optional external rates file that can be overridden inline.
type File struct {
	RatesFile string     `yaml:"rates_file"`
	General   GeneralYAML `yaml:"general"`
	Rates     RatesYAML   `yaml:"rates"`
	Battery   BatteryYAML `yaml:"battery"`
}

type GeneralYAML struct {
	Horizon           int     `yaml:"horizon"`
	SpeedMetresPerMin float64 `yaml:"speed_m_per_min"`
	TravelTimePenalty float64 `yaml:"travel_time_penalty"`
	TimeIntervalMins  int     `yaml:"time_interval_minutes"`
}

type RatesYAML struct {
	SlowChargePowerKW  float64 `yaml:"slow_charge_power_kw"`
	FastChargePowerKW  float64 `yaml:"fast_charge_power_kw"`
	RapidChargePowerKW float64 `yaml:"rapid_charge_power_kw"`

	HomeSlowChargePrice float64 `yaml:"home_slow_charge_price"`
	ACChargePrice       float64 `yaml:"ac_charge_price"`
	PublicDCChargePrice float64 `yaml:"public_dc_charge_price"`

	TOUPeakFactor    float64 `yaml:"tou_peak_factor"`
	TOUMidPeakFactor float64 `yaml:"tou_midpeak_factor"`
	TOUOffPeakFactor float64 `yaml:"tou_offpeak_factor"`

	PeakStart     int `yaml:"peak_start"`
	PeakEnd       int `yaml:"peak_end"`
	MidPeak1Start int `yaml:"midpeak1_start"`
	MidPeak1End   int `yaml:"midpeak1_end"`
	MidPeak2Start int `yaml:"midpeak2_start"`
	MidPeak2End   int `yaml:"midpeak2_end"`
}

type BatteryYAML struct {
	BatteryCapacityKWh    float64 `yaml:"battery_capacity_kwh"`
	EnergyConsumptionRate float64 `yaml:"energy_consumption_rate_kwh_per_km"`
	SOCThreshold          float64 `yaml:"soc_threshold"`

	GammaChargeWork    float64 `yaml:"gamma_charge_work"`
	GammaChargeNonWork float64 `yaml:"gamma_charge_non_work"`
	GammaChargeHome    float64 `yaml:"gamma_charge_home"`
	ThetaSOC           float64 `yaml:"theta_soc"`
	BetaDeltaSOC       float64 `yaml:"beta_delta_soc"`
	BetaChargeCost     float64 `yaml:"beta_charge_cost"`
}

// Load reads a YAML file, merges in any external rates file, fills in
// defaults for anything left at its zero value, and validates the result.
func Load(path string) (Parameters, error) {
	f, err := LoadUnchecked(path)
	if err != nil {
		return Parameters{}, err
	}
	params := f.ToParameters()
	if err := Validate(params); err != nil {
		return Parameters{}, fmt.Errorf("config invalid: %w", err)
	}
	return params, nil
}

// LoadUnchecked loads and merges config without validating it. Useful for
// debugging or printing partial configs.
func LoadUnchecked(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	if f.RatesFile != "" {
		ratesPath := f.RatesFile
		if !filepath.IsAbs(ratesPath) {
			cand := filepath.Join(filepath.Dir(path), ratesPath)
			if _, err := os.Stat(cand); err == nil {
				ratesPath = cand
			}
		}
		loaded, err := loadRatesFile(ratesPath)
		if err != nil {
			return nil, err
		}
		f.Rates = mergeRates(loaded, f.Rates)
	}
	return &f, nil
}

type ratesFileWrapper struct {
	Rates RatesYAML `yaml:"rates"`
}

func loadRatesFile(path string) (RatesYAML, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return RatesYAML{}, err
	}
	var w ratesFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return RatesYAML{}, err
	}
	return w.Rates, nil
}

// mergeRates overlays non-zero fields from override onto base.
func mergeRates(base, override RatesYAML) RatesYAML {
	out := base
	if override.SlowChargePowerKW != 0 {
		out.SlowChargePowerKW = override.SlowChargePowerKW
	}
	if override.FastChargePowerKW != 0 {
		out.FastChargePowerKW = override.FastChargePowerKW
	}
	if override.RapidChargePowerKW != 0 {
		out.RapidChargePowerKW = override.RapidChargePowerKW
	}
	if override.HomeSlowChargePrice != 0 {
		out.HomeSlowChargePrice = override.HomeSlowChargePrice
	}
	if override.ACChargePrice != 0 {
		out.ACChargePrice = override.ACChargePrice
	}
	if override.PublicDCChargePrice != 0 {
		out.PublicDCChargePrice = override.PublicDCChargePrice
	}
	if override.TOUPeakFactor != 0 {
		out.TOUPeakFactor = override.TOUPeakFactor
	}
	if override.TOUMidPeakFactor != 0 {
		out.TOUMidPeakFactor = override.TOUMidPeakFactor
	}
	if override.TOUOffPeakFactor != 0 {
		out.TOUOffPeakFactor = override.TOUOffPeakFactor
	}
	if override.PeakStart != 0 || override.PeakEnd != 0 {
		out.PeakStart, out.PeakEnd = override.PeakStart, override.PeakEnd
	}
	if override.MidPeak1Start != 0 || override.MidPeak1End != 0 {
		out.MidPeak1Start, out.MidPeak1End = override.MidPeak1Start, override.MidPeak1End
	}
	if override.MidPeak2Start != 0 || override.MidPeak2End != 0 {
		out.MidPeak2Start, out.MidPeak2End = override.MidPeak2Start, override.MidPeak2End
	}
	return out
}

// ToParameters converts the YAML file shape to config.Parameters, falling
// back to Default() for anything left zero. The utility coefficient
// arrays are not YAML-configurable here; callers needing custom
// coefficients should start from Default() and override the Utility
// field directly.
func (f *File) ToParameters() Parameters {
	def := Default()
	p := Parameters{
		Horizon:           orInt(f.General.Horizon, def.Horizon),
		Speed:             orFloat(f.General.SpeedMetresPerMin, def.Speed),
		TravelTimePenalty: orFloat(f.General.TravelTimePenalty, def.TravelTimePenalty),
		TimeInterval:      orInt(f.General.TimeIntervalMins, def.TimeInterval),
		Utility:           def.Utility,
		Battery:           def.Battery,
	}
	p.Charging = ChargingRatesAndPrices{
		SlowChargePowerKW:   orFloat(f.Rates.SlowChargePowerKW, def.Charging.SlowChargePowerKW),
		FastChargePowerKW:   orFloat(f.Rates.FastChargePowerKW, def.Charging.FastChargePowerKW),
		RapidChargePowerKW:  orFloat(f.Rates.RapidChargePowerKW, def.Charging.RapidChargePowerKW),
		HomeSlowChargePrice: orFloat(f.Rates.HomeSlowChargePrice, def.Charging.HomeSlowChargePrice),
		ACChargePrice:       orFloat(f.Rates.ACChargePrice, def.Charging.ACChargePrice),
		PublicDCChargePrice: orFloat(f.Rates.PublicDCChargePrice, def.Charging.PublicDCChargePrice),
		TOUPeakFactor:       orFloat(f.Rates.TOUPeakFactor, def.Charging.TOUPeakFactor),
		TOUMidPeakFactor:    orFloat(f.Rates.TOUMidPeakFactor, def.Charging.TOUMidPeakFactor),
		TOUOffPeakFactor:    orFloat(f.Rates.TOUOffPeakFactor, def.Charging.TOUOffPeakFactor),
		PeakStart:           orInt(f.Rates.PeakStart, def.Charging.PeakStart),
		PeakEnd:             orInt(f.Rates.PeakEnd, def.Charging.PeakEnd),
		MidPeak1Start:       orInt(f.Rates.MidPeak1Start, def.Charging.MidPeak1Start),
		MidPeak1End:         orInt(f.Rates.MidPeak1End, def.Charging.MidPeak1End),
		MidPeak2Start:       orInt(f.Rates.MidPeak2Start, def.Charging.MidPeak2Start),
		MidPeak2End:         orInt(f.Rates.MidPeak2End, def.Charging.MidPeak2End),
	}
	p.Battery = BatteryCoefficients{
		BatteryCapacityKWh:    orFloat(f.Battery.BatteryCapacityKWh, def.Battery.BatteryCapacityKWh),
		EnergyConsumptionRate: orFloat(f.Battery.EnergyConsumptionRate, def.Battery.EnergyConsumptionRate),
		SOCThreshold:          orFloat(f.Battery.SOCThreshold, def.Battery.SOCThreshold),
		GammaChargeWork:       orFloat(f.Battery.GammaChargeWork, def.Battery.GammaChargeWork),
		GammaChargeNonWork:    orFloat(f.Battery.GammaChargeNonWork, def.Battery.GammaChargeNonWork),
		GammaChargeHome:       orFloat(f.Battery.GammaChargeHome, def.Battery.GammaChargeHome),
		ThetaSOC:              orFloat(f.Battery.ThetaSOC, def.Battery.ThetaSOC),
		BetaDeltaSOC:          orFloat(f.Battery.BetaDeltaSOC, def.Battery.BetaDeltaSOC),
		BetaChargeCost:        orFloat(f.Battery.BetaChargeCost, def.Battery.BetaChargeCost),
	}
	return p
}

func orFloat(v, def float64) float64 {
	if v != 0 {
		return v
	}
	return def
}

func orInt(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}

// Validate checks the structural invariants Parameters must satisfy
// before a solve can run.
func Validate(p Parameters) error {
	if p.Horizon <= 0 {
		return errors.New("horizon must be > 0")
	}
	if p.TimeInterval <= 0 {
		return errors.New("time_interval must be > 0")
	}
	if p.Speed <= 0 {
		return errors.New("speed must be > 0")
	}
	if p.Battery.BatteryCapacityKWh <= 0 {
		return errors.New("battery_capacity_kwh must be > 0")
	}
	return nil
}
