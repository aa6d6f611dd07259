// Package data loads the activity sets a solve runs against from JSON
// input files.
package data

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/evscheduler/daily-schedule/internal/model"
)

// ActivityJSON is the on-disk shape of a single activity; field names
// mirror model.Activity but use JSON-friendly snake_case and avoid the
// solver-owned ForbiddenGroups attribute entirely.
type ActivityJSON struct {
	ID int `json:"id"`

	X float64 `json:"x"`
	Y float64 `json:"y"`

	Group string `json:"group"`

	EarliestStart int `json:"earliest_start"`
	LatestStart   int `json:"latest_start"`

	MinDuration int `json:"min_duration"`
	MaxDuration int `json:"max_duration"`

	DesStartTime int `json:"des_start_time"`
	DesDuration  int `json:"des_duration"`

	ChargeMode       string `json:"charge_mode"`
	IsCharging       bool   `json:"is_charging"`
	IsServiceStation bool   `json:"is_service_station"`
}

// ActivitySet is the top-level document: an ordered list of activities,
// id 0 conventionally "dawn" and the last entry "dusk".
type ActivitySet struct {
	Activities []ActivityJSON `json:"activities"`
}

var groupNames = map[string]model.Group{
	"home":            model.GroupHome,
	"education":       model.GroupEducation,
	"errands":         model.GroupErrands,
	"escort":          model.GroupEscort,
	"leisure":         model.GroupLeisure,
	"shopping":        model.GroupShopping,
	"work":            model.GroupWork,
	"service_station": model.GroupServiceStation,
}

var chargeModeNames = map[string]model.ChargeMode{
	"":      model.ChargeModeNone,
	"none":  model.ChargeModeNone,
	"slow":  model.ChargeModeSlow,
	"fast":  model.ChargeModeFast,
	"rapid": model.ChargeModeRapid,
}

// LoadActivitySet reads and decodes an activity set from path.
func LoadActivitySet(path string) (ActivitySet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ActivitySet{}, err
	}
	var set ActivitySet
	if err := json.Unmarshal(raw, &set); err != nil {
		return ActivitySet{}, err
	}
	return set, nil
}

// ToActivities converts the decoded JSON document into solver-ready
// *model.Activity values, indexed by slice position (which must match
// each entry's own ID field).
func (s ActivitySet) ToActivities() ([]*model.Activity, error) {
	out := make([]*model.Activity, len(s.Activities))
	for i, aj := range s.Activities {
		if aj.ID != i {
			return nil, fmt.Errorf("activity at index %d has id %d, want %d", i, aj.ID, i)
		}
		group, ok := groupNames[aj.Group]
		if !ok {
			return nil, fmt.Errorf("activity %d: unknown group %q", aj.ID, aj.Group)
		}
		mode, ok := chargeModeNames[aj.ChargeMode]
		if !ok {
			return nil, fmt.Errorf("activity %d: unknown charge_mode %q", aj.ID, aj.ChargeMode)
		}
		out[i] = &model.Activity{
			ID:               aj.ID,
			X:                aj.X,
			Y:                aj.Y,
			Group:            group,
			EarliestStart:    aj.EarliestStart,
			LatestStart:      aj.LatestStart,
			MinDuration:      aj.MinDuration,
			MaxDuration:      aj.MaxDuration,
			DesStartTime:     aj.DesStartTime,
			DesDuration:      aj.DesDuration,
			ChargeMode:       mode,
			IsCharging:       aj.IsCharging,
			IsServiceStation: aj.IsServiceStation,
		}
	}
	return out, nil
}
