package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evscheduler/daily-schedule/internal/data"
	"github.com/evscheduler/daily-schedule/internal/model"
)

func TestToActivitiesConvertsGroupsAndChargeModes(t *testing.T) {
	set := data.ActivitySet{Activities: []data.ActivityJSON{
		{ID: 0, Group: "home", MinDuration: 1, MaxDuration: 286},
		{ID: 1, Group: "work", ChargeMode: "slow", IsCharging: true, MinDuration: 1, MaxDuration: 10},
		{ID: 2, Group: "home", MinDuration: 1, MaxDuration: 288},
	}}

	activities, err := set.ToActivities()
	require.NoError(t, err)
	require.Len(t, activities, 3)

	assert.Equal(t, model.GroupWork, activities[1].Group)
	assert.Equal(t, model.ChargeModeSlow, activities[1].ChargeMode)
	assert.True(t, activities[1].IsCharging)
}

func TestToActivitiesRejectsIndexIDMismatch(t *testing.T) {
	set := data.ActivitySet{Activities: []data.ActivityJSON{
		{ID: 1, Group: "home"},
	}}
	_, err := set.ToActivities()
	assert.Error(t, err)
}

func TestToActivitiesRejectsUnknownGroup(t *testing.T) {
	set := data.ActivitySet{Activities: []data.ActivityJSON{
		{ID: 0, Group: "vacation"},
	}}
	_, err := set.ToActivities()
	assert.Error(t, err)
}

func TestToActivitiesRejectsUnknownChargeMode(t *testing.T) {
	set := data.ActivitySet{Activities: []data.ActivityJSON{
		{ID: 0, Group: "home", ChargeMode: "ludicrous"},
	}}
	_, err := set.ToActivities()
	assert.Error(t, err)
}

func TestLoadActivitySetMissingFile(t *testing.T) {
	_, err := data.LoadActivitySet("/nonexistent/path/activities.json")
	assert.Error(t, err)
}
