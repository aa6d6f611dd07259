package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evscheduler/daily-schedule/internal/model"
	"github.com/evscheduler/daily-schedule/internal/solver"
)

func TestDominatesNilIsTrivial(t *testing.T) {
	act := &model.Activity{ID: 1}
	l := &model.Label{Act: act}
	assert.True(t, solver.Dominates(l, nil))
}

func TestDominatesRequiresSameActivity(t *testing.T) {
	a := &model.Label{Act: &model.Activity{ID: 1}, Utility: 10, Time: 5}
	b := &model.Label{Act: &model.Activity{ID: 2}, Utility: 1, Time: 10}
	assert.False(t, solver.Dominates(a, b))
}

func TestDominatesRequiresSubsetMem(t *testing.T) {
	act := &model.Activity{ID: 1}
	a := &model.Label{Act: act, Utility: 10, Time: 5, Mem: model.NewGroupSet(model.GroupHome)}
	b := &model.Label{Act: act, Utility: 1, Time: 10, Mem: model.NewGroupSet(model.GroupHome, model.GroupWork)}
	assert.False(t, solver.Dominates(a, b))
}

func TestDominatesHigherUtilityEarlierTime(t *testing.T) {
	act := &model.Activity{ID: 1}
	a := &model.Label{Act: act, Utility: 10, Time: 5, Mem: model.NewGroupSet(model.GroupHome)}
	b := &model.Label{Act: act, Utility: 1, Time: 10, Mem: model.NewGroupSet(model.GroupHome)}
	assert.True(t, solver.Dominates(a, b))
	assert.False(t, solver.Dominates(b, a))
}

func TestDominatesTieIsMutual(t *testing.T) {
	act := &model.Activity{ID: 1}
	a := &model.Label{Act: act, Utility: 5, Time: 5, Mem: model.NewGroupSet(model.GroupHome)}
	b := &model.Label{Act: act, Utility: 5, Time: 5, Mem: model.NewGroupSet(model.GroupHome)}
	// Equal on every axis: each trivially dominates the other, so the
	// bucket's insertion order (not this predicate) decides who survives.
	assert.True(t, solver.Dominates(a, b))
	assert.True(t, solver.Dominates(b, a))
}
