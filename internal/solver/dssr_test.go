package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evscheduler/daily-schedule/internal/model"
	"github.com/evscheduler/daily-schedule/internal/solver"
)

// TestDetectAndForbidFindsRepeatedGroup exercises the DSSR detection
// mechanism directly: two distinct activities sharing a group appear in
// a label chain, and DetectAndForbid must identify the
// violation and inject the offending group into every activity that
// precedes the outer (earlier) occurrence, the chain's head included --
// except the two occurrences themselves.
func TestDetectAndForbidFindsRepeatedGroup(t *testing.T) {
	dawn := &model.Activity{ID: 0, Group: model.GroupHome}
	leisure := &model.Activity{ID: 1, Group: model.GroupLeisure}
	work1 := &model.Activity{ID: 2, Group: model.GroupWork}
	work2 := &model.Activity{ID: 3, Group: model.GroupWork}
	shop := &model.Activity{ID: 4, Group: model.GroupShopping}
	dusk := &model.Activity{ID: 5, Group: model.GroupHome}

	l0 := &model.Label{Act: dawn}
	l1 := &model.Label{Act: leisure, Previous: l0}
	l2 := &model.Label{Act: work1, Previous: l1}
	l3 := &model.Label{Act: work2, Previous: l2}
	l4 := &model.Label{Act: shop, Previous: l3}
	l5 := &model.Label{Act: dusk, Previous: l4}

	found := solver.DetectAndForbid(l5)
	require.True(t, found)

	assert.True(t, dawn.ForbiddenGroups.Contains(model.GroupWork))
	assert.True(t, leisure.ForbiddenGroups.Contains(model.GroupWork))
	assert.False(t, work1.ForbiddenGroups.Contains(model.GroupWork), "outer occurrence itself is never forbidden")
	assert.False(t, work2.ForbiddenGroups.Contains(model.GroupWork), "inner occurrence itself is never forbidden")
	assert.False(t, shop.ForbiddenGroups.Contains(model.GroupWork), "activities after the inner occurrence are untouched")
	assert.False(t, dusk.ForbiddenGroups.Contains(model.GroupWork))
}

// TestDetectAndForbidSkipsDuskAndItsPredecessor covers the exclusion
// rule: a repeated group whose later occurrence is the activity
// immediately before dusk must not be treated as a cycle, since dusk and
// that activity are excluded from the search.
func TestDetectAndForbidSkipsDuskAndItsPredecessor(t *testing.T) {
	dawn := &model.Activity{ID: 0, Group: model.GroupHome}
	work1 := &model.Activity{ID: 1, Group: model.GroupWork}
	work2 := &model.Activity{ID: 2, Group: model.GroupWork}
	dusk := &model.Activity{ID: 3, Group: model.GroupHome}

	l0 := &model.Label{Act: dawn}
	l1 := &model.Label{Act: work1, Previous: l0}
	l2 := &model.Label{Act: work2, Previous: l1}
	l3 := &model.Label{Act: dusk, Previous: l2}

	assert.False(t, solver.DetectAndForbid(l3))
}

// TestDetectAndForbidNoRepeatedGroups covers the converged, cycle-free
// case: every activity in the chain belongs to a distinct group, so
// DetectAndForbid reports no violation and leaves every activity's
// ForbiddenGroups untouched.
func TestDetectAndForbidNoRepeatedGroups(t *testing.T) {
	dawn := &model.Activity{ID: 0, Group: model.GroupHome}
	work := &model.Activity{ID: 1, Group: model.GroupWork}
	shop := &model.Activity{ID: 2, Group: model.GroupShopping}
	dusk := &model.Activity{ID: 3, Group: model.GroupHome}

	l0 := &model.Label{Act: dawn}
	l1 := &model.Label{Act: work, Previous: l0}
	l2 := &model.Label{Act: shop, Previous: l1}
	l3 := &model.Label{Act: dusk, Previous: l2}

	assert.False(t, solver.DetectAndForbid(l3))
	assert.Zero(t, work.ForbiddenGroups)
	assert.Zero(t, shop.ForbiddenGroups)
}

// TestDetectAndForbidShortChainNeverCycles covers the function's
// short-circuit for chains too short to contain a repeated, non-adjacent
// group (fewer than 4 labels).
func TestDetectAndForbidShortChainNeverCycles(t *testing.T) {
	dawn := &model.Activity{ID: 0, Group: model.GroupHome}
	dusk := &model.Activity{ID: 1, Group: model.GroupHome}
	l0 := &model.Label{Act: dawn}
	l1 := &model.Label{Act: dusk, Previous: l0}

	assert.False(t, solver.DetectAndForbid(l1))
}
