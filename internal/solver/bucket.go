package solver

import "github.com/evscheduler/daily-schedule/internal/model"

// Bucket is the label-setting DP's state: a grid of non-dominated label
// lists indexed by time-slot and activity id. It owns every label it
// holds; labels are reclaimed in bulk when the bucket is discarded.
type Bucket struct {
	horizon       int
	numActivities int
	cells         [][][]*model.Label
}

// NewBucket allocates an empty bucket sized to the given horizon and
// activity count.
func NewBucket(horizon, numActivities int) *Bucket {
	cells := make([][][]*model.Label, horizon)
	for t := range cells {
		cells[t] = make([][]*model.Label, numActivities)
	}
	return &Bucket{horizon: horizon, numActivities: numActivities, cells: cells}
}

// Cell returns the current surviving labels at (t, activityID).
func (b *Bucket) Cell(t, activityID int) []*model.Label {
	return b.cells[t][activityID]
}

// Insert applies the dominance rule against bucket[l.Time][l.Act.ID]:
// every resident label l dominates is removed, and l itself is appended
// unless some resident dominates it. Reports whether l survived.
func (b *Bucket) Insert(l *model.Label) bool {
	cell := b.cells[l.Time][l.Act.ID]
	for _, resident := range cell {
		if Dominates(resident, l) {
			return false
		}
	}
	kept := make([]*model.Label, 0, len(cell)+1)
	for _, resident := range cell {
		if !Dominates(l, resident) {
			kept = append(kept, resident)
		}
	}
	b.cells[l.Time][l.Act.ID] = append(kept, l)
	return true
}

// FinalLabels returns the surviving labels at the terminal cell
// bucket[horizon-1][numActivities-1].
func (b *Bucket) FinalLabels() []*model.Label {
	return b.cells[b.horizon-1][b.numActivities-1]
}

// Best returns the maximum-utility label among FinalLabels, or nil if the
// terminal cell is empty.
func (b *Bucket) Best() *model.Label {
	var best *model.Label
	for _, l := range b.FinalLabels() {
		if best == nil || l.Utility > best.Utility {
			best = l
		}
	}
	return best
}
