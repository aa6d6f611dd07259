package model

// Label is a node in the search graph: the best-known way to reach
// Act at time-slot Time with a particular group memory. Previous is a
// shared, non-owning back-reference; labels collectively form a DAG
// rooted at the seed label and are owned by the bucket that holds them
// (see solver.Bucket), not by each other.
type Label struct {
	Act *Activity

	Time      int
	StartTime int
	Duration  int

	CurrentSOC         float64
	SOCAtActivityStart float64

	// ChargeMode is carried on the label, not read off Act, so that the
	// charge-mode continuity check can compare a label's own charging
	// history rather than the shared activity record, which is the same
	// for every label that ever visits Act.
	ChargeMode ChargeMode

	ChargeDuration            int
	ChargeCost                float64 // cumulative since schedule start
	ChargeCostAtActivityStart float64 // snapshot when the current activity began

	Utility float64

	Mem GroupSet

	Previous *Label
}

// Chain returns the label sequence from dawn to this label, inclusive.
func (l *Label) Chain() []*Label {
	var rev []*Label
	for cur := l; cur != nil; cur = cur.Previous {
		rev = append(rev, cur)
	}
	chain := make([]*Label, len(rev))
	for i, lb := range rev {
		chain[len(rev)-1-i] = lb
	}
	return chain
}
