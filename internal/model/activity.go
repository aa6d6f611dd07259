package model

// ChargeMode selects the charging power tier used while an activity is
// being performed. Mode 0 means the activity never charges the vehicle.
type ChargeMode int

const (
	ChargeModeNone ChargeMode = iota
	ChargeModeSlow
	ChargeModeFast
	ChargeModeRapid
)

// Activity is an immutable candidate stop in the driver's day, except for
// ForbiddenGroups, which the DSSR outer loop owns and mutates between DP
// restarts (see solver.DetectAndForbid). Identity is the slice index: by convention
// Activities[0] is dawn and Activities[len-1] is dusk.
type Activity struct {
	ID int

	X, Y float64

	Group Group

	EarliestStart int
	LatestStart   int

	MinDuration int
	MaxDuration int

	DesStartTime int
	DesDuration  int

	ChargeMode       ChargeMode
	IsCharging       bool
	IsServiceStation bool

	// ForbiddenGroups is populated by DSSR between DP restarts: a label
	// entering this activity merges this set into its group memory, so it
	// may not go on to enter any activity of those groups. The DP itself
	// tracks no per-group history, so on the
	// first pass every group is freely revisitable; only a restart
	// narrows that via this field. Reset to empty at the start of every
	// solve.
	ForbiddenGroups GroupSet
}

// IsDawn reports whether this is the pseudo-activity opening the day.
func (a *Activity) IsDawn() bool { return a.ID == 0 }

// IsDusk reports whether this is the pseudo-activity closing the day,
// given the total activity count N.
func (a *Activity) IsDusk(n int) bool { return a.ID == n-1 }
