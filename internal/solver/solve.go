// Package solver is the label-setting DP and its DSSR outer loop: the
// core engine that turns a candidate activity set into the highest-utility
// admissible daily schedule.
package solver

import (
	"errors"
	"math/rand"

	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/model"
)

// Status tags how a solve ended.
type Status int

const (
	// StatusConverged means a best label was found and is cycle-free.
	StatusConverged Status = iota
	// StatusInfeasible means the DP's terminal bucket cell was empty on
	// some DSSR iteration; no admissible schedule exists for this input.
	StatusInfeasible
	// StatusDefect means the DSSR loop hit its iteration cap without
	// converging; surfacing it as a distinct status instead of panicking
	// keeps a caller's solve loop in control.
	StatusDefect
)

func (s Status) String() string {
	switch s {
	case StatusConverged:
		return "converged"
	case StatusInfeasible:
		return "infeasible"
	case StatusDefect:
		return "defect"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of a solve: exactly one of Best (when
// Status == StatusConverged) or an explanatory Status is meaningful.
type Outcome struct {
	Status Status
	Best   *model.Label
	// Iterations counts DSSR outer-loop restarts: how many times a
	// group-repetition cycle was found and forbidden before the DP ran
	// clean. A solve that converges on its first DP pass, with no cycle
	// ever found, reports 0.
	Iterations int
	// Reason explains a StatusDefect outcome; empty otherwise.
	Reason string
}

// Options configures a single solve.
type Options struct {
	// InitialSOC seeds the battery state at dawn. If zero, a value is
	// drawn from SampleInitialSOC using Rand (or a default source).
	InitialSOC float64
	Rand       *rand.Rand
	// MaxDSSRIterations caps the DSSR restart loop. Zero selects a
	// default of len(activities).
	MaxDSSRIterations int
}

// ErrNoActivities is returned when Solve is called with too few
// activities to contain both a dawn and a dusk pseudo-activity.
var ErrNoActivities = errors.New("solver: need at least a dawn and a dusk activity")

// Solve runs the label-setting DP, repeatedly applying the DSSR outer
// loop until the best end-of-horizon label is free of group-repetition
// cycles, infeasibility is detected, or the iteration cap is reached.
// activities is consumed by reference: ForbiddenGroups fields are reset
// to empty on entry and then mutated in place by DSSR across iterations.
func Solve(activities []*model.Activity, p config.Parameters, opts Options) (Outcome, error) {
	if len(activities) < 2 {
		return Outcome{}, ErrNoActivities
	}
	// A zero (or too-small) horizon can't even seat the seed label inside
	// the bucket's time range; that is an infeasible input, not a defect.
	if p.Horizon <= 0 || activities[0].MinDuration >= p.Horizon {
		return Outcome{Status: StatusInfeasible}, nil
	}
	for _, a := range activities {
		a.ForbiddenGroups = 0
	}

	initialSOC := opts.InitialSOC
	if initialSOC == 0 {
		r := opts.Rand
		if r == nil {
			r = rand.New(rand.NewSource(1))
		}
		initialSOC = SampleInitialSOC(r)
	}

	maxIter := opts.MaxDSSRIterations
	if maxIter == 0 {
		maxIter = len(activities)
		if maxIter < 1 {
			maxIter = 1
		}
	}

	iterations := 0
	for {
		bucket := Run(activities, initialSOC, p)
		best := bucket.Best()
		if best == nil {
			return Outcome{Status: StatusInfeasible, Iterations: iterations}, nil
		}
		if !DetectAndForbid(best) {
			return Outcome{Status: StatusConverged, Best: best, Iterations: iterations}, nil
		}
		iterations++
		if iterations >= maxIter {
			return Outcome{
				Status:     StatusDefect,
				Iterations: iterations,
				Reason:     "DSSR did not converge within the iteration cap",
			}, nil
		}
	}
}
