package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/data"
	"github.com/evscheduler/daily-schedule/internal/model"
	"github.com/evscheduler/daily-schedule/internal/report"
	"github.com/evscheduler/daily-schedule/internal/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "solve":
		cmdSolve(os.Args[2:])
	case "validate":
		cmdValidate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli solve --activities activities.json --config config.yaml --out schedule.csv")
	fmt.Println("  cli validate --activities activities.json")
}

func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	activitiesPath := fs.String("activities", "", "Path to activity-set JSON")
	cfgPath := fs.String("config", "", "Path to YAML config (optional, defaults used otherwise)")
	outPath := fs.String("out", "results/schedule.csv", "Output CSV path")
	initialSOC := fs.Float64("initial-soc", 0, "Initial state of charge in [0,1] (0 = sample one)")
	_ = fs.Parse(args)

	if *activitiesPath == "" {
		fmt.Println("--activities is required")
		os.Exit(2)
	}

	activities := mustLoadActivities(*activitiesPath)
	params := mustLoadParams(*cfgPath)

	outcome, err := solver.Solve(activities, params, solver.Options{InitialSOC: *initialSOC})
	if err != nil {
		panic(err)
	}

	switch outcome.Status {
	case solver.StatusConverged:
		sched := report.Flatten(outcome.Best)
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := report.WriteScheduleCSV(*outPath, sched); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(sched.Rows), *outPath)
		fmt.Printf("Total utility=%.3f Final SOC=%.3f (DSSR iterations=%d)\n",
			sched.TotalUtility, sched.FinalSOC, outcome.Iterations)
	case solver.StatusInfeasible:
		fmt.Printf("infeasible: no admissible schedule exists for this input (iteration %d)\n", outcome.Iterations)
		os.Exit(1)
	case solver.StatusDefect:
		fmt.Printf("defect: %s (iterations=%d)\n", outcome.Reason, outcome.Iterations)
		os.Exit(1)
	}
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	activitiesPath := fs.String("activities", "", "Path to activity-set JSON")
	_ = fs.Parse(args)

	if *activitiesPath == "" {
		fmt.Println("--activities is required")
		os.Exit(2)
	}

	activities := mustLoadActivities(*activitiesPath)
	fmt.Printf("OK: %d activities loaded, dawn=%d dusk=%d\n",
		len(activities), activities[0].ID, activities[len(activities)-1].ID)
}

func mustLoadActivities(path string) []*model.Activity {
	set, err := data.LoadActivitySet(path)
	if err != nil {
		panic(err)
	}
	activities, err := set.ToActivities()
	if err != nil {
		panic(err)
	}
	return activities
}

func mustLoadParams(cfgPath string) config.Parameters {
	if cfgPath == "" {
		return config.Default()
	}
	p, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}
	return p
}
