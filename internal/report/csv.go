package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/evscheduler/daily-schedule/internal/model"
)

// WriteScheduleCSV renders sched as a CSV file at path, one row per
// activity visited.
func WriteScheduleCSV(path string, sched model.Schedule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"activity_id",
		"group",
		"start_time",
		"end_time",
		"duration",
		"action",
		"charge_duration",
		"charge_cost",
		"soc_start",
		"soc_end",
		"utility",
		"cum_utility",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range sched.Rows {
		row := []string{
			strconv.Itoa(r.Index),
			strconv.Itoa(r.ActivityID),
			r.Group.String(),
			strconv.Itoa(r.StartTime),
			strconv.Itoa(r.EndTime),
			strconv.Itoa(r.Duration),
			string(r.Action),
			strconv.Itoa(r.ChargeDuration),
			fmtFloat(r.ChargeCost),
			fmtFloat(r.SOCStart),
			fmtFloat(r.SOCEnd),
			fmtFloat(r.Utility),
			fmtFloat(r.CumUtility),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
