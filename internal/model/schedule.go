package model

// ChargeAction is a human-friendly label for what the battery did during
// an activity. Keep these values stable; they are intended for CSV/JSON
// output in the report and httpapi collaborator packages.
type ChargeAction string

const (
	ChargeActionNone    ChargeAction = "NOT_CHARGING"
	ChargeActionCharging ChargeAction = "CHARGING"
)

func ChargeActionFromLabel(l *Label) ChargeAction {
	if l.Act != nil && l.Act.IsCharging && l.ChargeDuration > 0 {
		return ChargeActionCharging
	}
	return ChargeActionNone
}

// ScheduleRow is one flattened row of the final schedule: one row per
// activity visited (not per time interval), the primary artifact for
// "what did the driver end up doing".
type ScheduleRow struct {
	Index int

	ActivityID int
	Group      Group

	StartTime int
	EndTime   int
	Duration  int

	Action ChargeAction

	ChargeDuration int
	ChargeCost     float64

	SOCStart float64
	SOCEnd   float64

	Utility    float64
	CumUtility float64
}

// Schedule is the flattened, rendering-friendly view of a converged label
// chain (see report.Flatten).
type Schedule struct {
	Rows        []ScheduleRow
	TotalUtility float64
	FinalSOC     float64
}
