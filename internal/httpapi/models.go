package httpapi

// SolveRequest is the request body for POST /api/v1/solve.
type SolveRequest struct {
	Activities []ActivityDTO `json:"activities" binding:"required"`
	InitialSOC float64       `json:"initial_soc,omitempty"`
}

// ActivityDTO mirrors data.ActivityJSON; duplicated here (rather than
// reused) so the wire contract can evolve independently of the file
// ingestion format.
type ActivityDTO struct {
	ID               int     `json:"id"`
	X                float64 `json:"x"`
	Y                float64 `json:"y"`
	Group            string  `json:"group" binding:"required"`
	EarliestStart    int     `json:"earliest_start"`
	LatestStart      int     `json:"latest_start"`
	MinDuration      int     `json:"min_duration"`
	MaxDuration      int     `json:"max_duration"`
	DesStartTime     int     `json:"des_start_time"`
	DesDuration      int     `json:"des_duration"`
	ChargeMode       string  `json:"charge_mode,omitempty"`
	IsCharging       bool    `json:"is_charging,omitempty"`
	IsServiceStation bool    `json:"is_service_station,omitempty"`
}

// SolveResponse is the response body for POST /api/v1/solve.
type SolveResponse struct {
	Status     string       `json:"status"`
	Iterations int          `json:"iterations"`
	Reason     string       `json:"reason,omitempty"`
	Schedule   *ScheduleDTO `json:"schedule,omitempty"`
}

// ScheduleDTO is the flattened schedule returned on a converged solve.
type ScheduleDTO struct {
	TotalUtility float64          `json:"total_utility"`
	FinalSOC     float64          `json:"final_soc"`
	Rows         []ScheduleRowDTO `json:"rows"`
}

// ScheduleRowDTO is one row of ScheduleDTO.Rows.
type ScheduleRowDTO struct {
	Index          int     `json:"index"`
	ActivityID     int     `json:"activity_id"`
	Group          string  `json:"group"`
	StartTime      int     `json:"start_time"`
	EndTime        int     `json:"end_time"`
	Duration       int     `json:"duration"`
	Action         string  `json:"action"`
	ChargeDuration int     `json:"charge_duration"`
	ChargeCost     float64 `json:"charge_cost"`
	SOCStart       float64 `json:"soc_start"`
	SOCEnd         float64 `json:"soc_end"`
	Utility        float64 `json:"utility"`
	CumUtility     float64 `json:"cum_utility"`
}

// ErrorResponse is the JSON error envelope every handler uses on failure.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code plus a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PresetInfo describes one built-in parameter preset returned by
// GET /api/v1/presets.
type PresetInfo struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}
