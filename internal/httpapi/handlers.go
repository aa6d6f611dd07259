package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/evscheduler/daily-schedule/internal/config"
	"github.com/evscheduler/daily-schedule/internal/data"
	"github.com/evscheduler/daily-schedule/internal/model"
	"github.com/evscheduler/daily-schedule/internal/report"
	"github.com/evscheduler/daily-schedule/internal/solver"
)

// Handler bundles the parameter set every route needs; it holds no
// per-request state.
type Handler struct {
	Params config.Parameters
}

// NewHandler builds a Handler with the given default parameters.
func NewHandler(p config.Parameters) *Handler {
	return &Handler{Params: p}
}

// Register wires every route onto router under /api/v1, plus /health.
func (h *Handler) Register(router gin.IRouter) {
	router.GET("/health", h.health)
	api := router.Group("/api/v1")
	{
		api.POST("/solve", h.solve)
		api.GET("/presets", h.presets)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) presets(c *gin.Context) {
	c.JSON(http.StatusOK, []PresetInfo{
		{ID: "default", Description: "baseline attraction/timing/charging coefficients"},
	})
}

func (h *Handler) solve(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	set := toActivitySet(req)
	activities, err := set.ToActivities()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "INVALID_ACTIVITIES", Message: err.Error()},
		})
		return
	}

	outcome, err := solver.Solve(activities, h.Params, solver.Options{InitialSOC: req.InitialSOC})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: ErrorDetail{Code: "SOLVE_ERROR", Message: err.Error()},
		})
		return
	}

	resp := SolveResponse{Status: outcome.Status.String(), Iterations: outcome.Iterations, Reason: outcome.Reason}
	if outcome.Status == solver.StatusConverged {
		sched := report.Flatten(outcome.Best)
		resp.Schedule = toScheduleDTO(sched)
	}
	c.JSON(http.StatusOK, resp)
}

func toActivitySet(req SolveRequest) data.ActivitySet {
	set := data.ActivitySet{Activities: make([]data.ActivityJSON, len(req.Activities))}
	for i, a := range req.Activities {
		set.Activities[i] = data.ActivityJSON{
			ID:               a.ID,
			X:                a.X,
			Y:                a.Y,
			Group:            a.Group,
			EarliestStart:    a.EarliestStart,
			LatestStart:      a.LatestStart,
			MinDuration:      a.MinDuration,
			MaxDuration:      a.MaxDuration,
			DesStartTime:     a.DesStartTime,
			DesDuration:      a.DesDuration,
			ChargeMode:       a.ChargeMode,
			IsCharging:       a.IsCharging,
			IsServiceStation: a.IsServiceStation,
		}
	}
	return set
}

func toScheduleDTO(sched model.Schedule) *ScheduleDTO {
	rows := make([]ScheduleRowDTO, len(sched.Rows))
	for i, r := range sched.Rows {
		rows[i] = ScheduleRowDTO{
			Index:          r.Index,
			ActivityID:     r.ActivityID,
			Group:          r.Group.String(),
			StartTime:      r.StartTime,
			EndTime:        r.EndTime,
			Duration:       r.Duration,
			Action:         string(r.Action),
			ChargeDuration: r.ChargeDuration,
			ChargeCost:     r.ChargeCost,
			SOCStart:       r.SOCStart,
			SOCEnd:         r.SOCEnd,
			Utility:        r.Utility,
			CumUtility:     r.CumUtility,
		}
	}
	return &ScheduleDTO{
		TotalUtility: sched.TotalUtility,
		FinalSOC:     sched.FinalSOC,
		Rows:         rows,
	}
}
