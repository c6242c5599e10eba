package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/association-manager/association-api/internal/api/handler/v1/response"
	"github.com/association-manager/association-api/internal/domain"
)

type StatsService interface {
	PeriodReport(ctx context.Context, start, end time.Time) (domain.PeriodReport, error)
	MemberReport(ctx context.Context, start, end time.Time) (domain.MemberReport, error)
	UnitReport(ctx context.Context, start, end time.Time) (domain.UnitReport, error)
	RegionActivityCounts(ctx context.Context, start, end time.Time) ([]domain.RegionActivityCount, error)
	ParticipationCounts(ctx context.Context, start, end time.Time) ([]domain.ActivityParticipation, error)
}

type StatisticsHandler struct {
	svc StatsService
}

func NewStatisticsHandler(svc StatsService) *StatisticsHandler {
	return &StatisticsHandler{
		svc: svc,
	}
}

// parsePeriod reads the start and end query parameters (YYYY-MM-DD). The end
// date is inclusive, so it is pushed to the last instant of its day.
func parsePeriod(ctx *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse("2006-01-02", ctx.Query("start"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid start date: %v", err)))
		return time.Time{}, time.Time{}, false
	}

	end, err := time.Parse("2006-01-02", ctx.Query("end"))
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid end date: %v", err)))
		return time.Time{}, time.Time{}, false
	}

	if end.Before(start) {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("end date %v is before start date %v", ctx.Query("end"), ctx.Query("start"))))
		return time.Time{}, time.Time{}, false
	}

	end = end.Add(24*time.Hour - time.Nanosecond)

	return start, end, true
}

// HandlePeriodReport godoc
// @Summary      Period report
// @Description  Activity balances and per-region rollups for the period.
// @Tags         statistics
// @Produce      json
// @Param        start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        end    query     string  true  "End date (YYYY-MM-DD), inclusive"
// @Success      200    {object}  domain.PeriodReport
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /statistics/period [get]
func (h *StatisticsHandler) HandlePeriodReport(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	report, err := h.svc.PeriodReport(ctx.Request.Context(), start, end)
	if err != nil {
		err = fmt.Errorf("HandlePeriodReport -> h.svc.PeriodReport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleMemberReport godoc
// @Summary      Member report
// @Description  Per-member and per-guest statements for the period.
// @Tags         statistics
// @Produce      json
// @Param        start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        end    query     string  true  "End date (YYYY-MM-DD), inclusive"
// @Success      200    {object}  domain.MemberReport
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /statistics/members [get]
func (h *StatisticsHandler) HandleMemberReport(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	report, err := h.svc.MemberReport(ctx.Request.Context(), start, end)
	if err != nil {
		err = fmt.Errorf("HandleMemberReport -> h.svc.MemberReport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleUnitReport godoc
// @Summary      Unit report
// @Description  Participation grouped by the members' current unit assignment.
// @Tags         statistics
// @Produce      json
// @Param        start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        end    query     string  true  "End date (YYYY-MM-DD), inclusive"
// @Success      200    {object}  domain.UnitReport
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /statistics/units [get]
func (h *StatisticsHandler) HandleUnitReport(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	report, err := h.svc.UnitReport(ctx.Request.Context(), start, end)
	if err != nil {
		err = fmt.Errorf("HandleUnitReport -> h.svc.UnitReport -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, report)
}

// HandleRegionCounts godoc
// @Summary      Activity counts per region
// @Tags         statistics
// @Produce      json
// @Param        start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        end    query     string  true  "End date (YYYY-MM-DD), inclusive"
// @Success      200    {array}   domain.RegionActivityCount
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /statistics/regions [get]
func (h *StatisticsHandler) HandleRegionCounts(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	counts, err := h.svc.RegionActivityCounts(ctx.Request.Context(), start, end)
	if err != nil {
		err = fmt.Errorf("HandleRegionCounts -> h.svc.RegionActivityCounts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, counts)
}

// HandleParticipationCounts godoc
// @Summary      Participant counts per activity
// @Tags         statistics
// @Produce      json
// @Param        start  query     string  true  "Start date (YYYY-MM-DD)"
// @Param        end    query     string  true  "End date (YYYY-MM-DD), inclusive"
// @Success      200    {array}   domain.ActivityParticipation
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /statistics/participation [get]
func (h *StatisticsHandler) HandleParticipationCounts(ctx *gin.Context) {
	start, end, ok := parsePeriod(ctx)
	if !ok {
		return
	}

	counts, err := h.svc.ParticipationCounts(ctx.Request.Context(), start, end)
	if err != nil {
		err = fmt.Errorf("HandleParticipationCounts -> h.svc.ParticipationCounts -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, counts)
}
