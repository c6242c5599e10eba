package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/association-manager/association-api/internal/api/handler/v1"
	"github.com/association-manager/association-api/internal/domain"
)

type stubStatsService struct {
	start, end time.Time
	report     domain.PeriodReport
	counts     []domain.RegionActivityCount
	err        error
}

func (s *stubStatsService) PeriodReport(_ context.Context, start, end time.Time) (domain.PeriodReport, error) {
	s.start, s.end = start, end
	return s.report, s.err
}

func (s *stubStatsService) MemberReport(_ context.Context, start, end time.Time) (domain.MemberReport, error) {
	s.start, s.end = start, end
	return domain.MemberReport{Start: start, End: end}, s.err
}

func (s *stubStatsService) UnitReport(_ context.Context, start, end time.Time) (domain.UnitReport, error) {
	s.start, s.end = start, end
	return domain.UnitReport{Start: start, End: end}, s.err
}

func (s *stubStatsService) RegionActivityCounts(_ context.Context, start, end time.Time) ([]domain.RegionActivityCount, error) {
	s.start, s.end = start, end
	return s.counts, s.err
}

func (s *stubStatsService) ParticipationCounts(_ context.Context, start, end time.Time) ([]domain.ActivityParticipation, error) {
	s.start, s.end = start, end
	return nil, s.err
}

func newStatisticsRouter(svc v1.StatsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := v1.NewStatisticsHandler(svc)
	router.GET("/api/v1/statistics/period", handler.HandlePeriodReport)
	router.GET("/api/v1/statistics/members", handler.HandleMemberReport)
	router.GET("/api/v1/statistics/units", handler.HandleUnitReport)
	router.GET("/api/v1/statistics/regions", handler.HandleRegionCounts)
	router.GET("/api/v1/statistics/participation", handler.HandleParticipationCounts)

	return router
}

func TestHandlePeriodReport(t *testing.T) {
	t.Run("valid period", func(t *testing.T) {
		svc := &stubStatsService{
			report: domain.PeriodReport{
				ActivityCount: 2,
				Regions:       []domain.RegionStatement{{Region: "Nord", NetDue: 2600}},
			},
		}
		router := newStatisticsRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics/period?start=2026-06-01&end=2026-06-30", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var report domain.PeriodReport
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		assert.Equal(t, 2, report.ActivityCount)
		require.Len(t, report.Regions, 1)
		assert.Equal(t, "Nord", report.Regions[0].Region)

		// The end date is inclusive: the service sees the last instant of
		// June 30th.
		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), svc.start)
		assert.Equal(t, time.Date(2026, 6, 30, 23, 59, 59, 999999999, time.UTC), svc.end)
	})

	t.Run("missing dates", func(t *testing.T) {
		router := newStatisticsRouter(&stubStatsService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics/period", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("end before start", func(t *testing.T) {
		router := newStatisticsRouter(&stubStatsService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics/period?start=2026-06-30&end=2026-06-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("service failures are masked", func(t *testing.T) {
		router := newStatisticsRouter(&stubStatsService{err: errors.New("pg down")})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics/period?start=2026-06-01&end=2026-06-30", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "internal server error", body["message"])
		assert.NotContains(t, w.Body.String(), "pg down")
	})
}

func TestHandleRegionCounts(t *testing.T) {
	svc := &stubStatsService{
		counts: []domain.RegionActivityCount{
			{Region: "Nord", ActivityCount: 3},
			{Region: "Sud", ActivityCount: 1},
		},
	}
	router := newStatisticsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics/regions?start=2026-01-01&end=2026-12-31", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var counts []domain.RegionActivityCount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	require.Len(t, counts, 2)
	assert.Equal(t, 3, counts[0].ActivityCount)
}

func TestHandleMemberReportDates(t *testing.T) {
	svc := &stubStatsService{}
	router := newStatisticsRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/statistics/members?start=2026-06-01&end=2026-06-01", nil)
	router.ServeHTTP(w, req)

	// A single-day period is valid: start at midnight, end pushed to the
	// last instant of the same day.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, svc.start.Year(), svc.end.Year())
	assert.True(t, svc.end.After(svc.start))
}
