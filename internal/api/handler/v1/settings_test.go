package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/association-manager/association-api/internal/api/handler/v1"
	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/service"
)

type stubSettingsService struct {
	bounds *domain.CotisationBounds
}

func (s *stubSettingsService) GetBounds(_ context.Context) (domain.CotisationBounds, error) {
	if s.bounds == nil {
		return domain.CotisationBounds{}, service.ErrBoundsNotConfigured
	}
	return *s.bounds, nil
}

func (s *stubSettingsService) ConfigureBounds(_ context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error) {
	if err := bounds.Validate(); err != nil {
		return domain.CotisationBounds{}, err
	}
	if s.bounds != nil {
		return domain.CotisationBounds{}, service.ErrBoundsAlreadyConfigured
	}
	bounds.ID = 1
	s.bounds = &bounds
	return bounds, nil
}

func (s *stubSettingsService) UpdateBounds(_ context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error) {
	if err := bounds.Validate(); err != nil {
		return domain.CotisationBounds{}, err
	}
	if s.bounds == nil {
		return domain.CotisationBounds{}, service.ErrBoundsNotConfigured
	}
	s.bounds = &bounds
	return bounds, nil
}

func (s *stubSettingsService) CheckCotisation(_ context.Context, amount float64) error {
	var bounds *domain.CotisationBounds
	if s.bounds != nil {
		bounds = s.bounds
	}
	return domain.ValidateCotisation(amount, bounds)
}

func newSettingsRouter(svc v1.SettingsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := v1.NewSettingsHandler(svc)
	router.GET("/api/v1/settings", handler.HandleGetBounds)
	router.POST("/api/v1/settings", handler.HandleConfigureBounds)
	router.PUT("/api/v1/settings/:id", handler.HandleUpdateBounds)
	router.POST("/api/v1/settings/check", handler.HandleCheckCotisation)

	return router
}

func TestHandleGetBounds(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		router := newSettingsRouter(&stubSettingsService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("configured", func(t *testing.T) {
		router := newSettingsRouter(&stubSettingsService{
			bounds: &domain.CotisationBounds{ID: 1, Lower: 50, Upper: 500},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var bounds domain.CotisationBounds
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bounds))
		assert.Equal(t, 50.0, bounds.Lower)
		assert.Equal(t, 500.0, bounds.Upper)
	})
}

func TestHandleConfigureBounds(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router := newSettingsRouter(&stubSettingsService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/settings", strings.NewReader(`{"lower": 50, "upper": 500}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var bounds domain.CotisationBounds
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bounds))
		assert.Equal(t, uint(1), bounds.ID)
	})

	t.Run("already configured", func(t *testing.T) {
		router := newSettingsRouter(&stubSettingsService{
			bounds: &domain.CotisationBounds{ID: 1, Lower: 50, Upper: 500},
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/settings", strings.NewReader(`{"lower": 10, "upper": 100}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("inverted bounds", func(t *testing.T) {
		router := newSettingsRouter(&stubSettingsService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/settings", strings.NewReader(`{"lower": 500, "upper": 50}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing upper bound", func(t *testing.T) {
		router := newSettingsRouter(&stubSettingsService{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/settings", strings.NewReader(`{"lower": 50}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleCheckCotisation(t *testing.T) {
	router := newSettingsRouter(&stubSettingsService{
		bounds: &domain.CotisationBounds{ID: 1, Lower: 50, Upper: 500},
	})

	t.Run("amount within bounds", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/settings/check", strings.NewReader(`{"amount": 150}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]bool
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body["valid"])
	})

	t.Run("amount out of bounds carries the range", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/settings/check", strings.NewReader(`{"amount": 1000}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			ErrorType string `json:"error_type"`
			Details   struct {
				Amount float64 `json:"Amount"`
				Lower  float64 `json:"Lower"`
				Upper  float64 `json:"Upper"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "bad_request", body.ErrorType)
		assert.Equal(t, 1000.0, body.Details.Amount)
		assert.Equal(t, 500.0, body.Details.Upper)
	})
}
