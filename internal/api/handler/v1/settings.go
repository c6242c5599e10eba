package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/association-manager/association-api/internal/api/handler/v1/request"
	"github.com/association-manager/association-api/internal/api/handler/v1/response"
	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/service"
)

type SettingsService interface {
	GetBounds(ctx context.Context) (domain.CotisationBounds, error)
	ConfigureBounds(ctx context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error)
	UpdateBounds(ctx context.Context, bounds domain.CotisationBounds) (domain.CotisationBounds, error)
	CheckCotisation(ctx context.Context, amount float64) error
}

type SettingsHandler struct {
	svc SettingsService
}

func NewSettingsHandler(svc SettingsService) *SettingsHandler {
	return &SettingsHandler{
		svc: svc,
	}
}

// HandleGetBounds godoc
// @Summary      Get the cotisation bounds
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.CotisationBounds
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /settings [get]
func (h *SettingsHandler) HandleGetBounds(ctx *gin.Context) {
	bounds, err := h.svc.GetBounds(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrBoundsNotConfigured) {
			response.RenderErr(ctx, response.ErrNotFound("settings", "bounds", "cotisation"))
			return
		}

		err = fmt.Errorf("HandleGetBounds -> h.svc.GetBounds -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, bounds)
}

// HandleConfigureBounds godoc
// @Summary      Configure the cotisation bounds
// @Description  Creates the singleton bounds row. Fails if bounds already exist.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        input  body      request.ConfigureBoundsRequest  true  "Bounds"
// @Success      201    {object}  domain.CotisationBounds
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /settings [post]
func (h *SettingsHandler) HandleConfigureBounds(ctx *gin.Context) {
	var input request.ConfigureBoundsRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.ConfigureBounds(ctx.Request.Context(), domain.CotisationBounds{
		Lower: input.Lower,
		Upper: input.Upper,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBounds):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrBoundsAlreadyConfigured):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleConfigureBounds -> h.svc.ConfigureBounds -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateBounds godoc
// @Summary      Update the cotisation bounds
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        id     path      int                             true  "Bounds ID"
// @Param        input  body      request.ConfigureBoundsRequest  true  "Bounds"
// @Success      200    {object}  domain.CotisationBounds
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /settings/{id} [put]
func (h *SettingsHandler) HandleUpdateBounds(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid bounds ID: %w", err)))
		return
	}

	var input request.ConfigureBoundsRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateBounds(ctx.Request.Context(), domain.CotisationBounds{
		ID:    uint(id),
		Lower: input.Lower,
		Upper: input.Upper,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBounds):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrBoundsNotConfigured):
			response.RenderErr(ctx, response.ErrNotFound("settings", "ID", id))
		default:
			err = fmt.Errorf("HandleUpdateBounds -> h.svc.UpdateBounds -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleCheckCotisation godoc
// @Summary      Check a cotisation amount against the bounds
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        input  body      request.CheckCotisationRequest  true  "Amount"
// @Success      200    {object}  map[string]bool
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /settings/check [post]
func (h *SettingsHandler) HandleCheckCotisation(ctx *gin.Context) {
	var input request.CheckCotisationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	err := h.svc.CheckCotisation(ctx.Request.Context(), input.Amount)
	if err != nil {
		var oob *domain.OutOfBoundsError
		switch {
		case errors.Is(err, domain.ErrNonPositiveAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.As(err, &oob):
			response.RenderErr(ctx, response.ErrBadRequestWithDetails(err, oob))
		default:
			err = fmt.Errorf("HandleCheckCotisation -> h.svc.CheckCotisation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"valid": true})
}
