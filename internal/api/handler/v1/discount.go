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

type DiscountService interface {
	ListTiers(ctx context.Context) ([]domain.DiscountTier, error)
	GetTier(ctx context.Context, id uint) (domain.DiscountTier, error)
	CreateTier(ctx context.Context, tier domain.DiscountTier) (domain.DiscountTier, error)
	UpdateTier(ctx context.Context, tier domain.DiscountTier) (domain.DiscountTier, error)
	DeleteTier(ctx context.Context, id uint) error
	PreviewAmount(ctx context.Context, gross float64, participantCount int) (domain.Quote, error)
}

type DiscountHandler struct {
	svc DiscountService
}

func NewDiscountHandler(svc DiscountService) *DiscountHandler {
	return &DiscountHandler{
		svc: svc,
	}
}

// HandleListTiers godoc
// @Summary      List discount tiers
// @Tags         discounts
// @Produce      json
// @Success      200  {array}   domain.DiscountTier
// @Failure      500  {object}  response.Err
// @Router       /discounts [get]
func (h *DiscountHandler) HandleListTiers(ctx *gin.Context) {
	tiers, err := h.svc.ListTiers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListTiers -> h.svc.ListTiers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tiers)
}

// HandleGetTier godoc
// @Summary      Get a discount tier
// @Tags         discounts
// @Produce      json
// @Param        tierID  path      int  true  "Tier ID"
// @Success      200     {object}  domain.DiscountTier
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /discounts/{tierID} [get]
func (h *DiscountHandler) HandleGetTier(ctx *gin.Context) {
	tierID, err := strconv.ParseUint(ctx.Param("tierID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tier ID: %w", err)))
		return
	}

	tier, err := h.svc.GetTier(ctx.Request.Context(), uint(tierID))
	if err != nil {
		if errors.Is(err, service.ErrTierNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("discount tier", "ID", tierID))
			return
		}

		err = fmt.Errorf("HandleGetTier -> h.svc.GetTier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, tier)
}

// HandleCreateTier godoc
// @Summary      Create a discount tier
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateTierRequest  true  "Tier"
// @Success      201    {object}  domain.DiscountTier
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /discounts [post]
func (h *DiscountHandler) HandleCreateTier(ctx *gin.Context) {
	var input request.CreateTierRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateTier(ctx.Request.Context(), domain.DiscountTier{
		MinParticipants: input.MinParticipants,
		Percentage:      input.Percentage,
		Description:     input.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrTierThresholdExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("HandleCreateTier -> h.svc.CreateTier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateTier godoc
// @Summary      Update a discount tier
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        tierID  path      int                        true  "Tier ID"
// @Param        input   body      request.UpdateTierRequest  true  "Tier"
// @Success      200     {object}  domain.DiscountTier
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /discounts/{tierID} [put]
func (h *DiscountHandler) HandleUpdateTier(ctx *gin.Context) {
	tierID, err := strconv.ParseUint(ctx.Param("tierID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tier ID: %w", err)))
		return
	}

	var input request.UpdateTierRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateTier(ctx.Request.Context(), domain.DiscountTier{
		ID:              uint(tierID),
		MinParticipants: input.MinParticipants,
		Percentage:      input.Percentage,
		Description:     input.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTierNotFound):
			response.RenderErr(ctx, response.ErrNotFound("discount tier", "ID", tierID))
		case errors.Is(err, service.ErrTierThresholdExists):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleUpdateTier -> h.svc.UpdateTier -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteTier godoc
// @Summary      Delete a discount tier
// @Tags         discounts
// @Produce      json
// @Param        tierID  path  int  true  "Tier ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /discounts/{tierID} [delete]
func (h *DiscountHandler) HandleDeleteTier(ctx *gin.Context) {
	tierID, err := strconv.ParseUint(ctx.Param("tierID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid tier ID: %w", err)))
		return
	}

	if err := h.svc.DeleteTier(ctx.Request.Context(), uint(tierID)); err != nil {
		if errors.Is(err, service.ErrTierNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("discount tier", "ID", tierID))
			return
		}

		err = fmt.Errorf("HandleDeleteTier -> h.svc.DeleteTier -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandlePreviewDiscount godoc
// @Summary      Preview the discounted amount for a group size
// @Tags         discounts
// @Accept       json
// @Produce      json
// @Param        input  body      request.PreviewDiscountRequest  true  "Amount and group size"
// @Success      200    {object}  domain.Quote
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /discounts/preview [post]
func (h *DiscountHandler) HandlePreviewDiscount(ctx *gin.Context) {
	var input request.PreviewDiscountRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	quote, err := h.svc.PreviewAmount(ctx.Request.Context(), input.Amount, input.ParticipantCount)
	if err != nil {
		if errors.Is(err, domain.ErrNonPositiveAmount) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandlePreviewDiscount -> h.svc.PreviewAmount -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, quote)
}
