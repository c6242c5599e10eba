package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/association-manager/association-api/internal/api/handler/v1/request"
	"github.com/association-manager/association-api/internal/api/handler/v1/response"
	"github.com/association-manager/association-api/internal/domain"
	"github.com/association-manager/association-api/internal/service"
)

type ActivityService interface {
	ListActivities(ctx context.Context) ([]domain.Activity, error)
	GetActivity(ctx context.Context, id uint) (domain.Activity, error)
	CreateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	UpdateActivity(ctx context.Context, activity domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, id uint) error
	ListParticipants(ctx context.Context, activityID uint) ([]domain.Participant, error)
	ListPayments(ctx context.Context, activityID uint) ([]domain.Payment, error)
	GetBalance(ctx context.Context, activityID uint) (domain.ActivityBalance, error)
}

type ActivityHandler struct {
	svc ActivityService
}

func NewActivityHandler(svc ActivityService) *ActivityHandler {
	return &ActivityHandler{
		svc: svc,
	}
}

func (h *ActivityHandler) renderActivityValidationErr(ctx *gin.Context, err error) bool {
	var oob *domain.OutOfBoundsError
	switch {
	case errors.Is(err, domain.ErrPastDate),
		errors.Is(err, domain.ErrPriorityOutOfRange),
		errors.Is(err, domain.ErrNonPositiveAmount):
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return true
	case errors.As(err, &oob):
		response.RenderErr(ctx, response.ErrBadRequestWithDetails(err, oob))
		return true
	}

	return false
}

// HandleListActivities godoc
// @Summary      List activities
// @Tags         activities
// @Produce      json
// @Success      200  {array}   domain.Activity
// @Failure      500  {object}  response.Err
// @Router       /activities [get]
func (h *ActivityHandler) HandleListActivities(ctx *gin.Context) {
	activities, err := h.svc.ListActivities(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListActivities -> h.svc.ListActivities -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activities)
}

// HandleGetActivity godoc
// @Summary      Get an activity
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200         {object}  domain.Activity
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /activities/{activityID} [get]
func (h *ActivityHandler) HandleGetActivity(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	activity, err := h.svc.GetActivity(ctx.Request.Context(), uint(activityID))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("HandleGetActivity -> h.svc.GetActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, activity)
}

// HandleCreateActivity godoc
// @Summary      Create an activity
// @Description  The date must not be in the past and the cotisation must fall within the configured bounds.
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateActivityRequest  true  "Activity details"
// @Success      201    {object}  domain.Activity
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /activities [post]
func (h *ActivityHandler) HandleCreateActivity(ctx *gin.Context) {
	var input request.CreateActivityRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	parsedDate, err := time.Parse("02/01/2006", input.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	created, err := h.svc.CreateActivity(ctx.Request.Context(), domain.Activity{
		Date:        parsedDate,
		Description: input.Description,
		Priority:    input.Priority,
		Region:      input.Region,
		Cotisation:  input.Cotisation,
	})
	if err != nil {
		if h.renderActivityValidationErr(ctx, err) {
			return
		}

		err = fmt.Errorf("HandleCreateActivity -> h.svc.CreateActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateActivity godoc
// @Summary      Update an activity
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activityID  path      int                            true  "Activity ID"
// @Param        input       body      request.UpdateActivityRequest  true  "Activity details"
// @Success      200         {object}  domain.Activity
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /activities/{activityID} [put]
func (h *ActivityHandler) HandleUpdateActivity(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	var input request.UpdateActivityRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	parsedDate, err := time.Parse("02/01/2006", input.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date format: %v", err)))
		return
	}

	updated, err := h.svc.UpdateActivity(ctx.Request.Context(), domain.Activity{
		ID:          uint(activityID),
		Date:        parsedDate,
		Description: input.Description,
		Priority:    input.Priority,
		Region:      input.Region,
		Cotisation:  input.Cotisation,
	})
	if err != nil {
		if h.renderActivityValidationErr(ctx, err) {
			return
		}
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("HandleUpdateActivity -> h.svc.UpdateActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteActivity godoc
// @Summary      Delete an activity
// @Tags         activities
// @Produce      json
// @Param        activityID  path  int  true  "Activity ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /activities/{activityID} [delete]
func (h *ActivityHandler) HandleDeleteActivity(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	if err := h.svc.DeleteActivity(ctx.Request.Context(), uint(activityID)); err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("HandleDeleteActivity -> h.svc.DeleteActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListParticipants godoc
// @Summary      List an activity's participants
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200         {array}   domain.Participant
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /activities/{activityID}/participants [get]
func (h *ActivityHandler) HandleListParticipants(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	participants, err := h.svc.ListParticipants(ctx.Request.Context(), uint(activityID))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("HandleListParticipants -> h.svc.ListParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}

// HandleListActivityPayments godoc
// @Summary      List an activity's payments
// @Tags         activities,payments
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200         {array}   domain.Payment
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /activities/{activityID}/payments [get]
func (h *ActivityHandler) HandleListActivityPayments(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	payments, err := h.svc.ListPayments(ctx.Request.Context(), uint(activityID))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("HandleListActivityPayments -> h.svc.ListPayments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// HandleGetBalance godoc
// @Summary      Get an activity's balance
// @Description  Headcount, applied discount tier, net due and remaining amount.
// @Tags         activities
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200         {object}  domain.ActivityBalance
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /activities/{activityID}/balance [get]
func (h *ActivityHandler) HandleGetBalance(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	balance, err := h.svc.GetBalance(ctx.Request.Context(), uint(activityID))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("HandleGetBalance -> h.svc.GetBalance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, balance)
}
