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

type PaymentService interface {
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	GetPayment(ctx context.Context, id uint) (domain.Payment, error)
	ListByActivity(ctx context.Context, activityID uint) ([]domain.Payment, error)
	ListByMember(ctx context.Context, memberID uint) ([]domain.Payment, error)
	ListByPerson(ctx context.Context, personID uint) ([]domain.Payment, error)
	TotalForActivity(ctx context.Context, activityID uint) (float64, error)
	RecordMemberPayment(ctx context.Context, activityID, memberID uint, amount float64, date time.Time) (domain.Payment, error)
	RecordGuestPayment(ctx context.Context, activityID, personID uint, amount float64, date time.Time) (domain.Payment, error)
	UpdatePayment(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	DeletePayment(ctx context.Context, id uint) error
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

func (h *PaymentHandler) renderRecordErr(ctx *gin.Context, err error) {
	var exceeded *domain.BalanceExceededError
	switch {
	case errors.Is(err, domain.ErrNonPositiveAmount):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.As(err, &exceeded):
		response.RenderErr(ctx, response.ErrBadRequestWithDetails(err, exceeded))
	case errors.Is(err, service.ErrActivityNotFound):
		response.RenderErr(ctx, response.ErrNotFound("activity", "reference", "see request"))
	case errors.Is(err, service.ErrAttendanceNotFound):
		response.RenderErr(ctx, response.ErrNotFound("attendance", "reference", "see request"))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleListPayments godoc
// @Summary      List payments
// @Description  Optionally filtered by activityID, memberID or personID query parameters.
// @Tags         payments
// @Produce      json
// @Success      200  {array}   domain.Payment
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments [get]
func (h *PaymentHandler) HandleListPayments(ctx *gin.Context) {
	list := func() ([]domain.Payment, error) {
		if raw := ctx.Query("activityID"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, err
			}
			return h.svc.ListByActivity(ctx.Request.Context(), uint(id))
		}
		if raw := ctx.Query("memberID"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, err
			}
			return h.svc.ListByMember(ctx.Request.Context(), uint(id))
		}
		if raw := ctx.Query("personID"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return nil, err
			}
			return h.svc.ListByPerson(ctx.Request.Context(), uint(id))
		}
		return h.svc.ListPayments(ctx.Request.Context())
	}

	payments, err := list()
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid ID filter: %w", err)))
			return
		}

		err = fmt.Errorf("HandleListPayments -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// HandleGetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        paymentID  path      int  true  "Payment ID"
// @Success      200        {object}  domain.Payment
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /payments/{paymentID} [get]
func (h *PaymentHandler) HandleGetPayment(ctx *gin.Context) {
	paymentID, err := strconv.ParseUint(ctx.Param("paymentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid payment ID: %w", err)))
		return
	}

	payment, err := h.svc.GetPayment(ctx.Request.Context(), uint(paymentID))
	if err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", paymentID))
			return
		}

		err = fmt.Errorf("HandleGetPayment -> h.svc.GetPayment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, payment)
}

// HandleGetActivityTotal godoc
// @Summary      Total paid for an activity
// @Tags         payments
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200         {object}  map[string]float64
// @Failure      400         {object}  response.Err
// @Failure      404         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /activities/{activityID}/payments/total [get]
func (h *PaymentHandler) HandleGetActivityTotal(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Param("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	total, err := h.svc.TotalForActivity(ctx.Request.Context(), uint(activityID))
	if err != nil {
		if errors.Is(err, service.ErrActivityNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("activity", "ID", activityID))
			return
		}

		err = fmt.Errorf("HandleGetActivityTotal -> h.svc.TotalForActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"total": total})
}

// HandleRecordMemberPayment godoc
// @Summary      Record a member payment
// @Description  Rejected if it would push the activity's paid total past the discounted amount due.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        input  body      request.RecordMemberPaymentRequest  true  "Payment"
// @Success      201    {object}  domain.Payment
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /payments/member [post]
func (h *PaymentHandler) HandleRecordMemberPayment(ctx *gin.Context) {
	var input request.RecordMemberPaymentRequest
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

	payment, err := h.svc.RecordMemberPayment(ctx.Request.Context(), input.ActivityID, input.MemberID, input.Amount, parsedDate)
	if err != nil {
		h.renderRecordErr(ctx, fmt.Errorf("HandleRecordMemberPayment -> h.svc.RecordMemberPayment -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleRecordGuestPayment godoc
// @Summary      Record a guest payment
// @Description  Recorded against the guest's attendance row; settles the group's activity balance.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        input  body      request.RecordGuestPaymentRequest  true  "Payment"
// @Success      201    {object}  domain.Payment
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /payments/guest [post]
func (h *PaymentHandler) HandleRecordGuestPayment(ctx *gin.Context) {
	var input request.RecordGuestPaymentRequest
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

	payment, err := h.svc.RecordGuestPayment(ctx.Request.Context(), input.ActivityID, input.PersonID, input.Amount, parsedDate)
	if err != nil {
		h.renderRecordErr(ctx, fmt.Errorf("HandleRecordGuestPayment -> h.svc.RecordGuestPayment -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleUpdatePayment godoc
// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        paymentID  path      int                           true  "Payment ID"
// @Param        input      body      request.UpdatePaymentRequest  true  "Payment"
// @Success      200        {object}  domain.Payment
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /payments/{paymentID} [put]
func (h *PaymentHandler) HandleUpdatePayment(ctx *gin.Context) {
	paymentID, err := strconv.ParseUint(ctx.Param("paymentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid payment ID: %w", err)))
		return
	}

	var input request.UpdatePaymentRequest
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

	updated, err := h.svc.UpdatePayment(ctx.Request.Context(), domain.Payment{
		ID:     uint(paymentID),
		Amount: input.Amount,
		Date:   parsedDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNonPositiveAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrPaymentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", paymentID))
		default:
			err = fmt.Errorf("HandleUpdatePayment -> h.svc.UpdatePayment -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeletePayment godoc
// @Summary      Delete a payment
// @Tags         payments
// @Produce      json
// @Param        paymentID  path  int  true  "Payment ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/{paymentID} [delete]
func (h *PaymentHandler) HandleDeletePayment(ctx *gin.Context) {
	paymentID, err := strconv.ParseUint(ctx.Param("paymentID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid payment ID: %w", err)))
		return
	}

	if err := h.svc.DeletePayment(ctx.Request.Context(), uint(paymentID)); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", paymentID))
			return
		}

		err = fmt.Errorf("HandleDeletePayment -> h.svc.DeletePayment -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
