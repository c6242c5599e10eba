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

type AttendanceService interface {
	ListByActivity(ctx context.Context, activityID uint) ([]domain.Attendance, error)
	RegisterMember(ctx context.Context, activityID, memberID uint) (domain.Attendance, error)
	RegisterGuest(ctx context.Context, activityID, personID, accompanyingMemberID uint) (domain.Attendance, error)
	RegisterAnonymousGuests(ctx context.Context, activityID, accompanyingMemberID uint, n int) ([]domain.Attendance, error)
	DeleteAttendance(ctx context.Context, id uint) error
}

type AttendanceHandler struct {
	svc AttendanceService
}

func NewAttendanceHandler(svc AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		svc: svc,
	}
}

func (h *AttendanceHandler) renderRegistrationErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrActivityNotFound):
		response.RenderErr(ctx, response.ErrNotFound("activity", "reference", "see request"))
	case errors.Is(err, service.ErrMemberNotFound):
		response.RenderErr(ctx, response.ErrNotFound("member", "reference", "see request"))
	case errors.Is(err, service.ErrPersonNotFound):
		response.RenderErr(ctx, response.ErrNotFound("person", "reference", "see request"))
	case errors.Is(err, service.ErrAlreadyAttending):
		response.RenderErr(ctx, response.ErrConflict(err))
	case errors.Is(err, service.ErrMemberNotAttending):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}

// HandleListByActivity godoc
// @Summary      List attendances of an activity
// @Tags         attendances
// @Produce      json
// @Param        activityID  query     int  true  "Activity ID"
// @Success      200         {array}   domain.Attendance
// @Failure      400         {object}  response.Err
// @Failure      500         {object}  response.Err
// @Router       /attendances [get]
func (h *AttendanceHandler) HandleListByActivity(ctx *gin.Context) {
	activityID, err := strconv.ParseUint(ctx.Query("activityID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid activity ID: %w", err)))
		return
	}

	attendances, err := h.svc.ListByActivity(ctx.Request.Context(), uint(activityID))
	if err != nil {
		err = fmt.Errorf("HandleListByActivity -> h.svc.ListByActivity -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, attendances)
}

// HandleRegisterMember godoc
// @Summary      Register a member's attendance
// @Tags         attendances
// @Accept       json
// @Produce      json
// @Param        input  body      request.RegisterMemberAttendanceRequest  true  "Attendance"
// @Success      201    {object}  domain.Attendance
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /attendances/member [post]
func (h *AttendanceHandler) HandleRegisterMember(ctx *gin.Context) {
	var input request.RegisterMemberAttendanceRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	attendance, err := h.svc.RegisterMember(ctx.Request.Context(), input.ActivityID, input.MemberID)
	if err != nil {
		h.renderRegistrationErr(ctx, fmt.Errorf("HandleRegisterMember -> h.svc.RegisterMember -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, attendance)
}

// HandleRegisterGuest godoc
// @Summary      Register a guest's attendance
// @Description  The guest must be accompanied by a member who attends the activity.
// @Tags         attendances
// @Accept       json
// @Produce      json
// @Param        input  body      request.RegisterGuestAttendanceRequest  true  "Attendance"
// @Success      201    {object}  domain.Attendance
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /attendances/guest [post]
func (h *AttendanceHandler) HandleRegisterGuest(ctx *gin.Context) {
	var input request.RegisterGuestAttendanceRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	attendance, err := h.svc.RegisterGuest(ctx.Request.Context(), input.ActivityID, input.PersonID, input.AccompanyingMemberID)
	if err != nil {
		h.renderRegistrationErr(ctx, fmt.Errorf("HandleRegisterGuest -> h.svc.RegisterGuest -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, attendance)
}

// HandleRegisterAnonymousGuests godoc
// @Summary      Register anonymous guests
// @Description  Creates placeholder persons and registers them all as guests of the member.
// @Tags         attendances
// @Accept       json
// @Produce      json
// @Param        input  body      request.RegisterAnonymousGuestsRequest  true  "Batch"
// @Success      201    {array}   domain.Attendance
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /attendances/guests/anonymous [post]
func (h *AttendanceHandler) HandleRegisterAnonymousGuests(ctx *gin.Context) {
	var input request.RegisterAnonymousGuestsRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	attendances, err := h.svc.RegisterAnonymousGuests(ctx.Request.Context(), input.ActivityID, input.AccompanyingMemberID, input.Count)
	if err != nil {
		h.renderRegistrationErr(ctx, fmt.Errorf("HandleRegisterAnonymousGuests -> h.svc.RegisterAnonymousGuests -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, attendances)
}

// HandleDeleteAttendance godoc
// @Summary      Delete an attendance
// @Tags         attendances
// @Produce      json
// @Param        attendanceID  path  int  true  "Attendance ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /attendances/{attendanceID} [delete]
func (h *AttendanceHandler) HandleDeleteAttendance(ctx *gin.Context) {
	attendanceID, err := strconv.ParseUint(ctx.Param("attendanceID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid attendance ID: %w", err)))
		return
	}

	if err := h.svc.DeleteAttendance(ctx.Request.Context(), uint(attendanceID)); err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("attendance", "ID", attendanceID))
			return
		}

		err = fmt.Errorf("HandleDeleteAttendance -> h.svc.DeleteAttendance -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
