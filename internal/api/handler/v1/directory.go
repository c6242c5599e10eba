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

type DirectoryService interface {
	ListUnits(ctx context.Context) ([]domain.ServiceUnit, error)
	GetUnit(ctx context.Context, id uint) (domain.ServiceUnit, error)
	CreateUnit(ctx context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error)
	UpdateUnit(ctx context.Context, unit domain.ServiceUnit) (domain.ServiceUnit, error)
	DeleteUnit(ctx context.Context, id uint) error
	ListPersons(ctx context.Context) ([]domain.Person, error)
	GetPerson(ctx context.Context, id uint) (domain.Person, error)
	CreatePerson(ctx context.Context, person domain.Person) (domain.Person, error)
	UpdatePerson(ctx context.Context, person domain.Person) (domain.Person, error)
	DeletePerson(ctx context.Context, id uint) error
	ListMembers(ctx context.Context) ([]domain.Member, error)
	GetMember(ctx context.Context, personID uint) (domain.Member, error)
	EnrollMember(ctx context.Context, personID uint) (domain.Member, error)
	DeleteMember(ctx context.Context, personID uint) error
}

type DirectoryHandler struct {
	svc DirectoryService
}

func NewDirectoryHandler(svc DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{
		svc: svc,
	}
}

// HandleListUnits godoc
// @Summary      List service units
// @Tags         units
// @Produce      json
// @Success      200  {array}   domain.ServiceUnit
// @Failure      500  {object}  response.Err
// @Router       /units [get]
func (h *DirectoryHandler) HandleListUnits(ctx *gin.Context) {
	units, err := h.svc.ListUnits(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListUnits -> h.svc.ListUnits -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, units)
}

// HandleGetUnit godoc
// @Summary      Get a service unit
// @Tags         units
// @Produce      json
// @Param        unitID  path      int  true  "Unit ID"
// @Success      200     {object}  domain.ServiceUnit
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /units/{unitID} [get]
func (h *DirectoryHandler) HandleGetUnit(ctx *gin.Context) {
	unitID, err := strconv.ParseUint(ctx.Param("unitID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid unit ID: %w", err)))
		return
	}

	unit, err := h.svc.GetUnit(ctx.Request.Context(), uint(unitID))
	if err != nil {
		if errors.Is(err, service.ErrUnitNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("service unit", "ID", unitID))
			return
		}

		err = fmt.Errorf("HandleGetUnit -> h.svc.GetUnit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, unit)
}

// HandleCreateUnit godoc
// @Summary      Create a service unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateUnitRequest  true  "Unit"
// @Success      201    {object}  domain.ServiceUnit
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /units [post]
func (h *DirectoryHandler) HandleCreateUnit(ctx *gin.Context) {
	var input request.CreateUnitRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateUnit(ctx.Request.Context(), domain.ServiceUnit{
		Description: input.Description,
		Region:      input.Region,
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateUnit -> h.svc.CreateUnit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdateUnit godoc
// @Summary      Update a service unit
// @Tags         units
// @Accept       json
// @Produce      json
// @Param        unitID  path      int                        true  "Unit ID"
// @Param        input   body      request.UpdateUnitRequest  true  "Unit"
// @Success      200     {object}  domain.ServiceUnit
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /units/{unitID} [put]
func (h *DirectoryHandler) HandleUpdateUnit(ctx *gin.Context) {
	unitID, err := strconv.ParseUint(ctx.Param("unitID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid unit ID: %w", err)))
		return
	}

	var input request.UpdateUnitRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	updated, err := h.svc.UpdateUnit(ctx.Request.Context(), domain.ServiceUnit{
		ID:          uint(unitID),
		Description: input.Description,
		Region:      input.Region,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnitNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("service unit", "ID", unitID))
			return
		}

		err = fmt.Errorf("HandleUpdateUnit -> h.svc.UpdateUnit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeleteUnit godoc
// @Summary      Delete a service unit
// @Tags         units
// @Produce      json
// @Param        unitID  path  int  true  "Unit ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /units/{unitID} [delete]
func (h *DirectoryHandler) HandleDeleteUnit(ctx *gin.Context) {
	unitID, err := strconv.ParseUint(ctx.Param("unitID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid unit ID: %w", err)))
		return
	}

	if err := h.svc.DeleteUnit(ctx.Request.Context(), uint(unitID)); err != nil {
		if errors.Is(err, service.ErrUnitNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("service unit", "ID", unitID))
			return
		}

		err = fmt.Errorf("HandleDeleteUnit -> h.svc.DeleteUnit -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListPersons godoc
// @Summary      List persons
// @Tags         persons
// @Produce      json
// @Success      200  {array}   domain.Person
// @Failure      500  {object}  response.Err
// @Router       /persons [get]
func (h *DirectoryHandler) HandleListPersons(ctx *gin.Context) {
	persons, err := h.svc.ListPersons(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListPersons -> h.svc.ListPersons -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, persons)
}

// HandleGetPerson godoc
// @Summary      Get a person
// @Tags         persons
// @Produce      json
// @Param        personID  path      int  true  "Person ID"
// @Success      200       {object}  domain.Person
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID} [get]
func (h *DirectoryHandler) HandleGetPerson(ctx *gin.Context) {
	personID, err := strconv.ParseUint(ctx.Param("personID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid person ID: %w", err)))
		return
	}

	person, err := h.svc.GetPerson(ctx.Request.Context(), uint(personID))
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("person", "ID", personID))
			return
		}

		err = fmt.Errorf("HandleGetPerson -> h.svc.GetPerson -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, person)
}

func (h *DirectoryHandler) personFromRequest(ctx *gin.Context, lastName, firstName, birthDate string, unitID *uint, address, phone, email string) (domain.Person, bool) {
	person := domain.Person{
		LastName:  lastName,
		FirstName: firstName,
		UnitID:    unitID,
		Address:   address,
		Phone:     phone,
		Email:     email,
	}

	if birthDate != "" {
		parsed, err := time.Parse("02/01/2006", birthDate)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid birth date format: %v", err)))
			return domain.Person{}, false
		}
		person.BirthDate = parsed
	}

	return person, true
}

// HandleCreatePerson godoc
// @Summary      Create a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePersonRequest  true  "Person"
// @Success      201    {object}  domain.Person
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /persons [post]
func (h *DirectoryHandler) HandleCreatePerson(ctx *gin.Context) {
	var input request.CreatePersonRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	person, ok := h.personFromRequest(ctx, input.LastName, input.FirstName, input.BirthDate, input.UnitID, input.Address, input.Phone, input.Email)
	if !ok {
		return
	}

	created, err := h.svc.CreatePerson(ctx.Request.Context(), person)
	if err != nil {
		if errors.Is(err, service.ErrUnitNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("service unit", "ID", input.UnitID))
			return
		}

		err = fmt.Errorf("HandleCreatePerson -> h.svc.CreatePerson -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleUpdatePerson godoc
// @Summary      Update a person
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        personID  path      int                          true  "Person ID"
// @Param        input     body      request.UpdatePersonRequest  true  "Person"
// @Success      200       {object}  domain.Person
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /persons/{personID} [put]
func (h *DirectoryHandler) HandleUpdatePerson(ctx *gin.Context) {
	personID, err := strconv.ParseUint(ctx.Param("personID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid person ID: %w", err)))
		return
	}

	var input request.UpdatePersonRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	person, ok := h.personFromRequest(ctx, input.LastName, input.FirstName, input.BirthDate, input.UnitID, input.Address, input.Phone, input.Email)
	if !ok {
		return
	}
	person.ID = uint(personID)

	updated, err := h.svc.UpdatePerson(ctx.Request.Context(), person)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPersonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("person", "ID", personID))
		case errors.Is(err, service.ErrUnitNotFound):
			response.RenderErr(ctx, response.ErrNotFound("service unit", "ID", input.UnitID))
		default:
			err = fmt.Errorf("HandleUpdatePerson -> h.svc.UpdatePerson -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDeletePerson godoc
// @Summary      Delete a person
// @Tags         persons
// @Produce      json
// @Param        personID  path  int  true  "Person ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /persons/{personID} [delete]
func (h *DirectoryHandler) HandleDeletePerson(ctx *gin.Context) {
	personID, err := strconv.ParseUint(ctx.Param("personID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid person ID: %w", err)))
		return
	}

	if err := h.svc.DeletePerson(ctx.Request.Context(), uint(personID)); err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("person", "ID", personID))
			return
		}

		err = fmt.Errorf("HandleDeletePerson -> h.svc.DeletePerson -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListMembers godoc
// @Summary      List members
// @Tags         members
// @Produce      json
// @Success      200  {array}   domain.Member
// @Failure      500  {object}  response.Err
// @Router       /members [get]
func (h *DirectoryHandler) HandleListMembers(ctx *gin.Context) {
	members, err := h.svc.ListMembers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListMembers -> h.svc.ListMembers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, members)
}

// HandleGetMember godoc
// @Summary      Get a member
// @Tags         members
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  domain.Member
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /members/{memberID} [get]
func (h *DirectoryHandler) HandleGetMember(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.Param("memberID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid member ID: %w", err)))
		return
	}

	member, err := h.svc.GetMember(ctx.Request.Context(), uint(memberID))
	if err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", memberID))
			return
		}

		err = fmt.Errorf("HandleGetMember -> h.svc.GetMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// HandleEnrollMember godoc
// @Summary      Enroll a person as a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        input  body      request.EnrollMemberRequest  true  "Person"
// @Success      201    {object}  domain.Member
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /members [post]
func (h *DirectoryHandler) HandleEnrollMember(ctx *gin.Context) {
	var input request.EnrollMemberRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	member, err := h.svc.EnrollMember(ctx.Request.Context(), input.PersonID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPersonNotFound):
			response.RenderErr(ctx, response.ErrNotFound("person", "ID", input.PersonID))
		case errors.Is(err, service.ErrAlreadyMember):
			response.RenderErr(ctx, response.ErrConflict(err))
		default:
			err = fmt.Errorf("HandleEnrollMember -> h.svc.EnrollMember -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, member)
}

// HandleDeleteMember godoc
// @Summary      Remove a membership
// @Description  Removes the membership only; the person record stays.
// @Tags         members
// @Produce      json
// @Param        memberID  path  int  true  "Member ID"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /members/{memberID} [delete]
func (h *DirectoryHandler) HandleDeleteMember(ctx *gin.Context) {
	memberID, err := strconv.ParseUint(ctx.Param("memberID"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid member ID: %w", err)))
		return
	}

	if err := h.svc.DeleteMember(ctx.Request.Context(), uint(memberID)); err != nil {
		if errors.Is(err, service.ErrMemberNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("member", "ID", memberID))
			return
		}

		err = fmt.Errorf("HandleDeleteMember -> h.svc.DeleteMember -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
