package controller

import (
	"net/http"
	"time"

	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type tenderRoutesHandler struct {
	tenderService service.Tender
	validate      *validator.Validate
}

func newTenderRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *tenderRoutesHandler {
	h := &tenderRoutesHandler{tenderService: services.Tender, validate: v}

	outer.GET("/tenders", h.GetTenders)
	outer.POST("/tenders/new", h.PostTender)
	outer.GET("/tenders/:tenderId", h.GetTender)
	outer.PUT("/tenders/:tenderId/status", h.UpdateTenderStatus)
	outer.POST("/tenders/:tenderId/readvertise", h.ReadvertiseTender)

	return h
}

type getTendersInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

func newGetTendersInput() getTendersInput {
	return getTendersInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /tenders
func (h *tenderRoutesHandler) GetTenders(c echo.Context) error {
	var input = newGetTendersInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	tenders, err := h.tenderService.GetPublishedTenders(c.Request().Context(), pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{err.Error()}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, tenders); e != nil {
		return e
	}

	return nil
}

type postTenderInput struct {
	Name                     string `json:"name" validate:"required,max=200"`
	Description              string `json:"description" validate:"max=2000"`
	OrganizationId           string `json:"organizationId" validate:"required,uuid4"`
	SubmissionDeadline       string `json:"submissionDeadline" validate:"required"`
	CompletionPeriodDays     *int   `json:"completionPeriodDays" validate:"omitempty,gte=1"`
	AllowAlternativeDelivery bool   `json:"allowAlternativeDelivery"`
}

// /tenders/new
func (h *tenderRoutesHandler) PostTender(c echo.Context) error {
	var input postTenderInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	deadline, err := time.Parse(time.RFC3339, input.SubmissionDeadline)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'submissionDeadline': should be an RFC 3339 timestamp"}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateTenderInput{
		Name: input.Name, Description: input.Description, OrganizationId: input.OrganizationId,
		SubmissionDeadline: deadline, CompletionPeriodDays: input.CompletionPeriodDays,
		AllowAlternativeDelivery: input.AllowAlternativeDelivery,
	}

	tender, err := h.tenderService.CreateTender(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, tender); e != nil {
			return e
		}

		return nil
	}

	if reason, ok := validationReason(err); ok {
		if e := c.JSON(http.StatusBadRequest, errorResponse{reason}); e != nil {
			return e
		}

		return err
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type getTenderInput struct {
	TenderId string `param:"tenderId" validate:"required,max=100"`
}

// /tenders/:tenderId
func (h *tenderRoutesHandler) GetTender(c echo.Context) error {
	input := getTenderInput{TenderId: c.Param("tenderId")}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	tender, err := h.tenderService.GetTenderById(c.Request().Context(), input.TenderId)
	if err == nil {
		if e := c.JSON(http.StatusOK, tender); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrTenderNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no tender with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type updateTenderStatusInput struct {
	TenderId string `param:"tenderId" validate:"required,max=100"`
	Status   string `query:"status" validate:"required,oneof=Created Published Closed Cancelled"`
	Actor    string `query:"actor" validate:"max=100"`
}

// /tenders/:tenderId/status
func (h *tenderRoutesHandler) UpdateTenderStatus(c echo.Context) error {
	input := updateTenderStatusInput{
		TenderId: c.Param("tenderId"),
		Status:   c.QueryParam("status"),
		Actor:    c.QueryParam("actor"),
	}
	if input.Actor == "" {
		input.Actor = defaultActor
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	tender, err := h.tenderService.UpdateTenderStatus(c.Request().Context(), input.TenderId, input.Status, input.Actor)
	if err == nil {
		if e := c.JSON(http.StatusOK, tender); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrTenderNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no tender with given id"}); e != nil {
			return e
		}
	case service.ErrIllegalTenderTransition:
		if e := c.JSON(http.StatusConflict, errorResponse{"Requested status change is not allowed from the current status"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type readvertiseTenderInput struct {
	TenderId             string `param:"tenderId" validate:"required,max=100"`
	Name                 string `json:"name" validate:"required,max=200"`
	Description          string `json:"description" validate:"max=2000"`
	SubmissionDeadline   string `json:"submissionDeadline" validate:"required"`
	CompletionPeriodDays *int   `json:"completionPeriodDays" validate:"omitempty,gte=1"`
	Actor                string `query:"actor" validate:"max=100"`
}

// /tenders/:tenderId/readvertise
func (h *tenderRoutesHandler) ReadvertiseTender(c echo.Context) error {
	var input readvertiseTenderInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.TenderId = c.Param("tenderId")
	if input.Actor == "" {
		input.Actor = defaultActor
	}
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	deadline, err := time.Parse(time.RFC3339, input.SubmissionDeadline)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'submissionDeadline': should be an RFC 3339 timestamp"}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateTenderInput{
		Name: input.Name, Description: input.Description,
		SubmissionDeadline: deadline, CompletionPeriodDays: input.CompletionPeriodDays,
	}

	tender, err := h.tenderService.ReadvertiseTender(c.Request().Context(), input.TenderId, model, input.Actor)
	if err == nil {
		if e := c.JSON(http.StatusOK, tender); e != nil {
			return e
		}

		return nil
	}

	if reason, ok := validationReason(err); ok {
		if e := c.JSON(http.StatusBadRequest, errorResponse{reason}); e != nil {
			return e
		}

		return err
	}

	switch err {
	case service.ErrTenderNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no tender with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
