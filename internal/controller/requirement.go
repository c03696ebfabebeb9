package controller

import (
	"net/http"
	"time"

	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/shopspring/decimal"
)

type requirementRoutesHandler struct {
	requirementService service.Requirement
	validate           *validator.Validate
}

func newRequirementRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *requirementRoutesHandler {
	h := &requirementRoutesHandler{requirementService: services.Requirement, validate: v}

	outer.GET("/tenders/:tenderId/requirements", h.GetRequirementSet)

	outer.POST("/tenders/:tenderId/requirements/financial", h.PostFinancialRequirement)
	outer.POST("/tenders/:tenderId/requirements/turnover", h.PostTurnoverRequirement)
	outer.POST("/tenders/:tenderId/requirements/experience", h.PostExperienceRequirement)
	outer.POST("/tenders/:tenderId/requirements/personnel", h.PostPersonnelRequirement)
	outer.POST("/tenders/:tenderId/requirements/schedule", h.PostScheduleItem)
	outer.POST("/tenders/:tenderId/requirements/technical", h.PostTechnicalSpecification)
	outer.POST("/tenders/:tenderId/requirements/documents", h.PostRequiredDocument)

	outer.GET("/tenders/:tenderId/requirements/financial", h.GetFinancialRequirements)
	outer.GET("/tenders/:tenderId/requirements/turnover", h.GetTurnoverRequirements)
	outer.GET("/tenders/:tenderId/requirements/experience", h.GetExperienceRequirements)
	outer.GET("/tenders/:tenderId/requirements/personnel", h.GetPersonnelRequirements)
	outer.GET("/tenders/:tenderId/requirements/schedule", h.GetScheduleItems)
	outer.GET("/tenders/:tenderId/requirements/technical", h.GetTechnicalSpecifications)
	outer.GET("/tenders/:tenderId/requirements/documents", h.GetRequiredDocuments)

	outer.DELETE("/tenders/:tenderId/requirements/financial/:id", h.DeleteFinancialRequirement)
	outer.DELETE("/tenders/:tenderId/requirements/turnover/:id", h.DeleteTurnoverRequirement)
	outer.DELETE("/tenders/:tenderId/requirements/experience/:id", h.DeleteExperienceRequirement)
	outer.DELETE("/tenders/:tenderId/requirements/personnel/:id", h.DeletePersonnelRequirement)
	outer.DELETE("/tenders/:tenderId/requirements/schedule/:id", h.DeleteScheduleItem)
	outer.DELETE("/tenders/:tenderId/requirements/technical/:id", h.DeleteTechnicalSpecification)
	outer.DELETE("/tenders/:tenderId/requirements/documents/:id", h.DeleteRequiredDocument)

	return h
}

func (h *requirementRoutesHandler) writeRequirementError(c echo.Context, err error) error {
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
	case service.ErrRequirementNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no such requirement in given tender"}); e != nil {
			return e
		}
	case service.ErrTenderFrozen:
		if e := c.JSON(http.StatusConflict, errorResponse{"Requirements can only be changed while the tender is in Created status"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /tenders/:tenderId/requirements
func (h *requirementRoutesHandler) GetRequirementSet(c echo.Context) error {
	set, err := h.requirementService.GetRequirementSet(c.Request().Context(), c.Param("tenderId"))
	if err != nil {
		return h.writeRequirementError(c, err)
	}
	if e := c.JSON(http.StatusOK, set); e != nil {
		return e
	}

	return nil
}

func (h *requirementRoutesHandler) getKind(c echo.Context, pick func(*entity.RequirementSet) any) error {
	set, err := h.requirementService.GetRequirementSet(c.Request().Context(), c.Param("tenderId"))
	if err != nil {
		return h.writeRequirementError(c, err)
	}
	if e := c.JSON(http.StatusOK, pick(set)); e != nil {
		return e
	}

	return nil
}

func (h *requirementRoutesHandler) GetFinancialRequirements(c echo.Context) error {
	return h.getKind(c, func(s *entity.RequirementSet) any { return s.Financial })
}

func (h *requirementRoutesHandler) GetTurnoverRequirements(c echo.Context) error {
	return h.getKind(c, func(s *entity.RequirementSet) any { return s.Turnover })
}

func (h *requirementRoutesHandler) GetExperienceRequirements(c echo.Context) error {
	return h.getKind(c, func(s *entity.RequirementSet) any { return s.Experience })
}

func (h *requirementRoutesHandler) GetPersonnelRequirements(c echo.Context) error {
	return h.getKind(c, func(s *entity.RequirementSet) any { return s.Personnel })
}

func (h *requirementRoutesHandler) GetScheduleItems(c echo.Context) error {
	return h.getKind(c, func(s *entity.RequirementSet) any { return s.Schedule })
}

func (h *requirementRoutesHandler) GetTechnicalSpecifications(c echo.Context) error {
	return h.getKind(c, func(s *entity.RequirementSet) any { return s.Technical })
}

func (h *requirementRoutesHandler) GetRequiredDocuments(c echo.Context) error {
	return h.getKind(c, func(s *entity.RequirementSet) any { return s.Documents })
}

func (h *requirementRoutesHandler) deleteById(c echo.Context, del func(tenderId, id string) error) error {
	if err := del(c.Param("tenderId"), c.Param("id")); err != nil {
		return h.writeRequirementError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *requirementRoutesHandler) DeleteFinancialRequirement(c echo.Context) error {
	return h.deleteById(c, func(tenderId, id string) error {
		return h.requirementService.DeleteFinancialRequirement(c.Request().Context(), tenderId, id)
	})
}

func (h *requirementRoutesHandler) DeleteTurnoverRequirement(c echo.Context) error {
	return h.deleteById(c, func(tenderId, id string) error {
		return h.requirementService.DeleteTurnoverRequirement(c.Request().Context(), tenderId, id)
	})
}

func (h *requirementRoutesHandler) DeleteExperienceRequirement(c echo.Context) error {
	return h.deleteById(c, func(tenderId, id string) error {
		return h.requirementService.DeleteExperienceRequirement(c.Request().Context(), tenderId, id)
	})
}

func (h *requirementRoutesHandler) DeletePersonnelRequirement(c echo.Context) error {
	return h.deleteById(c, func(tenderId, id string) error {
		return h.requirementService.DeletePersonnelRequirement(c.Request().Context(), tenderId, id)
	})
}

func (h *requirementRoutesHandler) DeleteScheduleItem(c echo.Context) error {
	return h.deleteById(c, func(tenderId, id string) error {
		return h.requirementService.DeleteScheduleItem(c.Request().Context(), tenderId, id)
	})
}

func (h *requirementRoutesHandler) DeleteTechnicalSpecification(c echo.Context) error {
	return h.deleteById(c, func(tenderId, id string) error {
		return h.requirementService.DeleteTechnicalSpecification(c.Request().Context(), tenderId, id)
	})
}

func (h *requirementRoutesHandler) DeleteRequiredDocument(c echo.Context) error {
	return h.deleteById(c, func(tenderId, id string) error {
		return h.requirementService.DeleteRequiredDocument(c.Request().Context(), tenderId, id)
	})
}

type postFinancialRequirementInput struct {
	Name    string           `json:"name" validate:"required,max=200"`
	Formula string           `json:"formula" validate:"max=500"`
	Minimum *decimal.Decimal `json:"minimum"`
	Unit    string           `json:"unit" validate:"max=50"`
	JvMode  string           `json:"jvMode" validate:"required,oneof=Separate Combined"`
}

// /tenders/:tenderId/requirements/financial
func (h *requirementRoutesHandler) PostFinancialRequirement(c echo.Context) error {
	var input postFinancialRequirementInput
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

	req := &entity.FinancialRequirement{
		Name: input.Name, Formula: input.Formula, Minimum: input.Minimum,
		Unit: input.Unit, JvMode: input.JvMode,
	}

	created, err := h.requirementService.AddFinancialRequirement(c.Request().Context(), c.Param("tenderId"), req)
	if err != nil {
		return h.writeRequirementError(c, err)
	}
	if e := c.JSON(http.StatusOK, created); e != nil {
		return e
	}

	return nil
}

type postTurnoverRequirementInput struct {
	Label           string           `json:"label" validate:"max=200"`
	MinimumAmount   decimal.Decimal  `json:"minimumAmount"`
	Currency        string           `json:"currency" validate:"required,len=3"`
	PeriodStart     string           `json:"periodStart" validate:"required"`
	PeriodEnd       string           `json:"periodEnd" validate:"required"`
	JvMode          string           `json:"jvMode" validate:"required,oneof=Separate Combined"`
	JvPercentageCap *decimal.Decimal `json:"jvPercentageCap"`
}

// /tenders/:tenderId/requirements/turnover
func (h *requirementRoutesHandler) PostTurnoverRequirement(c echo.Context) error {
	var input postTurnoverRequirementInput
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

	start, err := time.Parse(time.RFC3339, input.PeriodStart)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'periodStart': should be an RFC 3339 timestamp"}); e != nil {
			return e
		}

		return err
	}
	end, err := time.Parse(time.RFC3339, input.PeriodEnd)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'periodEnd': should be an RFC 3339 timestamp"}); e != nil {
			return e
		}

		return err
	}

	req := &entity.TurnoverRequirement{
		Label: input.Label, MinimumAmount: input.MinimumAmount, Currency: input.Currency,
		PeriodStart: start, PeriodEnd: end, JvMode: input.JvMode, JvPercentageCap: input.JvPercentageCap,
	}

	created, err := h.requirementService.AddTurnoverRequirement(c.Request().Context(), c.Param("tenderId"), req)
	if err != nil {
		return h.writeRequirementError(c, err)
	}
	if e := c.JSON(http.StatusOK, created); e != nil {
		return e
	}

	return nil
}

type postExperienceRequirementInput struct {
	Kind         string           `json:"kind" validate:"required,oneof=General Specific"`
	MinContracts int              `json:"minContracts" validate:"gte=0"`
	MinValue     decimal.Decimal  `json:"minValue"`
	Currency     string           `json:"currency" validate:"required,len=3"`
	PeriodStart  string           `json:"periodStart" validate:"required"`
	PeriodEnd    string           `json:"periodEnd" validate:"required"`
	JvMode       string           `json:"jvMode" validate:"required,oneof=Separate Combined"`
	JvPercentage *decimal.Decimal `json:"jvPercentage"`
}

// /tenders/:tenderId/requirements/experience
func (h *requirementRoutesHandler) PostExperienceRequirement(c echo.Context) error {
	var input postExperienceRequirementInput
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

	start, err := time.Parse(time.RFC3339, input.PeriodStart)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'periodStart': should be an RFC 3339 timestamp"}); e != nil {
			return e
		}

		return err
	}
	end, err := time.Parse(time.RFC3339, input.PeriodEnd)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"'periodEnd': should be an RFC 3339 timestamp"}); e != nil {
			return e
		}

		return err
	}

	req := &entity.ExperienceRequirement{
		Kind: input.Kind, MinContracts: input.MinContracts, MinValue: input.MinValue,
		Currency: input.Currency, PeriodStart: start, PeriodEnd: end,
		JvMode: input.JvMode, JvPercentage: input.JvPercentage,
	}

	created, err := h.requirementService.AddExperienceRequirement(c.Request().Context(), c.Param("tenderId"), req)
	if err != nil {
		return h.writeRequirementError(c, err)
	}
	if e := c.JSON(http.StatusOK, created); e != nil {
		return e
	}

	return nil
}

type postPersonnelRequirementInput struct {
	Role               string `json:"role" validate:"required,max=200"`
	MinEducation       string `json:"minEducation" validate:"max=200"`
	MinExperienceYears int    `json:"minExperienceYears" validate:"gte=0"`
	MinAge             *int   `json:"minAge" validate:"omitempty,gte=16"`
	MaxAge             *int   `json:"maxAge" validate:"omitempty,lte=100"`
	Certifications     string `json:"certifications" validate:"max=500"`
	NeedsRegistration  bool   `json:"needsRegistration"`
}

// /tenders/:tenderId/requirements/personnel
func (h *requirementRoutesHandler) PostPersonnelRequirement(c echo.Context) error {
	var input postPersonnelRequirementInput
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

	req := &entity.PersonnelRequirement{
		Role: input.Role, MinEducation: input.MinEducation, MinExperienceYears: input.MinExperienceYears,
		MinAge: input.MinAge, MaxAge: input.MaxAge, Certifications: input.Certifications,
		NeedsRegistration: input.NeedsRegistration,
	}

	created, err := h.requirementService.AddPersonnelRequirement(c.Request().Context(), c.Param("tenderId"), req)
	if err != nil {
		return h.writeRequirementError(c, err)
	}
	if e := c.JSON(http.StatusOK, created); e != nil {
		return e
	}

	return nil
}

type postScheduleItemInput struct {
	Commodity     string          `json:"commodity" validate:"required,max=200"`
	Unit          string          `json:"unit" validate:"required,max=50"`
	Quantity      decimal.Decimal `json:"quantity"`
	Specification string          `json:"specification" validate:"max=2000"`
}

// /tenders/:tenderId/requirements/schedule
func (h *requirementRoutesHandler) PostScheduleItem(c echo.Context) error {
	var input postScheduleItemInput
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

	item := &entity.ScheduleItem{
		Commodity: input.Commodity, Unit: input.Unit,
		Quantity: input.Quantity, Specification: input.Specification,
	}

	created, err := h.requirementService.AddScheduleItem(c.Request().Context(), c.Param("tenderId"), item)
	if err != nil {
		return h.writeRequirementError(c, err)
	}
	if e := c.JSON(http.StatusOK, created); e != nil {
		return e
	}

	return nil
}

type postTechnicalSpecificationInput struct {
	Category    string `json:"category" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=5000"`
}

// /tenders/:tenderId/requirements/technical
func (h *requirementRoutesHandler) PostTechnicalSpecification(c echo.Context) error {
	var input postTechnicalSpecificationInput
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

	spec := &entity.TechnicalSpecification{Category: input.Category, Description: input.Description}

	created, err := h.requirementService.AddTechnicalSpecification(c.Request().Context(), c.Param("tenderId"), spec)
	if err != nil {
		return h.writeRequirementError(c, err)
	}
	if e := c.JSON(http.StatusOK, created); e != nil {
		return e
	}

	return nil
}

type postRequiredDocumentInput struct {
	Name         string `json:"name" validate:"required,max=200"`
	DocumentType string `json:"documentType" validate:"max=100"`
	IsRequired   bool   `json:"isRequired"`
}

// /tenders/:tenderId/requirements/documents
func (h *requirementRoutesHandler) PostRequiredDocument(c echo.Context) error {
	var input postRequiredDocumentInput
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

	doc := &entity.RequiredDocument{
		Name: input.Name, DocumentType: input.DocumentType, IsRequired: input.IsRequired,
	}

	created, err := h.requirementService.AddRequiredDocument(c.Request().Context(), c.Param("tenderId"), doc)
	if err != nil {
		return h.writeRequirementError(c, err)
	}
	if e := c.JSON(http.StatusOK, created); e != nil {
		return e
	}

	return nil
}
