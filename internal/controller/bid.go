package controller

import (
	"net/http"
	"strings"

	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"github.com/shopspring/decimal"
)

type bidRoutesHandler struct {
	bidService service.Bid
	validate   *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, validate: v}

	outer.POST("/bids/new", h.PostBid)
	outer.GET("/bids/my", h.GetUserBids)
	outer.GET("/bids/:bidId", h.GetBid)
	outer.PUT("/bids/:bidId", h.PutBid)
	outer.GET("/bids/:tenderId/list", h.GetTenderBids)
	outer.POST("/bids/:bidId/submit", h.SubmitBid)
	outer.GET("/bids/:bidId/validate-submit", h.ValidateSubmit)
	outer.PUT("/bids/:bidId/status", h.UpdateBidStatus)
	outer.GET("/bids/:bidId/opening-report", h.GetOpeningReport)
	outer.POST("/bids/:bidId/documents", h.PostBidDocument)
	outer.GET("/bids/:bidId/documents", h.GetBidDocuments)
	outer.DELETE("/bids/:bidId/documents/:documentId", h.DeleteBidDocument)

	return h
}

func (h *bidRoutesHandler) writeBidError(c echo.Context, err error) error {
	if reason, ok := validationReason(err); ok {
		if e := c.JSON(http.StatusBadRequest, errorResponse{reason}); e != nil {
			return e
		}

		return err
	}

	switch err {
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	case service.ErrTenderNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no tender with given id"}); e != nil {
			return e
		}
	case service.ErrRequirementNotFound:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"A response references a requirement that does not belong to the tender"}); e != nil {
			return e
		}
	case service.ErrEvidenceNotFound:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"A response references an evidence record that does not exist"}); e != nil {
			return e
		}
	case service.ErrDocumentNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no document with given id"}); e != nil {
			return e
		}
	case service.ErrTenderNotPublished:
		if e := c.JSON(http.StatusConflict, errorResponse{"Bids are accepted only on published tenders"}); e != nil {
			return e
		}
	case service.ErrSubmissionDeadlinePassed:
		if e := c.JSON(http.StatusConflict, errorResponse{"Tender submission deadline has passed"}); e != nil {
			return e
		}
	case service.ErrBidAlreadyExists:
		if e := c.JSON(http.StatusConflict, errorResponse{"Bidder already has a bid on this tender"}); e != nil {
			return e
		}
	case service.ErrBidNotEditable:
		if e := c.JSON(http.StatusConflict, errorResponse{"Bid can be changed only while in Draft status"}); e != nil {
			return e
		}
	case service.ErrBidNotSubmitted:
		if e := c.JSON(http.StatusConflict, errorResponse{"Opening report is available only after the bid left draft"}); e != nil {
			return e
		}
	case service.ErrIllegalStatusTransition:
		if e := c.JSON(http.StatusConflict, errorResponse{"Requested status change is not allowed from the current status"}); e != nil {
			return e
		}
	case service.ErrDocumentWrongTender:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Document requirement belongs to a different tender"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type financialResponseInput struct {
	RequirementId  string           `json:"requirementId" validate:"required,max=100"`
	StatementId    *string          `json:"statementId" validate:"omitempty,max=100"`
	ProvidedValue  decimal.Decimal  `json:"providedValue"`
	JvContribution *decimal.Decimal `json:"jvContribution"`
}

type turnoverResponseInput struct {
	RequirementId  string           `json:"requirementId" validate:"required,max=100"`
	TurnoverIds    []string         `json:"turnoverIds" validate:"required,min=1,dive,max=100"`
	JvContribution *decimal.Decimal `json:"jvContribution"`
}

type experienceResponseInput struct {
	RequirementId  string           `json:"requirementId" validate:"required,max=100"`
	ExperienceId   *string          `json:"experienceId" validate:"omitempty,max=100"`
	JvContribution *decimal.Decimal `json:"jvContribution"`
}

type personnelResponseInput struct {
	RequirementId  string           `json:"requirementId" validate:"required,max=100"`
	PersonnelId    *string          `json:"personnelId" validate:"omitempty,max=100"`
	JvContribution *decimal.Decimal `json:"jvContribution"`
}

type officeResponseInput struct {
	OfficeId string `json:"officeId" validate:"required,max=100"`
}

type sourceOfFundResponseInput struct {
	SourceIds []string `json:"sourceIds" validate:"required,min=1,dive,max=100"`
}

type litigationResponseInput struct {
	NoLitigation  bool     `json:"noLitigation"`
	LitigationIds []string `json:"litigationIds" validate:"dive,max=100"`
}

type scheduleResponseInput struct {
	ScheduleItemId string          `json:"scheduleItemId" validate:"required,max=100"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
}

type technicalResponseInput struct {
	SpecificationId string `json:"specificationId" validate:"required,max=100"`
	Complied        bool   `json:"complied"`
	Remarks         string `json:"remarks" validate:"max=2000"`
}

type responseSetInput struct {
	Financial    []financialResponseInput    `json:"financial" validate:"dive"`
	Turnover     []turnoverResponseInput     `json:"turnover" validate:"dive"`
	Experience   []experienceResponseInput   `json:"experience" validate:"dive"`
	Personnel    []personnelResponseInput    `json:"personnel" validate:"dive"`
	Office       []officeResponseInput       `json:"office" validate:"dive"`
	SourceOfFund []sourceOfFundResponseInput `json:"sourceOfFund" validate:"dive"`
	Litigation   *litigationResponseInput    `json:"litigation"`
	Schedule     []scheduleResponseInput     `json:"schedule" validate:"dive"`
	Technical    []technicalResponseInput    `json:"technical" validate:"dive"`
}

func (in *responseSetInput) toModel() entity.ResponseSetInput {
	var model entity.ResponseSetInput
	for _, r := range in.Financial {
		model.Financial = append(model.Financial, entity.FinancialResponseInput{
			RequirementId: r.RequirementId, StatementId: r.StatementId,
			ProvidedValue: r.ProvidedValue, JvContribution: r.JvContribution,
		})
	}
	for _, r := range in.Turnover {
		model.Turnover = append(model.Turnover, entity.TurnoverResponseInput{
			RequirementId: r.RequirementId, TurnoverIds: r.TurnoverIds, JvContribution: r.JvContribution,
		})
	}
	for _, r := range in.Experience {
		model.Experience = append(model.Experience, entity.ExperienceResponseInput{
			RequirementId: r.RequirementId, ExperienceId: r.ExperienceId, JvContribution: r.JvContribution,
		})
	}
	for _, r := range in.Personnel {
		model.Personnel = append(model.Personnel, entity.PersonnelResponseInput{
			RequirementId: r.RequirementId, PersonnelId: r.PersonnelId, JvContribution: r.JvContribution,
		})
	}
	for _, r := range in.Office {
		model.Office = append(model.Office, entity.OfficeResponseInput{OfficeId: r.OfficeId})
	}
	for _, r := range in.SourceOfFund {
		model.SourceOfFund = append(model.SourceOfFund, entity.SourceOfFundResponseInput{SourceIds: r.SourceIds})
	}
	if in.Litigation != nil {
		model.Litigation = &entity.LitigationResponseInput{
			NoLitigation: in.Litigation.NoLitigation, LitigationIds: in.Litigation.LitigationIds,
		}
	}
	for _, r := range in.Schedule {
		model.Schedule = append(model.Schedule, entity.ScheduleResponseInput{
			ScheduleItemId: r.ScheduleItemId, UnitPrice: r.UnitPrice,
		})
	}
	for _, r := range in.Technical {
		model.Technical = append(model.Technical, entity.TechnicalResponseInput{
			SpecificationId: r.SpecificationId, Complied: r.Complied, Remarks: r.Remarks,
		})
	}

	return model
}

type postBidInput struct {
	TenderId               string           `json:"tenderId" validate:"required,max=100"`
	BidderId               string           `json:"bidderId" validate:"required,max=100"`
	TotalPrice             decimal.Decimal  `json:"totalPrice"`
	Currency               string           `json:"currency" validate:"required,len=3"`
	ValidityDays           int              `json:"validityDays" validate:"required,gte=1"`
	JvPartner              *string          `json:"jvPartner" validate:"omitempty,max=200"`
	JvPercentage           *decimal.Decimal `json:"jvPercentage"`
	CompletionComplied     bool             `json:"completionComplied"`
	ProposedCompletionDays *int             `json:"proposedCompletionDays" validate:"omitempty,gte=1"`
	Responses              responseSetInput `json:"responses"`
}

// /bids/new
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
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

	model := &entity.CreateBidInput{
		TenderId: input.TenderId, BidderId: input.BidderId,
		TotalPrice: input.TotalPrice, Currency: input.Currency, ValidityDays: input.ValidityDays,
		JvPartner: input.JvPartner, JvPercentage: input.JvPercentage,
		CompletionComplied: input.CompletionComplied, ProposedCompletionDays: input.ProposedCompletionDays,
		Responses: input.Responses.toModel(),
	}

	bid, err := h.bidService.CreateBid(c.Request().Context(), model)
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, bid); e != nil {
		return e
	}

	return nil
}

type putBidInput struct {
	BidId                  string           `param:"bidId" validate:"required,max=100"`
	TotalPrice             decimal.Decimal  `json:"totalPrice"`
	Currency               string           `json:"currency" validate:"required,len=3"`
	ValidityDays           int              `json:"validityDays" validate:"required,gte=1"`
	JvPartner              *string          `json:"jvPartner" validate:"omitempty,max=200"`
	JvPercentage           *decimal.Decimal `json:"jvPercentage"`
	CompletionComplied     bool             `json:"completionComplied"`
	ProposedCompletionDays *int             `json:"proposedCompletionDays" validate:"omitempty,gte=1"`
	Responses              responseSetInput `json:"responses"`
}

// /bids/:bidId
func (h *bidRoutesHandler) PutBid(c echo.Context) error {
	var input putBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.BidId = c.Param("bidId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.UpdateBidInput{
		BidId:      input.BidId,
		TotalPrice: input.TotalPrice, Currency: input.Currency, ValidityDays: input.ValidityDays,
		JvPartner: input.JvPartner, JvPercentage: input.JvPercentage,
		CompletionComplied: input.CompletionComplied, ProposedCompletionDays: input.ProposedCompletionDays,
		Responses: input.Responses.toModel(),
	}

	bid, err := h.bidService.UpdateBid(c.Request().Context(), model)
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, bid); e != nil {
		return e
	}

	return nil
}

// /bids/:bidId
func (h *bidRoutesHandler) GetBid(c echo.Context) error {
	bid, err := h.bidService.GetBidById(c.Request().Context(), c.Param("bidId"))
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, bid); e != nil {
		return e
	}

	return nil
}

type getUserBidsInput struct {
	Limit    int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset   int32  `query:"offset" validate:"gte=0"`
	BidderId string `query:"bidderId" validate:"required,max=100"`
}

func newGetUserBidsInput() getUserBidsInput {
	return getUserBidsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /bids/my
func (h *bidRoutesHandler) GetUserBids(c echo.Context) error {
	var input = newGetUserBidsInput()
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
	bids, err := h.bidService.GetUserBids(c.Request().Context(), input.BidderId, pg)
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, bids); e != nil {
		return e
	}

	return nil
}

type getTenderBidsInput struct {
	Limit    int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset   int32  `query:"offset" validate:"gte=0"`
	TenderId string `param:"tenderId" validate:"required,max=100"`
}

func newGetTenderBidsInput() getTenderBidsInput {
	return getTenderBidsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /bids/:tenderId/list
func (h *bidRoutesHandler) GetTenderBids(c echo.Context) error {
	var input = newGetTenderBidsInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.TenderId = c.Param("tenderId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetTenderBids(c.Request().Context(), input.TenderId, pg)
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, bids); e != nil {
		return e
	}

	return nil
}

// /bids/:bidId/submit
func (h *bidRoutesHandler) SubmitBid(c echo.Context) error {
	actor := c.QueryParam("actor")
	if actor == "" {
		actor = defaultActor
	}

	readiness, err := h.bidService.SubmitBid(c.Request().Context(), c.Param("bidId"), actor)
	if err == service.ErrBidNotReady {
		if e := c.JSON(http.StatusBadRequest, submitErrorResponse{strings.Join(readiness.Errors, "; ")}); e != nil {
			return e
		}

		return nil
	}
	if err != nil {
		return h.writeBidError(c, err)
	}

	bid, err := h.bidService.GetBidById(c.Request().Context(), c.Param("bidId"))
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, bid); e != nil {
		return e
	}

	return nil
}

// /bids/:bidId/validate-submit
func (h *bidRoutesHandler) ValidateSubmit(c echo.Context) error {
	readiness, err := h.bidService.ValidateSubmit(c.Request().Context(), c.Param("bidId"))
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, readiness); e != nil {
		return e
	}

	return nil
}

type updateBidStatusInput struct {
	BidId  string `param:"bidId" validate:"required,max=100"`
	Status string `query:"status" validate:"required,oneof=UnderEvaluation Accepted Rejected Withdrawn"`
	Actor  string `query:"actor" validate:"max=100"`
}

// /bids/:bidId/status
func (h *bidRoutesHandler) UpdateBidStatus(c echo.Context) error {
	input := updateBidStatusInput{
		BidId:  c.Param("bidId"),
		Status: c.QueryParam("status"),
		Actor:  c.QueryParam("actor"),
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

	bid, err := h.bidService.UpdateBidStatus(c.Request().Context(), input.BidId, input.Status, input.Actor)
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, bid); e != nil {
		return e
	}

	return nil
}

// /bids/:bidId/opening-report
func (h *bidRoutesHandler) GetOpeningReport(c echo.Context) error {
	report, err := h.bidService.GetOpeningReport(c.Request().Context(), c.Param("bidId"))
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, report); e != nil {
		return e
	}

	return nil
}

type postBidDocumentInput struct {
	BidId         string `param:"bidId" validate:"required,max=100"`
	RequirementId string `json:"requirementId" validate:"required,max=100"`
	FileName      string `json:"fileName" validate:"required,max=300"`
	FileRef       string `json:"fileRef" validate:"required,max=1000"`
}

// /bids/:bidId/documents
func (h *bidRoutesHandler) PostBidDocument(c echo.Context) error {
	var input postBidDocumentInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.BidId = c.Param("bidId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBidDocumentInput{
		BidId: input.BidId, RequirementId: input.RequirementId,
		FileName: input.FileName, FileRef: input.FileRef,
	}

	doc, err := h.bidService.AddBidDocument(c.Request().Context(), model)
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, doc); e != nil {
		return e
	}

	return nil
}

// /bids/:bidId/documents
func (h *bidRoutesHandler) GetBidDocuments(c echo.Context) error {
	docs, err := h.bidService.GetBidDocuments(c.Request().Context(), c.Param("bidId"))
	if err != nil {
		return h.writeBidError(c, err)
	}
	if e := c.JSON(http.StatusOK, docs); e != nil {
		return e
	}

	return nil
}

// /bids/:bidId/documents/:documentId
func (h *bidRoutesHandler) DeleteBidDocument(c echo.Context) error {
	if err := h.bidService.DeleteBidDocument(c.Request().Context(), c.Param("bidId"), c.Param("documentId")); err != nil {
		return h.writeBidError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
