package service

import (
	"context"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Tender interface {
	CreateTender(ctx context.Context, input *entity.CreateTenderInput) (*entity.TenderOutputModel, error)
	GetTenderById(ctx context.Context, tenderId string) (*entity.TenderOutputModel, error)
	GetPublishedTenders(ctx context.Context, pg *entity.PaginationInput) ([]entity.TenderOutputModel, error)
	UpdateTenderStatus(ctx context.Context, tenderId string, newStatus string, actor string) (*entity.TenderOutputModel, error)
	ReadvertiseTender(ctx context.Context, sourceId string, input *entity.CreateTenderInput, actor string) (*entity.TenderOutputModel, error)
}

type Requirement interface {
	AddFinancialRequirement(ctx context.Context, tenderId string, req *entity.FinancialRequirement) (*entity.FinancialRequirement, error)
	AddTurnoverRequirement(ctx context.Context, tenderId string, req *entity.TurnoverRequirement) (*entity.TurnoverRequirement, error)
	AddExperienceRequirement(ctx context.Context, tenderId string, req *entity.ExperienceRequirement) (*entity.ExperienceRequirement, error)
	AddPersonnelRequirement(ctx context.Context, tenderId string, req *entity.PersonnelRequirement) (*entity.PersonnelRequirement, error)
	AddScheduleItem(ctx context.Context, tenderId string, item *entity.ScheduleItem) (*entity.ScheduleItem, error)
	AddTechnicalSpecification(ctx context.Context, tenderId string, spec *entity.TechnicalSpecification) (*entity.TechnicalSpecification, error)
	AddRequiredDocument(ctx context.Context, tenderId string, doc *entity.RequiredDocument) (*entity.RequiredDocument, error)

	GetRequirementSet(ctx context.Context, tenderId string) (*entity.RequirementSet, error)

	DeleteFinancialRequirement(ctx context.Context, tenderId, id string) error
	DeleteTurnoverRequirement(ctx context.Context, tenderId, id string) error
	DeleteExperienceRequirement(ctx context.Context, tenderId, id string) error
	DeletePersonnelRequirement(ctx context.Context, tenderId, id string) error
	DeleteScheduleItem(ctx context.Context, tenderId, id string) error
	DeleteTechnicalSpecification(ctx context.Context, tenderId, id string) error
	DeleteRequiredDocument(ctx context.Context, tenderId, id string) error
}

type Bid interface {
	CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error)
	UpdateBid(ctx context.Context, input *entity.UpdateBidInput) (*entity.BidOutputModel, error)
	GetBidById(ctx context.Context, bidId string) (*entity.BidOutputModel, error)
	GetUserBids(ctx context.Context, bidderId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)
	GetTenderBids(ctx context.Context, tenderId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error)

	ValidateSubmit(ctx context.Context, bidId string) (*entity.SubmitReadiness, error)
	SubmitBid(ctx context.Context, bidId string, actor string) (*entity.SubmitReadiness, error)
	UpdateBidStatus(ctx context.Context, bidId string, newStatus string, actor string) (*entity.BidOutputModel, error)

	AddBidDocument(ctx context.Context, input *entity.CreateBidDocumentInput) (*entity.BidDocument, error)
	GetBidDocuments(ctx context.Context, bidId string) ([]entity.BidDocument, error)
	DeleteBidDocument(ctx context.Context, bidId, documentId string) error

	GetOpeningReport(ctx context.Context, bidId string) (*entity.OpeningReport, error)
}

type Services struct {
	Diagnostics Diagnostics
	Tender      Tender
	Requirement Requirement
	Bid         Bid
}

func NewServices(repos *repo.Repositories) *Services {
	return &Services{
		Diagnostics: NewDiagnosticsService(repos),
		Tender:      NewTenderService(repos),
		Requirement: NewRequirementService(repos),
		Bid:         NewBidService(repos),
	}
}
