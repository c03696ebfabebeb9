package repo

import (
	"context"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo/pgdb"
	"tender-marketplace-api/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Diagnostics interface {
	Ping() error
}

type Tender interface {
	CreateTender(ctx context.Context, input *entity.CreateTenderInput) (uuid.UUID, error)
	GetTenderById(ctx context.Context, id string) (*entity.Tender, error)
	UpdateTenderStatusById(ctx context.Context, id string, newStatus string) error
	GetPublishedTenders(ctx context.Context, pg *entity.PaginationInput) ([]entity.Tender, error)
	// ReadvertiseTender creates a new tender and deep-copies the source
	// tender's whole requirement catalog onto it, in one transaction.
	ReadvertiseTender(ctx context.Context, sourceId string, input *entity.CreateTenderInput) (uuid.UUID, error)
}

type Requirement interface {
	CreateFinancialRequirement(ctx context.Context, r *entity.FinancialRequirement) (uuid.UUID, error)
	CreateTurnoverRequirement(ctx context.Context, r *entity.TurnoverRequirement) (uuid.UUID, error)
	CreateExperienceRequirement(ctx context.Context, r *entity.ExperienceRequirement) (uuid.UUID, error)
	CreatePersonnelRequirement(ctx context.Context, r *entity.PersonnelRequirement) (uuid.UUID, error)
	CreateScheduleItem(ctx context.Context, r *entity.ScheduleItem) (uuid.UUID, error)
	CreateTechnicalSpecification(ctx context.Context, r *entity.TechnicalSpecification) (uuid.UUID, error)
	CreateRequiredDocument(ctx context.Context, r *entity.RequiredDocument) (uuid.UUID, error)

	GetFinancialRequirementById(ctx context.Context, id string) (*entity.FinancialRequirement, error)
	GetTurnoverRequirementById(ctx context.Context, id string) (*entity.TurnoverRequirement, error)
	GetExperienceRequirementById(ctx context.Context, id string) (*entity.ExperienceRequirement, error)
	GetPersonnelRequirementById(ctx context.Context, id string) (*entity.PersonnelRequirement, error)
	GetScheduleItemById(ctx context.Context, id string) (*entity.ScheduleItem, error)
	GetTechnicalSpecificationById(ctx context.Context, id string) (*entity.TechnicalSpecification, error)
	GetRequiredDocumentById(ctx context.Context, id string) (*entity.RequiredDocument, error)

	GetRequirementSetByTenderId(ctx context.Context, tenderId string) (*entity.RequirementSet, error)
	GetRequiredDocumentsByTenderId(ctx context.Context, tenderId string) ([]entity.RequiredDocument, error)

	DeleteFinancialRequirement(ctx context.Context, id string) error
	DeleteTurnoverRequirement(ctx context.Context, id string) error
	DeleteExperienceRequirement(ctx context.Context, id string) error
	DeletePersonnelRequirement(ctx context.Context, id string) error
	DeleteScheduleItem(ctx context.Context, id string) error
	DeleteTechnicalSpecification(ctx context.Context, id string) error
	DeleteRequiredDocument(ctx context.Context, id string) error
}

type Bid interface {
	// CreateBidWithResponses persists the bid and its whole response set in
	// one transaction. Either everything lands or nothing does.
	CreateBidWithResponses(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) (uuid.UUID, error)
	// ReplaceBidWithResponses updates the bid's top-level fields and
	// recreates every nested response collection (delete-all-then-insert)
	// in one transaction. Response ids are not stable across updates.
	ReplaceBidWithResponses(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) error

	GetBidById(ctx context.Context, id string) (*entity.Bid, error)
	GetBidByTenderAndBidder(ctx context.Context, tenderId, bidderId string) (*entity.Bid, error)
	GetUserBids(ctx context.Context, bidderId string, pg *entity.PaginationInput) ([]entity.Bid, error)
	GetTenderBids(ctx context.Context, tenderId string, pg *entity.PaginationInput) ([]entity.Bid, error)
	GetResponseSetByBidId(ctx context.Context, bidId string) (*entity.ResponseSet, error)

	// SubmitBid flips the status and stamps the submission date in one
	// update, guarded on the current status still being Draft.
	SubmitBid(ctx context.Context, bidId string, newStatus string) error
	UpdateBidStatusById(ctx context.Context, id string, newStatus string) error

	CreateBidDocument(ctx context.Context, input *entity.CreateBidDocumentInput) (uuid.UUID, error)
	GetBidDocuments(ctx context.Context, bidId string) ([]entity.BidDocument, error)
	DeleteBidDocument(ctx context.Context, documentId string) error
}

type Evidence interface {
	GetFinancialStatementById(ctx context.Context, id string) (*entity.FinancialStatement, error)
	GetAnnualTurnoversByIds(ctx context.Context, ids []string) ([]entity.AnnualTurnover, error)
	GetCompanyExperienceById(ctx context.Context, id string) (*entity.CompanyExperience, error)
	GetCompanyPersonnelById(ctx context.Context, id string) (*entity.CompanyPersonnel, error)
	GetCompanyOfficeById(ctx context.Context, id string) (*entity.CompanyOffice, error)
	GetFundingSourcesByIds(ctx context.Context, ids []string) ([]entity.FundingSource, error)
	GetCompanyLitigationsByIds(ctx context.Context, ids []string) ([]entity.CompanyLitigation, error)
}

type Audit interface {
	Append(ctx context.Context, e *entity.AuditEntry) error
}

type Repositories struct {
	Diagnostics
	Tender
	Requirement
	Bid
	Evidence
	Audit
}

func NewRepositories(p *postgres.Postgres, log *zap.Logger) *Repositories {
	return &Repositories{
		Diagnostics: pgdb.NewDiagnosticsRepo(p),
		Tender:      pgdb.NewTenderRepo(p),
		Requirement: pgdb.NewRequirementRepo(p),
		Bid:         pgdb.NewBidRepo(p),
		Evidence:    pgdb.NewEvidenceRepo(p),
		Audit:       pgdb.NewAuditRepo(p, log),
	}
}
