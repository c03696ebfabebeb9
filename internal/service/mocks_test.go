package service

import (
	"context"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// Hand-written repo mocks. Every method delegates to its Func field when set
// and falls back to a harmless default otherwise.

type mockTenderRepo struct {
	CreateTenderFunc         func(ctx context.Context, input *entity.CreateTenderInput) (uuid.UUID, error)
	GetTenderByIdFunc        func(ctx context.Context, id string) (*entity.Tender, error)
	UpdateTenderStatusFunc   func(ctx context.Context, id string, newStatus string) error
	GetPublishedTendersFunc  func(ctx context.Context, pg *entity.PaginationInput) ([]entity.Tender, error)
	ReadvertiseTenderFunc    func(ctx context.Context, sourceId string, input *entity.CreateTenderInput) (uuid.UUID, error)
	UpdatedStatuses          []string
}

func (m *mockTenderRepo) CreateTender(ctx context.Context, input *entity.CreateTenderInput) (uuid.UUID, error) {
	if m.CreateTenderFunc != nil {
		return m.CreateTenderFunc(ctx, input)
	}
	return uuid.New(), nil
}

func (m *mockTenderRepo) GetTenderById(ctx context.Context, id string) (*entity.Tender, error) {
	if m.GetTenderByIdFunc != nil {
		return m.GetTenderByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockTenderRepo) UpdateTenderStatusById(ctx context.Context, id string, newStatus string) error {
	m.UpdatedStatuses = append(m.UpdatedStatuses, newStatus)
	if m.UpdateTenderStatusFunc != nil {
		return m.UpdateTenderStatusFunc(ctx, id, newStatus)
	}
	return nil
}

func (m *mockTenderRepo) GetPublishedTenders(ctx context.Context, pg *entity.PaginationInput) ([]entity.Tender, error) {
	if m.GetPublishedTendersFunc != nil {
		return m.GetPublishedTendersFunc(ctx, pg)
	}
	return []entity.Tender{}, nil
}

func (m *mockTenderRepo) ReadvertiseTender(ctx context.Context, sourceId string, input *entity.CreateTenderInput) (uuid.UUID, error) {
	if m.ReadvertiseTenderFunc != nil {
		return m.ReadvertiseTenderFunc(ctx, sourceId, input)
	}
	return uuid.New(), nil
}

type mockRequirementRepo struct {
	GetFinancialRequirementByIdFunc    func(ctx context.Context, id string) (*entity.FinancialRequirement, error)
	GetTurnoverRequirementByIdFunc     func(ctx context.Context, id string) (*entity.TurnoverRequirement, error)
	GetExperienceRequirementByIdFunc   func(ctx context.Context, id string) (*entity.ExperienceRequirement, error)
	GetPersonnelRequirementByIdFunc    func(ctx context.Context, id string) (*entity.PersonnelRequirement, error)
	GetScheduleItemByIdFunc            func(ctx context.Context, id string) (*entity.ScheduleItem, error)
	GetTechnicalSpecificationByIdFunc  func(ctx context.Context, id string) (*entity.TechnicalSpecification, error)
	GetRequiredDocumentByIdFunc        func(ctx context.Context, id string) (*entity.RequiredDocument, error)
	GetRequirementSetByTenderIdFunc    func(ctx context.Context, tenderId string) (*entity.RequirementSet, error)
	GetRequiredDocumentsByTenderIdFunc func(ctx context.Context, tenderId string) ([]entity.RequiredDocument, error)
	DeletedIds                         []string
}

func (m *mockRequirementRepo) CreateFinancialRequirement(ctx context.Context, r *entity.FinancialRequirement) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (m *mockRequirementRepo) CreateTurnoverRequirement(ctx context.Context, r *entity.TurnoverRequirement) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (m *mockRequirementRepo) CreateExperienceRequirement(ctx context.Context, r *entity.ExperienceRequirement) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (m *mockRequirementRepo) CreatePersonnelRequirement(ctx context.Context, r *entity.PersonnelRequirement) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (m *mockRequirementRepo) CreateScheduleItem(ctx context.Context, r *entity.ScheduleItem) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (m *mockRequirementRepo) CreateTechnicalSpecification(ctx context.Context, r *entity.TechnicalSpecification) (uuid.UUID, error) {
	return uuid.New(), nil
}
func (m *mockRequirementRepo) CreateRequiredDocument(ctx context.Context, r *entity.RequiredDocument) (uuid.UUID, error) {
	return uuid.New(), nil
}

func (m *mockRequirementRepo) GetFinancialRequirementById(ctx context.Context, id string) (*entity.FinancialRequirement, error) {
	if m.GetFinancialRequirementByIdFunc != nil {
		return m.GetFinancialRequirementByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}
func (m *mockRequirementRepo) GetTurnoverRequirementById(ctx context.Context, id string) (*entity.TurnoverRequirement, error) {
	if m.GetTurnoverRequirementByIdFunc != nil {
		return m.GetTurnoverRequirementByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}
func (m *mockRequirementRepo) GetExperienceRequirementById(ctx context.Context, id string) (*entity.ExperienceRequirement, error) {
	if m.GetExperienceRequirementByIdFunc != nil {
		return m.GetExperienceRequirementByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}
func (m *mockRequirementRepo) GetPersonnelRequirementById(ctx context.Context, id string) (*entity.PersonnelRequirement, error) {
	if m.GetPersonnelRequirementByIdFunc != nil {
		return m.GetPersonnelRequirementByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}
func (m *mockRequirementRepo) GetScheduleItemById(ctx context.Context, id string) (*entity.ScheduleItem, error) {
	if m.GetScheduleItemByIdFunc != nil {
		return m.GetScheduleItemByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}
func (m *mockRequirementRepo) GetTechnicalSpecificationById(ctx context.Context, id string) (*entity.TechnicalSpecification, error) {
	if m.GetTechnicalSpecificationByIdFunc != nil {
		return m.GetTechnicalSpecificationByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}
func (m *mockRequirementRepo) GetRequiredDocumentById(ctx context.Context, id string) (*entity.RequiredDocument, error) {
	if m.GetRequiredDocumentByIdFunc != nil {
		return m.GetRequiredDocumentByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockRequirementRepo) GetRequirementSetByTenderId(ctx context.Context, tenderId string) (*entity.RequirementSet, error) {
	if m.GetRequirementSetByTenderIdFunc != nil {
		return m.GetRequirementSetByTenderIdFunc(ctx, tenderId)
	}
	return &entity.RequirementSet{}, nil
}

func (m *mockRequirementRepo) GetRequiredDocumentsByTenderId(ctx context.Context, tenderId string) ([]entity.RequiredDocument, error) {
	if m.GetRequiredDocumentsByTenderIdFunc != nil {
		return m.GetRequiredDocumentsByTenderIdFunc(ctx, tenderId)
	}
	return []entity.RequiredDocument{}, nil
}

func (m *mockRequirementRepo) delete(id string) error {
	m.DeletedIds = append(m.DeletedIds, id)
	return nil
}

func (m *mockRequirementRepo) DeleteFinancialRequirement(ctx context.Context, id string) error {
	return m.delete(id)
}
func (m *mockRequirementRepo) DeleteTurnoverRequirement(ctx context.Context, id string) error {
	return m.delete(id)
}
func (m *mockRequirementRepo) DeleteExperienceRequirement(ctx context.Context, id string) error {
	return m.delete(id)
}
func (m *mockRequirementRepo) DeletePersonnelRequirement(ctx context.Context, id string) error {
	return m.delete(id)
}
func (m *mockRequirementRepo) DeleteScheduleItem(ctx context.Context, id string) error {
	return m.delete(id)
}
func (m *mockRequirementRepo) DeleteTechnicalSpecification(ctx context.Context, id string) error {
	return m.delete(id)
}
func (m *mockRequirementRepo) DeleteRequiredDocument(ctx context.Context, id string) error {
	return m.delete(id)
}

type mockBidRepo struct {
	CreateBidWithResponsesFunc  func(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) (uuid.UUID, error)
	ReplaceBidWithResponsesFunc func(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) error
	GetBidByIdFunc              func(ctx context.Context, id string) (*entity.Bid, error)
	GetResponseSetByBidIdFunc   func(ctx context.Context, bidId string) (*entity.ResponseSet, error)
	SubmitBidFunc               func(ctx context.Context, bidId string, newStatus string) error
	UpdateBidStatusByIdFunc     func(ctx context.Context, id string, newStatus string) error
	GetBidDocumentsFunc         func(ctx context.Context, bidId string) ([]entity.BidDocument, error)
	CreateBidDocumentFunc       func(ctx context.Context, input *entity.CreateBidDocumentInput) (uuid.UUID, error)
	DeleteBidDocumentFunc       func(ctx context.Context, documentId string) error
}

func (m *mockBidRepo) CreateBidWithResponses(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) (uuid.UUID, error) {
	if m.CreateBidWithResponsesFunc != nil {
		return m.CreateBidWithResponsesFunc(ctx, bid, responses)
	}
	return uuid.New(), nil
}

func (m *mockBidRepo) ReplaceBidWithResponses(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) error {
	if m.ReplaceBidWithResponsesFunc != nil {
		return m.ReplaceBidWithResponsesFunc(ctx, bid, responses)
	}
	return nil
}

func (m *mockBidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	if m.GetBidByIdFunc != nil {
		return m.GetBidByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockBidRepo) GetBidByTenderAndBidder(ctx context.Context, tenderId, bidderId string) (*entity.Bid, error) {
	return nil, repo_errors.ErrNotFound
}

func (m *mockBidRepo) GetUserBids(ctx context.Context, bidderId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	return []entity.Bid{}, nil
}

func (m *mockBidRepo) GetTenderBids(ctx context.Context, tenderId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	return []entity.Bid{}, nil
}

func (m *mockBidRepo) GetResponseSetByBidId(ctx context.Context, bidId string) (*entity.ResponseSet, error) {
	if m.GetResponseSetByBidIdFunc != nil {
		return m.GetResponseSetByBidIdFunc(ctx, bidId)
	}
	return &entity.ResponseSet{}, nil
}

func (m *mockBidRepo) SubmitBid(ctx context.Context, bidId string, newStatus string) error {
	if m.SubmitBidFunc != nil {
		return m.SubmitBidFunc(ctx, bidId, newStatus)
	}
	return nil
}

func (m *mockBidRepo) UpdateBidStatusById(ctx context.Context, id string, newStatus string) error {
	if m.UpdateBidStatusByIdFunc != nil {
		return m.UpdateBidStatusByIdFunc(ctx, id, newStatus)
	}
	return nil
}

func (m *mockBidRepo) CreateBidDocument(ctx context.Context, input *entity.CreateBidDocumentInput) (uuid.UUID, error) {
	if m.CreateBidDocumentFunc != nil {
		return m.CreateBidDocumentFunc(ctx, input)
	}
	return uuid.New(), nil
}

func (m *mockBidRepo) GetBidDocuments(ctx context.Context, bidId string) ([]entity.BidDocument, error) {
	if m.GetBidDocumentsFunc != nil {
		return m.GetBidDocumentsFunc(ctx, bidId)
	}
	return []entity.BidDocument{}, nil
}

func (m *mockBidRepo) DeleteBidDocument(ctx context.Context, documentId string) error {
	if m.DeleteBidDocumentFunc != nil {
		return m.DeleteBidDocumentFunc(ctx, documentId)
	}
	return nil
}

type mockEvidenceRepo struct {
	GetFinancialStatementByIdFunc  func(ctx context.Context, id string) (*entity.FinancialStatement, error)
	GetAnnualTurnoversByIdsFunc    func(ctx context.Context, ids []string) ([]entity.AnnualTurnover, error)
	GetCompanyExperienceByIdFunc   func(ctx context.Context, id string) (*entity.CompanyExperience, error)
	GetCompanyPersonnelByIdFunc    func(ctx context.Context, id string) (*entity.CompanyPersonnel, error)
	GetCompanyOfficeByIdFunc       func(ctx context.Context, id string) (*entity.CompanyOffice, error)
	GetFundingSourcesByIdsFunc     func(ctx context.Context, ids []string) ([]entity.FundingSource, error)
	GetCompanyLitigationsByIdsFunc func(ctx context.Context, ids []string) ([]entity.CompanyLitigation, error)
}

func (m *mockEvidenceRepo) GetFinancialStatementById(ctx context.Context, id string) (*entity.FinancialStatement, error) {
	if m.GetFinancialStatementByIdFunc != nil {
		return m.GetFinancialStatementByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockEvidenceRepo) GetAnnualTurnoversByIds(ctx context.Context, ids []string) ([]entity.AnnualTurnover, error) {
	if m.GetAnnualTurnoversByIdsFunc != nil {
		return m.GetAnnualTurnoversByIdsFunc(ctx, ids)
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockEvidenceRepo) GetCompanyExperienceById(ctx context.Context, id string) (*entity.CompanyExperience, error) {
	if m.GetCompanyExperienceByIdFunc != nil {
		return m.GetCompanyExperienceByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockEvidenceRepo) GetCompanyPersonnelById(ctx context.Context, id string) (*entity.CompanyPersonnel, error) {
	if m.GetCompanyPersonnelByIdFunc != nil {
		return m.GetCompanyPersonnelByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockEvidenceRepo) GetCompanyOfficeById(ctx context.Context, id string) (*entity.CompanyOffice, error) {
	if m.GetCompanyOfficeByIdFunc != nil {
		return m.GetCompanyOfficeByIdFunc(ctx, id)
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockEvidenceRepo) GetFundingSourcesByIds(ctx context.Context, ids []string) ([]entity.FundingSource, error) {
	if m.GetFundingSourcesByIdsFunc != nil {
		return m.GetFundingSourcesByIdsFunc(ctx, ids)
	}
	return nil, repo_errors.ErrNotFound
}

func (m *mockEvidenceRepo) GetCompanyLitigationsByIds(ctx context.Context, ids []string) ([]entity.CompanyLitigation, error) {
	if m.GetCompanyLitigationsByIdsFunc != nil {
		return m.GetCompanyLitigationsByIdsFunc(ctx, ids)
	}
	return nil, repo_errors.ErrNotFound
}

type mockAuditRepo struct {
	Entries []entity.AuditEntry
}

func (m *mockAuditRepo) Append(ctx context.Context, e *entity.AuditEntry) error {
	m.Entries = append(m.Entries, *e)
	return nil
}
