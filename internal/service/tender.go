package service

import (
	"context"
	"errors"
	"tender-marketplace-api/internal/common"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo"
	"tender-marketplace-api/internal/repo/repo_errors"
)

type TenderService struct {
	tenderRepo repo.Tender
	auditRepo  repo.Audit
}

func NewTenderService(repos *repo.Repositories) *TenderService {
	return &TenderService{
		tenderRepo: repos.Tender,
		auditRepo:  repos.Audit,
	}
}

func (s *TenderService) CreateTender(ctx context.Context, input *entity.CreateTenderInput) (*entity.TenderOutputModel, error) {
	id, err := s.tenderRepo.CreateTender(ctx, input)
	if err != nil {
		return nil, err
	}

	tender, err := s.tenderRepo.GetTenderById(ctx, id.String())
	if err != nil {
		return nil, err
	}

	return mapTender(tender), nil
}

func (s *TenderService) GetTenderById(ctx context.Context, tenderId string) (*entity.TenderOutputModel, error) {
	tender, err := s.tenderRepo.GetTenderById(ctx, tenderId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, err
	}

	return mapTender(tender), nil
}

func (s *TenderService) GetPublishedTenders(ctx context.Context, pg *entity.PaginationInput) ([]entity.TenderOutputModel, error) {
	tenders, err := s.tenderRepo.GetPublishedTenders(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapTenders(tenders), nil
}

var tenderTransitions = map[string][]string{
	common.TenderCreated:   {common.TenderPublished, common.TenderCancelled},
	common.TenderPublished: {common.TenderClosed, common.TenderCancelled},
}

func (s *TenderService) UpdateTenderStatus(ctx context.Context, tenderId string, newStatus string, actor string) (*entity.TenderOutputModel, error) {
	tender, err := s.tenderRepo.GetTenderById(ctx, tenderId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, err
	}

	allowed := false
	for _, status := range tenderTransitions[tender.Status] {
		if status == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrIllegalTenderTransition
	}

	if err = s.tenderRepo.UpdateTenderStatusById(ctx, tenderId, newStatus); err != nil {
		return nil, err
	}

	if newStatus == common.TenderPublished {
		_ = s.auditRepo.Append(ctx, &entity.AuditEntry{
			Actor:      actor,
			Action:     common.AuditTenderPublished,
			ObjectType: "tender",
			ObjectId:   tender.Id,
			Detail:     "tender published",
		})
	}

	tender, err = s.tenderRepo.GetTenderById(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	return mapTender(tender), nil
}

// ReadvertiseTender opens a fresh tender carrying a deep copy of the source
// tender's whole requirement catalog. Existing bids keep pointing at the old
// tender's requirement rows, which stay immutable.
func (s *TenderService) ReadvertiseTender(ctx context.Context, sourceId string, input *entity.CreateTenderInput, actor string) (*entity.TenderOutputModel, error) {
	source, err := s.tenderRepo.GetTenderById(ctx, sourceId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, err
	}

	input.OrganizationId = source.OrganizationId.String()

	newId, err := s.tenderRepo.ReadvertiseTender(ctx, sourceId, input)
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.Append(ctx, &entity.AuditEntry{
		Actor:      actor,
		Action:     common.AuditTenderReadvertise,
		ObjectType: "tender",
		ObjectId:   source.Id,
		Detail:     "readvertised as " + newId.String(),
	})

	tender, err := s.tenderRepo.GetTenderById(ctx, newId.String())
	if err != nil {
		return nil, err
	}

	return mapTender(tender), nil
}
