package service

import (
	"context"
	"errors"
	"tender-marketplace-api/internal/common"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo"
	"tender-marketplace-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// RequirementService manages a tender's requirement catalog. The catalog is
// writable only while the tender is still in Created status; publication
// freezes it, and re-advertisement is the only way to get a changed copy.
type RequirementService struct {
	requirementRepo repo.Requirement
	tenderRepo      repo.Tender
}

func NewRequirementService(repos *repo.Repositories) *RequirementService {
	return &RequirementService{
		requirementRepo: repos.Requirement,
		tenderRepo:      repos.Tender,
	}
}

// editableTender resolves the tender and checks the catalog is not frozen.
func (s *RequirementService) editableTender(ctx context.Context, tenderId string) (*entity.Tender, error) {
	tender, err := s.tenderRepo.GetTenderById(ctx, tenderId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, err
	}

	if tender.Status != common.TenderCreated {
		return nil, ErrTenderFrozen
	}

	return tender, nil
}

func (s *RequirementService) AddFinancialRequirement(ctx context.Context, tenderId string, req *entity.FinancialRequirement) (*entity.FinancialRequirement, error) {
	tender, err := s.editableTender(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	req.TenderId = tender.Id
	id, err := s.requirementRepo.CreateFinancialRequirement(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.requirementRepo.GetFinancialRequirementById(ctx, id.String())
}

func (s *RequirementService) AddTurnoverRequirement(ctx context.Context, tenderId string, req *entity.TurnoverRequirement) (*entity.TurnoverRequirement, error) {
	tender, err := s.editableTender(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	req.TenderId = tender.Id
	id, err := s.requirementRepo.CreateTurnoverRequirement(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.requirementRepo.GetTurnoverRequirementById(ctx, id.String())
}

func (s *RequirementService) AddExperienceRequirement(ctx context.Context, tenderId string, req *entity.ExperienceRequirement) (*entity.ExperienceRequirement, error) {
	tender, err := s.editableTender(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	req.TenderId = tender.Id
	id, err := s.requirementRepo.CreateExperienceRequirement(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.requirementRepo.GetExperienceRequirementById(ctx, id.String())
}

func (s *RequirementService) AddPersonnelRequirement(ctx context.Context, tenderId string, req *entity.PersonnelRequirement) (*entity.PersonnelRequirement, error) {
	tender, err := s.editableTender(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	req.TenderId = tender.Id
	id, err := s.requirementRepo.CreatePersonnelRequirement(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.requirementRepo.GetPersonnelRequirementById(ctx, id.String())
}

func (s *RequirementService) AddScheduleItem(ctx context.Context, tenderId string, item *entity.ScheduleItem) (*entity.ScheduleItem, error) {
	tender, err := s.editableTender(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	item.TenderId = tender.Id
	id, err := s.requirementRepo.CreateScheduleItem(ctx, item)
	if err != nil {
		return nil, err
	}

	return s.requirementRepo.GetScheduleItemById(ctx, id.String())
}

func (s *RequirementService) AddTechnicalSpecification(ctx context.Context, tenderId string, spec *entity.TechnicalSpecification) (*entity.TechnicalSpecification, error) {
	tender, err := s.editableTender(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	spec.TenderId = tender.Id
	id, err := s.requirementRepo.CreateTechnicalSpecification(ctx, spec)
	if err != nil {
		return nil, err
	}

	return s.requirementRepo.GetTechnicalSpecificationById(ctx, id.String())
}

func (s *RequirementService) AddRequiredDocument(ctx context.Context, tenderId string, doc *entity.RequiredDocument) (*entity.RequiredDocument, error) {
	tender, err := s.editableTender(ctx, tenderId)
	if err != nil {
		return nil, err
	}

	doc.TenderId = tender.Id
	id, err := s.requirementRepo.CreateRequiredDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	return s.requirementRepo.GetRequiredDocumentById(ctx, id.String())
}

func (s *RequirementService) GetRequirementSet(ctx context.Context, tenderId string) (*entity.RequirementSet, error) {
	if _, err := s.tenderRepo.GetTenderById(ctx, tenderId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, err
	}

	return s.requirementRepo.GetRequirementSetByTenderId(ctx, tenderId)
}

type requirementDeleter func(ctx context.Context, id string) error

func (s *RequirementService) deleteRequirement(ctx context.Context, tenderId, id string, ownerOf func(*entity.RequirementSet) []uuid.UUID, del requirementDeleter) error {
	if _, err := s.editableTender(ctx, tenderId); err != nil {
		return err
	}

	set, err := s.requirementRepo.GetRequirementSetByTenderId(ctx, tenderId)
	if err != nil {
		return err
	}

	reqUuid, err := uuid.Parse(id)
	if err != nil {
		return err
	}
	owned := false
	for _, ownedId := range ownerOf(set) {
		if ownedId == reqUuid {
			owned = true
			break
		}
	}
	if !owned {
		return ErrRequirementNotFound
	}

	if err := del(ctx, id); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrRequirementNotFound
		}

		return err
	}

	return nil
}

func (s *RequirementService) DeleteFinancialRequirement(ctx context.Context, tenderId, id string) error {
	return s.deleteRequirement(ctx, tenderId, id, func(set *entity.RequirementSet) []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(set.Financial))
		for _, r := range set.Financial {
			ids = append(ids, r.Id)
		}
		return ids
	}, s.requirementRepo.DeleteFinancialRequirement)
}

func (s *RequirementService) DeleteTurnoverRequirement(ctx context.Context, tenderId, id string) error {
	return s.deleteRequirement(ctx, tenderId, id, func(set *entity.RequirementSet) []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(set.Turnover))
		for _, r := range set.Turnover {
			ids = append(ids, r.Id)
		}
		return ids
	}, s.requirementRepo.DeleteTurnoverRequirement)
}

func (s *RequirementService) DeleteExperienceRequirement(ctx context.Context, tenderId, id string) error {
	return s.deleteRequirement(ctx, tenderId, id, func(set *entity.RequirementSet) []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(set.Experience))
		for _, r := range set.Experience {
			ids = append(ids, r.Id)
		}
		return ids
	}, s.requirementRepo.DeleteExperienceRequirement)
}

func (s *RequirementService) DeletePersonnelRequirement(ctx context.Context, tenderId, id string) error {
	return s.deleteRequirement(ctx, tenderId, id, func(set *entity.RequirementSet) []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(set.Personnel))
		for _, r := range set.Personnel {
			ids = append(ids, r.Id)
		}
		return ids
	}, s.requirementRepo.DeletePersonnelRequirement)
}

func (s *RequirementService) DeleteScheduleItem(ctx context.Context, tenderId, id string) error {
	return s.deleteRequirement(ctx, tenderId, id, func(set *entity.RequirementSet) []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(set.Schedule))
		for _, r := range set.Schedule {
			ids = append(ids, r.Id)
		}
		return ids
	}, s.requirementRepo.DeleteScheduleItem)
}

func (s *RequirementService) DeleteTechnicalSpecification(ctx context.Context, tenderId, id string) error {
	return s.deleteRequirement(ctx, tenderId, id, func(set *entity.RequirementSet) []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(set.Technical))
		for _, r := range set.Technical {
			ids = append(ids, r.Id)
		}
		return ids
	}, s.requirementRepo.DeleteTechnicalSpecification)
}

func (s *RequirementService) DeleteRequiredDocument(ctx context.Context, tenderId, id string) error {
	return s.deleteRequirement(ctx, tenderId, id, func(set *entity.RequirementSet) []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(set.Documents))
		for _, r := range set.Documents {
			ids = append(ids, r.Id)
		}
		return ids
	}, s.requirementRepo.DeleteRequiredDocument)
}
