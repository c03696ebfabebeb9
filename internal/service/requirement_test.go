package service

import (
	"context"
	"tender-marketplace-api/internal/common"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newRequirementServiceWithMocks() (*RequirementService, *mockRequirementRepo, *mockTenderRepo) {
	requirementRepo := &mockRequirementRepo{}
	tenderRepo := &mockTenderRepo{}
	s := NewRequirementService(&repo.Repositories{Requirement: requirementRepo, Tender: tenderRepo})

	return s, requirementRepo, tenderRepo
}

func TestAddRequirementRejectsFrozenTender(t *testing.T) {
	s, _, tenderRepo := newRequirementServiceWithMocks()

	tender := createdTender()
	tender.Status = common.TenderPublished
	tenderRepo.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	_, err := s.AddFinancialRequirement(context.Background(), tender.Id.String(),
		&entity.FinancialRequirement{Name: "Net worth", JvMode: common.JvModeCombined})
	require.ErrorIs(t, err, ErrTenderFrozen)
}

func TestAddRequirementStampsTenderId(t *testing.T) {
	s, requirementRepo, tenderRepo := newRequirementServiceWithMocks()

	tender := createdTender()
	tenderRepo.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	req := &entity.TechnicalSpecification{Category: "Pipes", Description: "DN200 ductile iron"}
	requirementRepo.GetTechnicalSpecificationByIdFunc = func(ctx context.Context, id string) (*entity.TechnicalSpecification, error) {
		return req, nil
	}

	_, err := s.AddTechnicalSpecification(context.Background(), tender.Id.String(), req)
	require.NoError(t, err)
	require.Equal(t, tender.Id, req.TenderId)
}

func TestDeleteRequirementVerifiesOwnership(t *testing.T) {
	s, requirementRepo, tenderRepo := newRequirementServiceWithMocks()

	tender := createdTender()
	tenderRepo.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	owned := entity.FinancialRequirement{Id: uuid.New(), TenderId: tender.Id}
	requirementRepo.GetRequirementSetByTenderIdFunc = func(ctx context.Context, tenderId string) (*entity.RequirementSet, error) {
		return &entity.RequirementSet{Financial: []entity.FinancialRequirement{owned}}, nil
	}

	// a requirement of another tender is invisible here
	err := s.DeleteFinancialRequirement(context.Background(), tender.Id.String(), uuid.NewString())
	require.ErrorIs(t, err, ErrRequirementNotFound)
	require.Empty(t, requirementRepo.DeletedIds)

	err = s.DeleteFinancialRequirement(context.Background(), tender.Id.String(), owned.Id.String())
	require.NoError(t, err)
	require.Equal(t, []string{owned.Id.String()}, requirementRepo.DeletedIds)
}

func TestDeleteRequirementRejectsFrozenTender(t *testing.T) {
	s, requirementRepo, tenderRepo := newRequirementServiceWithMocks()

	tender := createdTender()
	tender.Status = common.TenderClosed
	tenderRepo.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	err := s.DeleteScheduleItem(context.Background(), tender.Id.String(), uuid.NewString())
	require.ErrorIs(t, err, ErrTenderFrozen)
	require.Empty(t, requirementRepo.DeletedIds)
}
