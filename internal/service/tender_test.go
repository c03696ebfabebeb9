package service

import (
	"context"
	"tender-marketplace-api/internal/common"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTenderServiceWithMocks() (*TenderService, *mockTenderRepo, *mockAuditRepo) {
	tenderRepo := &mockTenderRepo{}
	auditRepo := &mockAuditRepo{}
	s := NewTenderService(&repo.Repositories{Tender: tenderRepo, Audit: auditRepo})

	return s, tenderRepo, auditRepo
}

func createdTender() *entity.Tender {
	return &entity.Tender{
		Id:                 uuid.New(),
		Name:               "Water Supply Works",
		Status:             common.TenderCreated,
		OrganizationId:     uuid.New(),
		SubmissionDeadline: time.Now().Add(72 * time.Hour),
	}
}

func TestUpdateTenderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{common.TenderCreated, common.TenderPublished, true},
		{common.TenderCreated, common.TenderCancelled, true},
		{common.TenderCreated, common.TenderClosed, false},
		{common.TenderPublished, common.TenderClosed, true},
		{common.TenderPublished, common.TenderCancelled, true},
		{common.TenderPublished, common.TenderCreated, false},
		{common.TenderClosed, common.TenderPublished, false},
		{common.TenderCancelled, common.TenderPublished, false},
	}

	for _, tc := range cases {
		s, tenderRepo, _ := newTenderServiceWithMocks()
		tender := createdTender()
		tender.Status = tc.from
		tenderRepo.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
			return tender, nil
		}

		_, err := s.UpdateTenderStatus(context.Background(), tender.Id.String(), tc.to, "buyer-1")
		if tc.allowed {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			require.ErrorIs(t, err, ErrIllegalTenderTransition, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestUpdateTenderStatusAuditsPublication(t *testing.T) {
	s, tenderRepo, auditRepo := newTenderServiceWithMocks()

	tender := createdTender()
	tenderRepo.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	_, err := s.UpdateTenderStatus(context.Background(), tender.Id.String(), common.TenderPublished, "buyer-1")
	require.NoError(t, err)
	require.Len(t, auditRepo.Entries, 1)
	require.Equal(t, common.AuditTenderPublished, auditRepo.Entries[0].Action)
	require.Equal(t, tender.Id, auditRepo.Entries[0].ObjectId)
}

func TestReadvertiseTenderKeepsOrganization(t *testing.T) {
	s, tenderRepo, auditRepo := newTenderServiceWithMocks()

	source := createdTender()
	source.Status = common.TenderCancelled
	replacement := createdTender()
	replacement.OrganizationId = source.OrganizationId
	replacement.ReadvertisedFrom = &source.Id

	var copiedInput *entity.CreateTenderInput
	tenderRepo.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		if id == source.Id.String() {
			return source, nil
		}
		return replacement, nil
	}
	tenderRepo.ReadvertiseTenderFunc = func(ctx context.Context, sourceId string, input *entity.CreateTenderInput) (uuid.UUID, error) {
		copiedInput = input
		return replacement.Id, nil
	}

	out, err := s.ReadvertiseTender(context.Background(), source.Id.String(), &entity.CreateTenderInput{
		Name:               "Water Supply Works (re-advertised)",
		SubmissionDeadline: time.Now().Add(240 * time.Hour),
	}, "buyer-1")
	require.NoError(t, err)
	require.Equal(t, replacement.Id.String(), out.Id)

	// the replacement always belongs to the source tender's organization
	require.Equal(t, source.OrganizationId.String(), copiedInput.OrganizationId)

	require.Len(t, auditRepo.Entries, 1)
	require.Equal(t, common.AuditTenderReadvertise, auditRepo.Entries[0].Action)
}

func TestGetTenderByIdNotFound(t *testing.T) {
	s, _, _ := newTenderServiceWithMocks()

	_, err := s.GetTenderById(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, ErrTenderNotFound)
}
