package service

import (
	"context"
	"tender-marketplace-api/internal/common"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo"
	"tender-marketplace-api/internal/repo/repo_errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type bidServiceMocks struct {
	bid         *mockBidRepo
	tender      *mockTenderRepo
	requirement *mockRequirementRepo
	evidence    *mockEvidenceRepo
	audit       *mockAuditRepo
}

func newBidServiceWithMocks() (*BidService, *bidServiceMocks) {
	m := &bidServiceMocks{
		bid:         &mockBidRepo{},
		tender:      &mockTenderRepo{},
		requirement: &mockRequirementRepo{},
		evidence:    &mockEvidenceRepo{},
		audit:       &mockAuditRepo{},
	}
	s := NewBidService(&repo.Repositories{
		Bid:         m.bid,
		Tender:      m.tender,
		Requirement: m.requirement,
		Evidence:    m.evidence,
		Audit:       m.audit,
	})

	return s, m
}

func publishedTender() *entity.Tender {
	return &entity.Tender{
		Id:                 uuid.New(),
		Name:               "Road Rehabilitation",
		Status:             common.TenderPublished,
		OrganizationId:     uuid.New(),
		SubmissionDeadline: time.Now().Add(48 * time.Hour),
	}
}

func draftBid(tenderId uuid.UUID) *entity.Bid {
	return &entity.Bid{
		Id:         uuid.New(),
		TenderId:   tenderId,
		BidderId:   uuid.New(),
		Status:     common.BidDraft,
		TotalPrice: dec("100000"),
		Currency:   "USD",
	}
}

func TestCreateBidRejectsUnpublishedTender(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	tender.Status = common.TenderCreated
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	_, err := s.CreateBid(context.Background(), &entity.CreateBidInput{
		TenderId: tender.Id.String(), BidderId: uuid.NewString(),
	})
	require.ErrorIs(t, err, ErrTenderNotPublished)
}

func TestCreateBidRejectsPassedDeadline(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	tender.SubmissionDeadline = time.Now().Add(-time.Minute)
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	_, err := s.CreateBid(context.Background(), &entity.CreateBidInput{
		TenderId: tender.Id.String(), BidderId: uuid.NewString(),
	})
	require.ErrorIs(t, err, ErrSubmissionDeadlinePassed)
}

func TestCreateBidTranslatesDuplicate(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}
	m.bid.CreateBidWithResponsesFunc = func(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) (uuid.UUID, error) {
		return uuid.Nil, repo_errors.ErrAlreadyExists
	}

	_, err := s.CreateBid(context.Background(), &entity.CreateBidInput{
		TenderId: tender.Id.String(), BidderId: uuid.NewString(),
	})
	require.ErrorIs(t, err, ErrBidAlreadyExists)
}

func TestCreateBidRejectsForeignRequirement(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}
	m.requirement.GetFinancialRequirementByIdFunc = func(ctx context.Context, id string) (*entity.FinancialRequirement, error) {
		// belongs to some other tender
		return &entity.FinancialRequirement{Id: uuid.New(), TenderId: uuid.New()}, nil
	}

	created := false
	m.bid.CreateBidWithResponsesFunc = func(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) (uuid.UUID, error) {
		created = true
		return uuid.New(), nil
	}

	_, err := s.CreateBid(context.Background(), &entity.CreateBidInput{
		TenderId: tender.Id.String(), BidderId: uuid.NewString(),
		Responses: entity.ResponseSetInput{
			Financial: []entity.FinancialResponseInput{
				{RequirementId: uuid.NewString(), ProvidedValue: dec("10")},
			},
		},
	})
	require.ErrorIs(t, err, ErrRequirementNotFound)
	require.False(t, created, "a bad response anywhere must reject the whole batch")
}

func TestCreateBidEvaluatesAndComputes(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	financialReq := &entity.FinancialRequirement{Id: uuid.New(), TenderId: tender.Id, Minimum: decPtr("1.0")}
	scheduleItem := &entity.ScheduleItem{Id: uuid.New(), TenderId: tender.Id, Quantity: dec("12")}

	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}
	m.requirement.GetFinancialRequirementByIdFunc = func(ctx context.Context, id string) (*entity.FinancialRequirement, error) {
		return financialReq, nil
	}
	m.requirement.GetScheduleItemByIdFunc = func(ctx context.Context, id string) (*entity.ScheduleItem, error) {
		return scheduleItem, nil
	}

	var persisted *entity.ResponseSet
	bidId := uuid.New()
	m.bid.CreateBidWithResponsesFunc = func(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) (uuid.UUID, error) {
		persisted = responses
		return bidId, nil
	}
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		b := draftBid(tender.Id)
		b.Id = bidId
		return b, nil
	}

	out, err := s.CreateBid(context.Background(), &entity.CreateBidInput{
		TenderId: tender.Id.String(), BidderId: uuid.NewString(),
		TotalPrice: dec("100000"), Currency: "USD", ValidityDays: 90,
		Responses: entity.ResponseSetInput{
			Financial: []entity.FinancialResponseInput{
				{RequirementId: financialReq.Id.String(), ProvidedValue: dec("0.8")},
			},
			Schedule: []entity.ScheduleResponseInput{
				{ScheduleItemId: scheduleItem.Id.String(), UnitPrice: dec("2.50")},
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, bidId.String(), out.Id)

	require.Len(t, persisted.Financial, 1)
	require.False(t, persisted.Financial[0].Complied)

	require.Len(t, persisted.Schedule, 1)
	require.True(t, persisted.Schedule[0].TotalPrice.Equal(dec("30")))
}

func TestCreateBidJvContributionBoundary(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	financialReq := &entity.FinancialRequirement{Id: uuid.New(), TenderId: tender.Id}
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}
	m.requirement.GetFinancialRequirementByIdFunc = func(ctx context.Context, id string) (*entity.FinancialRequirement, error) {
		return financialReq, nil
	}
	bidId := uuid.New()
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		b := draftBid(tender.Id)
		b.Id = bidId
		return b, nil
	}

	input := func(jv string) *entity.CreateBidInput {
		return &entity.CreateBidInput{
			TenderId: tender.Id.String(), BidderId: uuid.NewString(),
			Responses: entity.ResponseSetInput{
				Financial: []entity.FinancialResponseInput{
					{RequirementId: financialReq.Id.String(), ProvidedValue: dec("10"), JvContribution: decPtr(jv)},
				},
			},
		}
	}

	// 100 passes at the response level even though the submit gate rejects it
	_, err := s.CreateBid(context.Background(), input("100"))
	require.NoError(t, err)

	_, err = s.CreateBid(context.Background(), input("100.5"))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCreateBidLitigationExclusivity(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	_, err := s.CreateBid(context.Background(), &entity.CreateBidInput{
		TenderId: tender.Id.String(), BidderId: uuid.NewString(),
		Responses: entity.ResponseSetInput{
			Litigation: &entity.LitigationResponseInput{NoLitigation: true, LitigationIds: []string{uuid.NewString()}},
		},
	})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestUpdateBidRejectsNonDraft(t *testing.T) {
	s, m := newBidServiceWithMocks()

	bid := draftBid(uuid.New())
	bid.Status = common.BidSubmitted
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}

	_, err := s.UpdateBid(context.Background(), &entity.UpdateBidInput{BidId: bid.Id.String()})
	require.ErrorIs(t, err, ErrBidNotEditable)
}

func TestUpdateBidLosesGuardRace(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	bid := draftBid(tender.Id)
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}
	m.bid.ReplaceBidWithResponsesFunc = func(ctx context.Context, b *entity.Bid, responses *entity.ResponseSet) error {
		// the guarded update matched no rows: the bid left draft concurrently
		return repo_errors.ErrNotFound
	}

	_, err := s.UpdateBid(context.Background(), &entity.UpdateBidInput{BidId: bid.Id.String()})
	require.ErrorIs(t, err, ErrBidNotEditable)
}

func TestSubmitBidNotReady(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	bid := draftBid(tender.Id)
	bid.Status = common.BidWithdrawn
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	submitted := false
	m.bid.SubmitBidFunc = func(ctx context.Context, bidId string, newStatus string) error {
		submitted = true
		return nil
	}

	readiness, err := s.SubmitBid(context.Background(), bid.Id.String(), "buyer-1")
	require.ErrorIs(t, err, ErrBidNotReady)
	require.NotNil(t, readiness)
	require.False(t, readiness.IsReady)
	require.NotEmpty(t, readiness.Errors)
	require.False(t, submitted)
	require.Empty(t, m.audit.Entries)
}

func TestSubmitBidSuccess(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	bid := draftBid(tender.Id)
	bid.CompletionComplied = true
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	var submittedStatus string
	m.bid.SubmitBidFunc = func(ctx context.Context, bidId string, newStatus string) error {
		submittedStatus = newStatus
		return nil
	}

	readiness, err := s.SubmitBid(context.Background(), bid.Id.String(), "buyer-1")
	require.NoError(t, err)
	require.True(t, readiness.IsReady)
	require.Equal(t, common.BidSubmitted, submittedStatus)

	require.Len(t, m.audit.Entries, 1)
	require.Equal(t, common.AuditBidSubmitted, m.audit.Entries[0].Action)
	require.Equal(t, "buyer-1", m.audit.Entries[0].Actor)
}

func TestSubmitBidLosesRace(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	bid := draftBid(tender.Id)
	bid.CompletionComplied = true
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}
	m.bid.SubmitBidFunc = func(ctx context.Context, bidId string, newStatus string) error {
		return repo_errors.ErrNotFound
	}

	_, err := s.SubmitBid(context.Background(), bid.Id.String(), "buyer-1")
	require.ErrorIs(t, err, ErrBidNotEditable)
	require.Empty(t, m.audit.Entries)
}

func TestUpdateBidStatusTransitions(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{common.BidDraft, common.BidWithdrawn, true},
		{common.BidDraft, common.BidSubmitted, false},
		{common.BidSubmitted, common.BidUnderEvaluation, true},
		{common.BidSubmitted, common.BidAccepted, false},
		{common.BidUnderEvaluation, common.BidAccepted, true},
		{common.BidUnderEvaluation, common.BidRejected, true},
		{common.BidAccepted, common.BidRejected, false},
		{common.BidWithdrawn, common.BidDraft, false},
	}

	for _, tc := range cases {
		s, m := newBidServiceWithMocks()
		bid := draftBid(uuid.New())
		bid.Status = tc.from
		m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
			return bid, nil
		}

		_, err := s.UpdateBidStatus(context.Background(), bid.Id.String(), tc.to, "evaluator-1")
		if tc.allowed {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			require.ErrorIs(t, err, ErrIllegalStatusTransition, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestUpdateBidStatusAuditsDecision(t *testing.T) {
	s, m := newBidServiceWithMocks()

	bid := draftBid(uuid.New())
	bid.Status = common.BidUnderEvaluation
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}

	_, err := s.UpdateBidStatus(context.Background(), bid.Id.String(), common.BidAccepted, "evaluator-1")
	require.NoError(t, err)
	require.Len(t, m.audit.Entries, 1)
	require.Equal(t, common.AuditBidDecision, m.audit.Entries[0].Action)
}

func TestAddBidDocumentRejectsForeignRequirement(t *testing.T) {
	s, m := newBidServiceWithMocks()

	bid := draftBid(uuid.New())
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}
	m.requirement.GetRequiredDocumentByIdFunc = func(ctx context.Context, id string) (*entity.RequiredDocument, error) {
		return &entity.RequiredDocument{Id: uuid.New(), TenderId: uuid.New()}, nil
	}

	_, err := s.AddBidDocument(context.Background(), &entity.CreateBidDocumentInput{
		BidId: bid.Id.String(), RequirementId: uuid.NewString(),
		FileName: "registration.pdf", FileRef: "s3://bucket/registration.pdf",
	})
	require.ErrorIs(t, err, ErrDocumentWrongTender)
}

func TestDeleteBidDocumentRequiresDraft(t *testing.T) {
	s, m := newBidServiceWithMocks()

	bid := draftBid(uuid.New())
	bid.Status = common.BidSubmitted
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}

	err := s.DeleteBidDocument(context.Background(), bid.Id.String(), uuid.NewString())
	require.ErrorIs(t, err, ErrBidNotEditable)
}

func TestGetOpeningReportRejectsDraft(t *testing.T) {
	s, m := newBidServiceWithMocks()

	bid := draftBid(uuid.New())
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}

	_, err := s.GetOpeningReport(context.Background(), bid.Id.String())
	require.ErrorIs(t, err, ErrBidNotSubmitted)
}

func TestGetOpeningReportListsMissingDocuments(t *testing.T) {
	s, m := newBidServiceWithMocks()

	tender := publishedTender()
	bid := draftBid(tender.Id)
	bid.Status = common.BidSubmitted
	m.bid.GetBidByIdFunc = func(ctx context.Context, id string) (*entity.Bid, error) {
		return bid, nil
	}
	m.tender.GetTenderByIdFunc = func(ctx context.Context, id string) (*entity.Tender, error) {
		return tender, nil
	}

	submitted := entity.RequiredDocument{Id: uuid.New(), Name: "Power of Attorney", IsRequired: true}
	missing := entity.RequiredDocument{Id: uuid.New(), Name: "Tax Clearance", IsRequired: true}
	m.requirement.GetRequiredDocumentsByTenderIdFunc = func(ctx context.Context, tenderId string) ([]entity.RequiredDocument, error) {
		return []entity.RequiredDocument{submitted, missing}, nil
	}
	m.bid.GetBidDocumentsFunc = func(ctx context.Context, bidId string) ([]entity.BidDocument, error) {
		return []entity.BidDocument{{Id: uuid.New(), BidId: bid.Id, RequirementId: submitted.Id}}, nil
	}

	report, err := s.GetOpeningReport(context.Background(), bid.Id.String())
	require.NoError(t, err)
	require.Equal(t, tender.Name, report.TenderName)
	require.Equal(t, []string{"Tax Clearance"}, report.MissingDocuments)
}
