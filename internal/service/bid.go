package service

import (
	"context"
	"errors"
	"tender-marketplace-api/internal/common"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo"
	"tender-marketplace-api/internal/repo/repo_errors"
	"time"

	"github.com/google/uuid"
)

type BidService struct {
	bidRepo         repo.Bid
	tenderRepo      repo.Tender
	requirementRepo repo.Requirement
	evidenceRepo    repo.Evidence
	auditRepo       repo.Audit
}

func NewBidService(repos *repo.Repositories) *BidService {
	return &BidService{
		bidRepo:         repos.Bid,
		tenderRepo:      repos.Tender,
		requirementRepo: repos.Requirement,
		evidenceRepo:    repos.Evidence,
		auditRepo:       repos.Audit,
	}
}

// CreateBid validates and evaluates the whole nested payload before a single
// row is written; the repo then persists bid and responses in one
// transaction, so a bad response anywhere rejects the entire batch.
func (s *BidService) CreateBid(ctx context.Context, input *entity.CreateBidInput) (*entity.BidOutputModel, error) {
	tender, err := s.tenderRepo.GetTenderById(ctx, input.TenderId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, err
	}

	if tender.Status != common.TenderPublished {
		return nil, ErrTenderNotPublished
	}
	if !time.Now().Before(tender.SubmissionDeadline) {
		return nil, ErrSubmissionDeadlinePassed
	}

	bidderUuid, err := uuid.Parse(input.BidderId)
	if err != nil {
		return nil, err
	}

	responses, err := s.buildResponseSet(ctx, tender, &input.Responses)
	if err != nil {
		return nil, err
	}

	bid := &entity.Bid{
		TenderId:               tender.Id,
		BidderId:               bidderUuid,
		TotalPrice:             input.TotalPrice,
		Currency:               input.Currency,
		ValidityDays:           input.ValidityDays,
		JvPartner:              input.JvPartner,
		JvPercentage:           input.JvPercentage,
		CompletionComplied:     input.CompletionComplied,
		ProposedCompletionDays: input.ProposedCompletionDays,
	}

	bidId, err := s.bidRepo.CreateBidWithResponses(ctx, bid, responses)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrBidAlreadyExists
		}

		return nil, err
	}

	return s.GetBidById(ctx, bidId.String())
}

// UpdateBid fully replaces the bid's fields and its nested response
// collections. Existing response records are dropped and recreated, so
// response ids change on every update.
func (s *BidService) UpdateBid(ctx context.Context, input *entity.UpdateBidInput) (*entity.BidOutputModel, error) {
	bid, err := s.bidRepo.GetBidById(ctx, input.BidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	if bid.Status != common.BidDraft {
		return nil, ErrBidNotEditable
	}

	tender, err := s.tenderRepo.GetTenderById(ctx, bid.TenderId.String())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, err
	}

	responses, err := s.buildResponseSet(ctx, tender, &input.Responses)
	if err != nil {
		return nil, err
	}

	bid.TotalPrice = input.TotalPrice
	bid.Currency = input.Currency
	bid.ValidityDays = input.ValidityDays
	bid.JvPartner = input.JvPartner
	bid.JvPercentage = input.JvPercentage
	bid.CompletionComplied = input.CompletionComplied
	bid.ProposedCompletionDays = input.ProposedCompletionDays

	if err = s.bidRepo.ReplaceBidWithResponses(ctx, bid, responses); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotEditable
		}

		return nil, err
	}

	return s.GetBidById(ctx, bid.Id.String())
}

// buildResponseSet resolves every nested payload against the tender's
// requirement catalog and the bidder's evidence records, runs the compliance
// evaluators and returns fully computed response rows ready to persist.
func (s *BidService) buildResponseSet(ctx context.Context, tender *entity.Tender, input *entity.ResponseSetInput) (*entity.ResponseSet, error) {
	set := &entity.ResponseSet{}

	for _, in := range input.Financial {
		if err := validateJvContribution("financial.jvContribution", in.JvContribution); err != nil {
			return nil, err
		}

		req, err := s.requirementRepo.GetFinancialRequirementById(ctx, in.RequirementId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrRequirementNotFound
			}

			return nil, err
		}
		if req.TenderId != tender.Id {
			return nil, ErrRequirementNotFound
		}

		resp := entity.FinancialResponse{
			RequirementId:  req.Id,
			ActualValue:    in.ProvidedValue,
			Complied:       EvaluateFinancial(req, in.ProvidedValue),
			JvContribution: in.JvContribution,
		}
		if in.StatementId != nil {
			statement, err := s.evidenceRepo.GetFinancialStatementById(ctx, *in.StatementId)
			if err != nil {
				if errors.Is(err, repo_errors.ErrNotFound) {
					return nil, ErrEvidenceNotFound
				}

				return nil, err
			}
			resp.StatementId = &statement.Id
		}
		set.Financial = append(set.Financial, resp)
	}

	for _, in := range input.Turnover {
		if err := validateJvContribution("turnover.jvContribution", in.JvContribution); err != nil {
			return nil, err
		}
		if len(in.TurnoverIds) == 0 {
			return nil, newValidationError("turnover.turnoverIds", "link at least one annual turnover record")
		}

		req, err := s.requirementRepo.GetTurnoverRequirementById(ctx, in.RequirementId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrRequirementNotFound
			}

			return nil, err
		}
		if req.TenderId != tender.Id {
			return nil, ErrRequirementNotFound
		}

		evidence, err := s.evidenceRepo.GetAnnualTurnoversByIds(ctx, in.TurnoverIds)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrEvidenceNotFound
			}

			return nil, err
		}

		actual, currency := AggregateTurnover(evidence)
		turnoverIds := make([]uuid.UUID, 0, len(evidence))
		for _, t := range evidence {
			turnoverIds = append(turnoverIds, t.Id)
		}

		set.Turnover = append(set.Turnover, entity.TurnoverResponse{
			RequirementId:  req.Id,
			TurnoverIds:    turnoverIds,
			ActualAmount:   actual,
			Currency:       currency,
			Complied:       EvaluateTurnover(req, actual),
			JvContribution: in.JvContribution,
		})
	}

	for _, in := range input.Experience {
		if err := validateJvContribution("experience.jvContribution", in.JvContribution); err != nil {
			return nil, err
		}

		req, err := s.requirementRepo.GetExperienceRequirementById(ctx, in.RequirementId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrRequirementNotFound
			}

			return nil, err
		}
		if req.TenderId != tender.Id {
			return nil, ErrRequirementNotFound
		}

		resp := entity.ExperienceResponse{
			RequirementId:  req.Id,
			JvContribution: in.JvContribution,
		}
		var evidence *entity.CompanyExperience
		if in.ExperienceId != nil {
			evidence, err = s.evidenceRepo.GetCompanyExperienceById(ctx, *in.ExperienceId)
			if err != nil {
				if errors.Is(err, repo_errors.ErrNotFound) {
					return nil, ErrEvidenceNotFound
				}

				return nil, err
			}
			resp.ExperienceId = &evidence.Id
		}
		resp.Complied = EvaluateExperience(req, evidence)
		set.Experience = append(set.Experience, resp)
	}

	for _, in := range input.Personnel {
		if err := validateJvContribution("personnel.jvContribution", in.JvContribution); err != nil {
			return nil, err
		}

		req, err := s.requirementRepo.GetPersonnelRequirementById(ctx, in.RequirementId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrRequirementNotFound
			}

			return nil, err
		}
		if req.TenderId != tender.Id {
			return nil, ErrRequirementNotFound
		}

		resp := entity.PersonnelResponse{
			RequirementId:  req.Id,
			JvContribution: in.JvContribution,
		}
		var evidence *entity.CompanyPersonnel
		if in.PersonnelId != nil {
			evidence, err = s.evidenceRepo.GetCompanyPersonnelById(ctx, *in.PersonnelId)
			if err != nil {
				if errors.Is(err, repo_errors.ErrNotFound) {
					return nil, ErrEvidenceNotFound
				}

				return nil, err
			}
			resp.PersonnelId = &evidence.Id
		}
		resp.Complied = EvaluatePersonnel(req, evidence)
		set.Personnel = append(set.Personnel, resp)
	}

	for _, in := range input.Office {
		office, err := s.evidenceRepo.GetCompanyOfficeById(ctx, in.OfficeId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrEvidenceNotFound
			}

			return nil, err
		}
		set.Office = append(set.Office, entity.OfficeResponse{OfficeId: office.Id})
	}

	for _, in := range input.SourceOfFund {
		if len(in.SourceIds) == 0 {
			return nil, newValidationError("sourceOfFund.sourceIds", "link at least one funding source")
		}

		sources, err := s.evidenceRepo.GetFundingSourcesByIds(ctx, in.SourceIds)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrEvidenceNotFound
			}

			return nil, err
		}

		total, currency := AggregateFundingSources(sources)
		sourceIds := make([]uuid.UUID, 0, len(sources))
		for _, src := range sources {
			sourceIds = append(sourceIds, src.Id)
		}

		set.SourceOfFund = append(set.SourceOfFund, entity.SourceOfFundResponse{
			SourceIds:   sourceIds,
			TotalAmount: total,
			Currency:    currency,
		})
	}

	if input.Litigation != nil {
		if err := validateLitigationExclusivity(input.Litigation.NoLitigation, input.Litigation.LitigationIds); err != nil {
			return nil, err
		}

		resp := entity.LitigationResponse{NoLitigation: input.Litigation.NoLitigation}
		if len(input.Litigation.LitigationIds) > 0 {
			litigations, err := s.evidenceRepo.GetCompanyLitigationsByIds(ctx, input.Litigation.LitigationIds)
			if err != nil {
				if errors.Is(err, repo_errors.ErrNotFound) {
					return nil, ErrEvidenceNotFound
				}

				return nil, err
			}
			for _, l := range litigations {
				resp.LitigationIds = append(resp.LitigationIds, l.Id)
			}
		}
		set.Litigation = &resp
	}

	for _, in := range input.Schedule {
		item, err := s.requirementRepo.GetScheduleItemById(ctx, in.ScheduleItemId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrRequirementNotFound
			}

			return nil, err
		}
		if item.TenderId != tender.Id {
			return nil, ErrRequirementNotFound
		}

		set.Schedule = append(set.Schedule, entity.ScheduleResponse{
			ScheduleItemId: item.Id,
			UnitPrice:      in.UnitPrice,
			TotalPrice:     item.Quantity.Mul(in.UnitPrice),
		})
	}

	for _, in := range input.Technical {
		spec, err := s.requirementRepo.GetTechnicalSpecificationById(ctx, in.SpecificationId)
		if err != nil {
			if errors.Is(err, repo_errors.ErrNotFound) {
				return nil, ErrRequirementNotFound
			}

			return nil, err
		}
		if spec.TenderId != tender.Id {
			return nil, ErrRequirementNotFound
		}

		set.Technical = append(set.Technical, entity.TechnicalResponse{
			SpecificationId: spec.Id,
			Complied:        in.Complied,
			Remarks:         in.Remarks,
		})
	}

	return set, nil
}

func (s *BidService) GetBidById(ctx context.Context, bidId string) (*entity.BidOutputModel, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	responses, err := s.bidRepo.GetResponseSetByBidId(ctx, bidId)
	if err != nil {
		return nil, err
	}

	out := mapBid(bid)
	out.Responses = responses

	return out, nil
}

func (s *BidService) GetUserBids(ctx context.Context, bidderId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	bids, err := s.bidRepo.GetUserBids(ctx, bidderId, pg)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}

func (s *BidService) GetTenderBids(ctx context.Context, tenderId string, pg *entity.PaginationInput) ([]entity.BidOutputModel, error) {
	if _, err := s.tenderRepo.GetTenderById(ctx, tenderId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTenderNotFound
		}

		return nil, err
	}

	bids, err := s.bidRepo.GetTenderBids(ctx, tenderId, pg)
	if err != nil {
		return nil, err
	}

	return mapBids(bids), nil
}

// ValidateSubmit is the dry-run readiness check. It loads everything the
// checker needs and returns the verdict without touching state.
func (s *BidService) ValidateSubmit(ctx context.Context, bidId string) (*entity.SubmitReadiness, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	tender, err := s.tenderRepo.GetTenderById(ctx, bid.TenderId.String())
	if err != nil {
		return nil, err
	}

	requiredDocs, err := s.requirementRepo.GetRequiredDocumentsByTenderId(ctx, tender.Id.String())
	if err != nil {
		return nil, err
	}

	submittedDocs, err := s.bidRepo.GetBidDocuments(ctx, bidId)
	if err != nil {
		return nil, err
	}

	readiness := CheckSubmitReadiness(SubmitCheckInput{
		Bid:                bid,
		Tender:             tender,
		RequiredDocuments:  requiredDocs,
		SubmittedDocuments: submittedDocs,
		Now:                time.Now(),
	})

	return &readiness, nil
}

// SubmitBid runs the readiness checker and, when the bid is ready, flips it
// to Submitted with a stamped submission date. A failing check leaves the
// bid in Draft and surfaces the accumulated messages alongside
// ErrBidNotReady.
func (s *BidService) SubmitBid(ctx context.Context, bidId string, actor string) (*entity.SubmitReadiness, error) {
	readiness, err := s.ValidateSubmit(ctx, bidId)
	if err != nil {
		return nil, err
	}

	if !readiness.IsReady {
		return readiness, ErrBidNotReady
	}

	if err = s.bidRepo.SubmitBid(ctx, bidId, common.BidSubmitted); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			// lost the race: another request already moved the bid out of draft
			return nil, ErrBidNotEditable
		}

		return nil, err
	}

	bidUuid, _ := uuid.Parse(bidId)
	_ = s.auditRepo.Append(ctx, &entity.AuditEntry{
		Actor:      actor,
		Action:     common.AuditBidSubmitted,
		ObjectType: "bid",
		ObjectId:   bidUuid,
		Detail:     "bid submitted",
	})

	return readiness, nil
}

var bidTransitions = map[string][]string{
	common.BidDraft:           {common.BidWithdrawn},
	common.BidSubmitted:       {common.BidUnderEvaluation, common.BidWithdrawn},
	common.BidUnderEvaluation: {common.BidAccepted, common.BidRejected},
}

// UpdateBidStatus applies evaluator and withdrawal transitions. Submission
// is excluded here on purpose: draft -> submitted only happens through
// SubmitBid, which runs the readiness gate.
func (s *BidService) UpdateBidStatus(ctx context.Context, bidId string, newStatus string, actor string) (*entity.BidOutputModel, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	allowed := false
	for _, status := range bidTransitions[bid.Status] {
		if status == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrIllegalStatusTransition
	}

	if err = s.bidRepo.UpdateBidStatusById(ctx, bidId, newStatus); err != nil {
		return nil, err
	}

	if newStatus == common.BidAccepted || newStatus == common.BidRejected {
		_ = s.auditRepo.Append(ctx, &entity.AuditEntry{
			Actor:      actor,
			Action:     common.AuditBidDecision,
			ObjectType: "bid",
			ObjectId:   bid.Id,
			Detail:     "decision: " + newStatus,
		})
	}

	bid, err = s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		return nil, err
	}

	return mapBid(bid), nil
}

// AddBidDocument binds an uploaded file reference to one of the tender's
// required documents. A requirement belonging to another tender is rejected.
func (s *BidService) AddBidDocument(ctx context.Context, input *entity.CreateBidDocumentInput) (*entity.BidDocument, error) {
	bid, err := s.bidRepo.GetBidById(ctx, input.BidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	if bid.Status != common.BidDraft {
		return nil, ErrBidNotEditable
	}

	requirement, err := s.requirementRepo.GetRequiredDocumentById(ctx, input.RequirementId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRequirementNotFound
		}

		return nil, err
	}

	if requirement.TenderId != bid.TenderId {
		return nil, ErrDocumentWrongTender
	}

	documentId, err := s.bidRepo.CreateBidDocument(ctx, input)
	if err != nil {
		return nil, err
	}

	docs, err := s.bidRepo.GetBidDocuments(ctx, input.BidId)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].Id == documentId {
			return &docs[i], nil
		}
	}

	return nil, ErrDocumentNotFound
}

func (s *BidService) GetBidDocuments(ctx context.Context, bidId string) ([]entity.BidDocument, error) {
	if _, err := s.bidRepo.GetBidById(ctx, bidId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	return s.bidRepo.GetBidDocuments(ctx, bidId)
}

func (s *BidService) DeleteBidDocument(ctx context.Context, bidId, documentId string) error {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrBidNotFound
		}

		return err
	}

	if bid.Status != common.BidDraft {
		return ErrBidNotEditable
	}

	if err = s.bidRepo.DeleteBidDocument(ctx, documentId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrDocumentNotFound
		}

		return err
	}

	return nil
}

// GetOpeningReport builds the structured opening summary for a bid that has
// left draft. Rendering to PDF is an external concern; this is the data the
// renderer consumes.
func (s *BidService) GetOpeningReport(ctx context.Context, bidId string) (*entity.OpeningReport, error) {
	bid, err := s.bidRepo.GetBidById(ctx, bidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrBidNotFound
		}

		return nil, err
	}

	if bid.Status == common.BidDraft || bid.Status == common.BidWithdrawn {
		return nil, ErrBidNotSubmitted
	}

	tender, err := s.tenderRepo.GetTenderById(ctx, bid.TenderId.String())
	if err != nil {
		return nil, err
	}

	docs, err := s.bidRepo.GetBidDocuments(ctx, bidId)
	if err != nil {
		return nil, err
	}

	responses, err := s.bidRepo.GetResponseSetByBidId(ctx, bidId)
	if err != nil {
		return nil, err
	}

	requiredDocs, err := s.requirementRepo.GetRequiredDocumentsByTenderId(ctx, tender.Id.String())
	if err != nil {
		return nil, err
	}

	submitted := make(map[string]bool, len(docs))
	for _, doc := range docs {
		submitted[doc.RequirementId.String()] = true
	}
	missing := make([]string, 0)
	for _, required := range requiredDocs {
		if required.IsRequired && !submitted[required.Id.String()] {
			missing = append(missing, required.Name)
		}
	}

	return &entity.OpeningReport{
		Bid:                mapBid(bid),
		TenderName:         tender.Name,
		SubmittedDocuments: docs,
		FinancialResponses: responses.Financial,
		MissingDocuments:   missing,
	}, nil
}
