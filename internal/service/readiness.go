package service

import (
	"fmt"
	"tender-marketplace-api/internal/common"
	"tender-marketplace-api/internal/entity"
	"time"
)

// SubmitCheckInput bundles everything the readiness checker looks at. The
// caller loads the records; the checker itself never touches storage and
// never mutates anything, so it is safe for both the dry-run endpoint and
// the submit path.
type SubmitCheckInput struct {
	Bid                *entity.Bid
	Tender             *entity.Tender
	RequiredDocuments  []entity.RequiredDocument
	SubmittedDocuments []entity.BidDocument
	Now                time.Time
}

// CheckSubmitReadiness runs every submission precondition and accumulates
// one message per failing check. It never short-circuits: a bid that fails
// three checks gets three messages.
func CheckSubmitReadiness(in SubmitCheckInput) entity.SubmitReadiness {
	errs := make([]string, 0)

	if in.Bid.Status != common.BidDraft {
		errs = append(errs, fmt.Sprintf("bid status must be %s, current status is %s", common.BidDraft, in.Bid.Status))
	}

	if !in.Now.Before(in.Tender.SubmissionDeadline) {
		errs = append(errs, "tender submission deadline has passed")
	}

	if in.Tender.CompletionPeriodDays != nil &&
		!in.Bid.CompletionComplied && in.Bid.ProposedCompletionDays == nil {
		errs = append(errs, "completion period not addressed: confirm compliance or propose completion days")
	}

	if in.Bid.ProposedCompletionDays != nil && !in.Tender.AllowAlternativeDelivery {
		errs = append(errs, "tender does not allow alternative delivery, remove proposed completion days")
	}

	// Stricter than the response-level jv check: 0 and 100 are rejected
	// here. The boundary disagreement is deliberate, do not unify.
	if in.Bid.JvPartner != nil {
		p := in.Bid.JvPercentage
		if p == nil {
			errs = append(errs, "joint venture partner declared but no jv percentage given")
		} else if !p.IsPositive() || p.GreaterThanOrEqual(oneHundred) {
			errs = append(errs, "jv percentage must be strictly between 0 and 100")
		}
	}

	submitted := make(map[string]bool, len(in.SubmittedDocuments))
	for _, doc := range in.SubmittedDocuments {
		submitted[doc.RequirementId.String()] = true
	}
	for _, required := range in.RequiredDocuments {
		if !required.IsRequired {
			continue
		}
		if !submitted[required.Id.String()] {
			errs = append(errs, fmt.Sprintf("required document missing: %s", required.Name))
		}
	}

	return entity.SubmitReadiness{
		IsReady: len(errs) == 0,
		Errors:  errs,
	}
}
