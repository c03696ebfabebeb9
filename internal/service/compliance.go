package service

import (
	"tender-marketplace-api/internal/entity"

	"github.com/shopspring/decimal"
)

// Compliance evaluators. Each is a pure function over an already resolved
// requirement and its evidence: it computes a verdict and touches nothing
// else. Persisting the result is the caller's job.

var oneHundred = decimal.NewFromInt(100)

// EvaluateFinancial compares the provided figure against the requirement
// minimum. A requirement without a minimum is always satisfied.
func EvaluateFinancial(req *entity.FinancialRequirement, provided decimal.Decimal) bool {
	if req.Minimum == nil {
		return true
	}

	return provided.GreaterThanOrEqual(*req.Minimum)
}

// AggregateTurnover averages the linked annual turnovers and takes the
// currency of the first record. Mixed currencies are not detected; the mean
// is computed over raw amounts as-is.
func AggregateTurnover(evidence []entity.AnnualTurnover) (decimal.Decimal, string) {
	if len(evidence) == 0 {
		return decimal.Zero, ""
	}

	total := decimal.Zero
	for _, t := range evidence {
		total = total.Add(t.Amount)
	}

	mean := total.Div(decimal.NewFromInt(int64(len(evidence))))

	return mean, evidence[0].Currency
}

// EvaluateTurnover compares the aggregated amount against the requirement
// minimum.
func EvaluateTurnover(req *entity.TurnoverRequirement, actual decimal.Decimal) bool {
	return actual.GreaterThanOrEqual(req.MinimumAmount)
}

// EvaluateExperience checks the single linked company-experience record
// against the requirement minimums. No evidence means non-compliance.
func EvaluateExperience(req *entity.ExperienceRequirement, evidence *entity.CompanyExperience) bool {
	if evidence == nil {
		return false
	}

	return evidence.ContractCount >= req.MinContracts &&
		evidence.ContractValue.GreaterThanOrEqual(req.MinValue)
}

// EvaluatePersonnel compares the linked person's years of experience against
// the requirement. No evidence means non-compliance.
func EvaluatePersonnel(req *entity.PersonnelRequirement, evidence *entity.CompanyPersonnel) bool {
	if evidence == nil {
		return false
	}

	return evidence.YearsOfExperience >= req.MinExperienceYears
}

// AggregateFundingSources sums the linked sources and takes the currency of
// the first one. This is an aggregation only; sources carry no threshold.
func AggregateFundingSources(sources []entity.FundingSource) (decimal.Decimal, string) {
	if len(sources) == 0 {
		return decimal.Zero, ""
	}

	total := decimal.Zero
	for _, s := range sources {
		total = total.Add(s.Amount)
	}

	return total, sources[0].Currency
}

// validateLitigationExclusivity enforces that a litigation response declares
// exactly one of: a clean record, or a non-empty litigation list.
func validateLitigationExclusivity(noLitigation bool, litigationIds []string) error {
	if noLitigation && len(litigationIds) > 0 {
		return newValidationError("litigation", "no_litigation can't be combined with a litigation list")
	}
	if !noLitigation && len(litigationIds) == 0 {
		return newValidationError("litigation", "either declare no_litigation or link at least one litigation record")
	}

	return nil
}

// validateJvContribution applies the response-level range check: inclusive
// on both ends. The bid-level submit check is stricter (exclusive); the two
// intentionally disagree at the boundaries.
func validateJvContribution(field string, p *decimal.Decimal) error {
	if p == nil {
		return nil
	}
	if p.IsNegative() || p.GreaterThan(oneHundred) {
		return newValidationError(field, "jv contribution must be between 0 and 100")
	}

	return nil
}
