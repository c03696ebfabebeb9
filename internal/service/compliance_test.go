package service

import (
	"tender-marketplace-api/internal/entity"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestEvaluateFinancial(t *testing.T) {
	min := dec("1.5")
	req := &entity.FinancialRequirement{Minimum: &min}

	require.True(t, EvaluateFinancial(req, dec("1.5")))
	require.True(t, EvaluateFinancial(req, dec("2.0")))
	require.False(t, EvaluateFinancial(req, dec("1.49")))
}

func TestEvaluateFinancialWithoutMinimum(t *testing.T) {
	req := &entity.FinancialRequirement{}

	require.True(t, EvaluateFinancial(req, dec("-100")))
}

func TestAggregateTurnover(t *testing.T) {
	evidence := []entity.AnnualTurnover{
		{Amount: dec("100"), Currency: "EUR", Year: 2023},
		{Amount: dec("200"), Currency: "EUR", Year: 2024},
		{Amount: dec("600"), Currency: "USD", Year: 2025},
	}

	mean, currency := AggregateTurnover(evidence)
	require.True(t, mean.Equal(dec("300")))
	// the first record decides the currency, mixed lists are not detected
	require.Equal(t, "EUR", currency)
}

func TestAggregateTurnoverEmpty(t *testing.T) {
	mean, currency := AggregateTurnover(nil)
	require.True(t, mean.IsZero())
	require.Equal(t, "", currency)
}

func TestEvaluateTurnover(t *testing.T) {
	req := &entity.TurnoverRequirement{MinimumAmount: dec("250")}

	require.True(t, EvaluateTurnover(req, dec("250")))
	require.False(t, EvaluateTurnover(req, dec("249.99")))
}

func TestEvaluateExperience(t *testing.T) {
	req := &entity.ExperienceRequirement{MinContracts: 3, MinValue: dec("1000")}

	require.False(t, EvaluateExperience(req, nil))
	require.False(t, EvaluateExperience(req, &entity.CompanyExperience{ContractCount: 2, ContractValue: dec("5000")}))
	require.False(t, EvaluateExperience(req, &entity.CompanyExperience{ContractCount: 3, ContractValue: dec("999")}))
	require.True(t, EvaluateExperience(req, &entity.CompanyExperience{ContractCount: 3, ContractValue: dec("1000")}))
}

func TestEvaluatePersonnel(t *testing.T) {
	req := &entity.PersonnelRequirement{MinExperienceYears: 5}

	require.False(t, EvaluatePersonnel(req, nil))
	require.False(t, EvaluatePersonnel(req, &entity.CompanyPersonnel{YearsOfExperience: 4}))
	require.True(t, EvaluatePersonnel(req, &entity.CompanyPersonnel{YearsOfExperience: 5}))
}

func TestAggregateFundingSources(t *testing.T) {
	sources := []entity.FundingSource{
		{Amount: dec("100.50"), Currency: "USD"},
		{Amount: dec("200.25"), Currency: "EUR"},
	}

	total, currency := AggregateFundingSources(sources)
	require.True(t, total.Equal(dec("300.75")))
	require.Equal(t, "USD", currency)
}

func TestValidateLitigationExclusivity(t *testing.T) {
	require.NoError(t, validateLitigationExclusivity(true, nil))
	require.NoError(t, validateLitigationExclusivity(false, []string{"a"}))
	require.Error(t, validateLitigationExclusivity(true, []string{"a"}))
	require.Error(t, validateLitigationExclusivity(false, nil))
}

func TestValidateJvContributionBoundaries(t *testing.T) {
	require.NoError(t, validateJvContribution("f", nil))
	// both ends are inclusive at the response level
	require.NoError(t, validateJvContribution("f", decPtr("0")))
	require.NoError(t, validateJvContribution("f", decPtr("100")))
	require.NoError(t, validateJvContribution("f", decPtr("55.5")))
	require.Error(t, validateJvContribution("f", decPtr("-0.01")))
	require.Error(t, validateJvContribution("f", decPtr("100.01")))
}
