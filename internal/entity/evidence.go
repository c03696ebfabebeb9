package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Company evidence records substantiate bid responses. They are owned by the
// company account subsystem and read-only here; responses reference them by
// id and never mutate them.

type FinancialStatement struct {
	Id        uuid.UUID       `json:"id" db:"id"`
	CompanyId uuid.UUID       `json:"companyId" db:"company_id"`
	Label     string          `json:"label" db:"label"`
	Value     decimal.Decimal `json:"value" db:"value"`
	Year      int             `json:"year" db:"year"`
}

type AnnualTurnover struct {
	Id        uuid.UUID       `json:"id" db:"id"`
	CompanyId uuid.UUID       `json:"companyId" db:"company_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Currency  string          `json:"currency" db:"currency"`
	Year      int             `json:"year" db:"year"`
}

type CompanyExperience struct {
	Id            uuid.UUID       `json:"id" db:"id"`
	CompanyId     uuid.UUID       `json:"companyId" db:"company_id"`
	Kind          string          `json:"kind" db:"kind"`
	ContractCount int             `json:"contractCount" db:"contract_count"`
	ContractValue decimal.Decimal `json:"contractValue" db:"contract_value"`
	Currency      string          `json:"currency" db:"currency"`
}

type CompanyPersonnel struct {
	Id                uuid.UUID `json:"id" db:"id"`
	CompanyId         uuid.UUID `json:"companyId" db:"company_id"`
	FullName          string    `json:"fullName" db:"full_name"`
	Role              string    `json:"role" db:"role"`
	Education         string    `json:"education" db:"education"`
	YearsOfExperience int       `json:"yearsOfExperience" db:"years_of_experience"`
	BirthDate         time.Time `json:"birthDate" db:"birth_date"`
}

type CompanyOffice struct {
	Id        uuid.UUID `json:"id" db:"id"`
	CompanyId uuid.UUID `json:"companyId" db:"company_id"`
	Address   string    `json:"address" db:"address"`
	Ownership string    `json:"ownership" db:"ownership"`
}

type FundingSource struct {
	Id        uuid.UUID       `json:"id" db:"id"`
	CompanyId uuid.UUID       `json:"companyId" db:"company_id"`
	Source    string          `json:"source" db:"source"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Currency  string          `json:"currency" db:"currency"`
}

type CompanyLitigation struct {
	Id          uuid.UUID       `json:"id" db:"id"`
	CompanyId   uuid.UUID       `json:"companyId" db:"company_id"`
	Year        int             `json:"year" db:"year"`
	Description string          `json:"description" db:"description"`
	Outcome     string          `json:"outcome" db:"outcome"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
}
