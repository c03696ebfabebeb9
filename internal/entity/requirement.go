package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Requirement records belong to exactly one tender and are frozen once the
// tender is published. Re-advertisement deep-copies the whole set onto a new
// tender instead of editing in place.

type FinancialRequirement struct {
	Id       uuid.UUID        `json:"id" db:"id"`
	TenderId uuid.UUID        `json:"tenderId" db:"tender_id"`
	Name     string           `json:"name" db:"name"`
	Formula  string           `json:"formula" db:"formula"`
	Minimum  *decimal.Decimal `json:"minimum" db:"minimum"`
	Unit     string           `json:"unit" db:"unit"`
	JvMode   string           `json:"jvMode" db:"jv_mode"`
}

type TurnoverRequirement struct {
	Id              uuid.UUID        `json:"id" db:"id"`
	TenderId        uuid.UUID        `json:"tenderId" db:"tender_id"`
	Label           string           `json:"label" db:"label"`
	MinimumAmount   decimal.Decimal  `json:"minimumAmount" db:"minimum_amount"`
	Currency        string           `json:"currency" db:"currency"`
	PeriodStart     time.Time        `json:"periodStart" db:"period_start"`
	PeriodEnd       time.Time        `json:"periodEnd" db:"period_end"`
	JvMode          string           `json:"jvMode" db:"jv_mode"`
	JvPercentageCap *decimal.Decimal `json:"jvPercentageCap" db:"jv_percentage_cap"`
}

type ExperienceRequirement struct {
	Id           uuid.UUID        `json:"id" db:"id"`
	TenderId     uuid.UUID        `json:"tenderId" db:"tender_id"`
	Kind         string           `json:"kind" db:"kind"`
	MinContracts int              `json:"minContracts" db:"min_contracts"`
	MinValue     decimal.Decimal  `json:"minValue" db:"min_value"`
	Currency     string           `json:"currency" db:"currency"`
	PeriodStart  time.Time        `json:"periodStart" db:"period_start"`
	PeriodEnd    time.Time        `json:"periodEnd" db:"period_end"`
	JvMode       string           `json:"jvMode" db:"jv_mode"`
	JvPercentage *decimal.Decimal `json:"jvPercentage" db:"jv_percentage"`
}

type PersonnelRequirement struct {
	Id                 uuid.UUID `json:"id" db:"id"`
	TenderId           uuid.UUID `json:"tenderId" db:"tender_id"`
	Role               string    `json:"role" db:"role"`
	MinEducation       string    `json:"minEducation" db:"min_education"`
	MinExperienceYears int       `json:"minExperienceYears" db:"min_experience_years"`
	MinAge             *int      `json:"minAge" db:"min_age"`
	MaxAge             *int      `json:"maxAge" db:"max_age"`
	Certifications     string    `json:"certifications" db:"certifications"`
	NeedsRegistration  bool      `json:"needsRegistration" db:"needs_registration"`
}

// Schedule items carry no compliance semantics, they are informational.
type ScheduleItem struct {
	Id            uuid.UUID       `json:"id" db:"id"`
	TenderId      uuid.UUID       `json:"tenderId" db:"tender_id"`
	Commodity     string          `json:"commodity" db:"commodity"`
	Unit          string          `json:"unit" db:"unit"`
	Quantity      decimal.Decimal `json:"quantity" db:"quantity"`
	Specification string          `json:"specification" db:"specification"`
}

type TechnicalSpecification struct {
	Id          uuid.UUID `json:"id" db:"id"`
	TenderId    uuid.UUID `json:"tenderId" db:"tender_id"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
}

type RequiredDocument struct {
	Id           uuid.UUID `json:"id" db:"id"`
	TenderId     uuid.UUID `json:"tenderId" db:"tender_id"`
	Name         string    `json:"name" db:"name"`
	DocumentType string    `json:"documentType" db:"document_type"`
	IsRequired   bool      `json:"isRequired" db:"is_required"`
}

// RequirementSet is the whole catalog of one tender, loaded together for
// readiness checks and re-advertisement copies.
type RequirementSet struct {
	Financial  []FinancialRequirement   `json:"financial"`
	Turnover   []TurnoverRequirement    `json:"turnover"`
	Experience []ExperienceRequirement  `json:"experience"`
	Personnel  []PersonnelRequirement   `json:"personnel"`
	Schedule   []ScheduleItem           `json:"schedule"`
	Technical  []TechnicalSpecification `json:"technical"`
	Documents  []RequiredDocument       `json:"documents"`
}
