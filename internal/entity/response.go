package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response records answer one tender requirement each and are exclusively
// owned by their bid (cascade delete). `Complied` and the aggregated amounts
// are computed by the evaluator, never accepted from the client.

type FinancialResponse struct {
	Id             uuid.UUID        `json:"id" db:"id"`
	BidId          uuid.UUID        `json:"bidId" db:"bid_id"`
	RequirementId  uuid.UUID        `json:"requirementId" db:"requirement_id"`
	StatementId    *uuid.UUID       `json:"statementId" db:"statement_id"`
	ActualValue    decimal.Decimal  `json:"actualValue" db:"actual_value"`
	Complied       bool             `json:"complied" db:"complied"`
	JvContribution *decimal.Decimal `json:"jvContribution" db:"jv_contribution"`
}

type TurnoverResponse struct {
	Id             uuid.UUID        `json:"id" db:"id"`
	BidId          uuid.UUID        `json:"bidId" db:"bid_id"`
	RequirementId  uuid.UUID        `json:"requirementId" db:"requirement_id"`
	TurnoverIds    []uuid.UUID      `json:"turnoverIds" db:"-"`
	ActualAmount   decimal.Decimal  `json:"actualAmount" db:"actual_amount"`
	Currency       string           `json:"currency" db:"currency"`
	Complied       bool             `json:"complied" db:"complied"`
	JvContribution *decimal.Decimal `json:"jvContribution" db:"jv_contribution"`
}

type ExperienceResponse struct {
	Id             uuid.UUID        `json:"id" db:"id"`
	BidId          uuid.UUID        `json:"bidId" db:"bid_id"`
	RequirementId  uuid.UUID        `json:"requirementId" db:"requirement_id"`
	ExperienceId   *uuid.UUID       `json:"experienceId" db:"experience_id"`
	Complied       bool             `json:"complied" db:"complied"`
	JvContribution *decimal.Decimal `json:"jvContribution" db:"jv_contribution"`
}

type PersonnelResponse struct {
	Id             uuid.UUID        `json:"id" db:"id"`
	BidId          uuid.UUID        `json:"bidId" db:"bid_id"`
	RequirementId  uuid.UUID        `json:"requirementId" db:"requirement_id"`
	PersonnelId    *uuid.UUID       `json:"personnelId" db:"personnel_id"`
	Complied       bool             `json:"complied" db:"complied"`
	JvContribution *decimal.Decimal `json:"jvContribution" db:"jv_contribution"`
}

type OfficeResponse struct {
	Id       uuid.UUID `json:"id" db:"id"`
	BidId    uuid.UUID `json:"bidId" db:"bid_id"`
	OfficeId uuid.UUID `json:"officeId" db:"office_id"`
}

// SourceOfFundResponse aggregates linked funding sources; it carries no
// compliance flag, only the computed total.
type SourceOfFundResponse struct {
	Id          uuid.UUID       `json:"id" db:"id"`
	BidId       uuid.UUID       `json:"bidId" db:"bid_id"`
	SourceIds   []uuid.UUID     `json:"sourceIds" db:"-"`
	TotalAmount decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Currency    string          `json:"currency" db:"currency"`
}

// LitigationResponse must set exactly one of NoLitigation / LitigationIds.
type LitigationResponse struct {
	Id            uuid.UUID   `json:"id" db:"id"`
	BidId         uuid.UUID   `json:"bidId" db:"bid_id"`
	NoLitigation  bool        `json:"noLitigation" db:"no_litigation"`
	LitigationIds []uuid.UUID `json:"litigationIds" db:"-"`
}

type ScheduleResponse struct {
	Id             uuid.UUID       `json:"id" db:"id"`
	BidId          uuid.UUID       `json:"bidId" db:"bid_id"`
	ScheduleItemId uuid.UUID       `json:"scheduleItemId" db:"schedule_item_id"`
	UnitPrice      decimal.Decimal `json:"unitPrice" db:"unit_price"`
	TotalPrice     decimal.Decimal `json:"totalPrice" db:"total_price"`
}

// TechnicalResponse compliance is self-declared by the bidder.
type TechnicalResponse struct {
	Id              uuid.UUID `json:"id" db:"id"`
	BidId           uuid.UUID `json:"bidId" db:"bid_id"`
	SpecificationId uuid.UUID `json:"specificationId" db:"specification_id"`
	Complied        bool      `json:"complied" db:"complied"`
	Remarks         string    `json:"remarks" db:"remarks"`
}

// ResponseSet is the whole response collection of one bid.
type ResponseSet struct {
	Financial    []FinancialResponse    `json:"financial"`
	Turnover     []TurnoverResponse     `json:"turnover"`
	Experience   []ExperienceResponse   `json:"experience"`
	Personnel    []PersonnelResponse    `json:"personnel"`
	Office       []OfficeResponse       `json:"office"`
	SourceOfFund []SourceOfFundResponse `json:"sourceOfFund"`
	Litigation   *LitigationResponse    `json:"litigation"`
	Schedule     []ScheduleResponse     `json:"schedule"`
	Technical    []TechnicalResponse    `json:"technical"`
}

// input models

type FinancialResponseInput struct {
	RequirementId  string
	StatementId    *string
	ProvidedValue  decimal.Decimal
	JvContribution *decimal.Decimal
}

type TurnoverResponseInput struct {
	RequirementId  string
	TurnoverIds    []string
	JvContribution *decimal.Decimal
}

type ExperienceResponseInput struct {
	RequirementId  string
	ExperienceId   *string
	JvContribution *decimal.Decimal
}

type PersonnelResponseInput struct {
	RequirementId  string
	PersonnelId    *string
	JvContribution *decimal.Decimal
}

type OfficeResponseInput struct {
	OfficeId string
}

type SourceOfFundResponseInput struct {
	SourceIds []string
}

type LitigationResponseInput struct {
	NoLitigation  bool
	LitigationIds []string
}

type ScheduleResponseInput struct {
	ScheduleItemId string
	UnitPrice      decimal.Decimal
}

type TechnicalResponseInput struct {
	SpecificationId string
	Complied        bool
	Remarks         string
}

type ResponseSetInput struct {
	Financial    []FinancialResponseInput
	Turnover     []TurnoverResponseInput
	Experience   []ExperienceResponseInput
	Personnel    []PersonnelResponseInput
	Office       []OfficeResponseInput
	SourceOfFund []SourceOfFundResponseInput
	Litigation   *LitigationResponseInput
	Schedule     []ScheduleResponseInput
	Technical    []TechnicalResponseInput
}
