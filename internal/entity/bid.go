package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// db model. One bid per (tender, bidder) pair, enforced by a unique
// constraint. Mutable only while in Draft.
type Bid struct {
	Id                     uuid.UUID        `json:"id" db:"id"`
	TenderId               uuid.UUID        `json:"tenderId" db:"tender_id"`
	BidderId               uuid.UUID        `json:"bidderId" db:"bidder_id"`
	Status                 string           `json:"status" db:"status"`
	TotalPrice             decimal.Decimal  `json:"totalPrice" db:"total_price"`
	Currency               string           `json:"currency" db:"currency"`
	SubmissionDate         *time.Time       `json:"submissionDate" db:"submission_date"`
	ValidityDays           int              `json:"validityDays" db:"validity_days"`
	JvPartner              *string          `json:"jvPartner" db:"jv_partner"`
	JvPercentage           *decimal.Decimal `json:"jvPercentage" db:"jv_percentage"`
	CompletionComplied     bool             `json:"completionComplied" db:"completion_complied"`
	ProposedCompletionDays *int             `json:"proposedCompletionDays" db:"proposed_completion_days"`
	CreatedAt              string           `json:"createdAt" db:"created_at"`
}

// service + repo input model. Nested response payloads ride along and are
// written in the same transaction as the bid itself.
type CreateBidInput struct {
	TenderId               string
	BidderId               string
	TotalPrice             decimal.Decimal
	Currency               string
	ValidityDays           int
	JvPartner              *string
	JvPercentage           *decimal.Decimal
	CompletionComplied     bool
	ProposedCompletionDays *int

	Responses ResponseSetInput
}

// UpdateBidInput replaces the bid's top-level fields and the full nested
// response set. Per-kind collections are recreated, not merged.
type UpdateBidInput struct {
	BidId                  string
	TotalPrice             decimal.Decimal
	Currency               string
	ValidityDays           int
	JvPartner              *string
	JvPercentage           *decimal.Decimal
	CompletionComplied     bool
	ProposedCompletionDays *int

	Responses ResponseSetInput
}

// controller model
type BidOutputModel struct {
	Id                     string            `json:"id"`
	TenderId               string            `json:"tenderId"`
	BidderId               string            `json:"bidderId"`
	Status                 string            `json:"status"`
	TotalPrice             string            `json:"totalPrice"`
	Currency               string            `json:"currency"`
	SubmissionDate         *string           `json:"submissionDate"`
	ValidityDays           int               `json:"validityDays"`
	JvPartner              *string           `json:"jvPartner,omitempty"`
	JvPercentage           *string           `json:"jvPercentage,omitempty"`
	CompletionComplied     bool              `json:"completionComplied"`
	ProposedCompletionDays *int              `json:"proposedCompletionDays,omitempty"`
	CreatedAt              string            `json:"createdAt"`
	Responses              *ResponseSet      `json:"responses,omitempty"`
}

// SubmitReadiness is the checker verdict. It is a data result, not an error:
// the dry-run endpoint returns it with 200 regardless of readiness.
type SubmitReadiness struct {
	IsReady bool     `json:"is_ready"`
	Errors  []string `json:"errors"`
}
