package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Tender struct {
	Id                       uuid.UUID  `json:"id" db:"id"`
	Name                     string     `json:"name" db:"name"`
	Description              string     `json:"description" db:"description"`
	Status                   string     `json:"status" db:"status"`
	OrganizationId           uuid.UUID  `json:"organizationId" db:"organization_id"`
	SubmissionDeadline       time.Time  `json:"submissionDeadline" db:"submission_deadline"`
	CompletionPeriodDays     *int       `json:"completionPeriodDays" db:"completion_period_days"`
	AllowAlternativeDelivery bool       `json:"allowAlternativeDelivery" db:"allow_alternative_delivery"`
	ReadvertisedFrom         *uuid.UUID `json:"readvertisedFrom" db:"readvertised_from"`
	CreatedAt                string     `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateTenderInput struct {
	Name                     string
	Description              string
	OrganizationId           string
	SubmissionDeadline       time.Time
	CompletionPeriodDays     *int
	AllowAlternativeDelivery bool
	// Status should be set: "Created"
	// Id and CreatedAt set automatically
}

// controller model
type TenderOutputModel struct {
	Id                       string `json:"id"`
	Name                     string `json:"name"`
	Description              string `json:"description"`
	Status                   string `json:"status"`
	OrganizationId           string `json:"organizationId"`
	SubmissionDeadline       string `json:"submissionDeadline"`
	CompletionPeriodDays     *int    `json:"completionPeriodDays,omitempty"`
	AllowAlternativeDelivery bool    `json:"allowAlternativeDelivery"`
	ReadvertisedFrom         *string `json:"readvertisedFrom,omitempty"`
	CreatedAt                string  `json:"createdAt"`
}
