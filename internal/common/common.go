package common

// Tender statuses
const (
	TenderCreated   = "Created"
	TenderPublished = "Published"
	TenderClosed    = "Closed"
	TenderCancelled = "Cancelled"
)

// Bid statuses
const (
	BidDraft           = "Draft"
	BidSubmitted       = "Submitted"
	BidUnderEvaluation = "UnderEvaluation"
	BidAccepted        = "Accepted"
	BidRejected        = "Rejected"
	BidWithdrawn       = "Withdrawn"
)

// JV compliance modes on requirements
const (
	JvModeSeparate = "separate"
	JvModeCombined = "combined"
)

// Experience requirement kinds
const (
	ExperienceGeneral  = "general"
	ExperienceSpecific = "specific"
)

// Audit actions
const (
	AuditBidSubmitted      = "bid.submitted"
	AuditBidDecision       = "bid.decision"
	AuditTenderPublished   = "tender.published"
	AuditTenderReadvertise = "tender.readvertised"
)

// IsTerminalBidStatus reports whether a bid can no longer change.
func IsTerminalBidStatus(status string) bool {
	return status == BidAccepted || status == BidRejected || status == BidWithdrawn
}
