package service

import "errors"

var (
	ErrTenderNotFound      = errors.New("tender not found")
	ErrBidNotFound         = errors.New("bid not found")
	ErrRequirementNotFound = errors.New("requirement not found")
	ErrEvidenceNotFound    = errors.New("evidence record not found")
	ErrDocumentNotFound    = errors.New("document not found")

	ErrTenderNotPublished       = errors.New("tender is not published")
	ErrTenderFrozen             = errors.New("tender requirements can't be changed after publication")
	ErrSubmissionDeadlinePassed = errors.New("tender submission deadline has passed")
	ErrBidAlreadyExists         = errors.New("bidder already has a bid on this tender")
	ErrBidNotEditable           = errors.New("bid can be edited only while in draft")
	ErrBidNotReady              = errors.New("bid is not ready for submission")
	ErrBidNotSubmitted          = errors.New("bid has not been submitted")
	ErrIllegalStatusTransition  = errors.New("illegal bid status transition")
	ErrDocumentWrongTender      = errors.New("document requirement belongs to a different tender")
	ErrIllegalTenderTransition  = errors.New("illegal tender status transition")
)

// ValidationError carries a field-level message for a malformed response
// payload. The whole batch it arrived in is rejected, never partially
// applied.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return e.Field + ": " + e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
