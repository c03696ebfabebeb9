package entity

import (
	"github.com/google/uuid"
)

// db model. A bid document satisfies one tender-required document; the file
// itself lives in external storage, only the reference is kept here.
type BidDocument struct {
	Id            uuid.UUID `json:"id" db:"id"`
	BidId         uuid.UUID `json:"bidId" db:"bid_id"`
	RequirementId uuid.UUID `json:"requirementId" db:"requirement_id"`
	FileName      string    `json:"fileName" db:"file_name"`
	FileRef       string    `json:"fileRef" db:"file_ref"`
	UploadedAt    string    `json:"uploadedAt" db:"uploaded_at"`
}

// service + repo input model
type CreateBidDocumentInput struct {
	BidId         string
	RequirementId string
	FileName      string
	FileRef       string
}
