package entity

// OpeningReport summarizes a submitted bid for the public opening. Rendering
// to PDF is delegated to an external collaborator; this model is the
// contract it consumes.
type OpeningReport struct {
	Bid                *BidOutputModel      `json:"bid"`
	TenderName         string               `json:"tenderName"`
	SubmittedDocuments []BidDocument        `json:"submittedDocuments"`
	FinancialResponses []FinancialResponse  `json:"financialResponses"`
	MissingDocuments   []string             `json:"missingDocuments"`
}
