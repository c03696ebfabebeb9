package service

import (
	"tender-marketplace-api/internal/entity"
	"time"
)

func mapTender(t *entity.Tender) *entity.TenderOutputModel {
	out := &entity.TenderOutputModel{
		Id:                       t.Id.String(),
		Name:                     t.Name,
		Description:              t.Description,
		Status:                   t.Status,
		OrganizationId:           t.OrganizationId.String(),
		SubmissionDeadline:       t.SubmissionDeadline.Format(time.RFC3339),
		CompletionPeriodDays:     t.CompletionPeriodDays,
		AllowAlternativeDelivery: t.AllowAlternativeDelivery,
		CreatedAt:                t.CreatedAt,
	}

	if t.ReadvertisedFrom != nil {
		source := t.ReadvertisedFrom.String()
		out.ReadvertisedFrom = &source
	}

	return out
}

func mapTenders(tenders []entity.Tender) []entity.TenderOutputModel {
	s := make([]entity.TenderOutputModel, 0)
	for _, tender := range tenders {
		s = append(s, *mapTender(&tender))
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	out := &entity.BidOutputModel{
		Id:                     b.Id.String(),
		TenderId:               b.TenderId.String(),
		BidderId:               b.BidderId.String(),
		Status:                 b.Status,
		TotalPrice:             b.TotalPrice.String(),
		Currency:               b.Currency,
		ValidityDays:           b.ValidityDays,
		JvPartner:              b.JvPartner,
		CompletionComplied:     b.CompletionComplied,
		ProposedCompletionDays: b.ProposedCompletionDays,
		CreatedAt:              b.CreatedAt,
	}

	if b.SubmissionDate != nil {
		formatted := b.SubmissionDate.Format(time.RFC3339)
		out.SubmissionDate = &formatted
	}
	if b.JvPercentage != nil {
		percentage := b.JvPercentage.String()
		out.JvPercentage = &percentage
	}

	return out
}

func mapBids(bids []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for _, bid := range bids {
		s = append(s, *mapBid(&bid))
	}

	return s
}
