package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"tender-marketplace-api/internal/common"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo/repo_errors"
	"tender-marketplace-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type BidRepo struct {
	*postgres.Postgres
}

func NewBidRepo(pgdb *postgres.Postgres) *BidRepo {
	return &BidRepo{pgdb}
}

const bidColumns = "id, tender_id, bidder_id, status, total_price, currency, submission_date, " +
	"validity_days, jv_partner, jv_percentage, completion_complied, proposed_completion_days, created_at"

func scanBid(row rowScanner) (*entity.Bid, error) {
	var b entity.Bid
	var createdAt time.Time
	err := row.Scan(&b.Id, &b.TenderId, &b.BidderId, &b.Status, &b.TotalPrice, &b.Currency,
		&b.SubmissionDate, &b.ValidityDays, &b.JvPartner, &b.JvPercentage,
		&b.CompletionComplied, &b.ProposedCompletionDays, &createdAt)
	if err != nil {
		return nil, err
	}
	b.CreatedAt = createdAt.Format(time.RFC3339)

	return &b, nil
}

// CreateBidWithResponses writes the bid and every nested response record in
// one transaction. The unique (tender_id, bidder_id) constraint is the
// backstop against a duplicate-bid race.
func (r *BidRepo) CreateBidWithResponses(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) (uuid.UUID, error) {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	createSql, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns("tender_id", "bidder_id", "status", "total_price", "currency", "validity_days",
			"jv_partner", "jv_percentage", "completion_complied", "proposed_completion_days").
		Values(bid.TenderId, bid.BidderId, common.BidDraft, bid.TotalPrice, bid.Currency, bid.ValidityDays,
			bid.JvPartner, bid.JvPercentage, bid.CompletionComplied, bid.ProposedCompletionDays).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var bidId uuid.UUID
	if err = tx.QueryRow(createSql, args...).Scan(&bidId); err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		if isUniqueViolation(err) {
			return uuid.Nil, repo_errors.ErrAlreadyExists
		}

		return uuid.Nil, err
	}

	if err = r.insertResponses(tx, bidId, responses); err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return bidId, nil
}

// ReplaceBidWithResponses rewrites the bid's top-level fields and recreates
// the whole response set. Each per-kind collection is deleted and
// re-inserted rather than merged, so response ids do not survive an update.
func (r *BidRepo) ReplaceBidWithResponses(ctx context.Context, bid *entity.Bid, responses *entity.ResponseSet) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("total_price", bid.TotalPrice).
		Set("currency", bid.Currency).
		Set("validity_days", bid.ValidityDays).
		Set("jv_partner", bid.JvPartner).
		Set("jv_percentage", bid.JvPercentage).
		Set("completion_complied", bid.CompletionComplied).
		Set("proposed_completion_days", bid.ProposedCompletionDays).
		Where("id = ?", bid.Id).
		Where("status = ?", common.BidDraft).
		RunWith(tx).
		ToSql()

	res, err := tx.Exec(updateSql, args...)
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}
	if affected == 0 {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return repo_errors.ErrNotFound
	}

	responseTables := []string{
		"financial_response", "turnover_response", "experience_response",
		"personnel_response", "office_response", "source_of_fund_response",
		"litigation_response", "schedule_response", "technical_response",
	}
	for _, table := range responseTables {
		deleteSql, args, _ := r.SqlBuilder.
			Delete(table).
			Where("bid_id = ?", bid.Id).
			RunWith(tx).
			ToSql()
		if _, err = tx.Exec(deleteSql, args...); err != nil {
			if e := tx.Rollback(); e != nil {
				return e
			}

			return err
		}
	}

	if err = r.insertResponses(tx, bid.Id, responses); err != nil {
		if e := tx.Rollback(); e != nil {
			return e
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *BidRepo) insertResponses(tx *sql.Tx, bidId uuid.UUID, responses *entity.ResponseSet) error {
	for _, resp := range responses.Financial {
		insertSql, args, _ := r.SqlBuilder.
			Insert("financial_response").
			Columns("bid_id", "requirement_id", "statement_id", "actual_value", "complied", "jv_contribution").
			Values(bidId, resp.RequirementId, resp.StatementId, resp.ActualValue, resp.Complied, resp.JvContribution).
			RunWith(tx).
			ToSql()
		if _, err := tx.Exec(insertSql, args...); err != nil {
			return err
		}
	}

	for _, resp := range responses.Turnover {
		insertSql, args, _ := r.SqlBuilder.
			Insert("turnover_response").
			Columns("bid_id", "requirement_id", "actual_amount", "currency", "complied", "jv_contribution").
			Values(bidId, resp.RequirementId, resp.ActualAmount, resp.Currency, resp.Complied, resp.JvContribution).
			Suffix("RETURNING id").
			RunWith(tx).
			ToSql()
		var responseId uuid.UUID
		if err := tx.QueryRow(insertSql, args...).Scan(&responseId); err != nil {
			return err
		}
		for _, turnoverId := range resp.TurnoverIds {
			linkSql, args, _ := r.SqlBuilder.
				Insert("turnover_response_evidence").
				Columns("response_id", "turnover_id").
				Values(responseId, turnoverId).
				RunWith(tx).
				ToSql()
			if _, err := tx.Exec(linkSql, args...); err != nil {
				return err
			}
		}
	}

	for _, resp := range responses.Experience {
		insertSql, args, _ := r.SqlBuilder.
			Insert("experience_response").
			Columns("bid_id", "requirement_id", "experience_id", "complied", "jv_contribution").
			Values(bidId, resp.RequirementId, resp.ExperienceId, resp.Complied, resp.JvContribution).
			RunWith(tx).
			ToSql()
		if _, err := tx.Exec(insertSql, args...); err != nil {
			return err
		}
	}

	for _, resp := range responses.Personnel {
		insertSql, args, _ := r.SqlBuilder.
			Insert("personnel_response").
			Columns("bid_id", "requirement_id", "personnel_id", "complied", "jv_contribution").
			Values(bidId, resp.RequirementId, resp.PersonnelId, resp.Complied, resp.JvContribution).
			RunWith(tx).
			ToSql()
		if _, err := tx.Exec(insertSql, args...); err != nil {
			return err
		}
	}

	for _, resp := range responses.Office {
		insertSql, args, _ := r.SqlBuilder.
			Insert("office_response").
			Columns("bid_id", "office_id").
			Values(bidId, resp.OfficeId).
			RunWith(tx).
			ToSql()
		if _, err := tx.Exec(insertSql, args...); err != nil {
			return err
		}
	}

	for _, resp := range responses.SourceOfFund {
		insertSql, args, _ := r.SqlBuilder.
			Insert("source_of_fund_response").
			Columns("bid_id", "total_amount", "currency").
			Values(bidId, resp.TotalAmount, resp.Currency).
			Suffix("RETURNING id").
			RunWith(tx).
			ToSql()
		var responseId uuid.UUID
		if err := tx.QueryRow(insertSql, args...).Scan(&responseId); err != nil {
			return err
		}
		for _, sourceId := range resp.SourceIds {
			linkSql, args, _ := r.SqlBuilder.
				Insert("source_of_fund_response_evidence").
				Columns("response_id", "source_id").
				Values(responseId, sourceId).
				RunWith(tx).
				ToSql()
			if _, err := tx.Exec(linkSql, args...); err != nil {
				return err
			}
		}
	}

	if responses.Litigation != nil {
		insertSql, args, _ := r.SqlBuilder.
			Insert("litigation_response").
			Columns("bid_id", "no_litigation").
			Values(bidId, responses.Litigation.NoLitigation).
			Suffix("RETURNING id").
			RunWith(tx).
			ToSql()
		var responseId uuid.UUID
		if err := tx.QueryRow(insertSql, args...).Scan(&responseId); err != nil {
			return err
		}
		for _, litigationId := range responses.Litigation.LitigationIds {
			linkSql, args, _ := r.SqlBuilder.
				Insert("litigation_response_evidence").
				Columns("response_id", "litigation_id").
				Values(responseId, litigationId).
				RunWith(tx).
				ToSql()
			if _, err := tx.Exec(linkSql, args...); err != nil {
				return err
			}
		}
	}

	for _, resp := range responses.Schedule {
		insertSql, args, _ := r.SqlBuilder.
			Insert("schedule_response").
			Columns("bid_id", "schedule_item_id", "unit_price", "total_price").
			Values(bidId, resp.ScheduleItemId, resp.UnitPrice, resp.TotalPrice).
			RunWith(tx).
			ToSql()
		if _, err := tx.Exec(insertSql, args...); err != nil {
			return err
		}
	}

	for _, resp := range responses.Technical {
		insertSql, args, _ := r.SqlBuilder.
			Insert("technical_response").
			Columns("bid_id", "specification_id", "complied", "remarks").
			Values(bidId, resp.SpecificationId, resp.Complied, resp.Remarks).
			RunWith(tx).
			ToSql()
		if _, err := tx.Exec(insertSql, args...); err != nil {
			return err
		}
	}

	return nil
}

func (r *BidRepo) GetBidById(ctx context.Context, id string) (*entity.Bid, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("id = ?", uuidForm).
		ToSql()

	bid, err := scanBid(r.Database.QueryRowContext(ctx, getSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return bid, nil
}

func (r *BidRepo) GetBidByTenderAndBidder(ctx context.Context, tenderId, bidderId string) (*entity.Bid, error) {
	tenderUuid, err := uuid.Parse(tenderId)
	if err != nil {
		return nil, err
	}
	bidderUuid, err := uuid.Parse(bidderId)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("tender_id = ?", tenderUuid).
		Where("bidder_id = ?", bidderUuid).
		ToSql()

	bid, err := scanBid(r.Database.QueryRowContext(ctx, getSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return bid, nil
}

func (r *BidRepo) GetUserBids(ctx context.Context, bidderId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	uuidForm, err := uuid.Parse(bidderId)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("bidder_id = ?", uuidForm).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryBids(ctx, getSql, args)
}

func (r *BidRepo) GetTenderBids(ctx context.Context, tenderId string, pg *entity.PaginationInput) ([]entity.Bid, error) {
	uuidForm, err := uuid.Parse(tenderId)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select(bidColumns).
		From("bid").
		Where("tender_id = ?", uuidForm).
		OrderBy("created_at DESC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	return r.queryBids(ctx, getSql, args)
}

func (r *BidRepo) queryBids(ctx context.Context, query string, args []any) ([]entity.Bid, error) {
	rows, err := r.Database.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		bid, err := scanBid(rows)
		if err != nil {
			return bids, err
		}
		bids = append(bids, *bid)
	}
	if err = rows.Err(); err != nil {
		return bids, err
	}

	return bids, nil
}

// SubmitBid transitions Draft -> newStatus and stamps the submission date in
// one guarded update. A concurrent submit loses the race and sees
// ErrNotFound because the status guard no longer matches.
func (r *BidRepo) SubmitBid(ctx context.Context, bidId string, newStatus string) error {
	uuidForm, err := uuid.Parse(bidId)
	if err != nil {
		return err
	}

	submitSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", newStatus).
		Set("submission_date", time.Now().UTC()).
		Where("id = ?", uuidForm).
		Where("status = ?", common.BidDraft).
		ToSql()

	res, err := r.Database.ExecContext(ctx, submitSql, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *BidRepo) UpdateBidStatusById(ctx context.Context, id string, newStatus string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", newStatus).
		Where("id = ?", uuidForm).
		ToSql()

	res, err := r.Database.ExecContext(ctx, updateSql, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *BidRepo) GetResponseSetByBidId(ctx context.Context, bidId string) (*entity.ResponseSet, error) {
	uuidForm, err := uuid.Parse(bidId)
	if err != nil {
		return nil, err
	}

	set := &entity.ResponseSet{}

	financialSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, requirement_id, statement_id, actual_value, complied, jv_contribution").
		From("financial_response").
		Where("bid_id = ?", uuidForm).
		ToSql()
	rows, err := r.Database.QueryContext(ctx, financialSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var resp entity.FinancialResponse
		if err := rows.Scan(&resp.Id, &resp.BidId, &resp.RequirementId, &resp.StatementId,
			&resp.ActualValue, &resp.Complied, &resp.JvContribution); err != nil {
			rows.Close()
			return nil, err
		}
		set.Financial = append(set.Financial, resp)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	turnoverSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, requirement_id, actual_amount, currency, complied, jv_contribution").
		From("turnover_response").
		Where("bid_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, turnoverSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var resp entity.TurnoverResponse
		if err := rows.Scan(&resp.Id, &resp.BidId, &resp.RequirementId, &resp.ActualAmount,
			&resp.Currency, &resp.Complied, &resp.JvContribution); err != nil {
			rows.Close()
			return nil, err
		}
		set.Turnover = append(set.Turnover, resp)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}
	for i := range set.Turnover {
		ids, err := r.linkedIds(ctx, "turnover_response_evidence", "turnover_id", set.Turnover[i].Id)
		if err != nil {
			return nil, err
		}
		set.Turnover[i].TurnoverIds = ids
	}

	experienceSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, requirement_id, experience_id, complied, jv_contribution").
		From("experience_response").
		Where("bid_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, experienceSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var resp entity.ExperienceResponse
		if err := rows.Scan(&resp.Id, &resp.BidId, &resp.RequirementId, &resp.ExperienceId,
			&resp.Complied, &resp.JvContribution); err != nil {
			rows.Close()
			return nil, err
		}
		set.Experience = append(set.Experience, resp)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	personnelSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, requirement_id, personnel_id, complied, jv_contribution").
		From("personnel_response").
		Where("bid_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, personnelSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var resp entity.PersonnelResponse
		if err := rows.Scan(&resp.Id, &resp.BidId, &resp.RequirementId, &resp.PersonnelId,
			&resp.Complied, &resp.JvContribution); err != nil {
			rows.Close()
			return nil, err
		}
		set.Personnel = append(set.Personnel, resp)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	officeSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, office_id").
		From("office_response").
		Where("bid_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, officeSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var resp entity.OfficeResponse
		if err := rows.Scan(&resp.Id, &resp.BidId, &resp.OfficeId); err != nil {
			rows.Close()
			return nil, err
		}
		set.Office = append(set.Office, resp)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	sourceSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, total_amount, currency").
		From("source_of_fund_response").
		Where("bid_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, sourceSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var resp entity.SourceOfFundResponse
		if err := rows.Scan(&resp.Id, &resp.BidId, &resp.TotalAmount, &resp.Currency); err != nil {
			rows.Close()
			return nil, err
		}
		set.SourceOfFund = append(set.SourceOfFund, resp)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}
	for i := range set.SourceOfFund {
		ids, err := r.linkedIds(ctx, "source_of_fund_response_evidence", "source_id", set.SourceOfFund[i].Id)
		if err != nil {
			return nil, err
		}
		set.SourceOfFund[i].SourceIds = ids
	}

	litigationSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, no_litigation").
		From("litigation_response").
		Where("bid_id = ?", uuidForm).
		ToSql()
	var litigation entity.LitigationResponse
	err = r.Database.QueryRowContext(ctx, litigationSql, args...).
		Scan(&litigation.Id, &litigation.BidId, &litigation.NoLitigation)
	if err == nil {
		ids, err := r.linkedIds(ctx, "litigation_response_evidence", "litigation_id", litigation.Id)
		if err != nil {
			return nil, err
		}
		litigation.LitigationIds = ids
		set.Litigation = &litigation
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	scheduleSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, schedule_item_id, unit_price, total_price").
		From("schedule_response").
		Where("bid_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, scheduleSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var resp entity.ScheduleResponse
		if err := rows.Scan(&resp.Id, &resp.BidId, &resp.ScheduleItemId, &resp.UnitPrice, &resp.TotalPrice); err != nil {
			rows.Close()
			return nil, err
		}
		set.Schedule = append(set.Schedule, resp)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	technicalSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, specification_id, complied, remarks").
		From("technical_response").
		Where("bid_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, technicalSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var resp entity.TechnicalResponse
		if err := rows.Scan(&resp.Id, &resp.BidId, &resp.SpecificationId, &resp.Complied, &resp.Remarks); err != nil {
			rows.Close()
			return nil, err
		}
		set.Technical = append(set.Technical, resp)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return set, nil
}

func (r *BidRepo) linkedIds(ctx context.Context, table, column string, responseId uuid.UUID) ([]uuid.UUID, error) {
	linkSql, args, _ := r.SqlBuilder.
		Select(column).
		From(table).
		Where("response_id = ?", responseId).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, linkSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return ids, err
	}

	return ids, nil
}

func (r *BidRepo) CreateBidDocument(ctx context.Context, input *entity.CreateBidDocumentInput) (uuid.UUID, error) {
	bidUuid, err := uuid.Parse(input.BidId)
	if err != nil {
		return uuid.Nil, err
	}
	reqUuid, err := uuid.Parse(input.RequirementId)
	if err != nil {
		return uuid.Nil, err
	}

	createSql, args, _ := r.SqlBuilder.
		Insert("bid_document").
		Columns("bid_id", "requirement_id", "file_name", "file_ref").
		Values(bidUuid, reqUuid, input.FileName, input.FileRef).
		Suffix("RETURNING id").
		ToSql()

	var documentId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&documentId); err != nil {
		return uuid.Nil, err
	}

	return documentId, nil
}

func (r *BidRepo) GetBidDocuments(ctx context.Context, bidId string) ([]entity.BidDocument, error) {
	uuidForm, err := uuid.Parse(bidId)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, bid_id, requirement_id, file_name, file_ref, uploaded_at").
		From("bid_document").
		Where("bid_id = ?", uuidForm).
		OrderBy("file_name ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]entity.BidDocument, 0)
	for rows.Next() {
		var doc entity.BidDocument
		var uploadedAt time.Time
		if err := rows.Scan(&doc.Id, &doc.BidId, &doc.RequirementId, &doc.FileName, &doc.FileRef, &uploadedAt); err != nil {
			return docs, err
		}
		doc.UploadedAt = uploadedAt.Format(time.RFC3339)
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return docs, err
	}

	return docs, nil
}

func (r *BidRepo) DeleteBidDocument(ctx context.Context, documentId string) error {
	uuidForm, err := uuid.Parse(documentId)
	if err != nil {
		return err
	}

	deleteSql, args, _ := r.SqlBuilder.
		Delete("bid_document").
		Where("id = ?", uuidForm).
		ToSql()

	res, err := r.Database.ExecContext(ctx, deleteSql, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}
