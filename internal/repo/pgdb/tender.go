package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"tender-marketplace-api/internal/common"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo/repo_errors"
	"tender-marketplace-api/pkg/postgres"
	"time"

	"github.com/google/uuid"
)

type TenderRepo struct {
	*postgres.Postgres
}

func NewTenderRepo(pgdb *postgres.Postgres) *TenderRepo {
	return &TenderRepo{pgdb}
}

func (r *TenderRepo) CreateTender(ctx context.Context, input *entity.CreateTenderInput) (uuid.UUID, error) {
	createSql, args, _ := r.SqlBuilder.
		Insert("tender").
		Columns("name", "description", "status", "organization_id", "submission_deadline",
			"completion_period_days", "allow_alternative_delivery").
		Values(input.Name, input.Description, common.TenderCreated, input.OrganizationId,
			input.SubmissionDeadline, input.CompletionPeriodDays, input.AllowAlternativeDelivery).
		Suffix("RETURNING id").
		ToSql()

	var tenderId uuid.UUID
	if err := r.Database.QueryRowContext(ctx, createSql, args...).Scan(&tenderId); err != nil {
		return uuid.Nil, err
	}

	return tenderId, nil
}

func (r *TenderRepo) GetTenderById(ctx context.Context, id string) (*entity.Tender, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, name, description, status, organization_id, submission_deadline",
			"completion_period_days, allow_alternative_delivery, readvertised_from, created_at").
		From("tender").
		Where("id = ?", uuidForm).
		ToSql()

	t, err := scanTender(r.Database.QueryRowContext(ctx, getSql, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return t, nil
}

func (r *TenderRepo) UpdateTenderStatusById(ctx context.Context, id string, newStatus string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	updateSql, args, _ := r.SqlBuilder.
		Update("tender").
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

func (r *TenderRepo) GetPublishedTenders(ctx context.Context, pg *entity.PaginationInput) ([]entity.Tender, error) {
	getSql, args, _ := r.SqlBuilder.
		Select("id, name, description, status, organization_id, submission_deadline",
			"completion_period_days, allow_alternative_delivery, readvertised_from, created_at").
		From("tender").
		Where("status = ?", common.TenderPublished).
		OrderBy("submission_deadline ASC").
		Offset(uint64(pg.Offset)).
		Limit(uint64(pg.Limit)).
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tenders := make([]entity.Tender, 0)
	for rows.Next() {
		t, err := scanTender(rows)
		if err != nil {
			return tenders, err
		}
		tenders = append(tenders, *t)
	}
	if err = rows.Err(); err != nil {
		return tenders, err
	}

	return tenders, nil
}

// ReadvertiseTender inserts the replacement tender and copies every
// requirement table row of the source tender onto it within one
// transaction. Copied rows get fresh ids.
func (r *TenderRepo) ReadvertiseTender(ctx context.Context, sourceId string, input *entity.CreateTenderInput) (uuid.UUID, error) {
	sourceUuid, err := uuid.Parse(sourceId)
	if err != nil {
		return uuid.Nil, err
	}

	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, err
	}

	createSql, args, _ := r.SqlBuilder.
		Insert("tender").
		Columns("name", "description", "status", "organization_id", "submission_deadline",
			"completion_period_days", "allow_alternative_delivery", "readvertised_from").
		Values(input.Name, input.Description, common.TenderCreated, input.OrganizationId,
			input.SubmissionDeadline, input.CompletionPeriodDays, input.AllowAlternativeDelivery, sourceUuid).
		Suffix("RETURNING id").
		RunWith(tx).
		ToSql()

	var newId uuid.UUID
	if err = tx.QueryRow(createSql, args...).Scan(&newId); err != nil {
		if e := tx.Rollback(); e != nil {
			return uuid.Nil, e
		}

		return uuid.Nil, err
	}

	copies := []string{
		`insert into financial_requirement (tender_id, name, formula, minimum, unit, jv_mode)
		 select $1, name, formula, minimum, unit, jv_mode from financial_requirement where tender_id = $2`,
		`insert into turnover_requirement (tender_id, label, minimum_amount, currency, period_start, period_end, jv_mode, jv_percentage_cap)
		 select $1, label, minimum_amount, currency, period_start, period_end, jv_mode, jv_percentage_cap from turnover_requirement where tender_id = $2`,
		`insert into experience_requirement (tender_id, kind, min_contracts, min_value, currency, period_start, period_end, jv_mode, jv_percentage)
		 select $1, kind, min_contracts, min_value, currency, period_start, period_end, jv_mode, jv_percentage from experience_requirement where tender_id = $2`,
		`insert into personnel_requirement (tender_id, role, min_education, min_experience_years, min_age, max_age, certifications, needs_registration)
		 select $1, role, min_education, min_experience_years, min_age, max_age, certifications, needs_registration from personnel_requirement where tender_id = $2`,
		`insert into schedule_item (tender_id, commodity, unit, quantity, specification)
		 select $1, commodity, unit, quantity, specification from schedule_item where tender_id = $2`,
		`insert into technical_specification (tender_id, category, description)
		 select $1, category, description from technical_specification where tender_id = $2`,
		`insert into required_document (tender_id, name, document_type, is_required)
		 select $1, name, document_type, is_required from required_document where tender_id = $2`,
	}

	for _, copySql := range copies {
		if _, err = tx.Exec(copySql, newId, sourceUuid); err != nil {
			if e := tx.Rollback(); e != nil {
				return uuid.Nil, e
			}

			return uuid.Nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return uuid.Nil, err
	}

	return newId, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTender(row rowScanner) (*entity.Tender, error) {
	var t entity.Tender
	var createdAt time.Time
	err := row.Scan(&t.Id, &t.Name, &t.Description, &t.Status, &t.OrganizationId,
		&t.SubmissionDeadline, &t.CompletionPeriodDays, &t.AllowAlternativeDelivery,
		&t.ReadvertisedFrom, &createdAt)
	if err != nil {
		return nil, err
	}
	t.CreatedAt = createdAt.Format(time.RFC3339)

	return &t, nil
}
