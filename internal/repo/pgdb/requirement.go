package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo/repo_errors"
	"tender-marketplace-api/pkg/postgres"

	"github.com/google/uuid"
)

type RequirementRepo struct {
	*postgres.Postgres
}

func NewRequirementRepo(pgdb *postgres.Postgres) *RequirementRepo {
	return &RequirementRepo{pgdb}
}

func (r *RequirementRepo) insertReturningId(ctx context.Context, table string, columns []string, values []any) (uuid.UUID, error) {
	insertSql, args, _ := r.SqlBuilder.
		Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id").
		ToSql()

	var id uuid.UUID
	if err := r.Database.QueryRowContext(ctx, insertSql, args...).Scan(&id); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

func (r *RequirementRepo) deleteById(ctx context.Context, table string, id string) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	deleteSql, args, _ := r.SqlBuilder.
		Delete(table).
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

func (r *RequirementRepo) CreateFinancialRequirement(ctx context.Context, req *entity.FinancialRequirement) (uuid.UUID, error) {
	return r.insertReturningId(ctx, "financial_requirement",
		[]string{"tender_id", "name", "formula", "minimum", "unit", "jv_mode"},
		[]any{req.TenderId, req.Name, req.Formula, req.Minimum, req.Unit, req.JvMode})
}

func (r *RequirementRepo) CreateTurnoverRequirement(ctx context.Context, req *entity.TurnoverRequirement) (uuid.UUID, error) {
	return r.insertReturningId(ctx, "turnover_requirement",
		[]string{"tender_id", "label", "minimum_amount", "currency", "period_start", "period_end", "jv_mode", "jv_percentage_cap"},
		[]any{req.TenderId, req.Label, req.MinimumAmount, req.Currency, req.PeriodStart, req.PeriodEnd, req.JvMode, req.JvPercentageCap})
}

func (r *RequirementRepo) CreateExperienceRequirement(ctx context.Context, req *entity.ExperienceRequirement) (uuid.UUID, error) {
	return r.insertReturningId(ctx, "experience_requirement",
		[]string{"tender_id", "kind", "min_contracts", "min_value", "currency", "period_start", "period_end", "jv_mode", "jv_percentage"},
		[]any{req.TenderId, req.Kind, req.MinContracts, req.MinValue, req.Currency, req.PeriodStart, req.PeriodEnd, req.JvMode, req.JvPercentage})
}

func (r *RequirementRepo) CreatePersonnelRequirement(ctx context.Context, req *entity.PersonnelRequirement) (uuid.UUID, error) {
	return r.insertReturningId(ctx, "personnel_requirement",
		[]string{"tender_id", "role", "min_education", "min_experience_years", "min_age", "max_age", "certifications", "needs_registration"},
		[]any{req.TenderId, req.Role, req.MinEducation, req.MinExperienceYears, req.MinAge, req.MaxAge, req.Certifications, req.NeedsRegistration})
}

func (r *RequirementRepo) CreateScheduleItem(ctx context.Context, req *entity.ScheduleItem) (uuid.UUID, error) {
	return r.insertReturningId(ctx, "schedule_item",
		[]string{"tender_id", "commodity", "unit", "quantity", "specification"},
		[]any{req.TenderId, req.Commodity, req.Unit, req.Quantity, req.Specification})
}

func (r *RequirementRepo) CreateTechnicalSpecification(ctx context.Context, req *entity.TechnicalSpecification) (uuid.UUID, error) {
	return r.insertReturningId(ctx, "technical_specification",
		[]string{"tender_id", "category", "description"},
		[]any{req.TenderId, req.Category, req.Description})
}

func (r *RequirementRepo) CreateRequiredDocument(ctx context.Context, req *entity.RequiredDocument) (uuid.UUID, error) {
	return r.insertReturningId(ctx, "required_document",
		[]string{"tender_id", "name", "document_type", "is_required"},
		[]any{req.TenderId, req.Name, req.DocumentType, req.IsRequired})
}

func (r *RequirementRepo) GetFinancialRequirementById(ctx context.Context, id string) (*entity.FinancialRequirement, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, name, formula, minimum, unit, jv_mode").
		From("financial_requirement").
		Where("id = ?", uuidForm).
		ToSql()

	var req entity.FinancialRequirement
	err = r.Database.QueryRowContext(ctx, getSql, args...).
		Scan(&req.Id, &req.TenderId, &req.Name, &req.Formula, &req.Minimum, &req.Unit, &req.JvMode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &req, nil
}

func (r *RequirementRepo) GetTurnoverRequirementById(ctx context.Context, id string) (*entity.TurnoverRequirement, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, label, minimum_amount, currency, period_start, period_end, jv_mode, jv_percentage_cap").
		From("turnover_requirement").
		Where("id = ?", uuidForm).
		ToSql()

	var req entity.TurnoverRequirement
	err = r.Database.QueryRowContext(ctx, getSql, args...).
		Scan(&req.Id, &req.TenderId, &req.Label, &req.MinimumAmount, &req.Currency,
			&req.PeriodStart, &req.PeriodEnd, &req.JvMode, &req.JvPercentageCap)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &req, nil
}

func (r *RequirementRepo) GetExperienceRequirementById(ctx context.Context, id string) (*entity.ExperienceRequirement, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, kind, min_contracts, min_value, currency, period_start, period_end, jv_mode, jv_percentage").
		From("experience_requirement").
		Where("id = ?", uuidForm).
		ToSql()

	var req entity.ExperienceRequirement
	err = r.Database.QueryRowContext(ctx, getSql, args...).
		Scan(&req.Id, &req.TenderId, &req.Kind, &req.MinContracts, &req.MinValue, &req.Currency,
			&req.PeriodStart, &req.PeriodEnd, &req.JvMode, &req.JvPercentage)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &req, nil
}

func (r *RequirementRepo) GetPersonnelRequirementById(ctx context.Context, id string) (*entity.PersonnelRequirement, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, role, min_education, min_experience_years, min_age, max_age, certifications, needs_registration").
		From("personnel_requirement").
		Where("id = ?", uuidForm).
		ToSql()

	var req entity.PersonnelRequirement
	err = r.Database.QueryRowContext(ctx, getSql, args...).
		Scan(&req.Id, &req.TenderId, &req.Role, &req.MinEducation, &req.MinExperienceYears,
			&req.MinAge, &req.MaxAge, &req.Certifications, &req.NeedsRegistration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &req, nil
}

func (r *RequirementRepo) GetScheduleItemById(ctx context.Context, id string) (*entity.ScheduleItem, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, commodity, unit, quantity, specification").
		From("schedule_item").
		Where("id = ?", uuidForm).
		ToSql()

	var item entity.ScheduleItem
	err = r.Database.QueryRowContext(ctx, getSql, args...).
		Scan(&item.Id, &item.TenderId, &item.Commodity, &item.Unit, &item.Quantity, &item.Specification)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &item, nil
}

func (r *RequirementRepo) GetTechnicalSpecificationById(ctx context.Context, id string) (*entity.TechnicalSpecification, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, category, description").
		From("technical_specification").
		Where("id = ?", uuidForm).
		ToSql()

	var spec entity.TechnicalSpecification
	err = r.Database.QueryRowContext(ctx, getSql, args...).
		Scan(&spec.Id, &spec.TenderId, &spec.Category, &spec.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &spec, nil
}

func (r *RequirementRepo) GetRequiredDocumentById(ctx context.Context, id string) (*entity.RequiredDocument, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, name, document_type, is_required").
		From("required_document").
		Where("id = ?", uuidForm).
		ToSql()

	var doc entity.RequiredDocument
	err = r.Database.QueryRowContext(ctx, getSql, args...).
		Scan(&doc.Id, &doc.TenderId, &doc.Name, &doc.DocumentType, &doc.IsRequired)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &doc, nil
}

func (r *RequirementRepo) GetRequiredDocumentsByTenderId(ctx context.Context, tenderId string) ([]entity.RequiredDocument, error) {
	uuidForm, err := uuid.Parse(tenderId)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, name, document_type, is_required").
		From("required_document").
		Where("tender_id = ?", uuidForm).
		OrderBy("name ASC").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]entity.RequiredDocument, 0)
	for rows.Next() {
		var doc entity.RequiredDocument
		if err := rows.Scan(&doc.Id, &doc.TenderId, &doc.Name, &doc.DocumentType, &doc.IsRequired); err != nil {
			return docs, err
		}
		docs = append(docs, doc)
	}
	if err = rows.Err(); err != nil {
		return docs, err
	}

	return docs, nil
}

// GetRequirementSetByTenderId loads the whole catalog of one tender. Used by
// the readiness checker and the nested bid orchestration, which need every
// dimension at once.
func (r *RequirementRepo) GetRequirementSetByTenderId(ctx context.Context, tenderId string) (*entity.RequirementSet, error) {
	uuidForm, err := uuid.Parse(tenderId)
	if err != nil {
		return nil, err
	}

	set := &entity.RequirementSet{}

	financialSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, name, formula, minimum, unit, jv_mode").
		From("financial_requirement").
		Where("tender_id = ?", uuidForm).
		ToSql()
	rows, err := r.Database.QueryContext(ctx, financialSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var req entity.FinancialRequirement
		if err := rows.Scan(&req.Id, &req.TenderId, &req.Name, &req.Formula, &req.Minimum, &req.Unit, &req.JvMode); err != nil {
			rows.Close()
			return nil, err
		}
		set.Financial = append(set.Financial, req)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	turnoverSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, label, minimum_amount, currency, period_start, period_end, jv_mode, jv_percentage_cap").
		From("turnover_requirement").
		Where("tender_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, turnoverSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var req entity.TurnoverRequirement
		if err := rows.Scan(&req.Id, &req.TenderId, &req.Label, &req.MinimumAmount, &req.Currency,
			&req.PeriodStart, &req.PeriodEnd, &req.JvMode, &req.JvPercentageCap); err != nil {
			rows.Close()
			return nil, err
		}
		set.Turnover = append(set.Turnover, req)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	experienceSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, kind, min_contracts, min_value, currency, period_start, period_end, jv_mode, jv_percentage").
		From("experience_requirement").
		Where("tender_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, experienceSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var req entity.ExperienceRequirement
		if err := rows.Scan(&req.Id, &req.TenderId, &req.Kind, &req.MinContracts, &req.MinValue, &req.Currency,
			&req.PeriodStart, &req.PeriodEnd, &req.JvMode, &req.JvPercentage); err != nil {
			rows.Close()
			return nil, err
		}
		set.Experience = append(set.Experience, req)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	personnelSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, role, min_education, min_experience_years, min_age, max_age, certifications, needs_registration").
		From("personnel_requirement").
		Where("tender_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, personnelSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var req entity.PersonnelRequirement
		if err := rows.Scan(&req.Id, &req.TenderId, &req.Role, &req.MinEducation, &req.MinExperienceYears,
			&req.MinAge, &req.MaxAge, &req.Certifications, &req.NeedsRegistration); err != nil {
			rows.Close()
			return nil, err
		}
		set.Personnel = append(set.Personnel, req)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	scheduleSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, commodity, unit, quantity, specification").
		From("schedule_item").
		Where("tender_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, scheduleSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var item entity.ScheduleItem
		if err := rows.Scan(&item.Id, &item.TenderId, &item.Commodity, &item.Unit, &item.Quantity, &item.Specification); err != nil {
			rows.Close()
			return nil, err
		}
		set.Schedule = append(set.Schedule, item)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	technicalSql, args, _ := r.SqlBuilder.
		Select("id, tender_id, category, description").
		From("technical_specification").
		Where("tender_id = ?", uuidForm).
		ToSql()
	rows, err = r.Database.QueryContext(ctx, technicalSql, args...)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var spec entity.TechnicalSpecification
		if err := rows.Scan(&spec.Id, &spec.TenderId, &spec.Category, &spec.Description); err != nil {
			rows.Close()
			return nil, err
		}
		set.Technical = append(set.Technical, spec)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	docs, err := r.GetRequiredDocumentsByTenderId(ctx, tenderId)
	if err != nil {
		return nil, err
	}
	set.Documents = docs

	return set, nil
}

func (r *RequirementRepo) DeleteFinancialRequirement(ctx context.Context, id string) error {
	return r.deleteById(ctx, "financial_requirement", id)
}

func (r *RequirementRepo) DeleteTurnoverRequirement(ctx context.Context, id string) error {
	return r.deleteById(ctx, "turnover_requirement", id)
}

func (r *RequirementRepo) DeleteExperienceRequirement(ctx context.Context, id string) error {
	return r.deleteById(ctx, "experience_requirement", id)
}

func (r *RequirementRepo) DeletePersonnelRequirement(ctx context.Context, id string) error {
	return r.deleteById(ctx, "personnel_requirement", id)
}

func (r *RequirementRepo) DeleteScheduleItem(ctx context.Context, id string) error {
	return r.deleteById(ctx, "schedule_item", id)
}

func (r *RequirementRepo) DeleteTechnicalSpecification(ctx context.Context, id string) error {
	return r.deleteById(ctx, "technical_specification", id)
}

func (r *RequirementRepo) DeleteRequiredDocument(ctx context.Context, id string) error {
	return r.deleteById(ctx, "required_document", id)
}
