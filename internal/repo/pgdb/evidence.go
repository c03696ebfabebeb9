package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/internal/repo/repo_errors"
	"tender-marketplace-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// EvidenceRepo reads company evidence records by primary key. The company
// account subsystem owns these tables; nothing here writes to them.
type EvidenceRepo struct {
	*postgres.Postgres
}

func NewEvidenceRepo(pgdb *postgres.Postgres) *EvidenceRepo {
	return &EvidenceRepo{pgdb}
}

func parseIds(ids []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}

	return out, nil
}

func (r *EvidenceRepo) GetFinancialStatementById(ctx context.Context, id string) (*entity.FinancialStatement, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, company_id, label, value, year").
		From("financial_statement").
		Where("id = ?", uuidForm).
		ToSql()

	var s entity.FinancialStatement
	err = r.Database.QueryRow(getSql, args...).
		Scan(&s.Id, &s.CompanyId, &s.Label, &s.Value, &s.Year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &s, nil
}

func (r *EvidenceRepo) GetAnnualTurnoversByIds(ctx context.Context, ids []string) ([]entity.AnnualTurnover, error) {
	uuids, err := parseIds(ids)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, company_id, amount, currency, year").
		From("annual_turnover").
		Where(squirrel.Eq{"id": uuids}).
		OrderBy("year DESC").
		ToSql()

	rows, err := r.Database.Query(getSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	turnovers := make([]entity.AnnualTurnover, 0)
	for rows.Next() {
		var t entity.AnnualTurnover
		if err := rows.Scan(&t.Id, &t.CompanyId, &t.Amount, &t.Currency, &t.Year); err != nil {
			return turnovers, err
		}
		turnovers = append(turnovers, t)
	}
	if err = rows.Err(); err != nil {
		return turnovers, err
	}

	if len(turnovers) != len(uuids) {
		return nil, repo_errors.ErrNotFound
	}

	return turnovers, nil
}

func (r *EvidenceRepo) GetCompanyExperienceById(ctx context.Context, id string) (*entity.CompanyExperience, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, company_id, kind, contract_count, contract_value, currency").
		From("company_experience").
		Where("id = ?", uuidForm).
		ToSql()

	var e entity.CompanyExperience
	err = r.Database.QueryRow(getSql, args...).
		Scan(&e.Id, &e.CompanyId, &e.Kind, &e.ContractCount, &e.ContractValue, &e.Currency)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &e, nil
}

func (r *EvidenceRepo) GetCompanyPersonnelById(ctx context.Context, id string) (*entity.CompanyPersonnel, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, company_id, full_name, role, education, years_of_experience, birth_date").
		From("company_personnel").
		Where("id = ?", uuidForm).
		ToSql()

	var p entity.CompanyPersonnel
	err = r.Database.QueryRow(getSql, args...).
		Scan(&p.Id, &p.CompanyId, &p.FullName, &p.Role, &p.Education, &p.YearsOfExperience, &p.BirthDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &p, nil
}

func (r *EvidenceRepo) GetCompanyOfficeById(ctx context.Context, id string) (*entity.CompanyOffice, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, company_id, address, ownership").
		From("company_office").
		Where("id = ?", uuidForm).
		ToSql()

	var o entity.CompanyOffice
	err = r.Database.QueryRow(getSql, args...).
		Scan(&o.Id, &o.CompanyId, &o.Address, &o.Ownership)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return &o, nil
}

func (r *EvidenceRepo) GetFundingSourcesByIds(ctx context.Context, ids []string) ([]entity.FundingSource, error) {
	uuids, err := parseIds(ids)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, company_id, source, amount, currency").
		From("funding_source").
		Where(squirrel.Eq{"id": uuids}).
		ToSql()

	rows, err := r.Database.Query(getSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sources := make([]entity.FundingSource, 0)
	for rows.Next() {
		var s entity.FundingSource
		if err := rows.Scan(&s.Id, &s.CompanyId, &s.Source, &s.Amount, &s.Currency); err != nil {
			return sources, err
		}
		sources = append(sources, s)
	}
	if err = rows.Err(); err != nil {
		return sources, err
	}

	if len(sources) != len(uuids) {
		return nil, repo_errors.ErrNotFound
	}

	return sources, nil
}

func (r *EvidenceRepo) GetCompanyLitigationsByIds(ctx context.Context, ids []string) ([]entity.CompanyLitigation, error) {
	uuids, err := parseIds(ids)
	if err != nil {
		return nil, err
	}

	getSql, args, _ := r.SqlBuilder.
		Select("id, company_id, year, description, outcome, amount").
		From("company_litigation").
		Where(squirrel.Eq{"id": uuids}).
		ToSql()

	rows, err := r.Database.Query(getSql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	litigations := make([]entity.CompanyLitigation, 0)
	for rows.Next() {
		var l entity.CompanyLitigation
		if err := rows.Scan(&l.Id, &l.CompanyId, &l.Year, &l.Description, &l.Outcome, &l.Amount); err != nil {
			return litigations, err
		}
		litigations = append(litigations, l)
	}
	if err = rows.Err(); err != nil {
		return litigations, err
	}

	if len(litigations) != len(uuids) {
		return nil, repo_errors.ErrNotFound
	}

	return litigations, nil
}
