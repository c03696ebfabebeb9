package pgdb

import (
	"context"
	"tender-marketplace-api/internal/entity"
	"tender-marketplace-api/pkg/postgres"

	"go.uber.org/zap"
)

type AuditRepo struct {
	*postgres.Postgres
	log *zap.Logger
}

func NewAuditRepo(pgdb *postgres.Postgres, log *zap.Logger) *AuditRepo {
	return &AuditRepo{pgdb, log}
}

// Append writes one audit entry. The sink is fire-and-forget: a failed
// insert is logged and swallowed so the triggering operation never rolls
// back because of it.
func (r *AuditRepo) Append(ctx context.Context, e *entity.AuditEntry) error {
	appendSql, args, _ := r.SqlBuilder.
		Insert("audit_log").
		Columns("actor", "action", "object_type", "object_id", "detail").
		Values(e.Actor, e.Action, e.ObjectType, e.ObjectId, e.Detail).
		ToSql()

	if _, err := r.Database.Exec(appendSql, args...); err != nil {
		r.log.Warn("audit append failed",
			zap.String("action", e.Action),
			zap.String("object_id", e.ObjectId.String()),
			zap.Error(err))
	}

	return nil
}
