package entity

import (
	"github.com/google/uuid"
)

// Audit entries are append-only. Writing one must never fail the operation
// that triggered it.
type AuditEntry struct {
	Id         uuid.UUID `json:"id" db:"id"`
	Actor      string    `json:"actor" db:"actor"`
	Action     string    `json:"action" db:"action"`
	ObjectType string    `json:"objectType" db:"object_type"`
	ObjectId   uuid.UUID `json:"objectId" db:"object_id"`
	Detail     string    `json:"detail" db:"detail"`
	CreatedAt  string    `json:"createdAt" db:"created_at"`
}
