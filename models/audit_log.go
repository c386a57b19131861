package models

import "time"

const (
	AuditInsert = "INSERT"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
)

// AuditLog is append-only: rows are written inside the transaction of
// the mutation they describe and never updated or deleted. The
// auto-incrementing ID is the tie-break for same-instant writes.
type AuditLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Entity    string    `gorm:"type:varchar(64);not null;index:idx_audit_row,priority:1"`
	RowPK     string    `gorm:"type:varchar(64);not null;index:idx_audit_row,priority:2"`
	Action    string    `gorm:"type:varchar(10);not null"`
	ChangedAt time.Time `gorm:"not null;index"`
	Details   JSONB     `gorm:"type:jsonb"`
}

func (AuditLog) TableName() string { return "audit_log" }
