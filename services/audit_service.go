// services/audit_service.go
package services

import (
	"time"

	"salonbook-backend/models"

	"gorm.io/gorm"
)

// AuditService writes the append-only change log. Record must be
// called with the same transaction handle as the mutation it
// describes, so a rolled-back mutation leaves no audit row and a
// committed one is never missing its entry.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Record appends one immutable entry inside the caller's transaction.
func (s *AuditService) Record(tx *gorm.DB, entity, rowPK, action string, before, after models.JSONB) error {
	details := models.JSONB{}
	if before != nil {
		details["before"] = map[string]interface{}(before)
	}
	if after != nil {
		details["after"] = map[string]interface{}(after)
	}
	entry := models.AuditLog{
		Entity:    entity,
		RowPK:     rowPK,
		Action:    action,
		ChangedAt: time.Now().UTC(),
		Details:   details,
	}
	return tx.Create(&entry).Error
}

// Trail returns entries for an entity (optionally one row, optionally
// a time range), ordered by change time with id as tie-break. There is
// no update or delete path.
func (s *AuditService) Trail(entity, rowPK string, from, to *time.Time) ([]models.AuditLog, error) {
	q := s.db.Model(&models.AuditLog{}).Where("entity = ?", entity)
	if rowPK != "" {
		q = q.Where("row_pk = ?", rowPK)
	}
	if from != nil {
		q = q.Where("changed_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("changed_at <= ?", *to)
	}

	var entries []models.AuditLog
	if err := q.Order("changed_at ASC, id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
