// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// AdviceSnapshotModel represents the advice_snapshots table in the database.
// Alerts and recommendations are stored as text arrays in their display order.
type AdviceSnapshotModel struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_advice_user_month"`
	Month           string         `gorm:"type:varchar(7);not null;index:idx_advice_user_month"`
	Source          string         `gorm:"type:varchar(10);not null"`
	Alerts          pq.StringArray `gorm:"type:text[]"`
	Recommendations pq.StringArray `gorm:"type:text[]"`
	CreatedAt       time.Time      `gorm:"not null;index"`
}

// TableName returns the table name for the AdviceSnapshotModel.
func (AdviceSnapshotModel) TableName() string {
	return "advice_snapshots"
}

// ToEntity converts an AdviceSnapshotModel to a domain AdviceSnapshot entity.
func (m *AdviceSnapshotModel) ToEntity() *entity.AdviceSnapshot {
	return &entity.AdviceSnapshot{
		ID:              m.ID,
		UserID:          m.UserID,
		Month:           m.Month,
		Source:          entity.AdviceSource(m.Source),
		Alerts:          []string(m.Alerts),
		Recommendations: []string(m.Recommendations),
		CreatedAt:       m.CreatedAt,
	}
}

// AdviceSnapshotFromEntity creates an AdviceSnapshotModel from a domain AdviceSnapshot entity.
func AdviceSnapshotFromEntity(snapshot *entity.AdviceSnapshot) *AdviceSnapshotModel {
	return &AdviceSnapshotModel{
		ID:              snapshot.ID,
		UserID:          snapshot.UserID,
		Month:           snapshot.Month,
		Source:          string(snapshot.Source),
		Alerts:          pq.StringArray(snapshot.Alerts),
		Recommendations: pq.StringArray(snapshot.Recommendations),
		CreatedAt:       snapshot.CreatedAt,
	}
}
