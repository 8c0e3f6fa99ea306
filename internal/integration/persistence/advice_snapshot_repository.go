// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smart-expense/backend/internal/application/adapter"
	"github.com/smart-expense/backend/internal/domain/entity"
	"github.com/smart-expense/backend/internal/integration/persistence/model"
)

// adviceSnapshotRepository implements the adapter.AdviceSnapshotRepository interface.
type adviceSnapshotRepository struct {
	db *gorm.DB
}

// NewAdviceSnapshotRepository creates a new advice snapshot repository instance.
func NewAdviceSnapshotRepository(db *gorm.DB) adapter.AdviceSnapshotRepository {
	return &adviceSnapshotRepository{
		db: db,
	}
}

// Create stores a new advice snapshot.
func (r *adviceSnapshotRepository) Create(ctx context.Context, snapshot *entity.AdviceSnapshot) error {
	snapshotModel := model.AdviceSnapshotFromEntity(snapshot)
	result := r.db.WithContext(ctx).Create(snapshotModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindLatestByUserAndMonth retrieves the most recent snapshot for a user and
// month token. Returns nil without error when none exists.
func (r *adviceSnapshotRepository) FindLatestByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.AdviceSnapshot, error) {
	var snapshotModel model.AdviceSnapshotModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		Order("created_at DESC").
		First(&snapshotModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return snapshotModel.ToEntity(), nil
}

// DeleteOlderThan removes snapshots older than the given number of days.
func (r *adviceSnapshotRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	if days < 1 {
		return 0, fmt.Errorf("days must be positive, got %d", days)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.AdviceSnapshotModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
