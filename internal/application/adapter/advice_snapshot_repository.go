// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/smart-expense/backend/internal/domain/entity"
)

// AdviceSnapshotRepository defines the interface for advice snapshot persistence.
// Snapshots record what was shown to the user and where it came from.
type AdviceSnapshotRepository interface {
	// Create stores a new advice snapshot.
	Create(ctx context.Context, snapshot *entity.AdviceSnapshot) error

	// FindLatestByUserAndMonth retrieves the most recent snapshot for a
	// user and month token. Returns nil without error when none exists.
	FindLatestByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) (*entity.AdviceSnapshot, error)

	// DeleteOlderThan removes snapshots older than the given number of days.
	// Returns the number of deleted snapshots.
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}
