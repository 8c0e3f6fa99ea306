// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TipsCache caches advisor results keyed by a fingerprint of the inputs, so
// an unchanged month does not hit the AI provider twice.
type TipsCache interface {
	// Get retrieves a cached result. The bool reports whether the key was
	// present; a cache error is returned separately so callers can treat it
	// as a miss.
	Get(ctx context.Context, key string) (*SavingsTipsResult, bool, error)

	// Set stores a result under the key with a TTL.
	Set(ctx context.Context, key string, result *SavingsTipsResult, ttl time.Duration) error

	// Invalidate drops all cached entries for a user and month, called when
	// the underlying expenses or budget change.
	Invalidate(ctx context.Context, userID, month string) error
}
