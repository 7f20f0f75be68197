package store

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/scorage/internal/repositories/store Repository

import (
	"context"
)

// Repository is the key-value store a ledger snapshot is persisted to.
// Values are opaque documents; each ledger has its own key space.
type Repository interface {
	// Enabled reports whether writes are persisted at all
	Enabled() bool

	// Get reads the value stored under a key
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Set stores a value under a key. It is a no-op when the store is disabled.
	Set(ctx context.Context, input *SetInput) error
}
