package interfaces

//go:generate mockgen -source=idempotency_store_interface.go -destination=mocks/mock_idempotency_store.go -package=mock_interfaces

import "context"

// IIdempotencyStore guards retried requests. Reserve returns false when the
// key was already taken.
type IIdempotencyStore interface {
	Reserve(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
