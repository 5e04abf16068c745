package interfaces

//go:generate mockgen -source=lookup_cache_interface.go -destination=mocks/lookup_cache_interface_mock.go -package=mock_interfaces

import (
	"context"
	"time"
)

// ILookupCache stores serialized option lists for the form dropdowns.
type ILookupCache interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
