package store

import (
	"context"
	"time"

	"github.com/unkn0wn-root/nanowire"
	c "github.com/unkn0wn-root/nanowire/codec"
	pr "github.com/unkn0wn-root/nanowire/provider"
)

// SetCostFunc returns the cost passed to Provider.Set for a framed entry.
type SetCostFunc func(storageKey string, framed []byte) int64

// Store persists codec-encoded values of type V in a byte provider.
// Every entry is framed with a magic/version header and its length, so
// foreign or truncated bytes are detected on read and removed.
type Store[V any] interface {
	Enabled() bool
	Close(context.Context) error

	Get(ctx context.Context, key string) (v V, ok bool, err error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Options tune the behavior of a Store.
// Namespace, Provider and Codec are required; others have sensible defaults.
type Options[V any] struct {
	// Required
	Namespace string // logical namespace to avoid collisions. e.g. "user", "session"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Logger         nanowire.Logger // if nil, NopLogger is used
	Hooks          Hooks           // if nil, NopHooks is used
	DefaultTTL     time.Duration   // 0 => 10m
	MaxEntrySize   int             // framed bytes; 0 => unlimited
	ComputeSetCost SetCostFunc     // default 1
	Disabled       bool            // default false (enabled)
}

func New[V any](opts Options[V]) (Store[V], error) {
	return newStore[V](opts)
}
