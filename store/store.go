package store

import (
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/nanowire"
	c "github.com/unkn0wn-root/nanowire/codec"
	"github.com/unkn0wn-root/nanowire/internal/util"
	"github.com/unkn0wn-root/nanowire/internal/wire"
	pr "github.com/unkn0wn-root/nanowire/provider"
)

const defaultTTL = 10 * time.Minute

type store[V any] struct {
	ns             string
	provider       pr.Provider
	codec          c.Codec[V]
	log            nanowire.Logger
	hooks          Hooks
	enabled        bool
	defaultTTL     time.Duration
	maxEntrySize   int
	computeSetCost SetCostFunc
}

func newStore[V any](opts Options[V]) (*store[V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("nanowire/store: provider is required")
	}
	if opts.Codec == nil {
		return nil, fmt.Errorf("nanowire/store: codec is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("nanowire/store: namespace is required")
	}
	if opts.MaxEntrySize < 0 {
		return nil, fmt.Errorf("nanowire/store: negative MaxEntrySize %d", opts.MaxEntrySize)
	}

	s := &store[V]{
		ns:           opts.Namespace,
		provider:     opts.Provider,
		codec:        opts.Codec,
		enabled:      !opts.Disabled,
		maxEntrySize: opts.MaxEntrySize,
	}

	// defaults
	s.log = util.Coalesce[nanowire.Logger](opts.Logger, nanowire.NopLogger{})
	s.hooks = util.Coalesce[Hooks](opts.Hooks, NopHooks{})
	s.defaultTTL = util.Coalesce(opts.DefaultTTL, defaultTTL)

	if opts.ComputeSetCost != nil {
		s.computeSetCost = opts.ComputeSetCost
	} else {
		s.computeSetCost = func(string, []byte) int64 { return 1 }
	}
	return s, nil
}

func (s *store[V]) Enabled() bool { return s.enabled }

func (s *store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	k := s.entryKey(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		return zero, false, &OpError{Op: "get", Key: key, Err: err}
	}
	if !ok {
		return zero, false, nil
	}
	payload, err := wire.DecodeFrame(raw)
	if err != nil {
		s.heal(ctx, k, "corrupt", err)
		return zero, false, nil
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.heal(ctx, k, "value_decode", err)
		return zero, false, nil
	}
	return v, true, nil
}

func (s *store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	payload, err := s.codec.Encode(value)
	if err != nil {
		s.hooks.EncodeFailed(key, err)
		return &OpError{Op: "encode", Key: key, Err: err}
	}
	framed, err := wire.EncodeFrame(payload)
	if err != nil {
		return &OpError{Op: "encode", Key: key, Err: err}
	}

	k := s.entryKey(key)
	if s.maxEntrySize > 0 && len(framed) > s.maxEntrySize {
		s.hooks.EntryTooLarge(k, len(framed))
		return &OpError{Op: "set", Key: key, Err: fmt.Errorf("%w: %d > %d", ErrEntryTooLarge, len(framed), s.maxEntrySize)}
	}
	ok, err := s.provider.Set(ctx, k, framed, s.computeSetCost(k, framed), ttl)
	if err != nil {
		return &OpError{Op: "set", Key: key, Err: err}
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("Set rejected by provider (pressure)", nanowire.Fields{"key": key})
	}
	return nil
}

func (s *store[V]) Delete(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	if err := s.provider.Del(ctx, s.entryKey(key)); err != nil {
		return &OpError{Op: "delete", Key: key, Err: err}
	}
	return nil
}

// heal drops an unreadable entry so the next Set starts clean.
func (s *store[V]) heal(ctx context.Context, storageKey, reason string, cause error) {
	s.hooks.SelfHeal(storageKey, reason)
	if err := s.provider.Del(ctx, storageKey); err != nil {
		s.log.Warn("self-heal delete failed", nanowire.Fields{"key": storageKey, "reason": reason, "err": err})
		return
	}
	s.log.Debug("self-healed entry", nanowire.Fields{"key": storageKey, "reason": reason, "err": cause})
}

func (s *store[V]) entryKey(userKey string) string {
	// isolate by namespace
	return "entry:" + s.ns + ":" + userKey
}
