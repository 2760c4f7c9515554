package store

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The store calls them on hot paths.
type Hooks interface {
	// An entry was deleted by the store on read.
	// reason ∈ {"corrupt", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)

	// The codec could not encode a value passed to Set.
	EncodeFailed(key string, err error)

	// A framed entry exceeded MaxEntrySize and was not written.
	EntryTooLarge(storageKey string, size int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)    {}
func (NopHooks) ProviderSetRejected(string) {}
func (NopHooks) EncodeFailed(string, error) {}
func (NopHooks) EntryTooLarge(string, int)  {}
