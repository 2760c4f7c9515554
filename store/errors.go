package store

import "errors"

// ErrEntryTooLarge is wrapped in an OpError when a framed entry exceeds
// Options.MaxEntrySize.
var ErrEntryTooLarge = errors.New("nanowire/store: entry too large")

// OpError records the operation and key that failed along with the cause.
type OpError struct {
	Op  string // "get", "set", "encode", "delete"
	Key string
	Err error
}

func (e *OpError) Error() string {
	return "nanowire/store: " + e.Op + " " + e.Key + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error { return e.Err }
