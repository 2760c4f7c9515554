package nanowire

import "github.com/unkn0wn-root/nanowire/internal/wire"

// Errors reported by Encode, Decode, Size and Append. The set is closed:
// an error raised by a Marshaler or Unmarshaler that is not one of these is
// reported as ErrCustom. Every error is terminal for the call that returned
// it and the buffer involved must be discarded.
var (
	// ErrOutOfSpace: a read or write needed more bytes than remained.
	ErrOutOfSpace = wire.ErrOutOfSpace
	// ErrInvalidRepresentation: bytes did not form a valid value of the
	// requested shape (bool, option tag, UTF-8).
	ErrInvalidRepresentation = wire.ErrInvalidRepresentation
	// ErrTooManyVariants: a sum type alternative index above 255.
	ErrTooManyVariants = wire.ErrTooManyVariants
	// ErrNotSupported: floats, maps, shape-erased values, owned buffers.
	ErrNotSupported = wire.ErrNotSupported
	// ErrLengthExceeded: a string, byte slice or sequence longer than MaxLen.
	ErrLengthExceeded = wire.ErrLengthExceeded
	// ErrCustom: a validation failure raised by the value's own code.
	ErrCustom = wire.ErrCustom
)

// IsCodecError reports whether err belongs to the codec's error set.
func IsCodecError(err error) bool { return wire.IsCodecError(err) }
