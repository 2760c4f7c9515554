package wire

import "errors"

// The closed error set shared by the cursor, the codecs and both engines.
// Values are preallocated so reporting them never allocates.
var (
	ErrOutOfSpace            = errors.New("nanowire: out of space")
	ErrInvalidRepresentation = errors.New("nanowire: invalid representation")
	ErrTooManyVariants       = errors.New("nanowire: too many variants")
	ErrNotSupported          = errors.New("nanowire: not supported")
	ErrLengthExceeded        = errors.New("nanowire: length exceeded")
	ErrCustom                = errors.New("nanowire: custom error")
)

// IsCodecError reports whether err is one of the sentinel errors above.
func IsCodecError(err error) bool {
	switch err {
	case ErrOutOfSpace, ErrInvalidRepresentation, ErrTooManyVariants,
		ErrNotSupported, ErrLengthExceeded, ErrCustom:
		return true
	}
	return false
}
