package dcbor

import (
	"errors"
	"fmt"
)

// Sentinel errors covering every decode/accessor failure mode that carries
// no extra payload. Kinds that need a payload (a byte, an offset, a pair of
// expected/actual values) get their own struct type below instead, per the
// original CborError/TypeMismatchError split.
var (
	// ErrUnderrun is returned when the input ends inside an item.
	ErrUnderrun = errors.New("dcbor: input ended inside an item")

	// ErrInvalidCBOR is returned when the byte stream is not well-formed
	// CBOR at all (wrong major type where one was required, etc).
	ErrInvalidCBOR = errors.New("dcbor: invalid CBOR data")

	// ErrNonCanonicalNumeric is returned when an integer, float, or bignum
	// is not in its shortest canonical form.
	ErrNonCanonicalNumeric = errors.New("dcbor: non-canonical numeric encoding")

	// ErrInvalidSimpleValue is returned for any major-type-7 simple value
	// other than false, true, null, or a float.
	ErrInvalidSimpleValue = errors.New("dcbor: invalid simple value")

	// ErrMisorderedMapKey is returned when map keys are not in strictly
	// ascending encoded-key order.
	ErrMisorderedMapKey = errors.New("dcbor: map keys are not in canonical order")

	// ErrDuplicateMapKey is returned when two map entries share an equal
	// encoded key.
	ErrDuplicateMapKey = errors.New("dcbor: duplicate map key")

	// ErrMissingMapKey is returned when an accessor requires a key that is
	// absent from the map.
	ErrMissingMapKey = errors.New("dcbor: required map key is missing")

	// ErrOutOfRange is returned when a numeric conversion would lose
	// information (e.g. decoding a u64 into an int16).
	ErrOutOfRange = errors.New("dcbor: value out of range for target type")

	// ErrWrongType is returned when an accessor is called on an
	// incompatible Value case.
	ErrWrongType = errors.New("dcbor: wrong value type")

	// ErrInvalidString is the sentinel for UTF-8 validation failures;
	// compare against it with errors.Is. The detail lives on
	// InvalidStringError.
	ErrInvalidString = errors.New("dcbor: invalid UTF-8 in text string")

	// ErrUnusedData is the sentinel for trailing bytes after a complete
	// top-level item; compare against it with errors.Is.
	ErrUnusedData = errors.New("dcbor: unused trailing data")

	// ErrWrongTag is the sentinel for tagged-value expectation mismatches;
	// compare against it with errors.Is.
	ErrWrongTag = errors.New("dcbor: wrong tag")
)

// UnsupportedHeaderValueError reports a reserved or forbidden initial byte:
// an argument class of 28-31, or an indefinite-length head, neither of
// which dCBOR ever accepts.
type UnsupportedHeaderValueError struct {
	Byte byte
}

func (e *UnsupportedHeaderValueError) Error() string {
	return fmt.Sprintf("dcbor: unsupported header byte 0x%02x", e.Byte)
}

// InvalidStringError reports UTF-8 validation failure in a Text item.
type InvalidStringError struct {
	Detail string
}

func (e *InvalidStringError) Error() string {
	return fmt.Sprintf("dcbor: invalid UTF-8 in text string: %s", e.Detail)
}

func (e *InvalidStringError) Is(target error) bool { return target == ErrInvalidString }

// UnusedDataError reports that decoding a complete top-level item left n
// bytes unconsumed.
type UnusedDataError struct {
	N int
}

func (e *UnusedDataError) Error() string {
	return fmt.Sprintf("dcbor: %d unused byte(s) after top-level item", e.N)
}

func (e *UnusedDataError) Is(target error) bool { return target == ErrUnusedData }

// WrongTagError reports that a tagged-value accessor found a tag number
// other than the one it expected.
type WrongTagError struct {
	Expected, Actual uint64
}

func (e *WrongTagError) Error() string {
	return fmt.Sprintf("dcbor: expected tag %d but found tag %d", e.Expected, e.Actual)
}

func (e *WrongTagError) Is(target error) bool { return target == ErrWrongTag }

// decodeError wraps an underlying error with the byte offset at which it
// was detected, mirroring the original CborError.
type decodeError struct {
	err    error
	offset int
}

func (e *decodeError) Error() string {
	return fmt.Sprintf("dcbor: at offset %d: %v", e.offset, e.err)
}

func (e *decodeError) Unwrap() error { return e.err }

func atOffset(err error, offset int) error {
	if err == nil {
		return nil
	}
	return &decodeError{err: err, offset: offset}
}
