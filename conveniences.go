package dcbor

// Convenience constructors mirroring the ergonomics of
// original_source/src/conveniences.rs: thin wrappers over the Value
// constructors in value.go, no new semantics.

// NewTextValue constructs a Text value from s.
func NewTextValue(s string) Value { return Text(s) }

// NewBytesValue constructs a ByteString value from b.
func NewBytesValue(b []byte) Value { return Bytes(b) }

// NewArrayValue constructs an Array value from a variadic element list.
func NewArrayValue(elems ...Value) Value { return Array(elems) }

// NewBoolValue constructs a boolean Simple value.
func NewBoolValue(b bool) Value { return Bool(b) }

// NewUintValue constructs an Unsigned value.
func NewUintValue(v uint64) Value { return Uint(v) }

// NewIntValue constructs the Unsigned or Negative case for a signed
// 64-bit value.
func NewIntValue(v int64) Value { return Int(v) }

// NewFloatValue constructs a canonicalized floating-point value.
func NewFloatValue(f float64) Value { return Float(f) }

// TextOf is a strict accessor returning ErrWrongType on mismatch, for
// callers that prefer a single call over the two-value accessor form.
func TextOf(v Value) (string, error) { return v.Text() }

// IntOf is a strict accessor returning ErrWrongType/ErrOutOfRange on
// mismatch.
func IntOf(v Value) (int64, error) { return v.Int() }
