package dcbor

import "math"

// Kind identifies which of the eight CBOR cases a Value holds, per
// spec.md §3.
type Kind int

const (
	KindUnsigned Kind = iota
	KindNegative
	KindBytes
	KindText
	KindArray
	KindMap
	KindTagged
	KindSimple
)

func (k Kind) String() string {
	switch k {
	case KindUnsigned:
		return "unsigned"
	case KindNegative:
		return "negative"
	case KindBytes:
		return "bytes"
	case KindText:
		return "text"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindTagged:
		return "tagged"
	case KindSimple:
		return "simple"
	default:
		return "unknown"
	}
}

// SimpleKind distinguishes the three boolean/null simple values from the
// float case, per spec.md §3's Simple payload.
type SimpleKind int

const (
	SimpleFalse SimpleKind = iota
	SimpleTrue
	SimpleNull
	SimpleFloat
)

// Value is the closed sum of the eight CBOR cases described in spec.md §3.
// Once constructed it is immutable; every accessor either returns an
// aliased reference to internal data (cheap, for read-only use) or an
// owned copy (the *Owned variants), mirroring the two accessor kinds
// spec.md §6 requires.
type Value struct {
	kind Kind

	// KindUnsigned: the value itself. KindNegative: the raw n, where the
	// abstract value is -1-n (invariant 2).
	u uint64

	bytes []byte
	text  string
	arr   []Value
	m     *Map

	tagNum     uint64
	tagContent *Value

	simpleKind SimpleKind
	f          float64 // valid only when simpleKind == SimpleFloat
}

// Uint constructs an Unsigned value.
func Uint(v uint64) Value { return Value{kind: KindUnsigned, u: v} }

// Int constructs the Unsigned or Negative case for a signed 64-bit value,
// per spec.md §4.2 rule 1.
func Int(v int64) Value {
	if v >= 0 {
		return Value{kind: KindUnsigned, u: uint64(v)}
	}
	return Value{kind: KindNegative, u: uint64(-1 - v)}
}

// NegativeRaw constructs a Negative value directly from its raw n
// (abstract value -1-n), for callers reconstructing a decoded value or
// needing magnitudes beyond int64's range.
func NegativeRaw(n uint64) Value { return Value{kind: KindNegative, u: n} }

// Bytes constructs a ByteString value. The slice is retained, not copied;
// callers must not mutate it afterward.
func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// Text constructs a Text value. The caller is responsible for s being
// valid UTF-8 (invariant 1); the decoder enforces this on the wire, but
// values built directly from Go strings already carry that guarantee.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Array constructs an Array value from an ordered slice of elements. The
// slice is retained, not copied.
func Array(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// FromMap constructs a Map value.
func FromMap(m *Map) Value { return Value{kind: KindMap, m: m} }

// Tagged constructs a Tagged value wrapping content under tag number n.
func Tagged(n uint64, content Value) Value {
	c := content
	return Value{kind: KindTagged, tagNum: n, tagContent: &c}
}

// Bool constructs a Simple(false)/Simple(true) value.
func Bool(b bool) Value {
	if b {
		return Value{kind: KindSimple, simpleKind: SimpleTrue}
	}
	return Value{kind: KindSimple, simpleKind: SimpleFalse}
}

// Null constructs the Simple(null) value.
func Null() Value { return Value{kind: KindSimple, simpleKind: SimpleNull} }

// Float constructs a floating-point value, applying the canonicalization
// of spec.md §4.2 immediately: if f is exactly representable as an
// integer it becomes Unsigned/Negative instead of Simple(Float), negative
// zero becomes integer 0 (rule 5), and every NaN collapses to the single
// canonical quiet NaN (rule 3) so invariants 3 and 4 hold the instant the
// Value exists, not just at encode time.
func Float(f float64) Value {
	if f == 0 {
		return Value{kind: KindUnsigned, u: 0} // covers -0.0 too (rule 5)
	}
	if math.IsNaN(f) {
		return Value{kind: KindSimple, simpleKind: SimpleFloat, f: canonicalNaN()}
	}
	if math.IsInf(f, 0) {
		return Value{kind: KindSimple, simpleKind: SimpleFloat, f: f}
	}
	if iv, ok := floatFitsInt64(f); ok {
		return Int(iv)
	}
	if uv, ok := floatFitsUint64(f); ok {
		return Uint(uv)
	}
	return Value{kind: KindSimple, simpleKind: SimpleFloat, f: f}
}

func canonicalNaN() float64 {
	return math.Float64frombits(0x7ff8000000000000)
}

// Kind reports which of the eight cases v holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsUnsigned() bool { return v.kind == KindUnsigned }
func (v Value) IsNegative() bool { return v.kind == KindNegative }
func (v Value) IsBytes() bool    { return v.kind == KindBytes }
func (v Value) IsText() bool     { return v.kind == KindText }
func (v Value) IsArray() bool    { return v.kind == KindArray }
func (v Value) IsMap() bool      { return v.kind == KindMap }
func (v Value) IsTagged() bool   { return v.kind == KindTagged }
func (v Value) IsSimple() bool   { return v.kind == KindSimple }

func (v Value) IsBool() bool {
	return v.kind == KindSimple && (v.simpleKind == SimpleTrue || v.simpleKind == SimpleFalse)
}
func (v Value) IsNull() bool  { return v.kind == KindSimple && v.simpleKind == SimpleNull }
func (v Value) IsFloat() bool { return v.kind == KindSimple && v.simpleKind == SimpleFloat }

// Unsigned returns the payload of an Unsigned value.
func (v Value) Unsigned() (uint64, error) {
	if v.kind != KindUnsigned {
		return 0, ErrWrongType
	}
	return v.u, nil
}

// NegativeRaw returns the raw n of a Negative value (abstract value -1-n).
func (v Value) NegativeRaw() (uint64, error) {
	if v.kind != KindNegative {
		return 0, ErrWrongType
	}
	return v.u, nil
}

// Int returns the abstract signed value of an Unsigned or Negative value,
// failing with ErrOutOfRange if it does not fit in an int64.
func (v Value) Int() (int64, error) {
	switch v.kind {
	case KindUnsigned:
		if v.u > math.MaxInt64 {
			return 0, ErrOutOfRange
		}
		return int64(v.u), nil
	case KindNegative:
		if v.u > math.MaxInt64 {
			return 0, ErrOutOfRange
		}
		return -1 - int64(v.u), nil
	default:
		return 0, ErrWrongType
	}
}

// Bytes returns the payload of a ByteString value, aliasing internal
// storage; callers must not mutate the result.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, ErrWrongType
	}
	return v.bytes, nil
}

// BytesOwned returns a copy of the payload of a ByteString value.
func (v Value) BytesOwned() ([]byte, error) {
	b, err := v.Bytes()
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Text returns the payload of a Text value.
func (v Value) Text() (string, error) {
	if v.kind != KindText {
		return "", ErrWrongType
	}
	return v.text, nil
}

// Array returns the elements of an Array value, aliasing internal storage.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindArray {
		return nil, ErrWrongType
	}
	return v.arr, nil
}

// ArrayOwned returns a copy of the elements of an Array value.
func (v Value) ArrayOwned() ([]Value, error) {
	a, err := v.Array()
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(a))
	copy(out, a)
	return out, nil
}

// Map returns the Map container of a Map value.
func (v Value) Map() (*Map, error) {
	if v.kind != KindMap {
		return nil, ErrWrongType
	}
	return v.m, nil
}

// Tagged returns the tag number and content of a Tagged value.
func (v Value) Tagged() (uint64, Value, error) {
	if v.kind != KindTagged {
		return 0, Value{}, ErrWrongType
	}
	return v.tagNum, *v.tagContent, nil
}

// TaggedWithTag returns the content of a Tagged value, failing with
// WrongTagError if its tag number does not equal expected.
func (v Value) TaggedWithTag(expected uint64) (Value, error) {
	n, content, err := v.Tagged()
	if err != nil {
		return Value{}, err
	}
	if n != expected {
		return Value{}, &WrongTagError{Expected: expected, Actual: n}
	}
	return content, nil
}

// Bool returns the payload of a boolean Simple value.
func (v Value) Bool() (bool, error) {
	if v.kind != KindSimple || (v.simpleKind != SimpleTrue && v.simpleKind != SimpleFalse) {
		return false, ErrWrongType
	}
	return v.simpleKind == SimpleTrue, nil
}

// Float returns the payload of a Float Simple value, or the exact value
// of an Unsigned/Negative value widened to float64 (since §4.2 means an
// integer-valued float and its reduced integer form are the same abstract
// number).
func (v Value) Float() (float64, error) {
	switch v.kind {
	case KindSimple:
		if v.simpleKind != SimpleFloat {
			return 0, ErrWrongType
		}
		return v.f, nil
	case KindUnsigned:
		return float64(v.u), nil
	case KindNegative:
		return -1 - float64(v.u), nil
	default:
		return 0, ErrWrongType
	}
}

// Equal reports whether v and other have the same canonical encoding,
// which for dCBOR is exactly the question "do they represent the same
// abstract value" (§8 property 1/2: encode is injective on abstract
// values under the canonical form).
func (v Value) Equal(other Value) bool {
	return string(Encode(v)) == string(Encode(other))
}
