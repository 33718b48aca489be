package dcbor

import (
	"math"
	"unicode/utf8"

	"github.com/x448/float16"
)

// maxDecodeDepth bounds recursion depth as a safety valve against
// pathologically deep input; it is not part of the canonical-form rules
// themselves (every level of nesting still consumes real input bytes, so
// this only protects against unreasonable stack depth on hostile input).
const maxDecodeDepth = 4096

// decoder is a cursor over the input, in the spirit of the teacher's
// CborReader: a single offset advances monotonically as items are
// consumed, which lets every error report exactly where in the input it
// was detected.
type decoder struct {
	data []byte
	pos  int
}

// Decode parses data as a single complete dCBOR item, enforcing every
// canonical-form rule in spec.md §4 and §6. It fails with UnusedDataError
// if bytes remain after the root value (spec.md §6).
func Decode(data []byte) (Value, error) {
	d := &decoder{data: data}
	v, err := d.value(0)
	if err != nil {
		return Value{}, atOffset(err, d.pos)
	}
	if d.pos < len(d.data) {
		return Value{}, &UnusedDataError{N: len(d.data) - d.pos}
	}
	return v, nil
}

func (d *decoder) remaining() []byte { return d.data[d.pos:] }

func (d *decoder) value(depth int) (Value, error) {
	if depth > maxDecodeDepth {
		return Value{}, ErrInvalidCBOR
	}
	if d.pos >= len(d.data) {
		return Value{}, ErrUnderrun
	}

	mt, ai := decodeHead(d.data[d.pos])
	if ai == classIndefinite {
		return Value{}, &UnsupportedHeaderValueError{Byte: d.data[d.pos]}
	}

	switch mt {
	case majorUnsigned:
		val, n, err := readVarint(d.remaining(), majorUnsigned)
		if err != nil {
			return Value{}, err
		}
		d.pos += n
		return Uint(val), nil

	case majorNegative:
		val, n, err := readVarint(d.remaining(), majorNegative)
		if err != nil {
			return Value{}, err
		}
		d.pos += n
		return NegativeRaw(val), nil

	case majorBytes:
		return d.byteOrText(majorBytes)

	case majorText:
		return d.byteOrText(majorText)

	case majorArray:
		length, n, err := readVarint(d.remaining(), majorArray)
		if err != nil {
			return Value{}, err
		}
		d.pos += n
		elems := make([]Value, 0, minCap(length))
		for i := uint64(0); i < length; i++ {
			e, err := d.value(depth + 1)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, e)
		}
		return Array(elems), nil

	case majorMap:
		length, n, err := readVarint(d.remaining(), majorMap)
		if err != nil {
			return Value{}, err
		}
		d.pos += n
		m := NewMap()
		for i := uint64(0); i < length; i++ {
			k, err := d.value(depth + 1)
			if err != nil {
				return Value{}, err
			}
			v, err := d.value(depth + 1)
			if err != nil {
				return Value{}, err
			}
			if err := m.InsertNext(k, v); err != nil {
				return Value{}, err
			}
		}
		return FromMap(m), nil

	case majorTag:
		tagNum, n, err := readVarint(d.remaining(), majorTag)
		if err != nil {
			return Value{}, err
		}
		d.pos += n
		content, err := d.value(depth + 1)
		if err != nil {
			return Value{}, err
		}
		return Tagged(tagNum, content), nil

	case majorSimple:
		return d.simple(ai)

	default:
		return Value{}, ErrInvalidCBOR
	}
}

func minCap(length uint64) uint64 {
	if length > 4096 {
		return 4096
	}
	return length
}

func (d *decoder) byteOrText(mt majorType) (Value, error) {
	length, n, err := readVarint(d.remaining(), mt)
	if err != nil {
		return Value{}, err
	}
	if uint64(len(d.data)-d.pos-n) < length {
		return Value{}, ErrUnderrun
	}
	payload := d.data[d.pos+n : d.pos+n+int(length)]

	if mt == majorText {
		if !utf8.Valid(payload) {
			return Value{}, &InvalidStringError{Detail: "not well-formed UTF-8"}
		}
		d.pos += n + int(length)
		return Text(string(payload)), nil
	}

	out := make([]byte, length)
	copy(out, payload)
	d.pos += n + int(length)
	return Bytes(out), nil
}

func (d *decoder) simple(ai byte) (Value, error) {
	head := d.data[d.pos]
	switch ai {
	case 20:
		d.pos++
		return Bool(false), nil
	case 21:
		d.pos++
		return Bool(true), nil
	case 22:
		d.pos++
		return Null(), nil

	case 25: // half precision
		if len(d.data)-d.pos < 3 {
			return Value{}, ErrUnderrun
		}
		bits := uint16(d.data[d.pos+1])<<8 | uint16(d.data[d.pos+2])
		f32 := float16.Frombits(bits).Float32()
		f := float64(f32)
		if err := checkFloatCanonical16(f32, bits); err != nil {
			return Value{}, err
		}
		d.pos += 3
		return Float(f), nil

	case 26: // single precision
		if len(d.data)-d.pos < 5 {
			return Value{}, ErrUnderrun
		}
		bits := uint32(d.data[d.pos+1])<<24 | uint32(d.data[d.pos+2])<<16 | uint32(d.data[d.pos+3])<<8 | uint32(d.data[d.pos+4])
		f32 := math.Float32frombits(bits)
		f := float64(f32)
		if err := checkFloatCanonical32(f32); err != nil {
			return Value{}, err
		}
		d.pos += 5
		return Float(f), nil

	case 27: // double precision
		if len(d.data)-d.pos < 9 {
			return Value{}, ErrUnderrun
		}
		var bits uint64
		for i := 0; i < 8; i++ {
			bits = bits<<8 | uint64(d.data[d.pos+1+i])
		}
		f := math.Float64frombits(bits)
		if err := checkFloatCanonical64(f); err != nil {
			return Value{}, err
		}
		d.pos += 9
		return Float(f), nil

	case 28, 29, 30:
		return Value{}, &UnsupportedHeaderValueError{Byte: head}

	default: // 0-19, 23, 24
		return Value{}, ErrInvalidSimpleValue
	}
}

// checkFloatCanonical16 enforces spec.md §4.2 rule 3 for the width at
// which every NaN must live: the bit pattern must be exactly the
// canonical quiet NaN, f9 7e 00.
func checkFloatCanonical16(f32 float32, bits uint16) error {
	if math.IsNaN(float64(f32)) && bits != canonicalNaNBits {
		return ErrNonCanonicalNumeric
	}
	if !math.IsNaN(float64(f32)) && !math.IsInf(float64(f32), 0) {
		f := float64(f32)
		if _, ok := floatFitsInt64(f); ok {
			return ErrNonCanonicalNumeric
		}
		if _, ok := floatFitsUint64(f); ok {
			return ErrNonCanonicalNumeric
		}
	}
	return nil
}

// checkFloatCanonical32 enforces rules 3, 4, and 6 for a width-32 float:
// no NaN or infinity is ever canonical at this width (both live at width
// 16), and any value that round-trips through a narrower width is
// non-canonical.
func checkFloatCanonical32(f32 float32) error {
	f := float64(f32)
	if math.IsNaN(f) {
		return ErrNonCanonicalNumeric
	}
	if math.IsInf(f, 0) {
		return ErrNonCanonicalNumeric
	}
	if _, ok := floatFitsInt64(f); ok {
		return ErrNonCanonicalNumeric
	}
	if _, ok := floatFitsUint64(f); ok {
		return ErrNonCanonicalNumeric
	}
	if floatFitsFloat16(f32) {
		return ErrNonCanonicalNumeric
	}
	return nil
}

// checkFloatCanonical64 enforces rules 3, 4, and 6 for a width-64 float.
func checkFloatCanonical64(f float64) error {
	if math.IsNaN(f) {
		return ErrNonCanonicalNumeric
	}
	if math.IsInf(f, 0) {
		return ErrNonCanonicalNumeric
	}
	if _, ok := floatFitsInt64(f); ok {
		return ErrNonCanonicalNumeric
	}
	if _, ok := floatFitsUint64(f); ok {
		return ErrNonCanonicalNumeric
	}
	if floatFitsFloat32(f) {
		return ErrNonCanonicalNumeric
	}
	return nil
}
