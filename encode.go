package dcbor

import (
	"math"

	"github.com/x448/float16"
)

// Encode produces the canonical dCBOR byte sequence for v. Because the
// Value model's own constructors (Float, Map.Insert, Set.Insert) already
// enforce the shape invariants of spec.md §3, Encode has no runtime error
// path: any Value reachable through the public API is encodable, per
// spec.md §7 ("the encoder has no runtime errors on well-formed value
// models").
func Encode(v Value) []byte {
	return appendValue(make([]byte, 0, 64), v)
}

func appendValue(buf []byte, v Value) []byte {
	switch v.kind {
	case KindUnsigned:
		return appendVarint(buf, majorUnsigned, v.u)

	case KindNegative:
		return appendVarint(buf, majorNegative, v.u)

	case KindBytes:
		buf = appendVarint(buf, majorBytes, uint64(len(v.bytes)))
		return append(buf, v.bytes...)

	case KindText:
		buf = appendVarint(buf, majorText, uint64(len(v.text)))
		return append(buf, v.text...)

	case KindArray:
		buf = appendVarint(buf, majorArray, uint64(len(v.arr)))
		for _, e := range v.arr {
			buf = appendValue(buf, e)
		}
		return buf

	case KindMap:
		entries := v.m.Iter()
		buf = appendVarint(buf, majorMap, uint64(len(entries)))
		for _, e := range entries {
			buf = appendValue(buf, e.Key)
			buf = appendValue(buf, e.Value)
		}
		return buf

	case KindTagged:
		buf = appendVarint(buf, majorTag, v.tagNum)
		return appendValue(buf, *v.tagContent)

	case KindSimple:
		return appendSimple(buf, v)

	default:
		panic("dcbor: Value has invalid kind")
	}
}

func appendSimple(buf []byte, v Value) []byte {
	switch v.simpleKind {
	case SimpleFalse:
		return append(buf, encodeHead(majorSimple, 20))
	case SimpleTrue:
		return append(buf, encodeHead(majorSimple, 21))
	case SimpleNull:
		return append(buf, encodeHead(majorSimple, 22))
	case SimpleFloat:
		return appendFloat(buf, v.f)
	default:
		panic("dcbor: Value has invalid simple kind")
	}
}

// appendFloat writes f per spec.md §4.2 rules 2-4. By the time a float
// reaches here it is guaranteed (by the Float constructor) to not be an
// integer-valued or zero float, but NaN and infinity still need their
// unconditional canonical forms.
func appendFloat(buf []byte, f float64) []byte {
	if math.IsNaN(f) {
		return append(buf, encodeHead(majorSimple, class2Byte), 0x7e, 0x00)
	}
	if math.IsInf(f, 0) {
		h := float16.Fromfloat32(float32(f))
		buf = append(buf, encodeHead(majorSimple, class2Byte))
		return appendUint16(buf, uint16(h))
	}

	switch reduceFloatWidth(f) {
	case 16:
		h := float16.Fromfloat32(float32(f))
		buf = append(buf, encodeHead(majorSimple, class2Byte))
		return appendUint16(buf, uint16(h))
	case 32:
		buf = append(buf, encodeHead(majorSimple, class4Byte))
		return appendUint32(buf, math.Float32bits(float32(f)))
	default:
		buf = append(buf, encodeHead(majorSimple, class8Byte))
		return appendUint64(buf, math.Float64bits(f))
	}
}

func appendUint16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendUint32(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendUint64(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
