package dcbor

import "math/big"

const (
	tagUnsignedBignum uint64 = 2
	tagNegativeBignum uint64 = 3
)

// minimalBigEndian returns the minimal big-endian magnitude of a
// nonnegative big.Int: no leading zero bytes, and zero maps to the empty
// byte string, per spec.md §4.9 rule 1.
func minimalBigEndian(v *big.Int) []byte {
	return v.Bytes() // big.Int.Bytes() is already minimal-length, big-endian.
}

// BigUint constructs the tag-2 encoding of a nonnegative big.Int. No
// integer reduction is performed: this is always tag 2, even when v fits
// in a plain CBOR unsigned integer, per spec.md §4.9 rule 1.
func BigUint(v *big.Int) Value {
	return Tagged(tagUnsignedBignum, Bytes(minimalBigEndian(v)))
}

// BigInt constructs the tag-2 (nonnegative) or tag-3 (negative) encoding
// of a big.Int, per spec.md §4.9 rule 2. A negative value v is encoded as
// tag 3 wrapping the minimal big-endian encoding of -1-v; the magnitude
// zero for that case (v == -1) must be the single byte 0x00, not an empty
// string; big.Int.Bytes() returns an empty slice for zero, so that case
// is special-cased below.
func BigInt(v *big.Int) Value {
	if v.Sign() >= 0 {
		return BigUint(v)
	}
	magnitude := new(big.Int).Neg(v)        // -v
	magnitude.Sub(magnitude, big.NewInt(1)) // -v - 1 == -1 - v
	b := minimalBigEndian(magnitude)
	if len(b) == 0 {
		b = []byte{0x00}
	}
	return Tagged(tagNegativeBignum, Bytes(b))
}

// valueToBigInt widens a Value to a big.Int per spec.md §4.9 rule 4: plain
// CBOR integers (Unsigned/Negative) are accepted by widening, tag-2/tag-3
// bignums are decoded directly, and anything else (including Float) is
// rejected.
func valueToBigInt(v Value) (*big.Int, error) {
	switch v.Kind() {
	case KindUnsigned:
		u, _ := v.Unsigned()
		return new(big.Int).SetUint64(u), nil
	case KindNegative:
		n, _ := v.NegativeRaw()
		result := new(big.Int).SetUint64(n)
		result.Add(result, big.NewInt(1))
		result.Neg(result)
		return result, nil
	case KindTagged:
		tagNum, content, _ := v.Tagged()
		b, err := content.Bytes()
		if err != nil {
			return nil, ErrWrongType
		}
		switch tagNum {
		case tagUnsignedBignum:
			if len(b) > 0 && b[0] == 0 {
				return nil, ErrNonCanonicalNumeric
			}
			return new(big.Int).SetBytes(b), nil
		case tagNegativeBignum:
			if len(b) == 0 {
				return nil, ErrNonCanonicalNumeric
			}
			if len(b) > 1 && b[0] == 0 {
				return nil, ErrNonCanonicalNumeric
			}
			magnitude := new(big.Int).SetBytes(b)
			magnitude.Add(magnitude, big.NewInt(1))
			return magnitude.Neg(magnitude), nil
		default:
			return nil, ErrWrongType
		}
	default:
		return nil, ErrWrongType
	}
}
