package dcbor

// CBOREncodable is implemented by any type that knows how to turn itself
// into a Value, the "to value" conversion protocol of SPEC_FULL.md §3.1
// (grounded on original_source/src/cbor_encodable.rs and
// cbor_codable.rs's CBOREncodable trait).
type CBOREncodable interface {
	ToCBOR() Value
}

// CBORDecodable is implemented by any type that knows how to construct
// itself from a Value, the "from value" conversion protocol.
type CBORDecodable interface {
	FromCBOR(Value) error
}

// EncodeValue is the free-function half of the CBOREncodable protocol:
// it converts v to a Value and then to canonical bytes in one step.
func EncodeValue(v CBOREncodable) []byte {
	return Encode(v.ToCBOR())
}

// DecodeInto is the free-function half of the CBORDecodable protocol: it
// decodes data to a Value and feeds it to dst.FromCBOR.
func DecodeInto(data []byte, dst CBORDecodable) error {
	v, err := Decode(data)
	if err != nil {
		return err
	}
	return dst.FromCBOR(v)
}

// CBORTaggedEncodable is CBOREncodable for types with a conventional tag
// number: ToCBOR still returns the untagged content, and CBORTag reports
// the tag it should be wrapped in, per SPEC_FULL.md §3.1 (grounded on
// original_source/src/cbor_tagged_codable.rs).
type CBORTaggedEncodable interface {
	CBOREncodable
	CBORTag() uint64
}

// CBORTaggedDecodable is CBORDecodable for types with a conventional tag
// number: FromCBORUntagged is handed the already-unwrapped content, after
// DecodeTagged has validated the wrapping tag.
type CBORTaggedDecodable interface {
	CBORTag() uint64
	FromCBORUntagged(Value) error
}

// EncodeTagged wraps v's untagged encoding in its conventional tag.
func EncodeTagged(v CBORTaggedEncodable) []byte {
	return Encode(Tagged(v.CBORTag(), v.ToCBOR()))
}

// DecodeTagged decodes data, validates it carries dst's conventional tag
// (failing with WrongTagError otherwise), and feeds the untagged content
// to dst.FromCBORUntagged.
func DecodeTagged(data []byte, dst CBORTaggedDecodable) error {
	v, err := Decode(data)
	if err != nil {
		return err
	}
	content, err := v.TaggedWithTag(dst.CBORTag())
	if err != nil {
		return err
	}
	return dst.FromCBORUntagged(content)
}
