// Package dcbor implements deterministic CBOR (dCBOR): a profile of
// RFC 8949 that constrains the wire format so that every abstract value
// has exactly one valid byte encoding.
//
// The package is laid out as a flat set of small, focused files rather
// than one large one: varint.go and numeric.go are the bottom layer
// (variable-length integer codec and exact numeric conversions),
// value.go/map.go/set.go/bignum.go are the value model, encode.go and
// decode.go are the codec, tag.go is the tag registry, diagnostic.go and
// hex.go are the printers, and walk.go is the tree walker. codable.go
// and conveniences.go add optional value-conversion protocols and
// constructor shorthands layered on top of the value model.
package dcbor
