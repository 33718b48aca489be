package dcbor

import (
	"bytes"
	"sort"
)

// MapEntry is one (key, value) pair as returned by Map.Iter, in canonical
// ascending encoded-key order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Map is the ordered-map container of spec.md §4.6: entries are keyed
// internally by the encoded bytes of the key value and kept in ascending
// lexicographic order of those bytes at all times, so Iter never needs to
// sort and Insert/Get never need to guess an encoding.
type Map struct {
	entries  []MapEntry
	keyBytes [][]byte // parallel to entries, kept in sync
}

// NewMap returns an empty Map.
func NewMap() *Map { return &Map{} }

func (m *Map) search(kb []byte) (idx int, found bool) {
	idx = sort.Search(len(m.keyBytes), func(i int) bool {
		return bytes.Compare(m.keyBytes[i], kb) >= 0
	})
	found = idx < len(m.keyBytes) && bytes.Equal(m.keyBytes[idx], kb)
	return idx, found
}

// Insert encodes k canonically and replaces any existing entry with the
// same encoded key, otherwise inserting in sorted position.
func (m *Map) Insert(k, v Value) {
	kb := Encode(k)
	idx, found := m.search(kb)
	if found {
		m.entries[idx] = MapEntry{Key: k, Value: v}
		return
	}
	m.entries = append(m.entries, MapEntry{})
	copy(m.entries[idx+1:], m.entries[idx:])
	m.entries[idx] = MapEntry{Key: k, Value: v}

	m.keyBytes = append(m.keyBytes, nil)
	copy(m.keyBytes[idx+1:], m.keyBytes[idx:])
	m.keyBytes[idx] = kb
}

// InsertNext is the decoder helper of spec.md §4.6: it never replaces, and
// fails with ErrMisorderedMapKey unless kb's encoded key is strictly
// greater than the previously inserted one, or ErrDuplicateMapKey if it is
// exactly equal.
func (m *Map) InsertNext(k, v Value) error {
	kb := Encode(k)
	if n := len(m.keyBytes); n > 0 {
		switch bytes.Compare(kb, m.keyBytes[n-1]) {
		case 0:
			return ErrDuplicateMapKey
		case -1:
			return ErrMisorderedMapKey
		}
	}
	m.entries = append(m.entries, MapEntry{Key: k, Value: v})
	m.keyBytes = append(m.keyBytes, kb)
	return nil
}

// Get returns the value whose encoded key equals encode(k).
func (m *Map) Get(k Value) (Value, bool) {
	kb := Encode(k)
	idx, found := m.search(kb)
	if !found {
		return Value{}, false
	}
	return m.entries[idx].Value, true
}

// MustGet is Get, but fails with ErrMissingMapKey instead of reporting
// absence via a boolean, for callers that treat the key as required.
func (m *Map) MustGet(k Value) (Value, error) {
	v, ok := m.Get(k)
	if !ok {
		return Value{}, ErrMissingMapKey
	}
	return v, nil
}

// Iter returns the entries in ascending encoded-key order. The returned
// slice aliases internal storage; callers must not mutate it.
func (m *Map) Iter() []MapEntry { return m.entries }

// Len returns the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// IsEmpty reports whether the map has no entries.
func (m *Map) IsEmpty() bool { return len(m.entries) == 0 }
