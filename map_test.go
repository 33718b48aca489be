package dcbor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapInsertKeepsAscendingOrder(t *testing.T) {
	m := NewMap()
	m.Insert(Text("z"), Int(1))
	m.Insert(Text("a"), Int(2))
	m.Insert(Text("m"), Int(3))

	entries := m.Iter()
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		require.Less(t, string(Encode(entries[i-1].Key)), string(Encode(entries[i].Key)))
	}
}

func TestMapInsertReplacesExistingKey(t *testing.T) {
	m := NewMap()
	m.Insert(Text("k"), Int(1))
	m.Insert(Text("k"), Int(2))

	require.Equal(t, 1, m.Len())
	v, ok := m.Get(Text("k"))
	require.True(t, ok)
	require.True(t, v.Equal(Int(2)))
}

func TestMapEightKeyMixedTypeOrdering(t *testing.T) {
	// spec example: keys (10, 100, -1, "z", "aa", [100], [-1], false) -> values 1..8
	m := NewMap()
	m.Insert(Int(10), Int(1))
	m.Insert(Int(100), Int(2))
	m.Insert(Int(-1), Int(3))
	m.Insert(Text("z"), Int(4))
	m.Insert(Text("aa"), Int(5))
	m.Insert(Array([]Value{Int(100)}), Int(6))
	m.Insert(Array([]Value{Int(-1)}), Int(7))
	m.Insert(Bool(false), Int(8))

	got := Encode(FromMap(m))
	want := []byte{
		0xa8,
		0x0a, 0x01,
		0x18, 0x64, 0x02,
		0x20, 0x03,
		0x61, 0x7a, 0x04,
		0x62, 0x61, 0x61, 0x05,
		0x81, 0x18, 0x64, 0x06,
		0x81, 0x20, 0x07,
		0xf4, 0x08,
	}
	require.Equal(t, want, got)
}

func TestMapInsertNextEnforcesStrictOrder(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.InsertNext(Int(1), Int(1)))
	require.NoError(t, m.InsertNext(Int(2), Int(2)))

	err := m.InsertNext(Int(2), Int(3))
	require.ErrorIs(t, err, ErrDuplicateMapKey)

	err = m.InsertNext(Int(1), Int(4))
	require.ErrorIs(t, err, ErrMisorderedMapKey)
}

func TestMapMustGetMissingKey(t *testing.T) {
	m := NewMap()
	_, err := m.MustGet(Int(1))
	require.ErrorIs(t, err, ErrMissingMapKey)
}

func TestMapIsEmpty(t *testing.T) {
	m := NewMap()
	require.True(t, m.IsEmpty())
	m.Insert(Int(1), Int(1))
	require.False(t, m.IsEmpty())
}
