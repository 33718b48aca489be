package dcbor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructorShorthandsMatchCoreConstructors(t *testing.T) {
	require.True(t, NewTextValue("hi").Equal(Text("hi")))
	require.True(t, NewBytesValue([]byte{1}).Equal(Bytes([]byte{1})))
	require.True(t, NewArrayValue(Int(1), Int(2)).Equal(Array([]Value{Int(1), Int(2)})))
	require.True(t, NewBoolValue(true).Equal(Bool(true)))
	require.True(t, NewUintValue(5).Equal(Uint(5)))
	require.True(t, NewIntValue(-5).Equal(Int(-5)))
	require.True(t, NewFloatValue(1.5).Equal(Float(1.5)))
}

func TestTextOfAndIntOf(t *testing.T) {
	s, err := TextOf(Text("hey"))
	require.NoError(t, err)
	require.Equal(t, "hey", s)

	_, err = TextOf(Int(1))
	require.ErrorIs(t, err, ErrWrongType)

	n, err := IntOf(Int(-7))
	require.NoError(t, err)
	require.Equal(t, int64(-7), n)
}
