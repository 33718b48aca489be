package dcbor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeConcreteScenarios(t *testing.T) {
	require.Equal(t, []byte{0x18, 0x2a}, Encode(Int(42)))
	require.Equal(t, []byte{0x20}, Encode(Int(-1)))
	require.Equal(t,
		[]byte{0x83, 0x19, 0x03, 0xe8, 0x19, 0x07, 0xd0, 0x19, 0x0b, 0xb8},
		Encode(Array([]Value{Int(1000), Int(2000), Int(3000)})))
	require.Equal(t,
		[]byte{0xc1, 0x65, 0x48, 0x65, 0x6c, 0x6c, 0x6f},
		Encode(Tagged(1, Text("Hello"))))
}

func TestEncodeIntegerClassBoundaries(t *testing.T) {
	tests := []struct {
		v    int64
		want []byte
	}{
		{0, []byte{0x00}},
		{23, []byte{0x17}},
		{24, []byte{0x18, 0x18}},
		{255, []byte{0x18, 0xff}},
		{256, []byte{0x19, 0x01, 0x00}},
		{65535, []byte{0x19, 0xff, 0xff}},
		{65536, []byte{0x1a, 0x00, 0x01, 0x00, 0x00}},
		{math.MaxInt32, []byte{0x1a, 0x7f, 0xff, 0xff, 0xff}},
		{-1, []byte{0x20}},
		{-24, []byte{0x37}},
		{-25, []byte{0x38, 0x18}},
		{-256, []byte{0x38, 0xff}},
		{-257, []byte{0x39, 0x01, 0x00}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Encode(Int(tt.v)), "encode(%d)", tt.v)
	}
}

func TestEncodeMaxUint64Boundary(t *testing.T) {
	got := Encode(Uint(math.MaxUint64))
	want := []byte{0x1b, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	require.Equal(t, want, got)
}

func TestEncodeFloatWidthBoundaries(t *testing.T) {
	// 1.5 fits binary16.
	got := Encode(Float(1.5))
	require.Equal(t, byte(0xf9), got[0])

	// 2345678.25 needs binary32.
	got = Encode(Float(2345678.25))
	require.Equal(t, byte(0xfa), got[0])

	// 1.2 needs binary64.
	got = Encode(Float(1.2))
	require.Equal(t, byte(0xfb), got[0])
}

func TestEncodeCanonicalNaN(t *testing.T) {
	got := Encode(Float(math.NaN()))
	require.Equal(t, []byte{0xf9, 0x7e, 0x00}, got)
}

func TestEncodeInfinityAlwaysHalfWidth(t *testing.T) {
	require.Equal(t, []byte{0xf9, 0x7c, 0x00}, Encode(Float(math.Inf(1))))
	require.Equal(t, []byte{0xf9, 0xfc, 0x00}, Encode(Float(math.Inf(-1))))
}

func TestEncodeNegativeZeroIsIntegerZero(t *testing.T) {
	got := Encode(Float(math.Copysign(0, -1)))
	require.Equal(t, []byte{0x00}, got)
}

func TestEncodeBoolAndNull(t *testing.T) {
	require.Equal(t, []byte{0xf4}, Encode(Bool(false)))
	require.Equal(t, []byte{0xf5}, Encode(Bool(true)))
	require.Equal(t, []byte{0xf6}, Encode(Null()))
}

func TestEncodeTextAndBytes(t *testing.T) {
	require.Equal(t, []byte{0x64, 0x68, 0x65, 0x79, 0x21}, Encode(Text("hey!")))
	require.Equal(t, []byte{0x43, 0x01, 0x02, 0x03}, Encode(Bytes([]byte{1, 2, 3})))
}

