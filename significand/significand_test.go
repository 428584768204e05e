package significand

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt32IsZero(t *testing.T) {
	require.True(t, Int32(0).IsZero())
	require.False(t, Int32(9).IsZero())
}

func TestInt32Shl10(t *testing.T) {
	type TC struct {
		x   int32
		exp uint32
		r   int32
		ok  bool
	}

	tcs := []TC{
		{x: 0, exp: 0, r: 0, ok: true},
		{x: 6, exp: 0, r: 6, ok: true},
		{x: 6, exp: 4, r: 60000, ok: true},
		{x: -6, exp: 4, r: -60000, ok: true},
		{x: 1, exp: 9, r: 1_000_000_000, ok: true},
		{x: 3, exp: 9, ok: false},
		{x: math.MaxInt32, exp: 1, ok: false},
		{x: math.MinInt32, exp: 1, ok: false},
		{x: 1, exp: 10, ok: false},
		{x: 0, exp: 10, ok: false},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d-shl10-%d", tc.x, tc.exp), func(t *testing.T) {
			r, ok := Int32(tc.x).Shl10(tc.exp)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, Int32(tc.r), r)
			}
		})
	}
}

func TestInt32AddUnsigned(t *testing.T) {
	r, ok := Int32(7).AddUnsigned(8)
	require.True(t, ok)
	require.Equal(t, Int32(15), r)

	_, ok = Int32(math.MaxInt32).AddUnsigned(1)
	require.False(t, ok)
}

func TestInt32SubUnsigned(t *testing.T) {
	r, ok := Int32(-9).SubUnsigned(3)
	require.True(t, ok)
	require.Equal(t, Int32(-12), r)

	_, ok = Int32(math.MinInt32).SubUnsigned(1)
	require.False(t, ok)
}

func TestShiftInt32MatchesInt32(t *testing.T) {
	values := []int32{
		0, 1, -1, 7, -13, 99, 4_096,
		214_748_364, -214_748_364,
		math.MaxInt32, math.MinInt32,
	}

	for _, v := range values {
		for exp := uint32(0); exp <= 10; exp++ {
			if v == 0 && exp >= uint32(len(pow10x32)) {
				// The table strategy gives up past its table
				// even for a zero significand; the shift
				// strategy keeps shifting zero.
				continue
			}

			a, aok := Int32(v).Shl10(exp)
			b, bok := ShiftInt32(v).Shl10(exp)

			require.Equal(t, aok, bok, "value %d exp %d", v, exp)
			if aok {
				require.Equal(t, int32(a), int32(b), "value %d exp %d", v, exp)
			}
		}
	}
}

func TestInt64Shl10(t *testing.T) {
	type TC struct {
		x   int64
		exp uint32
		r   int64
		ok  bool
	}

	tcs := []TC{
		{x: 6, exp: 4, r: 60_000, ok: true},
		{x: 1, exp: 18, r: 1_000_000_000_000_000_000, ok: true},
		{x: 922_337_203_685_477_580, exp: 1, r: 9_223_372_036_854_775_800, ok: true},
		{x: 922_337_203_685_477_581, exp: 1, ok: false},
		{x: -922_337_203_685_477_580, exp: 1, r: -9_223_372_036_854_775_800, ok: true},
		{x: 10, exp: 18, ok: false},
		{x: 1, exp: 19, ok: false},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d-shl10-%d", tc.x, tc.exp), func(t *testing.T) {
			r, ok := Int64(tc.x).Shl10(tc.exp)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, Int64(tc.r), r)
			}
		})
	}
}

func TestInt64AddSubUnsigned(t *testing.T) {
	r, ok := Int64(7).AddUnsigned(8)
	require.True(t, ok)
	require.Equal(t, Int64(15), r)

	_, ok = Int64(math.MaxInt64).AddUnsigned(1)
	require.False(t, ok)

	s, ok := Int64(-9).SubUnsigned(3)
	require.True(t, ok)
	require.Equal(t, Int64(-12), s)

	_, ok = Int64(math.MinInt64).SubUnsigned(1)
	require.False(t, ok)
}

func TestAppendDigit(t *testing.T) {
	type TC struct {
		name string
		s    int32
		exp  uint32
		c    byte
		sign Sign
		r    int32
		ok   bool
	}

	tcs := []TC{
		{name: "positive", s: 8, exp: 2, c: '9', sign: Positive, r: 809, ok: true},
		{name: "negative", s: -2, exp: 3, c: '5', sign: Negative, r: -2005, ok: true},
		{name: "non-digit", s: 3, exp: 1, c: 'a', sign: Positive, ok: false},
		{name: "overflow-shift", s: math.MaxInt32, exp: 1, c: '0', sign: Positive, ok: false},
		{name: "overflow-add", s: 214_748_364, exp: 1, c: '8', sign: Positive, ok: false},
		{name: "max", s: 214_748_364, exp: 1, c: '7', sign: Positive, r: math.MaxInt32, ok: true},
		{name: "min", s: -214_748_364, exp: 1, c: '8', sign: Negative, r: math.MinInt32, ok: true},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r, ok := AppendDigit(Int32(tc.s), tc.exp, tc.c, tc.sign)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				require.Equal(t, Int32(tc.r), r)
			}
		})
	}
}

func TestSignString(t *testing.T) {
	require.Equal(t, "+", Positive.String())
	require.Equal(t, "-", Negative.String())
}
