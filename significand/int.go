package significand

import "math"

// Int32 is a 32 bit significand. Shl10 looks the power of ten up in a
// table and multiplies once, widened to 64 bits to detect overflow.
type Int32 int32

var pow10x32 = [...]int32{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
}

func (x Int32) IsZero() bool {
	return x == 0
}

func (x Int32) Shl10(exp uint32) (Int32, bool) {
	if exp >= uint32(len(pow10x32)) {
		return 0, false
	}

	r := int64(x) * int64(pow10x32[exp])
	if r < math.MinInt32 || r > math.MaxInt32 {
		return 0, false
	}

	return Int32(r), true
}

func (x Int32) AddUnsigned(rhs uint32) (Int32, bool) {
	r := int64(x) + int64(rhs)
	if r > math.MaxInt32 {
		return 0, false
	}

	return Int32(r), true
}

func (x Int32) SubUnsigned(rhs uint32) (Int32, bool) {
	r := int64(x) - int64(rhs)
	if r < math.MinInt32 {
		return 0, false
	}

	return Int32(r), true
}

// ShiftInt32 is a 32 bit significand that multiplies by ten one decade at
// a time as (x << 3) + (x << 1), for targets where a widened multiply is
// expensive. Results agree with Int32 for every value either strategy can
// produce.
type ShiftInt32 int32

func (x ShiftInt32) IsZero() bool {
	return x == 0
}

func (x ShiftInt32) Shl10(exp uint32) (ShiftInt32, bool) {
	acc := x

	for ; exp > 0; exp-- {
		x8, ok := acc.shl(3)
		if !ok {
			return 0, false
		}

		x2, ok := acc.shl(1)
		if !ok {
			return 0, false
		}

		r := int64(x8) + int64(x2)
		if r < math.MinInt32 || r > math.MaxInt32 {
			return 0, false
		}

		acc = ShiftInt32(r)
	}

	return acc, true
}

func (x ShiftInt32) shl(n uint) (ShiftInt32, bool) {
	if x > math.MaxInt32>>n || x < math.MinInt32>>n {
		return 0, false
	}

	return x << n, true
}

func (x ShiftInt32) AddUnsigned(rhs uint32) (ShiftInt32, bool) {
	r := int64(x) + int64(rhs)
	if r > math.MaxInt32 {
		return 0, false
	}

	return ShiftInt32(r), true
}

func (x ShiftInt32) SubUnsigned(rhs uint32) (ShiftInt32, bool) {
	r := int64(x) - int64(rhs)
	if r < math.MinInt32 {
		return 0, false
	}

	return ShiftInt32(r), true
}

// Int64 is a 64 bit significand.
type Int64 int64

var pow10x64 = [...]int64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

func (x Int64) IsZero() bool {
	return x == 0
}

func (x Int64) Shl10(exp uint32) (Int64, bool) {
	if exp >= uint32(len(pow10x64)) {
		return 0, false
	}

	p := pow10x64[exp]

	r := int64(x) * p
	if x != 0 && r/p != int64(x) {
		return 0, false
	}

	return Int64(r), true
}

func (x Int64) AddUnsigned(rhs uint32) (Int64, bool) {
	if int64(x) > math.MaxInt64-int64(rhs) {
		return 0, false
	}

	return x + Int64(rhs), true
}

func (x Int64) SubUnsigned(rhs uint32) (Int64, bool) {
	if int64(x) < math.MinInt64+int64(rhs) {
		return 0, false
	}

	return x - Int64(rhs), true
}
