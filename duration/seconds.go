package duration

import (
	"math"
	"math/big"

	"lukechampine.com/uint128"
)

// FloatSeconds adapts a floating point number of seconds.
// Fractions below the target resolution are truncated.
type FloatSeconds float64

// ToMilliseconds saturates at the int64 limits, NaN is zero.
func (s FloatSeconds) ToMilliseconds() int64 {
	ms := math.Trunc(float64(s) * 1e3)
	switch {
	case math.IsNaN(ms):
		return 0
	case ms >= math.MaxInt64:
		return math.MaxInt64
	case ms <= math.MinInt64:
		return math.MinInt64
	}
	return int64(ms)
}

// ToMicroseconds saturates at zero and at the uint128 limit, NaN is zero.
func (s FloatSeconds) ToMicroseconds() uint128.Uint128 {
	us := math.Trunc(float64(s) * 1e6)
	switch {
	case math.IsNaN(us), us <= 0:
		return uint128.Zero
	case us < math.MaxUint64:
		return uint128.From64(uint64(us))
	case math.IsInf(us, 1):
		return uint128.Max
	}

	i, _ := big.NewFloat(us).Int(nil)
	if i.BitLen() > 128 {
		return uint128.Max
	}
	return uint128.FromBig(i)
}
