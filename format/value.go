package format

import (
	"strconv"

	"lukechampine.com/uint128"
)

// Value is the arithmetic a duration count needs in order to be split into units.
// V is the implementing type itself.
type Value[V any] interface {
	// More reports whether the value is strictly greater than other.
	More(other V) bool
	// Divide is truncating division.
	Divide(other V) V
	Minus(other V) V
	Mul(other V) V
	IsOne() bool
	IsZero() bool
	String() string
}

// Int64 is a signed 64 bit count, used for millisecond based durations.
type Int64 int64

func (v Int64) More(other Int64) bool    { return v > other }
func (v Int64) Divide(other Int64) Int64 { return v / other }
func (v Int64) Minus(other Int64) Int64  { return v - other }
func (v Int64) Mul(other Int64) Int64    { return v * other }
func (v Int64) IsOne() bool              { return v == 1 }
func (v Int64) IsZero() bool             { return v == 0 }
func (v Int64) String() string           { return strconv.FormatInt(int64(v), 10) }

// Uint128 is an unsigned 128 bit count, used for microsecond based durations
// which leave the int64 range a lot sooner.
type Uint128 struct {
	uint128.Uint128
}

func U128(u uint128.Uint128) Uint128 {
	return Uint128{u}
}

func U64(v uint64) Uint128 {
	return Uint128{uint128.From64(v)}
}

func (v Uint128) More(other Uint128) bool {
	return v.Cmp(other.Uint128) > 0
}

func (v Uint128) Divide(other Uint128) Uint128 {
	return Uint128{v.Div(other.Uint128)}
}

// Minus panics on underflow, which the decomposition never causes.
func (v Uint128) Minus(other Uint128) Uint128 {
	return Uint128{v.Sub(other.Uint128)}
}

func (v Uint128) Mul(other Uint128) Uint128 {
	return Uint128{v.Uint128.Mul(other.Uint128)}
}

func (v Uint128) IsOne() bool {
	return v.Equals64(1)
}

func (v Uint128) IsZero() bool {
	return v.Uint128.IsZero()
}

func (v Uint128) String() string {
	return v.Uint128.String()
}
