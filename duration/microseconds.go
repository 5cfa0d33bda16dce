package duration

import (
	"sync"
	"time"

	"github.com/jxs13/niceduration/format"
	"lukechampine.com/uint128"
)

// ToMicroseconds is implemented by everything that knows its length in microseconds.
type ToMicroseconds interface {
	ToMicroseconds() uint128.Uint128
}

var microsecondUnits = sync.OnceValue(func() format.Table[format.Uint128] {
	return format.NewTable(
		format.Step[format.Uint128]{Multiplier: format.U64(1), Long: " microsecond", Short: "µs"},
		format.Step[format.Uint128]{Multiplier: format.U64(1000), Long: " millisecond", Short: "ms"},
		format.Step[format.Uint128]{Multiplier: format.U64(1000), Long: " second", Short: "s"},
		format.Step[format.Uint128]{Multiplier: format.U64(60), Long: " minute", Short: "m"},
		format.Step[format.Uint128]{Multiplier: format.U64(60), Long: " hour", Short: "h"},
		format.Step[format.Uint128]{Multiplier: format.U64(24), Long: " day", Short: "d"},
		format.Step[format.Uint128]{Multiplier: format.U64(7), Long: " week", Short: "w"},
	)
})

// MicrosecondUnits returns the units used by NiceDurationMicro, smallest first.
func MicrosecondUnits() []format.Unit[format.Uint128] {
	return microsecondUnits().Units()
}

// NiceDurationMicro is NiceDuration with microsecond resolution.
func NiceDurationMicro(src ToMicroseconds, precision PrecisionMicro, shortUnits bool, opts ...Option) string {
	value := format.U128(src.ToMicroseconds())
	if value.IsZero() {
		return "0s"
	}
	return render(
		newOptions(opts),
		microsecondUnits().Window(int(precision)),
		shortUnits,
		value,
	)
}

// Micros is a raw microsecond count.
type Micros uint128.Uint128

func (m Micros) ToMicroseconds() uint128.Uint128 {
	return uint128.Uint128(m)
}

// Negative durations are reported as zero.
func (d Std) ToMicroseconds() uint128.Uint128 {
	us := time.Duration(d).Microseconds()
	if us < 0 {
		return uint128.Zero
	}
	return uint128.From64(uint64(us))
}
