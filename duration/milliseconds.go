package duration

import (
	"sync"
	"time"

	"github.com/jxs13/niceduration/format"
)

// ToMilliseconds is implemented by everything that knows its length in milliseconds.
type ToMilliseconds interface {
	ToMilliseconds() int64
}

var millisecondUnits = sync.OnceValue(func() format.Table[format.Int64] {
	return format.NewTable(
		format.Step[format.Int64]{Multiplier: 1, Long: " millisecond", Short: "ms"},
		format.Step[format.Int64]{Multiplier: 1000, Long: " second", Short: "s"},
		format.Step[format.Int64]{Multiplier: 60, Long: " minute", Short: "m"},
		format.Step[format.Int64]{Multiplier: 60, Long: " hour", Short: "h"},
		format.Step[format.Int64]{Multiplier: 24, Long: " day", Short: "d"},
		format.Step[format.Int64]{Multiplier: 7, Long: " week", Short: "w"},
	)
})

// MillisecondUnits returns the units used by NiceDuration, smallest first.
func MillisecondUnits() []format.Unit[format.Int64] {
	return millisecondUnits().Units()
}

// NiceDuration formats the milliseconds of src, skipping all units that are
// finer than precision. Zero is formatted as "0s".
func NiceDuration(src ToMilliseconds, precision Precision, shortUnits bool, opts ...Option) string {
	value := format.Int64(src.ToMilliseconds())
	if value.IsZero() {
		return "0s"
	}
	return render(
		newOptions(opts),
		millisecondUnits().Window(int(precision)),
		shortUnits,
		value,
	)
}

func render[V format.Value[V]](o options, units []format.Unit[V], shortUnits bool, value V) string {
	buf := o.newAppender()
	format.Custom(buf, units, shortUnits, value)
	s, err := buf.String()
	if err != nil {
		// only digits, unit names and spaces are ever appended
		panic("failed to generate duration string: " + err.Error())
	}
	return s
}

// Millis is a raw millisecond count.
type Millis int64

func (m Millis) ToMilliseconds() int64 {
	return int64(m)
}

// Std adapts a time.Duration.
type Std time.Duration

func (d Std) ToMilliseconds() int64 {
	return time.Duration(d).Milliseconds()
}
