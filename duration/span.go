package duration

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"lukechampine.com/uint128"
)

var (
	ErrOutOfRange   = errors.New("duration out of range")
	ErrNegativeSpan = errors.New("negative duration")
)

var (
	nanosPerSecond      = big.NewInt(int64(time.Second))
	nanosPerMillisecond = big.NewInt(int64(time.Millisecond))
	nanosPerMicrosecond = big.NewInt(int64(time.Microsecond))
)

// Span is the distance between two points in time.
// Unlike time.Time.Sub it does not saturate at roughly 292 years, which is why
// converting it into a count may fail.
type Span struct {
	From time.Time
	To   time.Time
}

// Since returns the span from t to now.
func Since(t, now time.Time) Span {
	return Span{From: t, To: now}
}

func (s Span) nanoseconds() *big.Int {
	secs := new(big.Int).Sub(big.NewInt(s.To.Unix()), big.NewInt(s.From.Unix()))
	ns := secs.Mul(secs, nanosPerSecond)
	return ns.Add(ns, big.NewInt(int64(s.To.Nanosecond()-s.From.Nanosecond())))
}

// Milliseconds truncates the span towards zero.
func (s Span) Milliseconds() (Millis, error) {
	ms := new(big.Int).Quo(s.nanoseconds(), nanosPerMillisecond)
	if !ms.IsInt64() {
		return 0, fmt.Errorf("%w: %s milliseconds do not fit into 64 bits", ErrOutOfRange, ms)
	}
	return Millis(ms.Int64()), nil
}

// Microseconds truncates the span towards zero.
func (s Span) Microseconds() (Micros, error) {
	us := new(big.Int).Quo(s.nanoseconds(), nanosPerMicrosecond)
	if us.Sign() < 0 {
		return Micros{}, fmt.Errorf("%w: %s microseconds", ErrNegativeSpan, us)
	}
	if us.BitLen() > 128 {
		return Micros{}, fmt.Errorf("%w: %s microseconds do not fit into 128 bits", ErrOutOfRange, us)
	}
	return Micros(uint128.FromBig(us)), nil
}

func (s Span) NiceDuration(precision Precision, shortUnits bool, opts ...Option) (string, error) {
	ms, err := s.Milliseconds()
	if err != nil {
		return "", err
	}
	return NiceDuration(ms, precision, shortUnits, opts...), nil
}

func (s Span) NiceDurationMicro(precision PrecisionMicro, shortUnits bool, opts ...Option) (string, error) {
	us, err := s.Microseconds()
	if err != nil {
		return "", err
	}
	return NiceDurationMicro(us, precision, shortUnits, opts...), nil
}
