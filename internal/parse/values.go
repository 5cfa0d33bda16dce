package parse

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/jxs13/niceduration/duration"
	"lukechampine.com/uint128"
)

// List splits a comma-separated list like "1000, 63234,10" into its trimmed elements.
// If the provided string is empty, it returns an empty slice.
func List(input string) []string {
	if strings.TrimSpace(input) == "" {
		return []string{}
	}

	values := strings.Split(input, ",")
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		result = append(result, v)
	}
	return result
}

// Millis parses a non-negative integer number of milliseconds.
func Millis(s string) (duration.Millis, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid millisecond value %q: %w", s, err)
	}
	if ms < 0 {
		return 0, fmt.Errorf("invalid millisecond value %q: must not be negative", s)
	}
	return duration.Millis(ms), nil
}

// Micros parses a non-negative integer number of microseconds of up to 128 bits.
func Micros(s string) (duration.Micros, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return duration.Micros{}, fmt.Errorf("invalid microsecond value %q: not an integer", s)
	}
	if i.Sign() < 0 {
		return duration.Micros{}, fmt.Errorf("invalid microsecond value %q: must not be negative", s)
	}
	if i.BitLen() > 128 {
		return duration.Micros{}, fmt.Errorf("invalid microsecond value %q: exceeds 128 bits", s)
	}
	return duration.Micros(uint128.FromBig(i)), nil
}

// FloatSeconds parses a non-negative, finite number of seconds, e.g. 3.25.
func FloatSeconds(s string) (duration.FloatSeconds, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid second value %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("invalid second value %q: must be a finite number that is not negative", s)
	}
	return duration.FloatSeconds(f), nil
}
