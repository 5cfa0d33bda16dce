package parse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jxs13/niceduration/duration"
)

// units from the finest to the coarsest, each with its accepted spellings
var precisionNames = [][]string{
	{"us", "µs", "micro", "microsecond", "microseconds"},
	{"ms", "milli", "millisecond", "milliseconds"},
	{"s", "sec", "second", "seconds"},
	{"m", "min", "minute", "minutes"},
	{"h", "hour", "hours"},
	{"d", "day", "days"},
	{"w", "week", "weeks"},
}

func precisionIndex(name string) (int, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, names := range precisionNames {
		if slices.Contains(names, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown precision %q (allowed: us, ms, s, m, h, d, w)", name)
}

// Precision parses the finest unit of the millisecond scheme.
// An empty string selects milliseconds.
func Precision(name string) (duration.Precision, error) {
	if name == "" {
		return duration.Milliseconds, nil
	}
	i, err := precisionIndex(name)
	if err != nil {
		return 0, err
	}
	if i == 0 {
		return 0, fmt.Errorf("precision %q requires microsecond mode", name)
	}
	return duration.Precision(i - 1), nil
}

// PrecisionMicro parses the finest unit of the microsecond scheme.
// An empty string selects microseconds.
func PrecisionMicro(name string) (duration.PrecisionMicro, error) {
	if name == "" {
		return duration.MicroMicroseconds, nil
	}
	i, err := precisionIndex(name)
	if err != nil {
		return 0, err
	}
	return duration.PrecisionMicro(i), nil
}
