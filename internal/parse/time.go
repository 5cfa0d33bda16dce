package parse

import (
	"fmt"
	"time"
)

const (
	LayoutDateTime = "2006-01-02 15:04"
)

// Location resolves an IANA location name, e.g. Europe/Berlin.
// An empty name is UTC.
func Location(location string) (*time.Location, error) {
	if location == "" {
		return time.UTC, nil
	}
	l, err := time.LoadLocation(location)
	if err != nil {
		return nil, fmt.Errorf("invalid location (example: Europe/Berlin): %s: %w", location, err)
	}
	return l, nil
}

// TimeInLocation parses a point in time in the LayoutDateTime format.
func TimeInLocation(datetime string, loc *time.Location) (time.Time, error) {
	if datetime == "" {
		return time.Time{}, fmt.Errorf("empty time string")
	}

	t, err := time.ParseInLocation(LayoutDateTime, datetime, loc)
	if err != nil {
		return time.Time{},
			fmt.Errorf("invalid time: `%s`: expected the following format: `%s`: %w",
				datetime,
				LayoutDateTime,
				err,
			)
	}

	return t, nil
}
