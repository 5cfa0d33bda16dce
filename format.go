package main

import (
	"fmt"
	"io"
	"time"

	"github.com/jxs13/niceduration/config"
	"github.com/jxs13/niceduration/duration"
	"github.com/jxs13/niceduration/internal/parse"
	"lukechampine.com/uint128"
)

// formatValues writes one formatted line per value.
func formatValues(w io.Writer, cfg *config.Config, values []string) error {
	for _, v := range values {
		s, err := formatValue(cfg, v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		if err != nil {
			return err
		}
	}
	return nil
}

func formatValue(cfg *config.Config, value string) (string, error) {
	opts := cfg.Options()

	switch cfg.Unit {
	case config.UnitSeconds:
		s, err := parse.FloatSeconds(value)
		if err != nil {
			return "", err
		}
		if cfg.Micro {
			return duration.NiceDurationMicro(s, cfg.PrecisionMicro, cfg.Short, opts...), nil
		}
		return duration.NiceDuration(s, cfg.Precision, cfg.Short, opts...), nil
	case config.UnitMicroseconds:
		us, err := parse.Micros(value)
		if err != nil {
			return "", err
		}
		return duration.NiceDurationMicro(us, cfg.PrecisionMicro, cfg.Short, opts...), nil
	default:
		ms, err := parse.Millis(value)
		if err != nil {
			return "", err
		}
		if cfg.Micro {
			us := duration.Micros(uint128.From64(uint64(ms)).Mul64(1000))
			return duration.NiceDurationMicro(us, cfg.PrecisionMicro, cfg.Short, opts...), nil
		}
		return duration.NiceDuration(ms, cfg.Precision, cfg.Short, opts...), nil
	}
}

// formatSince formats the time elapsed between the configured since time and now.
func formatSince(cfg *config.Config, now time.Time) (string, error) {
	span := duration.Since(cfg.SinceTime, now)
	if cfg.Micro {
		return span.NiceDurationMicro(cfg.PrecisionMicro, cfg.Short, cfg.Options()...)
	}
	return span.NiceDuration(cfg.Precision, cfg.Short, cfg.Options()...)
}
