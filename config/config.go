package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/jxs13/niceduration/duration"
	"github.com/jxs13/niceduration/internal/logx"
	"github.com/jxs13/niceduration/internal/parse"
)

const (
	UnitMilliseconds = "ms"
	UnitMicroseconds = "us"
	UnitSeconds      = "s"
)

func New() *Config {
	return &Config{
		Unit:        UnitMilliseconds,
		Location:    "UTC",
		BuilderSize: duration.DefaultBuilderSize,
		LogLevel:    "info",
	}
}

type Config struct {
	Unit            string        `koanf:"unit" description:"unit of the input values: ms, us or s (floating point seconds)"`
	PrecisionString string        `koanf:"precision" description:"finest unit that is printed: us, ms, s, m, h, d or w (defaults to the finest unit)"`
	Short           bool          `koanf:"short" description:"print short unit names, e.g. 1m 3s instead of 1 minute 3 seconds"`
	Micro           bool          `koanf:"micro" description:"format with microsecond resolution"`
	Builder         bool          `koanf:"builder" description:"format into a preallocated builder instead of a growable buffer"`
	BuilderSize     int           `koanf:"builder.size" description:"number of bytes preallocated by the builder"`
	Since           string        `koanf:"since" description:"print the time elapsed since this point in time, e.g. 2025-05-17 15:30"`
	Location        string        `koanf:"location" description:"location of the since time, e.g. UTC or Europe/Berlin"`
	Watch           time.Duration `koanf:"watch" description:"reprint the elapsed time every interval, e.g. 1s (0s disables)"`
	LogLevel        string        `koanf:"log.level" description:"log level: debug, info, warn or error"`

	// set in Validate
	Precision      duration.Precision
	PrecisionMicro duration.PrecisionMicro
	SinceTime      time.Time
}

func (c *Config) Validate() error {
	c.Unit = strings.ToLower(strings.TrimSpace(c.Unit))
	switch c.Unit {
	case UnitMilliseconds, UnitSeconds:
	case UnitMicroseconds, "µs":
		c.Unit = UnitMicroseconds
		if !c.Micro {
			return fmt.Errorf("unit %q requires microsecond mode (--micro)", c.Unit)
		}
	default:
		return fmt.Errorf("invalid unit %q: allowed units are ms, us and s", c.Unit)
	}

	var err error
	if c.Micro {
		c.PrecisionMicro, err = parse.PrecisionMicro(c.PrecisionString)
	} else {
		c.Precision, err = parse.Precision(c.PrecisionString)
	}
	if err != nil {
		return err
	}

	if c.BuilderSize < 0 {
		return fmt.Errorf("builder size must be greater or equal to 0: %d", c.BuilderSize)
	}

	if c.Watch < 0 {
		return fmt.Errorf("watch interval must be greater or equal to 0s, e.g. 1s or 1m: %s", c.Watch)
	}

	if c.Since == "" {
		if c.Watch > 0 {
			return fmt.Errorf("watch interval requires a since time")
		}
	} else {
		loc, err := parse.Location(c.Location)
		if err != nil {
			return err
		}
		c.SinceTime, err = parse.TimeInLocation(c.Since, loc)
		if err != nil {
			return fmt.Errorf("invalid since parameter: %w", err)
		}
	}

	_, err = logx.ParseLevel(c.LogLevel)
	return err
}

// Options translates the backend selection into formatting options.
func (c *Config) Options() []duration.Option {
	if !c.Builder {
		return nil
	}
	return []duration.Option{duration.WithBuilder(c.BuilderSize)}
}
