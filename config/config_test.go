package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/jxs13/niceduration/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()
	require.NoError(t, c.Validate())
	assert.Equal(t, duration.Milliseconds, c.Precision)
	assert.True(t, c.SinceTime.IsZero())
	assert.Empty(t, c.Options())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		ok     bool
	}{
		{"seconds unit", func(c *Config) { c.Unit = "S" }, true},
		{"unknown unit", func(c *Config) { c.Unit = "ns" }, false},
		{"micro unit without micro mode", func(c *Config) { c.Unit = "us" }, false},
		{"micro unit", func(c *Config) { c.Unit = "µs"; c.Micro = true }, true},
		{"precision", func(c *Config) { c.PrecisionString = "minutes" }, true},
		{"micro precision without micro mode", func(c *Config) { c.PrecisionString = "us" }, false},
		{"bad precision", func(c *Config) { c.PrecisionString = "years" }, false},
		{"negative builder size", func(c *Config) { c.BuilderSize = -1 }, false},
		{"negative watch", func(c *Config) { c.Watch = -time.Second }, false},
		{"watch without since", func(c *Config) { c.Watch = time.Second }, false},
		{"since", func(c *Config) { c.Since = "2025-05-17 15:30"; c.Watch = time.Second }, true},
		{"bad since", func(c *Config) { c.Since = "yesterday" }, false},
		{"bad location", func(c *Config) { c.Since = "2025-05-17 15:30"; c.Location = "Nowhere/Atlantis" }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := New()
			tc.modify(c)
			err := c.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateParsesValues(t *testing.T) {
	c := New()
	c.Micro = true
	c.Unit = "us"
	c.PrecisionString = "ms"
	c.Since = "2025-05-17 17:30"
	c.Location = "Europe/Berlin"
	c.Builder = true
	require.NoError(t, c.Validate())

	assert.Equal(t, duration.MicroMilliseconds, c.PrecisionMicro)
	assert.Equal(t, time.Date(2025, 5, 17, 15, 30, 0, 0, time.UTC), c.SinceTime.UTC())
	assert.Len(t, c.Options(), 1)
}
