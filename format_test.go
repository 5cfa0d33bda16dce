package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/jxs13/niceduration/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T, modify func(c *config.Config)) *config.Config {
	t.Helper()
	c := config.New()
	if modify != nil {
		modify(c)
	}
	require.NoError(t, c.Validate())
	return c
}

func TestFormatValues(t *testing.T) {
	var buf bytes.Buffer
	cfg := validConfig(t, func(c *config.Config) { c.Short = true })

	err := formatValues(&buf, cfg, []string{"0", "63234", "1000", "10000"})
	require.NoError(t, err)
	assert.Equal(t, "0s\n1m 3s 234ms\n1000ms\n10s\n", buf.String())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *config.Config)
		value  string
		want   string
	}{
		{"long", nil, "63234", "1 minute 3 seconds 234 milliseconds"},
		{"precision", func(c *config.Config) { c.PrecisionString = "s" }, "63234", "1 minute 3 seconds"},
		{"float seconds", func(c *config.Config) { c.Unit = "s"; c.Short = true }, "3.2353865", "3s 235ms"},
		{"float seconds micro", func(c *config.Config) { c.Unit = "s"; c.Short = true; c.Micro = true }, "3.2353865", "3s 235ms 386µs"},
		{"microseconds", func(c *config.Config) { c.Unit = "us"; c.Micro = true; c.Short = true }, "3235386", "3s 235ms 386µs"},
		{"milliseconds in micro mode", func(c *config.Config) { c.Micro = true; c.Short = true }, "63234", "1m 3s 234ms"},
		{"builder", func(c *config.Config) { c.Builder = true; c.BuilderSize = 4 }, "1483506007", "2 weeks 3 days 4 hours 5 minutes 6 seconds 7 milliseconds"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := formatValue(validConfig(t, tc.modify), tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatValueInvalid(t *testing.T) {
	cfg := validConfig(t, nil)
	for _, v := range []string{"-1", "1.5", "abc"} {
		_, err := formatValue(cfg, v)
		assert.Error(t, err, v)
	}
}

func TestFormatSince(t *testing.T) {
	cfg := validConfig(t, func(c *config.Config) {
		c.Since = "2025-05-17 15:30"
		c.Short = true
	})

	s, err := formatSince(cfg, time.Date(2025, 5, 17, 16, 31, 3, 234_000_000, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "1h 1m 3s 234ms", s)

	cfg = validConfig(t, func(c *config.Config) {
		c.Since = "2025-05-17 15:30"
		c.Micro = true
	})
	_, err = formatSince(cfg, time.Date(2025, 5, 17, 15, 29, 0, 0, time.UTC))
	assert.Error(t, err)
}
