package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/jxs13/niceduration/duration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCmd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"plain value", []string{"63234"}, "1 minute 3 seconds 234 milliseconds\n"},
		{"values and list", []string{"--short", "63234", "1000,10000"}, "1m 3s 234ms\n1000ms\n10s\n"},
		{"zero", []string{"0"}, "0s\n"},
		{"precision", []string{"--short", "--precision", "s", "63234, 1483506007"}, "1m 3s\n2w 3d 4h 5m 6s\n"},
		{"float seconds", []string{"--unit", "s", "--short", "3.2353865"}, "3s 235ms\n"},
		{"micro", []string{"--micro", "--unit", "us", "--short", "3235386"}, "3s 235ms 386µs\n"},
		{"builder", []string{"--builder", "1483506007"}, "2 weeks 3 days 4 hours 5 minutes 6 seconds 7 milliseconds\n"},
		{"builder size", []string{"--builder", "--builder-size", "4", "--short", "63234"}, "1m 3s 234ms\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestRootCmdInvalid(t *testing.T) {
	tests := map[string][]string{
		"no values":             {},
		"negative value":        {"--", "-1"},
		"not a number":          {"abc"},
		"micro unit":            {"--unit", "us", "1"},
		"values and since":      {"--since", "2025-05-17 15:30", "1000"},
		"bad precision":         {"--precision", "years", "1000"},
		"watch without since":   {"--watch", "1s", "1000"},
		"negative builder size": {"--builder-size", "-1", "1000"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, args...)
			assert.Error(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestRootCmdSince(t *testing.T) {
	out, err := execute(t, "--since", "2025-05-17 15:30", "--short", "--precision", "d")
	require.NoError(t, err)
	assert.Contains(t, out, "w")

	out, err = execute(t, "--since", "2999-01-01 00:00", "--micro")
	assert.ErrorIs(t, err, duration.ErrNegativeSpan)
	assert.Empty(t, out)
}

func TestRootCmdWatchStopsOnError(t *testing.T) {
	out, err := execute(t, "--since", "2999-01-01 00:00", "--micro", "--watch", "10ms")
	assert.ErrorIs(t, err, duration.ErrNegativeSpan)
	assert.Empty(t, out)
}
