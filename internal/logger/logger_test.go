package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, WARN)

	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	require.Empty(t, buf.String())

	log.Warnf("possible data loss on page %d", 3)
	require.Contains(t, buf.String(), "WARN: possible data loss on page 3")

	log.Errorf("boom")
	require.Contains(t, buf.String(), "ERROR: boom")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DEBUG,
		"INFO":    INFO,
		"Warn":    WARN,
		"warning": WARN,
		"error":   ERROR,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestNilAndDiscard(t *testing.T) {
	var l *Logger
	require.NotPanics(t, func() { l.Warnf("ignored") })
	require.NotPanics(t, func() { Discard().Errorf("ignored") })
}
