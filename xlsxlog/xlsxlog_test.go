package xlsxlog

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNoopLoggerNeverPanics(t *testing.T) {
	var l Logger = NoopLogger{}
	require.NotPanics(t, func() {
		l.Debug("x", F("a", 1))
		l.Info("x")
		l.Warn("x", F("err", errors.New("boom")))
		l.Error("x")
	})
}

func TestZerologLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	var l Logger = NewZerologLogger(zl)

	l.Info("phase entered", F("phase", "ProcessingSheet"), F("sheet_index", 2))

	out := buf.String()
	require.Contains(t, out, "phase entered")
	require.Contains(t, out, "ProcessingSheet")
	require.Contains(t, out, `"sheet_index":2`)
}

func TestZerologLoggerWrapsErrorField(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	var l Logger = NewZerologLogger(zl)

	l.Error("build failed", F("cause", errors.New("disk full")))
	require.Contains(t, buf.String(), "disk full")
}
