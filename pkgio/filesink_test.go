package pkgio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileSinkNoPartialFileBeforeClose(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "out.xlsx")

	sink, err := NewFileSink(final)
	require.NoError(t, err)
	_, err = sink.Write([]byte("partial content"))
	require.NoError(t, err)

	_, statErr := os.Stat(final)
	require.True(t, os.IsNotExist(statErr), "final path must not exist before Close")

	require.NoError(t, sink.Close())
	content, err := os.ReadFile(final)
	require.NoError(t, err)
	require.Equal(t, "partial content", string(content))
	require.True(t, sink.Published())
}

func TestFileSinkAbortRemovesTempWithoutPublishing(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "out.xlsx")

	sink, err := NewFileSink(final)
	require.NoError(t, err)
	_, err = sink.Write([]byte("incomplete"))
	require.NoError(t, err)
	require.NoError(t, sink.Abort())

	_, statErr := os.Stat(final)
	require.True(t, os.IsNotExist(statErr))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries, "temp file must be removed on Abort")
}

func TestFileSinkCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	final := filepath.Join(dir, "out.xlsx")

	sink, err := NewFileSink(final)
	require.NoError(t, err)
	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())
}
