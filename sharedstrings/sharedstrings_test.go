package sharedstrings

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternDedupAndCounts(t *testing.T) {
	ss := New()
	i1 := ss.Intern("Alice")
	i2 := ss.Intern("Bob")
	i3 := ss.Intern("Alice")

	require.Equal(t, i1, i3)
	require.NotEqual(t, i1, i2)
	require.EqualValues(t, 3, ss.Count())
	require.Equal(t, 2, ss.UniqueCount())
}

func TestIndexOfMatchesIntern(t *testing.T) {
	ss := New()
	idx := ss.Intern("hello")
	again, _ := ss.pool.IndexOf("hello")
	require.Equal(t, idx, again)
}

func TestWriteXMLEscapesAndCounts(t *testing.T) {
	ss := New()
	ss.Intern("Sales & Marketing")
	ss.Intern("Sales & Marketing")

	var buf bytes.Buffer
	require.NoError(t, ss.WriteXML(&buf))
	out := buf.String()
	require.Contains(t, out, `count="2"`)
	require.Contains(t, out, `uniqueCount="1"`)
	require.Contains(t, out, "Sales &amp; Marketing")
}

func TestBooleanFastPathNeverEnters(t *testing.T) {
	ss := New()
	// ZeroOne booleans must never register "1"/"0" as a consequence of boolean
	// cells; this package has no opinion on that by itself (cellmodel.Boolean
	// never calls Intern for ZeroOne), but we assert the pool stays empty when
	// nothing interns into it.
	require.Equal(t, 0, ss.UniqueCount())
}
