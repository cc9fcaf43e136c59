// SPDX-License-Identifier: BSD-3-Clause

package log

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var recordRe = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} \[[A-Z]+\] log_test\.go:\d+ .*\n$`)

func TestRecordFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Debug, &buf)

	l.Infof("counter = %d", 7)
	require.Regexp(t, recordRe, buf.String())
	require.Contains(t, buf.String(), "[INFO] ")
	require.Contains(t, buf.String(), "counter = 7")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Warn, &buf)

	l.Debugf("dropped")
	l.Infof("dropped")
	l.Noticef("dropped")
	require.Zero(t, buf.Len())

	l.Warnf("kept")
	l.Errorf("kept")
	l.Emergf("kept")
	require.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestNoneDisablesEverything(t *testing.T) {
	var buf bytes.Buffer
	l := New(None, &buf)

	l.Emergf("dropped")
	l.Logf(Emerg, "dropped")
	require.Zero(t, buf.Len())

	// Logging *at* level None is always dropped, whatever the threshold.
	l.SetLevel(Debug)
	l.Logf(None, "dropped")
	require.Zero(t, buf.Len())
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Error, &buf)
	require.Equal(t, Error, l.Level())

	l.Warnf("dropped")
	require.Zero(t, buf.Len())

	l.SetLevel(Debug)
	l.Warnf("kept")
	require.NotZero(t, buf.Len())
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "NONE", None.String())
	require.Equal(t, "EMERG", Emerg.String())
	require.Equal(t, "DEBUG", Debug.String())
	require.Equal(t, "Level(9)", Level(9).String())
}

func TestParseLevel(t *testing.T) {
	for want, name := range levelNames {
		got, err := ParseLevel(name)
		require.NoError(t, err)
		require.Equal(t, Level(want), got)
	}

	for _, s := range []string{"none", "NoTiCe", "deBUG", "Error"} {
		_, err := ParseLevel(s)
		require.NoError(t, err, s)
	}

	for _, s := range []string{"", "none1", "EMERG2", " warn", "motice", "iinfoo"} {
		_, err := ParseLevel(s)
		require.ErrorIs(t, err, ErrInvalidLevel, s)
	}
}
