package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(Options{Buffer: buf, Level: WarnLevel, Type: TypeText})

	l.Info("hidden")
	l.Warn("shown", "key", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "key=1")
}

func TestNew_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	l := With(New(Options{Buffer: buf, Level: DebugLevel, Type: TypeJSON}), "window", "root")

	l.Debug("render")
	assert.Contains(t, buf.String(), `"msg":"render"`)
	assert.Contains(t, buf.String(), `"window":"root"`)
}

func TestParse(t *testing.T) {
	tcs := []struct {
		in       string
		expected Level
	}{
		{"", DefaultLevel},
		{"debug", DebugLevel},
		{"WARN", WarnLevel},
		{"error", ErrorLevel},
	}
	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			lvl, err := ParseLevel(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, lvl)
		})
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)

	typ, err := ParseType("json")
	require.NoError(t, err)
	assert.Equal(t, TypeJSON, typ)
	_, err = ParseType("xml")
	assert.Error(t, err)
}
