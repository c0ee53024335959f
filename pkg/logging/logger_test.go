package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrNoOp(t *testing.T) {
	assert.Equal(t, NoOp(), OrNoOp(nil))

	l := NoOp().WithFields(map[string]any{"k": "v"})
	assert.Equal(t, NoOp(), l)
	assert.NotPanics(t, func() {
		l.Debug("debug", "k", 1)
		l.Info("info")
		l.Warn("warn")
		l.Error("error")
	})
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New("fmtshift", Config{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestNewBuildsLogger(t *testing.T) {
	for _, format := range []string{"", "console", "json", "pretty"} {
		l, err := New("fmtshift", Config{Level: "error", Format: format})
		require.NoError(t, err, format)
		require.NotNil(t, l)
		assert.NotNil(t, l.WithFields(map[string]any{"module": "test"}))
	}
}

func TestNormalizeLevel(t *testing.T) {
	tests := map[string]string{
		"":        "",
		"bogus":   "",
		" DEBUG ": "debug",
		"warning": "warn",
	}
	for in, want := range tests {
		got := normalizeLevel(in)
		if want == "" {
			assert.Empty(t, got, in)
			continue
		}
		assert.NotEmpty(t, got, in)
	}
}
