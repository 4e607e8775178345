package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_NoOpWithoutOutput(t *testing.T) {
	l := NewLogger()
	l.Log("dropped")
	l.Logf("dropped %d", 1)
	assert.Equal(t, "", l.Path())
	l.Close()
}

func TestLogger_SetOutputAndPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.SetOutput(&buf)
	l.Log("first")
	l.SetPrefix("run-1")
	l.Logf("slides=%d", 15)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "] first"))
	assert.Contains(t, lines[1], "[run-1] slides=15")
}

func TestLogger_InitCountsRuns(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l := NewLogger()
	require.NoError(t, l.Init(dir))
	first := l.Path()
	l.Log("hello")
	l.Close()

	require.NoError(t, l.Init(dir))
	second := l.Path()
	l.Close()

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, "_1.log"), first)
	assert.True(t, strings.HasSuffix(second, "_2.log"), second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
