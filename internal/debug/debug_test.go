package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_ToWriter(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	require.True(t, Enabled())
	Log("pass %d drew %d leaves", 3, 7)
	Log("second")

	assert.Contains(t, buf.String(), "pass 3 drew 7 leaves\n")
	assert.Contains(t, buf.String(), "second\n")
}

func TestLog_Disabled(t *testing.T) {
	SetOutput(nil)

	assert.False(t, Enabled())
	Log("dropped")
}

func TestInit_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "backer.log")
	require.NoError(t, Init(path))
	t.Cleanup(func() { Close() })

	Log("hello %s", "file")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
