package watch

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	require.NoError(t, os.WriteFile(path, []byte("a start: 1\na end: 2\n"), 0o644))

	first, err := Fingerprint(path)
	require.NoError(t, err)

	t.Run("stable without changes", func(t *testing.T) {
		now := time.Now().Add(time.Minute)
		require.NoError(t, os.Chtimes(path, now, now))
		again, err := Fingerprint(path)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	})

	t.Run("append changes it", func(t *testing.T) {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		require.NoError(t, err)
		_, err = f.WriteString("b start: 3\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		changed, err := Fingerprint(path)
		require.NoError(t, err)
		assert.NotEqual(t, first, changed)
	})

	t.Run("large file uses tail", func(t *testing.T) {
		big := filepath.Join(t.TempDir(), "big.log")
		require.NoError(t, os.WriteFile(big, []byte(strings.Repeat("x start: 1\n", 1000)), 0o644))
		fp, err := Fingerprint(big)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(fp, "11000-"))
	})

	t.Run("empty file", func(t *testing.T) {
		empty := filepath.Join(t.TempDir(), "empty.log")
		require.NoError(t, os.WriteFile(empty, nil, 0o644))
		fp, err := Fingerprint(empty)
		require.NoError(t, err)
		assert.Equal(t, "0-00000000", fp)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Fingerprint(filepath.Join(t.TempDir(), "nope.log"))
		assert.Error(t, err)
	})
}
