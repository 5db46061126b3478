package order

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	names, err := Parse([]byte(`  ["C", "A 2", "A"]`))

	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A 2", "A"}, names)
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := Parse([]byte(`["C", 3`))
	assert.Error(t, err)
}

func TestParseLines(t *testing.T) {
	names, err := Parse([]byte("# preferred order\nC\n\n  A 2  \nA\n"))

	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A 2", "A"}, names)
}

func TestParseEmpty(t *testing.T) {
	names, err := Parse(nil)

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.json")
	require.NoError(t, os.WriteFile(path, []byte(`["B"]`), 0o644))

	names, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, names)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	assert.Equal(t, []string{"C", "A", "B"}, Merge([]string{"C", "A"}, []string{"A", "B", "C"}))
	assert.Empty(t, Merge(nil, nil))
}
