package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/asciimath/check"
)

func TestCache(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := New(dir)
	require.NoError(t, err)

	entry := Entry{
		Hash:     Hash([]byte("x^2")),
		Settings: "inline",
		Output:   "out/a.mathml",
		Formulas: 1,
		Issues: []check.Issue{{
			Rule:     "missing-operand",
			Filename: "a.am",
			Message:  "test issue",
			Start:    check.Position{Line: 1, Column: 2},
			End:      check.Position{Line: 1, Column: 2},
		}},
	}

	t.Run("NotFound", func(t *testing.T) {
		_, found := c.Get("missing.am", entry.Hash, "inline")
		assert.False(t, found)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, c.Set("a.am", entry))
		got, found := c.Get("a.am", entry.Hash, "inline")
		require.True(t, found)
		assert.Equal(t, entry.Output, got.Output)
		assert.Equal(t, entry.Issues, got.Issues)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("ContentChanged", func(t *testing.T) {
		require.NoError(t, c.Set("b.am", entry))
		_, found := c.Get("b.am", Hash([]byte("x^3")), "inline")
		assert.False(t, found)
	})

	t.Run("SettingsChanged", func(t *testing.T) {
		require.NoError(t, c.Set("c.am", entry))
		_, found := c.Get("c.am", entry.Hash, "block")
		assert.False(t, found)
	})
}

func TestCachePersists(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	c, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, c.Set("a.am", Entry{Hash: "h", Output: "a.mathml"}))

	reopened, err := New(dir)
	require.NoError(t, err)
	got, found := reopened.Get("a.am", "h", "")
	require.True(t, found)
	assert.Equal(t, "a.mathml", got.Output)

	require.NoError(t, reopened.InvalidateAll())
	_, found = reopened.Get("a.am", "h", "")
	assert.False(t, found)

	// the emptied cache is what a later run loads
	again, err := New(dir)
	require.NoError(t, err)
	_, found = again.Get("a.am", "h", "")
	assert.False(t, found)
}

func TestCacheMaxAge(t *testing.T) {
	t.Parallel()
	c, err := New(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, c.Set("a.am", Entry{Hash: "h"}))

	c.SetMaxAge(time.Nanosecond)
	time.Sleep(time.Millisecond)
	_, found := c.Get("a.am", "h", "")
	assert.False(t, found)
}

func TestCacheCorruptFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cacheFileName), []byte("not gob"), 0o644))

	_, err := New(dir)
	assert.Error(t, err)
}

func TestHash(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", Hash(nil))
	assert.NotEqual(t, Hash([]byte("a")), Hash([]byte("b")))
}
