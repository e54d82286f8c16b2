package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetItemMissing(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.GetItem(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "sworddrill:progress", `{"xp":138}`))

	v, ok, err := s.GetItem(ctx, "sworddrill:progress")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"xp":138}`, v)
}

func TestSetItemOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "k", "one"))
	require.NoError(t, s.SetItem(ctx, "k", "two"))

	v, ok, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestRemoveItems(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SetItem(ctx, "a", "1"))
	require.NoError(t, s.SetItem(ctx, "b", "2"))
	require.NoError(t, s.SetItem(ctx, "c", "3"))

	require.NoError(t, s.RemoveItems(ctx, "a", "b", "missing"))

	_, ok, err := s.GetItem(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = s.GetItem(ctx, "c")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetItem(ctx, "k", "v"))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, ok, err := s2.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
