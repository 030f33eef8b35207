package db

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*DB, *clockwork.FakeClock) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	database, err := NewDB(":memory:", clock)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return database, clock
}

func TestGetCached_MissingKey(t *testing.T) {
	database, _ := setupTestDB(t)

	entry, err := database.GetCached("wx:nope")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestSetAndGetCached(t *testing.T) {
	database, _ := setupTestDB(t)

	require.NoError(t, database.SetCached("wx:47.76,-122.21", `{"ok":true}`, time.Hour))

	entry, err := database.GetCached("wx:47.76,-122.21")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, `{"ok":true}`, entry.Data)
	assert.True(t, entry.ExpiresAt.After(entry.CreatedAt))
}

func TestGetCached_ExpiredEntry(t *testing.T) {
	database, clock := setupTestDB(t)

	require.NoError(t, database.SetCached("geo:paris", `[]`, 10*time.Minute))

	clock.Advance(9 * time.Minute)
	entry, err := database.GetCached("geo:paris")
	require.NoError(t, err)
	assert.NotNil(t, entry)

	clock.Advance(2 * time.Minute)
	entry, err = database.GetCached("geo:paris")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestSetCached_ReplacesEntry(t *testing.T) {
	database, _ := setupTestDB(t)

	require.NoError(t, database.SetCached("k", "old", time.Hour))
	require.NoError(t, database.SetCached("k", "new", time.Hour))

	entry, err := database.GetCached("k")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "new", entry.Data)
}

func TestPurgeExpired(t *testing.T) {
	database, clock := setupTestDB(t)

	require.NoError(t, database.SetCached("short", "a", time.Minute))
	require.NoError(t, database.SetCached("long", "b", time.Hour))

	clock.Advance(5 * time.Minute)

	n, err := database.PurgeExpired()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	entry, err := database.GetCached("long")
	require.NoError(t, err)
	assert.NotNil(t, entry)
}
