package db

import (
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRoundTripAndOrdering(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC)
	times := []time.Time{
		base.Add(120 * time.Millisecond),
		base.Add(100 * time.Millisecond),
		base,
		base.Add(time.Second),
	}

	var stored []string
	for _, tm := range times {
		s := TimeToString(tm)
		back, err := StringToTime(s)
		require.NoError(t, err)
		assert.True(t, tm.Equal(back))
		stored = append(stored, s)
	}

	sort.Strings(stored)
	assert.Equal(t, TimeToString(base), stored[0])
	assert.Equal(t, TimeToString(base.Add(100*time.Millisecond)), stored[1])
	assert.Equal(t, TimeToString(base.Add(120*time.Millisecond)), stored[2])
}

func TestBoolConversion(t *testing.T) {
	assert.Equal(t, 1, BoolToInt(true))
	assert.Equal(t, 0, BoolToInt(false))
	assert.True(t, IntToBool(1))
	assert.False(t, IntToBool(0))
}

func TestOpen(t *testing.T) {
	sqlDB, err := Open(filepath.Join(t.TempDir(), "chronos.db"))
	require.NoError(t, err)
	defer sqlDB.Close()

	var mode string
	require.NoError(t, sqlDB.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}
