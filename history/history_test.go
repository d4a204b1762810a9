package history

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// open a store on a temporary file
func testOpen(t *testing.T, limit int) *Store {
	s, err := Open(filepath.Join(t.TempDir(), "history.db"), limit)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreAddRecent(t *testing.T) {
	s := testOpen(t, 0)
	assert.Equal(t, DefaultLimit, s.Limit())

	entries, err := s.Recent(0)
	assert.NoError(t, err)
	assert.Empty(t, entries)

	assert.NoError(t, s.Add("2+3*4", 14))
	assert.NoError(t, s.Add("(2+3)*4", 20))

	entries, err = s.Recent(0)
	assert.NoError(t, err)
	if assert.Len(t, entries, 2) {
		// newest first
		assert.Equal(t, "(2+3)*4", entries[0].Expression)
		assert.Equal(t, 20.0, entries[0].Result)
		assert.Equal(t, "2+3*4", entries[1].Expression)
		assert.Equal(t, 14.0, entries[1].Result)
		assert.False(t, entries[0].Timestamp.IsZero())
	}

	entries, err = s.Recent(1)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreCap(t *testing.T) {
	s := testOpen(t, 5)

	for i := 0; i < 12; i++ {
		assert.NoError(t, s.Add(fmt.Sprintf("%d+1", i), float64(i+1)))
	}

	entries, err := s.Recent(100)
	assert.NoError(t, err)
	if assert.Len(t, entries, 5) {
		// only the five newest survive
		assert.Equal(t, "11+1", entries[0].Expression)
		assert.Equal(t, "7+1", entries[4].Expression)
	}
}

func TestStoreClear(t *testing.T) {
	s := testOpen(t, 0)
	assert.NoError(t, s.Add("1+1", 2))
	assert.NoError(t, s.Clear())

	entries, err := s.Recent(0)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	s, err := Open(path, 0)
	assert.NoError(t, err)
	assert.NoError(t, s.Add("10-2-3", 5))
	assert.NoError(t, s.Close())

	// entries and scheme version survive a reopen
	s, err = Open(path, 0)
	if assert.NoError(t, err) {
		defer s.Close()
		entries, err := s.Recent(0)
		assert.NoError(t, err)
		if assert.Len(t, entries, 1) {
			assert.Equal(t, "10-2-3", entries[0].Expression)
			assert.Equal(t, 5.0, entries[0].Result)
		}
	}
}
