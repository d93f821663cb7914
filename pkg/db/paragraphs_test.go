package db

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestMergeAndCount(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	require.NoError(t, db.Merge(map[string]int{"shared": 1, "repeat": 2}))
	require.NoError(t, db.Merge(map[string]int{"shared": 1}))
	require.NoError(t, db.Merge(nil))

	tests := []struct {
		paragraph string
		want      int
	}{
		{"shared", 2},
		{"repeat", 2},
		{"never seen", 0},
	}
	for _, tt := range tests {
		t.Run(tt.paragraph, func(t *testing.T) {
			got, err := db.Count(tt.paragraph)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	n, err := db.Len()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCount_ExactMatchOnly(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	require.NoError(t, db.Merge(map[string]int{"Grüezi mitenand": 3}))

	n, err := db.Count("grüezi mitenand")
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = db.Count("Grüezi mitenand")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestOpenSpill_RemovedOnClose(t *testing.T) {
	parent := t.TempDir()

	db, err := OpenSpill(parent)
	require.NoError(t, err)
	require.NoError(t, db.Merge(map[string]int{"p": 1}))

	_, err = os.Stat(db.Path())
	require.NoError(t, err)

	require.NoError(t, db.Close())

	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
