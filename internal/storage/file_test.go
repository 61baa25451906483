package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"takeaway/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFilesLoadEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	queue, err := store.LoadQueue(ctx)
	require.NoError(t, err)
	assert.NotNil(t, queue)
	assert.Empty(t, queue)

	history, err := store.LoadHistory(ctx)
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewFileStore(dir)

	alice := sampleOrder("Alice")
	bob := sampleOrder("Bob")
	alice2 := sampleOrder("alice")

	require.NoError(t, store.SaveQueue(ctx, []*domain.Order{alice, bob, alice2}))
	require.NoError(t, store.SaveHistory(ctx, map[string][]*domain.Order{
		"alice": {alice, alice2},
		"bob":   {bob},
	}))

	assert.FileExists(t, filepath.Join(dir, QueueFile))
	assert.FileExists(t, filepath.Join(dir, HistoryFile))

	reopened := NewFileStore(dir)
	queue, err := reopened.LoadQueue(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 3)
	assertSameOrder(t, alice, queue[0])
	assertSameOrder(t, bob, queue[1])
	assertSameOrder(t, alice2, queue[2])

	history, err := reopened.LoadHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Len(t, history["alice"], 2)
	assertSameOrder(t, alice, history["alice"][0])
	assertSameOrder(t, alice2, history["alice"][1])
	assertSameOrder(t, bob, history["bob"][0])
}

func TestFileStore_SaveReplacesPreviousState(t *testing.T) {
	ctx := context.Background()
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.SaveQueue(ctx, []*domain.Order{sampleOrder("Alice")}))
	require.NoError(t, store.SaveQueue(ctx, []*domain.Order{}))

	queue, err := store.LoadQueue(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)

	entries, err := os.ReadDir(store.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileStore_CreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir)

	require.NoError(t, store.SaveHistory(context.Background(), map[string][]*domain.Order{}))
	assert.FileExists(t, filepath.Join(dir, HistoryFile))
}

func TestFileStore_LoadErrors(t *testing.T) {
	tests := []struct {
		name          string
		file          string
		content       string
		expectedError error
	}{
		{
			name:          "queue from a newer version",
			file:          QueueFile,
			content:       `{"version": 2, "orders": []}`,
			expectedError: ErrUnsupportedVersion,
		},
		{
			name:          "history from a newer version",
			file:          HistoryFile,
			content:       `{"version": 2, "customers": {}}`,
			expectedError: ErrUnsupportedVersion,
		},
		{
			name:    "corrupt queue",
			file:    QueueFile,
			content: `{"version": 1, "orders": [`,
		},
		{
			name:    "corrupt history",
			file:    HistoryFile,
			content: `not json`,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, testCase.file), []byte(testCase.content), 0o644))
			store := NewFileStore(dir)

			var err error
			if testCase.file == QueueFile {
				_, err = store.LoadQueue(context.Background())
			} else {
				_, err = store.LoadHistory(context.Background())
			}

			require.Error(t, err)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
			}
		})
	}
}
