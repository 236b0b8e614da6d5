package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avc-dev/linktree/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_PersistsAcrossRestarts(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "links.jsonl")

	fs, err := NewFileStore(path)
	require.NoError(t, err)

	first := sampleRecord("open-house")
	require.NoError(t, fs.Save(ctx, first))

	updated := first
	updated.Title = "Open House (updated)"
	require.NoError(t, fs.Save(ctx, updated))
	require.NoError(t, fs.DeleteFields(ctx, "open-house", model.FieldImageURL))
	require.NoError(t, fs.Save(ctx, sampleRecord("listing-42")))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := reopened.Get(ctx, "open-house")
	require.NoError(t, err)
	assert.Equal(t, "Open House (updated)", got.Title)
	assert.Empty(t, got.ImageURL)

	records, err := reopened.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFileStore_MissingFileStartsEmpty(t *testing.T) {
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "absent.jsonl"))
	require.NoError(t, err)

	records, err := fs.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileStore_CorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{not json}\n"), 0644))

	_, err := NewFileStore(path)

	assert.Error(t, err)
}

func TestFileStore_DeleteFieldsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.jsonl")
	fs, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, fs.DeleteFields(context.Background(), "a"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no journal entry expected for an empty field list")
}
