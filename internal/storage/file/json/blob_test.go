package json

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drakos74/free-mri/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID     string    `json:"id"`
	Values []float64 `json:"values"`
}

func TestBlobStorage_StoreLoad(t *testing.T) {
	root := t.TempDir()
	blob := NewJsonBlob("stats", "train", true).WithRoot(root)

	k := storage.Key{Name: "features", Hash: 1, Label: "stats"}
	r := record{ID: uuid.New().String(), Values: []float64{1.5, 2.5}}

	require.NoError(t, blob.Store(k, r))
	_, err := os.Stat(filepath.Join(root, "stats", "train", "features_1_stats.json"))
	require.NoError(t, err)

	var loaded record
	require.NoError(t, blob.Load(k, &loaded))
	assert.Equal(t, r, loaded)
}

func TestBlobStorage_Errors(t *testing.T) {
	root := t.TempDir()
	blob := NewJsonBlob("stats", "train", false).WithRoot(root)

	k := storage.Key{Name: "missing"}
	err := blob.Load(k, &record{})
	assert.True(t, errors.Is(err, storage.NotFoundErr))

	require.NoError(t, blob.Store(k, "not a record"))
	err = blob.Load(k, &record{})
	assert.True(t, errors.Is(err, storage.CouldNotLoadErr))
}

func TestSave_NotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	err := Save(file, "name", 1)
	assert.Error(t, err)
}

func TestBlobStorage_NestedKey(t *testing.T) {
	root := t.TempDir()
	blob := NewJsonBlob("volumes", "brats", false).WithRoot(root)

	k := storage.Key{Name: "GBM/TCGA-02-0037", Label: "t1"}
	r := record{ID: "GBM/TCGA-02-0037", Values: []float64{0, 2, 4}}

	require.NoError(t, blob.Store(k, r))
	_, err := os.Stat(filepath.Join(root, "volumes", "brats", "GBM", "TCGA-02-0037_0_t1.json"))
	require.NoError(t, err)

	var loaded record
	require.NoError(t, blob.Load(k, &loaded))
	assert.Equal(t, r, loaded)
}
