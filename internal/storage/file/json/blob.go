package json

import (
	"path/filepath"

	"github.com/drakos74/free-mri/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage stores each key as a separate json file.
type BlobStorage struct {
	path  string
	table string
	shard string
	debug bool
}

// BlobShard creates blob storage shards under the default storage directory.
func BlobShard(table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(table, shard, false), nil
	}
}

// NewJsonBlob creates a new blob storage.
// table has the same schema
// shard is a logical split
func NewJsonBlob(table, shard string, debug bool) *BlobStorage {
	return &BlobStorage{
		table: table,
		shard: shard,
		path:  storage.DefaultDir,
		debug: debug,
	}
}

// WithRoot overrides the root directory of the storage.
func (s *BlobStorage) WithRoot(path string) *BlobStorage {
	s.path = path
	return s
}

// Dir returns the directory the json files are written to.
func (s BlobStorage) Dir() string {
	return filepath.Join(s.path, s.table, s.shard)
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	p := s.Dir()
	err := Save(p, k.Path(), value)
	if err == nil && s.debug {
		log.Debug().Str("path", p).Str("file", k.Path()).Msg("stored json file")
	}
	return err
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(s.Dir(), k.Path(), value)
}
