package volume

import (
	"fmt"

	"github.com/drakos74/free-mri/internal/storage"
)

// Source loads the volume of a subject for the given modality.
type Source interface {
	Load(subject string, modality Modality) (Volume, error)
}

// Sink writes a volume under the given name.
type Sink interface {
	Save(name string, v Volume) error
}

// Store keeps volumes in a storage.Persistence.
type Store struct {
	persistence storage.Persistence
}

// NewStore creates a volume store on top of the given persistence.
func NewStore(persistence storage.Persistence) *Store {
	return &Store{persistence: persistence}
}

func subjectKey(subject string, modality Modality) storage.Key {
	return storage.Key{
		Name:  subject,
		Label: string(modality),
	}
}

// Load retrieves the volume of the subject for the modality.
func (s *Store) Load(subject string, modality Modality) (Volume, error) {
	var v Volume
	if err := s.persistence.Load(subjectKey(subject, modality), &v); err != nil {
		return Volume{}, fmt.Errorf("could not load %s volume for '%s': %w", modality, subject, err)
	}
	return New(v.Dims, v.Voxels)
}

// Put stores the volume of the subject for the modality.
func (s *Store) Put(subject string, modality Modality, v Volume) error {
	if err := s.persistence.Store(subjectKey(subject, modality), v); err != nil {
		return fmt.Errorf("could not store %s volume for '%s': %w", modality, subject, err)
	}
	return nil
}

// Save stores a derived volume by name.
func (s *Store) Save(name string, v Volume) error {
	if err := s.persistence.Store(storage.Key{Name: name}, v); err != nil {
		return fmt.Errorf("could not store volume '%s': %w", name, err)
	}
	return nil
}
