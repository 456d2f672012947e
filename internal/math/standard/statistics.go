package standard

import (
	"encoding/json"
	"fmt"

	"github.com/drakos74/free-mri/internal/storage"
	"github.com/rs/zerolog/log"
)

// Statistics holds the per column mean and standard deviation of the matrix it was fitted on.
// It is immutable, accessors return copies.
type Statistics struct {
	means   []float64
	stdDevs []float64
}

// NewStatistics creates statistics from the given means and standard deviations.
func NewStatistics(means, stdDevs []float64) (Statistics, error) {
	if len(means) == 0 {
		return Statistics{}, fmt.Errorf("no columns: %w", EmptyInputErr)
	}
	if len(means) != len(stdDevs) {
		return Statistics{}, fmt.Errorf("%d means vs %d deviations: %w", len(means), len(stdDevs), ShapeMismatchErr)
	}
	return Statistics{
		means:   clone(means),
		stdDevs: clone(stdDevs),
	}, nil
}

// Means returns the column means.
func (s Statistics) Means() []float64 {
	return clone(s.means)
}

// StdDevs returns the column population standard deviations.
func (s Statistics) StdDevs() []float64 {
	return clone(s.stdDevs)
}

// Columns returns the number of columns the statistics apply to.
func (s Statistics) Columns() int {
	return len(s.means)
}

type statistics struct {
	Means   []float64 `json:"means"`
	StdDevs []float64 `json:"std_devs"`
}

func (s Statistics) MarshalJSON() ([]byte, error) {
	return json.Marshal(statistics{
		Means:   s.means,
		StdDevs: s.stdDevs,
	})
}

func (s *Statistics) UnmarshalJSON(data []byte) error {
	var st statistics
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	stats, err := NewStatistics(st.Means, st.StdDevs)
	if err != nil {
		return err
	}
	*s = stats
	return nil
}

// Save persists the statistics, so that evaluation data can be transformed at a later point.
func Save(store storage.Persistence, k storage.Key, stats Statistics) error {
	if err := store.Store(k, stats); err != nil {
		return fmt.Errorf("could not store statistics '%s': %w", k.Path(), err)
	}
	log.Debug().Str("key", k.Path()).Int("columns", stats.Columns()).Msg("stored statistics")
	return nil
}

// Load retrieves previously saved statistics.
func Load(store storage.Persistence, k storage.Key) (Statistics, error) {
	var stats Statistics
	if err := store.Load(k, &stats); err != nil {
		return Statistics{}, fmt.Errorf("could not load statistics '%s': %w", k.Path(), err)
	}
	return stats, nil
}

func clone(ff []float64) []float64 {
	if ff == nil {
		return nil
	}
	cc := make([]float64, len(ff))
	copy(cc, ff)
	return cc
}
