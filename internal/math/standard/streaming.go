package standard

import (
	"fmt"

	"github.com/drakos74/free-mri/internal/buffer"
)

// Streaming fits the statistics one row at a time, without holding the whole column in memory.
type Streaming struct {
	options
}

// NewStreaming creates a new streaming standardizer.
func NewStreaming(opts ...Option) *Streaming {
	return &Streaming{options: newOptions(opts...)}
}

func (s *Streaming) Fit(m Matrix) (Matrix, Statistics, error) {
	_, cols, err := checkFit(m)
	if err != nil {
		return nil, Statistics{}, err
	}

	collector := buffer.NewStatsCollector(cols)
	for i, row := range m {
		if err := collector.Push(row...); err != nil {
			return nil, Statistics{}, fmt.Errorf("row %d: %s: %w", i, err.Error(), ShapeMismatchErr)
		}
	}

	stats, err := s.collect(collector)
	if err != nil {
		return nil, Statistics{}, err
	}
	return apply(m, stats), stats, nil
}

// Collect turns the accumulated column stats into standardization statistics.
func (s *Streaming) Collect(collector *buffer.StatsCollector) (Statistics, error) {
	if collector.Dim() == 0 || collector.Size() == 0 {
		return Statistics{}, fmt.Errorf("%d rows of %d columns: %w", collector.Size(), collector.Dim(), EmptyInputErr)
	}
	return s.collect(collector)
}

func (s *Streaming) collect(collector *buffer.StatsCollector) (Statistics, error) {
	cols := collector.Dim()
	means := make([]float64, cols)
	stdDevs := make([]float64, cols)
	for j, st := range collector.Stats() {
		means[j] = st.Avg()
		stdDevs[j] = st.StDev()
		if st.Min() == st.Max() {
			stdDevs[j] = 0
		}
	}
	return s.statistics(means, stdDevs)
}

func (s *Streaming) Transform(m Matrix, stats Statistics) (Matrix, error) {
	if _, _, err := checkTransform(m, stats); err != nil {
		return nil, err
	}
	return apply(m, stats), nil
}
