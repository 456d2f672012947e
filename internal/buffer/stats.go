package buffer

import (
	"errors"
	"fmt"
	"math"
)

// DimensionErr is returned when a pushed row does not match the collector dimensions.
var DimensionErr = errors.New("inconsistent dimensions")

// Stats is a set of statistical properties of a stream of numbers.
// The mean and squared distance are updated incrementally (Welford),
// so the values never need to be kept around.
type Stats struct {
	count          int
	sum            float64
	min, max       float64
	mean, dSquared float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.MaxFloat64,
		max: -math.MaxFloat64,
	}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	s.sum += v
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	squaredDiff := (v - mean) * (v - s.mean)
	s.dSquared += squaredDiff
	s.mean = mean

	if s.min > v {
		s.min = v
	}

	if s.max < v {
		s.max = v
	}
}

// Avg returns the average value of the set.
func (s Stats) Avg() float64 {
	return s.mean
}

// Sum returns the sum of all elements.
func (s Stats) Sum() float64 {
	return s.sum
}

// Count returns the number of elements.
func (s Stats) Count() int {
	return s.count
}

// Min returns the smallest element pushed so far.
func (s Stats) Min() float64 {
	return s.min
}

// Max returns the largest element pushed so far.
func (s Stats) Max() float64 {
	return s.max
}

// Variance is the population variance of the set.
func (s Stats) Variance() float64 {
	if s.count == 0 {
		return 0
	}
	return s.dSquared / float64(s.count)
}

// StDev is the population standard deviation of the set.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}

// SampleVariance is the sample variance of the set.
func (s Stats) SampleVariance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.dSquared / float64(s.count-1)
}

// SampleStDev is the sample standard deviation of the set.
func (s Stats) SampleStDev() float64 {
	return math.Sqrt(s.SampleVariance())
}

// StatsCollector is a collection of Stats variables.
// This enables multi-dimensional tracking, one Stats per column.
type StatsCollector struct {
	dim   int
	stats []*Stats
}

// NewStatsCollector creates a new Stats collector.
func NewStatsCollector(dim int) *StatsCollector {
	stats := make([]*Stats, dim)
	for i := 0; i < dim; i++ {
		stats[i] = NewStats()
	}
	return &StatsCollector{
		dim:   dim,
		stats: stats,
	}
}

// Push pushes each value to the corresponding dimension.
func (sc *StatsCollector) Push(v ...float64) error {
	if len(v) != sc.dim {
		return fmt.Errorf("%d vs %d: %w", len(v), sc.dim, DimensionErr)
	}
	for i := 0; i < len(sc.stats); i++ {
		sc.stats[i].Push(v[i])
	}
	return nil
}

// Stats returns the per dimension stats.
func (sc StatsCollector) Stats() []*Stats {
	return sc.stats
}

// Dim returns the number of tracked dimensions.
func (sc StatsCollector) Dim() int {
	return sc.dim
}

// Size returns the number of rows pushed.
func (sc *StatsCollector) Size() int {
	if sc.dim == 0 {
		return 0
	}
	// we expect all dimensions to have the same size
	return sc.stats[0].count
}
