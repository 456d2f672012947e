package standard

import "math"

// Loop standardizes matrices with explicit per element loops.
// It serves as the reference implementation for the other strategies.
type Loop struct {
	options
}

// NewLoop creates a new loop standardizer.
func NewLoop(opts ...Option) *Loop {
	return &Loop{options: newOptions(opts...)}
}

func (l *Loop) Fit(m Matrix) (Matrix, Statistics, error) {
	_, cols, err := checkFit(m)
	if err != nil {
		return nil, Statistics{}, err
	}

	means := make([]float64, cols)
	stdDevs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		col := m.Column(j)
		means[j] = mean(col)
		stdDevs[j] = stdDev(col)
		if constant(col) {
			stdDevs[j] = 0
		}
	}

	stats, err := l.statistics(means, stdDevs)
	if err != nil {
		return nil, Statistics{}, err
	}
	return apply(m, stats), stats, nil
}

func (l *Loop) Transform(m Matrix, stats Statistics) (Matrix, error) {
	if _, _, err := checkTransform(m, stats); err != nil {
		return nil, err
	}
	return apply(m, stats), nil
}

func mean(data []float64) float64 {
	var sum float64
	for _, x := range data {
		sum += x
	}
	return sum / float64(len(data))
}

// variance is the population variance e.g. the mean of the squared deviations.
func variance(data []float64) float64 {
	mu := mean(data)
	squared := make([]float64, len(data))
	for i, x := range data {
		squared[i] = (x - mu) * (x - mu)
	}
	return mean(squared)
}

func stdDev(data []float64) float64 {
	return math.Sqrt(variance(data))
}
