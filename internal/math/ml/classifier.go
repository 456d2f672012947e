package ml

import (
	"errors"
	"fmt"
)

var (
	// NotFittedErr is returned when predicting before fitting.
	NotFittedErr = errors.New("classifier not fitted")
	// InvalidInputErr is returned for empty or inconsistent training data.
	InvalidInputErr = errors.New("invalid input")
)

// Classifier learns integer class labels from feature rows.
type Classifier interface {
	Fit(x [][]float64, y []int) error
	Predict(x [][]float64) ([]int, error)
}

// Factory creates a new untrained classifier.
type Factory func() Classifier

// Score returns the mean accuracy of the classifier predictions on the given data.
func Score(c Classifier, x [][]float64, y []int) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%d rows vs %d labels: %w", len(x), len(y), InvalidInputErr)
	}
	if len(x) == 0 {
		return 0, fmt.Errorf("no rows: %w", InvalidInputErr)
	}
	predictions, err := c.Predict(x)
	if err != nil {
		return 0, err
	}
	var hits int
	for i, p := range predictions {
		if p == y[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(y)), nil
}

// checkTraining validates the training set and returns the number of features and classes.
// classes are expected to be non-negative, their count is the largest label + 1.
func checkTraining(x [][]float64, y []int) (int, int, error) {
	if len(x) == 0 {
		return 0, 0, fmt.Errorf("no rows: %w", InvalidInputErr)
	}
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("%d rows vs %d labels: %w", len(x), len(y), InvalidInputErr)
	}
	features := len(x[0])
	if features == 0 {
		return 0, 0, fmt.Errorf("no features: %w", InvalidInputErr)
	}
	classes := 0
	for i, row := range x {
		if len(row) != features {
			return 0, 0, fmt.Errorf("row %d has %d features instead of %d: %w", i, len(row), features, InvalidInputErr)
		}
		if y[i] < 0 {
			return 0, 0, fmt.Errorf("negative label %d at row %d: %w", y[i], i, InvalidInputErr)
		}
		if y[i]+1 > classes {
			classes = y[i] + 1
		}
	}
	return features, classes, nil
}

func checkPredict(x [][]float64, features int) error {
	for i, row := range x {
		if len(row) != features {
			return fmt.Errorf("row %d has %d features instead of %d: %w", i, len(row), features, InvalidInputErr)
		}
	}
	return nil
}

// argMax returns the index of the largest value.
func argMax(ff []float64) int {
	var idx int
	for i, f := range ff {
		if f > ff[idx] {
			idx = i
		}
	}
	return idx
}
