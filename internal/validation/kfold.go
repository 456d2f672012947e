package validation

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// InvalidSplitErr is returned when the data can not be split into the requested folds.
var InvalidSplitErr = errors.New("invalid split")

// Fold holds the row indices of one train / test split.
type Fold struct {
	Train []int `json:"train"`
	Test  []int `json:"test"`
}

// KFold splits a data set into consecutive folds, optionally shuffling the rows first.
// The first n % Splits folds have one more element than the rest.
type KFold struct {
	Splits  int
	Shuffle bool
	Seed    int64
}

// Split returns the folds for a data set of n rows.
// Test indices follow the (shuffled) order, train indices are sorted.
func (k KFold) Split(n int) ([]Fold, error) {
	if k.Splits < 2 {
		return nil, fmt.Errorf("need at least 2 splits, got %d: %w", k.Splits, InvalidSplitErr)
	}
	if k.Splits > n {
		return nil, fmt.Errorf("can not split %d rows into %d folds: %w", n, k.Splits, InvalidSplitErr)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if k.Shuffle {
		rng := rand.New(rand.NewSource(k.Seed))
		rng.Shuffle(n, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, k.Splits)
	start := 0
	for f := 0; f < k.Splits; f++ {
		size := n / k.Splits
		if f < n%k.Splits {
			size++
		}
		test := make([]int, size)
		copy(test, indices[start:start+size])

		inTest := make(map[int]bool, size)
		for _, i := range test {
			inTest[i] = true
		}
		train := make([]int, 0, n-size)
		for i := 0; i < n; i++ {
			if !inTest[i] {
				train = append(train, i)
			}
		}
		sort.Ints(train)

		folds[f] = Fold{
			Train: train,
			Test:  test,
		}
		start += size
	}
	return folds, nil
}

func selectRows(x [][]float64, idx []int) [][]float64 {
	rows := make([][]float64, len(idx))
	for i, j := range idx {
		rows[i] = x[j]
	}
	return rows
}

func selectLabels(y []int, idx []int) []int {
	labels := make([]int, len(idx))
	for i, j := range idx {
		labels[i] = y[j]
	}
	return labels
}
