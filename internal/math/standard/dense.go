package standard

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Dense standardizes matrices with bulk column reductions on a gonum dense matrix.
type Dense struct {
	options
}

// NewDense creates a new dense standardizer.
func NewDense(opts ...Option) *Dense {
	return &Dense{options: newOptions(opts...)}
}

func (d *Dense) Fit(m Matrix) (Matrix, Statistics, error) {
	rows, cols, err := checkFit(m)
	if err != nil {
		return nil, Statistics{}, err
	}

	a := dense(m, rows, cols)

	means := make([]float64, cols)
	stdDevs := make([]float64, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, a)
		means[j] = stat.Mean(col, nil)
		// the second central moment is the population variance
		stdDevs[j] = math.Sqrt(stat.Moment(2, col, nil))
		if constant(col) {
			stdDevs[j] = 0
		}
	}

	stats, err := d.statistics(means, stdDevs)
	if err != nil {
		return nil, Statistics{}, err
	}

	return d.transform(a, stats), stats, nil
}

func (d *Dense) Transform(m Matrix, stats Statistics) (Matrix, error) {
	rows, cols, err := checkTransform(m, stats)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return Matrix{}, nil
	}
	return d.transform(dense(m, rows, cols), stats), nil
}

func (d *Dense) transform(a *mat.Dense, stats Statistics) Matrix {
	rows, _ := a.Dims()
	var z mat.Dense
	z.Apply(func(i, j int, v float64) float64 {
		return (v - stats.means[j]) / stats.stdDevs[j]
	}, a)
	out := make(Matrix, rows)
	for i := 0; i < rows; i++ {
		out[i] = mat.Row(nil, i, &z)
	}
	return out
}

// dense copies the matrix into a gonum dense matrix, the input is never referenced.
func dense(m Matrix, rows, cols int) *mat.Dense {
	data := make([]float64, 0, rows*cols)
	for _, row := range m {
		data = append(data, row...)
	}
	return mat.NewDense(rows, cols, data)
}
