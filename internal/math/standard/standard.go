package standard

import (
	"errors"
	"fmt"
)

var (
	// ShapeMismatchErr is returned when a matrix does not match the expected column count.
	ShapeMismatchErr = errors.New("shape mismatch")
	// EmptyInputErr is returned when fitting on a matrix with no rows or no columns.
	EmptyInputErr = errors.New("empty input")
	// ZeroVarianceErr is returned when a column has a standard deviation of exactly zero.
	ZeroVarianceErr = errors.New("zero variance")
)

// ZeroVarianceError names the column that can not be standardized.
type ZeroVarianceError struct {
	Column int
}

func (e *ZeroVarianceError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Column, ZeroVarianceErr.Error())
}

func (e *ZeroVarianceError) Unwrap() error {
	return ZeroVarianceErr
}

// Matrix is a set of observations (rows) over features (columns).
type Matrix [][]float64

// Shape returns the number of rows and columns.
// It fails if the rows are of different length.
func (m Matrix) Shape() (int, int, error) {
	rows := len(m)
	if rows == 0 {
		return 0, 0, nil
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("row %d has %d columns instead of %d: %w", i, len(row), cols, ShapeMismatchErr)
		}
	}
	return rows, cols, nil
}

// Column returns a copy of the j-th column.
func (m Matrix) Column(j int) []float64 {
	col := make([]float64, len(m))
	for i, row := range m {
		col[i] = row[j]
	}
	return col
}

// Standardizer computes column statistics on a training matrix
// and applies them to any matrix of the same width.
type Standardizer interface {
	// Fit returns the standardized matrix together with the statistics it was computed with.
	Fit(m Matrix) (Matrix, Statistics, error)
	// Transform standardizes the matrix with the given statistics.
	Transform(m Matrix, stats Statistics) (Matrix, error)
}

// Default is the standardizer used by the package level functions.
var Default Standardizer = NewDense()

// Fit standardizes the matrix with the default strategy.
func Fit(m Matrix) (Matrix, Statistics, error) {
	return Default.Fit(m)
}

// Transform standardizes the matrix with previously fitted statistics.
func Transform(m Matrix, stats Statistics) (Matrix, error) {
	return Default.Transform(m, stats)
}

func checkFit(m Matrix) (int, int, error) {
	rows, cols, err := m.Shape()
	if err != nil {
		return 0, 0, err
	}
	if rows == 0 || cols == 0 {
		return 0, 0, fmt.Errorf("matrix of %d rows and %d columns: %w", rows, cols, EmptyInputErr)
	}
	return rows, cols, nil
}

func checkTransform(m Matrix, stats Statistics) (int, int, error) {
	rows, cols, err := m.Shape()
	if err != nil {
		return 0, 0, err
	}
	if stats.Columns() == 0 {
		return 0, 0, fmt.Errorf("statistics without columns: %w", EmptyInputErr)
	}
	if rows > 0 && cols != stats.Columns() {
		return 0, 0, fmt.Errorf("matrix has %d columns, statistics have %d: %w", cols, stats.Columns(), ShapeMismatchErr)
	}
	for j, sd := range stats.stdDevs {
		if sd == 0 {
			return 0, 0, &ZeroVarianceError{Column: j}
		}
	}
	return rows, cols, nil
}

// constant reports whether every value of the column equals the first one.
// The rounded mean of such a column can differ from its values, so the variance is not reliably 0.
func constant(col []float64) bool {
	for _, v := range col {
		if v != col[0] {
			return false
		}
	}
	return true
}

// apply standardizes every element against the statistics.
// it is shared by the loop based strategies, so that Fit and Transform produce the exact same values.
func apply(m Matrix, stats Statistics) Matrix {
	z := make(Matrix, len(m))
	for i, row := range m {
		z[i] = make([]float64, len(row))
		for j, v := range row {
			z[i][j] = (v - stats.means[j]) / stats.stdDevs[j]
		}
	}
	return z
}

// Strategy names a standardizer implementation.
type Strategy string

const (
	DenseStrategy     Strategy = "dense"
	LoopStrategy      Strategy = "loop"
	StreamingStrategy Strategy = "streaming"
)

// UnknownStrategyErr is returned for a strategy name that has no implementation.
var UnknownStrategyErr = errors.New("unknown strategy")

// New creates the standardizer for the given strategy, an empty strategy falls back to dense.
func New(strategy Strategy, opts ...Option) (Standardizer, error) {
	switch strategy {
	case DenseStrategy, "":
		return NewDense(opts...), nil
	case LoopStrategy:
		return NewLoop(opts...), nil
	case StreamingStrategy:
		return NewStreaming(opts...), nil
	}
	return nil, fmt.Errorf("'%s': %w", strategy, UnknownStrategyErr)
}
