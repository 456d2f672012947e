package plot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/drakos74/free-mri/internal/math"
	"github.com/guptarohit/asciigraph"
)

// LengthMismatchErr is returned when two series can not be compared element by element.
var LengthMismatchErr = errors.New("length mismatch")

const (
	height = 10
	width  = 80
)

// Series is a labelled feature vector.
type Series struct {
	Label  string
	Values []float64
}

// SymLog maps the values on a symmetric log scale,
// so that features of very different magnitude fit in the same chart.
func SymLog(values []float64) []float64 {
	ll := make([]float64, len(values))
	for i, v := range values {
		ll[i] = math.SymLog(v)
	}
	return ll
}

// Features renders every series on a symlog scale, one chart per series.
func Features(series ...Series) string {
	var sb strings.Builder
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(asciigraph.Plot(SymLog(s.Values),
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(s.Label)))
	}
	return sb.String()
}

// Difference returns a - b element by element.
func Difference(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%d vs %d: %w", len(a), len(b), LengthMismatchErr)
	}
	diff := make([]float64, len(a))
	for i := range a {
		diff[i] = a[i] - b[i]
	}
	return diff, nil
}

// Compare renders both series and their difference.
func Compare(a, b Series) (string, error) {
	diff, err := Difference(a.Values, b.Values)
	if err != nil {
		return "", fmt.Errorf("could not compare '%s' to '%s': %w", a.Label, b.Label, err)
	}
	return Features(a, b, Series{
		Label:  "Difference",
		Values: diff,
	}), nil
}
