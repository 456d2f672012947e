package standard

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/drakos74/free-mri/internal/buffer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strategies(opts ...Option) map[string]Standardizer {
	return map[string]Standardizer{
		"dense":     NewDense(opts...),
		"loop":      NewLoop(opts...),
		"streaming": NewStreaming(opts...),
	}
}

func randomMatrix(rng *rand.Rand, rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			// spread the columns over different scales
			m[i][j] = (rng.Float64()*2 - 1) * math.Pow(10, float64(j%4))
		}
	}
	return m
}

func TestFit_TrainAndEvaluation(t *testing.T) {
	m := Matrix{{1, 100}, {2, 200}, {3, 300}, {4, 400}}
	e := Matrix{{5, 500}}

	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			z, stats, err := s.Fit(m)
			require.NoError(t, err)

			assert.InDeltaSlice(t, []float64{2.5, 250}, stats.Means(), 1e-12)
			assert.InDeltaSlice(t, []float64{math.Sqrt(1.25), math.Sqrt(12500)}, stats.StdDevs(), 1e-9)
			assert.InDelta(t, 1.118, stats.StdDevs()[0], 1e-3)
			assert.InDelta(t, 111.8, stats.StdDevs()[1], 1e-1)
			assert.Equal(t, 4, len(z))

			ze, err := s.Transform(e, stats)
			require.NoError(t, err)
			require.Equal(t, 1, len(ze))
			assert.InDelta(t, 2.236, ze[0][0], 1e-3)
			assert.InDelta(t, 2.236, ze[0][1], 1e-3)
			assert.InDelta(t, math.Sqrt(5), ze[0][0], 1e-9)
		})
	}
}

func TestFit_ZeroVariance(t *testing.T) {
	matrices := map[string]Matrix{
		"integer": {{2, 10}, {4, 10}, {6, 10}},
		// 0.1 has no exact binary representation, its mean is rounded
		"fraction":  {{1, 0.1}, {2, 0.1}, {3, 0.1}},
		"many-rows": {{1, 0.3}, {2, 0.3}, {3, 0.3}, {4, 0.3}, {5, 0.3}, {6, 0.3}, {7, 0.3}},
	}

	for mn, m := range matrices {
		for name, s := range strategies() {
			t.Run(mn+"-"+name, func(t *testing.T) {
				_, _, err := s.Fit(m)
				require.Error(t, err)
				assert.True(t, errors.Is(err, ZeroVarianceErr))
				var zv *ZeroVarianceError
				require.True(t, errors.As(err, &zv))
				assert.Equal(t, 1, zv.Column)
			})
		}
	}
}

func TestFit_ConstantColumnFloor(t *testing.T) {
	m := Matrix{{1, 0.1}, {2, 0.1}, {3, 0.1}}

	for name, s := range strategies(WithEpsilon(1e-3)) {
		t.Run(name, func(t *testing.T) {
			_, stats, err := s.Fit(m)
			require.NoError(t, err)
			assert.Equal(t, 1e-3, stats.StdDevs()[1])
		})
	}
}

func TestFit_EpsilonFloor(t *testing.T) {
	m := Matrix{{2, 10}, {4, 10}, {6, 10}}

	for name, s := range strategies(WithEpsilon(1e-3)) {
		t.Run(name, func(t *testing.T) {
			z, stats, err := s.Fit(m)
			require.NoError(t, err)
			assert.InDelta(t, 4.0, stats.Means()[0], 1e-12)
			assert.InDelta(t, math.Sqrt(8.0/3.0), stats.StdDevs()[0], 1e-12)
			assert.InDelta(t, 1.633, stats.StdDevs()[0], 1e-3)
			assert.Equal(t, 1e-3, stats.StdDevs()[1])
			for _, row := range z {
				assert.Equal(t, 0.0, row[1])
			}
		})
	}
}

func TestWithPolicy(t *testing.T) {
	type test struct {
		policy  Policy
		epsilon float64
		expect  Policy
	}

	tests := map[string]test{
		"fail":              {policy: Fail, expect: Fail},
		"floor":             {policy: Floor, epsilon: 0.1, expect: Floor},
		"floor-no-epsilon":  {policy: Floor, expect: Fail},
		"unknown-is-strict": {policy: "other", epsilon: 0.1, expect: Fail},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			o := newOptions(WithPolicy(tt.policy, tt.epsilon))
			assert.Equal(t, tt.expect, o.policy)
		})
	}
}

func TestFit_Errors(t *testing.T) {
	type test struct {
		m   Matrix
		err error
	}

	tests := map[string]test{
		"no-rows": {
			m:   Matrix{},
			err: EmptyInputErr,
		},
		"nil": {
			m:   nil,
			err: EmptyInputErr,
		},
		"no-columns": {
			m:   Matrix{{}, {}},
			err: EmptyInputErr,
		},
		"ragged": {
			m:   Matrix{{1, 2}, {3}},
			err: ShapeMismatchErr,
		},
	}

	for name, tt := range tests {
		for sn, s := range strategies() {
			t.Run(name+"-"+sn, func(t *testing.T) {
				_, _, err := s.Fit(tt.m)
				assert.True(t, errors.Is(err, tt.err), "%v", err)
			})
		}
	}
}

func TestTransform_Errors(t *testing.T) {
	stats, err := NewStatistics([]float64{1, 2}, []float64{1, 1})
	require.NoError(t, err)
	zero, err := NewStatistics([]float64{1, 2}, []float64{1, 0})
	require.NoError(t, err)

	type test struct {
		m     Matrix
		stats Statistics
		err   error
	}

	tests := map[string]test{
		"fewer-columns": {
			m:     Matrix{{1}},
			stats: stats,
			err:   ShapeMismatchErr,
		},
		"more-columns": {
			m:     Matrix{{1, 2, 3}},
			stats: stats,
			err:   ShapeMismatchErr,
		},
		"ragged": {
			m:     Matrix{{1, 2}, {1}},
			stats: stats,
			err:   ShapeMismatchErr,
		},
		"zero-deviation": {
			m:     Matrix{{1, 2}},
			stats: zero,
			err:   ZeroVarianceErr,
		},
		"no-statistics": {
			m:     Matrix{{}},
			stats: Statistics{},
			err:   EmptyInputErr,
		},
		"no-statistics-no-rows": {
			m:     Matrix{},
			stats: Statistics{},
			err:   EmptyInputErr,
		},
	}

	for name, tt := range tests {
		for sn, s := range strategies() {
			t.Run(name+"-"+sn, func(t *testing.T) {
				_, err := s.Transform(tt.m, tt.stats)
				assert.True(t, errors.Is(err, tt.err), "%v", err)
			})
		}
	}
}

func TestTransform_Empty(t *testing.T) {
	stats, err := NewStatistics([]float64{1}, []float64{1})
	require.NoError(t, err)
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			z, err := s.Transform(Matrix{}, stats)
			require.NoError(t, err)
			assert.Equal(t, 0, len(z))
		})
	}
}

func TestFit_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			for k := 0; k < 20; k++ {
				rows := 2 + rng.Intn(50)
				cols := 1 + rng.Intn(10)
				m := randomMatrix(rng, rows, cols)

				z, stats, err := s.Fit(m)
				require.NoError(t, err)
				require.Equal(t, rows, len(z))

				for j := 0; j < cols; j++ {
					col := z.Column(j)
					assert.InDelta(t, 0, mean(col), 1e-9)
					assert.InDelta(t, 1, variance(col), 1e-9)
				}

				// consistency: transforming the fitting matrix gives the fitted output
				zt, err := s.Transform(m, stats)
				require.NoError(t, err)
				assert.Equal(t, z, zt)

				// determinism
				zt2, err := s.Transform(m, stats)
				require.NoError(t, err)
				assert.Equal(t, zt, zt2)
			}
		})
	}
}

func TestFit_DoesNotMutateInput(t *testing.T) {
	m := Matrix{{1, 2}, {3, 5}, {7, 11}}
	original := Matrix{{1, 2}, {3, 5}, {7, 11}}
	for name, s := range strategies() {
		t.Run(name, func(t *testing.T) {
			z, stats, err := s.Fit(m)
			require.NoError(t, err)
			assert.Equal(t, original, m)

			z[0][0] = 100
			assert.Equal(t, original, m)

			means := stats.Means()
			means[0] = 100
			assert.NotEqual(t, 100.0, stats.Means()[0])
		})
	}
}

func TestStrategies_Equivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(123))

	reference := NewLoop()
	others := map[string]Standardizer{
		"dense":     NewDense(),
		"streaming": NewStreaming(),
	}

	for k := 0; k < 50; k++ {
		rows := 1 + rng.Intn(200)
		cols := 1 + rng.Intn(20)
		if rows == 1 {
			// a single row has no variance
			rows = 2
		}
		m := randomMatrix(rng, rows, cols)
		e := randomMatrix(rng, 1+rng.Intn(10), cols)

		zRef, statsRef, err := reference.Fit(m)
		require.NoError(t, err)
		eRef, err := reference.Transform(e, statsRef)
		require.NoError(t, err)

		for name, s := range others {
			z, stats, err := s.Fit(m)
			require.NoError(t, err, name)

			assertRelative(t, statsRef.Means(), stats.Means(), 1e-9)
			assertRelative(t, statsRef.StdDevs(), stats.StdDevs(), 1e-9)
			for i := range z {
				assertRelative(t, zRef[i], z[i], 1e-9)
			}

			ez, err := s.Transform(e, statsRef)
			require.NoError(t, err, name)
			for i := range ez {
				assertRelative(t, eRef[i], ez[i], 1e-9)
			}
		}
	}
}

func TestPackageDefault(t *testing.T) {
	m := Matrix{{1, 100}, {2, 200}, {3, 300}, {4, 400}}
	z, stats, err := Fit(m)
	require.NoError(t, err)
	zt, err := Transform(m, stats)
	require.NoError(t, err)
	assert.Equal(t, z, zt)
}

func assertRelative(t *testing.T, expected, actual []float64, tolerance float64) {
	t.Helper()
	require.Equal(t, len(expected), len(actual))
	for i := range expected {
		assert.LessOrEqual(t, relative(expected[i], actual[i]), tolerance, "index %d: %v vs %v", i, expected[i], actual[i])
	}
}

// relative is the difference relative to the expected value, an expected 0 is compared absolutely.
func relative(expected, actual float64) float64 {
	diff := math.Abs(expected - actual)
	if expected == 0 {
		return diff
	}
	return diff / math.Abs(expected)
}

func TestRelative(t *testing.T) {
	type test struct {
		expected float64
		actual   float64
		diff     float64
	}

	tests := map[string]test{
		"small":    {expected: 1e-6, actual: 1.1e-6, diff: 0.1},
		"large":    {expected: 1e6, actual: 1.1e6, diff: 0.1},
		"negative": {expected: -2, actual: -3, diff: 0.5},
		"zero":     {expected: 0, actual: 1e-12, diff: 1e-12},
		"equal":    {expected: 0.3, actual: 0.3, diff: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, tt.diff, relative(tt.expected, tt.actual), 1e-9)
		})
	}
}

func TestNew(t *testing.T) {
	type test struct {
		strategy Strategy
		expected Standardizer
		err      error
	}

	tests := map[string]test{
		"default":   {strategy: "", expected: &Dense{}},
		"dense":     {strategy: DenseStrategy, expected: &Dense{}},
		"loop":      {strategy: LoopStrategy, expected: &Loop{}},
		"streaming": {strategy: StreamingStrategy, expected: &Streaming{}},
		"unknown":   {strategy: "vector", err: UnknownStrategyErr},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := New(tt.strategy)
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.expected, s)
		})
	}
}

func TestStreaming_Collect(t *testing.T) {
	m := Matrix{{1, 100}, {2, 200}, {3, 300}, {4, 400}}

	collector := buffer.NewStatsCollector(2)
	for _, row := range m {
		require.NoError(t, collector.Push(row...))
	}

	s := NewStreaming()
	stats, err := s.Collect(collector)
	require.NoError(t, err)

	_, expected, err := NewLoop().Fit(m)
	require.NoError(t, err)
	assertRelative(t, expected.Means(), stats.Means(), 1e-12)
	assertRelative(t, expected.StdDevs(), stats.StdDevs(), 1e-12)

	_, err = s.Collect(buffer.NewStatsCollector(2))
	assert.True(t, errors.Is(err, EmptyInputErr))
}
