package standard

import "fmt"

// Policy defines how a column without variance is treated.
type Policy string

const (
	// Fail rejects columns with zero standard deviation.
	Fail Policy = "fail"
	// Floor replaces standard deviations below epsilon with epsilon.
	Floor Policy = "floor"
)

type options struct {
	policy  Policy
	epsilon float64
}

// Option configures a standardizer.
type Option func(o *options)

// WithEpsilon switches to the Floor policy with the given epsilon.
// A non-positive epsilon keeps the Fail policy.
func WithEpsilon(epsilon float64) Option {
	return func(o *options) {
		if epsilon > 0 {
			o.policy = Floor
			o.epsilon = epsilon
		}
	}
}

// WithPolicy sets the zero variance policy from its config representation.
func WithPolicy(policy Policy, epsilon float64) Option {
	return func(o *options) {
		switch policy {
		case Floor:
			WithEpsilon(epsilon)(o)
		default:
			o.policy = Fail
		}
	}
}

func newOptions(opts ...Option) options {
	o := options{policy: Fail}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// stdDev applies the zero variance policy to the standard deviation of column j.
func (o options) stdDev(j int, sd float64) (float64, error) {
	if o.policy == Floor && sd < o.epsilon {
		return o.epsilon, nil
	}
	if sd == 0 {
		return 0, &ZeroVarianceError{Column: j}
	}
	return sd, nil
}

// statistics builds the statistics, applying the zero variance policy to every column.
func (o options) statistics(means, stdDevs []float64) (Statistics, error) {
	for j, sd := range stdDevs {
		s, err := o.stdDev(j, sd)
		if err != nil {
			return Statistics{}, err
		}
		stdDevs[j] = s
	}
	if len(means) != len(stdDevs) {
		return Statistics{}, fmt.Errorf("%d means vs %d deviations: %w", len(means), len(stdDevs), ShapeMismatchErr)
	}
	return Statistics{means: means, stdDevs: stdDevs}, nil
}
