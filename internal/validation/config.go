package validation

import "github.com/drakos74/free-mri/internal/math/standard"

// Config defines the cross validation set up.
type Config struct {
	// Model names the classifier in the metrics
	Model string `json:"model"`
	// Folds is the number of folds to split the data into
	Folds int `json:"folds"`
	// Shuffle shuffles the rows before splitting
	Shuffle bool `json:"shuffle"`
	// Seed seeds the shuffling, so that runs are reproducible
	Seed int64 `json:"seed"`
	// Positive is the label of the positive class for precision and recall
	Positive int `json:"positive"`
	// Strategy is the standardization implementation
	Strategy standard.Strategy `json:"strategy"`
	// Policy defines the handling of zero variance columns
	Policy standard.Policy `json:"policy"`
	// Epsilon is the standard deviation floor for the floor policy
	Epsilon float64 `json:"epsilon"`
}

// DefaultConfig returns 5 shuffled folds with a fixed seed.
func DefaultConfig() Config {
	return Config{
		Model:    "classifier",
		Folds:    5,
		Shuffle:  true,
		Seed:     123,
		Positive: 1,
		Strategy: standard.DenseStrategy,
		Policy:   standard.Fail,
	}
}

func (c Config) model() string {
	if c.Model == "" {
		return "classifier"
	}
	return c.Model
}

// KFold returns the fold splitter for the config.
func (c Config) KFold() KFold {
	return KFold{
		Splits:  c.Folds,
		Shuffle: c.Shuffle,
		Seed:    c.Seed,
	}
}

// Standardizer returns the standardizer for the config.
func (c Config) Standardizer() (standard.Standardizer, error) {
	return standard.New(c.Strategy, standard.WithPolicy(c.Policy, c.Epsilon))
}
