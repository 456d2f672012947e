package validation

import (
	"fmt"

	"github.com/drakos74/free-mri/internal/evaluation"
	"github.com/drakos74/free-mri/internal/math"
	"github.com/drakos74/free-mri/internal/math/ml"
	"github.com/drakos74/free-mri/internal/math/standard"
	"github.com/drakos74/free-mri/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	trainSet = "train"
	testSet  = "test"
)

// FoldResult is the outcome of training and evaluating on one fold.
type FoldResult struct {
	Fold  int     `json:"fold"`
	Train float64 `json:"train"`
	Test  float64 `json:"test"`
}

// Result collects the accuracies of all folds.
type Result struct {
	ID    string       `json:"id"`
	Folds []FoldResult `json:"folds"`
	// Report holds the precision and recall over the predictions of all folds
	Report evaluation.Report `json:"report"`
}

// Train returns the train accuracy of every fold.
func (r Result) Train() []float64 {
	ff := make([]float64, len(r.Folds))
	for i, f := range r.Folds {
		ff[i] = f.Train
	}
	return ff
}

// Test returns the test accuracy of every fold.
func (r Result) Test() []float64 {
	ff := make([]float64, len(r.Folds))
	for i, f := range r.Folds {
		ff[i] = f.Test
	}
	return ff
}

// MeanTrain is the average train accuracy.
func (r Result) MeanTrain() float64 {
	return math.Mean(r.Train())
}

// MeanTest is the average test accuracy.
func (r Result) MeanTest() float64 {
	return math.Mean(r.Test())
}

// CrossValidate trains a new classifier on every fold and scores it on the train and test part.
// The features are standardized per fold, with statistics fitted on the train part only.
func CrossValidate(x [][]float64, y []int, factory ml.Factory, cfg Config) (Result, error) {
	if len(x) != len(y) {
		return Result{}, fmt.Errorf("%d rows vs %d labels: %w", len(x), len(y), ml.InvalidInputErr)
	}

	folds, err := cfg.KFold().Split(len(x))
	if err != nil {
		return Result{}, err
	}

	standardizer, err := cfg.Standardizer()
	if err != nil {
		return Result{}, err
	}

	result := Result{
		ID:    uuid.New().String(),
		Folds: make([]FoldResult, len(folds)),
	}

	var trainTruth, trainPredicted, testTruth, testPredicted []int
	for f, fold := range folds {
		xTrain, err := standardize(standardizer, selectRows(x, fold.Train))
		if err != nil {
			return Result{}, fmt.Errorf("fold %d: %w", f, err)
		}
		yTrain := selectLabels(y, fold.Train)
		xTest, err := standardizer.Transform(selectRows(x, fold.Test), xTrain.stats)
		if err != nil {
			return Result{}, fmt.Errorf("fold %d: %w", f, err)
		}
		metrics.Observer.Standardized("transform", len(xTest))
		yTest := selectLabels(y, fold.Test)

		clf := factory()
		if err := clf.Fit(xTrain.z, yTrain); err != nil {
			log.Error().Err(err).Str("run", result.ID).Int("fold", f).Msg("could not fit classifier")
			return Result{}, fmt.Errorf("fold %d: could not fit: %w", f, err)
		}

		pTrain, err := clf.Predict(xTrain.z)
		if err != nil {
			return Result{}, fmt.Errorf("fold %d: could not predict train set: %w", f, err)
		}
		pTest, err := clf.Predict(xTest)
		if err != nil {
			return Result{}, fmt.Errorf("fold %d: could not predict test set: %w", f, err)
		}

		accTrain, err := evaluation.Accuracy(yTrain, pTrain)
		if err != nil {
			return Result{}, fmt.Errorf("fold %d: %w", f, err)
		}
		accTest, err := evaluation.Accuracy(yTest, pTest)
		if err != nil {
			return Result{}, fmt.Errorf("fold %d: %w", f, err)
		}

		result.Folds[f] = FoldResult{
			Fold:  f,
			Train: accTrain,
			Test:  accTest,
		}
		metrics.Observer.Accuracy(cfg.model(), trainSet, f, accTrain)
		metrics.Observer.Accuracy(cfg.model(), testSet, f, accTest)

		trainTruth = append(trainTruth, yTrain...)
		trainPredicted = append(trainPredicted, pTrain...)
		testTruth = append(testTruth, yTest...)
		testPredicted = append(testPredicted, pTest...)

		log.Debug().
			Str("run", result.ID).
			Int("fold", f).
			Int("train", len(fold.Train)).
			Int("test", len(fold.Test)).
			Float64("train-accuracy", accTrain).
			Float64("test-accuracy", accTest).
			Msg("fold completed")
	}

	report, err := evaluation.NewReport(trainTruth, trainPredicted, testTruth, testPredicted, cfg.Positive)
	if err != nil {
		return Result{}, err
	}
	result.Report = report
	metrics.Observer.Scores(cfg.model(), trainSet, report.Training.Precision, report.Training.Recall)
	metrics.Observer.Scores(cfg.model(), testSet, report.Validation.Precision, report.Validation.Recall)

	log.Info().
		Str("run", result.ID).
		Int("folds", len(folds)).
		Float64("train", result.MeanTrain()).
		Float64("test", result.MeanTest()).
		Msg("cross validation completed")

	return result, nil
}

type fitted struct {
	z     [][]float64
	stats standard.Statistics
}

func standardize(s standard.Standardizer, m [][]float64) (fitted, error) {
	z, stats, err := s.Fit(m)
	if err != nil {
		return fitted{}, err
	}
	metrics.Observer.Standardized("fit", len(z))
	return fitted{z: z, stats: stats}, nil
}
