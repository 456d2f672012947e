package ml

import (
	randomforest "github.com/malaschitz/randomForest"
)

// RandomForest is a random forest classifier.
type RandomForest struct {
	trees    int
	features int
	forest   *randomforest.Forest
}

// NewForest creates a new random forest with n trees.
func NewForest(n int) *RandomForest {
	return &RandomForest{
		trees: n,
	}
}

// ForestFactory creates random forests of n trees.
func ForestFactory(n int) Factory {
	return func() Classifier {
		return NewForest(n)
	}
}

func (rf *RandomForest) Fit(x [][]float64, y []int) error {
	features, _, err := checkTraining(x, y)
	if err != nil {
		return err
	}
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: y}
	forest.Train(rf.trees)
	rf.forest = forest
	rf.features = features
	return nil
}

func (rf *RandomForest) Predict(x [][]float64) ([]int, error) {
	if rf.forest == nil {
		return nil, NotFittedErr
	}
	if err := checkPredict(x, rf.features); err != nil {
		return nil, err
	}
	predictions := make([]int, len(x))
	for i, row := range x {
		predictions[i] = argMax(rf.forest.Vote(row))
	}
	return predictions, nil
}

// FeatureImportance returns the importance of each feature for the trained forest.
func (rf *RandomForest) FeatureImportance() []float64 {
	if rf.forest == nil {
		return nil
	}
	return rf.forest.FeatureImportance
}
