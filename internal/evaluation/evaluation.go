package evaluation

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sjwhitworth/golearn/evaluation"
)

var (
	// LengthMismatchErr is returned when true and predicted labels differ in length.
	LengthMismatchErr = errors.New("length mismatch")
	// EmptyErr is returned when there are no labels to evaluate.
	EmptyErr = errors.New("no labels")
)

// Confusion builds the confusion matrix of actual vs predicted labels.
func Confusion(truth, predicted []int) (evaluation.ConfusionMatrix, error) {
	if len(truth) != len(predicted) {
		return nil, fmt.Errorf("%d true vs %d predicted labels: %w", len(truth), len(predicted), LengthMismatchErr)
	}
	if len(truth) == 0 {
		return nil, EmptyErr
	}
	cm := make(evaluation.ConfusionMatrix)
	for i, t := range truth {
		actual := label(t)
		if _, ok := cm[actual]; !ok {
			cm[actual] = make(map[string]int)
		}
		cm[actual][label(predicted[i])]++
	}
	return cm, nil
}

// Precision is the ratio of correct positive predictions over all positive predictions.
// Without any positive prediction it is 0.
func Precision(truth, predicted []int, positive int) (float64, error) {
	cm, err := Confusion(truth, predicted)
	if err != nil {
		return 0, err
	}
	class := label(positive)
	if evaluation.GetTruePositives(class, cm)+evaluation.GetFalsePositives(class, cm) == 0 {
		return 0, nil
	}
	return evaluation.GetPrecision(class, cm), nil
}

// Recall is the ratio of correct positive predictions over all actual positives.
// Without any actual positive it is 0.
func Recall(truth, predicted []int, positive int) (float64, error) {
	cm, err := Confusion(truth, predicted)
	if err != nil {
		return 0, err
	}
	class := label(positive)
	if evaluation.GetTruePositives(class, cm)+evaluation.GetFalseNegatives(class, cm) == 0 {
		return 0, nil
	}
	return evaluation.GetRecall(class, cm), nil
}

// F1 is the harmonic mean of precision and recall.
func F1(truth, predicted []int, positive int) (float64, error) {
	p, err := Precision(truth, predicted, positive)
	if err != nil {
		return 0, err
	}
	r, err := Recall(truth, predicted, positive)
	if err != nil {
		return 0, err
	}
	if p+r == 0 {
		return 0, nil
	}
	return 2 * p * r / (p + r), nil
}

// Accuracy is the ratio of correct predictions.
func Accuracy(truth, predicted []int) (float64, error) {
	cm, err := Confusion(truth, predicted)
	if err != nil {
		return 0, err
	}
	return evaluation.GetAccuracy(cm), nil
}

// Summary renders the per class precision, recall and f1 of the predictions.
func Summary(truth, predicted []int) (string, error) {
	cm, err := Confusion(truth, predicted)
	if err != nil {
		return "", err
	}
	return evaluation.GetSummary(cm), nil
}

func label(l int) string {
	return strconv.Itoa(l)
}
