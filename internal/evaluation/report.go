package evaluation

import (
	"io"

	"github.com/drakos74/free-mri/internal/math"
	"github.com/olekukonko/tablewriter"
)

// Scores are the positive class scores for one data set.
type Scores struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
}

// Evaluate computes the scores of the predictions.
func Evaluate(truth, predicted []int, positive int) (Scores, error) {
	p, err := Precision(truth, predicted, positive)
	if err != nil {
		return Scores{}, err
	}
	r, err := Recall(truth, predicted, positive)
	if err != nil {
		return Scores{}, err
	}
	return Scores{Precision: p, Recall: r}, nil
}

// Report compares the training and validation scores of a classifier.
type Report struct {
	Training   Scores `json:"training"`
	Validation Scores `json:"validation"`
}

// NewReport evaluates the training and validation predictions.
func NewReport(trainTruth, trainPredicted, validationTruth, validationPredicted []int, positive int) (Report, error) {
	training, err := Evaluate(trainTruth, trainPredicted, positive)
	if err != nil {
		return Report{}, err
	}
	validation, err := Evaluate(validationTruth, validationPredicted, positive)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Training:   training,
		Validation: validation,
	}, nil
}

// Render writes the report as a table.
func (r Report) Render(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"set", "precision", "recall"})
	table.Append([]string{"training", math.Format(r.Training.Precision), math.Format(r.Training.Recall)})
	table.Append([]string{"validation", math.Format(r.Validation.Precision), math.Format(r.Validation.Recall)})
	table.Render()
}
