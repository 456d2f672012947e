package ml

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"
)

const classAttribute = "class"

// KNN is a k-nearest-neighbours classifier.
type KNN struct {
	k        int
	distance string
	schema   *schema
	cls      *knn.KNNClassifier
}

// NewKNN creates a new knn classifier for the given neighbours and distance function e.g. "euclidean", "manhattan", "cosine".
func NewKNN(k int, distance string) *KNN {
	return &KNN{
		k:        k,
		distance: distance,
	}
}

// KNNFactory creates knn classifiers.
func KNNFactory(k int, distance string) Factory {
	return func() Classifier {
		return NewKNN(k, distance)
	}
}

func (c *KNN) Fit(x [][]float64, y []int) error {
	features, _, err := checkTraining(x, y)
	if err != nil {
		return err
	}
	c.schema = newSchema(features)
	data, err := c.schema.instances(x, y)
	if err != nil {
		return err
	}
	cls := knn.NewKnnClassifier(c.distance, "linear", c.k)
	if err := cls.Fit(data); err != nil {
		log.Error().Err(err).Msg("could not train knn model")
		return fmt.Errorf("could not fit knn: %w", err)
	}
	c.cls = cls
	return nil
}

func (c *KNN) Predict(x [][]float64) ([]int, error) {
	if c.cls == nil {
		return nil, NotFittedErr
	}
	if err := checkPredict(x, c.schema.size()); err != nil {
		return nil, err
	}
	if len(x) == 0 {
		return []int{}, nil
	}
	data, err := c.schema.instances(x, nil)
	if err != nil {
		return nil, err
	}
	predictions, err := c.cls.Predict(data)
	if err != nil {
		log.Error().Err(err).Msg("could not predict on knn model")
		return nil, fmt.Errorf("could not predict with knn: %w", err)
	}
	labels := make([]int, len(x))
	for i := range labels {
		label, err := strconv.Atoi(base.GetClass(predictions, i))
		if err != nil {
			return nil, fmt.Errorf("unexpected class at row %d: %w", i, err)
		}
		labels[i] = label
	}
	return labels, nil
}

// schema keeps the attributes shared between the training and prediction instances.
type schema struct {
	features []*base.FloatAttribute
	class    *base.CategoricalAttribute
}

func newSchema(features int) *schema {
	attrs := make([]*base.FloatAttribute, features)
	for j := range attrs {
		attrs[j] = base.NewFloatAttribute(fmt.Sprintf("f%d", j))
	}
	class := base.NewCategoricalAttribute()
	class.SetName(classAttribute)
	return &schema{
		features: attrs,
		class:    class,
	}
}

func (s *schema) size() int {
	return len(s.features)
}

// instances builds the golearn data grid, without labels the class is left at its first value.
func (s *schema) instances(x [][]float64, y []int) (*base.DenseInstances, error) {
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(s.features))
	for j, a := range s.features {
		specs[j] = inst.AddAttribute(a)
	}
	classSpec := inst.AddAttribute(s.class)
	if err := inst.AddClassAttribute(s.class); err != nil {
		return nil, fmt.Errorf("could not add class attribute: %w", err)
	}
	if err := inst.Extend(len(x)); err != nil {
		return nil, fmt.Errorf("could not allocate %d rows: %w", len(x), err)
	}
	for i, row := range x {
		for j, v := range row {
			inst.Set(specs[j], i, base.PackFloatToBytes(v))
		}
		label := 0
		if y != nil {
			label = y[i]
		}
		inst.Set(classSpec, i, s.class.GetSysValFromString(strconv.Itoa(label)))
	}
	return inst, nil
}
