package ml

import (
	"math"

	"github.com/drakos74/go-ex-machina/xmachina/ml"
	"github.com/drakos74/go-ex-machina/xmachina/net"
	"github.com/drakos74/go-ex-machina/xmachina/net/ff"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
)

// Network is a feed forward network classifier with a softmax output layer.
type Network struct {
	hidden   int
	epochs   int
	features int
	classes  int
	net      *ff.Network
}

// NewNetwork creates a new network classifier with one hidden layer of the given size.
func NewNetwork(hidden, epochs int) *Network {
	return &Network{
		hidden: hidden,
		epochs: epochs,
	}
}

// NetworkFactory creates network classifiers.
func NetworkFactory(hidden, epochs int) Factory {
	return func() Classifier {
		return NewNetwork(hidden, epochs)
	}
}

func (n *Network) build(features, classes int) *ff.Network {
	// tanh with softmax
	rate := ml.Learn(1, 0.1)

	initW := xmath.Rand(0, 1, math.Sqrt)
	initB := xmath.Rand(0, 1, math.Sqrt)
	network := ff.New(features, classes).
		Add(n.hidden, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(classes, net.NewBuilder().
			WithModule(ml.Base().
				WithRate(rate).
				WithActivation(ml.TanH)).
			WithWeights(initW, initB).
			Factory(net.NewActivationCell)).
		Add(classes, net.NewBuilder().CellFactory(net.NewSoftCell))
	network.Loss(ml.Pow)
	return network
}

func (n *Network) Fit(x [][]float64, y []int) error {
	features, classes, err := checkTraining(x, y)
	if err != nil {
		return err
	}
	// a single class still needs two outputs for the softmax to make sense
	if classes < 2 {
		classes = 2
	}
	n.features = features
	n.classes = classes
	n.net = n.build(features, classes)

	for e := 0; e < n.epochs; e++ {
		var loss float64
		for i, row := range x {
			out := xmath.Vec(classes)
			out[y[i]] = 1
			l, _ := n.net.Train(xmath.Vec(features).With(row...), out)
			loss += l.Norm()
		}
		log.Debug().Int("epoch", e).Float64("loss", loss/float64(len(x))).Msg("network training")
	}
	return nil
}

func (n *Network) Predict(x [][]float64) ([]int, error) {
	if n.net == nil {
		return nil, NotFittedErr
	}
	if err := checkPredict(x, n.features); err != nil {
		return nil, err
	}
	predictions := make([]int, len(x))
	for i, row := range x {
		out := n.net.Predict(xmath.Vec(n.features).With(row...))
		predictions[i] = argMax(out)
	}
	return predictions, nil
}
