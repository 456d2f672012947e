package validation

import "sort"

// Grid holds the candidate values for each hyper parameter of a model.
type Grid map[string][]interface{}

// Combinations returns the number of parameter combinations a grid search has to evaluate.
func (g Grid) Combinations() int {
	com := 1
	for _, values := range g {
		com *= len(values)
	}
	return com
}

// Grids maps a model name to its hyper parameter grid.
type Grids map[string]Grid

// Combinations returns the number of combinations per model.
func (gg Grids) Combinations() map[string]int {
	cc := make(map[string]int, len(gg))
	for name, g := range gg {
		cc[name] = g.Combinations()
	}
	return cc
}

// Names returns the model names in order.
func (gg Grids) Names() []string {
	names := make([]string, 0, len(gg))
	for name := range gg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
