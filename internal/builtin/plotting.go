package builtin

import "github.com/specialistvlad/algoprovider/internal/algorithm"

// plotting lists the algorithms that need a plotting backend.
//
// The histogram, scatterplot, polar, box and 3D scatter plots are not ported
// yet and stay out of this list until they are.
var plotting = []declaration{
	{"barplot", "Bar plot", "Graphics"},
}

// PlottingAlgorithms returns fresh instances of the algorithms that are only
// registered when a plotting backend was detected.
func PlottingAlgorithms() []algorithm.Algorithm {
	return build(plotting)
}
