// Package math collects the small numeric helpers shared by the genetics and
// network packages: the activation function applied at every phenotype node,
// and the random-sign helper used by weight mutation.
package math

import "math"

// SteepenedSigmoid is the activation function applied to every hidden and
// output node during phenotype evaluation (spec.md 4.3). It squashes to
// (0, 1) with a steeper slope around zero than a plain logistic sigmoid,
// which is what lets small weight changes move a network's output
// appreciably -- the property NEAT's incremental mutations rely on.
func SteepenedSigmoid(input float64) float64 {
	return 1.0 / (1.0 + math.Exp(-4.924273*input))
}
