package genetics

import (
	"math/rand"

	neat "github.com/evoflux/goneat/neat"
	neatmath "github.com/evoflux/goneat/neat/math"
)

// Gene is a single connection record: an edge from InNode to OutNode carrying
// a weight, stabilized across descendants by Innovation. A genome never
// contains two genes sharing an innovation number, and genes within a genome
// are always kept in ascending innovation order.
type Gene struct {
	Weight     float64
	InNode     NodeId
	OutNode    NodeId
	Innovation int
	Enabled    bool
}

// NewGene builds a gene with the given structure and weight, enabled by default.
func NewGene(weight float64, in, out NodeId, innovation int) Gene {
	return Gene{Weight: weight, InNode: in, OutNode: out, Innovation: innovation, Enabled: true}
}

// StructureKey returns this gene's structural identity, independent of weight,
// innovation, or enabled state.
func (g Gene) StructureKey() StructureKey {
	return NewStructureKey(g.InNode, g.OutNode)
}

// Copy returns a bit-for-bit duplicate of g. Since Gene holds no pointers,
// plain value assignment already satisfies this; Copy exists so call sites
// read as an explicit operation rather than an implicit one.
func (g Gene) Copy() Gene {
	return g
}

// Mutate returns a new gene with a possibly perturbed weight. Structure --
// InNode, OutNode, Innovation, Enabled -- is never touched by Mutate.
//
// With probability opts.GeneWeightProbability a perturbation fires at all;
// within that branch, with probability opts.GeneRandomProbability the weight
// is replaced by a fresh uniform draw from [GeneMinWeight, GeneMaxWeight],
// otherwise it is jittered by a uniform draw from [-GeneWeightShift,
// +GeneWeightShift]. The result is always clamped to [GeneMinWeight, GeneMaxWeight].
func (g Gene) Mutate(opts *neat.Options) Gene {
	child := g.Copy()
	if rand.Float64() >= opts.GeneWeightProbability {
		return child
	}
	if rand.Float64() < opts.GeneRandomProbability {
		child.Weight = opts.GeneMinWeight + rand.Float64()*(opts.GeneMaxWeight-opts.GeneMinWeight)
	} else {
		shift := float64(neatmath.RandSign()) * rand.Float64() * opts.GeneWeightShift
		child.Weight += shift
	}
	child.Weight = clampWeight(child.Weight, opts)
	return child
}

func clampWeight(w float64, opts *neat.Options) float64 {
	if w > opts.GeneMaxWeight {
		return opts.GeneMaxWeight
	}
	if w < opts.GeneMinWeight {
		return opts.GeneMinWeight
	}
	return w
}
