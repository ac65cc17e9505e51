package genetics

import (
	"math/rand"

	neat "github.com/evoflux/goneat/neat"
)

// Breed crosses g (self) with other, walking both gene lists in innovation
// order. Matching genes copy one parent's weight at random; a gene disjoint
// or in excess on one side is carried only if that side's RawFitness is
// greater than or equal to the other side's. Every resulting gene then goes
// through Gene.Mutate, and the child has a chance to gain a new connection
// or hidden node.
func (g *Genome) Breed(other *Genome, registry *InnovationRegistry, opts *neat.Options) *Genome {
	var childGenes []Gene
	i, j := 0, 0
	for i < len(g.Genes) || j < len(other.Genes) {
		switch {
		case i < len(g.Genes) && j < len(other.Genes) && g.Genes[i].Innovation == other.Genes[j].Innovation:
			a, b := g.Genes[i], other.Genes[j]
			child := a
			if rand.Float64() < 0.5 {
				child = b
			}
			child.Enabled = (a.Enabled || b.Enabled) || rand.Float64() >= opts.GenomeDisableProbability
			childGenes = append(childGenes, child)
			i++
			j++
		case j >= len(other.Genes) || (i < len(g.Genes) && g.Genes[i].Innovation < other.Genes[j].Innovation):
			if g.RawFitness >= other.RawFitness {
				gene := g.Genes[i]
				gene.Enabled = gene.Enabled || rand.Float64() >= opts.GenomeDisableProbability
				childGenes = append(childGenes, gene)
			}
			i++
		default:
			if other.RawFitness >= g.RawFitness {
				gene := other.Genes[j]
				gene.Enabled = gene.Enabled || rand.Float64() >= opts.GenomeDisableProbability
				childGenes = append(childGenes, gene)
			}
			j++
		}
	}

	for k, gene := range childGenes {
		childGenes[k] = gene.Mutate(opts)
	}

	child := NewGenome(childGenes, g.InputSize, g.OutputSize)
	child.SortGenes()

	if rand.Float64() < opts.GenomeConnectionProbability {
		child = child.AddConnection(registry, opts)
	}
	if rand.Float64() < opts.GenomeNodeProbability {
		child = child.AddNode(registry)
	}
	return child
}
