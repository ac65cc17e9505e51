package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	neat "github.com/evoflux/goneat/neat"
)

func breedOptions() *neat.Options {
	return &neat.Options{
		GenomeDisableProbability:    1.0, // never re-enable on the disable roll, for a deterministic test
		GenomeConnectionProbability: 0.0,
		GenomeNodeProbability:       0.0,
		GeneWeightProbability:       0.0,
		GeneMaxWeight:               5,
		GeneMinWeight:               -5,
	}
}

func TestBreedProducesAscendingInnovationOrder(t *testing.T) {
	a := NewGenome([]Gene{NewGene(1, 1, 0, 0), NewGene(1, 2, 0, 2)}, 2, 1)
	a.RawFitness = 10
	b := NewGenome([]Gene{NewGene(1, 1, 0, 0), NewGene(1, 2, -1, 1)}, 2, 1)
	b.RawFitness = 1

	registry := NewInnovationRegistry([]NodeId{1, 2}, []NodeId{0, -1}, 0, 10, 3)
	child := a.Breed(b, registry, breedOptions())

	for k := 1; k < len(child.Genes); k++ {
		assert.Lessf(t, child.Genes[k-1].Innovation, child.Genes[k].Innovation, "expected strictly ascending innovation order, got %+v", child.Genes)
	}
}

func TestBreedKeepsExcessFromFitterParent(t *testing.T) {
	fitter := NewGenome([]Gene{NewGene(1, 1, 0, 0), NewGene(1, 2, 0, 5)}, 2, 1)
	fitter.RawFitness = 100
	weaker := NewGenome([]Gene{NewGene(1, 1, 0, 0)}, 2, 1)
	weaker.RawFitness = 1

	registry := NewInnovationRegistry([]NodeId{1, 2}, []NodeId{0, -1}, 0, 10, 3)
	child := fitter.Breed(weaker, registry, breedOptions())

	found := false
	for _, gene := range child.Genes {
		if gene.Innovation == 5 {
			found = true
		}
	}
	assert.Truef(t, found, "expected excess gene from the fitter parent to survive crossover, got %+v", child.Genes)
}

func TestBreedDropsExcessFromLessFitParent(t *testing.T) {
	weaker := NewGenome([]Gene{NewGene(1, 1, 0, 0), NewGene(1, 2, 0, 5)}, 2, 1)
	weaker.RawFitness = 1
	fitter := NewGenome([]Gene{NewGene(1, 1, 0, 0)}, 2, 1)
	fitter.RawFitness = 100

	registry := NewInnovationRegistry([]NodeId{1, 2}, []NodeId{0, -1}, 0, 10, 3)
	child := fitter.Breed(weaker, registry, breedOptions())

	for _, gene := range child.Genes {
		assert.NotEqualf(t, 5, gene.Innovation, "expected excess gene from the less fit parent to be dropped, got %+v", child.Genes)
	}
}
