package genetics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	neat "github.com/evoflux/goneat/neat"
)

func speciesOptions() *neat.Options {
	return &neat.Options{
		SpeciesThreshold:          3.0,
		SpeciesNicheDivideMin:     1,
		SpeciesAgeFertilityLimit:  15,
		SpeciesAsexualProbability: 1.0,
		GenomeWeightCoefficient:   1.0,
		GenomeDisjointCoefficient: 1.0,
		GenomeExcessCoefficient:   1.0,
		GenomeMinDivide:           20,
		GeneMaxWeight:             5,
		GeneMinWeight:             -5,
	}
}

func TestSpeciesCompatibleAndAdd(t *testing.T) {
	founder := NewGenome([]Gene{NewGene(1, 1, 0, 0)}, 2, 1)
	s := NewSpecies(founder)
	opts := speciesOptions()

	similar := NewGenome([]Gene{NewGene(1, 1, 0, 0)}, 2, 1)
	require.True(t, s.Add(similar, opts), "expected an identical genome to be compatible and added")
	assert.Len(t, s.Members, 2)

	opts.SpeciesThreshold = 0
	distant := NewGenome([]Gene{NewGene(1, 1, 0, 99)}, 2, 1)
	assert.False(t, s.Add(distant, opts), "expected a distant genome to be rejected under a zero threshold")
}

func TestSpeciesUpdateFitnessTracksBestAndResetsAge(t *testing.T) {
	a := NewGenome(nil, 2, 1)
	a.RawFitness = 1
	b := NewGenome(nil, 2, 1)
	b.RawFitness = 5

	s := NewSpecies(a)
	s.Members = []*Genome{a, b}
	s.Age = 7
	opts := speciesOptions()

	s.UpdateFitness(opts)
	require.NotNil(t, s.BestFitnessEver)
	assert.Equal(t, 5.0, *s.BestFitnessEver)
	assert.Equal(t, 0, s.Age)
}

func TestSpeciesReproduceProducesExactQuota(t *testing.T) {
	opts := speciesOptions()
	registry := NewInnovationRegistry([]NodeId{1, 2}, []NodeId{0}, 0, 10, 3)

	a := NewGenome([]Gene{NewGene(1, 1, 0, 0)}, 2, 1)
	a.RawFitness = 3
	b := NewGenome([]Gene{NewGene(1, 2, 0, 1)}, 2, 1)
	b.RawFitness = 1

	s := NewSpecies(a)
	s.Members = []*Genome{a, b}

	children := s.Reproduce(5, []*Genome{a, b}, registry, opts)
	assert.Len(t, children, 5)
}

func TestSpeciesAdvanceResetsMembersAndIncrementsAge(t *testing.T) {
	a := NewGenome(nil, 2, 1)
	s := NewSpecies(a)
	s.Members = []*Genome{a, NewGenome(nil, 2, 1)}

	s.Advance()
	assert.Empty(t, s.Members)
	assert.Equal(t, 1, s.Age)
}
