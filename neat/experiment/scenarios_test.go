package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	neat "github.com/evoflux/goneat/neat"
	"github.com/evoflux/goneat/neat/genetics"
	"github.com/evoflux/goneat/neat/sim"
)

func scenarioOptions() *neat.Options {
	return &neat.Options{
		PopulationSize:              150,
		PopulationAgeLimit:          20,
		SpeciesThreshold:            3.0,
		SpeciesAgeFertilityLimit:    15,
		SpeciesNicheDivideMin:       5,
		SpeciesAsexualProbability:   0.5,
		SpeciesInterspeciesReproductionProbability: 0.05,
		SpeciesKeepChampion:         true,
		SpeciesChampionLimit:        5,
		GenomeWeightCoefficient:     0.4,
		GenomeDisjointCoefficient:   1.0,
		GenomeExcessCoefficient:     1.0,
		GenomeMinDivide:             20,
		GenomeDisableProbability:    0.75,
		GenomeNodeProbability:       0.03,
		GenomeConnectionProbability: 0.05,
		GeneWeightProbability:       0.9,
		GeneRandomProbability:       0.3,
		GeneWeightShift:             0.5,
		GeneMaxWeight:               3,
		GeneMinWeight:               -3,
		AppStartNodeDepth:           0,
		AppEndNodeDepth:             100,
	}
}

// TestXORConverges is scenario 1: a non-decreasing trend in population best
// fitness across generations, driving the XOR truth table.
func TestXORConverges(t *testing.T) {
	opts := scenarioOptions()
	opts.PopulationSize = 30

	d := NewDriver(opts, sim.NewXOR(), func(best *genetics.Genome) bool { return best.RawFitness >= 3.9 })
	require.NoError(t, d.Initialize())

	var prev float64
	for i := 0; i < 25; i++ {
		gen, err := d.Step()
		require.NoError(t, err)
		require.NotNil(t, d.Population().BestFitnessEver)
		best := *d.Population().BestFitnessEver
		if i > 0 {
			assert.GreaterOrEqualf(t, best, prev, "expected population best fitness to be non-decreasing")
		}
		prev = best
		if gen.Solved {
			break
		}
	}
}

// TestInnovationRegistryDeterminism is scenario 5: two independent genomes
// adding the same structural connection in the same generation receive
// identical innovation numbers; advancing the registry changes that.
func TestInnovationRegistryDeterminism(t *testing.T) {
	registry := genetics.NewInnovationRegistry([]genetics.NodeId{1, 2}, []genetics.NodeId{0}, 0, 10, 3)
	opts := scenarioOptions()

	a := genetics.NewGenome([]genetics.Gene{genetics.NewGene(1, 1, 0, 0)}, 2, 1)
	b := genetics.NewGenome([]genetics.Gene{genetics.NewGene(1, 1, 0, 0)}, 2, 1)

	childA := a.AddConnection(registry, opts)
	childB := b.AddConnection(registry, opts)

	innovA := childA.Genes[len(childA.Genes)-1].Innovation
	innovB := childB.Genes[len(childB.Genes)-1].Innovation
	assert.Equal(t, innovA, innovB, "expected identical innovation for the same structural event in one generation")

	registry = registry.Advance()
	c := genetics.NewGenome([]genetics.Gene{genetics.NewGene(1, 1, 0, 0)}, 2, 1)
	childC := c.AddConnection(registry, opts)
	innovC := childC.Genes[len(childC.Genes)-1].Innovation
	assert.NotEqual(t, innovA, innovC, "expected a new innovation number after Advance")
}

// TestStagnationRecoveryPreservesPopulationSize is scenario 6: forcing the
// population past its age limit triggers stagnant_recovery, which preserves
// population size. The recovered children are re-speciated by compatibility,
// so the species count afterwards is bounded only by the population size;
// recovery does not cap it at two species.
func TestStagnationRecoveryPreservesPopulationSize(t *testing.T) {
	opts := scenarioOptions()
	opts.PopulationSize = 20
	opts.PopulationAgeLimit = 1

	registry := genetics.NewInnovationRegistry([]genetics.NodeId{1, 2}, []genetics.NodeId{0}, 0, 10, 3)
	p := genetics.NewPopulation()
	for i := 0; i < opts.PopulationSize; i++ {
		g := genetics.NewGenome([]genetics.Gene{genetics.NewGene(1, 1, 0, i)}, 2, 1)
		g.RawFitness = 1.0 // constant fitness: never improves, so age keeps climbing
		p.Assign(g, opts)
	}
	for _, s := range p.Species {
		s.UpdateFitness(opts)
	}
	p.Age = opts.PopulationAgeLimit + 1

	next := p.NextGeneration(registry, opts)
	assert.Len(t, next.AllGenomes(), opts.PopulationSize, "expected population size preserved through stagnant recovery")
	assert.LessOrEqualf(t, len(next.Species), opts.PopulationSize, "expected species count bounded by the population size")
}
