package experiment

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	neat "github.com/evoflux/goneat/neat"
	"github.com/evoflux/goneat/neat/genetics"
	"github.com/evoflux/goneat/neat/network"
)

// SuccessFunc judges whether a generation's best genome counts as solving
// the task; Driver.Run stops early (within the step loop) once it fires.
type SuccessFunc func(best *genetics.Genome) bool

// Driver sequences Population evaluation and reproduction: initialize builds
// the starting population and registry from a Simulation's declared input
// and output sizes, then each Step evaluates, records, reproduces, and
// advances the registry.
type Driver struct {
	opts      *neat.Options
	sim       genetics.Simulation
	registry  *genetics.InnovationRegistry
	pop       *genetics.Population
	onSuccess SuccessFunc

	Trial Trial
}

// NewDriver builds a driver for opts and sim. onSuccess may be nil, in which
// case no generation is ever marked Solved.
func NewDriver(opts *neat.Options, sim genetics.Simulation, onSuccess SuccessFunc) *Driver {
	return &Driver{opts: opts, sim: sim, onSuccess: onSuccess}
}

// Initialize builds the first generation's registry and population: a
// template fully-connected input-to-output gene set, cloned population_size
// times with re-randomized weights, each clone assigned to a species. Every
// input gets depth app_start_node_depth and every output gets depth
// app_end_node_depth, so the registry can answer DepthOf for them from the start.
func (d *Driver) Initialize() error {
	inputSize := d.sim.DataSize()
	outputSize := d.sim.ControlsSize()

	inputIDs := make([]genetics.NodeId, inputSize)
	for i := range inputIDs {
		inputIDs[i] = genetics.NodeId(i + 1)
	}
	outputIDs := make([]genetics.NodeId, outputSize)
	for i := range outputIDs {
		outputIDs[i] = genetics.NodeId(-i)
	}

	d.registry = genetics.NewInnovationRegistry(inputIDs, outputIDs, d.opts.AppStartNodeDepth, d.opts.AppEndNodeDepth, genetics.NodeId(inputSize+1))

	var template []genetics.Gene
	for _, in := range inputIDs {
		for _, out := range outputIDs {
			innov := d.registry.InnovationFor(genetics.NewStructureKey(in, out))
			template = append(template, genetics.NewGene(0, in, out, innov))
		}
	}

	d.pop = genetics.NewPopulation()
	for i := 0; i < d.opts.PopulationSize; i++ {
		genes := make([]genetics.Gene, len(template))
		for j, gene := range template {
			gene.Weight = d.opts.GeneMinWeight + rand.Float64()*(d.opts.GeneMaxWeight-d.opts.GeneMinWeight)
			genes[j] = gene
		}
		genome := genetics.NewGenome(genes, inputSize, outputSize)
		d.pop.Assign(genome, d.opts)
	}

	d.registry = d.registry.Advance()
	return nil
}

// activator turns a genome into a callable network via the dense phenotype builder.
func (d *Driver) activator(genome *genetics.Genome) (func([]float64) ([]float64, error), error) {
	phenotype, err := network.BuildPhenotype(genome, d.registry)
	if err != nil {
		return nil, errors.Wrap(err, "driver: failed to build phenotype")
	}
	return phenotype.Activate, nil
}

// Step runs one generation: restart the simulation, evaluate the population,
// record a Generation, reproduce the next population, and advance the
// registry's per-generation caches.
func (d *Driver) Step() (*Generation, error) {
	start := time.Now()

	d.sim.Restart()
	if err := d.pop.Evaluate(d.sim, d.activator, d.opts.BatchSize, d.opts); err != nil {
		return nil, errors.Wrap(err, "driver: population evaluation failed")
	}

	gen := Generation{
		ID:       len(d.Trial.Generations),
		Executed: time.Now(),
	}
	gen.Fill(d.pop)
	if gen.Best != nil && d.onSuccess != nil {
		gen.Solved = d.onSuccess(gen.Best)
	}
	gen.Duration = time.Since(start)
	d.Trial.Generations = append(d.Trial.Generations, gen)
	d.Trial.Duration += gen.Duration

	d.pop = d.pop.NextGeneration(d.registry, d.opts)
	d.registry = d.registry.Advance()

	return &gen, nil
}

// Run repeats Step until nSteps generations have executed or a generation is
// marked Solved, whichever comes first.
func (d *Driver) Run(nSteps int) error {
	for i := 0; i < nSteps; i++ {
		gen, err := d.Step()
		if err != nil {
			return err
		}
		if gen.Solved {
			break
		}
	}
	return nil
}

// Population exposes the current population, mainly for tests and CLI reporting.
func (d *Driver) Population() *genetics.Population {
	return d.pop
}
