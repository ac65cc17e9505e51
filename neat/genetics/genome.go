package genetics

import (
	"sort"

	"github.com/pkg/errors"
)

// Genome is an ordered gene list plus the bookkeeping an evolutionary run
// needs around it: fixed input/output sizes and a fitness value valid only
// after evaluation in the current generation. The genetic operators (Breed,
// AddNode, AddConnection) never mutate the receiver in place; AddNode and
// AddConnection return the receiver itself when they have nothing to add.
// SortGenes and Run do modify the receiver.
type Genome struct {
	Genes      []Gene
	InputSize  int
	OutputSize int
	RawFitness float64
}

// NewGenome builds a genome from an already innovation-sorted gene list. It
// does not validate ordering itself; callers that assemble genes out of band
// (tests, the initial population template) should call SortGenes first.
func NewGenome(genes []Gene, inputSize, outputSize int) *Genome {
	return &Genome{Genes: genes, InputSize: inputSize, OutputSize: outputSize}
}

// InputIDs returns the fixed input node ids 1..InputSize.
func (g *Genome) InputIDs() []NodeId {
	ids := make([]NodeId, g.InputSize)
	for i := 0; i < g.InputSize; i++ {
		ids[i] = NodeId(i + 1)
	}
	return ids
}

// OutputIDs returns the fixed output node ids 0, -1, ..., -(OutputSize-1).
func (g *Genome) OutputIDs() []NodeId {
	ids := make([]NodeId, g.OutputSize)
	for i := 0; i < g.OutputSize; i++ {
		ids[i] = NodeId(-i)
	}
	return ids
}

// SortGenes restores ascending-innovation order, the invariant every operator
// that produces a genome must preserve.
func (g *Genome) SortGenes() {
	sort.Slice(g.Genes, func(i, j int) bool { return g.Genes[i].Innovation < g.Genes[j].Innovation })
}

// Copy returns a deep copy of g: a fresh gene slice with every field
// preserved. The phenotype, being derived, is not copied -- it is rebuilt by
// the network package whenever it is next requested.
func (g *Genome) Copy() *Genome {
	genes := make([]Gene, len(g.Genes))
	copy(genes, g.Genes)
	return &Genome{
		Genes:      genes,
		InputSize:  g.InputSize,
		OutputSize: g.OutputSize,
		RawFitness: g.RawFitness,
	}
}

// Run drives genome against simulation as agentID, storing the resulting
// scalar fitness in RawFitness. The caller supplies the function that turns a
// genome into a callable network (ordinarily network.BuildPhenotype followed
// by Phenotype.Activate) so genetics stays independent of the network
// package's representation.
func (g *Genome) Run(sim Simulation, agentID int, activate func(inputs []float64) ([]float64, error)) error {
	sim.Restart()
	for {
		state := sim.GetState(agentID)
		if state == Finished {
			break
		}
		data := sim.GetData(agentID)
		controls, err := activate(data)
		if err != nil {
			return errors.Wrap(err, "genome evaluation: network activation failed")
		}
		sim.ApplyControls(controls, agentID)
	}
	g.RawFitness = sim.GetScore(agentID)
	return nil
}

// byFitnessDescending sorts genomes from highest to lowest RawFitness, the
// order Species.reproduce and stagnant_recovery both need.
func byFitnessDescending(genomes []*Genome) {
	sort.Slice(genomes, func(i, j int) bool { return genomes[i].RawFitness > genomes[j].RawFitness })
}
