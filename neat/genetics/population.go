package genetics

import (
	"math/rand"
	"sort"

	neat "github.com/evoflux/goneat/neat"
)

// Activator turns a genome into a callable network. Population and Genome
// both depend on this rather than on the network package directly, so
// genetics stays independent of the phenotype representation; the
// experiment driver supplies the real implementation (network.BuildPhenotype
// followed by Phenotype.Activate).
type Activator func(genome *Genome) (func(inputs []float64) ([]float64, error), error)

// Population is the top-level evolutionary container: the set of all
// species, with age and best-ever-fitness tracking at the population level.
type Population struct {
	Species         []*Species
	Age             int
	BestFitnessEver *float64
}

// NewPopulation builds an empty population ready to receive genomes via Assign.
func NewPopulation() *Population {
	return &Population{}
}

// Assign scans species in order and adds genome to the first compatible one,
// creating a new species if none matches.
func (p *Population) Assign(genome *Genome, opts *neat.Options) {
	for _, s := range p.Species {
		if s.Add(genome, opts) {
			return
		}
	}
	p.Species = append(p.Species, NewSpecies(genome))
}

// AllGenomes flattens every species' members into one sequence.
func (p *Population) AllGenomes() []*Genome {
	var all []*Genome
	for _, s := range p.Species {
		all = append(all, s.Members...)
	}
	return all
}

// Evaluate scores every genome against sim. batchSize <= 0 drives the
// simulation one organism at a time; batchSize > 0 flattens species members
// into contiguous windows of at most batchSize agents and drives the whole
// window in lockstep, padding any short final window with zero controls.
// Either way, species fitness is recomputed once every member has a score,
// followed by the population-level best.
func (p *Population) Evaluate(sim Simulation, activate Activator, batchSize int, opts *neat.Options) error {
	if batchSize > 0 {
		if err := p.evaluateBatched(sim, activate, batchSize); err != nil {
			return err
		}
	} else {
		if err := p.evaluateUnbatched(sim, activate); err != nil {
			return err
		}
	}

	for _, s := range p.Species {
		s.UpdateFitness(opts)
	}
	p.updateBestFitness()
	return nil
}

func (p *Population) evaluateUnbatched(sim Simulation, activate Activator) error {
	for _, s := range p.Species {
		for i, genome := range s.Members {
			network, err := activate(genome)
			if err != nil {
				return err
			}
			if err := genome.Run(sim, i, network); err != nil {
				return err
			}
		}
	}
	return nil
}

// evaluateBatched drives the simulation's batch operations over contiguous
// windows of up to batchSize genomes at a time, per the Simulation contract:
// every window advances in lockstep until all agents in it report FINISHED,
// with any slots past the window's real population padded by zero controls.
func (p *Population) evaluateBatched(sim Simulation, activate Activator, batchSize int) error {
	all := p.AllGenomes()
	controlsSize := sim.ControlsSize()

	for start := 0; start < len(all); start += batchSize {
		end := start + batchSize
		if end > len(all) {
			end = len(all)
		}
		window := all[start:end]

		networks := make([]func([]float64) ([]float64, error), len(window))
		for i, genome := range window {
			network, err := activate(genome)
			if err != nil {
				return err
			}
			networks[i] = network
		}

		sim.Restart()
		for {
			states := sim.GetStateBatch(len(window))
			if allFinished(states, len(window)) {
				break
			}
			data := sim.GetDataBatch(len(window))
			controls := make([][]float64, batchSize)
			for i := 0; i < batchSize; i++ {
				if i < len(window) && states[i] != Finished {
					out, err := networks[i](data[i])
					if err != nil {
						return err
					}
					controls[i] = out
				} else {
					controls[i] = make([]float64, controlsSize)
				}
			}
			sim.ApplyControlsBatch(controls)
		}

		scores := sim.GetScoreBatch(len(window))
		for i, genome := range window {
			genome.RawFitness = scores[i]
		}
	}
	return nil
}

func allFinished(states []AgentState, n int) bool {
	for i := 0; i < n && i < len(states); i++ {
		if states[i] != Finished {
			return false
		}
	}
	return true
}

func (p *Population) updateBestFitness() {
	for _, s := range p.Species {
		if s.BestFitnessEver == nil {
			continue
		}
		if p.BestFitnessEver == nil || *s.BestFitnessEver > *p.BestFitnessEver {
			best := *s.BestFitnessEver
			p.BestFitnessEver = &best
			p.Age = 0
		}
	}
}

// NextGeneration produces the population for the next generation: either the
// stagnation-recovery pool, if this population has aged past its limit, or
// the ordinary fitness-proportional reproduction path.
func (p *Population) NextGeneration(registry *InnovationRegistry, opts *neat.Options) *Population {
	if opts.PopulationAgeLimit > 0 && p.Age > opts.PopulationAgeLimit {
		return p.stagnantRecovery(registry, opts)
	}

	var fertile []*Species
	for _, s := range p.Species {
		if s.Fertile(opts) {
			fertile = append(fertile, s)
		}
	}
	if len(fertile) == 0 {
		return p.stagnantRecovery(registry, opts)
	}

	allFertileGenomes := fertileGenomes(fertile)
	quotas := allocateQuotas(fertile, opts.PopulationSize)

	// Reproduce before advancing: Advance drops each species' member list.
	var children []*Genome
	for i, s := range fertile {
		children = append(children, s.Reproduce(quotas[i], allFertileGenomes, registry, opts)...)
	}

	next := NewPopulation()
	for _, s := range p.Species {
		s.Advance()
		next.Species = append(next.Species, s)
	}
	for _, child := range children {
		next.Assign(child, opts)
	}
	next.Age = p.Age + 1
	next.BestFitnessEver = p.BestFitnessEver
	purgeEmpty(next)
	return next
}

func fertileGenomes(species []*Species) []*Genome {
	var all []*Genome
	for _, s := range species {
		all = append(all, s.Members...)
	}
	return all
}

// allocateQuotas distributes populationSize children across species
// proportional to their shared fitness, using a largest-remainder rule so
// the integer quotas sum exactly to populationSize even though the real-valued
// shares rarely divide evenly.
func allocateQuotas(species []*Species, populationSize int) []int {
	total := 0.0
	for _, s := range species {
		total += s.SharedFitness
	}

	quotas := make([]int, len(species))
	if total <= 0 {
		// No fertile species carries any shared fitness; split the budget evenly.
		base := populationSize / len(species)
		for i := range quotas {
			quotas[i] = base
		}
		quotas[0] += populationSize - base*len(species)
		return quotas
	}

	type share struct {
		index     int
		remainder float64
	}
	shares := make([]share, len(species))
	assigned := 0
	for i, s := range species {
		raw := s.SharedFitness * float64(populationSize) / total
		whole := int(raw)
		quotas[i] = whole
		assigned += whole
		shares[i] = share{index: i, remainder: raw - float64(whole)}
	}

	sort.Slice(shares, func(i, j int) bool { return shares[i].remainder > shares[j].remainder })
	for k := 0; k < populationSize-assigned; k++ {
		quotas[shares[k%len(shares)].index]++
	}
	return quotas
}

// stagnantRecovery rebuilds the population from the two least-fit species
// when every species (or the population as a whole) has failed to improve
// within its age limit: the two species with the lowest shared fitness are
// combined into one breeding pool, from which populationSize children are
// drawn.
func (p *Population) stagnantRecovery(registry *InnovationRegistry, opts *neat.Options) *Population {
	ranked := append([]*Species{}, p.Species...)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].SharedFitness < ranked[j].SharedFitness })

	var combined []*Genome
	for i := 0; i < len(ranked) && i < 2; i++ {
		combined = append(combined, ranked[i].Members...)
	}
	byFitnessDescending(combined)

	next := NewPopulation()
	if len(combined) > 0 {
		for i := 0; i < opts.PopulationSize; i++ {
			father := combined[i%len(combined)]
			mother := combined[rand.Intn(len(combined))]
			child := father.Breed(mother, registry, opts)
			next.Assign(child, opts)
		}
	}

	next.Age = p.Age + 1
	next.BestFitnessEver = p.BestFitnessEver
	return next
}

func purgeEmpty(p *Population) {
	kept := p.Species[:0]
	for _, s := range p.Species {
		if len(s.Members) > 0 {
			kept = append(kept, s)
		}
	}
	p.Species = kept
}
