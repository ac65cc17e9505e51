package genetics

import (
	"math/rand"

	neat "github.com/evoflux/goneat/neat"
)

// Species is a compatibility cluster: a set of genomes judged mutually
// similar by Genome.Compare against a representative snapshot, together with
// the age and stagnation bookkeeping fitness sharing needs. A species is
// created the moment a genome finds no existing compatible one, and is
// destroyed when it receives zero reproductive budget or is folded into
// Population's stagnant_recovery.
type Species struct {
	Representative  *Genome
	Members         []*Genome
	Age             int
	BestFitnessEver *float64
	SharedFitness   float64
}

// NewSpecies seeds a species from its founding genome, which also becomes the
// first representative.
func NewSpecies(founder *Genome) *Species {
	return &Species{Representative: founder, Members: []*Genome{founder}}
}

// Compatible reports whether genome is within the species' compatibility
// threshold of the current representative.
func (s *Species) Compatible(genome *Genome, opts *neat.Options) bool {
	return genome.Compare(s.Representative, opts) < opts.SpeciesThreshold
}

// Add appends genome to the species if it is compatible, reporting whether it did.
func (s *Species) Add(genome *Genome, opts *neat.Options) bool {
	if !s.Compatible(genome, opts) {
		return false
	}
	s.Members = append(s.Members, genome)
	return true
}

// Advance ends the generation for this species: a uniformly random member is
// snapshotted as the next representative, the member list is dropped (it is
// refilled by Population.assign in the next generation), and age increments.
// BestFitnessEver survives untouched.
func (s *Species) Advance() {
	if len(s.Members) > 0 {
		s.Representative = s.Members[rand.Intn(len(s.Members))]
	}
	s.Members = nil
	s.Age++
}

// UpdateFitness recomputes SharedFitness from the current member roster and
// updates BestFitnessEver/Age if a new best was reached this generation.
func (s *Species) UpdateFitness(opts *neat.Options) {
	if len(s.Members) == 0 {
		s.SharedFitness = 0
		return
	}
	best := s.Members[0].RawFitness
	sum := 0.0
	for _, m := range s.Members {
		sum += m.RawFitness
		if m.RawFitness > best {
			best = m.RawFitness
		}
	}
	if len(s.Members) > opts.SpeciesNicheDivideMin {
		s.SharedFitness = sum / float64(len(s.Members))
	} else {
		s.SharedFitness = sum
	}
	if s.BestFitnessEver == nil || best > *s.BestFitnessEver {
		s.BestFitnessEver = &best
		s.Age = 0
	}
}

// Fertile reports whether this species is still young enough to reproduce.
func (s *Species) Fertile(opts *neat.Options) bool {
	return s.Age < opts.SpeciesAgeFertilityLimit
}

// Reproduce fills quota children from this species' members (and, for
// inter-species crossover, from allFertileGenomes), by the rules in
// Species.reproduce: truncate to the fittest quota members if the species is
// larger than its quota, breed asexually, within-species, or inter-species
// according to the configured probabilities, and optionally append an
// unmodified copy of the species champion.
func (s *Species) Reproduce(quota int, allFertileGenomes []*Genome, registry *InnovationRegistry, opts *neat.Options) []*Genome {
	if quota <= 0 {
		return nil
	}

	members := s.Members
	if len(members) > quota {
		members = append([]*Genome{}, members...)
		byFitnessDescending(members)
		members = members[:quota]
	}
	n := len(members)
	if n == 0 {
		return nil
	}

	keepChampion := opts.SpeciesKeepChampion && opts.SpeciesChampionLimit < len(s.Members)
	bred := quota
	if keepChampion {
		bred--
	}

	children := make([]*Genome, 0, quota)
	for i := 0; i < bred; i++ {
		parent := members[i%n]
		var child *Genome
		switch {
		case rand.Float64() < opts.SpeciesAsexualProbability:
			neat.DebugLog("species: asexual reproduction")
			child = parent.Breed(parent, registry, opts)
		case rand.Float64() < opts.SpeciesInterspeciesReproductionProbability && len(allFertileGenomes) > 0:
			neat.DebugLog("species: interspecies reproduction")
			father := allFertileGenomes[rand.Intn(len(allFertileGenomes))]
			child = parent.Breed(father, registry, opts)
		default:
			neat.DebugLog("species: within-species reproduction")
			father := members[rand.Intn(n)]
			child = parent.Breed(father, registry, opts)
		}
		children = append(children, child)
	}

	if keepChampion {
		champion := append([]*Genome{}, s.Members...)
		byFitnessDescending(champion)
		children = append(children, champion[0].Copy())
	}
	return children
}
