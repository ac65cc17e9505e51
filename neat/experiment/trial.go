package experiment

import (
	"sort"
	"time"

	"github.com/evoflux/goneat/neat/genetics"
)

// Trial holds the full generation-by-generation history of one run, letting
// callers inspect the convergence trend rather than only the final
// generation's result.
type Trial struct {
	// Generations holds every generation evaluated in this trial, in order.
	Generations []Generation
	// Duration is the sum of the generations' Durations.
	Duration time.Duration
}

// BestFitness returns the best genome's raw fitness for each generation, in
// order -- the convergence trace DumpFitnessHistory writes. The series can
// decrease: a generation's best genome is not always carried unchanged into
// the next generation.
func (t *Trial) BestFitness() Floats {
	x := make(Floats, len(t.Generations))
	for i, g := range t.Generations {
		if g.Best != nil {
			x[i] = g.Best.RawFitness
		}
	}
	return x
}

// Solved reports whether any generation in this trial met the success criterion.
func (t *Trial) Solved() bool {
	for _, g := range t.Generations {
		if g.Solved {
			return true
		}
	}
	return false
}

// BestGenome returns the fittest genome across every generation in the
// trial, optionally restricted to generations that solved the task.
func (t *Trial) BestGenome(onlySolved bool) (*genetics.Genome, bool) {
	var candidates []*genetics.Genome
	for _, g := range t.Generations {
		if g.Best == nil {
			continue
		}
		if onlySolved && !g.Solved {
			continue
		}
		candidates = append(candidates, g.Best)
	}
	if len(candidates) == 0 {
		return nil, false
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].RawFitness > candidates[j].RawFitness })
	return candidates[0], true
}

// AverageGenerationDuration returns the mean evaluation duration across every
// generation in the trial.
func (t *Trial) AverageGenerationDuration() time.Duration {
	if len(t.Generations) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range t.Generations {
		total += g.Duration
	}
	return total / time.Duration(len(t.Generations))
}
