package experiment

import (
	"math"
	"time"

	"github.com/evoflux/goneat/neat/genetics"
)

// Generation records one generation's evaluation: the best genome found,
// whether the run's success criterion was met, and descriptive statistics
// across every species in the population at that point.
type Generation struct {
	// ID is the generation number within its trial, counting from zero.
	ID int
	// Executed is the wall-clock time the generation finished evaluating.
	Executed time.Time
	// Duration is the elapsed time spent evaluating this generation; reproduction is not included.
	Duration time.Duration

	// Best is the fittest genome across every species this generation.
	Best *genetics.Genome
	// Solved reports whether the caller's success criterion was met this generation.
	Solved bool

	// Fitness, Age, and Complexity hold one sample per species: its best
	// member's raw fitness, the species' age, and its best member's gene count.
	Fitness    Floats
	Age        Floats
	Complexity Floats

	// Diversity is the number of species present at the end of this generation.
	Diversity int
}

// Fill summarizes pop into g: one best-of-species sample each for fitness,
// age, and complexity, plus the population-wide best genome when the run is
// not already solved.
func (g *Generation) Fill(pop *genetics.Population) {
	g.Diversity = len(pop.Species)
	g.Fitness = make(Floats, g.Diversity)
	g.Age = make(Floats, g.Diversity)
	g.Complexity = make(Floats, g.Diversity)

	best := math.Inf(-1)
	for i, s := range pop.Species {
		if len(s.Members) == 0 {
			continue
		}
		top := s.Members[0]
		for _, m := range s.Members {
			if m.RawFitness > top.RawFitness {
				top = m
			}
		}
		g.Age[i] = float64(s.Age)
		g.Complexity[i] = float64(len(top.Genes))
		g.Fitness[i] = top.RawFitness

		if !g.Solved && top.RawFitness > best {
			best = top.RawFitness
			g.Best = top
		}
	}
}

// Average returns the mean fitness, age, and complexity across species this generation.
func (g *Generation) Average() (fitness, age, complexity float64) {
	return g.Fitness.Mean(), g.Age.Mean(), g.Complexity.Mean()
}
