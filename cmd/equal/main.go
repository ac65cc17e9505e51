// Command equal runs the 4-bit identity pass-through scenario: a genome
// solves it once its best genome's raw fitness is within 1% of the maximum
// of 1.0.
package main

import (
	"log"

	"github.com/evoflux/goneat/internal/runner"
	"github.com/evoflux/goneat/neat/genetics"
	"github.com/evoflux/goneat/neat/sim"
)

func main() {
	cfg := runner.ParseFlags("./data/equal.yml")
	onSuccess := func(best *genetics.Genome) bool { return best.RawFitness >= 0.99 }
	if err := runner.Run("equal", cfg, sim.NewIdentity(), onSuccess); err != nil {
		log.Fatal(err)
	}
}
