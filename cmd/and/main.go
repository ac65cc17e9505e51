// Command and runs the two-input AND scenario.
package main

import (
	"log"

	"github.com/evoflux/goneat/internal/runner"
	"github.com/evoflux/goneat/neat/genetics"
	"github.com/evoflux/goneat/neat/sim"
)

func main() {
	cfg := runner.ParseFlags("./data/and.yml")
	onSuccess := func(best *genetics.Genome) bool { return best.RawFitness >= 3.9 }
	if err := runner.Run("and", cfg, sim.NewAND(), onSuccess); err != nil {
		log.Fatal(err)
	}
}
