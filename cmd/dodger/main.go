// Command dodger runs the obstacle-dodging grid-world scenario: a genome
// solves it once its best genome survives the full episode.
package main

import (
	"log"

	"github.com/evoflux/goneat/internal/runner"
	"github.com/evoflux/goneat/neat/genetics"
	"github.com/evoflux/goneat/neat/sim"
)

func main() {
	cfg := runner.ParseFlags("./data/dodger.yml")
	env := sim.NewDodger()
	onSuccess := func(best *genetics.Genome) bool { return best.RawFitness >= float64(env.MaxSteps) }
	if err := runner.Run("dodger", cfg, env, onSuccess); err != nil {
		log.Fatal(err)
	}
}
