// Command xor runs the two-input XOR scenario: a genome solves it once its
// best genome's raw fitness reaches 3.9 out of the maximum 4.0.
package main

import (
	"log"

	"github.com/evoflux/goneat/internal/runner"
	"github.com/evoflux/goneat/neat/genetics"
	"github.com/evoflux/goneat/neat/sim"
)

func main() {
	cfg := runner.ParseFlags("./data/xor.yml")
	onSuccess := func(best *genetics.Genome) bool { return best.RawFitness >= 3.9 }
	if err := runner.Run("xor", cfg, sim.NewXOR(), onSuccess); err != nil {
		log.Fatal(err)
	}
}
