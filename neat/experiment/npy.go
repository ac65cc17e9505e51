package experiment

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sbinet/npyio"
)

// DumpFitnessHistory writes t's per-generation best-fitness trace to path as
// a .npy file, so external tooling (numpy, matplotlib) can plot the
// convergence curve without the core depending on any plotting library
// itself.
func DumpFitnessHistory(t *Trial, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create fitness history file")
	}
	defer f.Close()

	if err := npyio.Write(f, []float64(t.BestFitness())); err != nil {
		return errors.Wrap(err, "failed to write fitness history")
	}
	return nil
}
