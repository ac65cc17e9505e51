// Package runner holds the flag parsing and experiment bootstrap shared by
// the cmd/ entry points: load options, build a driver around a scenario
// Simulation, run it, and report the outcome the way the teacher's
// executor.go does for its own experiment runner.
package runner

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	neat "github.com/evoflux/goneat/neat"
	"github.com/evoflux/goneat/neat/experiment"
	"github.com/evoflux/goneat/neat/genetics"
)

// Config is the parsed command line for a single scenario binary.
type Config struct {
	ContextPath string
	OutDirPath  string
	Generations int
	LogLevel    string
}

// ParseFlags registers the standard scenario flags and parses os.Args.
// defaultContextPath points at the scenario's own bundled config file.
func ParseFlags(defaultContextPath string) *Config {
	c := &Config{}
	flag.StringVar(&c.ContextPath, "context", defaultContextPath, "The NEAT options configuration file.")
	flag.StringVar(&c.OutDirPath, "out", "./out", "The output directory for fitness history.")
	flag.IntVar(&c.Generations, "generations", 100, "The maximum number of generations to run.")
	flag.StringVar(&c.LogLevel, "log_level", "", "Overrides the log level set in the configuration file.")
	flag.Parse()
	return c
}

// Run loads options from cfg.ContextPath, seeds the random source, drives up
// to cfg.Generations generations of sim through a fresh Driver (stopping
// early once onSuccess reports a solved generation), and dumps the fitness
// history as a .npy file under cfg.OutDirPath. name identifies the scenario
// in log output and in the dumped file name.
func Run(name string, cfg *Config, sim genetics.Simulation, onSuccess experiment.SuccessFunc) error {
	rand.Seed(time.Now().UnixNano())

	opts, err := neat.ReadOptionsFromFile(cfg.ContextPath)
	if err != nil {
		return fmt.Errorf("%s: failed to load options: %w", name, err)
	}
	if cfg.LogLevel != "" {
		if err := neat.InitLogger(cfg.LogLevel); err != nil {
			return fmt.Errorf("%s: failed to override log level: %w", name, err)
		}
	}

	// Options travel through a context.Context from here on, the way the
	// teacher's own NeatContext does, so a future caller embedding this
	// runner in a server loop can carry them alongside request-scoped
	// cancellation instead of passing *neat.Options positionally.
	ctx := neat.NewContext(context.Background(), opts)
	opts, ok := neat.FromContext(ctx)
	if !ok {
		return fmt.Errorf("%s: options missing from context", name)
	}

	if err := os.MkdirAll(cfg.OutDirPath, 0o755); err != nil {
		return fmt.Errorf("%s: failed to create output directory: %w", name, err)
	}

	driver := experiment.NewDriver(opts, sim, onSuccess)
	if err := driver.Initialize(); err != nil {
		return fmt.Errorf("%s: failed to initialize population: %w", name, err)
	}

	log.Printf("%s: running up to %d generations against %s\n", name, cfg.Generations, cfg.ContextPath)
	if err := driver.Run(cfg.Generations); err != nil {
		return fmt.Errorf("%s: run failed: %w", name, err)
	}

	if best, ok := driver.Trial.BestGenome(true); ok {
		log.Printf("%s: solved in %d generations, best fitness %v\n", name, len(driver.Trial.Generations), best.RawFitness)
	} else {
		log.Printf("%s: did not solve within %d generations\n", name, len(driver.Trial.Generations))
	}

	historyPath := fmt.Sprintf("%s/%s-fitness.npy", cfg.OutDirPath, name)
	if err := experiment.DumpFitnessHistory(&driver.Trial, historyPath); err != nil {
		return fmt.Errorf("%s: failed to dump fitness history: %w", name, err)
	}
	log.Printf("%s: wrote fitness history to %s\n", name, historyPath)

	return nil
}
