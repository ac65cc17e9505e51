package neat

import "github.com/pkg/errors"

// GenomeCompatibilityMethod selects the algorithm used to estimate genetic distance between two genomes.
type GenomeCompatibilityMethod string

const (
	// GenomeCompatibilityMethodLinear walks both gene lists from the start; simplest to reason about.
	GenomeCompatibilityMethodLinear GenomeCompatibilityMethod = "linear"
	// GenomeCompatibilityMethodFast walks both gene lists from the end, exploiting that novel genes are
	// always appended with the largest innovation numbers.
	GenomeCompatibilityMethodFast GenomeCompatibilityMethod = "fast"
)

// Options is the immutable parameter bundle consumed by every operator in the neat and neat/genetics
// packages. It is built once per run (or per trial) and never mutated afterward; operators that need a
// knob read it from here rather than carrying their own copy.
type Options struct {
	// --- Gene mutation (spec.md 6.2, gene_*) ---

	// GeneWeightProbability is the chance a weight mutation fires at all for a given gene.
	GeneWeightProbability float64 `yaml:"gene_weight_probability"`
	// GeneRandomProbability is, conditioned on a weight mutation firing, the chance it is a full
	// re-draw from [GeneMinWeight, GeneMaxWeight] rather than a jitter of +/-GeneWeightShift.
	GeneRandomProbability float64 `yaml:"gene_random_probability"`
	// GeneMaxWeight and GeneMinWeight bound every connection weight after every mutation.
	GeneMaxWeight float64 `yaml:"gene_max_weight"`
	GeneMinWeight float64 `yaml:"gene_min_weight"`
	// GeneWeightShift is the half-width of the jitter applied to a weight when it is not fully redrawn.
	GeneWeightShift float64 `yaml:"gene_weight_shift"`

	// --- Genome crossover & compatibility (spec.md 6.2, genome_*) ---

	// GenomeDisableProbability is the probability that a gene disabled in every parent carrying it stays
	// disabled in the child: Genome.Breed enables a gene when either parent has it enabled or a uniform
	// roll is >= this value.
	GenomeDisableProbability float64 `yaml:"genome_disable_probability"`
	// GenomeNodeProbability is the chance a freshly bred child attempts AddNode.
	GenomeNodeProbability float64 `yaml:"genome_node_probability"`
	// GenomeConnectionProbability is the chance a freshly bred child attempts AddConnection.
	GenomeConnectionProbability float64 `yaml:"genome_connection_probability"`

	GenomeWeightCoefficient   float64 `yaml:"genome_weight_coefficient"`
	GenomeDisjointCoefficient float64 `yaml:"genome_disjoint_coefficient"`
	GenomeExcessCoefficient   float64 `yaml:"genome_excess_coefficient"`
	// GenomeMinDivide is the minimum longer-genome length at which disjoint/excess terms in Compare are
	// normalized by genome length rather than used as raw counts.
	GenomeMinDivide int `yaml:"genome_min_divide"`
	// GenomeCompatibilityMethod selects which of Genome.compatLinear/compatFast backs Genome.Compare.
	GenomeCompatibilityMethod GenomeCompatibilityMethod `yaml:"genome_compat_method"`

	// --- Species reproduction (spec.md 6.2, species_*) ---

	SpeciesAsexualProbability                   float64 `yaml:"species_asexual_probability"`
	SpeciesInterspeciesReproductionProbability  float64 `yaml:"species_interspecies_reproduction_probability"`
	// SpeciesAgeFertilityLimit is the age at which a species stops being allowed to reproduce.
	SpeciesAgeFertilityLimit int `yaml:"species_age_fertility_limit"`
	// SpeciesThreshold is the compatibility distance below which a genome joins an existing species.
	SpeciesThreshold float64 `yaml:"species_threshold"`
	SpeciesKeepChampion bool `yaml:"species_keep_champion"`
	// SpeciesChampionLimit is the species size above which the unmodified champion clone is kept.
	SpeciesChampionLimit int `yaml:"species_champion_limit"`
	// SpeciesNicheDivideMin is the minimum species size above which shared fitness is averaged rather
	// than summed.
	SpeciesNicheDivideMin int `yaml:"species_niche_divide_min"`

	// --- Population (spec.md 6.2, population_*) ---

	PopulationSize      int `yaml:"population_size"`
	PopulationAgeLimit  int `yaml:"population_age_limit"`

	// --- App / registry bootstrap (spec.md 6.2, app_*) ---

	AppStartNodeDepth int `yaml:"app_start_node_depth"`
	AppEndNodeDepth   int `yaml:"app_end_node_depth"`

	// --- Ambient, not named by spec.md but required to drive a real run ---

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
	// BatchSize, when > 0, makes Population.Evaluate drive the Simulation in batched mode (spec.md 4.6).
	// Zero means unbatched, one organism at a time.
	BatchSize int `yaml:"batch_size"`
}

// Validate sanity-checks the option bundle. It deliberately does not attempt to validate every
// probability is in [0,1]; it only catches the mistakes that would make the algorithm inconsistent
// rather than merely suboptimal.
func (o *Options) Validate() error {
	if o.PopulationSize <= 0 {
		return errors.New("population_size must be positive")
	}
	if o.GeneMinWeight > o.GeneMaxWeight {
		return errors.New("gene_min_weight must not exceed gene_max_weight")
	}
	if o.GenomeMinDivide < 1 {
		return errors.New("genome_min_divide must be at least 1")
	}
	if o.GenomeCompatibilityMethod == "" {
		o.GenomeCompatibilityMethod = GenomeCompatibilityMethodLinear
	}
	if o.GenomeCompatibilityMethod != GenomeCompatibilityMethodLinear && o.GenomeCompatibilityMethod != GenomeCompatibilityMethodFast {
		return errors.Errorf("unsupported genome_compat_method: %s", o.GenomeCompatibilityMethod)
	}
	if o.SpeciesNicheDivideMin < 0 {
		return errors.New("species_niche_divide_min must not be negative")
	}
	if o.LogLevel == "" {
		o.LogLevel = string(LogLevelInfo)
	}
	return nil
}
