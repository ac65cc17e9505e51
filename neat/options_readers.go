package neat

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// LoadYAMLOptions reads NEAT options encoded as YAML from r.
func LoadYAMLOptions(r io.Reader) (*Options, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read YAML options")
	}
	var opts Options
	if err = yaml.Unmarshal(content, &opts); err != nil {
		return nil, errors.Wrap(err, "failed to decode NEAT options from YAML")
	}
	if err = InitLogger(opts.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err = opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return &opts, nil
}

// LoadPlainTextOptions reads NEAT options from r encoded as whitespace-separated "name value" lines,
// one parameter per line (the ".neat" format).
func LoadPlainTextOptions(r io.Reader) (*Options, error) {
	c := &Options{}
	var name, param string
	for {
		_, err := fmt.Fscanf(r, "%s %v\n", &name, &param)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "failed to parse plain text options")
		}
		switch name {
		case "gene_weight_probability":
			c.GeneWeightProbability = cast.ToFloat64(param)
		case "gene_random_probability":
			c.GeneRandomProbability = cast.ToFloat64(param)
		case "gene_max_weight":
			c.GeneMaxWeight = cast.ToFloat64(param)
		case "gene_min_weight":
			c.GeneMinWeight = cast.ToFloat64(param)
		case "gene_weight_shift":
			c.GeneWeightShift = cast.ToFloat64(param)
		case "genome_disable_probability":
			c.GenomeDisableProbability = cast.ToFloat64(param)
		case "genome_node_probability":
			c.GenomeNodeProbability = cast.ToFloat64(param)
		case "genome_connection_probability":
			c.GenomeConnectionProbability = cast.ToFloat64(param)
		case "genome_weight_coefficient":
			c.GenomeWeightCoefficient = cast.ToFloat64(param)
		case "genome_disjoint_coefficient":
			c.GenomeDisjointCoefficient = cast.ToFloat64(param)
		case "genome_excess_coefficient":
			c.GenomeExcessCoefficient = cast.ToFloat64(param)
		case "genome_min_divide":
			c.GenomeMinDivide = cast.ToInt(param)
		case "genome_compat_method":
			c.GenomeCompatibilityMethod = GenomeCompatibilityMethod(param)
		case "species_asexual_probability":
			c.SpeciesAsexualProbability = cast.ToFloat64(param)
		case "species_interspecies_reproduction_probability":
			c.SpeciesInterspeciesReproductionProbability = cast.ToFloat64(param)
		case "species_age_fertility_limit":
			c.SpeciesAgeFertilityLimit = cast.ToInt(param)
		case "species_threshold":
			c.SpeciesThreshold = cast.ToFloat64(param)
		case "species_keep_champion":
			c.SpeciesKeepChampion = cast.ToBool(param)
		case "species_champion_limit":
			c.SpeciesChampionLimit = cast.ToInt(param)
		case "species_niche_divide_min":
			c.SpeciesNicheDivideMin = cast.ToInt(param)
		case "population_size":
			c.PopulationSize = cast.ToInt(param)
		case "population_age_limit":
			c.PopulationAgeLimit = cast.ToInt(param)
		case "app_start_node_depth":
			c.AppStartNodeDepth = cast.ToInt(param)
		case "app_end_node_depth":
			c.AppEndNodeDepth = cast.ToInt(param)
		case "batch_size":
			c.BatchSize = cast.ToInt(param)
		case "log_level":
			c.LogLevel = param
		default:
			return nil, errors.Errorf("unknown configuration parameter: %s = %s", name, param)
		}
	}
	if err := InitLogger(c.LogLevel); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid NEAT options")
	}
	return c, nil
}

// ReadOptionsFromFile reads NEAT options from configFilePath, choosing the YAML or plain text reader
// based on the file extension.
func ReadOptionsFromFile(configFilePath string) (*Options, error) {
	configFile, err := os.Open(configFilePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open config file")
	}
	defer configFile.Close()

	if strings.HasSuffix(configFilePath, ".yml") || strings.HasSuffix(configFilePath, ".yaml") {
		return LoadYAMLOptions(configFile)
	}
	return LoadPlainTextOptions(configFile)
}
