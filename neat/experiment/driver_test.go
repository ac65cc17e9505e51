package experiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	neat "github.com/evoflux/goneat/neat"
	"github.com/evoflux/goneat/neat/genetics"
)

// constantScoreSim is a minimal unbatched Simulation used to exercise the
// generation loop without depending on a real scenario environment.
type constantScoreSim struct {
	steps int
	ticks map[int]int
}

func newConstantScoreSim() *constantScoreSim {
	return &constantScoreSim{steps: 3, ticks: map[int]int{}}
}

func (s *constantScoreSim) DataSize() int     { return 2 }
func (s *constantScoreSim) ControlsSize() int { return 1 }
func (s *constantScoreSim) Restart()          { s.ticks = map[int]int{} }

func (s *constantScoreSim) GetState(agentID int) genetics.AgentState {
	if s.ticks[agentID] >= s.steps {
		return genetics.Finished
	}
	return genetics.Running
}
func (s *constantScoreSim) GetData(agentID int) []float64 { return []float64{1.0, 0.5} }
func (s *constantScoreSim) ApplyControls(controls []float64, agentID int) {
	s.ticks[agentID]++
}
func (s *constantScoreSim) GetScore(agentID int) float64 { return 1.0 }

func (s *constantScoreSim) GetStateBatch(n int) []genetics.AgentState {
	states := make([]genetics.AgentState, n)
	for i := range states {
		states[i] = s.GetState(i)
	}
	return states
}
func (s *constantScoreSim) GetDataBatch(n int) [][]float64 {
	data := make([][]float64, n)
	for i := range data {
		data[i] = s.GetData(i)
	}
	return data
}
func (s *constantScoreSim) ApplyControlsBatch(controls [][]float64) {
	for i, c := range controls {
		s.ApplyControls(c, i)
	}
}
func (s *constantScoreSim) GetScoreBatch(n int) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = s.GetScore(i)
	}
	return scores
}

func driverTestOptions() *neat.Options {
	return &neat.Options{
		PopulationSize:            8,
		PopulationAgeLimit:        50,
		SpeciesThreshold:          3.0,
		SpeciesAgeFertilityLimit:  50,
		SpeciesNicheDivideMin:     2,
		SpeciesAsexualProbability: 1.0,
		GenomeWeightCoefficient:   1.0,
		GenomeDisjointCoefficient: 1.0,
		GenomeExcessCoefficient:   1.0,
		GenomeMinDivide:           20,
		GeneMaxWeight:             3,
		GeneMinWeight:             -3,
		GeneWeightProbability:     0.1,
		GeneRandomProbability:     0.5,
		GeneWeightShift:           0.3,
		AppStartNodeDepth:         0,
		AppEndNodeDepth:           10,
	}
}

func TestDriverInitializeBuildsFullPopulation(t *testing.T) {
	opts := driverTestOptions()
	d := NewDriver(opts, newConstantScoreSim(), nil)
	require.NoError(t, d.Initialize())
	assert.Len(t, d.Population().AllGenomes(), opts.PopulationSize)
}

func TestDriverStepRecordsAGeneration(t *testing.T) {
	opts := driverTestOptions()
	d := NewDriver(opts, newConstantScoreSim(), nil)
	require.NoError(t, d.Initialize())

	gen, err := d.Step()
	require.NoError(t, err)
	assert.NotNil(t, gen.Best)
	assert.Len(t, d.Trial.Generations, 1)
	assert.Len(t, d.Population().AllGenomes(), opts.PopulationSize)
}

func TestDriverRunStopsEarlyOnSuccess(t *testing.T) {
	opts := driverTestOptions()
	calls := 0
	onSuccess := func(best *genetics.Genome) bool {
		calls++
		return calls >= 2
	}
	d := NewDriver(opts, newConstantScoreSim(), onSuccess)
	require.NoError(t, d.Initialize())
	require.NoError(t, d.Run(10))
	assert.Len(t, d.Trial.Generations, 2)
	assert.True(t, d.Trial.Solved())
}
