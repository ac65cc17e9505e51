// Package sim supplies concrete Simulation environments genomes are
// evaluated against: table-driven boolean functions, an identity
// pass-through, and a batched grid-world dodging task.
package sim

import "github.com/evoflux/goneat/neat/genetics"

// Logic is a table-driven boolean-function environment. One evaluation of an
// agent walks every row of the truth table in order, one per step,
// accumulating 1 - (expected-output)^2 per row; the agent reports FINISHED
// once every row has been presented. Logic backs both the XOR and AND
// scenarios: identical geometry (2 real inputs plus a bias input the
// environment holds fixed at 1.0, 1 output), different truth tables.
type Logic struct {
	// Inputs holds one row per pattern, each of length 2.
	Inputs [][2]float64
	// Expected holds the expected output for each row in Inputs.
	Expected []float64

	tick  map[int]int
	score map[int]float64
}

// NewXOR builds the Logic environment for the XOR truth table.
func NewXOR() *Logic {
	return &Logic{
		Inputs:   [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		Expected: []float64{0, 1, 1, 0},
	}
}

// NewAND builds the Logic environment for the AND truth table.
func NewAND() *Logic {
	return &Logic{
		Inputs:   [][2]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		Expected: []float64{0, 0, 0, 1},
	}
}

func (l *Logic) DataSize() int     { return 3 } // 2 operands + bias
func (l *Logic) ControlsSize() int { return 1 }

func (l *Logic) Restart() {
	l.tick = make(map[int]int)
	l.score = make(map[int]float64)
}

func (l *Logic) GetState(agentID int) genetics.AgentState {
	if l.tick[agentID] >= len(l.Inputs) {
		return genetics.Finished
	}
	return genetics.Running
}

func (l *Logic) GetData(agentID int) []float64 {
	row := l.Inputs[l.tick[agentID]%len(l.Inputs)]
	return []float64{row[0], row[1], 1.0}
}

func (l *Logic) ApplyControls(controls []float64, agentID int) {
	if l.GetState(agentID) == genetics.Finished {
		return
	}
	diff := l.Expected[l.tick[agentID]] - controls[0]
	l.score[agentID] += 1.0 - diff*diff
	l.tick[agentID]++
}

func (l *Logic) GetScore(agentID int) float64 {
	return l.score[agentID]
}

// batched forms drive the first n agent ids through the same lockstep
// pattern walk; every agent has an identical number of rows, so none ever
// finishes early within a window.

func (l *Logic) GetStateBatch(n int) []genetics.AgentState {
	states := make([]genetics.AgentState, n)
	for i := range states {
		states[i] = l.GetState(i)
	}
	return states
}

func (l *Logic) GetDataBatch(n int) [][]float64 {
	data := make([][]float64, n)
	for i := range data {
		data[i] = l.GetData(i)
	}
	return data
}

func (l *Logic) ApplyControlsBatch(controls [][]float64) {
	for i, c := range controls {
		l.ApplyControls(c, i)
	}
}

func (l *Logic) GetScoreBatch(n int) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = l.GetScore(i)
	}
	return scores
}
