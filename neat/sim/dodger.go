package sim

import (
	"math/rand"

	"github.com/evoflux/goneat/neat/genetics"
)

// Dodger is a width x depth grid-world: the agent occupies one column of a
// row that advances by one every step, one obstacle column per row, and
// dies the moment its column matches the obstacle column of the row it just
// entered. Score is steps survived; the environment hands the agent
// visibility Depth rows ahead, which is the spec's "depth" dimension,
// distinct from the obstacle-column dimension "width".
//
// This is a genuine batched environment: every agent tracks its own
// column/row/alive state independently, and the _Batch accessors operate
// over the whole active roster at once, as the batched evaluator requires.
type Dodger struct {
	Width    int
	Depth    int
	MaxSteps int

	obstacles []int
	column    map[int]int
	row       map[int]int
	dead      map[int]bool
	started   map[int]bool
}

// NewDodger builds the width=9, depth=5 grid described in the scenario suite.
func NewDodger() *Dodger {
	return &Dodger{Width: 9, Depth: 5, MaxSteps: 1000}
}

func (d *Dodger) DataSize() int     { return 1 + d.Depth }
func (d *Dodger) ControlsSize() int { return 2 } // [move-left strength, move-right strength]

func (d *Dodger) Restart() {
	d.obstacles = make([]int, d.MaxSteps+d.Depth)
	for i := range d.obstacles {
		d.obstacles[i] = rand.Intn(d.Width)
	}
	d.column = make(map[int]int)
	d.row = make(map[int]int)
	d.dead = make(map[int]bool)
	d.started = make(map[int]bool)
}

func (d *Dodger) ensure(agentID int) {
	if !d.started[agentID] {
		d.column[agentID] = d.Width / 2
		d.started[agentID] = true
	}
}

func (d *Dodger) GetState(agentID int) genetics.AgentState {
	if d.dead[agentID] {
		return genetics.Finished
	}
	return genetics.Running
}

// GetData returns the agent's normalized column followed by the normalized
// obstacle column of each of the next Depth rows.
func (d *Dodger) GetData(agentID int) []float64 {
	d.ensure(agentID)
	data := make([]float64, d.DataSize())
	data[0] = float64(d.column[agentID]) / float64(d.Width-1)
	row := d.row[agentID]
	for i := 0; i < d.Depth; i++ {
		data[1+i] = float64(d.obstacles[row+i]) / float64(d.Width-1)
	}
	return data
}

// ApplyControls moves the agent by at most one column toward whichever of
// left/right exceeds 0.5 and is larger, then advances it into the next row;
// colliding with that row's obstacle column ends the episode.
func (d *Dodger) ApplyControls(controls []float64, agentID int) {
	if d.dead[agentID] {
		return
	}
	d.ensure(agentID)

	col := d.column[agentID]
	left, right := controls[0], controls[1]
	switch {
	case left > right && left > 0.5:
		col--
	case right > left && right > 0.5:
		col++
	}
	if col < 0 {
		col = 0
	}
	if col > d.Width-1 {
		col = d.Width - 1
	}
	d.column[agentID] = col

	row := d.row[agentID]
	if d.obstacles[row] == col {
		d.dead[agentID] = true
		return
	}
	row++
	d.row[agentID] = row
	if row >= d.MaxSteps {
		d.dead[agentID] = true
	}
}

// GetScore returns the number of rows the agent survived.
func (d *Dodger) GetScore(agentID int) float64 {
	return float64(d.row[agentID])
}

func (d *Dodger) GetStateBatch(n int) []genetics.AgentState {
	states := make([]genetics.AgentState, n)
	for i := range states {
		states[i] = d.GetState(i)
	}
	return states
}

func (d *Dodger) GetDataBatch(n int) [][]float64 {
	data := make([][]float64, n)
	for i := range data {
		data[i] = d.GetData(i)
	}
	return data
}

func (d *Dodger) ApplyControlsBatch(controls [][]float64) {
	for i, c := range controls {
		d.ApplyControls(c, i)
	}
}

func (d *Dodger) GetScoreBatch(n int) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = d.GetScore(i)
	}
	return scores
}
