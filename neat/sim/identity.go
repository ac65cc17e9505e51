package sim

import "github.com/evoflux/goneat/neat/genetics"

// Identity is the 4-bit identity pass-through environment backing the Equal
// scenario: input_size=5 (4 bits plus a bias), output_size=4, fitness is 1
// minus the mean squared error over all 16 four-bit patterns. Like Logic, one
// evaluation walks every pattern once per agent, accumulating squared error
// per bit.
type Identity struct {
	patterns [][4]float64

	tick       map[int]int
	sqErrorSum map[int]float64
}

// NewIdentity builds the 16-pattern 4-bit identity environment.
func NewIdentity() *Identity {
	patterns := make([][4]float64, 16)
	for i := 0; i < 16; i++ {
		for bit := 0; bit < 4; bit++ {
			if i&(1<<bit) != 0 {
				patterns[i][bit] = 1.0
			}
		}
	}
	return &Identity{patterns: patterns}
}

func (s *Identity) DataSize() int     { return 5 } // 4 bits + bias
func (s *Identity) ControlsSize() int { return 4 }

func (s *Identity) Restart() {
	s.tick = make(map[int]int)
	s.sqErrorSum = make(map[int]float64)
}

func (s *Identity) GetState(agentID int) genetics.AgentState {
	if s.tick[agentID] >= len(s.patterns) {
		return genetics.Finished
	}
	return genetics.Running
}

func (s *Identity) GetData(agentID int) []float64 {
	p := s.patterns[s.tick[agentID]%len(s.patterns)]
	return []float64{p[0], p[1], p[2], p[3], 1.0}
}

func (s *Identity) ApplyControls(controls []float64, agentID int) {
	if s.GetState(agentID) == genetics.Finished {
		return
	}
	p := s.patterns[s.tick[agentID]]
	for bit := 0; bit < 4; bit++ {
		diff := p[bit] - controls[bit]
		s.sqErrorSum[agentID] += diff * diff
	}
	s.tick[agentID]++
}

func (s *Identity) GetScore(agentID int) float64 {
	n := float64(len(s.patterns) * 4)
	return 1.0 - s.sqErrorSum[agentID]/n
}

func (s *Identity) GetStateBatch(n int) []genetics.AgentState {
	states := make([]genetics.AgentState, n)
	for i := range states {
		states[i] = s.GetState(i)
	}
	return states
}

func (s *Identity) GetDataBatch(n int) [][]float64 {
	data := make([][]float64, n)
	for i := range data {
		data[i] = s.GetData(i)
	}
	return data
}

func (s *Identity) ApplyControlsBatch(controls [][]float64) {
	for i, c := range controls {
		s.ApplyControls(c, i)
	}
}

func (s *Identity) GetScoreBatch(n int) []float64 {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = s.GetScore(i)
	}
	return scores
}
