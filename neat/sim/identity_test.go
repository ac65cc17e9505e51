package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evoflux/goneat/neat/genetics"
)

func TestIdentityPerfectPassthroughScoresOne(t *testing.T) {
	s := NewIdentity()
	s.Restart()

	for s.GetState(0) != genetics.Finished {
		data := s.GetData(0)
		s.ApplyControls(data[:4], 0)
	}

	assert.Equal(t, 1.0, s.GetScore(0), "expected perfect passthrough to score 1.0")
}

func TestIdentityAllZerosScoresBelowOne(t *testing.T) {
	s := NewIdentity()
	s.Restart()

	for s.GetState(0) != genetics.Finished {
		s.GetData(0)
		s.ApplyControls([]float64{0, 0, 0, 0}, 0)
	}

	assert.Less(t, s.GetScore(0), 1.0, "expected an imperfect predictor to score under 1.0")
}
