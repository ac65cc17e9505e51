package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evoflux/goneat/neat/genetics"
)

func TestLogicXORPerfectScore(t *testing.T) {
	l := NewXOR()
	l.Restart()

	for l.GetState(0) != genetics.Finished {
		data := l.GetData(0)
		var out float64
		if (data[0] > 0.5) != (data[1] > 0.5) {
			out = 1.0
		}
		l.ApplyControls([]float64{out}, 0)
	}

	assert.Equal(t, 4.0, l.GetScore(0), "expected a perfect XOR predictor to score 4.0")
}

func TestLogicANDAlwaysTrueScoresOne(t *testing.T) {
	l := NewAND()
	l.Restart()

	for l.GetState(0) != genetics.Finished {
		l.GetData(0)
		l.ApplyControls([]float64{1.0}, 0) // always predicts true: wrong on 3 of 4 rows
	}

	assert.Equal(t, 1.0, l.GetScore(0), "expected a predictor right on 1 of 4 rows to score 1.0 of the max 4.0")
}

func TestLogicBatchDrivesAllAgentsInLockstep(t *testing.T) {
	l := NewXOR()
	l.Restart()

	n := 3
	for {
		states := l.GetStateBatch(n)
		done := true
		for _, s := range states {
			if s != genetics.Finished {
				done = false
			}
		}
		if done {
			break
		}
		data := l.GetDataBatch(n)
		controls := make([][]float64, n)
		for i := range controls {
			var out float64
			if (data[i][0] > 0.5) != (data[i][1] > 0.5) {
				out = 1.0
			}
			controls[i] = []float64{out}
		}
		l.ApplyControlsBatch(controls)
	}

	scores := l.GetScoreBatch(n)
	for i, s := range scores {
		assert.Equalf(t, 4.0, s, "agent %d: expected perfect score", i)
	}
}
