package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSteepenedSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, SteepenedSigmoid(0))
	assert.Greater(t, SteepenedSigmoid(10), 0.99)
	assert.Less(t, SteepenedSigmoid(-10), 0.01)

	prev := SteepenedSigmoid(-5.0)
	for x := -4.0; x <= 5.0; x += 1.0 {
		cur := SteepenedSigmoid(x)
		assert.Greaterf(t, cur, prev, "expected SteepenedSigmoid to be strictly increasing at x=%v", x)
		prev = cur
	}
}
