package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandSignIsAlwaysPlusOrMinusOne(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandSign()
		assert.True(t, v == 1 || v == -1, "expected RandSign to return 1 or -1, got %d", v)
	}
}
