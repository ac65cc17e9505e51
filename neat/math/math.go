// Package math defines standard mathematical primitives used by the NEAT algorithm as well as utility functions
package math

import (
	"math/rand"
)

// RandSign Returns subsequent random positive or negative integer value (1 or -1) to randomize value sign
func RandSign() int32 {
	v := rand.Int()
	if (v % 2) == 0 {
		return -1
	} else {
		return 1
	}
}
