package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScatterDeterministic(t *testing.T) {
	collect := func(seed int64) [][2]int {
		var out [][2]int
		NewRNG(seed).Scatter(10, 10, 0.3, func(x, y int) { out = append(out, [2]int{x, y}) })
		return out
	}
	assert.Equal(t, collect(5), collect(5))
	assert.NotEmpty(t, collect(5))
}

func TestChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		assert.False(t, r.Chance(0))
		assert.True(t, r.Chance(1))
	}
}
