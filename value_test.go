package flexlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueEqual(t *testing.T) {
	assert.True(t, valueEqual(Undefined, Undefined))
	assert.False(t, valueEqual(Undefined, 0))
	assert.False(t, valueEqual(0, Undefined))
	assert.True(t, valueEqual(1, 1))
	assert.True(t, valueEqual(1, 1.00005))
	assert.False(t, valueEqual(1, 1.001))
}

func TestComputedEdgeValueResolution(t *testing.T) {
	var edges [edgeCount]float64
	for i := range edges {
		edges[i] = Undefined
	}

	// Nothing set: concrete edges fall back to the default, start/end to
	// Undefined.
	assert.Equal(t, 9.0, computedEdgeValue(&edges, EdgeLeft, 9))
	assert.True(t, IsUndefined(computedEdgeValue(&edges, EdgeStart, 9)))

	edges[EdgeAll] = 1
	assert.Equal(t, 1.0, computedEdgeValue(&edges, EdgeLeft, 9))
	assert.Equal(t, 1.0, computedEdgeValue(&edges, EdgeTop, 9))
	assert.Equal(t, 1.0, computedEdgeValue(&edges, EdgeStart, 9))

	edges[EdgeHorizontal] = 2
	assert.Equal(t, 2.0, computedEdgeValue(&edges, EdgeLeft, 9))
	assert.Equal(t, 2.0, computedEdgeValue(&edges, EdgeEnd, 9))
	assert.Equal(t, 1.0, computedEdgeValue(&edges, EdgeTop, 9))

	edges[EdgeVertical] = 3
	assert.Equal(t, 3.0, computedEdgeValue(&edges, EdgeTop, 9))
	assert.Equal(t, 3.0, computedEdgeValue(&edges, EdgeBottom, 9))

	edges[EdgeTop] = 4
	assert.Equal(t, 4.0, computedEdgeValue(&edges, EdgeTop, 9))
}

func TestComputedEdgeValueRejectsShorthands(t *testing.T) {
	var edges [edgeCount]float64
	assert.Panics(t, func() { computedEdgeValue(&edges, EdgeHorizontal, 0) })
	assert.Panics(t, func() { computedEdgeValue(&edges, EdgeVertical, 0) })
	assert.Panics(t, func() { computedEdgeValue(&edges, EdgeAll, 0) })
}
