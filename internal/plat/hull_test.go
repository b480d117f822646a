package plat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"well-surveyor/pkg/geometry"
)

func TestSmoothBoundaryOrdersPerimeter(t *testing.T) {
	// Shuffled square perimeter: corners plus edge midpoints.
	pts := []geometry.Point2D{
		{X: 1600, Y: 800}, {X: 0, Y: 0}, {X: 800, Y: 1600}, {X: 1600, Y: 1600},
		{X: 0, Y: 800}, {X: 800, Y: 0}, {X: 0, Y: 1600}, {X: 1600, Y: 0},
	}

	b := SmoothBoundary(pts, DefaultHullOptions())
	require.Equal(t, ExactCorners, b.Provenance)
	require.Len(t, b.Points, 8)

	// Every input point survives on the ring.
	for _, p := range pts {
		assert.Contains(t, b.Points, p)
	}

	// The ring is a simple closed walk: consecutive hull points are
	// perimeter neighbors 800 m apart.
	for i := range b.Points {
		next := b.Points[(i+1)%len(b.Points)]
		assert.InDelta(t, 800, b.Points[i].Distance(next), 1e-9)
	}
}

func TestSmoothBoundaryTinyInputPassesThrough(t *testing.T) {
	pts := []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	b := SmoothBoundary(pts, DefaultHullOptions())
	assert.Equal(t, ExactCorners, b.Provenance)
	assert.Equal(t, pts, b.Points)
}

func TestSmoothBoundaryDegradesOnBudgetExhaustion(t *testing.T) {
	pts := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 800, Y: 0}, {X: 1600, Y: 0}, {X: 1600, Y: 800},
		{X: 1600, Y: 1600}, {X: 800, Y: 1600}, {X: 0, Y: 1600}, {X: 0, Y: 800},
	}
	b := SmoothBoundary(pts, HullOptions{K: 3, MaxIterations: 1})
	assert.Equal(t, Degraded, b.Provenance)
	assert.Equal(t, geometry.Dedupe(pts), b.Points)
}

func TestSmoothBoundaryEnclosesInteriorPoint(t *testing.T) {
	// A point strictly inside the ring can never land on the hull, but the
	// hull still encloses it, so the walk converges around it.
	pts := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 1600, Y: 0}, {X: 1600, Y: 1600}, {X: 0, Y: 1600},
		{X: 800, Y: 800},
	}
	b := SmoothBoundary(pts, DefaultHullOptions())
	assert.Equal(t, ExactCorners, b.Provenance)
	assert.NotContains(t, b.Points, geometry.Point2D{X: 800, Y: 800})
}
