package plat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"well-surveyor/pkg/geometry"
)

// squareCloud is a 1600 m section boundary: four corners plus points along
// every side, shuffled.
func squareCloud() []geometry.Point2D {
	return []geometry.Point2D{
		{X: 1600, Y: 400}, {X: 0, Y: 0}, {X: 400, Y: 1600}, {X: 1600, Y: 1600},
		{X: 0, Y: 400}, {X: 1200, Y: 0}, {X: 0, Y: 1600}, {X: 1600, Y: 1200},
		{X: 400, Y: 0}, {X: 1200, Y: 1600}, {X: 0, Y: 1200}, {X: 1600, Y: 0},
	}
}

func TestReconstructCornersExactSquare(t *testing.T) {
	rec, err := ReconstructCorners(squareCloud(), DefaultReconstructOptions())
	require.NoError(t, err)

	assert.Equal(t, ExactCorners, rec.Provenance)
	assert.Equal(t, geometry.Point2D{X: 0, Y: 1600}, rec.NW)
	assert.Equal(t, geometry.Point2D{X: 1600, Y: 1600}, rec.NE)
	assert.Equal(t, geometry.Point2D{X: 1600, Y: 0}, rec.SE)
	assert.Equal(t, geometry.Point2D{X: 0, Y: 0}, rec.SW)
}

func TestReconstructCornersSides(t *testing.T) {
	rec, err := ReconstructCorners(squareCloud(), DefaultReconstructOptions())
	require.NoError(t, err)

	// West runs south to north.
	assert.Equal(t, []geometry.Point2D{
		{X: 0, Y: 0}, {X: 0, Y: 400}, {X: 0, Y: 1200}, {X: 0, Y: 1600},
	}, rec.Sides.West)

	// North runs west to east.
	assert.Equal(t, []geometry.Point2D{
		{X: 0, Y: 1600}, {X: 400, Y: 1600}, {X: 1200, Y: 1600}, {X: 1600, Y: 1600},
	}, rec.Sides.North)

	// East runs north to south.
	assert.Equal(t, []geometry.Point2D{
		{X: 1600, Y: 1600}, {X: 1600, Y: 1200}, {X: 1600, Y: 400}, {X: 1600, Y: 0},
	}, rec.Sides.East)

	// South runs east to west.
	assert.Equal(t, []geometry.Point2D{
		{X: 1600, Y: 0}, {X: 1200, Y: 0}, {X: 400, Y: 0}, {X: 0, Y: 0},
	}, rec.Sides.South)
}

func TestReconstructCornersGeodeticEpsilon(t *testing.T) {
	// A lat/lon scale plat: meter-scale epsilon would flatten it entirely.
	pts := []geometry.Point2D{
		{X: 40.00, Y: -110.00}, {X: 40.00, Y: -110.02},
		{X: 40.02, Y: -110.02}, {X: 40.02, Y: -110.00},
		{X: 40.01, Y: -110.00}, {X: 40.01, Y: -110.02},
	}
	rec, err := ReconstructCorners(pts, DefaultReconstructOptions())
	require.NoError(t, err)
	assert.Equal(t, ExactCorners, rec.Provenance)
}

func TestReconstructCornersRejectsCollinear(t *testing.T) {
	pts := []geometry.Point2D{{X: 0, Y: 0}, {X: 0, Y: 100}, {X: 0, Y: 200}}
	_, err := ReconstructCorners(pts, DefaultReconstructOptions())
	assert.ErrorIs(t, err, ErrAmbiguousGeometry)
}

func TestReconstructCornersRejectsTinyInput(t *testing.T) {
	_, err := ReconstructCorners([]geometry.Point2D{{X: 1, Y: 1}, {X: 1, Y: 1}}, DefaultReconstructOptions())
	assert.ErrorIs(t, err, ErrAmbiguousGeometry)
}

func TestRecoverStrideFillsMissingCorner(t *testing.T) {
	ring := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 0},
	}
	doubled := make([]tagged, len(ring))
	for i, p := range ring {
		doubled[i] = tagged{pt: p, bearing: float64(i)}
	}

	candidates := []tagged{doubled[1], doubled[3], doubled[5]}
	out, err := recoverStride(candidates, doubled)
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, doubled[1], out[0])
	assert.Equal(t, doubled[3], out[1])
	assert.Equal(t, doubled[5], out[2])
	assert.Equal(t, doubled[7], out[3])
}

func TestRecoverStrideRejectsUnevenSpacing(t *testing.T) {
	ring := []geometry.Point2D{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0},
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 0},
	}
	doubled := make([]tagged, len(ring))
	for i, p := range ring {
		doubled[i] = tagged{pt: p, bearing: float64(i)}
	}

	candidates := []tagged{doubled[1], doubled[3], doubled[6]}
	_, err := recoverStride(candidates, doubled)
	assert.ErrorIs(t, err, ErrAmbiguousGeometry)
}

func TestProvenanceString(t *testing.T) {
	assert.Equal(t, "exact", ExactCorners.String())
	assert.Equal(t, "recovered-fourth-corner", RecoveredFourthCorner.String())
	assert.Equal(t, "degraded", Degraded.String())
}

func TestSnapToReference(t *testing.T) {
	rec, err := ReconstructCorners(squareCloud(), DefaultReconstructOptions())
	require.NoError(t, err)

	ref := geometry.NewRect(10, -10, 1600, 1600)
	snapped := SnapToReference(rec, ref)
	assert.Equal(t, geometry.Point2D{X: 10, Y: 1590}, snapped.NW)
	assert.Equal(t, geometry.Point2D{X: 1610, Y: 1590}, snapped.NE)
	assert.Equal(t, geometry.Point2D{X: 1610, Y: -10}, snapped.SE)
	assert.Equal(t, geometry.Point2D{X: 10, Y: -10}, snapped.SW)
}

func TestTranslateOnto(t *testing.T) {
	pts := []geometry.Point2D{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	control := []geometry.Point2D{{X: 100, Y: 50}}

	moved, err := TranslateOnto(pts, control)
	require.NoError(t, err)
	assert.Equal(t, geometry.Point2D{X: 99, Y: 49}, moved[0])
	assert.Equal(t, geometry.Point2D{X: 101, Y: 51}, moved[2])
}
