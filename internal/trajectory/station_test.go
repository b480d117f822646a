package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillMissingBoundaries(t *testing.T) {
	stations := []SurveyStation{
		{MD: 0, Inc: Missing, Azi: Missing},
		{MD: 100, Inc: 5, Azi: 90},
		{MD: 200, Inc: Missing, Azi: Missing},
	}

	out, err := FillMissing(stations)
	require.NoError(t, err)

	assert.Equal(t, 5.0, out[0].Inc)
	assert.Equal(t, 90.0, out[0].Azi)
	assert.Equal(t, 5.0, out[2].Inc)
	assert.Equal(t, 90.0, out[2].Azi)

	// Input is untouched.
	assert.Equal(t, float64(Missing), stations[0].Inc)
}

func TestFillMissingInterpolatesInterior(t *testing.T) {
	stations := []SurveyStation{
		{MD: 0, Inc: 0, Azi: 0},
		{MD: 100, Inc: Missing, Azi: Missing},
		{MD: 200, Inc: 10, Azi: 180},
	}

	out, err := FillMissing(stations)
	require.NoError(t, err)

	assert.InDelta(t, 5, out[1].Inc, 1e-9)
	assert.InDelta(t, 90, out[1].Azi, 1e-9)
}

func TestFillMissingRejectsConsecutiveGaps(t *testing.T) {
	tests := []struct {
		name     string
		stations []SurveyStation
	}{
		{
			"interior run",
			[]SurveyStation{
				{MD: 0, Inc: 0, Azi: 0},
				{MD: 100, Inc: Missing, Azi: 0},
				{MD: 200, Inc: Missing, Azi: 0},
				{MD: 300, Inc: 10, Azi: 0},
			},
		},
		{
			"first two readings",
			[]SurveyStation{
				{MD: 0, Inc: Missing, Azi: 0},
				{MD: 100, Inc: Missing, Azi: 0},
				{MD: 200, Inc: 10, Azi: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FillMissing(tt.stations)
			assert.ErrorIs(t, err, ErrInsufficientSurvey)
		})
	}
}

func TestFillMissingRejectsShortSurvey(t *testing.T) {
	_, err := FillMissing([]SurveyStation{{MD: 0}})
	assert.ErrorIs(t, err, ErrInsufficientSurvey)
}

func TestIncAzi(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point3
		inc, azi float64
	}{
		{"straight down", Point3{}, Point3{Z: 1000}, 0, 0},
		{"horizontal east", Point3{}, Point3{X: 100}, 90, 0},
		{"horizontal north", Point3{}, Point3{Y: 100}, 90, 90},
		{"horizontal south wraps", Point3{}, Point3{Y: -100}, 90, 270},
		{"forty-five build", Point3{}, Point3{Y: 1000, Z: 1000}, 45, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inc, azi := IncAzi(tt.from, tt.to)
			assert.InDelta(t, tt.inc, inc, 1e-9)
			assert.InDelta(t, tt.azi, azi, 1e-9)
		})
	}
}

func TestSyntheticSurvey(t *testing.T) {
	stations, err := SyntheticSurvey(Point3{}, Point3{Y: 1000, Z: 1000}, 1500)
	require.NoError(t, err)
	require.Len(t, stations, 2)

	assert.Equal(t, SurveyStation{MD: 0, Inc: 0, Azi: 0}, stations[0])
	assert.Equal(t, SurveyStation{MD: 1500, Inc: 45, Azi: 90}, stations[1])
}

func TestSyntheticSurveyRejectsNonpositiveDepth(t *testing.T) {
	_, err := SyntheticSurvey(Point3{}, Point3{Z: 100}, 0)
	assert.ErrorIs(t, err, ErrInsufficientSurvey)
}
