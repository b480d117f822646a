package trajectory

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// Position is a computed well path point. All values are in feet; North and
// East are horizontal offsets from the surface location.
type Position struct {
	MD    float64
	TVD   float64
	North float64
	East  float64
}

// BuildOptions tunes the minimum-curvature integration.
type BuildOptions struct {
	// CourseLength is the resampling step along measured depth, in feet.
	CourseLength float64
}

// DefaultBuildOptions returns the 30 ft course the record pipeline used.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{CourseLength: 30}
}

// MinimumCurvature integrates a deviation survey into a well path. Sentinel
// readings are repaired first, stations with repeated measured depth are
// skipped, and the inclination/azimuth profiles are resampled at a fixed
// course length before the ratio-factor integration runs.
func MinimumCurvature(stations []SurveyStation, opts BuildOptions) ([]Position, error) {
	filled, err := FillMissing(stations)
	if err != nil {
		return nil, err
	}

	// Drop repeats: a zero course length has no dogleg and would poison the
	// ratio factor.
	unique := filled[:1]
	for _, s := range filled[1:] {
		prev := unique[len(unique)-1]
		if s.MD == prev.MD {
			continue
		}
		if s.MD < prev.MD {
			return nil, fmt.Errorf("%w: measured depth not ascending at %.2f", ErrInsufficientSurvey, s.MD)
		}
		unique = append(unique, s)
	}
	if len(unique) < 2 {
		return nil, fmt.Errorf("%w: %d distinct stations", ErrInsufficientSurvey, len(unique))
	}

	if opts.CourseLength <= 0 {
		opts.CourseLength = DefaultBuildOptions().CourseLength
	}

	mds := make([]float64, len(unique))
	incs := make([]float64, len(unique))
	azis := make([]float64, len(unique))
	for i, s := range unique {
		mds[i], incs[i], azis[i] = s.MD, s.Inc, s.Azi
	}

	var incProfile, aziProfile interp.PiecewiseLinear
	if err := incProfile.Fit(mds, incs); err != nil {
		return nil, fmt.Errorf("fit inclination profile: %w", err)
	}
	if err := aziProfile.Fit(mds, azis); err != nil {
		return nil, fmt.Errorf("fit azimuth profile: %w", err)
	}

	grid := courseGrid(mds[0], mds[len(mds)-1], opts.CourseLength)

	path := make([]Position, 1, len(grid))
	path[0] = Position{MD: grid[0]}

	for i := 1; i < len(grid); i++ {
		md1, md2 := grid[i-1], grid[i]
		i1 := incProfile.Predict(md1) * math.Pi / 180
		i2 := incProfile.Predict(md2) * math.Pi / 180
		a1 := aziProfile.Predict(md1) * math.Pi / 180
		a2 := aziProfile.Predict(md2) * math.Pi / 180

		dl := dogleg(i1, a1, i2, a2)
		rf := ratioFactor(dl)
		half := (md2 - md1) / 2

		prev := path[len(path)-1]
		path = append(path, Position{
			MD:    md2,
			North: prev.North + half*(math.Sin(i1)*math.Cos(a1)+math.Sin(i2)*math.Cos(a2))*rf,
			East:  prev.East + half*(math.Sin(i1)*math.Sin(a1)+math.Sin(i2)*math.Sin(a2))*rf,
			TVD:   prev.TVD + half*(math.Cos(i1)+math.Cos(i2))*rf,
		})
	}
	return path, nil
}

// courseGrid spans [start, end] in fixed steps, always ending exactly at end.
func courseGrid(start, end, step float64) []float64 {
	var grid []float64
	for md := start; md < end; md += step {
		grid = append(grid, md)
	}
	return append(grid, end)
}

// dogleg returns the total angle change between two survey attitudes.
func dogleg(i1, a1, i2, a2 float64) float64 {
	cosDL := math.Cos(i2-i1) - math.Sin(i1)*math.Sin(i2)*(1-math.Cos(a2-a1))
	cosDL = math.Max(-1, math.Min(1, cosDL))
	return math.Acos(cosDL)
}

// ratioFactor smooths the straight-segment assumption over the dogleg arc.
// A zero dogleg is a straight course with factor one.
func ratioFactor(dl float64) float64 {
	if dl == 0 {
		return 1
	}
	return 2 / dl * math.Tan(dl/2)
}
