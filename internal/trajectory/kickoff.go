package trajectory

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ErrUnknownProfile is returned when an inclination profile matches none of
// the recognized build patterns.
var ErrUnknownProfile = errors.New("unrecognized inclination profile")

// KickoffStrategy selects how the kickoff point is located.
type KickoffStrategy int

const (
	// PatternMatch classifies the inclination profile by its sign-change
	// sequence and picks the change that starts the final build.
	PatternMatch KickoffStrategy = iota
	// MaxDiff picks the largest single inclination increase.
	MaxDiff
)

func (k KickoffStrategy) String() string {
	switch k {
	case PatternMatch:
		return "pattern-match"
	case MaxDiff:
		return "max-diff"
	default:
		return fmt.Sprintf("KickoffStrategy(%d)", int(k))
	}
}

// Kickoff returns the station index where the well leaves vertical.
func Kickoff(stations []SurveyStation, strategy KickoffStrategy) (int, error) {
	if len(stations) < 2 {
		return 0, fmt.Errorf("%w: %d stations", ErrInsufficientSurvey, len(stations))
	}
	switch strategy {
	case PatternMatch:
		return kickoffByPattern(stations)
	case MaxDiff:
		return kickoffByMaxDiff(stations)
	default:
		return 0, fmt.Errorf("unknown kickoff strategy %d", int(strategy))
	}
}

// kickoffByPattern encodes the inclination profile as a run-length sign
// string ("=" then "+"/"-" per direction change) and reads the kickoff off
// the recognized build codes: simple builds ("=+", "=+-") kick off at the
// first change, build-drop-build profiles at the last.
func kickoffByPattern(stations []SurveyStation) (int, error) {
	var code strings.Builder
	code.WriteByte('=')
	var changes []int

	for i := 0; i+1 < len(stations); i++ {
		last := code.String()[code.Len()-1]
		switch {
		case stations[i].Inc > stations[i+1].Inc && last != '-':
			code.WriteByte('-')
			changes = append(changes, i)
		case stations[i].Inc < stations[i+1].Inc && last != '+':
			code.WriteByte('+')
			changes = append(changes, i)
		}
	}

	switch code.String() {
	case "=+", "=+-":
		return changes[0], nil
	case "=+-+", "=+-+-+", "=-+-+-+":
		return changes[len(changes)-1], nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownProfile, code.String())
	}
}

// kickoffByMaxDiff finds the largest inclination increase. Wells whose
// largest build sits at the surface, or that start already deviated, fall
// back to the first nonzero inclination.
func kickoffByMaxDiff(stations []SurveyStation) (int, error) {
	diffs := make([]float64, len(stations)-1)
	for i := range diffs {
		diffs[i] = stations[i+1].Inc - stations[i].Inc
	}

	idx := floats.MaxIdx(diffs)
	if idx == 0 || stations[0].Inc > 0 {
		for i, s := range stations {
			if s.Inc != 0 {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: well never leaves vertical", ErrUnknownProfile)
	}
	return idx, nil
}

// ProductionIndex locates the station where the production interval starts.
// Horizontal wells land at the first occurrence of the maximum inclination;
// low-angle directionals scan backward from total depth; standard
// directionals look for the return to vertical after the peak; anything
// else falls back to the second-to-last station.
func ProductionIndex(stations []SurveyStation) int {
	if len(stations) < 2 {
		return 0
	}

	incs := make([]float64, len(stations))
	for i, s := range stations {
		incs[i] = math.Round(s.Inc)
	}
	maxVal := incs[floats.MaxIdx(incs)]
	end := incs[len(incs)-1]

	switch {
	case end == maxVal:
		return indexOf(incs, maxVal)

	case end < 20:
		for i := len(incs) - 2; i >= 0; i-- {
			if incs[i] > end {
				// One past the last deviated station, clamped to the table.
				idx := i + 2
				if idx > len(incs)-1 {
					idx = len(incs) - 1
				}
				return idx
			}
		}

	case maxVal > 0:
		for i := indexOf(incs, maxVal); i < len(incs); i++ {
			if incs[i] == 0 {
				return i
			}
		}
	}

	return len(stations) - 2
}

// Direction is a bottomhole compass direction.
type Direction int

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case Northeast:
		return "NE"
	case East:
		return "E"
	case Southeast:
		return "SE"
	case South:
		return "S"
	case Southwest:
		return "SW"
	case West:
		return "W"
	case Northwest:
		return "NW"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// BottomholeDirection classifies the terminal lateral direction of a well
// path from its final northing and easting offsets, in eight 45-degree
// compass sectors centered on the cardinals.
func BottomholeDirection(north, east float64) Direction {
	azimuth := math.Atan2(east, north) * 180 / math.Pi
	azimuth = math.Mod(azimuth+360, 360)

	sector := int(math.Floor(azimuth/45 + 0.5))
	return Direction(sector % 8)
}

func indexOf(values []float64, target float64) int {
	for i, v := range values {
		if v == target {
			return i
		}
	}
	return 0
}
