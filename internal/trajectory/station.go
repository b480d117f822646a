// Package trajectory builds well paths from deviation surveys: sentinel
// repair, minimum-curvature positions, kickoff detection, and production
// interval classification.
package trajectory

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsufficientSurvey is returned when a survey has too few usable
// stations for the requested computation.
var ErrInsufficientSurvey = errors.New("insufficient survey data")

// Missing is the sentinel the record tables use for an absent inclination
// or azimuth reading.
const Missing = -1

// SurveyStation is one deviation survey row. MD is measured depth in feet;
// Inc is inclination from vertical and Azi compass azimuth, both in degrees.
type SurveyStation struct {
	MD  float64
	Inc float64
	Azi float64
}

// FillMissing replaces sentinel inclination and azimuth readings. Boundary
// stations copy their only neighbor; interior stations interpolate linearly
// by measured depth between immediate neighbors. A missing reading with a
// missing neighbor cannot be repaired.
func FillMissing(stations []SurveyStation) ([]SurveyStation, error) {
	if len(stations) < 2 {
		return nil, fmt.Errorf("%w: %d stations", ErrInsufficientSurvey, len(stations))
	}

	out := make([]SurveyStation, len(stations))
	copy(out, stations)
	last := len(out) - 1

	for i := range out {
		fill := func(get func(SurveyStation) float64, set func(*SurveyStation, float64)) error {
			if get(out[i]) != Missing {
				return nil
			}
			switch i {
			case 0:
				if get(out[1]) == Missing {
					return fmt.Errorf("%w: first two readings missing", ErrInsufficientSurvey)
				}
				set(&out[0], get(out[1]))
			case last:
				set(&out[last], get(out[last-1]))
			default:
				prev, next := out[i-1], out[i+1]
				if get(next) == Missing {
					return fmt.Errorf("%w: consecutive readings missing at station %d", ErrInsufficientSurvey, i)
				}
				span := next.MD - prev.MD
				if span == 0 {
					set(&out[i], get(prev))
					return nil
				}
				v := (get(next)-get(prev))/span*(out[i].MD-prev.MD) + get(prev)
				set(&out[i], v)
			}
			return nil
		}

		if err := fill(
			func(s SurveyStation) float64 { return s.Inc },
			func(s *SurveyStation, v float64) { s.Inc = v },
		); err != nil {
			return nil, err
		}
		if err := fill(
			func(s SurveyStation) float64 { return s.Azi },
			func(s *SurveyStation, v float64) { s.Azi = v },
		); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Point3 is a 3D position: planar X/Y plus depth Z growing downward.
type Point3 struct {
	X, Y, Z float64
}

// IncAzi derives the inclination and azimuth of the straight line from one
// 3D point to another. Inclination is measured from vertical in degrees;
// azimuth is planar atan2 normalized to [0, 360).
func IncAzi(from, to Point3) (inc, azi float64) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	dz := to.Z - from.Z

	horizontal := math.Hypot(dx, dy)
	dip := math.Atan2(dz, horizontal) * 180 / math.Pi
	inc = math.Abs(90 - dip)

	azi = math.Atan2(dy, dx) * 180 / math.Pi
	if azi < 0 {
		azi += 360
	}
	return inc, azi
}

// SyntheticSurvey builds a two-station survey for wells that only report a
// surface and bottomhole location: a vertical surface station and a single
// deviated station at total depth.
func SyntheticSurvey(surface, bottomhole Point3, md float64) ([]SurveyStation, error) {
	if md <= 0 {
		return nil, fmt.Errorf("%w: measured depth %.2f", ErrInsufficientSurvey, md)
	}
	inc, azi := IncAzi(surface, bottomhole)
	return []SurveyStation{
		{MD: 0, Inc: 0, Azi: 0},
		{MD: md, Inc: math.Round(inc*1000) / 1000, Azi: math.Round(azi*1000) / 1000},
	}, nil
}
