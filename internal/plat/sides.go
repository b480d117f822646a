package plat

import (
	"fmt"
	"math"

	"well-surveyor/internal/bearing"
	"well-surveyor/internal/coords"
	"well-surveyor/pkg/geometry"
)

// SideRow is one distance-and-bearing call on a plat side, the shape the
// record tables carry.
type SideRow struct {
	Location bearing.ConcCode
	Position string
	// Distance is in survey feet, rounded to two decimals. Synthesized
	// structural rows carry zero distance.
	Distance float64
	Call     bearing.Bearing
}

// SideReport is the full four-by-four call table of a plat.
type SideReport struct {
	West, East, North, South [4]SideRow
}

// Rows flattens the report in record order: west, east, north, south.
func (r SideReport) Rows() []SideRow {
	out := make([]SideRow, 0, 16)
	out = append(out, r.West[:]...)
	out = append(out, r.East[:]...)
	out = append(out, r.North[:]...)
	out = append(out, r.South[:]...)
	return out
}

// AssembleOptions tunes side assembly.
type AssembleOptions struct {
	// MergeTolerance collapses south-side points closer than this many
	// meters before segment extraction.
	MergeTolerance float64
}

// DefaultAssembleOptions returns the tolerances the record pipeline used.
func DefaultAssembleOptions() AssembleOptions {
	return AssembleOptions{MergeTolerance: 10}
}

var (
	westPositions  = [4]string{"West-Up2", "West-Up1", "West-Down1", "West-Down2"}
	eastPositions  = [4]string{"East-Up2", "East-Up1", "East-Down1", "East-Down2"}
	northPositions = [4]string{"North-Left2", "North-Left1", "North-Right1", "North-Right2"}
	southPositions = [4]string{"South-Left2", "South-Left1", "South-Right1", "South-Right2"}
)

// segment is an intermediate distance/direction pair between consecutive
// side points.
type segment struct {
	distance float64 // survey feet, 2 decimals
	azimuth  float64 // degrees [0, 360)
}

// segments converts consecutive point pairs into distance and direction.
// The direction reads from the later point back toward the earlier one,
// matching the record convention.
func segments(pts []geometry.Point2D) []segment {
	if len(pts) < 2 {
		return nil
	}
	out := make([]segment, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		d := coords.MetersToFeet(pts[i].Distance(pts[i+1]))
		d = math.Round(d*100) / 100
		az := math.Atan2(pts[i].Y-pts[i+1].Y, pts[i].X-pts[i+1].X) * 180 / math.Pi
		az = math.Mod(az+360, 360)
		out = append(out, segment{distance: d, azimuth: az})
	}
	return out
}

// mergeClose collapses consecutive points closer than tol, keeping the later
// point, then drops the duplicates.
func mergeClose(pts []geometry.Point2D, tol float64) []geometry.Point2D {
	merged := append([]geometry.Point2D{}, pts...)
	for i := 0; i+1 < len(merged); i++ {
		if merged[i].Distance(merged[i+1]) < tol {
			merged[i] = merged[i+1]
		}
	}
	return geometry.Dedupe(merged)
}

// AssembleSides renders a reconstructed plat's sides into the sixteen-row
// call table. West and south segment runs are reversed before emission so
// each side reads in its record order, and the south side first merges
// points closer than the tolerance.
func AssembleSides(sides SideSet, loc bearing.ConcCode, opts AssembleOptions) (SideReport, error) {
	south := mergeClose(sides.South, opts.MergeTolerance)

	segW := reverseSegments(segments(sides.West))
	segE := segments(sides.East)
	segN := segments(sides.North)
	segS := reverseSegments(segments(south))

	west, err := sideRows(segW, bearing.SideWest, westPositions, loc)
	if err != nil {
		return SideReport{}, err
	}
	east, err := sideRows(segE, bearing.SideEast, eastPositions, loc)
	if err != nil {
		return SideReport{}, err
	}
	north, err := sideRows(segN, bearing.SideNorth, northPositions, loc)
	if err != nil {
		return SideReport{}, err
	}
	southRows, err := sideRows(segS, bearing.SideSouth, southPositions, loc)
	if err != nil {
		return SideReport{}, err
	}

	return SideReport{West: west, East: east, North: north, South: southRows}, nil
}

// sideRows folds a side's segments into bearing calls and normalizes them to
// exactly four structural rows.
func sideRows(segs []segment, side bearing.Side, positions [4]string, loc bearing.ConcCode) ([4]SideRow, error) {
	if len(segs) == 0 || len(segs) > 4 {
		return [4]SideRow{}, fmt.Errorf("%w: side %s has %d segments, want 1-4",
			ErrAmbiguousGeometry, side, len(segs))
	}

	rows := make([]SideRow, len(segs))
	for i, s := range segs {
		call, err := bearing.FromSideAzimuth(side, s.azimuth)
		if err != nil {
			return [4]SideRow{}, err
		}
		rows[i] = SideRow{
			Location: loc,
			Position: positions[i],
			Distance: s.distance,
			Call:     call,
		}
	}

	return normalizeSide(rows, positions, loc), nil
}

// normalizeSide places 1-4 real rows into the four structural slots,
// synthesizing zero-distance rows for the rest. With three rows the open
// slot depends on which end of the run carries the longer segment.
func normalizeSide(rows []SideRow, positions [4]string, loc bearing.ConcCode) [4]SideRow {
	synth := func(slot int) SideRow {
		return SideRow{Location: loc, Position: positions[slot]}
	}

	var out [4]SideRow
	switch len(rows) {
	case 1:
		out[0] = synth(0)
		out[1] = rows[0]
		out[2] = synth(2)
		out[3] = synth(3)
	case 2:
		out[0] = synth(0)
		out[1] = rows[0]
		out[2] = rows[1]
		out[3] = synth(3)
	case 3:
		if rows[0].Distance > rows[2].Distance {
			out[0] = synth(0)
			out[1] = rows[0]
			out[2] = rows[1]
			out[3] = rows[2]
		} else {
			out[0] = rows[0]
			out[1] = rows[1]
			out[2] = rows[2]
			out[3] = synth(3)
		}
	default:
		copy(out[:], rows)
	}
	return out
}

func reverseSegments(in []segment) []segment {
	out := make([]segment, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}
