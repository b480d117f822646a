// Package plat reconstructs section plat corners and sides from the noisy
// boundary point clouds found in survey records, and renders the sides back
// into the distance-and-bearing rows the records carry.
package plat

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"well-surveyor/pkg/geometry"
)

// ErrAmbiguousGeometry is returned when a point cloud cannot be resolved
// into four plat corners.
var ErrAmbiguousGeometry = errors.New("ambiguous plat geometry")

// Provenance records how a reconstruction was obtained.
type Provenance int

const (
	// ExactCorners means all four corners were found directly.
	ExactCorners Provenance = iota
	// RecoveredFourthCorner means only three corners were detected and the
	// fourth was recovered from the spacing of the other three.
	RecoveredFourthCorner
	// Degraded means the input was passed through without full resolution.
	Degraded
)

func (p Provenance) String() string {
	switch p {
	case ExactCorners:
		return "exact"
	case RecoveredFourthCorner:
		return "recovered-fourth-corner"
	case Degraded:
		return "degraded"
	default:
		return fmt.Sprintf("Provenance(%d)", int(p))
	}
}

// ReconstructOptions tunes corner detection.
type ReconstructOptions struct {
	// SparseEpsilon is the simplification tolerance for projected
	// (meter-scale) coordinates.
	SparseEpsilon float64
	// GeodeticEpsilon replaces SparseEpsilon when the first ring coordinate
	// falls inside the geodetic window, where a degree is the unit.
	GeodeticEpsilon float64
	// GeodeticMin and GeodeticMax bound the geodetic window test.
	GeodeticMin, GeodeticMax float64
	// CornerAngle is the minimum turning angle, in radians, for a vertex to
	// count as a corner candidate.
	CornerAngle float64
}

// DefaultReconstructOptions returns the tolerances the record pipeline used.
func DefaultReconstructOptions() ReconstructOptions {
	return ReconstructOptions{
		SparseEpsilon:   200,
		GeodeticEpsilon: 0.002,
		GeodeticMin:     35,
		GeodeticMax:     55,
		CornerAngle:     math.Pi / 35,
	}
}

// SideSet holds the boundary points of each plat side. West runs south to
// north; east and south are reversed so every side reads in walk order.
type SideSet struct {
	West  []geometry.Point2D
	North []geometry.Point2D
	East  []geometry.Point2D
	South []geometry.Point2D
}

// Reconstruction is a resolved plat: the four corners, the per-side point
// runs, and how the result was obtained.
type Reconstruction struct {
	NW, NE, SE, SW geometry.Point2D
	Sides          SideSet
	Provenance     Provenance
}

// tagged pairs a point with its bearing seen from the plat centroid.
type tagged struct {
	pt      geometry.Point2D
	bearing float64
}

func tagAll(points []geometry.Point2D, center geometry.Point2D) []tagged {
	out := make([]tagged, len(points))
	for i, p := range points {
		out[i] = tagged{pt: p, bearing: p.BearingFrom(center)}
	}
	return out
}

// ReconstructCorners resolves a boundary point cloud into a plat. The cloud
// is sorted clockwise, doubled and closed into a ring, simplified, and
// scanned for sharp turns; surviving vertices are classified into corner
// quadrants by their bearing from the centroid. Three-candidate clouds go
// through stride recovery for the missing corner.
func ReconstructCorners(points []geometry.Point2D, opts ReconstructOptions) (Reconstruction, error) {
	pts := geometry.Dedupe(points)
	if len(pts) < 3 {
		return Reconstruction{}, fmt.Errorf("%w: %d distinct points", ErrAmbiguousGeometry, len(pts))
	}

	center := geometry.Centroid(pts)
	ordered := geometry.SortClockwise(pts)

	// Doubling the ring before closing it lets corners near the seam
	// survive simplification.
	ring := make([]geometry.Point2D, 0, 2*len(ordered)+1)
	ring = append(ring, ordered...)
	ring = append(ring, ordered...)
	ring = append(ring, ordered[0])

	eps := opts.SparseEpsilon
	if (ring[0].X > opts.GeodeticMin && ring[0].X < opts.GeodeticMax) ||
		(ring[0].Y > opts.GeodeticMin && ring[0].Y < opts.GeodeticMax) {
		eps = opts.GeodeticEpsilon
	}

	simplified := geometry.Simplify(ring, eps)
	angles := geometry.TurningAngles(simplified)

	var candidates []tagged
	for i, a := range angles {
		if a > opts.CornerAngle {
			p := simplified[i+1]
			candidates = append(candidates, tagged{pt: p, bearing: p.BearingFrom(center)})
		}
	}

	provenance := ExactCorners
	if len(candidates) == 3 {
		doubled := tagAll(append(append([]geometry.Point2D{}, ordered...), ordered...), center)
		recovered, err := recoverStride(candidates, doubled)
		if err != nil {
			return Reconstruction{}, err
		}
		candidates = recovered
		provenance = RecoveredFourthCorner
	}

	corners := dedupeTagged(candidates)
	sort.SliceStable(corners, func(i, j int) bool { return corners[i].bearing < corners[j].bearing })

	all := tagAll(pts, center)
	sort.SliceStable(all, func(i, j int) bool { return all[i].bearing < all[j].bearing })

	nw, ok := firstInBracket(corners, 270, 360)
	if !ok {
		return Reconstruction{}, fmt.Errorf("%w: no northwest corner candidate", ErrAmbiguousGeometry)
	}
	sw, ok := firstInBracket(corners, 0, 90)
	if !ok {
		return Reconstruction{}, fmt.Errorf("%w: no southwest corner candidate", ErrAmbiguousGeometry)
	}
	se, ok := firstInBracket(corners, 90, 180)
	if !ok {
		return Reconstruction{}, fmt.Errorf("%w: no southeast corner candidate", ErrAmbiguousGeometry)
	}
	ne, ok := firstInBracket(corners, 180, 270)
	if !ok {
		return Reconstruction{}, fmt.Errorf("%w: no northeast corner candidate", ErrAmbiguousGeometry)
	}

	// Side membership by bearing bracket between adjacent corners. East and
	// south walk against the bearing order, so they reverse.
	east := reverseTagged(filterBetween(all, se.bearing, ne.bearing))
	south := reverseTagged(filterBetween(all, sw.bearing, se.bearing))
	north := reverseTagged(filterBetween(all, ne.bearing, nw.bearing))

	claimed := make(map[geometry.Point2D]bool)
	for _, side := range [][]tagged{east, south, north} {
		for _, t := range side {
			claimed[t.pt] = true
		}
	}
	west := []tagged{sw}
	for _, t := range all {
		if !claimed[t.pt] {
			west = append(west, t)
		}
	}
	west = append(west, nw)
	west = dedupeTagged(west)
	sort.SliceStable(west, func(i, j int) bool { return west[i].pt.Y < west[j].pt.Y })

	return Reconstruction{
		NW: nw.pt, NE: ne.pt, SE: se.pt, SW: sw.pt,
		Sides: SideSet{
			West:  untag(west),
			North: untag(dedupeTagged(north)),
			East:  untag(dedupeTagged(east)),
			South: untag(dedupeTagged(south)),
		},
		Provenance: provenance,
	}, nil
}

// recoverStride rebuilds the full corner set when exactly three candidates
// survive. The three candidates must be evenly spaced through the doubled
// ring; uneven gaps mean the geometry cannot be trusted.
func recoverStride(candidates []tagged, doubled []tagged) ([]tagged, error) {
	indexes := make([]int, 0, len(candidates))
	for _, c := range candidates {
		idx := -1
		for i, t := range doubled {
			if t.pt == c.pt {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: corner candidate not on ring", ErrAmbiguousGeometry)
		}
		indexes = append(indexes, idx)
	}

	ordered := append([]int{}, indexes...)
	sort.Ints(ordered)
	stride := ordered[1] - ordered[0]
	if stride == 0 || ordered[2]-ordered[1] != stride {
		return nil, fmt.Errorf("%w: uneven corner spacing %d vs %d",
			ErrAmbiguousGeometry, stride, ordered[2]-ordered[1])
	}

	seen := make(map[int]bool)
	var picks []int
	for i := indexes[0]; i < len(doubled); i += stride {
		if !seen[i] {
			seen[i] = true
			picks = append(picks, i)
		}
	}
	for i := indexes[0]; i > 0; i -= stride {
		if !seen[i] {
			seen[i] = true
			picks = append(picks, i)
		}
	}
	sort.Ints(picks)

	out := make([]tagged, len(picks))
	for i, idx := range picks {
		out[i] = doubled[idx]
	}
	return out, nil
}

// firstInBracket returns the first corner whose bearing lies strictly inside
// (lo, hi). Bearings sitting exactly on a bracket edge match no quadrant.
func firstInBracket(corners []tagged, lo, hi float64) (tagged, bool) {
	for _, c := range corners {
		if c.bearing > lo && c.bearing < hi {
			return c, true
		}
	}
	return tagged{}, false
}

func filterBetween(all []tagged, lo, hi float64) []tagged {
	var out []tagged
	for _, t := range all {
		if t.bearing >= lo && t.bearing <= hi {
			out = append(out, t)
		}
	}
	return out
}

func reverseTagged(in []tagged) []tagged {
	out := make([]tagged, len(in))
	for i, t := range in {
		out[len(in)-1-i] = t
	}
	return out
}

func dedupeTagged(in []tagged) []tagged {
	seen := make(map[geometry.Point2D]bool, len(in))
	out := make([]tagged, 0, len(in))
	for _, t := range in {
		if !seen[t.pt] {
			seen[t.pt] = true
			out = append(out, t)
		}
	}
	return out
}

func untag(in []tagged) []geometry.Point2D {
	out := make([]geometry.Point2D, len(in))
	for i, t := range in {
		out[i] = t.pt
	}
	return out
}
