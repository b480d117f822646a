package plat

import (
	"math"
	"sort"

	"well-surveyor/pkg/geometry"
)

// HullOptions tunes boundary smoothing.
type HullOptions struct {
	// K is the starting neighbor count for the concave hull walk.
	K int
	// MaxIterations caps the total parameter search across all K values.
	MaxIterations int
}

// DefaultHullOptions returns the search bounds the record pipeline used.
func DefaultHullOptions() HullOptions {
	return HullOptions{K: 3, MaxIterations: 500}
}

// Boundary is the result of smoothing a plat's outer point set.
type Boundary struct {
	Points     []geometry.Point2D
	Provenance Provenance
}

// SmoothBoundary orders a plat's boundary points into a simple ring using a
// k-nearest-neighbor concave hull. The neighbor count is widened until the
// hull closes around every input point; if the search budget runs out the
// original points come back tagged Degraded rather than a silent identity.
func SmoothBoundary(points []geometry.Point2D, opts HullOptions) Boundary {
	pts := geometry.Dedupe(points)
	if len(pts) <= 3 {
		return Boundary{Points: pts, Provenance: ExactCorners}
	}

	k := opts.K
	if k < 3 {
		k = 3
	}
	iterations := 0

	for k < len(pts) && iterations < opts.MaxIterations {
		hull, used := hullWalk(pts, k, opts.MaxIterations-iterations)
		iterations += used
		if hull != nil && encloses(hull, pts) {
			return Boundary{Points: hull, Provenance: ExactCorners}
		}
		k++
	}

	return Boundary{Points: pts, Provenance: Degraded}
}

// hullWalk attempts one concave hull pass with a fixed neighbor count.
// Returns nil when the walk strands or exceeds its budget; the second value
// is the number of steps consumed.
func hullWalk(pts []geometry.Point2D, k, budget int) ([]geometry.Point2D, int) {
	start := pts[0]
	for _, p := range pts[1:] {
		if p.Y < start.Y || (p.Y == start.Y && p.X < start.X) {
			start = p
		}
	}

	remaining := make([]geometry.Point2D, 0, len(pts)-1)
	for _, p := range pts {
		if p != start {
			remaining = append(remaining, p)
		}
	}

	hull := []geometry.Point2D{start}
	current := start
	prevHeading := math.Pi // arrive heading west so a clockwise walk leaves northward
	steps := 0

	for steps < budget {
		steps++
		// Reopen the start point once the hull is long enough to close.
		candidates := remaining
		if len(hull) > 2 {
			candidates = append(append([]geometry.Point2D{}, remaining...), start)
		}
		if len(candidates) == 0 {
			return nil, steps
		}

		neighbors := nearestK(current, candidates, k)
		next, ok := pickNext(current, prevHeading, neighbors, hull)
		if !ok {
			return nil, steps
		}

		if next == start {
			return hull, steps
		}

		prevHeading = math.Atan2(next.Y-current.Y, next.X-current.X)
		hull = append(hull, next)
		current = next
		remaining = removePoint(remaining, next)
	}
	return nil, steps
}

// pickNext chooses the neighbor whose edge rotates least clockwise from the
// previous heading and does not cross the hull built so far. Minimizing the
// clockwise rotation keeps the walk hugging the outside of the cloud.
func pickNext(current geometry.Point2D, prevHeading float64, neighbors, hull []geometry.Point2D) (geometry.Point2D, bool) {
	type scored struct {
		p    geometry.Point2D
		turn float64
	}
	ranked := make([]scored, 0, len(neighbors))
	for _, n := range neighbors {
		heading := math.Atan2(n.Y-current.Y, n.X-current.X)
		turn := math.Mod(prevHeading-heading+4*math.Pi, 2*math.Pi)
		ranked = append(ranked, scored{p: n, turn: turn})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].turn < ranked[j].turn })

	for _, c := range ranked {
		if !crossesHull(current, c.p, hull) {
			return c.p, true
		}
	}
	return geometry.Point2D{}, false
}

// crossesHull reports whether segment a-b properly intersects any existing
// hull edge other than the one ending at a.
func crossesHull(a, b geometry.Point2D, hull []geometry.Point2D) bool {
	for i := 0; i+1 < len(hull); i++ {
		p, q := hull[i], hull[i+1]
		if q == a || p == b || q == b {
			continue
		}
		if segmentsIntersect(a, b, p, q) {
			return true
		}
	}
	return false
}

func segmentsIntersect(a, b, c, d geometry.Point2D) bool {
	d1 := cross(c, d, a)
	d2 := cross(c, d, b)
	d3 := cross(a, b, c)
	d4 := cross(a, b, d)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(o, a, b geometry.Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// encloses reports whether every input point sits on or inside the ring.
func encloses(ring, pts []geometry.Point2D) bool {
	onRing := make(map[geometry.Point2D]bool, len(ring))
	for _, p := range ring {
		onRing[p] = true
	}
	for _, p := range pts {
		if !onRing[p] && !geometry.PointInPolygon(p, ring) {
			return false
		}
	}
	return true
}

func nearestK(target geometry.Point2D, candidates []geometry.Point2D, k int) []geometry.Point2D {
	sorted := append([]geometry.Point2D{}, candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return target.Distance(sorted[i]) < target.Distance(sorted[j])
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

func removePoint(pts []geometry.Point2D, target geometry.Point2D) []geometry.Point2D {
	out := pts[:0]
	for _, p := range pts {
		if p != target {
			out = append(out, p)
		}
	}
	return out
}
