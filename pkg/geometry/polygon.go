package geometry

import (
	"math"
	"sort"
)

// SortClockwise orders points clockwise around their centroid. The sort key
// is (-135 - atan2(dy, dx)) mod 360, which starts the ring at the southwest
// corner of an axis-aligned plat and keeps the ordering stable.
func SortClockwise(points []Point2D) []Point2D {
	center := Centroid(points)
	out := make([]Point2D, len(points))
	copy(out, points)
	sort.SliceStable(out, func(i, j int) bool {
		return clockwiseKey(out[i], center) < clockwiseKey(out[j], center)
	})
	return out
}

func clockwiseKey(p, center Point2D) float64 {
	deg := math.Atan2(p.Y-center.Y, p.X-center.X) * 180 / math.Pi
	return math.Mod(math.Mod(-135-deg, 360)+360, 360)
}

// Simplify reduces the number of vertices of a polyline using the
// Ramer-Douglas-Peucker algorithm with the given tolerance.
func Simplify(path []Point2D, epsilon float64) []Point2D {
	if len(path) <= 2 {
		return path
	}

	// Find point with maximum distance from line between first and last points
	dmax := 0.0
	index := 0
	end := len(path) - 1

	for i := 1; i < end; i++ {
		d := PerpendicularDistance(path[i], path[0], path[end])
		if d > dmax {
			dmax = d
			index = i
		}
	}

	// If max distance is greater than epsilon, recursively simplify
	if dmax > epsilon {
		left := Simplify(path[:index+1], epsilon)
		right := Simplify(path[index:], epsilon)

		// Build result (avoid duplicating middle point)
		result := make([]Point2D, 0, len(left)+len(right)-1)
		result = append(result, left[:len(left)-1]...)
		result = append(result, right...)
		return result
	}

	// All points between first and last are within epsilon, return just endpoints
	return []Point2D{path[0], path[end]}
}

// PerpendicularDistance calculates the perpendicular distance from point p to line a-b.
func PerpendicularDistance(p, a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 && dy == 0 {
		// a and b are the same point
		return p.Distance(a)
	}

	num := math.Abs(dy*p.X - dx*p.Y + b.X*a.Y - b.Y*a.X)
	den := math.Sqrt(dx*dx + dy*dy)
	return num / den
}

// TurningAngles returns the angle in radians between consecutive direction
// vectors of a polyline. For n vertices there are n-1 direction vectors and
// n-2 turning angles; angle i belongs to vertex i+1. Degenerate (zero
// length) segments produce an angle of zero.
func TurningAngles(path []Point2D) []float64 {
	if len(path) < 3 {
		return nil
	}
	dirs := make([]Point2D, len(path)-1)
	for i := 1; i < len(path); i++ {
		dirs[i-1] = path[i].Sub(path[i-1])
	}
	angles := make([]float64, len(dirs)-1)
	for i := 1; i < len(dirs); i++ {
		v1, v2 := dirs[i-1], dirs[i]
		n1 := math.Hypot(v1.X, v1.Y)
		n2 := math.Hypot(v2.X, v2.Y)
		if n1 == 0 || n2 == 0 {
			continue
		}
		cos := (v1.X*v2.X + v1.Y*v2.Y) / (n1 * n2)
		// Clamp against floating-point drift before arccos.
		cos = math.Max(-1, math.Min(1, cos))
		angles[i-1] = math.Acos(cos)
	}
	return angles
}

// ConvexHull computes the convex hull of a set of points using Graham scan.
// Returns the points forming the convex hull in counter-clockwise order.
func ConvexHull(points []Point2D) []Point2D {
	if len(points) < 3 {
		return points
	}

	// Make a copy to avoid modifying the input
	pts := make([]Point2D, len(points))
	copy(pts, points)

	// Find the point with lowest y (and leftmost if tied)
	lowest := 0
	for i := 1; i < len(pts); i++ {
		if pts[i].Y < pts[lowest].Y ||
			(pts[i].Y == pts[lowest].Y && pts[i].X < pts[lowest].X) {
			lowest = i
		}
	}

	// Swap to front
	pts[0], pts[lowest] = pts[lowest], pts[0]
	pivot := pts[0]

	sorted := make([]Point2D, len(pts)-1)
	copy(sorted, pts[1:])

	sort.Slice(sorted, func(i, j int) bool {
		cross := crossProduct(pivot, sorted[i], sorted[j])
		if cross == 0 {
			return distSq(pivot, sorted[i]) < distSq(pivot, sorted[j])
		}
		return cross > 0
	})

	// Build hull
	hull := []Point2D{pivot}
	for _, p := range sorted {
		for len(hull) > 1 && crossProduct(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	return hull
}

// PointInPolygon tests if a point is inside a polygon using ray casting.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	n := len(polygon)

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := polygon[i], polygon[j]

		// Check if ray from p going right intersects edge pi-pj
		if ((pi.Y > p.Y) != (pj.Y > p.Y)) &&
			(p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}

	return inside
}

// Nearest returns the point in candidates closest to target. The boolean is
// false when candidates is empty.
func Nearest(target Point2D, candidates []Point2D) (Point2D, bool) {
	if len(candidates) == 0 {
		return Point2D{}, false
	}
	best := candidates[0]
	bestD := distSq(target, best)
	for _, c := range candidates[1:] {
		if d := distSq(target, c); d < bestD {
			best, bestD = c, d
		}
	}
	return best, true
}

// crossProduct computes the cross product of vectors OA and OB.
func crossProduct(o, a, b Point2D) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// distSq computes the squared distance between two points.
func distSq(a, b Point2D) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}
