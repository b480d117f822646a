package plat

import (
	"fmt"

	"well-surveyor/pkg/geometry"
)

// SnapToReference replaces each reconstructed corner with the nearest corner
// of a reference section rectangle. Used to pin a noisy plat to published
// section bounds.
func SnapToReference(r Reconstruction, ref geometry.Rect) Reconstruction {
	refCorners := ref.Corners()
	snap := func(p geometry.Point2D) geometry.Point2D {
		best, _ := geometry.Nearest(p, refCorners[:])
		return best
	}
	r.NW = snap(r.NW)
	r.NE = snap(r.NE)
	r.SE = snap(r.SE)
	r.SW = snap(r.SW)
	return r
}

// TranslateOnto shifts a plat point set so its centroid lands on the
// centroid of the control points, without rotation or scale.
func TranslateOnto(points, control []geometry.Point2D) ([]geometry.Point2D, error) {
	tr, err := geometry.FitTranslation(points, control)
	if err != nil {
		return nil, fmt.Errorf("translate plat: %w", err)
	}
	return tr.ApplyAll(points), nil
}
