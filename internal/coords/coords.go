// Package coords converts between the coordinate systems that appear in
// survey and well records: UTM meters, geodetic lat/lon degrees, and
// state-plane survey feet. All functions are pure; zone and band are
// explicit parameters, never process state.
package coords

// CoordType classifies a coordinate pair by its plausible reference system.
type CoordType int

const (
	// TypeUnknown means the pair fits neither the UTM nor the lat/lon window.
	TypeUnknown CoordType = iota
	// TypeUTM means the pair looks like UTM easting/northing in meters.
	TypeUTM
	// TypeLatLon means the pair looks like latitude/longitude in degrees.
	TypeLatLon
)

func (c CoordType) String() string {
	switch c {
	case TypeUTM:
		return "utm"
	case TypeLatLon:
		return "latlon"
	default:
		return "unknown"
	}
}

// MetersPerFoot is the international foot in meters, used pervasively when
// mixing state-plane feet with UTM meters.
const MetersPerFoot = 0.3048

// FeetToMeters converts survey feet to meters.
func FeetToMeters(ft float64) float64 { return ft * MetersPerFoot }

// MetersToFeet converts meters to survey feet.
func MetersToFeet(m float64) float64 { return m / MetersPerFoot }

// StatePlaneFeetToMeters prescales a state-plane easting/northing pair from
// survey feet to meters ahead of reprojection.
func StatePlaneFeetToMeters(easting, northing float64) (float64, float64) {
	return easting * MetersPerFoot, northing * MetersPerFoot
}

// DetectType classifies an (x, y) pair. The UTM window is checked first and
// wins when both systems could match; pairs outside both windows are
// TypeUnknown and callers pass them through untouched rather than erroring.
func DetectType(x, y float64) CoordType {
	if (166021.443 <= x && x <= 833978.556 || 500000 <= x && x <= 999999) &&
		0 <= y && y <= 10000000 {
		return TypeUTM
	}
	if -90 <= x && x <= 90 && -180 <= y && y <= 180 {
		return TypeLatLon
	}
	return TypeUnknown
}
