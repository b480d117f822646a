package coords

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean earth radius used for all spherical math.
const EarthRadiusMeters = 6371.0088 * 1000

// OffsetByMeters shifts a geodetic coordinate by planar east (dx) and north
// (dy) offsets in meters using the small-offset spherical approximation.
// Longitude is scaled by cos(lat) so east offsets stay true at basin
// latitudes.
func OffsetByMeters(ll s2.LatLng, dx, dy float64) s2.LatLng {
	lat := ll.Lat.Radians() + dy/EarthRadiusMeters
	lon := ll.Lng.Radians() + dx/(EarthRadiusMeters*math.Cos(ll.Lat.Radians()))
	return s2.LatLng{Lat: s1.Angle(lat), Lng: s1.Angle(lon)}
}

// Distance returns the great-circle distance between two geodetic
// coordinates in meters.
func Distance(a, b s2.LatLng) float64 {
	return a.Distance(b).Radians() * EarthRadiusMeters
}

// InitialBearing returns the initial great-circle bearing from a to b in
// compass degrees [0, 360).
func InitialBearing(a, b s2.LatLng) float64 {
	lat1, lon1 := a.Lat.Radians(), a.Lng.Radians()
	lat2, lon2 := b.Lat.Radians(), b.Lng.Radians()
	dLon := lon2 - lon1

	x := math.Sin(dLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := math.Atan2(x, y) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// GridBearing returns the compass bearing from one projected point to
// another, measured clockwise from grid north in degrees [0, 360).
func GridBearing(x1, y1, x2, y2 float64) float64 {
	deg := math.Atan2(x2-x1, y2-y1) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// Destination walks a great circle from start along the given compass
// bearing for the given distance in meters and returns the end coordinate.
// Plat side calls are replayed with it to rebuild section boundaries from
// distance-and-bearing legs.
func Destination(start s2.LatLng, distanceMeters, bearingDeg float64) s2.LatLng {
	lat1 := start.Lat.Radians()
	lon1 := start.Lng.Radians()
	brg := bearingDeg * math.Pi / 180
	ad := distanceMeters / EarthRadiusMeters

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ad) +
		math.Cos(lat1)*math.Sin(ad)*math.Cos(brg))
	lon2 := lon1 + math.Atan2(
		math.Sin(brg)*math.Sin(ad)*math.Cos(lat1),
		math.Cos(ad)-math.Sin(lat1)*math.Sin(lat2))

	return s2.LatLng{Lat: s1.Angle(lat2), Lng: s1.Angle(lon2)}.Normalized()
}

// GridConvergence returns the UTM grid convergence angle in degrees at a
// geodetic coordinate: the clockwise rotation from true north to grid north.
// Longitude is taken as degrees west (positive in the western hemisphere).
func GridConvergence(lat, lonWest float64, zone int) float64 {
	var central float64 = 111
	if zone == 11 {
		central = 117
	}
	dLon := central - lonWest
	rad := math.Atan(math.Tan(dLon*math.Pi/180) * math.Sin(lat*math.Pi/180))
	return round6(rad * 180 / math.Pi)
}

// State-plane convergence slopes per Utah zone (north, central, south).
var spConvergenceSlope = map[int]float64{
	1: 0.659355482,
	2: 0.640578596,
	3: 0.612687337,
}

// StatePlaneConvergence returns the approximate convergence angle in degrees
// for a point in one of Utah's three state-plane zones. Coordinates that do
// not look geodetic are projected from UTM (default zone and band) first.
func StatePlaneConvergence(spZone int, x, y float64) (float64, error) {
	lonWest := math.Abs(y)
	if !(math.Abs(y) < 180 && math.Abs(x) < 90) {
		ll, err := ToLatLon(x, y, DefaultZone, DefaultBand)
		if err != nil {
			return 0, err
		}
		lonWest = math.Abs(ll.Lng.Degrees())
	}
	slope, ok := spConvergenceSlope[spZone]
	if !ok {
		slope = spConvergenceSlope[3]
	}
	return (111.5 - lonWest) * slope, nil
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
