package coords

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// The Uinta Basin records this engine was built around live in UTM zone 12,
// band T. Both values stay explicit parameters; these are only defaults.
const (
	DefaultZone = 12
	DefaultBand = 'T'
)

// WGS84 ellipsoid and Transverse Mercator series constants.
const (
	k0 = 0.9996
	rE = 6378137.0 // semi-major axis

	e1  = 0.00669438 // first eccentricity squared
	e2  = e1 * e1
	e3  = e2 * e1
	ep2 = e1 / (1 - e1)
)

var (
	sqrtE = math.Sqrt(1 - e1)
	ee    = (1 - sqrtE) / (1 + sqrtE)
	ee2   = ee * ee
	ee3   = ee2 * ee
	ee4   = ee3 * ee
	ee5   = ee4 * ee

	m1 = 1 - e1/4 - 3*e2/64 - 5*e3/256
	m2 = 3*e1/8 + 3*e2/32 + 45*e3/1024
	m3 = 15*e2/256 + 45*e3/1024
	m4 = 35 * e3 / 3072

	p2 = 3*ee/2 - 27*ee3/32 + 269*ee5/512
	p3 = 21*ee2/16 - 55*ee4/32
	p4 = 151*ee3/96 - 417*ee5/128
	p5 = 1097 * ee4 / 512
)

const bandLetters = "CDEFGHJKLMNPQRSTUVWXX"

// UTM holds a projected coordinate with its grid designators.
type UTM struct {
	Easting  float64
	Northing float64
	Zone     int
	Band     byte
}

func (u UTM) String() string {
	return fmt.Sprintf("%.3fE %.3fN %d%c", u.Easting, u.Northing, u.Zone, u.Band)
}

// northern reports whether the band letter lies in the northern hemisphere.
func northern(band byte) bool { return band >= 'N' }

// ToLatLon converts a UTM easting/northing in the given zone and band to a
// geodetic coordinate. Inputs outside the valid UTM window produce an error
// rather than a wrapped-around coordinate.
func ToLatLon(easting, northing float64, zone int, band byte) (s2.LatLng, error) {
	if zone < 1 || zone > 60 {
		return s2.LatLng{}, fmt.Errorf("utm zone %d out of range [1,60]", zone)
	}
	if easting < 100000 || easting >= 1000000 {
		return s2.LatLng{}, fmt.Errorf("easting %.1f out of range", easting)
	}
	if northing < 0 || northing > 10000000 {
		return s2.LatLng{}, fmt.Errorf("northing %.1f out of range", northing)
	}

	x := easting - 500000
	y := northing
	if !northern(band) {
		y -= 10000000
	}

	m := y / k0
	mu := m / (rE * m1)

	pRad := mu +
		p2*math.Sin(2*mu) +
		p3*math.Sin(4*mu) +
		p4*math.Sin(6*mu) +
		p5*math.Sin(8*mu)

	pSin := math.Sin(pRad)
	pSin2 := pSin * pSin
	pCos := math.Cos(pRad)
	pTan := pSin / pCos
	pTan2 := pTan * pTan
	pTan4 := pTan2 * pTan2

	epSin := 1 - e1*pSin2
	epSinSqrt := math.Sqrt(epSin)

	n := rE / epSinSqrt
	r := (1 - e1) / epSin

	c := ep2 * pCos * pCos
	c2 := c * c

	d := x / (n * k0)
	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	lat := pRad - (pTan/r)*
		(d2/2-
			d4/24*(5+3*pTan2+10*c-4*c2-9*ep2)+
			d6/720*(61+90*pTan2+298*c+45*pTan4-252*ep2-3*c2))

	lon := (d -
		d3/6*(1+2*pTan2+c) +
		d5/120*(5-2*c+28*pTan2-3*c2+8*ep2+24*pTan4)) / pCos

	lonDeg := lon*180/math.Pi + centralMeridian(zone)
	latDeg := lat * 180 / math.Pi

	return s2.LatLngFromDegrees(latDeg, lonDeg), nil
}

// FromLatLon projects a geodetic coordinate to UTM, deriving the zone and
// band from the coordinate itself.
func FromLatLon(ll s2.LatLng) (UTM, error) {
	lat := ll.Lat.Degrees()
	lon := ll.Lng.Degrees()
	if lat < -80 || lat > 84 {
		return UTM{}, fmt.Errorf("latitude %.4f outside UTM coverage [-80,84]", lat)
	}
	if lon < -180 || lon > 180 {
		return UTM{}, fmt.Errorf("longitude %.4f out of range", lon)
	}

	zone := zoneNumber(lat, lon)
	band := bandLetter(lat)

	latRad := ll.Lat.Radians()
	latSin := math.Sin(latRad)
	latCos := math.Cos(latRad)
	latTan := latSin / latCos
	latTan2 := latTan * latTan
	latTan4 := latTan2 * latTan2

	lonRad := ll.Lng.Radians()
	centralRad := centralMeridian(zone) * math.Pi / 180

	n := rE / math.Sqrt(1-e1*latSin*latSin)
	c := ep2 * latCos * latCos

	a := latCos * (lonRad - centralRad)
	a2 := a * a
	a3 := a2 * a
	a4 := a3 * a
	a5 := a4 * a
	a6 := a5 * a

	m := rE * (m1*latRad -
		m2*math.Sin(2*latRad) +
		m3*math.Sin(4*latRad) -
		m4*math.Sin(6*latRad))

	easting := k0*n*(a+
		a3/6*(1-latTan2+c)+
		a5/120*(5-18*latTan2+latTan4+72*c-58*ep2)) + 500000

	northing := k0 * (m + n*latTan*
		(a2/2+
			a4/24*(5-latTan2+9*c+4*c*c)+
			a6/720*(61-58*latTan2+latTan4+600*c-330*ep2)))

	if lat < 0 {
		northing += 10000000
	}

	return UTM{Easting: easting, Northing: northing, Zone: zone, Band: band}, nil
}

func centralMeridian(zone int) float64 {
	return float64(zone-1)*6 - 180 + 3
}

func zoneNumber(lat, lon float64) int {
	// Norway and Svalbard exceptions.
	if 56 <= lat && lat < 64 && 3 <= lon && lon < 12 {
		return 32
	}
	if 72 <= lat && lat <= 84 && lon >= 0 {
		switch {
		case lon < 9:
			return 31
		case lon < 21:
			return 33
		case lon < 33:
			return 35
		case lon < 42:
			return 37
		}
	}
	z := int((lon+180)/6) + 1
	if z > 60 {
		z = 60
	}
	return z
}

func bandLetter(lat float64) byte {
	if lat < -80 || lat > 84 {
		return 'Z'
	}
	idx := int(lat+80) >> 3
	if idx >= len(bandLetters) {
		idx = len(bandLetters) - 1
	}
	return bandLetters[idx]
}
